package models

import (
	"fmt"
	"strings"
)

// Priority represents how urgent a task is.
// The zero value is PriorityUnknown and never appears on a stored task.
type Priority int

const (
	PriorityUnknown Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
	PriorityUrgent
)

var priorityNames = map[Priority]string{
	PriorityLow:    "low",
	PriorityMedium: "medium",
	PriorityHigh:   "high",
	PriorityUrgent: "urgent",
}

// Priorities returns every valid priority in ascending rank.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

// Rank orders priorities: urgent(4) > high(3) > medium(2) > low(1).
func (p Priority) Rank() int {
	if !p.Valid() {
		return 0
	}
	return int(p)
}

// Valid reports whether p is one of the four known priorities.
func (p Priority) Valid() bool {
	_, ok := priorityNames[p]
	return ok
}

func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return "unknown"
}

// Title returns the capitalized name used in form options.
func (p Priority) Title() string {
	s := p.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Color returns the hex color of the priority dot.
func (p Priority) Color() string {
	switch p {
	case PriorityUrgent:
		return "#EF4444"
	case PriorityHigh:
		return "#F97316"
	case PriorityLow:
		return "#22C55E"
	default:
		return "#EAB308"
	}
}

// ParsePriority converts a case-insensitive name into a Priority.
func ParsePriority(s string) (Priority, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for p, name := range priorityNames {
		if name == needle {
			return p, nil
		}
	}
	return PriorityUnknown, fmt.Errorf("%w: %q", ErrUnknownPriority, s)
}

// MarshalText implements encoding.TextMarshaler so JSON output uses names.
func (p Priority) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPriority, int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Priority) UnmarshalText(text []byte) error {
	parsed, err := ParsePriority(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
