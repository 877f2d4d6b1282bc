package models

import (
	"fmt"
	"strings"
)

// Status is the workflow stage of a task.
// Any status may follow any other; there is no guarded state machine.
type Status int

const (
	StatusUnknown Status = iota
	StatusPending
	StatusInProgress
	StatusCompleted
)

var statusNames = map[Status]string{
	StatusPending:    "pending",
	StatusInProgress: "in-progress",
	StatusCompleted:  "completed",
}

// Statuses returns every status in board order.
func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

// Rank orders statuses for sorting: pending(3) > in-progress(2) > completed(1).
func (s Status) Rank() int {
	switch s {
	case StatusPending:
		return 3
	case StatusInProgress:
		return 2
	case StatusCompleted:
		return 1
	default:
		return 0
	}
}

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Label is the board column heading for the status.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// ToggleComplete flips between completed and pending.
func (s Status) ToggleComplete() Status {
	if s == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}

// ToggleInProgress flips between in-progress and pending.
func (s Status) ToggleInProgress() Status {
	if s == StatusInProgress {
		return StatusPending
	}
	return StatusInProgress
}

// Next advances one board stage, wrapping completed back to pending.
func (s Status) Next() Status {
	switch s {
	case StatusPending:
		return StatusInProgress
	case StatusInProgress:
		return StatusCompleted
	default:
		return StatusPending
	}
}

// ParseStatus converts a case-insensitive name into a Status.
// "in_progress" and "inprogress" are accepted as aliases for "in-progress".
func ParseStatus(s string) (Status, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	needle = strings.ReplaceAll(needle, "_", "-")
	if needle == "inprogress" {
		needle = "in-progress"
	}
	for st, name := range statusNames {
		if name == needle {
			return st, nil
		}
	}
	return StatusUnknown, fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStatus, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
