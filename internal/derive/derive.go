// Package derive computes the read-only views of a task collection.
// Every function is pure: inputs are never mutated and results are new
// slices holding the same task pointers.
package derive

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/thenoetrevino/taskflow/internal/models"
)

// SortKey selects the ordering applied by SortTasks
type SortKey int

const (
	SortUnknown SortKey = iota
	SortByDueDate
	SortByPriority
	SortByStatus
)

// SortKeys lists the keys in the order the sort selector cycles through
func SortKeys() []SortKey {
	return []SortKey{SortByDueDate, SortByPriority, SortByStatus}
}

func (k SortKey) String() string {
	switch k {
	case SortByDueDate:
		return "dueDate"
	case SortByPriority:
		return "priority"
	case SortByStatus:
		return "status"
	default:
		return "unknown"
	}
}

// Label is the human readable name used by the sort selector
func (k SortKey) Label() string {
	switch k {
	case SortByDueDate:
		return "Due Date"
	case SortByPriority:
		return "Priority"
	case SortByStatus:
		return "Status"
	default:
		return "Unsorted"
	}
}

// Next returns the following key, wrapping around
func (k SortKey) Next() SortKey {
	keys := SortKeys()
	i := slices.Index(keys, k)
	return keys[(i+1)%len(keys)]
}

// ParseSortKey accepts the canonical names plus a few spellings used on the CLI
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "duedate", "due-date", "due_date", "due":
		return SortByDueDate, nil
	case "priority":
		return SortByPriority, nil
	case "status":
		return SortByStatus, nil
	}
	return SortUnknown, fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
}

// Stats is the summary shown in the header cards
type Stats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Overdue   int `json:"overdue"`
}

// Board buckets tasks by status, each bucket in input order
type Board struct {
	Pending    []*models.Task
	InProgress []*models.Task
	Completed  []*models.Task
}

// Column is one board bucket with its status
type Column struct {
	Status models.Status
	Tasks  []*models.Task
}

// Columns returns the buckets in board order
func (b Board) Columns() []Column {
	return []Column{
		{Status: models.StatusPending, Tasks: b.Pending},
		{Status: models.StatusInProgress, Tasks: b.InProgress},
		{Status: models.StatusCompleted, Tasks: b.Completed},
	}
}

// Len returns the number of tasks across all buckets
func (b Board) Len() int {
	return len(b.Pending) + len(b.InProgress) + len(b.Completed)
}

// FilterByProject keeps the tasks of one project, or all of them for models.AllProjects
func FilterByProject(tasks []*models.Task, projectID string) []*models.Task {
	out := make([]*models.Task, 0, len(tasks))
	for _, t := range tasks {
		if projectID == models.AllProjects || t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}

// SortTasks returns a stably sorted copy. Due dates sort ascending,
// priority and status sort by descending rank.
func SortTasks(tasks []*models.Task, key SortKey) []*models.Task {
	out := slices.Clone(tasks)
	if out == nil {
		out = []*models.Task{}
	}

	var cmp func(a, b *models.Task) int
	switch key {
	case SortByDueDate:
		cmp = func(a, b *models.Task) int { return a.DueDate.Compare(b.DueDate) }
	case SortByPriority:
		cmp = func(a, b *models.Task) int { return b.Priority.Rank() - a.Priority.Rank() }
	case SortByStatus:
		cmp = func(a, b *models.Task) int { return b.Status.Rank() - a.Status.Rank() }
	default:
		return out
	}

	slices.SortStableFunc(out, cmp)
	return out
}

// StartOfDay truncates t to local midnight in t's location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsOverdue reports whether an unfinished task was due before today.
// A task due today is never overdue.
func IsOverdue(task *models.Task, now time.Time) bool {
	if task == nil || task.IsCompleted() {
		return false
	}
	return task.DueDate.Before(StartOfDay(now))
}

// ComputeStats summarizes the collection. Pending counts only tasks in the
// pending stage, so in-progress work appears in Total alone.
func ComputeStats(tasks []*models.Task, now time.Time) Stats {
	var s Stats
	for _, t := range tasks {
		s.Total++
		switch t.Status {
		case models.StatusCompleted:
			s.Completed++
		case models.StatusPending:
			s.Pending++
		}
		if IsOverdue(t, now) {
			s.Overdue++
		}
	}
	return s
}

// GroupByStatus splits tasks into the three board columns
func GroupByStatus(tasks []*models.Task) Board {
	b := Board{
		Pending:    []*models.Task{},
		InProgress: []*models.Task{},
		Completed:  []*models.Task{},
	}
	for _, t := range tasks {
		switch t.Status {
		case models.StatusPending:
			b.Pending = append(b.Pending, t)
		case models.StatusInProgress:
			b.InProgress = append(b.InProgress, t)
		case models.StatusCompleted:
			b.Completed = append(b.Completed, t)
		}
	}
	return b
}
