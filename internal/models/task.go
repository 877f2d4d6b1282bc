package models

import (
	"slices"
	"time"
)

// Task represents a single unit of work
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Priority    Priority  `json:"priority"`
	Status      Status    `json:"status"`
	DueDate     time.Time `json:"dueDate"`
	ProjectID   string    `json:"projectId"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Clone returns a deep copy so callers never alias the store's records.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	c.Tags = slices.Clone(t.Tags)
	if c.Tags == nil {
		c.Tags = []string{}
	}
	return &c
}

// IsCompleted reports whether the task is in the completed stage
func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// SeedTasks returns the sample tasks a fresh session starts with.
// Dates are midnight local time in December 2024.
func SeedTasks() []*Task {
	created := time.Date(2024, time.December, 20, 9, 0, 0, 0, time.Local)
	due := func(day int) time.Time {
		return time.Date(2024, time.December, day, 0, 0, 0, 0, time.Local)
	}

	return []*Task{
		{
			ID:          "1",
			Title:       "Complete project proposal",
			Description: "Finalize the Q4 project proposal with updated budget estimates",
			Priority:    PriorityHigh,
			Status:      StatusInProgress,
			DueDate:     due(25),
			ProjectID:   "work",
			Tags:        []string{"urgent", "client"},
			CreatedAt:   created,
			UpdatedAt:   created,
		},
		{
			ID:          "2",
			Title:       "Team standup meeting",
			Description: "Weekly team sync to discuss progress and blockers",
			Priority:    PriorityMedium,
			Status:      StatusPending,
			DueDate:     due(24),
			ProjectID:   "work",
			Tags:        []string{"meeting"},
			CreatedAt:   created,
			UpdatedAt:   created,
		},
		{
			ID:          "3",
			Title:       "Grocery shopping",
			Description: "Buy ingredients for weekend dinner party",
			Priority:    PriorityLow,
			Status:      StatusPending,
			DueDate:     due(23),
			ProjectID:   "personal",
			Tags:        []string{"errands"},
			CreatedAt:   created,
			UpdatedAt:   created,
		},
	}
}
