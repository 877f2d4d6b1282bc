package huhforms

import (
	"testing"

	"github.com/thenoetrevino/taskflow/internal/app"
	"github.com/thenoetrevino/taskflow/internal/models"
)

func TestValidateDueDate(t *testing.T) {
	if err := validateDueDate(""); err != nil {
		t.Errorf("empty due date should be accepted, got %v", err)
	}
	if err := validateDueDate("2024-12-25"); err != nil {
		t.Errorf("valid due date rejected: %v", err)
	}
	err := validateDueDate("next week")
	if err == nil || err.Error() != app.MsgInvalidDueDate {
		t.Errorf("validateDueDate(next week) = %v, want %q", err, app.MsgInvalidDueDate)
	}
}

func TestOptions(t *testing.T) {
	if got := len(priorityOptions()); got != len(models.Priorities()) {
		t.Errorf("priorityOptions() len = %d, want %d", got, len(models.Priorities()))
	}
	if got := len(projectOptions(models.DefaultProjects())); got != 3 {
		t.Errorf("projectOptions() len = %d, want 3", got)
	}
}

func TestCreateTaskForm(t *testing.T) {
	fc := app.NewFormController("work", nil)
	if CreateTaskForm(fc, models.DefaultProjects(), 3) == nil {
		t.Fatal("CreateTaskForm() returned nil")
	}
}
