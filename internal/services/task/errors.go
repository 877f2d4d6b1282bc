package task

import "errors"

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle      = errors.New("task title is required")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidStatus   = errors.New("invalid status")

	// Lookup errors
	ErrTaskNotFound = errors.New("task not found")
)

// User-facing notification messages
const (
	MsgCreated         = "Task created successfully!"
	MsgUpdated         = "Task updated successfully"
	MsgCompleted       = "Task completed! 🎉"
	MsgDeleted         = "Task deleted successfully"
	MsgTitleIsRequired = "Task title is required"
)
