package events

import "time"

// Kind indicates which store mutation (or failure) produced a notification
type Kind string

const (
	TaskCreated      Kind = "task_created"
	TaskUpdated      Kind = "task_updated"
	TaskCompleted    Kind = "task_completed"
	TaskDeleted      Kind = "task_deleted"
	ValidationFailed Kind = "validation_failed"
)

// Level is the severity a presenter should use when showing a notification
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is a user-facing message emitted by the core.
// TaskID is empty for validation failures.
type Notification struct {
	Kind      Kind
	Level     Level
	Message   string
	TaskID    string
	Timestamp time.Time
}

// LevelFor maps a notification kind to its display level
func LevelFor(kind Kind) Level {
	switch kind {
	case ValidationFailed:
		return LevelError
	case TaskCreated, TaskUpdated, TaskCompleted, TaskDeleted:
		return LevelSuccess
	default:
		return LevelInfo
	}
}

// New builds a notification with the level derived from kind
func New(kind Kind, taskID, message string, at time.Time) Notification {
	return Notification{
		Kind:      kind,
		Level:     LevelFor(kind),
		Message:   message,
		TaskID:    taskID,
		Timestamp: at,
	}
}
