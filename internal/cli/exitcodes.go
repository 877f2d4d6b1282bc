// Package cli assembles taskflow sessions and formats command output.
package cli

import (
	"errors"

	"github.com/thenoetrevino/taskflow/internal/app"
	"github.com/thenoetrevino/taskflow/internal/derive"
	"github.com/thenoetrevino/taskflow/internal/models"
	taskservice "github.com/thenoetrevino/taskflow/internal/services/task"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures, or any error that
	// doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Unknown sort keys, view modes or enum names in flags.
	ExitUsage = 2

	// ExitNotFound indicates a requested task was not found.
	ExitNotFound = 3

	// ExitValidation indicates a validation error.
	// Use for: Blank titles and malformed due dates.
	ExitValidation = 5
)

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case app.IsValidationError(err), errors.Is(err, taskservice.ErrEmptyTitle):
		return ExitValidation
	case errors.Is(err, taskservice.ErrTaskNotFound):
		return ExitNotFound
	case errors.Is(err, derive.ErrUnknownSortKey),
		errors.Is(err, app.ErrUnknownViewMode),
		errors.Is(err, models.ErrUnknownPriority),
		errors.Is(err, models.ErrUnknownStatus):
		return ExitUsage
	default:
		return ExitError
	}
}
