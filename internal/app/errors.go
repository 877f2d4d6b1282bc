package app

import "errors"

var (
	ErrInvalidDueDate  = errors.New("invalid due date")
	ErrUnknownViewMode = errors.New("unknown view mode")
)

// MsgInvalidDueDate is shown when the due date field cannot be parsed
const MsgInvalidDueDate = "Due date must be YYYY-MM-DD"

// ValidationError is a user-facing rejection of form input
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err carries a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
