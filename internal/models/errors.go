package models

import "errors"

// Parsing errors for the closed enumerations
var (
	// ErrUnknownPriority indicates a priority name outside low/medium/high/urgent
	ErrUnknownPriority = errors.New("unknown priority")

	// ErrUnknownStatus indicates a status name outside pending/in-progress/completed
	ErrUnknownStatus = errors.New("unknown status")
)
