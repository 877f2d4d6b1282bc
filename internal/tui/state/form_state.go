package state

import (
	"charm.land/huh/v2"
)

// FormState holds the open create-task form.
// Field values live in the app's draft; the huh form only binds to them.
type FormState struct {
	taskForm *huh.Form
}

// NewFormState creates an empty FormState.
func NewFormState() *FormState {
	return &FormState{}
}

// TaskForm returns the open form, or nil.
func (s *FormState) TaskForm() *huh.Form {
	return s.taskForm
}

// SetTaskForm replaces the open form.
func (s *FormState) SetTaskForm(f *huh.Form) {
	s.taskForm = f
}

// Clear drops the form.
func (s *FormState) Clear() {
	s.taskForm = nil
}
