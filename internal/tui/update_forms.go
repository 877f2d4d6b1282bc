package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/taskflow/internal/app"
	"github.com/thenoetrevino/taskflow/internal/tui/huhforms"
	"github.com/thenoetrevino/taskflow/internal/tui/state"
)

// descriptionLines is the height of the description field in the form
const descriptionLines = 4

// openTaskForm builds a fresh huh form over the current draft
func (m Model) openTaskForm() (tea.Model, tea.Cmd) {
	form := huhforms.CreateTaskForm(m.App.Form(), m.App.Store().Projects(), descriptionLines).
		WithTheme(huhforms.CreateTaskflowTheme(m.Config.ColorScheme))
	m.FormState.SetTaskForm(form)
	m.UIState.SetMode(state.FormMode)
	return m, form.Init()
}

// updateTaskForm forwards messages to the huh form and reacts to its state
func (m Model) updateTaskForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form := m.FormState.TaskForm()
	if form == nil {
		m.UIState.SetMode(state.NormalMode)
		return m, nil
	}

	// Save shortcut submits from any field
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && keyMsg.String() == m.Config.KeyMappings.SaveForm {
		return m.submitTaskForm()
	}

	model, cmd := form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		form = f
		m.FormState.SetTaskForm(f)
	}

	switch form.State {
	case huh.StateCompleted:
		return m.submitTaskForm()
	case huh.StateAborted:
		return m.closeTaskForm()
	}

	return m, cmd
}

// submitTaskForm creates the task. On a validation failure the form is
// rebuilt over the kept draft so the user can fix it.
func (m Model) submitTaskForm() (tea.Model, tea.Cmd) {
	if err := m.dispatch(app.SubmitForm{}); err != nil {
		return m.openTaskForm()
	}
	m.FormState.Clear()
	m.UIState.SetMode(state.NormalMode)
	m.clampSelection()
	return m, nil
}

// closeTaskForm discards the draft
func (m Model) closeTaskForm() (tea.Model, tea.Cmd) {
	m.dispatch(app.CloseForm{})
	m.FormState.Clear()
	m.UIState.SetMode(state.NormalMode)
	return m, nil
}
