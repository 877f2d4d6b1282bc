package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskflow/internal/app"
	"github.com/thenoetrevino/taskflow/internal/tui/state"
)

// handleDeleteConfirm handles task deletion confirmation
func (m Model) handleDeleteConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m.confirmDeleteTask()
	case "n", "N", "esc":
		m.UIState.ClearDelete()
		return m, nil
	}
	return m, nil
}

// confirmDeleteTask performs the actual task deletion
func (m Model) confirmDeleteTask() (tea.Model, tea.Cmd) {
	if id := m.UIState.PendingDeleteID(); id != "" {
		m.dispatch(app.DeleteTask{ID: id})
	}
	m.UIState.ClearDelete()
	m.clampSelection()
	return m, nil
}

// handleHelpMode closes the help screen
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q", m.Config.KeyMappings.ShowHelp:
		m.UIState.SetMode(state.NormalMode)
	}
	return m, nil
}

// handleDetailMode closes the detail view; the status keys still work
func (m Model) handleDetailMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings
	switch msg.String() {
	case "esc", "q", km.ViewTask:
		m.UIState.SetMode(state.NormalMode)
	case km.ToggleComplete, "space":
		if task := m.currentTask(m.App.Snapshot()); task != nil {
			m.dispatch(app.ToggleComplete{ID: task.ID})
			m.UIState.SetMode(state.NormalMode)
			m.clampSelection()
		}
	}
	return m, nil
}
