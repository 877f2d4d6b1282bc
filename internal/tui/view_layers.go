package tui

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskflow/internal/app"
	"github.com/thenoetrevino/taskflow/internal/tui/components"
	"github.com/thenoetrevino/taskflow/internal/tui/layers"
	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

// renderTaskFormLayer renders the create form modal as a layer
func (m Model) renderTaskFormLayer() *lipgloss.Layer {
	form := m.FormState.TaskForm()
	if form == nil {
		return nil
	}

	width := layers.ModalWidth(m.UIState.Width(), 0, layers.FormMinWidth, layers.FormMaxWidth)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight))
	helpText := components.SubtleStyle.Render(
		"tab: next  shift+tab: back  " + m.Config.KeyMappings.SaveForm + ": save  esc: cancel")

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Create New Task"),
		"",
		form.View(),
		"",
		helpText,
	)

	formBox := components.FormBoxStyle.
		Width(width).
		Render(content)

	return layers.CreateCenteredLayer(formBox, m.UIState.Width(), m.UIState.Height())
}

// renderHelpLayer renders the keyboard shortcuts help screen as a layer
func (m Model) renderHelpLayer() *lipgloss.Layer {
	width := layers.ModalWidth(m.UIState.Width(), 0, layers.HelpMinWidth, layers.HelpMaxWidth)

	h := m.help
	h.SetWidth(width - 4)
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		components.TitleStyle.Render("Keyboard Shortcuts"),
		"",
		h.FullHelpView(m.keys.FullHelp()),
		"",
		components.SubtleStyle.Render("Press esc to close"),
	)

	helpBox := components.HelpBoxStyle.
		Width(width).
		Render(content)

	return layers.CreateCenteredLayer(helpBox, m.UIState.Width(), m.UIState.Height())
}

// renderDetailLayer renders the selected task's details as a layer
func (m Model) renderDetailLayer(snap app.Snapshot) *lipgloss.Layer {
	task := m.currentTask(snap)
	if task == nil {
		return nil
	}

	width := layers.ModalWidth(m.UIState.Width(), 0, layers.DetailMinWidth, layers.DetailMaxWidth)
	km := m.Config.KeyMappings

	content := components.RenderTaskView(components.TaskViewProps{
		Task:       task,
		Project:    m.project(task.ProjectID),
		Now:        snap.Now,
		PopupWidth: width,
		Footer:     "esc: close  " + km.ToggleComplete + ": toggle complete",
	})

	detailBox := components.DetailBoxStyle.
		Width(width).
		Render(content)

	return layers.CreateCenteredLayer(detailBox, m.UIState.Width(), m.UIState.Height())
}

// renderDeleteConfirmLayer asks before removing the pending task
func (m Model) renderDeleteConfirmLayer() *lipgloss.Layer {
	task := selectedTaskFor(m.App.Snapshot(), m.UIState.PendingDeleteID())
	if task == nil {
		return nil
	}

	confirmBox := components.DeleteConfirmBoxStyle.
		Width(layers.ConfirmWidth).
		Render(fmt.Sprintf("Delete '%s'?\n\n[y]es  [n]o", task.Title))

	return layers.CreateCenteredLayer(confirmBox, m.UIState.Width(), m.UIState.Height())
}
