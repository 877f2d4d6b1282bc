package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskflow/internal/app"
	"github.com/thenoetrevino/taskflow/internal/config"
	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/tui/components"
	"github.com/thenoetrevino/taskflow/internal/tui/state"
)

// listRowHeight is the line budget of one list row: title plus two description lines
const listRowHeight = 3

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	k := m.keys

	switch {
	case key.Matches(msg, k.Quit):
		return m.handleQuit()
	case key.Matches(msg, k.ShowHelp):
		m.UIState.SetMode(state.HelpMode)
		return m, nil
	case key.Matches(msg, k.AddTask):
		return m.handleAddTask()
	case key.Matches(msg, k.ToggleComplete):
		return m.handleTaskAction(func(id string) app.Action { return app.ToggleComplete{ID: id} })
	case key.Matches(msg, k.ToggleInProgress):
		return m.handleTaskAction(func(id string) app.Action { return app.ToggleInProgress{ID: id} })
	case key.Matches(msg, k.AdvanceStage):
		return m.handleTaskAction(func(id string) app.Action { return app.AdvanceStage{ID: id} })
	case key.Matches(msg, k.DeleteTask):
		return m.handleDeleteTask()
	case key.Matches(msg, k.ViewTask):
		return m.handleViewTask()
	case key.Matches(msg, k.ToggleView):
		return m.handleViewAction(app.ToggleViewMode{})
	case key.Matches(msg, k.CycleSort):
		m.dispatch(app.CycleSort{})
		m.clampSelection()
		return m, nil
	case key.Matches(msg, k.NextProject):
		return m.handleViewAction(app.CycleProject{Step: 1})
	case key.Matches(msg, k.PrevProject):
		return m.handleViewAction(app.CycleProject{Step: -1})
	case key.Matches(msg, k.AllProjects):
		return m.handleViewAction(app.SetProject{ID: models.AllProjects})
	case key.Matches(msg, k.ToggleTheme):
		return m.handleToggleTheme()
	case key.Matches(msg, k.PrevTask):
		return m.handleNavigateVertical(-1)
	case key.Matches(msg, k.NextTask):
		return m.handleNavigateVertical(1)
	case key.Matches(msg, k.PrevColumn):
		return m.handleNavigateHorizontal(-1)
	case key.Matches(msg, k.NextColumn):
		return m.handleNavigateHorizontal(1)
	}

	return m, nil
}

// handleQuit writes a final snapshot first. The program exits once the
// last write reports back.
func (m Model) handleQuit() (tea.Model, tea.Cmd) {
	if m.saver == nil {
		return m, tea.Quit
	}
	m.quitting = true
	return m, m.requestSave()
}

func (m Model) handleAddTask() (tea.Model, tea.Cmd) {
	// A fresh draft starts on the first project whatever the filter
	m.App.Form().Reset()
	m.dispatch(app.OpenForm{})
	return m.openTaskForm()
}

// handleTaskAction dispatches an action for the selected task
func (m Model) handleTaskAction(build func(id string) app.Action) (tea.Model, tea.Cmd) {
	task := m.currentTask(m.App.Snapshot())
	if task == nil {
		return m, nil
	}
	m.dispatch(build(task.ID))
	m.clampSelection()
	return m, nil
}

func (m Model) handleDeleteTask() (tea.Model, tea.Cmd) {
	task := m.currentTask(m.App.Snapshot())
	if task == nil {
		return m, nil
	}
	m.UIState.RequestDelete(task.ID)
	return m, nil
}

func (m Model) handleViewTask() (tea.Model, tea.Cmd) {
	if m.currentTask(m.App.Snapshot()) == nil {
		return m, nil
	}
	m.UIState.SetMode(state.DetailMode)
	return m, nil
}

// handleViewAction applies a view change and starts from the top
func (m Model) handleViewAction(action app.Action) (tea.Model, tea.Cmd) {
	m.dispatch(action)
	m.UIState.ResetSelection()
	return m, nil
}

// handleToggleTheme flips between the light preset and the dark default
func (m Model) handleToggleTheme() (tea.Model, tea.Cmd) {
	next := "light"
	if m.Config.ColorScheme.Preset == "light" {
		next = "default"
	}
	m.Config.ColorScheme = config.PresetColorScheme(next)
	components.InitStyles(m.Config.ColorScheme)
	m.logger.Debug("theme toggled", "preset", next)
	return m, nil
}

func (m Model) handleNavigateVertical(delta int) (tea.Model, tea.Cmd) {
	snap := m.App.Snapshot()
	if !m.UIState.MoveSelection(delta, len(m.currentTasks(snap))) {
		return m, nil
	}
	m.UIState.EnsureTaskVisible(m.UIState.SelectedColumn(), m.visibleRows(snap.View.ViewMode))
	return m, nil
}

func (m Model) handleNavigateHorizontal(delta int) (tea.Model, tea.Cmd) {
	if m.App.View().ViewMode != app.BoardView {
		return m, nil
	}
	col := m.UIState.SelectedColumn() + delta
	if col < 0 || col >= len(models.Statuses()) {
		return m, nil
	}
	m.UIState.SetSelectedColumn(col)
	m.clampSelection()
	m.UIState.EnsureTaskVisible(col, m.visibleRows(app.BoardView))
	return m, nil
}

// visibleRows is how many rows or cards fit on screen in the given view
func (m Model) visibleRows(mode app.ViewMode) int {
	if mode == app.BoardView {
		return components.VisibleCards(m.UIState.ContentHeight())
	}
	return max(m.UIState.ContentHeight()/listRowHeight, 1)
}

// dispatch runs an action. Validation failures already reached the user
// as store notifications, so only unexpected errors are surfaced here.
func (m Model) dispatch(action app.Action) error {
	err := m.App.Dispatch(action)
	if err != nil && !app.IsValidationError(err) {
		m.logger.Error("action failed", "action", action, "error", err)
		m.NotificationState.Add(events.Notification{
			Kind:      events.ValidationFailed,
			Level:     events.LevelError,
			Message:   err.Error(),
			Timestamp: m.App.Now(),
		})
	}
	return err
}
