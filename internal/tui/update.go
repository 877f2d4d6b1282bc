package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UIState.SetWidth(msg.Width)
		m.UIState.SetHeight(msg.Height)
		return m, nil

	case notificationMsg:
		n := events.Notification(msg)
		m.NotificationState.Add(n)
		cmds := []tea.Cmd{
			waitForNotification(m.Ctx, m.notifications),
			expireNotificationsAfter(state.NotificationTTL),
		}
		if mutates(n.Kind) {
			m.clampSelection()
			cmds = append(cmds, m.requestSave())
		}
		return m, tea.Batch(cmds...)

	case notificationsClosedMsg:
		m.logger.Debug("notification channel closed")
		return m, nil

	case expireNotificationsMsg:
		m.NotificationState.Expire(time.Time(msg), state.NotificationTTL)
		return m, nil

	case snapshotSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.logger.Error("failed to save snapshot", "error", msg.err)
		}
		if m.saveQueued {
			m.saveQueued = false
			return m, m.requestSave()
		}
		if m.quitting {
			return m, tea.Quit
		}
		return m, nil
	}

	// The form gets every remaining message, not only key presses
	if m.UIState.Mode() == state.FormMode {
		return m.updateTaskForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch m.UIState.Mode() {
	case state.NormalMode:
		return m.handleNormalMode(keyMsg)
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirm(keyMsg)
	case state.HelpMode:
		return m.handleHelpMode(keyMsg)
	case state.DetailMode:
		return m.handleDetailMode(keyMsg)
	}
	return m, nil
}
