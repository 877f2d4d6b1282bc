package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskflow/internal/events"
)

// waitForNotification returns a command that blocks on the next notification.
// Update re-arms it after every delivery.
func waitForNotification(ctx context.Context, ch <-chan events.Notification) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case n, ok := <-ch:
			if !ok {
				return notificationsClosedMsg{}
			}
			return notificationMsg(n)
		case <-ctx.Done():
			return nil
		}
	}
}

// expireNotificationsAfter schedules a cleanup pass
func expireNotificationsAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return expireNotificationsMsg(t)
	})
}

// requestSave starts a snapshot write, or queues one behind the write in flight
func (m *Model) requestSave() tea.Cmd {
	if m.saver == nil {
		return nil
	}
	if m.saving {
		m.saveQueued = true
		return nil
	}
	m.saving = true
	return m.saveSnapshot()
}

// saveSnapshot writes a copy of the collection taken now, not when the command runs
func (m Model) saveSnapshot() tea.Cmd {
	if m.saver == nil {
		return nil
	}
	tasks := m.App.Store().Tasks()
	ctx, saver := m.Ctx, m.saver
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, saveTimeout)
		defer cancel()
		return snapshotSavedMsg{err: saver.Save(ctx, tasks)}
	}
}

// mutates reports whether a notification follows a change to the collection
func mutates(kind events.Kind) bool {
	switch kind {
	case events.TaskCreated, events.TaskUpdated, events.TaskCompleted, events.TaskDeleted:
		return true
	}
	return false
}
