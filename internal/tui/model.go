// Package tui is the terminal presenter: it turns key presses into app
// actions and renders app snapshots.
package tui

import (
	"context"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskflow/internal/app"
	"github.com/thenoetrevino/taskflow/internal/config"
	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/tui/components"
	"github.com/thenoetrevino/taskflow/internal/tui/state"
)

// saveTimeout bounds a single snapshot write
const saveTimeout = 5 * time.Second

// SnapshotSaver persists the task collection. *database.TaskRepo implements it.
type SnapshotSaver interface {
	Save(ctx context.Context, tasks []*models.Task) error
}

// Model represents the application state for the TUI
type Model struct {
	Ctx    context.Context
	App    *app.App
	Config *config.Config

	UIState           *state.UIState
	NotificationState *state.NotificationState
	FormState         *state.FormState

	keys KeyMap
	help help.Model

	notifications <-chan events.Notification
	saver         SnapshotSaver
	logger        *slog.Logger

	// At most one snapshot write runs at a time; later requests collapse
	// into saveQueued and run when it finishes.
	saving     bool
	saveQueued bool
	quitting   bool
}

// Option configures a Model
type Option func(*Model)

// WithNotifications subscribes the model to a notification channel
func WithNotifications(ch <-chan events.Notification) Option {
	return func(m *Model) {
		m.notifications = ch
	}
}

// WithSaver writes a snapshot after every mutation and on quit
func WithSaver(s SnapshotSaver) Option {
	return func(m *Model) {
		m.saver = s
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// InitialModel creates the TUI model around an App
func InitialModel(ctx context.Context, a *app.App, cfg *config.Config, opts ...Option) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	components.InitStyles(cfg.ColorScheme)

	m := Model{
		Ctx:               ctx,
		App:               a,
		Config:            cfg,
		UIState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
		FormState:         state.NewFormState(),
		keys:              NewKeyMap(cfg.KeyMappings),
		help:              help.New(),
		logger:            slog.Default(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts listening for store notifications
func (m Model) Init() tea.Cmd {
	return waitForNotification(m.Ctx, m.notifications)
}

// currentTasks returns the tasks under the cursor's column.
// In list view there is a single column holding every visible task.
func (m Model) currentTasks(snap app.Snapshot) []*models.Task {
	if snap.View.ViewMode == app.ListView {
		return snap.Tasks
	}
	columns := snap.Board.Columns()
	col := m.UIState.SelectedColumn()
	if col < 0 || col >= len(columns) {
		return nil
	}
	return columns[col].Tasks
}

// currentTask returns the selected task, or nil if nothing is selected
func (m Model) currentTask(snap app.Snapshot) *models.Task {
	tasks := m.currentTasks(snap)
	i := m.UIState.SelectedTask()
	if i < 0 || i >= len(tasks) {
		return nil
	}
	return tasks[i]
}

// clampSelection keeps the cursor inside the current column after the
// collection or the view changes
func (m Model) clampSelection() {
	snap := m.App.Snapshot()
	if snap.View.ViewMode == app.ListView {
		m.UIState.SetSelectedColumn(0)
	}
	m.UIState.ClampSelection(len(m.currentTasks(snap)))
}

// project looks up a project for rendering
func (m Model) project(id string) *models.Project {
	p, ok := m.App.Store().Project(id)
	if !ok {
		return nil
	}
	return p
}
