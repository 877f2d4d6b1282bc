package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/models"
	taskservice "github.com/thenoetrevino/taskflow/internal/services/task"
)

// App is the application state object: it owns the task store, the view
// selection and the create form. All changes go through Dispatch.
type App struct {
	store  taskservice.Service
	view   ViewState
	form   *FormController
	now    func() time.Time
	logger *slog.Logger
}

// New creates an App around an existing store
func New(store taskservice.Service, opts ...Option) *App {
	cfg := &appConfig{
		publisher: events.Nop{},
		logger:    slog.Default(),
		now:       time.Now,
		location:  time.Local,
		view:      DefaultViewState(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	form := NewFormController(defaultProjectID(store), cfg.publisher)
	form.now = cfg.now
	form.loc = cfg.location

	return &App{
		store:  store,
		view:   cfg.view,
		form:   form,
		now:    cfg.now,
		logger: cfg.logger,
	}
}

func defaultProjectID(store taskservice.Service) string {
	if projects := store.Projects(); len(projects) > 0 {
		return projects[0].ID
	}
	return ""
}

// Store returns the underlying task store
func (a *App) Store() taskservice.Service {
	return a.store
}

// View returns the current view selection
func (a *App) View() ViewState {
	return a.view
}

// Form returns the create form controller
func (a *App) Form() *FormController {
	return a.form
}

// Now reads the application clock
func (a *App) Now() time.Time {
	return a.now()
}

// ProjectFilters lists the project tab ids in display order, starting with "all"
func (a *App) ProjectFilters() []string {
	projects := a.store.Projects()
	ids := make([]string, 0, len(projects)+1)
	ids = append(ids, models.AllProjects)
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	return ids
}

// ProjectName returns the display name for a filter id
func (a *App) ProjectName(id string) string {
	if id == models.AllProjects {
		return "All Projects"
	}
	if p, ok := a.store.Project(id); ok {
		return p.Name
	}
	return id
}

// EmptyMessage is shown when the active filter matches no tasks
func (a *App) EmptyMessage() string {
	if a.view.ActiveProjectID == models.AllProjects {
		return "Create your first task to get started!"
	}
	return "No tasks in " + a.ProjectName(a.view.ActiveProjectID) + " project"
}
