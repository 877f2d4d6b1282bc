package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/taskflow/internal/app"
	"github.com/thenoetrevino/taskflow/internal/database"
	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/models"
	taskservice "github.com/thenoetrevino/taskflow/internal/services/task"
)

// DefaultDBPath selects the snapshot at database.DefaultPath
const DefaultDBPath = "default"

// Options describe how a session is assembled
type Options struct {
	// DBPath enables the sqlite snapshot; empty keeps the session in memory
	// and DefaultDBPath uses ~/.taskflow/tasks.db
	DBPath string
	// Seed loads the sample tasks when nothing was restored
	Seed      bool
	Publisher events.Publisher
	Clock     func() time.Time
	// Location is the zone due dates are parsed and restored in; nil means local
	Location *time.Location
	Logger   *slog.Logger
	View     *app.ViewState
}

// Session is one run of taskflow: the app plus its optional snapshot storage
type Session struct {
	App  *app.App
	Repo *database.TaskRepo // nil without a DBPath

	db     *sql.DB
	logger *slog.Logger
}

// Open builds the store, restores the snapshot if one is configured, and
// falls back to the seed tasks when the snapshot is empty
func Open(ctx context.Context, opts Options) (*Session, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	publisher := opts.Publisher
	if publisher == nil {
		publisher = events.Nop{}
	}

	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	s := &Session{logger: logger}

	var (
		tasks []*models.Task
		found bool
	)
	if opts.DBPath != "" {
		path, err := resolveDBPath(opts.DBPath)
		if err != nil {
			return nil, err
		}
		db, err := database.Open(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to open snapshot: %w", err)
		}
		s.db = db
		s.Repo = database.NewTaskRepo(db)

		tasks, found, err = s.Repo.Load(ctx, loc)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("failed to load snapshot: %w", err)
		}
		logger.Info("snapshot restored", "path", path, "found", found, "count", len(tasks))
	}
	// A saved but empty snapshot means the user deleted everything
	if !found && opts.Seed {
		tasks = models.SeedTasks()
	}

	store := taskservice.NewService(
		taskservice.WithClock(clock),
		taskservice.WithPublisher(publisher),
		taskservice.WithLogger(logger),
		taskservice.WithTasks(tasks),
	)

	appOpts := []app.Option{
		app.WithClock(clock),
		app.WithLocation(loc),
		app.WithPublisher(publisher),
		app.WithLogger(logger),
	}
	if opts.View != nil {
		appOpts = append(appOpts, app.WithViewState(*opts.View))
	}
	s.App = app.New(store, appOpts...)

	return s, nil
}

func resolveDBPath(path string) (string, error) {
	if path != DefaultDBPath {
		return path, nil
	}
	return database.DefaultPath()
}

// Save writes the current collection to the snapshot, if one is configured
func (s *Session) Save(ctx context.Context) error {
	if s.Repo == nil {
		return nil
	}
	if err := s.Repo.Save(ctx, s.App.Store().Tasks()); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Close releases the database, if any
func (s *Session) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
