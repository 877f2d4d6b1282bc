package task

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// Option is a functional option for configuring the store
type Option func(*service)

// WithClock overrides the time source used for timestamps
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides how fresh task ids are produced
func WithIDGenerator(gen func() string) Option {
	return func(s *service) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithPublisher sets where mutation notifications go
func WithPublisher(p events.Publisher) Option {
	return func(s *service) {
		if p != nil {
			s.publisher = p
		}
	}
}

// WithLogger sets the logger for the store
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTasks seeds the collection. Tasks are cloned; duplicate ids after
// the first occurrence are skipped.
func WithTasks(tasks []*models.Task) Option {
	return func(s *service) {
		s.replace(tasks)
	}
}

func defaultIDGenerator() string {
	return uuid.NewString()
}
