package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/taskflow/internal/events"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	publisher events.Publisher
	logger    *slog.Logger
	now       func() time.Time
	location  *time.Location
	view      ViewState
}

// WithPublisher sets where form validation notifications go.
// It should be the same publisher the store was built with.
func WithPublisher(p events.Publisher) Option {
	return func(cfg *appConfig) {
		if p != nil {
			cfg.publisher = p
		}
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithClock overrides the clock used for overdue checks and stats
func WithClock(now func() time.Time) Option {
	return func(cfg *appConfig) {
		if now != nil {
			cfg.now = now
		}
	}
}

// WithLocation sets the zone due dates are parsed in
func WithLocation(loc *time.Location) Option {
	return func(cfg *appConfig) {
		if loc != nil {
			cfg.location = loc
		}
	}
}

// WithViewState sets the initial view selection
func WithViewState(v ViewState) Option {
	return func(cfg *appConfig) {
		cfg.view = v
	}
}
