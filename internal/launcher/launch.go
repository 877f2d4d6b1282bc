// Package launcher wires a session to the terminal UI and runs it
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/config"
	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/logging"
	"github.com/thenoetrevino/taskflow/internal/tui"
)

// shutdownTimeout bounds the final snapshot write
const shutdownTimeout = 5 * time.Second

// Launch starts the TUI application
func Launch(cfg *config.Config, session cli.Options) error {
	// Initialize logging to file before anything else
	if err := logging.Init(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	publisher := events.NewChannelPublisher(events.DefaultBufferSize, logging.Logger)
	defer publisher.Close()

	session.Publisher = publisher
	session.Logger = logging.Logger
	s, err := cli.Open(ctx, session)
	if err != nil {
		return err
	}

	// Write the final snapshot even if the program was interrupted
	defer func() {
		saveCtx, saveCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer saveCancel()
		if err := s.Save(saveCtx); err != nil {
			slog.Error("error saving snapshot", "error", err)
		}
		if err := s.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	opts := []tui.Option{
		tui.WithNotifications(publisher.C()),
		tui.WithLogger(logging.Logger),
	}
	if s.Repo != nil {
		opts = append(opts, tui.WithSaver(s.Repo))
	}

	model := tui.InitialModel(ctx, s.App, cfg, opts...)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	slog.Info("taskflow started", "tasks", s.App.Store().Len(), "snapshot", session.DBPath != "")
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}
	if ctx.Err() != nil {
		slog.Info("shutdown signal received, cleaning up")
	}
	return nil
}
