package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/app"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/config"
	"github.com/thenoetrevino/taskflow/internal/config/colors"
	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/launcher"
)

// rootOptions holds the persistent flags shared by every command
type rootOptions struct {
	dbPath     string
	noSeed     bool
	theme      string
	configPath string

	now func() time.Time
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}

// NewRootCmd builds the taskflow command tree
func NewRootCmd() *cobra.Command {
	return newRootCmd(time.Now)
}

func newRootCmd(now func() time.Time) *cobra.Command {
	opts := &rootOptions{now: now}

	rootCmd := &cobra.Command{
		Use:   "taskflow",
		Short: "Taskflow - Task Management in the terminal",
		Long: `Taskflow is a terminal task manager with project filters,
list and board views, and live task statistics.

Run without a subcommand to open the interactive UI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			return launcher.Launch(cfg, opts.sessionOptions(cfg, nil))
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.dbPath, "db", "", "persist the session to a sqlite snapshot at this path (\"default\" for ~/.taskflow/tasks.db)")
	flags.BoolVar(&opts.noSeed, "no-seed", false, "start without the sample tasks")
	flags.StringVar(&opts.theme, "theme", "", "color preset (default, light, monochrome)")
	flags.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/taskflow/config.yaml)")

	rootCmd.AddCommand(
		newListCmd(opts),
		newStatsCmd(opts),
		newAddCmd(opts),
	)

	return rootCmd
}

// loadConfig reads the config file and applies flag overrides
func (o *rootOptions) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFile(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if o.theme != "" {
		if !slices.Contains(colors.Presets(), o.theme) {
			return nil, fmt.Errorf("unknown theme %q (want one of %v)", o.theme, colors.Presets())
		}
		cfg.ColorScheme = config.PresetColorScheme(o.theme)
	}
	return cfg, nil
}

// sessionOptions merges config and flags; flags win
func (o *rootOptions) sessionOptions(cfg *config.Config, view *app.ViewState) cli.Options {
	dbPath := cfg.Session.DBPath
	if o.dbPath != "" {
		dbPath = o.dbPath
	}
	return cli.Options{
		DBPath: dbPath,
		Seed:   !o.noSeed && cfg.Session.SeedEnabled(),
		Clock:  o.now,
		View:   view,
	}
}

// openSession opens a session for a one-shot command. Logs are discarded
// so they never mix with command output.
func (o *rootOptions) openSession(cmd *cobra.Command, view *app.ViewState, publisher *events.Recorder) (*cli.Session, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	opts := o.sessionOptions(cfg, view)
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	if publisher != nil {
		opts.Publisher = publisher
	}
	return cli.Open(cmd.Context(), opts)
}

func formatter(cmd *cobra.Command, jsonOutput bool) *cli.OutputFormatter {
	return &cli.OutputFormatter{
		JSON: jsonOutput,
		Out:  cmd.OutOrStdout(),
		Err:  cmd.ErrOrStderr(),
	}
}
