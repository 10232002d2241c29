package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekgrid/internal/config"
	"github.com/javiermolinar/weekgrid/internal/dateutil"
	"github.com/javiermolinar/weekgrid/internal/logging"
	"github.com/javiermolinar/weekgrid/internal/schedule"
	"github.com/javiermolinar/weekgrid/internal/store"
	"github.com/javiermolinar/weekgrid/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config     *config.Config
	configPath string // --config, empty for the default path
	root       *cobra.Command
	debug      bool   // Enable debug logging
	week       string // --week, a date inside the week to open
	now        dateutil.Clock
	runTUI     func(ctx context.Context, st store.Store, cfg *config.Config, opts tui.RunOptions) error
	closeLog   func()
}

// NewApp creates a new CLI application. A nil cfg is loaded from --config,
// or the default path, once flags are parsed.
func NewApp(cfg *config.Config) *App {
	a := &App{
		config:   cfg,
		now:      dateutil.SystemClock,
		runTUI:   tui.Run,
		closeLog: func() {},
	}

	a.root = &cobra.Command{
		Use:   "weekgrid",
		Short: "A terminal week planner with hourly slots",
		Long: `Weekgrid shows the current ISO week as a grid of hourly slots
(08:00 to 20:00, Monday to Sunday).

Hover a slot to preview it, click it to select, type a note and press
enter to save. Every week is stored on its own and loaded on demand.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runInteractive(cmd.Context())
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to "+logging.DebugLogPath+")")
	a.root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default "+config.DefaultConfigPath()+")")
	a.root.PersistentFlags().StringVar(&a.week, "week", "", "Week to open: YYYY-MM-DD, today, last-week or next-week")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.exportCmd())

	return a
}

// setup loads the configuration and configures logging. --config wins over
// any config passed to NewApp. The TUI owns the terminal, so the root command
// logs nowhere unless --debug is set.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	switch {
	case a.configPath != "":
		cfg, err := config.LoadFrom(a.configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		a.config = cfg
	case a.config == nil:
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		a.config = cfg
	}

	closeLog, err := logging.Setup(logging.Options{
		Debug: a.debug,
		Quiet: cmd == a.root,
		Level: a.config.Log.Level,
	})
	if err != nil {
		return err
	}
	a.closeLog = closeLog
	return nil
}

// anchor resolves --week against the clock.
func (a *App) anchor() (time.Time, error) {
	t, err := dateutil.ParseWeekDate(a.week, a.now())
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing --week %q: %w", a.week, err)
	}
	return t, nil
}

func (a *App) runInteractive(ctx context.Context) error {
	anchor, err := a.anchor()
	if err != nil {
		return err
	}

	st, err := store.Open(a.config)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer func() { _ = st.Close() }()

	return a.runTUI(ctx, st, a.config, tui.RunOptions{Anchor: anchor, Clock: a.now})
}

// loadWeek opens the store and loads the week selected by --week.
func (a *App) loadWeek(ctx context.Context) (dateutil.WeekID, *schedule.WeekGrid, error) {
	anchor, err := a.anchor()
	if err != nil {
		return dateutil.WeekID{}, nil, err
	}
	week := dateutil.WeekOf(anchor)

	st, err := store.Open(a.config)
	if err != nil {
		return week, nil, fmt.Errorf("opening store: %w", err)
	}
	defer func() { _ = st.Close() }()

	grid, err := st.Load(ctx, week)
	if err != nil {
		return week, nil, fmt.Errorf("loading week %s: %w", week, err)
	}
	return week, grid, nil
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "weekgrid %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.ExecuteContext(context.Background())
}

// ExecuteContext runs the CLI application with ctx.
func (a *App) ExecuteContext(ctx context.Context) error {
	return a.root.ExecuteContext(ctx)
}

// Close flushes the debug log, if any.
func (a *App) Close() error {
	a.closeLog()
	return nil
}
