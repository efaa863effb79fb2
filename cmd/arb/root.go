package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/marcus/arb/internal/config"
	"github.com/marcus/arb/internal/engine"
	"github.com/marcus/arb/internal/onboard"
	"github.com/marcus/arb/internal/preview"
	"github.com/marcus/arb/internal/state"
	"github.com/marcus/arb/internal/styles"
	"github.com/marcus/arb/internal/theme"
	"github.com/marcus/arb/internal/version"
)

var (
	configPath string
	debugFlag  bool
	noOnboard  bool
)

// app is the state shared by every subcommand, built once per run.
type app struct {
	cfg    *config.Config
	store  *state.Store
	reg    *styles.Registry
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "arb",
		Short: "Theme, layout and onboarding engine for the Arb terminal",
		Long: `arb reconciles the effective theme and window layout from the system
appearance, config.json, the persisted theme selection and window geometry.

Run without a subcommand to check whether onboarding is due and open the
interactive preview window.`,
		SilenceUsage: true,
		RunE:         runRoot,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config.json (default: <config dir>/config.json)")
	root.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
	root.Flags().BoolVar(&noOnboard, "no-onboard", false, "skip the onboarding version check")

	root.AddCommand(newOnboardCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newThemeCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// setup loads config and installs the process-wide logger.
func setup() (*app, error) {
	// Bootstrap logger so config warnings have somewhere to go.
	slog.SetDefault(newLogger(slog.LevelInfo))

	if configPath != "" {
		config.SetTestConfigPath(config.ExpandPath(configPath))
	}
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load config, using defaults", "path", config.ConfigPath(), "err", err)
		cfg = config.Default()
	}

	level := cfg.Log.SlogLevel()
	if debugFlag {
		level = slog.LevelDebug
	}
	logger := newLogger(level)
	slog.SetDefault(logger)

	store, err := state.Open()
	if err != nil {
		return nil, fmt.Errorf("resolve config directory: %w", err)
	}

	return &app{
		cfg:    cfg,
		store:  store,
		reg:    styles.NewBuiltinRegistry(),
		logger: logger,
	}, nil
}

func newLogger(level slog.Level) *slog.Logger {
	handler := log.NewWithOptions(os.Stderr, log.Options{
		Level:           log.Level(level),
		ReportTimestamp: false,
		Prefix:          "arb",
	})
	return slog.New(handler)
}

func runRoot(cmd *cobra.Command, _ []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if !noOnboard {
		gate := &onboard.Gate{Store: a.store, Required: version.RequiredConfigVersion, Logger: a.logger}
		if launcher, err := onboard.NewProcessLauncher(); err != nil {
			a.logger.Warn("cannot launch onboarding", "err", err)
		} else {
			gate.Launcher = launcher
		}
		if stage, err := gate.Run(ctx); err != nil {
			a.logger.Warn("onboarding did not run", "stage", stage, "err", err)
		}
	}

	rec := engine.New(engine.Options{
		Registry:   a.reg,
		Store:      a.store,
		Config:     a.cfg,
		LoadConfig: config.Load,
		Logger:     a.logger,
	})

	reloads, err := config.Watch(ctx, a.store.Dir(), a.logger)
	if err != nil {
		a.logger.Warn("config watching disabled", "err", err)
		reloads = nil
	}

	appearance, source := theme.DetectAppearance()
	a.logger.Debug("detected appearance", "appearance", appearance, "source", source)

	p := tea.NewProgram(preview.New(rec, appearance, reloads), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run preview: %w", err)
	}
	return nil
}

// effectiveVersion returns the version string, with fallback to build info.
func effectiveVersion(v string) string {
	if v != "" && v != "dev" {
		return v
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	var revision string
	var dirty bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if revision == "" {
		return "dev"
	}
	ver := "devel+" + shortRevision(revision)
	if dirty {
		ver += "+dirty"
	}
	return ver
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
