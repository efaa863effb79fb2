package onboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/marcus/arb/internal/state"
	"github.com/marcus/arb/internal/styles"
)

// Report summarizes one workflow run.
type Report struct {
	Resources string
	CLI       string
	Accepted  []string
	Installed []string
	Failed    []*InstallError
	// Skipped lists components that could not be offered.
	Skipped       []string
	EnsuredConfig bool
	Interrupted   bool
	VersionSaved  bool
}

// Workflow is the interactive onboarding procedure.
type Workflow struct {
	Store    *state.Store
	Required int
	Paths    Paths
	Prompter Prompter
	Runner   Runner
	Out      io.Writer
	Logger   *slog.Logger

	// ConfigPath is the config.json the theme component creates.
	ConfigPath string
	// Pair is written to a new config.json by the theme component.
	Pair styles.Pair
	// Banner is printed before the first prompt. Empty prints nothing.
	Banner string

	// Components builds the component list once resources and the CLI
	// are resolved. Defaults to DefaultComponents.
	Components func(w *Workflow, resources, cli string) []Installer
}

// DefaultComponents returns shell, theme and delta in prompt order. The
// shell and delta components need the resource directory.
func DefaultComponents(w *Workflow, resources, cli string) []Installer {
	var out []Installer
	if resources != "" {
		out = append(out, &ShellInstaller{Resources: resources, CLI: cli, Home: w.Paths.Home, Runner: w.Runner})
	}
	out = append(out, &ThemeInstaller{ConfigPath: w.ConfigPath, Pair: w.Pair, Logger: w.Logger})
	if resources != "" {
		out = append(out, &DeltaInstaller{Resources: resources, Runner: w.Runner, Logger: w.Logger})
	}
	return out
}

// Run executes the workflow. The required version is persisted when Run
// returns, whatever the outcome, so a failed optional step never causes
// onboarding to be offered again. Interruption returns ErrInterrupted.
func (w *Workflow) Run(ctx context.Context) (rep Report, err error) {
	logger := w.Logger
	if logger == nil {
		logger = slog.Default()
	}
	out := w.Out
	if out == nil {
		out = io.Discard
	}

	defer func() {
		if serr := w.Store.SaveVersion(w.Required); serr != nil {
			logger.Warn("failed to persist config version", "version", w.Required, "err", serr)
			return
		}
		rep.VersionSaved = true
		logger.Debug("persisted config version", "version", w.Required)
	}()

	if w.Banner != "" {
		fmt.Fprintln(out, w.Banner)
	}

	resources, rerr := w.Paths.ResolveResources()
	if rerr != nil {
		logger.Warn("resource directory not found, skipping shell and delta setup",
			"searched", w.Paths.ResourceCandidates())
		rep.Skipped = append(rep.Skipped, "shell", "delta")
	}
	rep.Resources = resources

	cli, cerr := w.Paths.ResolveCLI()
	if cerr != nil {
		logger.Warn("arb command not found, steps that call it will be skipped",
			"searched", w.Paths.CLICandidates())
	}
	rep.CLI = cli

	build := w.Components
	if build == nil {
		build = DefaultComponents
	}
	components := build(w, resources, cli)

	accepted, perr := w.choose(ctx, components)
	if perr != nil {
		if errors.Is(perr, ErrInterrupted) {
			rep.Interrupted = true
			fmt.Fprintln(out, "Setup interrupted. Run `arb onboard` to resume.")
		}
		return rep, perr
	}

	for _, c := range accepted {
		rep.Accepted = append(rep.Accepted, c.ID())
	}

	for _, c := range accepted {
		if ctx.Err() != nil {
			rep.Interrupted = true
			fmt.Fprintln(out, "Setup interrupted. Run `arb onboard` to resume.")
			return rep, ErrInterrupted
		}

		logger.Info("installing", "component", c.ID())
		if ierr := c.Install(ctx); ierr != nil {
			failure := &InstallError{Component: c.ID(), Hint: c.RetryHint(), Err: ierr}
			rep.Failed = append(rep.Failed, failure)
			logger.Warn("component failed, continuing", "component", c.ID(), "err", ierr)
			fmt.Fprintf(out, "! %s setup failed: %v\n  Retry manually with: %s\n", c.ID(), ierr, failure.Hint)
			continue
		}
		rep.Installed = append(rep.Installed, c.ID())
		fmt.Fprintf(out, "✓ %s\n", c.ID())
	}

	rep.EnsuredConfig = w.ensureUserConfig(ctx, cli, logger)

	w.summarize(out, rep)
	return rep, nil
}

// choose asks once for everything, then per component on decline.
func (w *Workflow) choose(ctx context.Context, components []Installer) ([]Installer, error) {
	if len(components) == 0 {
		return nil, nil
	}

	titles := make([]string, len(components))
	for i, c := range components {
		titles[i] = c.ID()
	}
	all, err := w.Prompter.Confirm(ctx, "Set up all recommended components?", strings.Join(titles, ", "))
	if err != nil {
		return nil, err
	}
	if all {
		return components, nil
	}

	var accepted []Installer
	for _, c := range components {
		ok, err := w.Prompter.Confirm(ctx, c.Title(), c.Description())
		if err != nil {
			return nil, err
		}
		if ok {
			accepted = append(accepted, c)
		}
	}
	return accepted, nil
}

// ensureUserConfig asks the CLI to create arb.lua if it is missing.
func (w *Workflow) ensureUserConfig(ctx context.Context, cli string, logger *slog.Logger) bool {
	if cli == "" {
		logger.Warn("skipping user config creation, arb command not found")
		return false
	}
	if err := w.Runner.Run(ctx, Cmd{Name: cli, Args: []string{"config", "--ensure-only"}}); err != nil {
		logger.Warn("failed to ensure user config", "err", err, "retry", "arb config --ensure-only")
		return false
	}
	return true
}

func (w *Workflow) summarize(out io.Writer, rep Report) {
	switch {
	case len(rep.Failed) > 0:
		fmt.Fprintf(out, "\nSetup finished with %d failed component(s). Run `arb onboard` to try again.\n", len(rep.Failed))
	case len(rep.Installed) > 0:
		fmt.Fprintln(out, "\nSetup complete.")
	default:
		fmt.Fprintln(out, "\nNothing installed. Run `arb onboard` any time to set things up.")
	}
}
