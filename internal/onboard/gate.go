// Package onboard decides at startup whether setup must run, and runs
// the interactive setup that provisions optional shell components.
package onboard

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/marcus/arb/internal/state"
)

// Stage is the outcome of the startup version check.
type Stage int

const (
	// FirstRun: no version has ever been persisted.
	FirstRun Stage = iota
	// Upgrade: the persisted version is older than this build requires.
	Upgrade
	// Normal: nothing to do.
	Normal
)

func (s Stage) String() string {
	switch s {
	case FirstRun:
		return "first-run"
	case Upgrade:
		return "upgrade"
	default:
		return "normal"
	}
}

// NeedsOnboarding reports whether s triggers the workflow.
func (s Stage) NeedsOnboarding() bool { return s != Normal }

// Evaluate compares the persisted config version with required. An
// unreadable or corrupt version file counts as absent; the returned error
// is for logging only and the stage is always usable.
func Evaluate(store *state.Store, required int) (Stage, error) {
	n, ok, err := store.LoadVersion()
	if err != nil {
		return FirstRun, err
	}
	switch {
	case !ok:
		return FirstRun, nil
	case n < required:
		return Upgrade, nil
	default:
		return Normal, nil
	}
}

// Launcher starts the onboarding workflow outside the caller's event
// loop.
type Launcher interface {
	Launch(ctx context.Context, stage Stage) error
}

// ProcessLauncher runs the workflow as a separate process.
type ProcessLauncher struct {
	Exe  string
	Args []string
	// Wait blocks until the workflow exits. When false the process is
	// started and released.
	Wait           bool
	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

// StageEnv carries the gate's stage into a launched workflow.
const StageEnv = "ARB_ONBOARD_STAGE"

// NewProcessLauncher returns a launcher that runs "<this executable>
// onboard --no-shell" attached to the current terminal. The child exits
// when the workflow ends so the caller can continue starting up.
func NewProcessLauncher() (*ProcessLauncher, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("locate executable: %w", err)
	}
	return &ProcessLauncher{
		Exe:    exe,
		Args:   []string{"onboard", "--no-shell"},
		Wait:   true,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}, nil
}

func (l *ProcessLauncher) Launch(ctx context.Context, stage Stage) error {
	cmd := exec.CommandContext(ctx, l.Exe, l.Args...)
	cmd.Env = append(os.Environ(), StageEnv+"="+stage.String())
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	if l.Wait {
		return cmd.Run()
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// Gate runs the version check once per process start.
type Gate struct {
	Store    *state.Store
	Required int
	Launcher Launcher
	Logger   *slog.Logger
}

// Run evaluates the stage and launches onboarding when needed. A launch
// failure is returned alongside the stage; callers log it and continue
// starting up.
func (g *Gate) Run(ctx context.Context) (Stage, error) {
	logger := g.Logger
	if logger == nil {
		logger = slog.Default()
	}

	stage, err := Evaluate(g.Store, g.Required)
	if err != nil {
		logger.Warn("treating config version as absent", "err", err)
	}
	logger.Debug("version gate", "stage", stage, "required", g.Required)

	if !stage.NeedsOnboarding() || g.Launcher == nil {
		return stage, nil
	}
	if err := g.Launcher.Launch(ctx, stage); err != nil {
		return stage, fmt.Errorf("launch onboarding: %w", err)
	}
	return stage, nil
}
