package onboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"mvdan.cc/sh/v3/syntax"

	"github.com/marcus/arb/internal/config"
	"github.com/marcus/arb/internal/styles"
)

// Installer provisions one optional component.
type Installer interface {
	ID() string
	Title() string
	Description() string
	Install(ctx context.Context) error
	// RetryHint is the command a user can run to retry by hand.
	RetryHint() string
}

// InstallError reports a failed component.
type InstallError struct {
	Component string
	Hint      string
	Err       error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("install %s: %v", e.Component, e.Err)
}

func (e *InstallError) Unwrap() error { return e.Err }

// ShellInstaller installs the arb command wrapper and runs the zsh setup
// script from the resource directory.
type ShellInstaller struct {
	Resources string
	// CLI is the resolved arb binary; empty when none was found.
	CLI    string
	Home   string
	Runner Runner
}

func (s *ShellInstaller) ID() string    { return "shell" }
func (s *ShellInstaller) Title() string { return "Install shell enhancements?" }
func (s *ShellInstaller) Description() string {
	return "zsh plugins, the starship prompt and the arb command on your PATH"
}

func (s *ShellInstaller) script() string { return filepath.Join(s.Resources, setupScript) }

func (s *ShellInstaller) RetryHint() string {
	return "ARB_INIT_INTERNAL=1 /bin/bash " + s.script()
}

func (s *ShellInstaller) Install(ctx context.Context) error {
	preferred := s.CLI
	if preferred == "" {
		preferred = filepath.Join(appContents("/Applications"), "MacOS", "arb")
	}
	if err := InstallWrapper(WrapperPath(s.Home), preferred); err != nil {
		return err
	}
	return s.Runner.Run(ctx, Cmd{
		Name: "/bin/bash",
		Args: []string{s.script()},
		Env:  []string{"ARB_INIT_INTERNAL=1"},
	})
}

// WrapperPath is where the arb command wrapper is installed.
func WrapperPath(home string) string {
	return filepath.Join(home, ".config", "arb", "zsh", "bin", "arb")
}

const wrapperScript = `#!/bin/bash
set -euo pipefail

if [[ -n "${ARB_BIN:-}" && -x "${ARB_BIN}" ]]; then
	exec "${ARB_BIN}" "$@"
fi

for candidate in \
	%s \
	"/Applications/Arb.app/Contents/MacOS/arb" \
	"$HOME/Applications/Arb.app/Contents/MacOS/arb"; do
	if [[ -n "$candidate" && -x "$candidate" ]]; then
		exec "$candidate" "$@"
	fi
done

echo "arb: Arb.app not found. Expected /Applications/Arb.app." >&2
exit 127
`

// WrapperScript returns the wrapper contents preferring bin. $ARB_BIN
// still takes precedence at run time.
func WrapperScript(bin string) (string, error) {
	quoted, err := syntax.Quote(bin, syntax.LangBash)
	if err != nil {
		return "", fmt.Errorf("quote %q: %w", bin, err)
	}
	return fmt.Sprintf(wrapperScript, quoted), nil
}

// InstallWrapper writes the wrapper to path, replacing a symlink left by
// older installs.
func InstallWrapper(path, bin string) error {
	body, err := WrapperScript(bin)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create wrapper directory: %w", err)
	}
	if info, err := os.Lstat(path); err == nil && info.Mode()&os.ModeSymlink != 0 {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove legacy symlink wrapper %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, []byte(body), 0755); err != nil {
		return fmt.Errorf("write wrapper %s: %w", path, err)
	}
	// WriteFile keeps the mode of an existing file.
	return os.Chmod(path, 0755)
}

// ThemeInstaller creates config.json with a theme pair so windows follow
// the system appearance. It never selects a theme in .theme; that file
// holds only choices the user makes.
type ThemeInstaller struct {
	ConfigPath string
	// Pair is written into a new config. A zero Pair keeps the defaults.
	Pair   styles.Pair
	Logger *slog.Logger
}

func (t *ThemeInstaller) ID() string    { return "theme" }
func (t *ThemeInstaller) Title() string { return "Apply the Arb theme?" }
func (t *ThemeInstaller) Description() string {
	p := t.pair()
	return fmt.Sprintf("writes a default config.json using %s in dark mode and %s in light mode", p.Dark, p.Light)
}
func (t *ThemeInstaller) RetryHint() string { return "arb onboard" }

func (t *ThemeInstaller) pair() styles.Pair {
	p := config.Default().Appearance.Pair()
	if t.Pair.Dark != "" {
		p.Dark = t.Pair.Dark
	}
	if t.Pair.Light != "" {
		p.Light = t.Pair.Light
	}
	return p
}

func (t *ThemeInstaller) Install(ctx context.Context) error {
	logger := t.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if _, err := os.Stat(t.ConfigPath); err == nil {
		logger.Debug("config exists, leaving it", "path", t.ConfigPath)
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	cfg := config.Default()
	p := t.pair()
	cfg.Appearance.Dark, cfg.Appearance.Light = p.Dark, p.Light
	if err := config.SaveTo(t.ConfigPath, cfg); err != nil {
		return err
	}
	logger.Info("created config", "path", t.ConfigPath, "dark", p.Dark, "light", p.Light)
	return nil
}

// DeltaInstaller installs delta and makes it git's pager unless another
// pager is configured.
type DeltaInstaller struct {
	Resources string
	Runner    Runner
	Logger    *slog.Logger
}

const deltaScript = "install_delta.sh"

func (d *DeltaInstaller) ID() string    { return "delta" }
func (d *DeltaInstaller) Title() string { return "Install delta for git diffs?" }
func (d *DeltaInstaller) Description() string {
	return "syntax-highlighted diffs, set as git's pager if none is configured"
}
func (d *DeltaInstaller) RetryHint() string {
	return "/bin/bash " + filepath.Join(d.Resources, deltaScript)
}

func (d *DeltaInstaller) Install(ctx context.Context) error {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if _, err := d.Runner.LookPath("delta"); err != nil {
		script := filepath.Join(d.Resources, deltaScript)
		if !fileExists(script) {
			return fmt.Errorf("delta is not installed and %s is missing", script)
		}
		if err := d.Runner.Run(ctx, Cmd{Name: "/bin/bash", Args: []string{script}}); err != nil {
			return err
		}
		if _, err := d.Runner.LookPath("delta"); err != nil {
			return fmt.Errorf("delta not on PATH after install: %w", err)
		}
	}

	// git exits 1 when the key is unset.
	pager, _ := d.Runner.Output(ctx, Cmd{Name: "git", Args: []string{"config", "--global", "--get", "core.pager"}})
	if pager != "" {
		if pager != "delta" {
			logger.Info("keeping existing git pager", "pager", pager)
		}
		return nil
	}

	for _, args := range [][]string{
		{"config", "--global", "core.pager", "delta"},
		{"config", "--global", "interactive.diffFilter", "delta --color-only"},
	} {
		if err := d.Runner.Run(ctx, Cmd{Name: "git", Args: args}); err != nil {
			return err
		}
	}
	return nil
}
