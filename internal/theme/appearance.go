package theme

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Appearance is the OS light/dark mode.
type Appearance int

const (
	Dark Appearance = iota
	Light
)

func (a Appearance) String() string {
	if a == Light {
		return "light"
	}
	return "dark"
}

// Toggle returns the opposite appearance.
func (a Appearance) Toggle() Appearance {
	if a == Light {
		return Dark
	}
	return Light
}

// ParseAppearance accepts "dark" or "light" in any case.
func ParseAppearance(s string) (Appearance, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark":
		return Dark, true
	case "light":
		return Light, true
	}
	return Dark, false
}

// Detector reports the current appearance from one source.
type Detector interface {
	Name() string
	// Detect returns ok=false when the source has no opinion.
	Detect() (a Appearance, ok bool)
}

// DefaultDetectors returns the detectors consulted by DetectAppearance,
// highest priority first.
func DefaultDetectors() []Detector {
	return []Detector{
		EnvDetector{Var: "ARB_APPEARANCE"},
		macOSDetector{},
		terminalDetector{},
	}
}

// DetectAppearance queries detectors in order and returns the first
// answer along with the detector's name. With no answer it returns Dark
// and an empty source.
func DetectAppearance(detectors ...Detector) (Appearance, string) {
	if len(detectors) == 0 {
		detectors = DefaultDetectors()
	}
	for _, d := range detectors {
		if a, ok := d.Detect(); ok {
			return a, d.Name()
		}
	}
	return Dark, ""
}

// EnvDetector reads the appearance from an environment variable.
type EnvDetector struct {
	Var string
}

func (d EnvDetector) Name() string { return "env:" + d.Var }

func (d EnvDetector) Detect() (Appearance, bool) {
	return ParseAppearance(os.Getenv(d.Var))
}

// macOSDetector reads the global AppleInterfaceStyle default. The key is
// absent in light mode.
type macOSDetector struct{}

func (macOSDetector) Name() string { return "macos" }

func (macOSDetector) Detect() (Appearance, bool) {
	if runtime.GOOS != "darwin" {
		return Dark, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	out, err := exec.CommandContext(ctx, "defaults", "read", "-g", "AppleInterfaceStyle").Output()
	if err != nil {
		if ctx.Err() != nil {
			return Dark, false
		}
		return Light, true
	}
	if strings.TrimSpace(string(out)) == "Dark" {
		return Dark, true
	}
	return Light, true
}

// terminalDetector asks the controlling terminal for its background.
type terminalDetector struct{}

func (terminalDetector) Name() string { return "terminal" }

func (terminalDetector) Detect() (Appearance, bool) {
	if lipgloss.HasDarkBackground() {
		return Dark, true
	}
	return Light, true
}
