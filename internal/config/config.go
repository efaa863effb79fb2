package config

import (
	"log/slog"
	"strings"

	"github.com/marcus/arb/internal/overrides"
	"github.com/marcus/arb/internal/styles"
)

// Config is the root configuration structure.
type Config struct {
	Appearance AppearanceConfig `json:"appearance"`
	Window     WindowConfig     `json:"window"`
	Log        LogConfig        `json:"log"`
}

// AppearanceConfig selects themes. Dark/Light form the default theme pair;
// the override fields take precedence over it.
type AppearanceConfig struct {
	Dark          string `json:"dark"`
	Light         string `json:"light"`
	Override      string `json:"override,omitempty"`      // absolute choice, ignores OS appearance
	DarkOverride  string `json:"darkOverride,omitempty"`  // used only in dark mode
	LightOverride string `json:"lightOverride,omitempty"` // used only in light mode
}

// WindowConfig configures the fullscreen layout.
type WindowConfig struct {
	FullscreenPadding    overrides.Padding `json:"fullscreenPadding"`
	FullscreenShowTabBar bool              `json:"fullscreenShowTabBar"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `json:"level"` // debug, info, warn, error
}

// Default theme pair.
const (
	DefaultDarkTheme  = styles.ArbDark
	DefaultLightTheme = styles.CatppuccinLatte
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Appearance: AppearanceConfig{
			Dark:  DefaultDarkTheme,
			Light: DefaultLightTheme,
		},
		Window: WindowConfig{
			FullscreenPadding: overrides.Padding{
				Left:   "24px",
				Right:  "24px",
				Top:    "48px",
				Bottom: "32px",
			},
			FullscreenShowTabBar: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate resets out-of-range values to their defaults. Theme ids are
// not checked here; unknown ids fall through at resolution time.
func (c *Config) Validate() error {
	def := Default()
	if c.Appearance.Dark == "" {
		c.Appearance.Dark = def.Appearance.Dark
	}
	if c.Appearance.Light == "" {
		c.Appearance.Light = def.Appearance.Light
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
		c.Log.Level = strings.ToLower(c.Log.Level)
	default:
		slog.Warn("unknown log level, using info", "level", c.Log.Level)
		c.Log.Level = def.Log.Level
	}
	return nil
}

// Pair returns the configured dark/light theme pair.
func (a AppearanceConfig) Pair() styles.Pair {
	return styles.Pair{Dark: a.Dark, Light: a.Light}
}

// SlogLevel maps the configured level onto slog.
func (c LogConfig) SlogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
