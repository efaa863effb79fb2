package config

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	configDir  = ".config/arb"
	configFile = "config.json"
)

// testConfigPath overrides ConfigPath in tests.
var testConfigPath string

// rawConfig is the JSON-unmarshaling intermediary.
type rawConfig struct {
	Appearance AppearanceConfig `json:"appearance"`
	Window     rawWindowConfig  `json:"window"`
	Log        LogConfig        `json:"log"`
}

type rawWindowConfig struct {
	FullscreenPadding    *rawPadding `json:"fullscreenPadding"`
	FullscreenShowTabBar *bool       `json:"fullscreenShowTabBar"`
}

type rawPadding struct {
	Left   string `json:"left"`
	Right  string `json:"right"`
	Top    string `json:"top"`
	Bottom string `json:"bottom"`
}

// Dir returns the arb config directory: $ARB_CONFIG_HOME, then
// $XDG_CONFIG_HOME/arb, then ~/.config/arb.
func Dir() (string, error) {
	if dir := os.Getenv("ARB_CONFIG_HOME"); dir != "" {
		return ExpandPath(dir), nil
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "arb"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDir), nil
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses the config.json in Dir().
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = ConfigPath()
		if path == "" {
			return cfg, nil // Return defaults on error
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	// Merge raw config into defaults
	mergeConfig(cfg, &raw)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeConfig merges raw config values into the config.
func mergeConfig(cfg *Config, raw *rawConfig) {
	// Appearance
	a := raw.Appearance
	if a.Dark != "" {
		cfg.Appearance.Dark = strings.TrimSpace(a.Dark)
	}
	if a.Light != "" {
		cfg.Appearance.Light = strings.TrimSpace(a.Light)
	}
	cfg.Appearance.Override = strings.TrimSpace(a.Override)
	cfg.Appearance.DarkOverride = strings.TrimSpace(a.DarkOverride)
	cfg.Appearance.LightOverride = strings.TrimSpace(a.LightOverride)

	// Window
	if p := raw.Window.FullscreenPadding; p != nil {
		pad := &cfg.Window.FullscreenPadding
		if p.Left != "" {
			pad.Left = p.Left
		}
		if p.Right != "" {
			pad.Right = p.Right
		}
		if p.Top != "" {
			pad.Top = p.Top
		}
		if p.Bottom != "" {
			pad.Bottom = p.Bottom
		}
	}
	if raw.Window.FullscreenShowTabBar != nil {
		cfg.Window.FullscreenShowTabBar = *raw.Window.FullscreenShowTabBar
	}

	// Log
	if raw.Log.Level != "" {
		cfg.Log.Level = raw.Log.Level
	}
}

// ExpandPath expands ~ to home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	if testConfigPath != "" {
		return testConfigPath
	}
	dir, err := Dir()
	if err != nil {
		slog.Warn("cannot resolve config dir", "err", err)
		return ""
	}
	return filepath.Join(dir, configFile)
}

// SetTestConfigPath points ConfigPath at path for the duration of a test.
func SetTestConfigPath(path string) { testConfigPath = path }

// ResetTestConfigPath undoes SetTestConfigPath.
func ResetTestConfigPath() { testConfigPath = "" }
