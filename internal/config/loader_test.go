package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Appearance.Dark != "arb-dark" {
		t.Errorf("got dark theme %q, want arb-dark", cfg.Appearance.Dark)
	}
	if cfg.Appearance.Light != "catppuccin-latte" {
		t.Errorf("got light theme %q, want catppuccin-latte", cfg.Appearance.Light)
	}
	if !cfg.Window.FullscreenShowTabBar {
		t.Error("tab bar should stay visible in fullscreen by default")
	}
	if cfg.Window.FullscreenPadding.Top == "" || cfg.Window.FullscreenPadding.Bottom == "" {
		t.Error("fullscreen padding should be set by default")
	}
}

func TestLoadFrom_NonExistent(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.json")
	if err != nil {
		t.Errorf("should not error on missing file: %v", err)
	}
	if cfg == nil {
		t.Fatal("should return default config")
	}
	if cfg.Appearance.Dark != DefaultDarkTheme {
		t.Errorf("got %q, want default dark theme", cfg.Appearance.Dark)
	}
}

func TestLoadFrom_ValidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	content := []byte(`{
		"appearance": {
			"light": "tokyo-night-day",
			"override": " dracula-plus ",
			"darkOverride": "tokyo-night"
		},
		"window": {
			"fullscreenPadding": {"top": "60px"},
			"fullscreenShowTabBar": false
		},
		"log": {"level": "DEBUG"}
	}`)

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.Appearance.Light != "tokyo-night-day" {
		t.Errorf("light = %q", cfg.Appearance.Light)
	}
	if cfg.Appearance.Dark != DefaultDarkTheme {
		t.Errorf("dark should keep default, got %q", cfg.Appearance.Dark)
	}
	if cfg.Appearance.Override != "dracula-plus" {
		t.Errorf("override should be trimmed, got %q", cfg.Appearance.Override)
	}
	if cfg.Appearance.DarkOverride != "tokyo-night" {
		t.Errorf("darkOverride = %q", cfg.Appearance.DarkOverride)
	}
	if cfg.Window.FullscreenPadding.Top != "60px" {
		t.Errorf("top padding = %q", cfg.Window.FullscreenPadding.Top)
	}
	// Default values should still be present
	if cfg.Window.FullscreenPadding.Left != Default().Window.FullscreenPadding.Left {
		t.Errorf("left padding should keep default, got %q", cfg.Window.FullscreenPadding.Left)
	}
	if cfg.Window.FullscreenShowTabBar {
		t.Error("fullscreenShowTabBar should be false")
	}
	if cfg.Log.Level != "debug" || cfg.Log.SlogLevel() != slog.LevelDebug {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
}

func TestLoadFrom_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	if err := os.WriteFile(path, []byte(`{invalid`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("should error on invalid JSON")
	}
}

func TestLoadFrom_UnknownLogLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{"log": {"level": "loud"}}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("unknown level should fall back to info, got %q", cfg.Log.Level)
	}
}

func TestDir(t *testing.T) {
	t.Run("ARB_CONFIG_HOME wins", func(t *testing.T) {
		t.Setenv("ARB_CONFIG_HOME", "/tmp/arb-home")
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
		got, err := Dir()
		if err != nil || got != "/tmp/arb-home" {
			t.Errorf("Dir() = %q, %v", got, err)
		}
	})
	t.Run("XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("ARB_CONFIG_HOME", "")
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
		got, err := Dir()
		if err != nil || got != filepath.Join("/tmp/xdg", "arb") {
			t.Errorf("Dir() = %q, %v", got, err)
		}
	})
	t.Run("home fallback", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("ARB_CONFIG_HOME", "")
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", home)
		got, err := Dir()
		if err != nil || got != filepath.Join(home, ".config", "arb") {
			t.Errorf("Dir() = %q, %v", got, err)
		}
	})
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}

	tests := []struct {
		input    string
		expected string
	}{
		{"~/foo", filepath.Join(home, "foo")},
		{"/abs/path", "/abs/path"},
		{"relative", "relative"},
		{"~", "~"},
	}

	for _, tt := range tests {
		if got := ExpandPath(tt.input); got != tt.expected {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
