package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Save writes the config to ConfigPath(). Top-level keys that Save does
// not manage are preserved.
func Save(cfg *Config) error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("no config path")
	}
	return SaveTo(path, cfg)
}

// SaveTo writes cfg to path, keeping unknown top-level keys already in
// the file.
func SaveTo(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	merged := make(map[string]json.RawMessage)
	if existing, err := os.ReadFile(path); err == nil {
		// An unreadable file is replaced rather than blocking the save.
		_ = json.Unmarshal(existing, &merged)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	managed := map[string]any{
		"appearance": cfg.Appearance,
		"window":     cfg.Window,
		"log":        cfg.Log,
	}
	for key, value := range managed {
		data, err := json.Marshal(value)
		if err != nil {
			return err
		}
		merged[key] = data
	}

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SaveAppearance updates only the appearance section and saves.
func SaveAppearance(a AppearanceConfig) error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	cfg.Appearance = a
	return Save(cfg)
}
