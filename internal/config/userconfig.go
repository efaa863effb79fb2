package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// UserConfigFile is the user's Lua configuration, layered over the
// bundled defaults by the terminal itself.
const UserConfigFile = "arb.lua"

// UserConfigTemplateMarker is the first line of a generated user config.
const UserConfigTemplateMarker = "-- arb config template v1"

// UserConfigPath returns the path of the user's arb.lua.
func UserConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, UserConfigFile), nil
}

// EnsureUserConfig creates a minimal user config at path unless a file is
// already there. An existing file is never touched. created reports
// whether a file was written.
func EnsureUserConfig(path string) (created bool, err error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}

	// O_EXCL so a file that appeared since the Stat is left alone.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(MinimalUserConfig()); err != nil {
		return false, fmt.Errorf("write minimal user config: %w", err)
	}
	return true, nil
}

// MinimalUserConfig returns the Lua template written by EnsureUserConfig.
func MinimalUserConfig() string {
	return minimalUserConfig
}

const minimalUserConfig = UserConfigTemplateMarker + `
local wezterm = require 'wezterm'

local function resolve_bundled_config()
  local candidates = {
    wezterm.executable_dir:gsub('MacOS/?$', 'Resources') .. '/arb.lua',
    '/Applications/Arb.app/Contents/Resources/arb.lua',
    (os.getenv('HOME') or '') .. '/Applications/Arb.app/Contents/Resources/arb.lua',
    wezterm.executable_dir .. '/../../assets/macos/Arb.app/Contents/Resources/arb.lua',
  }
  for _, path in ipairs(candidates) do
    local f = io.open(path, 'r')
    if f then
      f:close()
      return path
    end
  end
  return nil
end

local config = {}
local bundled = resolve_bundled_config()

if bundled then
  local ok, loaded = pcall(dofile, bundled)
  if ok and type(loaded) == 'table' then
    config = loaded
  else
    wezterm.log_error('Arb: failed to load bundled defaults from ' .. bundled)
  end
else
  wezterm.log_error('Arb: bundled defaults not found')
end

-- ═══ Appearance ═══

-- config.font = wezterm.font('JetBrains Mono')
-- config.font_size = 16.0

-- Themes are picked by arb from ~/.config/arb/config.json and .theme;
-- set one here only to pin it regardless of system appearance.
-- config.color_scheme = 'Builtin Solarized Dark'

-- config.window_padding = { left = '24px', right = '24px', top = '40px', bottom = '20px' }

-- ═══ Terminal Behavior ═══

-- config.default_prog = { '/bin/zsh', '-l' }
-- config.default_cursor_style = 'SteadyBar'
-- config.scrollback_lines = 20000
-- config.initial_cols = 120
-- config.initial_rows = 30

-- ═══ AI Coding Workflow ═══

-- config.scrollback_lines = 50000
-- config.initial_cols = 140
-- config.window_close_confirmation = 'NeverPrompt'

-- ═══ Panes & Splits ═══

-- table.insert(config.keys, {
--   key = 'd',
--   mods = 'CMD',
--   action = wezterm.action.SplitHorizontal { domain = 'CurrentPaneDomain' },
-- })

-- ═══ Advanced ═══

-- config.enable_tab_bar = false
-- config.window_background_opacity = 0.95
-- config.set_environment_variables = {
--   EDITOR = 'nvim',
-- }

return config
`
