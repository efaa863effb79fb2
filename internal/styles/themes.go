package styles

import (
	"fmt"
	"regexp"
)

// hexColorRegex validates hex color codes (#RRGGBB or #RRGGBBAA with alpha)
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}([0-9A-Fa-f]{2})?$`)

// TabColors is a background/foreground pair for one tab-bar element.
type TabColors struct {
	Bg string `json:"bg"`
	Fg string `json:"fg"`
}

// TabBarPalette holds the tab bar colors of a theme. Empty fields are
// filled in by Derive from the rest of the definition.
type TabBarPalette struct {
	Background       string    `json:"background"`
	InactiveTabEdge  string    `json:"inactiveTabEdge"`
	ActiveTab        TabColors `json:"activeTab"`
	InactiveTab      TabColors `json:"inactiveTab"`
	InactiveTabHover TabColors `json:"inactiveTabHover"`
	NewTab           TabColors `json:"newTab"`
	NewTabHover      TabColors `json:"newTabHover"`
}

// Definition is a concrete color scheme. Definitions are values; once
// handed to a Registry they are never mutated.
type Definition struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`

	Background string `json:"background"`
	Foreground string `json:"foreground"`

	CursorBg     string `json:"cursorBg"`
	CursorFg     string `json:"cursorFg"`
	CursorBorder string `json:"cursorBorder"`

	SelectionBg string `json:"selectionBg"`
	SelectionFg string `json:"selectionFg"`

	// ANSI holds the normal 0-7 colors, Brights the 8-15 colors.
	ANSI    [8]string `json:"ansi"`
	Brights [8]string `json:"brights"`

	TabBar TabBarPalette `json:"tabBar"`
	Split  string        `json:"split"`
}

// Palette returns the 16-entry ANSI palette (normal followed by bright).
func (d Definition) Palette() [16]string {
	var p [16]string
	copy(p[:8], d.ANSI[:])
	copy(p[8:], d.Brights[:])
	return p
}

// IsDark reports whether the background reads as a dark theme.
func (d Definition) IsDark() bool {
	return Luminance(d.Background) < 0.5
}

// Validate checks that the required colors are present and well formed.
func (d Definition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("theme has no id")
	}
	required := map[string]string{
		"background": d.Background,
		"foreground": d.Foreground,
	}
	for i, c := range d.Palette() {
		required[fmt.Sprintf("palette[%d]", i)] = c
	}
	for field, value := range required {
		if !IsValidHexColor(value) {
			return fmt.Errorf("theme %q: invalid %s color %q", d.ID, field, value)
		}
	}
	optional := []string{
		d.CursorBg, d.CursorFg, d.CursorBorder, d.SelectionBg, d.SelectionFg, d.Split,
		d.TabBar.Background, d.TabBar.InactiveTabEdge,
		d.TabBar.ActiveTab.Bg, d.TabBar.ActiveTab.Fg,
		d.TabBar.InactiveTab.Bg, d.TabBar.InactiveTab.Fg,
		d.TabBar.InactiveTabHover.Bg, d.TabBar.InactiveTabHover.Fg,
		d.TabBar.NewTab.Bg, d.TabBar.NewTab.Fg,
		d.TabBar.NewTabHover.Bg, d.TabBar.NewTabHover.Fg,
	}
	for _, value := range optional {
		if value != "" && !IsValidHexColor(value) {
			return fmt.Errorf("theme %q: invalid color %q", d.ID, value)
		}
	}
	return nil
}

// IsValidHexColor checks if a string is a valid hex color code (#RRGGBB or #RRGGBBAA)
func IsValidHexColor(hex string) bool {
	return hexColorRegex.MatchString(hex)
}

// Registry is an immutable id -> Definition table. Build one at startup and
// pass it to whatever needs lookups; there is no package-level registry.
type Registry struct {
	themes map[string]Definition
	order  []string
}

// NewRegistry builds a registry from defs. Ids must be unique and every
// definition must validate.
func NewRegistry(defs ...Definition) (*Registry, error) {
	r := &Registry{themes: make(map[string]Definition, len(defs))}
	if err := r.add(defs); err != nil {
		return nil, err
	}
	return r, nil
}

// With returns a new registry holding r's themes followed by defs.
// r itself is left untouched.
func (r *Registry) With(defs ...Definition) (*Registry, error) {
	next := &Registry{
		themes: make(map[string]Definition, len(r.themes)+len(defs)),
		order:  append([]string(nil), r.order...),
	}
	for id, def := range r.themes {
		next.themes[id] = def
	}
	if err := next.add(defs); err != nil {
		return nil, err
	}
	return next, nil
}

func (r *Registry) add(defs []Definition) error {
	for _, def := range defs {
		if err := def.Validate(); err != nil {
			return err
		}
		if _, dup := r.themes[def.ID]; dup {
			return fmt.Errorf("duplicate theme id %q", def.ID)
		}
		r.themes[def.ID] = def
		r.order = append(r.order, def.ID)
	}
	return nil
}

// Lookup returns the definition registered under id.
func (r *Registry) Lookup(id string) (Definition, bool) {
	if r == nil || id == "" {
		return Definition{}, false
	}
	def, ok := r.themes[id]
	return def, ok
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.Lookup(id)
	return ok
}

// IDs returns theme ids in registration order.
func (r *Registry) IDs() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.order...)
}

// Len returns the number of registered themes.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}
