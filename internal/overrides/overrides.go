// Package overrides holds the per-window override record that sits on top
// of the base configuration.
package overrides

import "github.com/marcus/arb/internal/styles"

// Padding is a window padding override. Values use the host's dimension
// syntax ("24px", "1cell").
type Padding struct {
	Left   string `json:"left"`
	Right  string `json:"right"`
	Top    string `json:"top"`
	Bottom string `json:"bottom"`
}

// State is the in-memory override record of one window. It is owned by
// that window alone and rebuilt on every reconfiguration; nothing in it is
// authoritative across restarts. Nil pointer fields mean "unset, use the
// base configuration".
type State struct {
	// ExplicitTheme is an absolute theme choice that ignores appearance.
	ExplicitTheme string `json:"explicitTheme,omitempty"`
	// DarkTheme and LightTheme override the theme pair per appearance.
	DarkTheme  string `json:"darkTheme,omitempty"`
	LightTheme string `json:"lightTheme,omitempty"`

	// AppliedTheme is the theme Colors were derived from.
	AppliedTheme string          `json:"appliedTheme,omitempty"`
	Colors       *styles.Derived `json:"colors,omitempty"`

	WindowPadding          *Padding `json:"windowPadding,omitempty"`
	HideTabBarIfOnlyOneTab *bool    `json:"hideTabBarIfOnlyOneTab,omitempty"`
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := s
	if s.Colors != nil {
		c := *s.Colors
		out.Colors = &c
	}
	if s.WindowPadding != nil {
		p := *s.WindowPadding
		out.WindowPadding = &p
	}
	if s.HideTabBarIfOnlyOneTab != nil {
		v := *s.HideTabBarIfOnlyOneTab
		out.HideTabBarIfOnlyOneTab = &v
	}
	return out
}

// Equal compares two states field by field, following pointers.
func (s State) Equal(o State) bool {
	return s.ExplicitTheme == o.ExplicitTheme &&
		s.DarkTheme == o.DarkTheme &&
		s.LightTheme == o.LightTheme &&
		s.AppliedTheme == o.AppliedTheme &&
		equalPtr(s.Colors, o.Colors) &&
		equalPtr(s.WindowPadding, o.WindowPadding) &&
		equalPtr(s.HideTabBarIfOnlyOneTab, o.HideTabBarIfOnlyOneTab)
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }
