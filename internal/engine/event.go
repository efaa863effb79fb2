// Package engine merges appearance, geometry, config and user selection
// into one override record per window.
package engine

import (
	"github.com/marcus/arb/internal/overrides"
	"github.com/marcus/arb/internal/theme"
)

// Kind identifies what triggered a reconciliation.
type Kind int

const (
	AppearanceChanged Kind = iota
	GeometryChanged
	ConfigReloaded
	UserSelected
)

func (k Kind) String() string {
	switch k {
	case AppearanceChanged:
		return "appearance-changed"
	case GeometryChanged:
		return "geometry-changed"
	case ConfigReloaded:
		return "config-reloaded"
	case UserSelected:
		return "user-selected"
	default:
		return "unknown"
	}
}

// Event is one host callback. ThemeID is set only for UserSelected.
type Event struct {
	Kind    Kind
	ThemeID string
}

// Selected returns a UserSelected event for id.
func Selected(id string) Event {
	return Event{Kind: UserSelected, ThemeID: id}
}

// Host is the window the engine reconciles. Calls are synchronous and
// come from the host's own event loop.
type Host interface {
	Overrides() overrides.State
	SetOverrides(overrides.State)
	Appearance() theme.Appearance
	IsFullscreen() bool
}
