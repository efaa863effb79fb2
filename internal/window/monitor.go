// Package window applies and retracts the fullscreen layout overrides.
package window

import (
	"github.com/marcus/arb/internal/config"
	"github.com/marcus/arb/internal/overrides"
)

// Mode is the monitor's view of the window.
type Mode int

const (
	Normal Mode = iota
	Fullscreen
)

func (m Mode) String() string {
	if m == Fullscreen {
		return "fullscreen"
	}
	return "normal"
}

// Layout is the set of overrides applied while fullscreen.
type Layout struct {
	Padding    overrides.Padding
	ShowTabBar bool
}

// LayoutFromConfig builds the fullscreen layout from window config.
func LayoutFromConfig(c config.WindowConfig) Layout {
	return Layout{
		Padding:    c.FullscreenPadding,
		ShowTabBar: c.FullscreenShowTabBar,
	}
}

// Monitor reacts to geometry changes. It holds no state of its own; the
// mode is read back from the override record each time.
type Monitor struct {
	layout Layout
}

// NewMonitor returns a monitor applying layout in fullscreen.
func NewMonitor(layout Layout) *Monitor {
	return &Monitor{layout: layout}
}

// SetLayout replaces the fullscreen layout, e.g. after a config reload.
func (m *Monitor) SetLayout(layout Layout) { m.layout = layout }

// Layout returns the fullscreen layout.
func (m *Monitor) Layout() Layout { return m.layout }

// ModeOf reports which layout st currently carries.
func ModeOf(st overrides.State) Mode {
	if st.WindowPadding != nil || st.HideTabBarIfOnlyOneTab != nil {
		return Fullscreen
	}
	return Normal
}

// OnGeometryChanged returns current with the layout for fullscreen
// applied or retracted. changed is false when the requested fields
// already match, in which case the caller must not write.
func (m *Monitor) OnGeometryChanged(fullscreen bool, current overrides.State) (updated overrides.State, changed bool) {
	want := current.Clone()
	if fullscreen {
		pad := m.layout.Padding
		want.WindowPadding = &pad
		want.HideTabBarIfOnlyOneTab = overrides.Bool(!m.layout.ShowTabBar)
	} else {
		want.WindowPadding = nil
		want.HideTabBarIfOnlyOneTab = nil
	}

	if want.Equal(current) {
		return current, false
	}
	return want, true
}
