// Package preview is a terminal host for the reconciliation engine. It
// renders the effective overrides of one simulated window and turns key
// presses, resizes and config changes into engine events.
package preview

import (
	"github.com/marcus/arb/internal/overrides"
	"github.com/marcus/arb/internal/theme"
)

// window is the simulated host window. It satisfies engine.Host.
type window struct {
	st         overrides.State
	appearance theme.Appearance
	fullscreen bool
	writes     int
}

func (w *window) Overrides() overrides.State { return w.st.Clone() }

func (w *window) SetOverrides(st overrides.State) {
	w.st = st
	w.writes++
}

func (w *window) Appearance() theme.Appearance { return w.appearance }
func (w *window) IsFullscreen() bool           { return w.fullscreen }
