// Package keymap defines the preview window's key bindings.
package keymap

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the preview bindings. Each one maps to an engine event.
type KeyMap struct {
	ToggleFullscreen key.Binding
	ToggleAppearance key.Binding
	NextTheme        key.Binding
	PrevTheme        key.Binding
	Reload           key.Binding
	Details          key.Binding
	Quit             key.Binding
}

// DefaultBindings returns the default key bindings.
func DefaultBindings() KeyMap {
	return KeyMap{
		ToggleFullscreen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fullscreen"),
		),
		ToggleAppearance: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "dark/light"),
		),
		NextTheme: key.NewBinding(
			key.WithKeys("t", "right", "l"),
			key.WithHelp("t/→", "next theme"),
		),
		PrevTheme: key.NewBinding(
			key.WithKeys("T", "left", "h"),
			key.WithHelp("T/←", "prev theme"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Details: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "details"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleFullscreen, k.ToggleAppearance, k.NextTheme, k.PrevTheme, k.Reload, k.Details, k.Quit}
}

// FullHelp returns all bindings grouped in columns.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleFullscreen, k.ToggleAppearance},
		{k.NextTheme, k.PrevTheme},
		{k.Reload, k.Details, k.Quit},
	}
}
