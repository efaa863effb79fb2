// Package msg holds Bubble Tea messages shared by the preview host.
package msg

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ToastMsg displays a temporary message.
type ToastMsg struct {
	Message  string
	Duration time.Duration
	IsError  bool // true for error toasts (red), false for success (green)
}

// ShowToast returns a command to show a toast message.
func ShowToast(message string, duration time.Duration) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{
			Message:  message,
			Duration: duration,
		}
	}
}

// ToastExpiredMsg clears a toast shown at Shown.
type ToastExpiredMsg struct {
	Shown time.Time
}

// ConfigReloadMsg reports a change to config.json or the persisted theme.
type ConfigReloadMsg struct{}

// WaitForReload returns a command that delivers the next signal from
// reloads as a ConfigReloadMsg. It returns nil once reloads is closed.
func WaitForReload(reloads <-chan struct{}) tea.Cmd {
	if reloads == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-reloads; !ok {
			return nil
		}
		return ConfigReloadMsg{}
	}
}
