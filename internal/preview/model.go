package preview

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/arb/internal/engine"
	"github.com/marcus/arb/internal/keymap"
	"github.com/marcus/arb/internal/msg"
	"github.com/marcus/arb/internal/theme"
)

const toastDuration = 2 * time.Second

// Model is the root Bubble Tea model of the preview.
type Model struct {
	rec     *engine.Reconciler
	win     *window
	keys    keymap.KeyMap
	reloads <-chan struct{}

	width, height int
	showDetails   bool

	lastEvent   engine.Kind
	lastOutcome engine.Outcome

	toast      string
	toastIsErr bool
	toastShown time.Time
}

// New returns a preview model and performs the startup reconciliation.
// reloads may be nil when config watching is unavailable.
func New(rec *engine.Reconciler, appearance theme.Appearance, reloads <-chan struct{}) Model {
	m := Model{
		rec:     rec,
		win:     &window{appearance: appearance},
		keys:    keymap.DefaultBindings(),
		reloads: reloads,
	}
	m.dispatch(engine.Event{Kind: engine.AppearanceChanged})
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.titleCmd(), msg.WaitForReload(m.reloads))
}

// Update implements tea.Model.
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		cmd := m.dispatch(engine.Event{Kind: engine.GeometryChanged})
		return m, cmd

	case tea.KeyMsg:
		cmd := m.handleKey(message)
		return m, cmd

	case msg.ConfigReloadMsg:
		cmd := m.dispatch(engine.Event{Kind: engine.ConfigReloaded})
		return m, tea.Batch(cmd, msg.ShowToast("config reloaded", toastDuration), msg.WaitForReload(m.reloads))

	case msg.ToastMsg:
		m.toast = message.Message
		m.toastIsErr = message.IsError
		m.toastShown = time.Now()
		shown := m.toastShown
		return m, tea.Tick(message.Duration, func(time.Time) tea.Msg {
			return msg.ToastExpiredMsg{Shown: shown}
		})

	case msg.ToastExpiredMsg:
		if message.Shown.Equal(m.toastShown) {
			m.toast = ""
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(k tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(k, m.keys.Quit):
		return tea.Quit

	case key.Matches(k, m.keys.ToggleFullscreen):
		m.win.fullscreen = !m.win.fullscreen
		return m.dispatch(engine.Event{Kind: engine.GeometryChanged})

	case key.Matches(k, m.keys.ToggleAppearance):
		m.win.appearance = m.win.appearance.Toggle()
		return m.dispatch(engine.Event{Kind: engine.AppearanceChanged})

	case key.Matches(k, m.keys.NextTheme):
		return m.selectRelative(1)

	case key.Matches(k, m.keys.PrevTheme):
		return m.selectRelative(-1)

	case key.Matches(k, m.keys.Details):
		m.showDetails = !m.showDetails
		return nil

	case key.Matches(k, m.keys.Reload):
		return m.dispatch(engine.Event{Kind: engine.ConfigReloaded})
	}
	return nil
}

// selectRelative selects the theme offset positions from the applied one
// in registry order.
func (m *Model) selectRelative(offset int) tea.Cmd {
	ids := m.rec.Registry().IDs()
	if len(ids) == 0 {
		return nil
	}
	cur := 0
	for i, id := range ids {
		if id == m.win.st.AppliedTheme {
			cur = i
			break
		}
	}
	next := ((cur+offset)%len(ids) + len(ids)) % len(ids)
	return m.dispatch(engine.Selected(ids[next]))
}

// dispatch runs one engine event against the window.
func (m *Model) dispatch(ev engine.Event) tea.Cmd {
	before := m.win.st.AppliedTheme
	m.lastEvent = ev.Kind
	m.lastOutcome = m.rec.Dispatch(m.win, ev)

	var cmds []tea.Cmd
	if m.win.st.AppliedTheme != before {
		cmds = append(cmds, m.titleCmd())
	}
	if m.lastOutcome.NoTheme {
		cmds = append(cmds, func() tea.Msg {
			return msg.ToastMsg{Message: "no theme resolved", Duration: toastDuration, IsError: true}
		})
	}
	return tea.Batch(cmds...)
}

func (m Model) titleCmd() tea.Cmd {
	id := m.win.st.AppliedTheme
	if id == "" {
		return tea.SetWindowTitle("arb")
	}
	return tea.SetWindowTitle(fmt.Sprintf("arb: %s", id))
}

// Writes returns how many times the engine replaced the overrides.
func (m Model) Writes() int { return m.win.writes }
