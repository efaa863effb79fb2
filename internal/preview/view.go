package preview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/arb/internal/overrides"
	"github.com/marcus/arb/internal/styles"
	"github.com/marcus/arb/internal/window"
)

// pxPerCell approximates a cell for px padding values.
const pxPerCell = 8

var tabLabels = []string{"zsh", "nvim", "git"}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return "loading…"
	}

	st := m.win.st
	def, ok := m.rec.Registry().Lookup(st.AppliedTheme)
	if !ok || st.Colors == nil {
		return m.renderBare()
	}
	d := *st.Colors

	var sections []string
	sections = append(sections, styles.RenderTabBar(tabLabels, 0, d, m.width))

	footer := m.renderFooter(d)
	bodyHeight := m.height - lipgloss.Height(sections[0]) - lipgloss.Height(footer)
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	sections = append(sections, m.renderBody(def, d, st.WindowPadding, bodyHeight))
	sections = append(sections, footer)
	screen := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.showDetails {
		return overlay(screen, m.renderDetails(def, d), m.width, m.height)
	}
	return screen
}

func (m Model) renderBare() string {
	return fmt.Sprintf("no theme applied (%s)\n", m.lastEvent)
}

// renderBody draws two panes separated by the split color, padded as the
// window padding override asks.
func (m Model) renderBody(def styles.Definition, d styles.Derived, pad *overrides.Padding, height int) string {
	top, right, bottom, left := 0, 1, 0, 1
	if pad != nil {
		top = cells(pad.Top, 1)
		right = cells(pad.Right, 1)
		bottom = cells(pad.Bottom, 1)
		left = cells(pad.Left, 1)
	}

	inner := height - top - bottom
	if inner < 1 {
		inner = 1
	}
	paneWidth := (m.width - left - right - 1) / 2
	if paneWidth < 1 {
		paneWidth = 1
	}

	pane := lipgloss.NewStyle().
		Background(lipgloss.Color(def.Background)).
		Foreground(lipgloss.Color(def.Foreground)).
		Width(paneWidth).
		Height(inner)

	leftPane := pane.Render(m.statusLines(paneWidth))
	rightPane := pane.Render(renderPalette(def, paneWidth))
	body := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, styles.RenderSplit(d, inner), rightPane)

	return lipgloss.NewStyle().
		Background(lipgloss.Color(def.Background)).
		Padding(top, right, bottom, left).
		Render(body)
}

func (m Model) statusLines(width int) string {
	out := m.lastOutcome
	lines := []string{
		"theme       " + m.win.st.AppliedTheme,
		"source      " + out.Theme.Source.String(),
		"appearance  " + m.win.appearance.String(),
		"mode        " + window.ModeOf(m.win.st).String(),
		"last event  " + m.lastEvent.String(),
		"writes      " + strconv.Itoa(m.win.writes),
	}
	if out.Wrote {
		lines[len(lines)-1] += " (wrote)"
	}
	if len(out.Theme.Skipped) > 0 {
		lines = append(lines, "skipped     "+strings.Join(out.Theme.Skipped, ", "))
	}
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "…")
	}
	return strings.Join(lines, "\n")
}

func renderPalette(def styles.Definition, width int) string {
	var rows []string
	pal := def.Palette()
	for row := 0; row < 2; row++ {
		var b strings.Builder
		for _, c := range pal[row*8 : row*8+8] {
			b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c)).Render("   "))
		}
		rows = append(rows, ansi.Truncate(b.String(), width, ""))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderFooter(d styles.Derived) string {
	bar := lipgloss.NewStyle().
		Background(lipgloss.Color(d.TitleBar.Bg)).
		Foreground(lipgloss.Color(d.TitleBar.Fg))

	var status string
	if m.toast != "" {
		fg := d.TabBar.ActiveTab.Fg
		if m.toastIsErr {
			fg = "#ff5555"
		}
		status = bar.Foreground(lipgloss.Color(fg)).Bold(true).Render(m.toast)
	}

	var hints []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		hints = append(hints, h.Key+" "+h.Desc)
	}
	avail := m.width - lipgloss.Width(status) - 2
	if avail < 0 {
		avail = 0
	}
	hintStr := ansi.Truncate(strings.Join(hints, " · "), avail, "…")

	spacing := m.width - lipgloss.Width(hintStr) - lipgloss.Width(status)
	if spacing < 0 {
		spacing = 0
	}
	return bar.Width(m.width).Render(hintStr + strings.Repeat(" ", spacing) + status)
}

// cells converts a dimension such as "24px" or "2cell" to terminal cells.
// Unparseable values return def.
func cells(dim string, def int) int {
	dim = strings.TrimSpace(dim)
	switch {
	case strings.HasSuffix(dim, "px"):
		n, err := strconv.ParseFloat(strings.TrimSuffix(dim, "px"), 64)
		if err != nil {
			return def
		}
		return int(n/pxPerCell + 0.5)
	case strings.HasSuffix(dim, "cell"):
		n, err := strconv.ParseFloat(strings.TrimSuffix(dim, "cell"), 64)
		if err != nil {
			return def
		}
		return int(n + 0.5)
	}
	n, err := strconv.Atoi(dim)
	if err != nil {
		return def
	}
	return n / pxPerCell
}
