package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/arb/internal/styles"
	"github.com/marcus/arb/internal/window"
)

// renderDetails draws the details panel: how the applied theme was
// resolved, the window mode and the full key help.
func (m Model) renderDetails(def styles.Definition, d styles.Derived) string {
	res := m.lastOutcome.Theme
	label := lipgloss.NewStyle().Foreground(lipgloss.Color(d.TabBar.InactiveTab.Fg))

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", label.Render("theme   "), def.DisplayName)
	fmt.Fprintf(&b, "%s %s\n", label.Render("source  "), res.Source)
	fmt.Fprintf(&b, "%s %s\n", label.Render("appear. "), m.win.appearance)
	fmt.Fprintf(&b, "%s %s\n", label.Render("mode    "), window.ModeOf(m.win.st))
	for _, id := range res.Skipped {
		fmt.Fprintf(&b, "%s %q\n", label.Render("skipped "), id)
	}

	h := help.New()
	h.ShowAll = true
	b.WriteString("\n")
	b.WriteString(h.View(m.keys))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(d.Split)).
		Background(lipgloss.Color(def.Background)).
		Foreground(lipgloss.Color(def.Foreground)).
		Padding(0, 2).
		Render(b.String())
}

var dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

// overlay centers panel over a dimmed background of width x height.
func overlay(background, panel string, width, height int) string {
	bgLines := strings.Split(background, "\n")
	panelLines := strings.Split(panel, "\n")

	panelWidth := 0
	for _, l := range panelLines {
		panelWidth = max(panelWidth, ansi.StringWidth(l))
	}
	startX := max((width-panelWidth)/2, 0)
	startY := max((height-len(panelLines))/2, 0)

	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}

	out := make([]string, 0, len(bgLines))
	for y, bg := range bgLines {
		row := y - startY
		if row < 0 || row >= len(panelLines) {
			out = append(out, dimStyle.Render(ansi.Strip(bg)))
			continue
		}
		out = append(out, compositeRow(bg, panelLines[row], startX, panelWidth))
	}
	return strings.Join(out, "\n")
}

// compositeRow returns the dimmed left part of bg, the panel line, then
// the dimmed remainder of bg. Colors are stripped from bg since faint
// does not combine reliably with existing SGR codes.
func compositeRow(bg, line string, startX, panelWidth int) string {
	plain := ansi.Strip(bg)
	bgWidth := ansi.StringWidth(plain)

	var b strings.Builder
	if startX > 0 {
		left := ansi.Truncate(plain, startX, "")
		b.WriteString(dimStyle.Render(left))
		if w := ansi.StringWidth(left); w < startX {
			b.WriteString(strings.Repeat(" ", startX-w))
		}
	}
	b.WriteString(line)
	if w := ansi.StringWidth(line); w < panelWidth {
		b.WriteString(strings.Repeat(" ", panelWidth-w))
	}
	if end := startX + panelWidth; bgWidth > end {
		b.WriteString(dimStyle.Render(ansi.Cut(plain, end, bgWidth)))
	}
	return b.String()
}
