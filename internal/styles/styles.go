package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderTab renders a tab label with the derived tab-bar colors.
func RenderTab(label string, d Derived, isActive bool) string {
	c := d.TabBar.InactiveTab
	if isActive {
		c = d.TabBar.ActiveTab
	}
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(c.Bg)).
		Foreground(lipgloss.Color(c.Fg)).
		Padding(0, 2)
	if isActive {
		style = style.Bold(true)
	}
	return style.Render(label)
}

// RenderTabBar renders labels as a tab bar padded with the bar background
// out to width. A trailing "+" uses the new-tab colors.
func RenderTabBar(labels []string, active int, d Derived, width int) string {
	parts := make([]string, 0, len(labels)+1)
	for i, label := range labels {
		parts = append(parts, RenderTab(label, d, i == active))
	}
	parts = append(parts, lipgloss.NewStyle().
		Background(lipgloss.Color(d.TabBar.NewTab.Bg)).
		Foreground(lipgloss.Color(d.TabBar.NewTab.Fg)).
		Padding(0, 1).
		Render("+"))

	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return lipgloss.NewStyle().
		Background(lipgloss.Color(d.TabBar.Background)).
		Width(width).
		Render(bar)
}

// RenderSplit renders a vertical split separator of the given height.
func RenderSplit(d Derived, height int) string {
	if height < 1 {
		height = 1
	}
	line := strings.TrimSuffix(strings.Repeat("│\n", height), "\n")
	return lipgloss.NewStyle().Foreground(lipgloss.Color(d.Split)).Render(line)
}

// RenderSwatch renders a one-line preview of def: its name on the theme
// background followed by the 16 palette colors.
func RenderSwatch(def Definition) string {
	name := lipgloss.NewStyle().
		Background(lipgloss.Color(def.Background)).
		Foreground(lipgloss.Color(def.Foreground)).
		Width(22).
		Padding(0, 1).
		Render(def.DisplayName)

	var b strings.Builder
	for _, c := range def.Palette() {
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c)).Render("  "))
	}
	return name + " " + b.String()
}
