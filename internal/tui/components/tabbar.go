package components

import (
	"strings"

	"github.com/benzenergy/benzconfig/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Hint string // shown next to inactive tabs
}

// Tabs defines the season tabs, in model.Seasons order.
var Tabs = []Tab{
	{Name: "Summer", Hint: "tab"},
	{Name: "Winter", Hint: "tab"},
}

// TabVisualWidth returns the rendered width of a tab: one column of padding
// on each side, plus "[hint]" when inactive.
func TabVisualWidth(tab Tab, active bool) int {
	w := lipgloss.Width(tab.Name) + 2
	if !active && tab.Hint != "" {
		w += lipgloss.Width(tab.Hint) + 2
	}
	return w
}

// RenderTabBar renders the tab bar with the given active index, padded to width.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active
	return lipgloss.NewStyle().Background(t.Surface).Width(width).Render(tabRow(activeIdx))
}

// tabRow renders the tabs separated by a single column.
func tabRow(activeIdx int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.SurfaceBright).
		Bold(true).
		Padding(0, 1)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	hintStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	sepStyle := lipgloss.NewStyle().
		Foreground(t.Border).
		Background(t.Surface)

	parts := make([]string, 0, len(Tabs))
	for i, tab := range Tabs {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(tab.Name))
			continue
		}
		rendered := inactiveStyle.Render(" " + tab.Name)
		if tab.Hint != "" {
			rendered += hintStyle.Render("[" + tab.Hint + "]")
		}
		rendered += inactiveStyle.Render(" ")
		parts = append(parts, rendered)
	}

	return strings.Join(parts, sepStyle.Render("│"))
}
