package components

import (
	"strings"

	"github.com/benzenergy/benzconfig/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left and
// the latest notice on the right. Error notices are shown in red.
func RenderStatusBar(width int, hints, notice string, isError bool) string {
	t := theme.Active

	barStyle := lipgloss.NewStyle().Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	noticeStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	if isError {
		noticeStyle = noticeStyle.Foreground(t.Red)
	}

	left := hintStyle.Render(" " + hints)
	right := ""
	if notice != "" {
		right = noticeStyle.Render(notice + " ")
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		// Drop the notice before the hints when space runs out.
		right = ""
		padding = width - lipgloss.Width(left)
		if padding < 0 {
			padding = 0
		}
	}

	return barStyle.Width(width).Render(left + barStyle.Render(strings.Repeat(" ", padding)) + right)
}
