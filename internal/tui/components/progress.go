package components

import (
	"fmt"
	"strings"

	"github.com/benzenergy/benzconfig/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a block progress bar with percentage.
func ProgressBar(pct float64, width int) string {
	t := theme.Active
	pct = clamp01(pct)
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}

	barColor := t.Cyan
	if pct >= 0.5 {
		barColor = t.Accent
	}

	filledStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(filledStyle.Render(strings.Repeat("█", filled)))
	b.WriteString(emptyStyle.Render(strings.Repeat("░", width-filled)))
	return b.String()
}

// ShareBar renders a labeled bar showing what fraction of a total one part takes,
// e.g. the city share of a trip's fuel.
func ShareBar(label string, share float64, color lipgloss.Color, labelW, barWidth int) string {
	t := theme.Active
	share = clamp01(share)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(share) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", share*100))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
