// Package components provides reusable TUI widgets for the benzconfig front-end.
package components

import (
	"github.com/benzenergy/benzconfig/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Metric is one headline figure shown in a MetricCard.
type Metric struct {
	Label string
	Value string
	Unit  string
}

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// MetricCard renders a small card with a label over a bold value.
// outerWidth is the total rendered width including border.
func MetricCard(m Metric, outerWidth int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	unitStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	content := labelStyle.Render(m.Label) + "\n" + valueStyle.Render(m.Value)
	if m.Unit != "" {
		content += unitStyle.Render(" " + m.Unit)
	}

	return cardStyle(outerWidth, t.Border).Render(content)
}

// MetricCardRow renders metric cards side by side, summing to totalWidth.
func MetricCardRow(metrics []Metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}

	widths := LayoutRow(totalWidth, len(metrics))
	rendered := make([]string, 0, len(metrics))
	for i, m := range metrics {
		rendered = append(rendered, MetricCard(m, widths[i]))
	}
	return CardRow(rendered)
}

// ContentCard renders a bordered content card with an optional title.
// outerWidth controls the total rendered width including border.
func ContentCard(title, body string, outerWidth int) string {
	return titledCard(title, body, outerWidth, theme.Active.Border)
}

// FocusCard is a ContentCard with an accent border, for the card holding input focus.
func FocusCard(title, body string, outerWidth int) string {
	return titledCard(title, body, outerWidth, theme.Active.BorderAccent)
}

// ErrorCard is a ContentCard with a red border, for a rejected input.
func ErrorCard(title, body string, outerWidth int) string {
	return titledCard(title, body, outerWidth, theme.Active.Red)
}

func titledCard(title, body string, outerWidth int, border lipgloss.Color) string {
	t := theme.Active
	titleStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Bold(true)

	content := ""
	if title != "" {
		content = titleStyle.Render(title) + "\n"
	}
	content += body

	return cardStyle(outerWidth, border).Render(content)
}

func cardStyle(outerWidth int, border lipgloss.Color) lipgloss.Style {
	t := theme.Active

	contentWidth := outerWidth - 2 // subtract border chars
	if contentWidth < 10 {
		contentWidth = 10
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		BorderBackground(t.Background).
		Background(t.Surface).
		Width(contentWidth).
		Padding(0, 1)
}

// CardRow joins pre-rendered cards horizontally. Shorter cards are padded
// with surface-colored lines so the row has no unstyled gaps.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}

	maxH := 0
	for _, c := range cards {
		if h := lipgloss.Height(c); h > maxH {
			maxH = h
		}
	}

	padded := make([]string, len(cards))
	for i, c := range cards {
		padded[i] = lipgloss.PlaceVertical(maxH, lipgloss.Top, c,
			lipgloss.WithWhitespaceBackground(theme.Active.Background))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, padded...)
}

// CardInnerWidth returns the usable text width inside a ContentCard
// given its outer width (subtracts border + padding).
func CardInnerWidth(outerWidth int) int {
	w := outerWidth - 4 // 2 border + 2 padding
	if w < 10 {
		w = 10
	}
	return w
}
