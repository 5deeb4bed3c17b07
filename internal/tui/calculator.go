package tui

import (
	"errors"
	"strings"

	"github.com/benzenergy/benzconfig/internal/cli"
	"github.com/benzenergy/benzconfig/internal/fuel"
	"github.com/benzenergy/benzconfig/internal/tui/components"
	"github.com/benzenergy/benzconfig/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// distanceProblem describes why a distance was rejected.
func distanceProblem(err error) string {
	switch {
	case errors.Is(err, fuel.ErrEmptyInput):
		return "Enter a distance in km."
	case errors.Is(err, fuel.ErrNegativeDistance):
		return "Distance cannot be negative."
	case errors.Is(err, fuel.ErrUnparsableNumber):
		return "Distance must be a number, e.g. 120.5"
	default:
		return err.Error()
	}
}

func (a App) renderCalculator(cw int) string {
	t := theme.Active
	season := a.season()
	p := a.panes[a.active]
	prof := a.profiles.Profile(season)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	unitStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	errStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder

	// Distance input
	var in strings.Builder
	in.WriteString(labelStyle.Render("Trip distance  "))
	in.WriteString(p.input.View())
	in.WriteString(unitStyle.Render(" km"))
	if p.invalid {
		in.WriteString("\n")
		in.WriteString(errStyle.Render(distanceProblem(p.err)))
	}
	title := season.Title() + " trip"
	if p.invalid {
		b.WriteString(components.ErrorCard(title, in.String(), cw))
	} else {
		b.WriteString(components.FocusCard(title, in.String(), cw))
	}
	b.WriteString("\n")

	// Headline figures
	metrics := []components.Metric{
		{Label: "Total fuel", Value: "-", Unit: "L"},
		{Label: "City fuel", Value: "-", Unit: "L"},
		{Label: "Highway fuel", Value: "-", Unit: "L"},
	}
	if est := p.estimate; est != nil {
		metrics[0].Value = cli.FormatLiters(est.TotalFuel)
		metrics[1].Value = cli.FormatLiters(est.CityFuel)
		metrics[2].Value = cli.FormatLiters(est.HighwayFuel)
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	// Profile and result
	profileW, resultW := cw, cw
	if !a.isCompactLayout() {
		widths := components.LayoutRow(cw, 2)
		profileW, resultW = widths[0], widths[1]
	}

	barW := components.CardInnerWidth(profileW) - 14
	if barW < 6 {
		barW = 6
	}
	var pb strings.Builder
	pb.WriteString(components.ShareBar("City", prof.CityProportion, t.Orange, 8, barW))
	pb.WriteString("\n")
	pb.WriteString(components.ShareBar("Highway", prof.HighwayProportion, t.Blue, 8, barW))
	pb.WriteString("\n\n")
	pb.WriteString(labelStyle.Render("City rate     "))
	pb.WriteString(valueStyle.Render(cli.FormatRate(prof.CityRate)))
	pb.WriteString(unitStyle.Render(" L/100 km"))
	pb.WriteString("\n")
	pb.WriteString(labelStyle.Render("Highway rate  "))
	pb.WriteString(valueStyle.Render(cli.FormatRate(prof.HighwayRate)))
	pb.WriteString(unitStyle.Render(" L/100 km"))
	pb.WriteString("\n\n")
	pb.WriteString(dimStyle.Render("[e] edit profile"))
	if !a.profiles.Persistent() {
		pb.WriteString("\n")
		pb.WriteString(errStyle.Render("Changes will not be saved."))
	}
	profileCard := components.ContentCard(season.Title()+" profile", pb.String(), profileW)

	result := p.reveal.View()
	if result == "" && p.estimate == nil {
		result = dimStyle.Render("Type a distance and press enter.")
	} else {
		result = renderResultLines(result)
	}
	resultCard := components.ContentCard("Result", result, resultW)

	if a.isCompactLayout() {
		b.WriteString(profileCard)
		b.WriteString("\n")
		b.WriteString(resultCard)
	} else {
		b.WriteString(components.CardRow([]string{profileCard, resultCard}))
	}

	return b.String()
}

// renderResultLines styles the revealed result text. Headings and the total
// line are highlighted; partially revealed lines are styled the same way.
func renderResultLines(text string) string {
	t := theme.Active
	headStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	totalStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface).Bold(true)
	lineStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "Total fuel"):
			lines[i] = totalStyle.Render(line)
		case line != "" && !strings.Contains(line, ":"):
			lines[i] = headStyle.Render(line)
		default:
			lines[i] = lineStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
