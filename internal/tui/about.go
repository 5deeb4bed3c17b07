package tui

import (
	"fmt"
	"strings"

	"github.com/benzenergy/benzconfig/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Credit is one line of the about dialog.
type Credit struct {
	Label string
	Name  string
	URL   string
}

// Credits lists the license and attribution links shown in the about dialog.
var Credits = []Credit{
	{"License", "GNU GPL v3.0", "https://www.gnu.org/licenses/gpl-3.0.html"},
	{"Icon", "flaticon.com", "https://www.flaticon.com/free-icon/sign_2737912"},
	{"Source", "BenzConfig-Android", "https://github.com/benzenergy/BenzConfig-Android"},
}

func overlayCardStyle() lipgloss.Style {
	t := theme.Active
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)
}

func (a App) renderAbout() string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	urlStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Underline(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ About BenzConfig"))
	b.WriteString("\n\n")
	for _, c := range Credits {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-8s", c.Label)))
		b.WriteString(nameStyle.Render(c.Name))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("        "))
		b.WriteString(urlStyle.Render(c.URL))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return overlayCardStyle().Render(b.String())
}

func (a App) renderHelp() string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	sections := []struct {
		name     string
		bindings []struct{ key, desc string }
	}{
		{"Calculator", []struct{ key, desc string }{
			{"0-9 . ,", "Type a distance"},
			{"Enter", "Calculate fuel"},
			{"Space", "Show the whole result"},
			{"Esc", "Clear the trip"},
			{"Tab ← →", "Switch season"},
		}},
		{"Settings", []struct{ key, desc string }{
			{"e", "Edit season profile"},
			{"Tab ↑ ↓", "Next / previous field"},
			{"^s", "Save"},
			{"Esc", "Cancel"},
		}},
		{"General", []struct{ key, desc string }{
			{"a", "About"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(sec.name))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return overlayCardStyle().Render(b.String())
}
