package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/benzenergy/benzconfig/internal/fuel"
	"github.com/benzenergy/benzconfig/internal/model"
	"github.com/benzenergy/benzconfig/internal/tui/components"
	"github.com/benzenergy/benzconfig/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Settings dialog rows, in tab order.
const (
	settingsFieldCityPct = iota
	settingsFieldHighwayPct
	settingsFieldCityRate
	settingsFieldHighwayRate
	settingsFieldCount // sentinel
)

var settingsLabels = [settingsFieldCount]string{
	"City driving, %",
	"Highway driving, %",
	"City rate, L/100 km",
	"Highway rate, L/100 km",
}

// settingsFields maps dialog rows to validator fields.
var settingsFields = [settingsFieldCount]fuel.Field{
	fuel.FieldCityPct,
	fuel.FieldHighwayPct,
	fuel.FieldCityRate,
	fuel.FieldHighwayRate,
}

// settingsState tracks the per-season settings dialog.
type settingsState struct {
	season  model.Season
	inputs  [settingsFieldCount]textinput.Model
	cursor  int
	invalid [settingsFieldCount]bool
	err     error // last validation failure
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = fuel.MaxSettingLen
	ti.Width = fuel.MaxSettingLen + 1
	ti.Prompt = ""
	return ti
}

func newSettingsState(season model.Season, p model.DrivingProfile) settingsState {
	in := fuel.InputFor(p)
	values := [settingsFieldCount]string{in.CityPct, in.HighwayPct, in.CityRate, in.HighwayRate}

	s := settingsState{season: season}
	for i := range s.inputs {
		s.inputs[i] = newSettingsInput()
		s.set(i, values[i])
	}
	s.inputs[0].Focus()
	return s
}

// set replaces row i's text, widening the row so nothing is cut off.
func (s *settingsState) set(i int, text string) {
	s.inputs[i].CharLimit = fuel.FieldLimit(text)
	s.inputs[i].Width = s.inputs[i].CharLimit + 1
	s.inputs[i].SetValue(text)
}

func (s settingsState) input() fuel.SettingsInput {
	return fuel.SettingsInput{
		CityPct:     s.inputs[settingsFieldCityPct].Value(),
		HighwayPct:  s.inputs[settingsFieldHighwayPct].Value(),
		CityRate:    s.inputs[settingsFieldCityRate].Value(),
		HighwayRate: s.inputs[settingsFieldHighwayRate].Value(),
	}
}

// moveTo shifts focus to row i. Leaving a proportion row balances the pair.
func (s *settingsState) moveTo(i int) tea.Cmd {
	if i < 0 || i >= settingsFieldCount || i == s.cursor {
		return nil
	}
	s.inputs[s.cursor].Blur()
	s.balanceFrom(s.cursor)

	s.cursor = i
	s.invalid[i] = false
	return s.inputs[i].Focus()
}

// balanceFrom sets the other proportion to 100 minus row i's value.
// An invalid value marks row i and leaves the other row alone.
func (s *settingsState) balanceFrom(i int) {
	var other int
	switch i {
	case settingsFieldCityPct:
		other = settingsFieldHighwayPct
	case settingsFieldHighwayPct:
		other = settingsFieldCityPct
	default:
		return
	}

	v, ok := fuel.Balance(s.inputs[i].Value())
	if !ok {
		s.invalid[i] = true
		return
	}
	s.set(other, v)
	s.invalid[i] = false
	s.invalid[other] = false
}

// markErrors flags every field named in a validation error.
func (s *settingsState) markErrors(err error) {
	s.err = err
	var verr *fuel.ValidationError
	if !errors.As(err, &verr) {
		return
	}
	for i, f := range settingsFields {
		if verr.Has(f) {
			s.invalid[i] = true
		}
	}
}

func (a App) openSettings(season model.Season) (tea.Model, tea.Cmd) {
	a.panes[a.active].input.Blur()
	a.settings = newSettingsState(season, a.profiles.Profile(season))
	a.overlay = overlaySettings
	return a, a.settings.inputs[0].Cursor.BlinkCmd()
}

func (a App) closeSettings() (tea.Model, tea.Cmd) {
	a.overlay = overlayNone
	return a, a.panes[a.active].input.Focus()
}

func (a App) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &a.settings

	switch msg.String() {
	case "esc":
		return a.closeSettings()
	case "ctrl+s":
		return a.saveSettings()
	case "enter":
		if s.cursor == settingsFieldCount-1 {
			return a.saveSettings()
		}
		return a, s.moveTo(s.cursor + 1)
	case "tab", "down":
		return a, s.moveTo((s.cursor + 1) % settingsFieldCount)
	case "shift+tab", "up":
		return a, s.moveTo((s.cursor - 1 + settingsFieldCount) % settingsFieldCount)
	}

	filtered, ok := numericKey(msg)
	if !ok {
		return a, nil
	}
	s.invalid[s.cursor] = false
	var cmd tea.Cmd
	s.inputs[s.cursor], cmd = s.inputs[s.cursor].Update(filtered)
	return a, cmd
}

// saveSettings validates the dialog and commits the profile. The dialog
// stays open with the offending fields marked when validation fails.
func (a App) saveSettings() (tea.Model, tea.Cmd) {
	season := a.settings.season
	p, err := fuel.ValidateSettings(a.settings.input())
	if err != nil {
		a.settings.markErrors(err)
		a.log.Debug("settings rejected", "season", season.String(), "err", err)
		return a, nil
	}

	if err := a.profiles.Commit(season, p); err != nil {
		a.setNotice(fmt.Sprintf("%s settings apply, but could not be saved: %v", season.Title(), err), true)
		a.log.Warn("saving rates failed", "season", season.String(), "err", err)
	} else {
		a.setNotice(season.Title()+" settings saved", false)
		a.log.Info("settings committed", "season", season.String(),
			"city_pct", p.CityProportion*100, "highway_pct", p.HighwayProportion*100,
			"city_rate", p.CityRate, "highway_rate", p.HighwayRate)
	}

	return a.closeSettings()
}

func (a App) renderSettings() string {
	t := theme.Active
	s := a.settings
	const cw = 48

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	errStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	var body strings.Builder
	for i, label := range settingsLabels {
		marker := spaceStyle.Render("  ")
		ls := labelStyle
		if i == s.cursor {
			marker = markerStyle.Render("▸ ")
			ls = selectedLabelStyle
		}
		body.WriteString(marker)
		body.WriteString(ls.Render(fmt.Sprintf("%-24s", label)))
		body.WriteString(s.inputs[i].View())
		if s.invalid[i] {
			body.WriteString(errStyle.Render("  ✗"))
		}
		body.WriteString("\n")
	}

	if s.err != nil {
		body.WriteString("\n")
		for _, line := range validationLines(s.err) {
			body.WriteString(errStyle.Render(line))
			body.WriteString("\n")
		}
	}

	body.WriteString("\n")
	body.WriteString(hintStyle.Render("[tab] next  [ctrl+s] save  [esc] close"))

	title := s.season.Title() + " settings"
	if s.err != nil {
		return components.ErrorCard(title, body.String(), cw)
	}
	return components.FocusCard(title, body.String(), cw)
}

// validationLines turns a settings error into one message per distinct cause.
func validationLines(err error) []string {
	var lines []string
	switch {
	case errors.Is(err, fuel.ErrInvalidProportion) && errors.Is(err, fuel.ErrInvalidRate):
		lines = append(lines, "Proportions must add up to 100%.", "Rates must be non-negative numbers.")
	case errors.Is(err, fuel.ErrInvalidProportion):
		lines = append(lines, "Proportions must add up to 100%.")
	case errors.Is(err, fuel.ErrInvalidRate):
		lines = append(lines, "Rates must be non-negative numbers.")
	default:
		lines = append(lines, err.Error())
	}
	return lines
}
