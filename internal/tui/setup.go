package tui

import (
	"github.com/benzenergy/benzconfig/internal/config"
	"github.com/benzenergy/benzconfig/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues holds the answers of the first-run form.
type SetupValues struct {
	Theme      string
	Season     string
	ShowSplash bool
}

// SetupValuesFrom pre-fills the form from an existing config.
func SetupValuesFrom(cfg config.Config) SetupValues {
	return SetupValues{
		Theme:      cfg.Appearance.Theme,
		Season:     cfg.General.DefaultSeason,
		ShowSplash: cfg.TUI.ShowSplash,
	}
}

// NewSetupForm builds the first-run form. Answers are written into vals,
// which must outlive the form.
func NewSetupForm(vals *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, th := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(th.Name, th.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to BenzConfig").
				Description("Estimate trip fuel from your summer and winter driving profiles.\n\n"+
					"Run `benzconfig setup` anytime to change these answers."),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),
			huh.NewSelect[string]().
				Title("Season to open with").
				Options(
					huh.NewOption("Summer", "summer"),
					huh.NewOption("Winter", "winter"),
				).
				Value(&vals.Season),
			huh.NewConfirm().
				Title("Show the splash screen on start?").
				Affirmative("Yes").
				Negative("No").
				Value(&vals.ShowSplash),
		),
	).WithShowHelp(true)
}

// ApplySetup copies the form answers into cfg.
func ApplySetup(cfg config.Config, vals SetupValues) config.Config {
	if theme.Valid(vals.Theme) {
		cfg.Appearance.Theme = vals.Theme
	}
	if vals.Season == "summer" || vals.Season == "winter" {
		cfg.General.DefaultSeason = vals.Season
	}
	cfg.TUI.ShowSplash = vals.ShowSplash
	return cfg
}
