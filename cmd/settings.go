package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/benzenergy/benzconfig/internal/cli"
	"github.com/benzenergy/benzconfig/internal/fuel"
	"github.com/benzenergy/benzconfig/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	flagSetCity        string
	flagSetHighway     string
	flagSetCityRate    string
	flagSetHighwayRate string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Change a season's driving split and consumption rates",
	Long: "Validate and save a season profile. Missing values are asked for\n" +
		"interactively. Rates are saved; the driving split applies to this run only.",
	Example: "  benzconfig settings -s winter --city 40 --highway 60 --city-rate 14 --highway-rate 10",
	Args:    cobra.NoArgs,
	RunE:    runSettings,
}

func init() {
	settingsCmd.Flags().StringVar(&flagSetCity, "city", "", "City driving share in percent")
	settingsCmd.Flags().StringVar(&flagSetHighway, "highway", "", "Highway driving share in percent")
	settingsCmd.Flags().StringVar(&flagSetCityRate, "city-rate", "", "City consumption, L/100 km")
	settingsCmd.Flags().StringVar(&flagSetHighwayRate, "highway-rate", "", "Highway consumption, L/100 km")
	rootCmd.AddCommand(settingsCmd)
}

func runSettings(cmd *cobra.Command, _ []string) error {
	season := defaultSeason()

	profiles, closeStore := openProfiles()
	defer closeStore()

	in := fuel.InputFor(profiles.Profile(season))
	flags := cmd.Flags()
	if flags.Changed("city") {
		in.CityPct = flagSetCity
	}
	if flags.Changed("highway") {
		in.HighwayPct = flagSetHighway
	}
	if flags.Changed("city-rate") {
		in.CityRate = flagSetCityRate
	}
	if flags.Changed("highway-rate") {
		in.HighwayRate = flagSetHighwayRate
	}
	if flags.Changed("city") != flags.Changed("highway") {
		balanceSplit(&in, flags.Changed("city"))
	}

	if !anySettingFlag(cmd) {
		if err := newSettingsForm(season, &in).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Println("  Cancelled, nothing saved.")
				return nil
			}
			return fmt.Errorf("settings form: %w", err)
		}
	}

	p, err := fuel.ValidateSettings(in)
	if err != nil {
		var verr *fuel.ValidationError
		if errors.As(err, &verr) {
			lines := make([]string, 0, len(verr.Problems))
			for _, prob := range verr.Problems {
				lines = append(lines, prob.Error())
			}
			fmt.Fprint(os.Stderr, cli.RenderFieldErrors(lines))
		}
		return fmt.Errorf("%s settings not saved: %w", season, err)
	}

	if err := profiles.Commit(season, p); err != nil {
		return fmt.Errorf("%s settings: %w", season, err)
	}
	if !profiles.Persistent() {
		warnf("Rate storage unavailable, %s rates apply to this run only", season)
	}
	logger.Info("settings committed", "season", season.String(),
		"city_rate", p.CityRate, "highway_rate", p.HighwayRate)

	fmt.Println()
	fmt.Printf("  %s profile saved\n", season.Title())
	fmt.Printf("    Split  %s city / %s highway (this run only)\n",
		cli.FormatPercent(p.CityProportion), cli.FormatPercent(p.HighwayProportion))
	fmt.Printf("    Rates  %s / %s L/100 km\n", cli.FormatRate(p.CityRate), cli.FormatRate(p.HighwayRate))
	fmt.Println()
	return nil
}

func anySettingFlag(cmd *cobra.Command) bool {
	for _, name := range []string{"city", "highway", "city-rate", "highway-rate"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// balanceSplit fills the proportion that was not given so the pair sums to 100.
func balanceSplit(in *fuel.SettingsInput, cityGiven bool) {
	if cityGiven {
		if other, ok := fuel.Balance(in.CityPct); ok {
			in.HighwayPct = other
		}
		return
	}
	if other, ok := fuel.Balance(in.HighwayPct); ok {
		in.CityPct = other
	}
}

// newSettingsForm asks for the four settings values, pre-filled from in.
func newSettingsForm(season model.Season, in *fuel.SettingsInput) *huh.Form {
	decimal := func(s string) error {
		if _, err := fuel.ParseDecimal(s); err != nil {
			return err
		}
		return nil
	}

	field := func(title string, value *string) *huh.Input {
		return huh.NewInput().
			Title(title).
			CharLimit(fuel.FieldLimit(*value)).
			Validate(decimal).
			Value(value)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(season.Title()+" settings").
				Description("Proportions must add up to 100%."),
			field("City driving, %", &in.CityPct),
			field("Highway driving, %", &in.HighwayPct),
			field("City rate, L/100 km", &in.CityRate),
			field("Highway rate, L/100 km", &in.HighwayRate),
		),
	)
}
