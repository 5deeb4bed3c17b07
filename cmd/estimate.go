package cmd

import (
	"fmt"
	"strings"

	"github.com/benzenergy/benzconfig/internal/cli"
	"github.com/benzenergy/benzconfig/internal/fuel"
	"github.com/benzenergy/benzconfig/internal/model"
	"github.com/benzenergy/benzconfig/internal/profile"

	"github.com/spf13/cobra"
)

var (
	flagCityPct    string
	flagHighwayPct string
	flagPlain      bool
)

var estimateCmd = &cobra.Command{
	Use:     "estimate <distance-km>",
	Aliases: []string{"calc"},
	Short:   "Estimate the fuel a trip needs",
	Long: "Estimate the fuel a trip needs. Without --season both season profiles are shown.\n" +
		"--city/--highway override the driving split for this run only.",
	Example: "  benzconfig estimate 120\n  benzconfig estimate -s winter --city 60 250,5\n  benzconfig estimate -- 42.5",
	Args:    cobra.ExactArgs(1),
	RunE:    runEstimate,
}

func init() {
	estimateCmd.Flags().StringVar(&flagCityPct, "city", "", "City driving share in percent")
	estimateCmd.Flags().StringVar(&flagHighwayPct, "highway", "", "Highway driving share in percent")
	estimateCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the result as plain text")
	estimateCmd.SetFlagErrorFunc(distanceFlagError)
	rootCmd.AddCommand(estimateCmd)
}

// distanceFlagError reports a negative distance such as "-5", which the flag
// parser takes for an unknown shorthand, as a negative distance.
func distanceFlagError(_ *cobra.Command, err error) error {
	const marker = " in -"
	msg := err.Error()
	i := strings.LastIndex(msg, marker)
	if !strings.HasPrefix(msg, "unknown shorthand flag") || i < 0 {
		return err
	}
	text := msg[i+len(marker):]
	if v, perr := fuel.ParseDecimal(text); perr != nil || v <= 0 {
		return err
	}
	return fmt.Errorf("-%s: %w", text, fuel.ErrNegativeDistance)
}

func runEstimate(_ *cobra.Command, args []string) error {
	seasons, err := selectedSeasons()
	if err != nil {
		return err
	}

	profiles, closeStore := openProfiles()
	defer closeStore()

	if err := applySplitFlags(profiles, seasons, flagCityPct, flagHighwayPct); err != nil {
		return err
	}

	for i, season := range seasons {
		est, err := fuel.EstimateText(args[0], profiles.Profile(season))
		if err != nil {
			return err
		}
		logger.Debug("estimate", "season", season.String(), "distance", est.Distance, "total", est.TotalFuel)

		if flagPlain {
			if len(seasons) > 1 {
				fmt.Println(season.Title())
			}
			fmt.Println(cli.ResultText(est))
			if i < len(seasons)-1 {
				fmt.Println()
			}
			continue
		}

		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title: season.Title() + " profile",
			Rows:  cli.EstimateRows(est),
		}))
		fmt.Println(cli.RenderTotal("Total fuel", cli.FormatLiters(est.TotalFuel)))
	}
	if !flagPlain {
		fmt.Println()
	}
	return nil
}

// applySplitFlags validates --city/--highway and applies them to the given
// seasons in memory. A single flag is balanced to 100%.
func applySplitFlags(profiles *profile.Set, seasons []model.Season, city, highway string) error {
	if city == "" && highway == "" {
		return nil
	}

	for _, season := range seasons {
		in := fuel.InputFor(profiles.Profile(season))
		in.CityPct, in.HighwayPct = city, highway
		if city == "" || highway == "" {
			balanceSplit(&in, city != "")
		}
		p, err := fuel.ValidateSettings(in)
		if err != nil {
			return fmt.Errorf("driving split: %w", err)
		}
		profiles.SetProportions(season, p.CityProportion, p.HighwayProportion)
	}
	return nil
}
