package cmd

import (
	"fmt"

	"github.com/benzenergy/benzconfig/internal/cli"
	"github.com/benzenergy/benzconfig/internal/model"

	"github.com/spf13/cobra"
)

var ratesCmd = &cobra.Command{
	Use:     "rates",
	Aliases: []string{"profiles"},
	Short:   "Show the summer and winter driving profiles",
	Args:    cobra.NoArgs,
	RunE:    runRates,
}

func init() {
	rootCmd.AddCommand(ratesCmd)
}

func runRates(_ *cobra.Command, _ []string) error {
	profiles, closeStore := openProfiles()
	defer closeStore()

	headers := []string{"Profile"}
	city := []string{"City driving"}
	highway := []string{"Highway driving"}
	cityRate := []string{"City rate"}
	highwayRate := []string{"Highway rate"}

	for _, season := range model.Seasons {
		p := profiles.Profile(season)
		headers = append(headers, season.Title())
		city = append(city, cli.FormatPercent(p.CityProportion))
		highway = append(highway, cli.FormatPercent(p.HighwayProportion))
		cityRate = append(cityRate, cli.FormatRate(p.CityRate)+" L/100km")
		highwayRate = append(highwayRate, cli.FormatRate(p.HighwayRate)+" L/100km")
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Driving profiles",
		Headers: headers,
		Rows:    [][]string{city, highway, {"---"}, cityRate, highwayRate},
	}))
	fmt.Println()

	if profiles.Persistent() {
		fmt.Printf("  Rates stored in %s\n", databasePath())
	} else {
		fmt.Println("  Default rates (storage unavailable)")
	}
	fmt.Println("  Driving split resets to 30% / 70% on every run.")
	fmt.Println()
	return nil
}
