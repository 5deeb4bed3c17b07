package cmd

import (
	"fmt"

	"github.com/benzenergy/benzconfig/internal/cli"
	"github.com/benzenergy/benzconfig/internal/tui"

	"github.com/spf13/cobra"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show license and attribution",
	Args:  cobra.NoArgs,
	Run:   runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(_ *cobra.Command, _ []string) {
	rows := make([][]string, 0, len(tui.Credits))
	for _, c := range tui.Credits {
		rows = append(rows, []string{c.Label, c.Name, c.URL})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("BenzConfig  Trip fuel calculator"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{Rows: rows}))
	fmt.Println()
}
