// Package cmd implements the benzconfig CLI commands.
package cmd

import (
	"fmt"
	"sort"

	"github.com/benzenergy/benzconfig/internal/config"
	"github.com/benzenergy/benzconfig/internal/store"
	"github.com/benzenergy/benzconfig/internal/tui/theme"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default season: %s\n", cfg.General.DefaultSeason)
	fmt.Printf("    Rate database:  %s\n", databasePath())
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	if active := theme.Active.Name; active != cfg.Appearance.Theme {
		fmt.Printf("    Active: %s (from environment)\n", active)
	}
	fmt.Println()

	fmt.Println("  [TUI]")
	if d := cfg.TUI.SplashDuration(); d > 0 {
		fmt.Printf("    Splash:        %s\n", d)
	} else {
		fmt.Println("    Splash:        off")
	}
	if d := cfg.TUI.RevealDelay(); d > 0 {
		fmt.Printf("    Result reveal: %s per character\n", d)
	} else {
		fmt.Println("    Result reveal: instant")
	}
	fmt.Println()

	fmt.Println("  [Stored rates]")
	printStoredRates()
	fmt.Println()

	fmt.Println("  Run `benzconfig setup` to reconfigure.")
	return nil
}

func printStoredRates() {
	prefs, err := store.Open(databasePath())
	if err != nil {
		fmt.Printf("    unavailable: %v\n", err)
		return
	}
	defer prefs.Close()

	values, err := prefs.All()
	if err != nil {
		fmt.Printf("    unavailable: %v\n", err)
		return
	}
	if len(values) == 0 {
		fmt.Println("    none (defaults apply)")
		return
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("    %-18s %s\n", k, values[k])
	}
}
