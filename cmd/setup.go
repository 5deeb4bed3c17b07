package cmd

import (
	"errors"
	"fmt"

	"github.com/benzenergy/benzconfig/internal/config"
	"github.com/benzenergy/benzconfig/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	vals := tui.SetupValuesFrom(cfg)
	if err := tui.NewSetupForm(&vals).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	cfg = tui.ApplySetup(cfg, vals)
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `benzconfig setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
