package cmd

import (
	"errors"
	"fmt"

	"github.com/benzenergy/benzconfig/internal/profile"
	"github.com/benzenergy/benzconfig/internal/store"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	flagYes   bool
	flagPurge bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default consumption rates",
	Long:  "Restore the default rates of both seasons (summer 11.5/8.5, winter 13.8/10.2 L/100 km).",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Skip the confirmation")
	resetCmd.Flags().BoolVar(&flagPurge, "purge", false, "Delete the stored rates instead of writing defaults")
	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, _ []string) error {
	if !flagYes {
		confirmed := false
		err := huh.NewConfirm().
			Title("Restore default rates for both seasons?").
			Affirmative("Reset").
			Negative("Cancel").
			Value(&confirmed).
			Run()
		if err != nil && !errors.Is(err, huh.ErrUserAborted) {
			return fmt.Errorf("confirm: %w", err)
		}
		if !confirmed {
			fmt.Println("  Nothing changed.")
			return nil
		}
	}

	if flagPurge {
		return purgeRates()
	}

	profiles, closeStore := openProfiles()
	defer closeStore()

	if err := profiles.Reset(); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	logger.Info("rates reset to defaults")
	fmt.Println("  Default rates restored.")
	return nil
}

// purgeRates removes the stored rates; the next run starts from defaults.
func purgeRates() error {
	prefs, err := store.Open(databasePath())
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	defer prefs.Close()

	if err := prefs.Delete(profile.Keys...); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	logger.Info("stored rates deleted", "path", databasePath())
	fmt.Println("  Stored rates deleted.")
	return nil
}
