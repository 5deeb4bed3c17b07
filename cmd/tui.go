package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/benzenergy/benzconfig/internal/config"
	"github.com/benzenergy/benzconfig/internal/store"
	"github.com/benzenergy/benzconfig/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var flagNoSplash bool

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive calculator",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().BoolVar(&flagNoSplash, "no-splash", false, "Skip the splash screen")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	// The alternate screen owns stderr, so diagnostics go to a file.
	if flagVerbose {
		logPath := filepath.Join(store.DataDir(), "benzconfig.log")
		if err := os.MkdirAll(filepath.Dir(logPath), 0o750); err == nil {
			if f, err := os.OpenFile(logPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600); err == nil {
				defer f.Close()
				logger = newLogger(f)
				fmt.Fprintf(os.Stderr, "  Logging to %s\n", logPath)
			}
		}
	}

	profiles, closeStore := openProfiles()
	defer closeStore()

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	splash := cfg.TUI.SplashDuration()
	if flagNoSplash {
		splash = 0
	}

	app := tui.NewApp(tui.Options{
		Profiles:    profiles,
		Season:      defaultSeason(),
		Splash:      splash,
		RevealDelay: cfg.TUI.RevealDelay(),
		NeedSetup:   !config.Exists(),
		Config:      cfg,
		Logger:      logger,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
