package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/benzenergy/benzconfig/internal/cli"
	"github.com/benzenergy/benzconfig/internal/config"
	"github.com/benzenergy/benzconfig/internal/model"
	"github.com/benzenergy/benzconfig/internal/profile"
	"github.com/benzenergy/benzconfig/internal/store"
	"github.com/benzenergy/benzconfig/internal/tui/theme"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagDB      string
	flagSeason  string
	flagVerbose bool
	flagQuiet   bool
)

// Loaded once per invocation by loadEnvironment.
var (
	cfg    = config.DefaultConfig()
	logger = slog.New(slog.DiscardHandler)
)

var rootCmd = &cobra.Command{
	Use:               "benzconfig",
	Short:             "Trip fuel calculator",
	Long:              "Estimate the fuel a trip needs from summer and winter driving profiles.",
	SilenceUsage:      true,
	PersistentPreRunE: loadEnvironment,
	RunE:              runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Rate database path (default $XDG_DATA_HOME/benzconfig/prefs.db)")
	rootCmd.PersistentFlags().StringVarP(&flagSeason, "season", "s", "", "Season profile: summer or winter")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log diagnostics")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress warnings")
}

// loadEnvironment reads .env, the config file and the theme, and sets up logging.
// Nothing here is fatal: every failure falls back to defaults.
func loadEnvironment(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		warnf("Ignoring .env: %v", err)
	}

	loaded, err := config.Load()
	if err != nil {
		warnf("Config unreadable, using defaults: %v", err)
	}
	cfg = loaded

	theme.SetActive(config.GetTheme(cfg))

	if flagVerbose {
		logger = newLogger(os.Stderr)
	}
	logger.Debug("environment loaded", "config", config.ConfigPath(), "theme", theme.Active.Name)
	return nil
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	logger.Warn(msg)
	if !flagQuiet {
		fmt.Fprintln(os.Stderr, cli.RenderWarning(msg))
	}
}

// databasePath resolves the rate database: --db, then BENZCONFIG_DB or the
// config file, then the default data directory.
func databasePath() string {
	if flagDB != "" {
		return flagDB
	}
	if p := config.GetDatabasePath(cfg); p != "" {
		return p
	}
	return store.DefaultPath()
}

// openProfiles loads the driving profiles. When the rate database cannot be
// used, default rates apply and nothing is persisted.
func openProfiles() (*profile.Set, func()) {
	path := databasePath()
	prefs, err := store.Open(path)
	if err != nil {
		warnf("Rate storage unavailable, using default rates: %v", err)
		return profile.Defaults(), func() {}
	}
	logger.Debug("rate store opened", "path", path)

	profiles, err := profile.Load(prefs)
	if err != nil {
		_ = prefs.Close()
		warnf("Could not read saved rates, using defaults: %v", err)
		return profiles, func() {}
	}
	return profiles, func() { _ = prefs.Close() }
}

// selectedSeasons returns the season named by --season, or every season when
// the flag is empty.
func selectedSeasons() ([]model.Season, error) {
	if flagSeason == "" {
		return model.Seasons, nil
	}
	s, err := model.ParseSeason(flagSeason)
	if err != nil {
		return nil, err
	}
	return []model.Season{s}, nil
}

// defaultSeason returns the season named by --season, else the configured one.
func defaultSeason() model.Season {
	name := flagSeason
	if name == "" {
		name = cfg.General.DefaultSeason
	}
	s, err := model.ParseSeason(name)
	if err != nil {
		return model.Summer
	}
	return s
}
