// Package config loads and saves the benzconfig TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all benzconfig configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	TUI        TUIConfig        `toml:"tui"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DatabasePath  string `toml:"database_path,omitempty"`
	DefaultSeason string `toml:"default_season"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// TUIConfig holds interactive-mode timings.
type TUIConfig struct {
	SplashMs     int  `toml:"splash_ms"`
	RevealCharMs int  `toml:"reveal_char_ms"`
	ShowSplash   bool `toml:"show_splash"`
}

// Defaults for the TUI timings.
const (
	DefaultSplash     = 700 * time.Millisecond
	DefaultRevealChar = 8 * time.Millisecond
)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultSeason: "summer",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		TUI: TUIConfig{
			SplashMs:     int(DefaultSplash / time.Millisecond),
			RevealCharMs: int(DefaultRevealChar / time.Millisecond),
			ShowSplash:   true,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "benzconfig")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "benzconfig")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// GetDatabasePath returns the database path from env var or config, in that order.
// An empty result means the store's default location.
func GetDatabasePath(cfg Config) string {
	if p := os.Getenv("BENZCONFIG_DB"); p != "" {
		return p
	}
	return cfg.General.DatabasePath
}

// GetTheme returns the theme name from env var or config, in that order.
func GetTheme(cfg Config) string {
	if t := os.Getenv("BENZCONFIG_THEME"); t != "" {
		return t
	}
	return cfg.Appearance.Theme
}

// SplashDuration returns how long the splash screen stays up. Zero disables it.
func (c TUIConfig) SplashDuration() time.Duration {
	if !c.ShowSplash {
		return 0
	}
	if c.SplashMs <= 0 {
		return DefaultSplash
	}
	return time.Duration(c.SplashMs) * time.Millisecond
}

// RevealDelay returns the per-character delay of the result reveal. Zero shows results at once.
func (c TUIConfig) RevealDelay() time.Duration {
	if c.RevealCharMs < 0 {
		return 0
	}
	return time.Duration(c.RevealCharMs) * time.Millisecond
}
