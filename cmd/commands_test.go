package cmd

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/benzenergy/benzconfig/internal/fuel"
	"github.com/benzenergy/benzconfig/internal/model"
	"github.com/benzenergy/benzconfig/internal/profile"
	"github.com/benzenergy/benzconfig/internal/store"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags restores every flag of c and its subcommands to its default,
// so each Execute starts from a clean command tree.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// runCLI executes args against the rate database at dbPath, with the config
// directory moved to a temporary one.
func runCLI(t *testing.T, dbPath string, args ...string) error {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("BENZCONFIG_DB", "")
	t.Setenv("BENZCONFIG_THEME", "")

	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	rootCmd.SetArgs(append([]string{"--quiet", "--db", dbPath}, args...))
	return rootCmd.Execute()
}

func tempDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "prefs.db")
}

func storedRates(t *testing.T, dbPath string) map[string]string {
	t.Helper()
	prefs, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	defer prefs.Close()
	all, err := prefs.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	return all
}

func loadProfiles(t *testing.T, dbPath string) *profile.Set {
	t.Helper()
	prefs, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	defer prefs.Close()
	profiles, err := profile.Load(prefs)
	if err != nil {
		t.Fatalf("profile.Load: %v", err)
	}
	return profiles
}

func TestSettingsCommandCommitsRates(t *testing.T) {
	db := tempDB(t)
	err := runCLI(t, db, "settings", "-s", "winter",
		"--city", "40", "--highway", "60", "--city-rate", "14,5", "--highway-rate", "9.75")
	if err != nil {
		t.Fatalf("settings: %v", err)
	}

	got := loadProfiles(t, db).Profile(model.Winter)
	if got.CityRate != 14.5 || got.HighwayRate != 9.75 {
		t.Errorf("stored winter rates = %v/%v, want 14.5/9.75", got.CityRate, got.HighwayRate)
	}
	// The split applies to that run only.
	def := model.DefaultProfile(model.Winter)
	if got.CityProportion != def.CityProportion || got.HighwayProportion != def.HighwayProportion {
		t.Errorf("split persisted: %v/%v", got.CityProportion, got.HighwayProportion)
	}
	if summer := loadProfiles(t, db).Profile(model.Summer); summer != model.DefaultProfile(model.Summer) {
		t.Errorf("summer profile changed: %+v", summer)
	}

	rates := storedRates(t, db)
	if rates[profile.KeyWinterCityRate] != "14.5" || rates[profile.KeyWinterHighwayRate] != "9.75" {
		t.Errorf("stored values = %v", rates)
	}
}

func TestSettingsCommandBalancesSingleShare(t *testing.T) {
	db := tempDB(t)
	// 40 + the stored 70 would fail the sum; the highway share must follow.
	if err := runCLI(t, db, "settings", "-s", "summer", "--city", "40", "--city-rate", "12"); err != nil {
		t.Fatalf("settings with only --city: %v", err)
	}
	if got := loadProfiles(t, db).Profile(model.Summer).CityRate; got != 12 {
		t.Errorf("summer city rate = %v, want 12", got)
	}

	db = tempDB(t)
	if err := runCLI(t, db, "settings", "-s", "summer", "--highway", "25"); err != nil {
		t.Fatalf("settings with only --highway: %v", err)
	}
}

func TestSettingsCommandRejectionLeavesStore(t *testing.T) {
	db := tempDB(t)
	if err := runCLI(t, db, "settings", "-s", "summer", "--city-rate", "13"); err != nil {
		t.Fatalf("seed settings: %v", err)
	}
	before := storedRates(t, db)

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"bad sum", []string{"--city", "60", "--highway", "50", "--city-rate", "20"}, fuel.ErrInvalidProportion},
		{"negative rate", []string{"--city-rate", "20", "--highway-rate", "-1"}, fuel.ErrInvalidRate},
		{"not a number", []string{"--city-rate", "fast"}, fuel.ErrInvalidRate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"settings", "-s", "summer"}, tt.args...)
			err := runCLI(t, db, args...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			after := storedRates(t, db)
			if len(after) != len(before) {
				t.Fatalf("stored keys changed: %v -> %v", before, after)
			}
			for k, v := range before {
				if after[k] != v {
					t.Errorf("%s changed from %q to %q", k, v, after[k])
				}
			}
		})
	}
}

func TestResetCommandWritesDefaults(t *testing.T) {
	db := tempDB(t)
	if err := runCLI(t, db, "settings", "-s", "winter", "--city-rate", "20", "--highway-rate", "15"); err != nil {
		t.Fatalf("seed settings: %v", err)
	}

	if err := runCLI(t, db, "reset", "--yes"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	profiles := loadProfiles(t, db)
	for _, s := range model.Seasons {
		if got := profiles.Profile(s); got != model.DefaultProfile(s) {
			t.Errorf("%v profile after reset = %+v", s, got)
		}
	}
	rates := storedRates(t, db)
	for _, k := range profile.Keys {
		if _, ok := rates[k]; !ok {
			t.Errorf("reset did not write %s", k)
		}
	}
	if rates[profile.KeyWinterCityRate] != "13.8" {
		t.Errorf("winter city rate = %q, want 13.8", rates[profile.KeyWinterCityRate])
	}
}

func TestResetCommandPurgeDeletesKeys(t *testing.T) {
	db := tempDB(t)
	if err := runCLI(t, db, "reset", "--yes"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if got := len(storedRates(t, db)); got != len(profile.Keys) {
		t.Fatalf("stored keys before purge = %d, want %d", got, len(profile.Keys))
	}

	if err := runCLI(t, db, "reset", "--yes", "--purge"); err != nil {
		t.Fatalf("reset --purge: %v", err)
	}
	if rates := storedRates(t, db); len(rates) != 0 {
		t.Errorf("stored rates after purge = %v, want none", rates)
	}
}

func TestEstimateCommandRejectsBadDistance(t *testing.T) {
	tests := []struct {
		args    []string
		wantErr error
	}{
		{[]string{"estimate", "abc"}, fuel.ErrUnparsableNumber},
		{[]string{"estimate", "1.2.3"}, fuel.ErrUnparsableNumber},
		{[]string{"estimate", "--", "-5"}, fuel.ErrNegativeDistance},
		{[]string{"estimate", "-5"}, fuel.ErrNegativeDistance},
		{[]string{"estimate", "-s", "winter", "-12,5"}, fuel.ErrNegativeDistance},
	}
	for _, tt := range tests {
		err := runCLI(t, tempDB(t), tt.args...)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("%v: err = %v, want %v", tt.args, err, tt.wantErr)
		}
	}
}

func TestEstimateCommandSucceeds(t *testing.T) {
	if err := runCLI(t, tempDB(t), "estimate", "--plain", "-s", "summer", "100"); err != nil {
		t.Fatalf("estimate: %v", err)
	}
}

func TestDistanceFlagErrorKeepsOtherErrors(t *testing.T) {
	for _, msg := range []string{
		"unknown shorthand flag: 'x' in -x",
		"unknown shorthand flag: 'v' in -v5",
		"unknown flag: --speed",
	} {
		in := errors.New(msg)
		if got := distanceFlagError(estimateCmd, in); got != in {
			t.Errorf("%q rewritten to %v", msg, got)
		}
	}
}
