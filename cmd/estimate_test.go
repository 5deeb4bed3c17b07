package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/benzenergy/benzconfig/internal/fuel"
	"github.com/benzenergy/benzconfig/internal/model"
	"github.com/benzenergy/benzconfig/internal/profile"
)

func TestApplySplitFlags(t *testing.T) {
	tests := []struct {
		name          string
		city, highway string
		wantCity      float64
		wantErr       error
	}{
		{"none", "", "", 0.3, nil},
		{"both", "60", "40", 0.6, nil},
		{"city only", "45", "", 0.45, nil},
		{"highway only", "", "25", 0.75, nil},
		{"comma", "33,5", "", 0.335, nil},
		{"bad sum", "60", "50", 0, fuel.ErrInvalidProportion},
		{"not a number", "abc", "", 0, fuel.ErrInvalidProportion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles := profile.Defaults()
			err := applySplitFlags(profiles, model.Seasons, tt.city, tt.highway)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				if profiles.Profile(model.Summer) != model.DefaultProfile(model.Summer) {
					t.Error("rejected split changed the profile")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, s := range model.Seasons {
				p := profiles.Profile(s)
				if diff := p.CityProportion - tt.wantCity; diff > 1e-9 || diff < -1e-9 {
					t.Errorf("%v city = %v, want %v", s, p.CityProportion, tt.wantCity)
				}
				if p.CityRate != model.DefaultProfile(s).CityRate {
					t.Errorf("%v rate changed to %v", s, p.CityRate)
				}
			}
		})
	}
}

func TestSelectedSeasons(t *testing.T) {
	defer func() { flagSeason = "" }()

	flagSeason = ""
	got, err := selectedSeasons()
	if err != nil || len(got) != 2 {
		t.Fatalf("selectedSeasons() = %v, %v; want both seasons", got, err)
	}

	flagSeason = "winter"
	got, err = selectedSeasons()
	if err != nil || len(got) != 1 || got[0] != model.Winter {
		t.Fatalf("selectedSeasons() = %v, %v; want [winter]", got, err)
	}

	flagSeason = "autumn"
	if _, err := selectedSeasons(); err == nil {
		t.Error("unknown season accepted")
	}
}

func TestDefaultSeason(t *testing.T) {
	defer func() { flagSeason = ""; cfg.General.DefaultSeason = "summer" }()

	flagSeason = ""
	cfg.General.DefaultSeason = "winter"
	if got := defaultSeason(); got != model.Winter {
		t.Errorf("defaultSeason() = %v, want configured winter", got)
	}

	flagSeason = "s"
	if got := defaultSeason(); got != model.Summer {
		t.Errorf("defaultSeason() = %v, want flag summer", got)
	}

	flagSeason = ""
	cfg.General.DefaultSeason = "garbage"
	if got := defaultSeason(); got != model.Summer {
		t.Errorf("defaultSeason() = %v, want fallback summer", got)
	}
}

func TestOpenProfilesPersists(t *testing.T) {
	defer func() { flagDB = "" }()
	flagDB = filepath.Join(t.TempDir(), "prefs.db")

	profiles, closeStore := openProfiles()
	if !profiles.Persistent() {
		closeStore()
		t.Fatal("profiles backed by a fresh database should persist")
	}
	p := profiles.Profile(model.Winter)
	p.CityRate = 15
	if err := profiles.Commit(model.Winter, p); err != nil {
		closeStore()
		t.Fatalf("Commit: %v", err)
	}
	closeStore()

	reopened, closeStore := openProfiles()
	defer closeStore()
	if got := reopened.Profile(model.Winter).CityRate; got != 15 {
		t.Errorf("reopened winter city rate = %v, want 15", got)
	}
}

func TestOpenProfilesFallsBack(t *testing.T) {
	defer func() { flagDB = ""; flagQuiet = false }()
	flagQuiet = true
	// The data directory cannot be created below a regular file.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	flagDB = filepath.Join(blocker, "prefs.db")

	profiles, closeStore := openProfiles()
	defer closeStore()
	if profiles.Persistent() {
		t.Error("unusable database should yield non-persistent defaults")
	}
	if profiles.Profile(model.Summer) != model.DefaultProfile(model.Summer) {
		t.Error("fallback profiles are not the defaults")
	}
}
