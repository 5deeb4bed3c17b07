// Package profile owns the per-season driving profiles for one process.
//
// Proportions live only in memory and start from the defaults every run.
// Rates are loaded from a RateStore once and written back on every commit.
package profile

import (
	"fmt"
	"math"
	"strconv"

	"github.com/benzenergy/benzconfig/internal/model"
)

// Persisted rate keys.
const (
	KeySummerCityRate    = "summerCityRate"
	KeySummerHighwayRate = "summerHighwayRate"
	KeyWinterCityRate    = "winterCityRate"
	KeyWinterHighwayRate = "winterHighwayRate"
)

// Keys lists every persisted rate key.
var Keys = []string{KeySummerCityRate, KeySummerHighwayRate, KeyWinterCityRate, KeyWinterHighwayRate}

// RateStore is the key-value backend rates are persisted in.
type RateStore interface {
	Get(key string) (string, bool, error)
	SetMany(values map[string]string) error
}

// Set holds the current profile of each season.
type Set struct {
	store    RateStore
	profiles [2]model.DrivingProfile
}

func rateKeys(s model.Season) (city, highway string) {
	if s == model.Winter {
		return KeyWinterCityRate, KeyWinterHighwayRate
	}
	return KeySummerCityRate, KeySummerHighwayRate
}

// Defaults returns a Set with built-in profiles that is not backed by storage.
func Defaults() *Set {
	s := &Set{}
	for _, season := range model.Seasons {
		s.profiles[season] = model.DefaultProfile(season)
	}
	return s
}

// Load reads persisted rates from store. A key that is absent or does not
// parse falls back to its default. An error is returned only when the store
// itself fails; the returned Set then holds defaults.
func Load(store RateStore) (*Set, error) {
	s := Defaults()
	s.store = store

	for _, season := range model.Seasons {
		cityKey, highwayKey := rateKeys(season)
		p := &s.profiles[season]

		v, err := loadRate(store, cityKey, p.CityRate)
		if err != nil {
			return Defaults(), err
		}
		p.CityRate = v

		v, err = loadRate(store, highwayKey, p.HighwayRate)
		if err != nil {
			return Defaults(), err
		}
		p.HighwayRate = v
	}
	return s, nil
}

func loadRate(store RateStore, key string, def float64) (float64, error) {
	raw, ok, err := store.Get(key)
	if err != nil {
		return def, fmt.Errorf("reading %s: %w", key, err)
	}
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return def, nil
	}
	return v, nil
}

// Profile returns the current profile for season.
func (s *Set) Profile(season model.Season) model.DrivingProfile {
	return s.profiles[season]
}

// Commit replaces the profile for season and persists all four rates.
// The in-memory profile is updated even if persisting fails.
func (s *Set) Commit(season model.Season, p model.DrivingProfile) error {
	s.profiles[season] = p
	return s.save()
}

// SetProportions changes the city/highway split for season without touching storage.
func (s *Set) SetProportions(season model.Season, city, highway float64) {
	s.profiles[season].CityProportion = city
	s.profiles[season].HighwayProportion = highway
}

// Reset restores the default rates of both seasons and persists them.
func (s *Set) Reset() error {
	for _, season := range model.Seasons {
		def := model.DefaultProfile(season)
		s.profiles[season].CityRate = def.CityRate
		s.profiles[season].HighwayRate = def.HighwayRate
	}
	return s.save()
}

// Persistent reports whether commits reach a backing store.
func (s *Set) Persistent() bool {
	return s.store != nil
}

func (s *Set) save() error {
	if s.store == nil {
		return nil
	}
	values := make(map[string]string, len(Keys))
	for _, season := range model.Seasons {
		cityKey, highwayKey := rateKeys(season)
		values[cityKey] = formatRate(s.profiles[season].CityRate)
		values[highwayKey] = formatRate(s.profiles[season].HighwayRate)
	}
	if err := s.store.SetMany(values); err != nil {
		return fmt.Errorf("saving rates: %w", err)
	}
	return nil
}

func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
