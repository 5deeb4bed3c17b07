// Package model defines the data types shared by the calculator, the profile store and the front-ends.
package model

import (
	"fmt"
	"strings"
)

// Season selects which set of proportions and rates applies to a trip.
type Season int

// Seasons known to the calculator.
const (
	Summer Season = iota
	Winter
)

// Seasons lists every season in display order.
var Seasons = []Season{Summer, Winter}

// String returns the lowercase season name used in flags and config.
func (s Season) String() string {
	switch s {
	case Summer:
		return "summer"
	case Winter:
		return "winter"
	default:
		return fmt.Sprintf("season(%d)", int(s))
	}
}

// Title returns the capitalized season name for headings.
func (s Season) Title() string {
	switch s {
	case Summer:
		return "Summer"
	case Winter:
		return "Winter"
	default:
		return s.String()
	}
}

// ParseSeason maps "summer"/"winter" (case-insensitive) to a Season.
func ParseSeason(name string) (Season, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "summer", "s":
		return Summer, nil
	case "winter", "w":
		return Winter, nil
	}
	return 0, fmt.Errorf("unknown season %q (want summer or winter)", name)
}

// DrivingProfile holds the city/highway split and consumption rates for one season.
// Proportions are fractions in [0,1] summing to 1; rates are liters per 100 km.
type DrivingProfile struct {
	CityProportion    float64
	HighwayProportion float64
	CityRate          float64
	HighwayRate       float64
}

// TripEstimate is the itemized fuel estimate for one trip.
type TripEstimate struct {
	Distance        float64
	CityDistance    float64
	HighwayDistance float64
	CityFuel        float64
	HighwayFuel     float64
	TotalFuel       float64
	Profile         DrivingProfile
}

// Default proportions, restored on every start.
const (
	DefaultCityProportion    = 0.3
	DefaultHighwayProportion = 0.7
)

// DefaultProfile returns the built-in profile for a season.
func DefaultProfile(s Season) DrivingProfile {
	p := DrivingProfile{
		CityProportion:    DefaultCityProportion,
		HighwayProportion: DefaultHighwayProportion,
	}
	switch s {
	case Winter:
		p.CityRate, p.HighwayRate = 13.8, 10.2
	default:
		p.CityRate, p.HighwayRate = 11.5, 8.5
	}
	return p
}
