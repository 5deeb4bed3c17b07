package fuel

import (
	"fmt"
	"math"

	"github.com/benzenergy/benzconfig/internal/model"
)

// Estimate splits distance (km) between city and highway driving according to
// the profile and computes the fuel (liters) each part burns.
func Estimate(distance float64, p model.DrivingProfile) (model.TripEstimate, error) {
	if math.IsNaN(distance) || math.IsInf(distance, 0) {
		return model.TripEstimate{}, ErrUnparsableNumber
	}
	if distance < 0 {
		return model.TripEstimate{}, ErrNegativeDistance
	}

	cityKm := distance * p.CityProportion
	highwayKm := distance * p.HighwayProportion
	cityFuel := cityKm / 100 * p.CityRate
	highwayFuel := highwayKm / 100 * p.HighwayRate

	return model.TripEstimate{
		Distance:        distance,
		CityDistance:    cityKm,
		HighwayDistance: highwayKm,
		CityFuel:        cityFuel,
		HighwayFuel:     highwayFuel,
		TotalFuel:       cityFuel + highwayFuel,
		Profile:         p,
	}, nil
}

// EstimateText parses a distance typed by the user and estimates the trip.
func EstimateText(text string, p model.DrivingProfile) (model.TripEstimate, error) {
	distance, err := ParseDecimal(text)
	if err != nil {
		return model.TripEstimate{}, fmt.Errorf("distance: %w", err)
	}
	est, err := Estimate(distance, p)
	if err != nil {
		return model.TripEstimate{}, fmt.Errorf("distance: %w", err)
	}
	return est, nil
}
