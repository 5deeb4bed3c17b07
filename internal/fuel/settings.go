package fuel

import (
	"math"
	"strconv"
	"strings"

	"github.com/benzenergy/benzconfig/internal/model"
)

// proportionTolerance is how far city% + highway% may drift from 100.
const proportionTolerance = 0.01

// SettingsInput is the raw text of the four settings fields for one season.
type SettingsInput struct {
	CityPct     string
	HighwayPct  string
	CityRate    string
	HighwayRate string
}

// ValidateSettings checks a settings submission and converts it to a profile.
// On failure the returned *ValidationError lists every offending field.
// The caller commits the profile to storage.
func ValidateSettings(in SettingsInput) (model.DrivingProfile, error) {
	verr := &ValidationError{}

	cityPct, cityErr := ParseDecimal(in.CityPct)
	highwayPct, highwayErr := ParseDecimal(in.HighwayPct)
	if cityErr != nil || highwayErr != nil ||
		!validPercent(cityPct) || !validPercent(highwayPct) ||
		math.Abs(cityPct+highwayPct-100) > proportionTolerance {
		verr.add(FieldCityPct, ErrInvalidProportion)
		verr.add(FieldHighwayPct, ErrInvalidProportion)
	}

	cityRate, err := parseRate(in.CityRate)
	if err != nil {
		verr.add(FieldCityRate, err)
	}
	highwayRate, err := parseRate(in.HighwayRate)
	if err != nil {
		verr.add(FieldHighwayRate, err)
	}

	if len(verr.Problems) > 0 {
		return model.DrivingProfile{}, verr
	}

	return model.DrivingProfile{
		CityProportion:    cityPct / 100,
		HighwayProportion: highwayPct / 100,
		CityRate:          cityRate,
		HighwayRate:       highwayRate,
	}, nil
}

// Balance applies the focus-loss rule for the proportion pair: when the field
// just left holds a percentage in [0,100], it returns the complementary value
// for the other field. ok is false when the text is not a valid percentage.
func Balance(text string) (other string, ok bool) {
	v, err := ParseDecimal(text)
	if err != nil || !validPercent(v) {
		return "", false
	}
	return FormatPercentInput(100 - v), true
}

// FormatPercentInput renders a percentage the way settings fields show it:
// whole numbers without decimals, otherwise at most two decimals.
func FormatPercentInput(pct float64) string {
	return strconv.FormatFloat(math.Round(pct*100)/100, 'f', -1, 64)
}

// FormatRateInput renders a rate for pre-filling a settings field, keeping
// every stored decimal but at least one: 10 -> "10.0", 9.25 -> "9.25".
func FormatRateInput(rate float64) string {
	s := strconv.FormatFloat(rate, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// FieldLimit is the character limit of a settings field holding text.
// Typed entries stop at MaxSettingLen, but a pre-filled or balanced value
// keeps every character so that saving it unchanged stores the same number.
func FieldLimit(text string) int {
	return max(MaxSettingLen, len(text))
}

// InputFor pre-fills the settings fields from a profile.
func InputFor(p model.DrivingProfile) SettingsInput {
	return SettingsInput{
		CityPct:     FormatPercentInput(p.CityProportion * 100),
		HighwayPct:  FormatPercentInput(p.HighwayProportion * 100),
		CityRate:    FormatRateInput(p.CityRate),
		HighwayRate: FormatRateInput(p.HighwayRate),
	}
}

func validPercent(v float64) bool {
	return v >= 0 && v <= 100
}

func parseRate(s string) (float64, error) {
	v, err := ParseDecimal(s)
	if err != nil || v < 0 {
		return 0, ErrInvalidRate
	}
	return v, nil
}
