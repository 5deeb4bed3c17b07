// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/benzenergy/benzconfig/internal/model"
)

// FormatDistance formats kilometers: whole numbers without decimals,
// everything else with two.
// e.g., 30 -> "30", 12.5 -> "12.50"
func FormatDistance(km float64) string {
	rounded := math.Round(km*100) / 100
	if rounded == math.Trunc(rounded) {
		return strconv.FormatFloat(rounded, 'f', 0, 64)
	}
	return fmt.Sprintf("%.2f", rounded)
}

// FormatLiters formats a fuel amount with two decimals.
func FormatLiters(l float64) string {
	return fmt.Sprintf("%.2f", l)
}

// FormatRate formats a consumption rate with one decimal.
func FormatRate(r float64) string {
	return fmt.Sprintf("%.1f", r)
}

// FormatPercent formats a 0-1 fraction as a percentage.
// e.g., 0.3 -> "30%", 0.335 -> "33.5%"
func FormatPercent(f float64) string {
	pct := math.Round(f*10000) / 100
	return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}

// ResultText renders an estimate as the multi-line block shown after a calculation.
func ResultText(est model.TripEstimate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total fuel: %s L\n", FormatLiters(est.TotalFuel))
	b.WriteString("\n")
	b.WriteString("Breakdown\n")
	fmt.Fprintf(&b, "City distance: %s km\n", FormatDistance(est.CityDistance))
	fmt.Fprintf(&b, "Highway distance: %s km\n", FormatDistance(est.HighwayDistance))
	b.WriteString("\n")
	b.WriteString("Consumption rates\n")
	fmt.Fprintf(&b, "City: %s L/100 km\n", FormatRate(est.Profile.CityRate))
	fmt.Fprintf(&b, "Highway: %s L/100 km\n", FormatRate(est.Profile.HighwayRate))
	b.WriteString("\n")
	b.WriteString("Proportions\n")
	fmt.Fprintf(&b, "City driving: %s\n", FormatPercent(est.Profile.CityProportion))
	fmt.Fprintf(&b, "Highway driving: %s", FormatPercent(est.Profile.HighwayProportion))
	return b.String()
}

// EstimateRows returns table rows for an estimate, for use with RenderTable.
func EstimateRows(est model.TripEstimate) [][]string {
	return [][]string{
		{"Distance", FormatDistance(est.Distance) + " km"},
		{"---"},
		{"City", FormatDistance(est.CityDistance) + " km"},
		{"Highway", FormatDistance(est.HighwayDistance) + " km"},
		{"---"},
		{"City fuel", FormatLiters(est.CityFuel) + " L"},
		{"Highway fuel", FormatLiters(est.HighwayFuel) + " L"},
		{"Total fuel", FormatLiters(est.TotalFuel) + " L"},
		{"---"},
		{"City rate", FormatRate(est.Profile.CityRate) + " L/100km"},
		{"Highway rate", FormatRate(est.Profile.HighwayRate) + " L/100km"},
		{"Split", FormatPercent(est.Profile.CityProportion) + " / " + FormatPercent(est.Profile.HighwayProportion)},
	}
}
