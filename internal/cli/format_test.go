package cli

import (
	"strings"
	"testing"

	"github.com/benzenergy/benzconfig/internal/model"
)

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{30, "30"},
		{100 * 0.3, "30"}, // 30.000000000000004
		{70, "70"},
		{12.5, "12.50"},
		{37.123, "37.12"},
		{0.999, "1"},
		{1234.5678, "1234.57"},
	}
	for _, tt := range tests {
		if got := FormatDistance(tt.in); got != tt.want {
			t.Errorf("FormatDistance(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatFuelAndRate(t *testing.T) {
	if got := FormatLiters(9.4); got != "9.40" {
		t.Errorf("FormatLiters(9.4) = %q", got)
	}
	if got := FormatLiters(3.4500000000000006); got != "3.45" {
		t.Errorf("FormatLiters(3.45...) = %q", got)
	}
	if got := FormatRate(11.5); got != "11.5" {
		t.Errorf("FormatRate(11.5) = %q", got)
	}
	if got := FormatRate(10); got != "10.0" {
		t.Errorf("FormatRate(10) = %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.3, "30%"},
		{0.7, "70%"},
		{0.29, "29%"},
		{0.335, "33.5%"},
		{1, "100%"},
		{0, "0%"},
	}
	for _, tt := range tests {
		if got := FormatPercent(tt.in); got != tt.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResultText(t *testing.T) {
	est := model.TripEstimate{
		Distance:        100,
		CityDistance:    100 * 0.3,
		HighwayDistance: 70,
		CityFuel:        3.45,
		HighwayFuel:     5.95,
		TotalFuel:       9.4,
		Profile:         model.DefaultProfile(model.Summer),
	}

	text := ResultText(est)
	for _, want := range []string{
		"Total fuel: 9.40 L",
		"City distance: 30 km",
		"Highway distance: 70 km",
		"City: 11.5 L/100 km",
		"Highway: 8.5 L/100 km",
		"City driving: 30%",
		"Highway driving: 70%",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("ResultText missing %q:\n%s", want, text)
		}
	}
	if strings.HasSuffix(text, "\n") {
		t.Error("ResultText should not end with a newline")
	}
}
