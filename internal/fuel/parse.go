// Package fuel implements the trip fuel calculator and the settings validator.
package fuel

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Input length limits carried over to every front-end.
const (
	MaxDistanceLen = 10
	MaxSettingLen  = 4
)

// NormalizeDecimal rewrites a comma decimal separator as a dot.
func NormalizeDecimal(s string) string {
	return strings.ReplaceAll(s, ",", ".")
}

// ParseDecimal parses user-entered text as a finite decimal number.
// "11,5" and "11.5" parse to the same value.
func ParseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyInput
	}

	v, err := strconv.ParseFloat(NormalizeDecimal(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrUnparsableNumber, s)
	}
	return v, nil
}
