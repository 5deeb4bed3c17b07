package fuel

import (
	"errors"
	"strings"
)

// Input errors. Callers match them with errors.Is.
var (
	ErrEmptyInput        = errors.New("empty input")
	ErrUnparsableNumber  = errors.New("not a number")
	ErrNegativeDistance  = errors.New("distance cannot be negative")
	ErrInvalidProportion = errors.New("city and highway proportions must add up to 100%")
	ErrInvalidRate       = errors.New("consumption rate must be a non-negative number")
)

// Field identifies an input field so a front-end can mark it.
type Field int

// Input fields.
const (
	FieldDistance Field = iota
	FieldCityPct
	FieldHighwayPct
	FieldCityRate
	FieldHighwayRate
)

func (f Field) String() string {
	switch f {
	case FieldDistance:
		return "distance"
	case FieldCityPct:
		return "city %"
	case FieldHighwayPct:
		return "highway %"
	case FieldCityRate:
		return "city rate"
	case FieldHighwayRate:
		return "highway rate"
	default:
		return "unknown field"
	}
}

// FieldError ties one failure to the field that caused it.
type FieldError struct {
	Field Field
	Err   error
}

func (e FieldError) Error() string {
	return e.Field.String() + ": " + e.Err.Error()
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// ValidationError collects every failing field of a settings submission.
type ValidationError struct {
	Problems []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		msgs = append(msgs, p.Error())
	}
	return "invalid settings: " + strings.Join(msgs, "; ")
}

// Unwrap exposes each cause to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Problems))
	for _, p := range e.Problems {
		errs = append(errs, p)
	}
	return errs
}

// Has reports whether f is among the failing fields.
func (e *ValidationError) Has(f Field) bool {
	for _, p := range e.Problems {
		if p.Field == f {
			return true
		}
	}
	return false
}

func (e *ValidationError) add(f Field, err error) {
	e.Problems = append(e.Problems, FieldError{Field: f, Err: err})
}
