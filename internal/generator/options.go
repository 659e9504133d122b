package generator

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/solodynamo/1-billion-row-challenge/internal/measurement"
)

const (
	DefaultMin = -30.0
	DefaultMax = 50.0
)

// DefaultPlaces is the place list used when the caller does not supply one.
var DefaultPlaces = []string{
	"Hamburg", "Bulawayo", "Palembang", "St. John's", "Cracow",
	"Bridgetown", "Istanbul", "Roseau", "Conakry",
}

var (
	// ErrInvalidOptions matches every validation error below.
	ErrInvalidOptions = errors.New("invalid generator options")

	ErrNegativeRowCount = fmt.Errorf("%w: row count must not be negative", ErrInvalidOptions)
	ErrNoPlaces         = fmt.Errorf("%w: place list is empty", ErrInvalidOptions)
	ErrInvalidPlace     = fmt.Errorf("%w: place names must be non-empty without ';' or line breaks", ErrInvalidOptions)
	ErrInvalidRange     = fmt.Errorf("%w: temperature bounds must be finite and below 1e17 in magnitude", ErrInvalidOptions)
	ErrInvertedRange    = fmt.Errorf("%w: temperature minimum exceeds maximum", ErrInvalidOptions)
	ErrRangeTooNarrow   = fmt.Errorf("%w: temperature range holds no one-decimal value", ErrInvalidOptions)
)

// ProgressFunc receives the number of records written so far.
type ProgressFunc func(written int64)

// Options configures a Generator. Use DefaultOptions for the stock place list
// and range; a zero Options is invalid because its place list is empty.
type Options struct {
	Places []string
	// Min and Max bound the temperature inclusively.
	Min, Max float64
	// Seed makes the output reproducible. Nil draws a random seed.
	Seed *uint64
	// Progress, if set, is called every ProgressInterval records and once
	// after the last one.
	Progress ProgressFunc
}

// DefaultOptions returns the stock place list and the [-30.0, 50.0] range.
func DefaultOptions() Options {
	return Options{
		Places: slices.Clone(DefaultPlaces),
		Min:    DefaultMin,
		Max:    DefaultMax,
	}
}

// WithSeed returns a copy of o seeded with seed.
func (o Options) WithSeed(seed uint64) Options {
	o.Seed = &seed
	return o
}

// Validate reports the first problem with o, if any.
func (o Options) Validate() error {
	_, _, err := o.bounds()
	return err
}

// bounds validates o and returns the inclusive range in tenths.
func (o Options) bounds() (lo, hi measurement.Tenths, err error) {
	if len(o.Places) == 0 {
		return 0, 0, ErrNoPlaces
	}
	for _, p := range o.Places {
		if p == "" || strings.ContainsAny(p, ";\r\n") {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidPlace, p)
		}
	}
	if !measurement.InLimit(o.Min) || !measurement.InLimit(o.Max) {
		return 0, 0, fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, o.Min, o.Max)
	}
	if o.Min > o.Max {
		return 0, 0, fmt.Errorf("%w: [%g, %g]", ErrInvertedRange, o.Min, o.Max)
	}
	lo, hi = measurement.CeilTenths(o.Min), measurement.FloorTenths(o.Max)
	if lo > hi {
		return 0, 0, fmt.Errorf("%w: [%g, %g]", ErrRangeTooNarrow, o.Min, o.Max)
	}
	return lo, hi, nil
}
