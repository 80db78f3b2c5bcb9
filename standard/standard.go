package standard

import (
	"errors"
	"fmt"
	"math"
)

// Series selects an E-series value table; the constant is the number of
// values per decade.
type Series int

// Supported E-series and their usual tolerance bands.
const (
	// E12 is the 10% tolerance series.
	E12 Series = 12
	// E24 is the 5% tolerance series.
	E24 Series = 24
	// E48 is the 2% tolerance series.
	E48 Series = 48
	// E96 is the 1% tolerance series.
	E96 Series = 96
)

// Sentinel errors for standard-value rounding.
var (
	// ErrSeries indicates a series outside the supported E12/E24/E48/E96 set.
	ErrSeries = errors.New("standard: series must be E12, E24, E48 or E96")

	// ErrNonPositive indicates a zero or negative component value.
	ErrNonPositive = errors.New("standard: value must be positive")
)

// Resistor returns the standard resistance closest to value on the log grid
// of series s.
//
//	standard.Resistor(89.8, standard.E96) // 90.9
//
// Errors: ErrSeries, ErrNonPositive.
func Resistor(value float64, s Series) (float64, error) {
	var decimals int
	switch s {
	case E96, E48:
		decimals = 1
	case E24, E12:
		decimals = 0
	default:
		return 0, fmt.Errorf("%w: got %d", ErrSeries, int(s))
	}
	if value <= 0 {
		return 0, fmt.Errorf("%w: got %g", ErrNonPositive, value)
	}

	// Normalize into [10, 100) so the log grid snap sees two significant figures.
	decade := math.Floor(math.Log10(value)) - 1
	norm := value / math.Pow(10, decade)

	step := math.Round(math.Log10(norm) * float64(s))
	snapped := roundTo(math.Pow(10, step/float64(s)), decimals)

	return math.Pow(10, decade) * snapped, nil
}

// Capacitor returns the standard capacitance closest to value on the log
// grid of series s. Capacitors share the resistor tables.
func Capacitor(value float64, s Series) (float64, error) {
	return Resistor(value, s)
}

// roundTo rounds x to the given number of decimals.
func roundTo(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(x*p) / p
}
