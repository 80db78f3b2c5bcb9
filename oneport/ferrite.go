package oneport

import (
	"fmt"

	"gonum.org/v1/gonum/interp"

	"github.com/katalvlaran/go2port/freq"
)

// Ferrite is a tabulated bead model: measured resistance and reactance
// curves joined by piecewise-linear interpolation. Ferrites resist closed
// forms, so the model takes the impedance-curve points straight from the
// part's data sheet; supply extra points wherever the curve bends.
//
// Queries outside the tabulated range clamp to the nearest breakpoint
// value.
type Ferrite struct {
	res   interp.PiecewiseLinear
	react interp.PiecewiseLinear
}

// NewFerrite builds a bead model from parallel arrays: breakpoint
// frequencies in Hz (strictly increasing, at least two), resistance in Ohms
// and reactance in Ohms at each breakpoint. Inputs are copied.
//
// Errors: ErrFerriteLength, ErrFerriteBreakpoints.
func NewFerrite(hz, res, react []float64) (*Ferrite, error) {
	if len(hz) != len(res) || len(hz) != len(react) {
		return nil, fmt.Errorf("%w: hz=%d res=%d react=%d", ErrFerriteLength, len(hz), len(res), len(react))
	}
	if len(hz) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrFerriteBreakpoints, len(hz))
	}
	for i := 1; i < len(hz); i++ {
		if hz[i] <= hz[i-1] {
			return nil, fmt.Errorf("%w: hz[%d]=%g after %g", ErrFerriteBreakpoints, i, hz[i], hz[i-1])
		}
	}

	xs := append([]float64(nil), hz...)
	f := &Ferrite{}
	if err := f.res.Fit(xs, append([]float64(nil), res...)); err != nil {
		return nil, err
	}
	if err := f.react.Fit(xs, append([]float64(nil), react...)); err != nil {
		return nil, err
	}

	return f, nil
}

// Z interpolates R(f) + jX(f) at each sample.
func (b *Ferrite) Z(f *freq.Freq) []complex128 {
	hz := f.Hz()
	z := make([]complex128, len(hz))
	for i, v := range hz {
		z[i] = complex(b.res.Predict(v), b.react.Predict(v))
	}
	return z
}
