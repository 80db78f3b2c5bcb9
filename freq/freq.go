package freq

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sentinel errors for frequency-vector construction.
var (
	// ErrSweepBounds indicates a non-positive start or a stop at or below the start.
	ErrSweepBounds = errors.New("freq: sweep bounds must satisfy 0 < start < stop")

	// ErrSweepSteps indicates fewer than one step per decade was requested.
	ErrSweepSteps = errors.New("freq: steps per decade must be at least 1")

	// ErrSweepEmpty indicates the requested span is too narrow to hold a sample.
	ErrSweepEmpty = errors.New("freq: sweep resolves to zero points")

	// ErrNoSamples indicates an empty sample set.
	ErrNoSamples = errors.New("freq: at least one sample required")

	// ErrNegativeSample indicates a negative frequency outside the FFT grid path.
	ErrNegativeSample = errors.New("freq: samples must be non-negative")

	// ErrSampleStep indicates a non-positive time step for an FFT grid.
	ErrSampleStep = errors.New("freq: time step must be positive")
)

// countGuard absorbs log10 rounding so an exact decade span keeps its
// endpoint sample instead of truncating one short.
const countGuard = 1e-9

// Freq is an immutable frequency vector: sample frequencies in Hz plus the
// derived angular frequencies in rad/s. Both slices always share one length.
type Freq struct {
	hz  []float64
	rad []float64
}

// newFreq derives the angular twin of hz and wraps both. hz ownership moves
// to the returned vector.
func newFreq(hz []float64) *Freq {
	rad := floats.ScaleTo(make([]float64, len(hz)), 2*math.Pi, hz)
	return &Freq{hz: hz, rad: rad}
}

// LogSpace builds a logarithmic sweep from startHz to stopHz with
// stepsPerDecade samples per decade. The sample count is the decade span
// times stepsPerDecade, rounded down; when two or more samples fit, both
// endpoints are included.
//
//	f, _ := freq.LogSpace(10, 1000, 2) // 10, 46.42, 215.4, 1000 Hz
//
// Errors: ErrSweepBounds, ErrSweepSteps, ErrSweepEmpty.
func LogSpace(startHz, stopHz float64, stepsPerDecade int) (*Freq, error) {
	if startHz <= 0 || stopHz <= startHz {
		return nil, fmt.Errorf("%w: start=%g stop=%g", ErrSweepBounds, startHz, stopHz)
	}
	if stepsPerDecade < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrSweepSteps, stepsPerDecade)
	}

	span := math.Log10(stopHz) - math.Log10(startHz)
	n := int(math.Floor(span*float64(stepsPerDecade) + countGuard))
	if n < 1 {
		return nil, fmt.Errorf("%w: %g decades at %d steps/decade", ErrSweepEmpty, span, stepsPerDecade)
	}

	hz := make([]float64, n)
	if n == 1 {
		hz[0] = startHz
	} else {
		floats.LogSpan(hz, startHz, stopHz)
	}

	return newFreq(hz), nil
}

// FromSlice wraps an arbitrary set of sample frequencies. The input is
// copied; samples must be non-negative but need not be ordered or uniform.
//
// Errors: ErrNoSamples, ErrNegativeSample.
func FromSlice(hz []float64) (*Freq, error) {
	if len(hz) == 0 {
		return nil, ErrNoSamples
	}
	for i, v := range hz {
		if v < 0 {
			return nil, fmt.Errorf("%w: hz[%d]=%g", ErrNegativeSample, i, v)
		}
	}

	return newFreq(append([]float64(nil), hz...)), nil
}

// FFTSamples builds the n-point discrete-transform frequency grid for a
// uniform time step, in FFT bin order: non-negative bins first, then the
// negative-frequency tail. Negative samples are legitimate on this grid;
// it is the axis the waveform engine threads through device models.
//
// Errors: ErrNoSamples, ErrSampleStep.
func FFTSamples(n int, step float64) (*Freq, error) {
	if n < 1 {
		return nil, ErrNoSamples
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrSampleStep, step)
	}

	d := 1 / (float64(n) * step)
	half := (n + 1) / 2
	hz := make([]float64, n)
	for k := 0; k < half; k++ {
		hz[k] = float64(k) * d
	}
	for k := half; k < n; k++ {
		hz[k] = float64(k-n) * d
	}

	return newFreq(hz), nil
}

// Hz returns the sample frequencies in Hz. Do not modify.
func (f *Freq) Hz() []float64 { return f.hz }

// Rad returns the angular frequencies in rad/s. Do not modify.
func (f *Freq) Rad() []float64 { return f.rad }

// Len returns the number of samples.
func (f *Freq) Len() int { return len(f.hz) }
