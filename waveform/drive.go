// SPDX-License-Identifier: MIT
// Package: waveform
//
// Purpose:
//   - Inject a time-domain waveform into a two-port network and recover
//     the output voltage and the input current, both as time traces.
//
// Design:
//   - The trace is padded on both ends by one full signal length,
//     replicating the edge samples, before the forward transform. The
//     discrete transform is implicitly periodic; without the padding the
//     tail of the network response wraps around into the head of the
//     trace.
//   - Per spectral bin the input current is Vi/Zin and the output voltage
//     Vi*Gf, using the singular-division policy of the device algebra, so
//     a singular bin never poisons the inverse transform.
//   - The input waveform is never mutated; the result is a new waveform
//     carrying both recovered traces with the bit metadata copied over.
//
// Determinism & Performance:
//   - One forward and two inverse transforms of length 3n dominate,
//     O(n log n); device evaluation adds two ABCD sweeps over the 3n-bin
//     grid. No randomness anywhere.
//
// AI-Hints:
//   - The bin grid is freq.FFTSamples(3n, ts): DC first, positive bins
//     ascending, then the negative tail. Device models accept negative
//     frequencies on exactly this grid.
//   - gonum's fourier transforms are unnormalized; the inverse here is
//     scaled by 1/(3n) to recover volts.

package waveform

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/go2port/freq"
	"github.com/katalvlaran/go2port/oneport"
	"github.com/katalvlaran/go2port/twoport"
)

// Drive injects w into dev and returns the response: a new waveform whose
// voltage is the trace at the output port and whose current is the drive
// current at the input port. Tb and Tr carry over; w is left untouched.
//
// Errors: ErrTooShort (fewer than two samples), ErrNotUniform.
func Drive(w *Waveform, dev twoport.Device) (*Waveform, error) {
	n := len(w.Time)
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least two samples, got %d", ErrTooShort, n)
	}
	ts, err := sampleStep(w.Time)
	if err != nil {
		return nil, err
	}

	// One signal length of the first sample, the trace, one signal length
	// of the last sample.
	padded := make([]complex128, 3*n)
	for i := 0; i < n; i++ {
		padded[i] = complex(w.Voltage[0], 0)
		padded[n+i] = complex(w.Voltage[i], 0)
		padded[2*n+i] = complex(w.Voltage[n-1], 0)
	}

	f, err := freq.FFTSamples(3*n, ts)
	if err != nil {
		return nil, err
	}

	fft := fourier.NewCmplxFFT(3 * n)
	vi := fft.Coefficients(nil, padded)

	zin := twoport.Zin(dev, f)
	gf := twoport.Gf(dev, f)
	ii := make([]complex128, len(vi))
	vo := make([]complex128, len(vi))
	for k := range vi {
		ii[k] = oneport.Divide(vi[k], zin[k])
		vo[k] = vi[k] * gf[k]
	}

	iTrace := fft.Sequence(nil, ii)
	vTrace := fft.Sequence(nil, vo)

	out := &Waveform{
		Time:    append([]float64(nil), w.Time...),
		Voltage: make([]float64, n),
		Current: make([]float64, n),
		Tb:      w.Tb,
		Tr:      w.Tr,
	}
	cmplxs.Real(out.Voltage, vTrace[n:2*n])
	cmplxs.Real(out.Current, iTrace[n:2*n])
	scale := 1 / float64(3*n)
	floats.Scale(scale, out.Voltage)
	floats.Scale(scale, out.Current)
	return out, nil
}

// sampleStep returns the spacing of a uniform time axis. The tolerance
// absorbs the rounding drift of axes built as i*ts.
func sampleStep(time []float64) (float64, error) {
	ts := time[1] - time[0]
	if ts <= 0 {
		return 0, fmt.Errorf("%w: non-increasing first step %g", ErrNotUniform, ts)
	}
	for i := 2; i < len(time); i++ {
		if d := time[i] - time[i-1]; math.Abs(d-ts) > 1e-6*ts {
			return 0, fmt.Errorf("%w: step %g at sample %d, expected %g", ErrNotUniform, d, i, ts)
		}
	}
	return ts, nil
}
