package waveform

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/katalvlaran/go2port/freq"
)

// VoltageSpectrum returns the one-sided spectrum of the voltage trace:
// frequencies in Hz paired with complex coefficients scaled by 1/n. The DC
// bin and the top bin are dropped, so bin k sits at frequency k/(n*ts) for
// k = 1..n/2-1.
//
// Errors: ErrTooShort (fewer than four samples), ErrNotUniform.
func (w *Waveform) VoltageSpectrum() (*freq.Freq, []complex128, error) {
	return spectrum(w.Time, w.Voltage)
}

// CurrentSpectrum returns the one-sided spectrum of the current trace,
// with the same bin layout as VoltageSpectrum. The trace is all zeros
// until the waveform has been driven.
func (w *Waveform) CurrentSpectrum() (*freq.Freq, []complex128, error) {
	return spectrum(w.Time, w.Current)
}

// spectrum computes the scaled interior one-sided coefficients of a real
// trace.
func spectrum(time, data []float64) (*freq.Freq, []complex128, error) {
	n := len(time)
	if n < 4 {
		return nil, nil, fmt.Errorf("%w: need at least four samples, got %d", ErrTooShort, n)
	}
	ts, err := sampleStep(time)
	if err != nil {
		return nil, nil, err
	}

	fft := fourier.NewFFT(n)
	coeff := fft.Coefficients(nil, data)

	kept := coeff[1 : len(coeff)-1]
	out := make([]complex128, len(kept))
	hz := make([]float64, len(kept))
	d := 1 / (float64(n) * ts)
	for i, c := range kept {
		out[i] = c / complex(float64(n), 0)
		hz[i] = float64(i+1) * d
	}

	f, err := freq.FromSlice(hz)
	if err != nil {
		return nil, nil, err
	}
	return f, out, nil
}
