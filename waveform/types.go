// Package waveform declares the waveform record, its construction errors
// and the eye-diagram fold.
package waveform

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for waveform construction and transforms.
var (
	// ErrLengthMismatch indicates time and voltage arrays of different length.
	ErrLengthMismatch = errors.New("waveform: time and voltage arrays must be same size")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("waveform: invalid option supplied")

	// ErrTooShort indicates too few samples or states for the operation.
	ErrTooShort = errors.New("waveform: too few samples")

	// ErrNotUniform indicates a time axis whose sample spacing is not constant.
	ErrNotUniform = errors.New("waveform: time axis must be uniformly spaced")
)

// Waveform is a sampled signal: a time axis in seconds with voltage and
// current traces of the same length. Current is all zeros until the
// waveform has been driven through a device. Tb and Tr record the nominal
// bit width and rise time; the eye fold and the plot layer read them, the
// transform math does not.
type Waveform struct {
	Time    []float64
	Voltage []float64
	Current []float64
	Tb      float64 // seconds per bit
	Tr      float64 // 20-80% rise/fall time, seconds
}

// New builds a waveform from a time axis and a matching voltage trace.
// Inputs are copied; the current trace starts at zero.
//
// Errors: ErrLengthMismatch.
func New(time, voltage []float64, tb, tr float64) (*Waveform, error) {
	if len(time) != len(voltage) {
		return nil, fmt.Errorf("%w: time=%d voltage=%d", ErrLengthMismatch, len(time), len(voltage))
	}
	return &Waveform{
		Time:    append([]float64(nil), time...),
		Voltage: append([]float64(nil), voltage...),
		Current: make([]float64, len(time)),
		Tb:      tb,
		Tr:      tr,
	}, nil
}

// EyeTime folds the time axis into one bit interval for eye-diagram
// scatter plots: (t - 2*Tr) mod Tb, shifted so the result is always
// non-negative and the edge mid-swing sits at the start of the window.
func (w *Waveform) EyeTime() []float64 {
	folded := make([]float64, len(w.Time))
	for i, t := range w.Time {
		m := math.Mod(t-2*w.Tr, w.Tb)
		if m < 0 {
			m += w.Tb
		}
		folded[i] = m
	}
	return folded
}
