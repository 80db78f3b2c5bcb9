package waveform

import "fmt"

// Option configures waveform generation via functional arguments. An
// invalid value (a non-positive bit time, negative jitter) is recorded
// internally and surfaced as ErrOptionViolation when the generator runs.
type Option func(*Options)

// Options holds the shared parameters of the Gauss/Clock/PRBS generators.
type Options struct {
	// V1 and V2 are the voltage levels of the "0" and "1" states, in volts.
	V1, V2 float64

	// Tb is the width of a single bit in seconds.
	Tb float64

	// Tr is the 20-80% rise/fall time in seconds.
	Tr float64

	// Tj is the edge-jitter standard deviation in seconds. Zero disables
	// jitter.
	Tj float64

	// Resolution is the number of time points per bit.
	Resolution int

	// Seed selects the random stream for jitter and PRBS bits. Zero picks
	// the built-in default seed.
	Seed int64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the generator defaults:
//   - levels 0 V / 1 V
//   - 10 ns bits with 1 ns edges and 10 ps jitter
//   - 1000 points per bit
//   - the fixed default random seed.
func DefaultOptions() Options {
	return Options{
		V1:         0,
		V2:         1,
		Tb:         10e-9,
		Tr:         1e-9,
		Tj:         10e-12,
		Resolution: 1000,
		Seed:       0,
		err:        nil,
	}
}

// WithLevels sets the voltage levels of the "0" and "1" states. Inverted
// levels (v1 > v2) flip the waveform.
func WithLevels(v1, v2 float64) Option {
	return func(o *Options) {
		o.V1 = v1
		o.V2 = v2
	}
}

// WithBitTime sets the single-bit width in seconds.
//
//	tb > 0:  bit width
//	tb <= 0: invalid option → ErrOptionViolation
func WithBitTime(tb float64) Option {
	return func(o *Options) {
		if tb <= 0 {
			o.err = fmt.Errorf("%w: Tb must be positive (%g)", ErrOptionViolation, tb)
			return
		}
		o.Tb = tb
	}
}

// WithRiseTime sets the 20-80% rise/fall time in seconds.
//
//	tr > 0:  rise time
//	tr <= 0: invalid option → ErrOptionViolation
func WithRiseTime(tr float64) Option {
	return func(o *Options) {
		if tr <= 0 {
			o.err = fmt.Errorf("%w: Tr must be positive (%g)", ErrOptionViolation, tr)
			return
		}
		o.Tr = tr
	}
}

// WithJitter sets the edge-jitter standard deviation in seconds.
//
//	tj >= 0: jitter sigma (zero disables jitter)
//	tj < 0:  invalid option → ErrOptionViolation
func WithJitter(tj float64) Option {
	return func(o *Options) {
		if tj < 0 {
			o.err = fmt.Errorf("%w: Tj cannot be negative (%g)", ErrOptionViolation, tj)
			return
		}
		o.Tj = tj
	}
}

// WithResolution sets the number of time points per bit.
//
//	n >= 1: samples per bit
//	n < 1:  invalid option → ErrOptionViolation
func WithResolution(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Resolution must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Resolution = n
	}
}

// WithSeed fixes the random stream used for jitter and PRBS bits. Zero
// selects the built-in default seed, keeping runs reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}
