package freq_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/go2port/freq"
)

// TestLogSpace_TwoPerDecade reproduces the canonical 10 Hz … 1 kHz sweep:
// two decades at two steps per decade give four log-spaced samples with
// both endpoints included.
func TestLogSpace_TwoPerDecade(t *testing.T) {
	f, err := freq.LogSpace(10, 1000, 2)
	require.NoError(t, err)
	require.Equal(t, 4, f.Len())

	want := []float64{10, 46.41588833612779, 215.44346900318834, 1000}
	for i, hz := range f.Hz() {
		require.InDelta(t, want[i], hz, 1e-9)
		require.InDelta(t, 2*math.Pi*want[i], f.Rad()[i], 1e-6)
	}
}

// TestLogSpace_SinglePoint keeps the one-sample case: a single decade at one
// step per decade collapses to the start frequency alone.
func TestLogSpace_SinglePoint(t *testing.T) {
	f, err := freq.LogSpace(10e3, 100e3, 1)
	require.NoError(t, err)
	require.Equal(t, 1, f.Len())
	require.Equal(t, 10e3, f.Hz()[0])
}

// TestLogSpace_CountTruncates drops the fractional tail of the span: 2.5
// decades at 2 steps per decade hold exactly 5 samples.
func TestLogSpace_CountTruncates(t *testing.T) {
	f, err := freq.LogSpace(10, 10*math.Pow(10, 2.5), 2)
	require.NoError(t, err)
	require.Equal(t, 5, f.Len())
}

// TestLogSpace_Errors walks the sweep validation sentinels.
func TestLogSpace_Errors(t *testing.T) {
	cases := []struct {
		name        string
		start, stop float64
		steps       int
		err         error
	}{
		{"ZeroStart", 0, 100, 2, freq.ErrSweepBounds},
		{"NegativeStart", -1, 100, 2, freq.ErrSweepBounds},
		{"StopBelowStart", 100, 10, 2, freq.ErrSweepBounds},
		{"StopEqualsStart", 100, 100, 2, freq.ErrSweepBounds},
		{"ZeroSteps", 10, 1000, 0, freq.ErrSweepSteps},
		{"TooNarrow", 10, 20, 1, freq.ErrSweepEmpty},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := freq.LogSpace(tc.start, tc.stop, tc.steps)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestFromSlice_CopiesInput proves the vector is immune to later mutation of
// the caller's slice.
func TestFromSlice_CopiesInput(t *testing.T) {
	src := []float64{1, 10, 100}
	f, err := freq.FromSlice(src)
	require.NoError(t, err)

	src[0] = 999
	require.Equal(t, 1.0, f.Hz()[0])
	require.Equal(t, 3, f.Len())
}

// TestFromSlice_Errors rejects empty and negative sample sets.
func TestFromSlice_Errors(t *testing.T) {
	_, err := freq.FromSlice(nil)
	require.ErrorIs(t, err, freq.ErrNoSamples)

	_, err = freq.FromSlice([]float64{10, -5})
	require.ErrorIs(t, err, freq.ErrNegativeSample)
}

// TestFFTSamples_EvenOrder checks the even-length bin layout: DC, positive
// bins, then the negative tail starting at the Nyquist bin.
func TestFFTSamples_EvenOrder(t *testing.T) {
	f, err := freq.FFTSamples(8, 0.125)
	require.NoError(t, err)

	want := []float64{0, 1, 2, 3, -4, -3, -2, -1}
	require.Equal(t, 8, f.Len())
	for i, hz := range f.Hz() {
		require.InDelta(t, want[i], hz, 1e-12)
	}
}

// TestFFTSamples_OddOrder checks the odd-length layout, which has no Nyquist
// bin: positive bins up to (n-1)/2, then the mirrored negatives.
func TestFFTSamples_OddOrder(t *testing.T) {
	f, err := freq.FFTSamples(5, 0.2)
	require.NoError(t, err)

	want := []float64{0, 1, 2, -2, -1}
	for i, hz := range f.Hz() {
		require.InDelta(t, want[i], hz, 1e-12)
	}
}

// TestFFTSamples_Errors rejects empty grids and non-positive steps.
func TestFFTSamples_Errors(t *testing.T) {
	_, err := freq.FFTSamples(0, 0.1)
	require.ErrorIs(t, err, freq.ErrNoSamples)

	_, err = freq.FFTSamples(8, 0)
	require.ErrorIs(t, err, freq.ErrSampleStep)
}
