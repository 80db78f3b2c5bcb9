package oneport_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/go2port/freq"
	"github.com/katalvlaran/go2port/oneport"
	"github.com/katalvlaran/go2port/units"
)

// sweep builds the four-point 10 Hz..1 kHz log sweep shared by the tests.
func sweep(t *testing.T) *freq.Freq {
	t.Helper()
	f, err := freq.LogSpace(10, 1000, 2)
	require.NoError(t, err)
	return f
}

// TestDivide_SingularPolicy pins the substitution contract: any quotient
// with a NaN component collapses to SingularMagnitude plus zero imaginary,
// everything else divides normally.
func TestDivide_SingularPolicy(t *testing.T) {
	sing := complex(oneport.SingularMagnitude, 0)

	require.Equal(t, sing, oneport.Divide(1, 0), "finite over zero")
	require.Equal(t, sing, oneport.Divide(0, 0), "zero over zero")
	require.Equal(t, sing, oneport.Divide(complex(0, 1), 0), "imaginary over zero")
	require.Equal(t, sing, oneport.Divide(-2, 0), "negative over zero")
	require.Equal(t, sing, oneport.Divide(1, complex(math.NaN(), 0)), "NaN denominator")

	require.Equal(t, complex(2, 0), oneport.Divide(4, 2))
	require.Equal(t, complex(0, -0.5), oneport.Divide(1, complex(0, 2)))
}

// TestResistor_FlatAcrossFrequency checks that an ideal resistor answers
// the same real impedance at every sample.
func TestResistor_FlatAcrossFrequency(t *testing.T) {
	f := sweep(t)
	z := oneport.Resistor(10).Z(f)

	require.Len(t, z, f.Len())
	for i := range z {
		require.Equal(t, complex(10, 0), z[i], "sample %d", i)
	}
}

// TestCapacitor_ReferencePoints checks the 10 uF curve against hand
// computed 1/(jwC) values at the sweep ends.
func TestCapacitor_ReferencePoints(t *testing.T) {
	f := sweep(t)
	z := oneport.Capacitor(10e-6).Z(f)

	require.InDelta(t, 0, real(z[0]), 1e-15)
	require.InDelta(t, -1591.5494309189535, imag(z[0]), 1e-9)
	require.InDelta(t, -15.915494309189535, imag(z[3]), 1e-11)
}

// TestInductor_ReferencePoint checks jwL at the bottom of the sweep.
func TestInductor_ReferencePoint(t *testing.T) {
	f := sweep(t)
	z := oneport.Inductor(10e-9).Z(f)

	require.Equal(t, 0.0, real(z[0]))
	require.InDelta(t, 6.283185307179586e-7, imag(z[0]), 1e-13)
}

// TestInLine_AddsImpedances verifies the series combinator is an exact
// sample-wise sum of its children.
func TestInLine_AddsImpedances(t *testing.T) {
	f := sweep(t)
	r := oneport.Resistor(10)
	c := oneport.Capacitor(10e-6)

	got := oneport.InLine(r, c).Z(f)
	zr, zc := r.Z(f), c.Z(f)
	for i := range got {
		require.Equal(t, zr[i]+zc[i], got[i], "sample %d", i)
	}
}

// TestParallel_EqualResistors halves the impedance exactly: every value on
// the way is a power of two, so no rounding is involved.
func TestParallel_EqualResistors(t *testing.T) {
	f := sweep(t)
	z := oneport.Parallel(oneport.Resistor(4), oneport.Resistor(4)).Z(f)
	for i := range z {
		require.Equal(t, complex(2, 0), z[i], "sample %d", i)
	}
}

// TestParallel_ResonantPair_ReferencePoints checks the 10 uF || 10 nH pair
// against the published values at 10 Hz and 1 kHz.
func TestParallel_ResonantPair_ReferencePoints(t *testing.T) {
	f := sweep(t)
	z := oneport.Parallel(oneport.Capacitor(10e-6), oneport.Inductor(10e-9)).Z(f)

	require.InDelta(t, 0, real(z[0]), 1e-18)
	require.InDelta(t, 6.28318531e-7, imag(z[0]), 1e-13)
	require.InDelta(t, 6.28321011e-5, imag(z[3]), 1e-11)
}

// TestInLineN_ParallelN_Counts verifies the count semantics: n is the total
// number of instances and anything below one clamps to a single device.
func TestInLineN_ParallelN_Counts(t *testing.T) {
	f := sweep(t)

	require.Equal(t, complex(3, 0), oneport.InLineN(oneport.Resistor(1), 3).Z(f)[0])
	require.Equal(t, complex(5, 0), oneport.InLineN(oneport.Resistor(5), 0).Z(f)[0])
	require.Equal(t, complex(2, 0), oneport.ParallelN(oneport.Resistor(4), 2).Z(f)[0])
	require.Equal(t, complex(7, 0), oneport.ParallelN(oneport.Resistor(7), 1).Z(f)[0])
	require.Equal(t, complex(1, 0), oneport.ParallelN(oneport.Resistor(4), 4).Z(f)[0])
}

// TestBypassCap_MatchesManualChain checks the composite against the same
// C, ESL, ESR chain assembled by hand.
func TestBypassCap_MatchesManualChain(t *testing.T) {
	f := sweep(t)
	manual := oneport.InLine(
		oneport.InLine(oneport.Capacitor(100e-9), oneport.Inductor(0.5e-9)),
		oneport.Resistor(0.039),
	)
	require.Equal(t, manual.Z(f), oneport.BypassCap(100e-9, 0.5e-9, 0.039).Z(f))
}

// TestViaPair_ReferenceInductance pins the closed form for a 10 mil drill,
// 62 mil long, 20 mil spaced via pair: 0.873 nH, j0.0548682 Ohms at 10 MHz.
func TestViaPair_ReferenceInductance(t *testing.T) {
	f, err := freq.FromSlice([]float64{10e6})
	require.NoError(t, err)

	via := oneport.ViaPair(
		units.MustParse("10mil"),
		units.MustParse("62mil"),
		units.MustParse("20mil"),
	)
	z := via.Z(f)
	require.Equal(t, 0.0, real(z[0]))
	require.InDelta(t, 0.0548682, imag(z[0]), 1e-7)
}

// TestComposition_Immutable verifies that composing nodes never changes the
// operands and that repeated queries return identical arrays.
func TestComposition_Immutable(t *testing.T) {
	f := sweep(t)
	c := oneport.Capacitor(100e-9)
	before := c.Z(f)

	tree := oneport.Parallel(oneport.InLine(c, oneport.Resistor(3)), oneport.Inductor(2e-9))
	first := tree.Z(f)
	second := tree.Z(f)

	require.Equal(t, before, c.Z(f))
	require.Equal(t, first, second)
}

// badDevice answers a fixed-width impedance array regardless of the
// frequency vector, violating the device contract.
type badDevice int

func (badDevice) Z(*freq.Freq) []complex128 { return make([]complex128, 2) }

// TestMismatchedChildren_Panic ensures composition fails fast when children
// disagree on the sample count.
func TestMismatchedChildren_Panic(t *testing.T) {
	f := sweep(t)
	require.Panics(t, func() { oneport.InLine(badDevice(0), oneport.Resistor(1)).Z(f) })
	require.Panics(t, func() { oneport.Parallel(badDevice(0), oneport.Resistor(1)).Z(f) })
}

// TestSingularSamples_StayFinite drives a capacitor over an FFT grid whose
// first bin is DC: the substitution policy keeps every sample finite.
func TestSingularSamples_StayFinite(t *testing.T) {
	f, err := freq.FFTSamples(8, 1e-10)
	require.NoError(t, err)

	z := oneport.Capacitor(1e-9).Z(f)
	require.Equal(t, complex(oneport.SingularMagnitude, 0), z[0])
	for i, v := range z {
		require.False(t, math.IsNaN(real(v)) || math.IsNaN(imag(v)), "sample %d", i)
	}
}
