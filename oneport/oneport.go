package oneport

import (
	"math"

	"github.com/katalvlaran/go2port/freq"
)

// SingularMagnitude is the finite stand-in for a singular division result.
// An ideal capacitor at DC or a zero branch inside Parallel would otherwise
// inject Inf/NaN into every downstream array; substituting a very large
// finite impedance keeps parallel composition and the two-port derived
// quantities well-defined. The constant participates in reference outputs,
// so it must not change.
const SingularMagnitude = 1e18

// Divide is the policy division used throughout the algebra: x/y, except
// that a not-a-number quotient collapses to SingularMagnitude + 0i. Division
// by exact zero lands here (either component of the quotient is NaN), as do
// NaN operands. Infinities with no NaN component pass through untouched.
func Divide(x, y complex128) complex128 {
	z := x / y
	if math.IsNaN(real(z)) || math.IsNaN(imag(z)) {
		return complex(SingularMagnitude, 0)
	}
	return z
}

// mustSameLen guards the composition contract: both children answered the
// same frequency vector. A mismatch is a programming error, not user input.
func mustSameLen(a, b []complex128) {
	if len(a) != len(b) {
		panic("oneport: impedance arrays differ in length")
	}
}

// resistor is a frequency-independent real impedance.
type resistor float64

// Resistor returns an ideal resistor of the given resistance in Ohms.
func Resistor(ohms float64) Device { return resistor(ohms) }

func (r resistor) Z(f *freq.Freq) []complex128 {
	z := make([]complex128, f.Len())
	for i := range z {
		z[i] = complex(float64(r), 0)
	}
	return z
}

// inductor has impedance jωL.
type inductor float64

// Inductor returns an ideal inductor of the given inductance in Henries.
func Inductor(henries float64) Device { return inductor(henries) }

func (l inductor) Z(f *freq.Freq) []complex128 {
	rad := f.Rad()
	z := make([]complex128, len(rad))
	for i, w := range rad {
		z[i] = complex(0, w*float64(l))
	}
	return z
}

// capacitor has impedance 1/(jωC); the DC sample hits the singular policy.
type capacitor float64

// Capacitor returns an ideal capacitor of the given capacitance in Farads.
func Capacitor(farads float64) Device { return capacitor(farads) }

func (c capacitor) Z(f *freq.Freq) []complex128 {
	rad := f.Rad()
	z := make([]complex128, len(rad))
	for i, w := range rad {
		z[i] = Divide(1, complex(0, w*float64(c)))
	}
	return z
}

// inline adds child impedances sample-wise.
type inline struct {
	a, b Device
}

// InLine composes two devices in series: impedances add.
func InLine(a, b Device) Device { return inline{a: a, b: b} }

func (n inline) Z(f *freq.Freq) []complex128 {
	za, zb := n.a.Z(f), n.b.Z(f)
	mustSameLen(za, zb)
	z := make([]complex128, len(za))
	for i := range z {
		z[i] = za[i] + zb[i]
	}
	return z
}

// parallel combines child admittances sample-wise under the singular policy.
type parallel struct {
	a, b Device
}

// Parallel composes two devices in parallel: admittances add, and any
// singular pointwise division follows the Divide policy.
func Parallel(a, b Device) Device { return parallel{a: a, b: b} }

func (n parallel) Z(f *freq.Freq) []complex128 {
	za, zb := n.a.Z(f), n.b.Z(f)
	mustSameLen(za, zb)
	z := make([]complex128, len(za))
	for i := range z {
		z[i] = Divide(1, Divide(1, za[i])+Divide(1, zb[i]))
	}
	return z
}

// InLineN composes n instances of the same device in series. Counts below
// one behave as one; the device is referenced, never copied, which is
// equivalent because nodes are immutable.
func InLineN(d Device, n int) Device {
	node := d
	for i := 1; i < n; i++ {
		node = InLine(node, d)
	}
	return node
}

// ParallelN composes n instances of the same device in parallel. Counts
// below one behave as one.
func ParallelN(d Device, n int) Device {
	node := d
	for i := 1; i < n; i++ {
		node = Parallel(node, d)
	}
	return node
}

// BypassCap models a real bypass capacitor as C, its equivalent series
// inductance and its equivalent series resistance in line.
//
//	     C    ESL     ESR
//	    ||    ___     ___
//	o---||---UUUUU---|___|---o
//	    ||
func BypassCap(c, esl, esr float64) Device {
	return InLine(InLine(Capacitor(c), Inductor(esl)), Resistor(esr))
}

// ViaPair estimates the loop inductance of a signal/return via pair from
// drill diameter, barrel length and via-to-via spacing (inches), after
// Howard Johnson's closed form L = 5.08·2·h·ln(2s/d) nH.
func ViaPair(drill, length, spacing float64) Device {
	henries := 5.08 * 2 * length * math.Log(2*spacing/drill) * 1e-9
	return Inductor(henries)
}
