package twoport

import (
	"github.com/katalvlaran/go2port/freq"
	"github.com/katalvlaran/go2port/oneport"
)

// mustSameLen guards the cascade contract: both children answered the same
// frequency vector. A mismatch is a programming error, not user input.
func mustSameLen(a, b []Matrix) {
	if len(a) != len(b) {
		panic("twoport: matrix arrays differ in length")
	}
}

// shunt places a one-port device in parallel across the signal path.
type shunt struct{ z oneport.Device }

// Shunt lifts a one-port device into the two-port algebra, connected in
// parallel across the port pair:
//
//	o----+----o
//	    .-.
//	    | | Z
//	    '-'
//	o----+----o
func Shunt(d oneport.Device) Device { return shunt{z: d} }

func (s shunt) ABCD(f *freq.Freq) []Matrix {
	zs := s.z.Z(f)
	ms := make([]Matrix, len(zs))
	for i, z := range zs {
		ms[i] = Matrix{A: 1, C: oneport.Divide(1, z), D: 1}
	}
	return ms
}

// series places a one-port device in line with one conductor.
type series struct{ z oneport.Device }

// Series lifts a one-port device into the two-port algebra, inserted in
// line with one conductor:
//
//	     ___
//	o---|___|---o
//	      Z
//	o-----------o
func Series(d oneport.Device) Device { return series{z: d} }

func (s series) ABCD(f *freq.Freq) []Matrix {
	zs := s.z.Z(f)
	ms := make([]Matrix, len(zs))
	for i, z := range zs {
		ms[i] = Matrix{A: 1, B: z, D: 1}
	}
	return ms
}

// cascade joins two two-port devices end to end.
type cascade struct{ a, b Device }

// Cascade connects the output port of a to the input port of b. The
// composite transmission matrix is the per-sample product of the operand
// matrices with a nearest the source.
func Cascade(a, b Device) Device { return cascade{a: a, b: b} }

func (c cascade) ABCD(f *freq.Freq) []Matrix {
	ma := c.a.ABCD(f)
	mb := c.b.ABCD(f)
	mustSameLen(ma, mb)

	ms := make([]Matrix, len(ma))
	for i := range ms {
		ms[i] = ma[i].Mul(mb[i])
	}
	return ms
}

// CascadeN connects n instances of the same device end to end. Counts
// below one behave as one.
func CascadeN(d Device, n int) Device {
	node := d
	for i := 1; i < n; i++ {
		node = Cascade(node, d)
	}
	return node
}

// Zin returns the open-circuit input impedance of d over f, the A/C ratio
// of the composite transmission matrix at every sample.
func Zin(d Device, f *freq.Freq) []complex128 {
	ms := d.ABCD(f)
	z := make([]complex128, len(ms))
	for i, m := range ms {
		z[i] = oneport.Divide(m.A, m.C)
	}
	return z
}

// Zout returns the open-circuit output impedance of d over f, looking back
// into the far port: -A/C of the per-sample matrix inverse.
func Zout(d Device, f *freq.Freq) []complex128 {
	ms := d.ABCD(f)
	z := make([]complex128, len(ms))
	for i, m := range ms {
		inv := m.Inv()
		z[i] = -oneport.Divide(inv.A, inv.C)
	}
	return z
}

// Gf returns the open-circuit forward voltage gain of d over f, the
// reciprocal of the composite matrix A entry at every sample.
func Gf(d Device, f *freq.Freq) []complex128 {
	ms := d.ABCD(f)
	g := make([]complex128, len(ms))
	for i, m := range ms {
		g[i] = oneport.Divide(1, m.A)
	}
	return g
}

// Gr returns the open-circuit reverse voltage gain of d over f: -1/A of
// the per-sample matrix inverse.
func Gr(d Device, f *freq.Freq) []complex128 {
	ms := d.ABCD(f)
	g := make([]complex128, len(ms))
	for i, m := range ms {
		g[i] = -oneport.Divide(1, m.Inv().A)
	}
	return g
}
