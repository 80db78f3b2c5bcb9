package twoport

import "github.com/katalvlaran/go2port/freq"

// Device is a two-port linear black box evaluated in the frequency domain.
//
// ABCD returns one transmission matrix per sample of f, in sample order.
// Implementations never mutate the frequency vector and always return a
// freshly allocated slice of length f.Len(), so callers may modify the
// result freely.
type Device interface {
	ABCD(f *freq.Freq) []Matrix
}

// DefaultEpsilonR is a typical relative dielectric permittivity for FR-4
// laminate, the conventional choice for LosslessLine when nothing better
// is known.
const DefaultEpsilonR = 4.3

// LineParams is the physical description of a lossy transmission line.
// Length is in inches; every electrical parameter is per metre of line.
// The loss coefficients default to zero, which degenerates LossyLine into
// an ideal distributed LC line.
//
// Parameter sets for real trace geometries can be extracted with a 2-D
// field solver such as MMTL.
type LineParams struct {
	Length float64 // physical length, inches
	L      float64 // series inductance, H/m
	C      float64 // shunt capacitance, F/m
	R0     float64 // DC series resistance, Ohm/m
	G0     float64 // DC shunt conductance, S/m
	Rs     float64 // skin-effect resistance, Ohm/(m*sqrt(Hz))
	Gd     float64 // dielectric-loss conductance, S/(m*Hz)
}
