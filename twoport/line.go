package twoport

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/go2port/freq"
	"github.com/katalvlaran/go2port/oneport"
)

// Conversion and physical constants for the line models. Lengths come in
// as inches; the lossy model works internally in metres because its RLGC
// parameters are per metre.
const (
	inchesPerMetre = 39.3700787
	lightSpeed     = 1.18028527e10 // inches per second
)

// lossy is a distributed RLGC line with skin-effect and dielectric-loss
// corrections. p.Length has already been converted to metres.
type lossy struct{ p LineParams }

// LossyLine models a distributed transmission line in the style of a
// W element: series impedance jwL + R(f) and shunt admittance jwC + G(f)
// per metre, with
//
//	R(f) = R0 + Rs*(1+j)*sqrt(|f|)
//	G(f) = G0 + Gd*f/sqrt(1+f^2)
//
// capturing skin-effect and dielectric losses. The propagation coefficient
// carries sign(f), so DC transmits unchanged and the negative half of an
// FFT grid attenuates the same way the positive half does.
func LossyLine(p LineParams) Device {
	p.Length /= inchesPerMetre
	return lossy{p: p}
}

func (w lossy) ABCD(f *freq.Freq) []Matrix {
	hz := f.Hz()
	rad := f.Rad()
	ms := make([]Matrix, len(hz))
	for i := range hz {
		r := complex(w.p.R0, 0) + complex(1, 1)*complex(w.p.Rs*math.Sqrt(math.Abs(hz[i])), 0)
		g := complex(w.p.G0+w.p.Gd*hz[i]/math.Sqrt(1+hz[i]*hz[i]), 0)
		zs := complex(0, rad[i]*w.p.L) + r // series impedance per metre
		ys := complex(0, rad[i]*w.p.C) + g // shunt admittance per metre
		zc := cmplx.Sqrt(oneport.Divide(zs, ys))
		gamma := cmplx.Sqrt(zs*ys) * complex(sign(hz[i]), 0)
		ms[i] = lineMatrix(cmplx.Exp(complex(-w.p.Length, 0)*gamma), zc)
	}
	return ms
}

// lossless is an ideal delay line: fixed real characteristic impedance and
// a purely imaginary propagation coefficient set by the dielectric.
type lossless struct {
	length float64 // inches
	z0     float64 // Ohms
	er     float64
}

// LosslessLine models an ideal transmission line of the given length in
// inches, characteristic impedance z0 in Ohms and relative dielectric
// permittivity epsilonR (DefaultEpsilonR suits common FR-4 stackups).
func LosslessLine(length, z0, epsilonR float64) Device {
	return lossless{length: length, z0: z0, er: epsilonR}
}

func (t lossless) ABCD(f *freq.Freq) []Matrix {
	rad := f.Rad()
	k := math.Sqrt(t.er) / lightSpeed
	zc := complex(t.z0, 0)
	ms := make([]Matrix, len(rad))
	for i := range rad {
		ms[i] = lineMatrix(cmplx.Exp(complex(0, -t.length*k*rad[i])), zc)
	}
	return ms
}

// lineMatrix assembles the transmission matrix of a line section from its
// transmission coefficient H = exp(-l*gamma) and characteristic impedance:
// cosh and sinh of l*gamma expressed through H, with 1/H going through the
// singular division policy so a fully attenuated sample stays finite.
func lineMatrix(h, zc complex128) Matrix {
	hi := oneport.Divide(1, h)
	ch := (hi + h) / 2
	sh := (hi - h) / 2
	return Matrix{A: ch, B: zc * sh, C: sh / zc, D: ch}
}

// sign is the signum with sign(0) = 0, which zeroes the propagation
// coefficient at DC so H(0) = 1.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
