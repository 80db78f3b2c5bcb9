package oneport

import (
	"fmt"
	"math"

	"github.com/katalvlaran/go2port/freq"
)

// Physical constants in the inch-based unit system of the plane model.
const (
	// vacuumPermittivity is ε0 in F/in.
	vacuumPermittivity = 2.24896371e-13
	// lightSpeed is c in in/s.
	lightSpeed = 1.18028527e10
)

// Plane models the impedance of a rectangular PCB power/ground plane pair
// seen from a point on it, after Novak's cavity-mode formulation: the
// static plane capacitance scaled by a double sum over resonant modes.
//
// The mode-shape weights depend only on geometry, so they are computed once
// at construction; a query costs O(ModesX·ModesY) per frequency sample.
type Plane struct {
	cfg        PlaneConfig
	cp         float64 // static plane capacitance, F
	tpdx, tpdy float64 // one-way propagation delays, s
	weights    []float64
}

// NewPlane precomputes the mode-weight matrix for cfg.
//
// Errors: ErrPlaneModes, ErrPlaneGeometry.
func NewPlane(cfg PlaneConfig) (*Plane, error) {
	if cfg.ModesX < 1 || cfg.ModesY < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrPlaneModes, cfg.ModesX, cfg.ModesY)
	}
	if cfg.SizeX <= 0 || cfg.SizeY <= 0 || cfg.Height <= 0 || cfg.EpsilonR <= 0 {
		return nil, fmt.Errorf("%w: size=%gx%g height=%g er=%g",
			ErrPlaneGeometry, cfg.SizeX, cfg.SizeY, cfg.Height, cfg.EpsilonR)
	}

	p := &Plane{cfg: cfg}
	p.cp = vacuumPermittivity * cfg.EpsilonR * (cfg.SizeX * cfg.SizeY / cfg.Height)

	v := lightSpeed / math.Sqrt(cfg.EpsilonR)
	p.tpdx = cfg.SizeX / v
	p.tpdy = cfg.SizeY / v

	// a = 1 for the (0,0) mode, 2 when exactly one index is zero, 4 otherwise,
	// scaled by the squared mode shape at the test point.
	p.weights = make([]float64, cfg.ModesX*cfg.ModesY)
	for m := 0; m < cfg.ModesX; m++ {
		cx := math.Cos(math.Pi * float64(m) * cfg.PointX / cfg.SizeX)
		for n := 0; n < cfg.ModesY; n++ {
			a := 4.0
			switch {
			case m == 0 && n == 0:
				a = 1
			case m == 0 || n == 0:
				a = 2
			}
			cy := math.Cos(math.Pi * float64(n) * cfg.PointY / cfg.SizeY)
			p.weights[m*cfg.ModesY+n] = a * cx * cx * cy * cy
		}
	}

	return p, nil
}

// StaticCapacitance returns the DC plane-pair capacitance in Farads.
func (p *Plane) StaticCapacitance() float64 { return p.cp }

// Z evaluates the cavity-mode sum at each sample.
func (p *Plane) Z(f *freq.Freq) []complex128 {
	rad := f.Rad()
	z := make([]complex128, len(rad))
	for i, w := range rad {
		var sum float64
		for m := 0; m < p.cfg.ModesX; m++ {
			px := phase2(m, w, p.tpdx)
			for n := 0; n < p.cfg.ModesY; n++ {
				sum += p.weights[m*p.cfg.ModesY+n] / (1 - px - phase2(n, w, p.tpdy))
			}
		}
		z[i] = Divide(1, complex(0, w*p.cp)) * complex(sum, 0)
	}
	return z
}

// phase2 is the squared modal phase (πi/(ω·tpd))². Mode index zero
// contributes no phase at any frequency, which also continues the ω=0
// sample cleanly; higher modes at ω=0 push their denominator to -Inf and
// vanish from the sum.
func phase2(i int, w, tpd float64) float64 {
	if i == 0 {
		return 0
	}
	x := math.Pi * float64(i) / (w * tpd)
	return x * x
}
