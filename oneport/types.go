// Package oneport declares the device contract, construction errors and the
// plane-model configuration.
package oneport

import (
	"errors"

	"github.com/katalvlaran/go2port/freq"
)

// Sentinel errors for one-port model construction.
var (
	// ErrFerriteLength indicates the ferrite table arrays differ in length.
	ErrFerriteLength = errors.New("oneport: ferrite arrays must share one length")

	// ErrFerriteBreakpoints indicates fewer than two ferrite breakpoints or a
	// frequency column that is not strictly increasing.
	ErrFerriteBreakpoints = errors.New("oneport: ferrite frequencies must be strictly increasing, two or more points")

	// ErrPlaneModes indicates a modal grid smaller than 1x1.
	ErrPlaneModes = errors.New("oneport: plane modal grid must be at least 1x1")

	// ErrPlaneGeometry indicates non-positive plane dimensions, height or permittivity.
	ErrPlaneGeometry = errors.New("oneport: plane geometry must be positive")
)

// Device is the one-port contract: a complex impedance per frequency sample.
// Implementations return a slice whose length equals f.Len() and must not
// retain or mutate it afterwards.
type Device interface {
	Z(f *freq.Freq) []complex128
}

// PlaneConfig describes a rectangular PCB power/ground plane pair and the
// observation point on it. Lengths are in inches.
//
// Fields:
//   - PointX, PointY: test-point location on the plane.
//   - SizeX, SizeY:   plane dimensions.
//   - Height:         dielectric separation between the planes.
//   - EpsilonR:       relative permittivity of the dielectric.
//   - ModesX, ModesY: cavity-mode grid size; more modes resolve more
//     resonances at O(ModesX·ModesY) extra cost per frequency sample.
type PlaneConfig struct {
	PointX, PointY float64
	SizeX, SizeY   float64
	Height         float64
	EpsilonR       float64
	ModesX, ModesY int
}

// DefaultPlaneConfig returns the reference plane setup: a 20x10 inch plane
// pair with 2 mil FR-4 spacing, observed at (1,1), with a 20x20 mode grid.
func DefaultPlaneConfig() PlaneConfig {
	return PlaneConfig{
		PointX:   1,
		PointY:   1,
		SizeX:    20,
		SizeY:    10,
		Height:   0.002,
		EpsilonR: 4.7,
		ModesX:   20,
		ModesY:   20,
	}
}
