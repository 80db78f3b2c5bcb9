// Package twoport models four-terminal (two-port) linear networks through
// their ABCD transmission matrices in the frequency domain.
//
// 🚀 What is a two-port?
//
//	A linear black box with an input and an output port, characterized by
//	one 2x2 transmission matrix per frequency sample:
//
//	     I1                  I2
//	    ---> .-----------. --->
//	   o-----|           |-----o
//	  V1     |   ABCD    |     V2
//	   o-----|           |-----o
//	         '-----------'
//
//	Wrapping a one-port impedance as a Series or Shunt element lifts it
//	into the two-port algebra; Cascade chains networks end to end by
//	multiplying their matrices sample by sample.
//
// ✨ Key pieces:
//   - wrappers: Series, Shunt (lift a oneport.Device)
//   - combinators: Cascade, and the counted CascadeN for repeated sections
//   - line models: LossyLine (distributed RLGC with skin-effect and
//     dielectric losses), LosslessLine (ideal delay line)
//   - terminal views: Zin, Zout, Gf, Gr, one complex value per sample
//
// ⚙️ Usage:
//
//	f, _ := freq.LogSpace(10e3, 1e9, 100)
//	filt := twoport.Cascade(
//		twoport.Shunt(oneport.Capacitor(100e-9)),
//		twoport.Series(oneport.Resistor(10)),
//	)
//	gain := twoport.Gf(filt, f)
//
// The terminal quantities follow open-circuit two-port analysis as in
// Johnson, High-Speed Signal Propagation, appendix C: Zin = A/C and
// Gf = 1/A from the composite matrix, with Zout and Gr taken the same way
// from the per-sample matrix inverse. Singular denominators substitute
// oneport.SingularMagnitude rather than producing Inf or NaN.
//
// Nodes are immutable; composition never mutates operands, and repeated
// queries over the same vector return identical arrays.
package twoport
