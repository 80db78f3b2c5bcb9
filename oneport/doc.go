// Package oneport models two-terminal (one-port) circuit elements and their
// series/parallel composition in the frequency domain.
//
// 🚀 What is a one-port?
//
//	Any element fully described by a single impedance curve Z(f): resistors,
//	capacitors, inductors, ferrite beads, PCB plane pairs, or whole networks
//	of them. Composing one-ports builds an immutable expression tree; every
//	node answers Z over a shared frequency vector with one complex value per
//	sample.
//
// ✨ Key pieces:
//   - primitives: Resistor, Inductor, Capacitor
//   - combinators: InLine (series), Parallel, and the counted InLineN /
//     ParallelN for banks of identical parts
//   - composites: BypassCap (C-L-R with its mounting parasitics), ViaPair
//     (closed-form via-pair inductance)
//   - interpolated models: Ferrite (tabulated R+jX bead curve)
//   - physical models: Plane (cavity-mode PCB plane-pair impedance)
//
// ⚙️ Usage:
//
//	f, _ := freq.LogSpace(10e3, 1e9, 100)
//	chf := oneport.BypassCap(100e-9, 0.5e-9, 0.039)
//	bank := oneport.ParallelN(chf, 10) // ten of them across the rails
//	z := bank.Z(f)
//
// Singular divisions (an ideal capacitor at DC, a zero branch inside
// Parallel) never produce Inf or NaN: they substitute the large finite
// SingularMagnitude so downstream composition stays well-defined. See
// Divide for the exact contract.
//
// Nodes are immutable; composition never mutates operands, and repeated
// queries over the same vector return identical arrays.
package oneport
