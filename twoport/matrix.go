// SPDX-License-Identifier: MIT
// Package: twoport
//
// Purpose:
//   - Provide the 2x2 complex transmission-matrix value type and the few
//     closed-form operations the algebra needs (product, determinant,
//     inverse).
//
// Design:
//   - Matrix is a tiny value struct, passed and returned by value; no
//     general matrix library is involved because every operation here has
//     a two-line closed form.
//   - Inv routes each cofactor through oneport.Divide, so an exactly
//     singular sample degrades to large finite entries instead of
//     poisoning downstream arrays with Inf/NaN.
//
// Determinism & Performance:
//   - Pure value arithmetic, no allocation, no branching beyond the
//     singular guard inside Divide.
//
// AI-Hints:
//   - Cascade order matters: m.Mul(n) composes m nearest the source.
//   - Reciprocal passive networks keep Det == 1; use that as a cheap
//     sanity check in tests.

package twoport

import "github.com/katalvlaran/go2port/oneport"

// Matrix is one ABCD transmission-matrix sample,
//
//	| V1 |   | A B |   | V2 |
//	| I1 | = | C D | * | I2 |
//
// relating input to output voltage and current at a single frequency.
type Matrix struct {
	A, B, C, D complex128
}

// Identity returns the transmission matrix of a straight-through
// connection.
func Identity() Matrix { return Matrix{A: 1, D: 1} }

// Mul returns the matrix product m*n, the cascade of m followed by n with
// m nearest the source.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
	}
}

// Det returns the determinant A*D - B*C.
func (m Matrix) Det() complex128 { return m.A*m.D - m.B*m.C }

// Inv returns the matrix inverse. Cofactors divide through the singular
// substitution policy, so a zero determinant yields SingularMagnitude
// entries rather than Inf/NaN.
func (m Matrix) Inv() Matrix {
	det := m.Det()
	return Matrix{
		A: oneport.Divide(m.D, det),
		B: oneport.Divide(-m.B, det),
		C: oneport.Divide(-m.C, det),
		D: oneport.Divide(m.A, det),
	}
}
