// SPDX-License-Identifier: MIT

// Package multivector implements dense multivector arithmetic for the
// Euclidean Clifford algebras Cl(n), 2 ≤ n ≤ 8.
//
// What is a multivector?
//
//	A weighted sum of all 2^n basis blades of Cl(n):
//
//	  X = x₀·1 + x₁·e1 + x₂·e2 + x₃·e1e2 + ... + x_{2^n-1}·e1…en
//
//	Coefficients are addressed by blade signature (see package blade):
//	bit i of the signature set means e(i+1) takes part. Internally every
//	Multivector also keeps a natural grade-by-grade ordering of its blades
//	(scalar, vectors, bivectors, ...) built from blade.Generate; it is used
//	for display and exposed through SignatureAt/PositionOf.
//
// Key features:
//   - Geometric product (Mul, MulInPlace) with the anticommutation sign of
//     every blade pair taken from a precomputed 8-bit sign table.
//   - Grade involutions: SpaceInverted, Reverted, Conjugated and the
//     general Involute(addend, divisor).
//   - Closed-form multiplicative Inverse for n ∈ {2,3,4}.
//   - Optional fan-out of the product over goroutines (WithWorkers).
//   - Of[D] binds the dimension into the type, so mixing Cl(3) and Cl(4)
//     operands is a compile error instead of ErrDimensionMismatch.
//
// Usage:
//
//	x, _ := multivector.New(3)
//	_ = x.Set(0b000, 2) // 2
//	_ = x.Set(0b001, 1) // + e1
//
//	inv, err := x.Inverse()
//	if err != nil {
//	  // ErrNonInvertible or ErrUnsupportedDimension
//	}
//	one, _ := multivector.Mul(x, inv) // scalar 1 up to rounding
//
// Value semantics: every operation except Set and MulInPlace returns a
// fresh Multivector; operands are never modified.
//
// Complexity:
//
//   - Mul: O(s_a·s_b) with s the number of non-zero blades (≤ 2^n),
//     worst case O(4^n) = 65536 terms for n = 8.
//   - Involutions: O(2^n).
//   - Inverse: at most four products.
package multivector
