// SPDX-License-Identifier: MIT

// Package clifford is a small toolkit for geometric algebra: multivectors
// of the Euclidean Clifford algebras Cl(2) through Cl(8), their geometric
// product, grade involutions and closed-form inverses.
//
// What is inside?
//
//	Two packages, combinatorics below the algebra:
//		• blade/       blade signatures and the canonical enumeration of
//		               every grade-k blade (Generate, Binomial, ...)
//		• multivector/ dense multivectors: Mul, MulInPlace, Reverted,
//		               Conjugated, SpaceInverted, Inverse (n ≤ 4), and
//		               the typed facade Of[D] that pins n at compile time
//
// This root package adds Logger, a thin log/slog wrapper used by programs
// built on the library (see examples/inverse).
//
// Quick example:
//
//	x, _ := multivector.New(2)
//	_ = x.Set(0b01, 1) // e1
//	_ = x.Set(0b10, 1) // + e2
//	inv, _ := x.Inverse() // 0.5·e1 + 0.5·e2
//
//	go get github.com/katalvlaran/clifford
package clifford
