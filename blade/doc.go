// SPDX-License-Identifier: MIT

// Package blade enumerates the basis blades of a Clifford algebra Cl(n).
//
// What is a blade signature?
//
//	A blade is the product of a subset of the orthonormal basis vectors
//	e1..en. It is identified by an n-bit Signature where bit i set means
//	e(i+1) takes part:
//
//	  0b0000 -> 1        (scalar, grade 0)
//	  0b0101 -> e1e3     (grade 2)
//	  0b1111 -> e1e2e3e4 (pseudoscalar of Cl(4))
//
//	The grade of a blade is the popcount of its signature.
//
// Key features:
//   - Generate(n, k) lists every grade-k blade of Cl(n) in the canonical
//     recursive order (smallest index fixed first, remaining indices
//     strictly increasing).
//   - CombinationSet.Bitmap exposes the same set as a roaring bitmap for
//     fast membership and set algebra.
//   - Factorial, FallingFactorial and Binomial size the enumeration.
//
// Usage:
//
//	cs, err := blade.Generate(4, 2)
//	if err != nil {
//	  return err
//	}
//	for _, s := range cs.Signatures() {
//	  fmt.Println(s) // e1e2 e1e3 e1e4 e2e3 e2e4 e3e4
//	}
//
// Limits: signatures are 8 bits wide, so n is bounded by MaxDimensions.
//
// Complexity:
//
//   - Generate: O(C(n,k)) time and memory.
package blade
