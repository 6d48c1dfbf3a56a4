// SPDX-License-Identifier: MIT

package multivector

import (
	"github.com/katalvlaran/clifford/blade"
)

// Involute returns a copy of m in which the coefficient of every blade of
// grade g is negated iff ⌊(g+addend)/divisor⌋ is odd.
//
//	SpaceInverted: (0,1) negates odd grades.
//	Reverted:      (0,2) negates grades ≡ 2,3 (mod 4).
//	Conjugated:    (1,2) negates grades ≡ 1,2 (mod 4).
//	(1,4) negates grades ≡ 3..6 (mod 8); used by the Cl(4) inverse.
//
// Panics if divisor ≤ 0.
// Complexity: O(2^n).
func (m *Multivector) Involute(addend, divisor int) *Multivector {
	if divisor <= 0 {
		panic("multivector: Involute: divisor must be > 0")
	}
	out := m.Clone()
	for sig := range out.coeffs {
		g := blade.Signature(sig).Grade()
		if floorDiv(g+addend, divisor)&1 != 0 {
			out.coeffs[sig] = -out.coeffs[sig]
		}
	}

	return out
}

// SpaceInverted returns the grade involution of m (odd grades negated).
func (m *Multivector) SpaceInverted() *Multivector { return m.Involute(0, 1) }

// Reverted returns the reversion of m (grades 2,3 mod 4 negated).
func (m *Multivector) Reverted() *Multivector { return m.Involute(0, 2) }

// Conjugated returns the Clifford conjugate of m (grades 1,2 mod 4 negated).
func (m *Multivector) Conjugated() *Multivector { return m.Involute(1, 2) }

// GradePart returns the projection of m onto grade k.
// Errors: ErrOutOfRange when k ∉ [0, n].
func (m *Multivector) GradePart(k int) (*Multivector, error) {
	cs, err := blade.Generate(m.n, k)
	if err != nil {
		return nil, mvErrorf("GradePart", k, ErrOutOfRange)
	}
	out := m.newLike()
	it := cs.Bitmap().Iterator()
	for it.HasNext() {
		sig := it.Next()
		out.coeffs[sig] = m.coeffs[sig]
	}

	return out, nil
}

// floorDiv divides rounding toward negative infinity; d > 0.
func floorDiv(a, d int) int {
	q := a / d
	if a%d != 0 && a < 0 {
		q--
	}

	return q
}
