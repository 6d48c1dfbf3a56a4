// SPDX-License-Identifier: MIT
// Package multivector_test contains shared fixtures.
//
// Purpose:
//   - Deterministic random multivectors (seeded math/rand).
//   - An independent swap-counting oracle for blade product signs.

package multivector_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/clifford/blade"
	"github.com/katalvlaran/clifford/multivector"
	"github.com/stretchr/testify/require"
)

// tol is the agreement tolerance for floating-point comparisons.
const tol = 1e-9

// MustNew allocates the zero multivector of Cl(n) or fails the test.
func MustNew(t testing.TB, n int, opts ...multivector.Option) *multivector.Multivector {
	t.Helper()
	m, err := multivector.New(n, opts...)
	require.NoError(t, err, "New(%d)", n)

	return m
}

// MustBasis returns v·blade(sig) in Cl(n).
func MustBasis(t testing.TB, n int, sig blade.Signature, v float64, opts ...multivector.Option) *multivector.Multivector {
	t.Helper()
	m := MustNew(t, n, opts...)
	require.NoError(t, m.Set(sig, v))

	return m
}

// RandomMV fills every coefficient with a uniform value in [-1, 1).
func RandomMV(t testing.TB, rng *rand.Rand, n int, opts ...multivector.Option) *multivector.Multivector {
	t.Helper()
	m := MustNew(t, n, opts...)
	for sig := 0; sig < m.Len(); sig++ {
		require.NoError(t, m.Set(blade.Signature(sig), 2*rng.Float64()-1))
	}

	return m
}

// DominantMV returns 4 + v where every non-scalar coefficient of v lies in
// [-0.25, 0.25). Each basis blade acts as an isometry, so the non-scalar
// part has norm < 4 for n ≤ 4 and the result is well-conditioned.
func DominantMV(t testing.TB, rng *rand.Rand, n int) *multivector.Multivector {
	t.Helper()
	m := MustNew(t, n)
	require.NoError(t, m.Set(0, 4))
	for sig := 1; sig < m.Len(); sig++ {
		require.NoError(t, m.Set(blade.Signature(sig), 0.5*rng.Float64()-0.25))
	}

	return m
}

// swapSign is the oracle: list the vectors of a then b, bubble-sort them
// counting transpositions of distinct vectors, and return (-1)^swaps.
// Equal neighbours end up adjacent and square to +1.
func swapSign(a, b blade.Signature) float64 {
	var seq []int
	for _, s := range []blade.Signature{a, b} {
		for i := 0; i < blade.MaxDimensions; i++ {
			if s.Has(i) {
				seq = append(seq, i)
			}
		}
	}
	swaps := 0
	for i := 0; i < len(seq); i++ {
		for j := 0; j+1 < len(seq)-i; j++ {
			if seq[j] > seq[j+1] {
				seq[j], seq[j+1] = seq[j+1], seq[j]
				swaps++
			}
		}
	}
	if swaps%2 == 1 {
		return -1
	}

	return 1
}
