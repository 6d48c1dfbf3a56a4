// SPDX-License-Identifier: MIT

package multivector

import (
	"fmt"
	"math"
)

// MaxInverseDimension is the largest n with a closed-form inverse.
const MaxInverseDimension = 4

// Inverse returns X⁻¹ such that X·X⁻¹ = 1, for X in Cl(2), Cl(3) or Cl(4).
//
// Blueprint:
//
//	Stage 1 (Validate): n ∈ {2,3,4}, else ErrUnsupportedDimension.
//	Stage 2 (Numerator):
//	  c = X̄ (Clifford conjugate)
//	  n=2: N = c
//	  n=3: N = c · reverse(X·c)
//	  n=4: N = c · involute₁,₄(X·c)
//	Stage 3 (Divisor): d = scalar(X·N); X·N has no other grades.
//	Stage 4 (Finalize): |d| ≤ ε, NaN or ±Inf ⇒ ErrNonInvertible; otherwise N/d.
//
// Complexity: at most four geometric products, O(4^n).
func Inverse(x *Multivector) (*Multivector, error) {
	// Stage 1: Validate
	if err := validateNotNil("Inverse", x); err != nil {
		return nil, err
	}
	if x.n < MinDimensions || x.n > MaxInverseDimension {
		return nil, fmt.Errorf("Inverse: Cl(%d): %w", x.n, ErrUnsupportedDimension)
	}

	// Stage 2: Numerator
	var (
		conj = x.Conjugated()
		nom  = conj
		err  error
	)
	if x.n >= 3 {
		var prod, inv *Multivector
		if prod, err = Mul(x, conj); err != nil {
			return nil, fmt.Errorf("Inverse: %w", err)
		}
		if x.n == 3 {
			inv = prod.Reverted()
		} else {
			inv = prod.Involute(1, 4)
		}
		if nom, err = Mul(conj, inv); err != nil {
			return nil, fmt.Errorf("Inverse: %w", err)
		}
	}

	// Stage 3: Divisor
	den, err := Mul(x, nom)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	divisor := den.Scalar()
	if !isFinite(divisor) || math.Abs(divisor) <= x.opts.eps {
		x.opts.logger.Debug("multivector: inverse rejected",
			"dimension", x.n,
			"divisor", divisor,
		)
		return nil, fmt.Errorf("Inverse: divisor %g: %w", divisor, ErrNonInvertible)
	}

	// Stage 4: Finalize
	for i, v := range nom.coeffs {
		nom.coeffs[i] = v / divisor
	}
	x.opts.logger.Debug("multivector: inverse computed",
		"dimension", x.n,
		"divisor", divisor,
	)

	return nom, nil
}

// Inverse returns m⁻¹. See the package-level Inverse.
func (m *Multivector) Inverse() (*Multivector, error) {
	return Inverse(m)
}
