// SPDX-License-Identifier: MIT

package multivector

import (
	"fmt"
	"math"
)

// validateNotNil rejects a nil multivector.
func validateNotNil(method string, m *Multivector) error {
	if m == nil {
		return fmt.Errorf("%s: %w", method, ErrNilMultivector)
	}

	return nil
}

// validateOperands: NotNil(a) → NotNil(b) → same dimension count.
func validateOperands(method string, a, b *Multivector) error {
	if err := validateNotNil(method, a); err != nil {
		return err
	}
	if err := validateNotNil(method, b); err != nil {
		return err
	}
	if a.n != b.n {
		return fmt.Errorf("%s: Cl(%d) and Cl(%d): %w", method, a.n, b.n, ErrDimensionMismatch)
	}

	return nil
}

// validateDimension checks MinDimensions ≤ n ≤ MaxDimensions.
func validateDimension(method string, n int) error {
	if n < MinDimensions || n > MaxDimensions {
		return fmt.Errorf("%s(%d): %w", method, n, ErrInvalidDimension)
	}

	return nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
