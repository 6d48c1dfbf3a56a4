// SPDX-License-Identifier: MIT
// Package: multivector
//
// errors.go defines the sentinel errors of the multivector package.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Call sites attach method context with %w, never by rewording the
//     sentinel.
//   - Runtime operations never panic on user input. Panics are confined to
//     option constructors (WithX) given nonsensical values and to internal
//     invariant violations.

package multivector

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is returned when a dimension count lies outside
	// [MinDimensions, MaxDimensions].
	ErrInvalidDimension = errors.New("multivector: dimension count out of range")

	// ErrOutOfRange indicates a signature ≥ 2^n or a natural position outside
	// [0, 2^n). Public accessors return it instead of panicking.
	ErrOutOfRange = errors.New("multivector: index out of range")

	// ErrDimensionMismatch indicates operands with different dimension counts.
	ErrDimensionMismatch = errors.New("multivector: dimension mismatch")

	// ErrUnsupportedDimension is returned by Inverse for n outside {2,3,4};
	// no closed form is implemented there.
	ErrUnsupportedDimension = errors.New("multivector: inverse not supported for this dimension")

	// ErrNonInvertible is returned by Inverse when the computed divisor is zero
	// (or within the configured epsilon of zero).
	ErrNonInvertible = errors.New("multivector: multivector is not invertible")

	// ErrNilMultivector indicates a nil receiver or operand.
	ErrNilMultivector = errors.New("multivector: nil multivector")

	// ErrNaNInf signals a NaN or ±Inf coefficient while NaN/Inf validation is on.
	ErrNaNInf = errors.New("multivector: NaN or Inf coefficient")

	// ErrBadLength indicates a coefficient slice whose length is not 2^n.
	ErrBadLength = errors.New("multivector: coefficient slice length must be 2^n")
)

// mvErrorf wraps err with the failing method and its integer argument.
func mvErrorf(method string, arg int, err error) error {
	return fmt.Errorf("Multivector.%s(%d): %w", method, arg, err)
}
