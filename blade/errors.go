// SPDX-License-Identifier: MIT
// Package: blade
//
// errors.go holds the sentinel errors of the blade package.
// Callers branch with errors.Is; call sites attach context with %w.

package blade

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates that n or k lies outside 0 ≤ k ≤ n ≤ MaxDimensions.
var ErrOutOfRange = errors.New("blade: argument out of range")

// bladeErrorf wraps err with the name of the failing call and its arguments.
func bladeErrorf(method string, n, k int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", method, n, k, err)
}
