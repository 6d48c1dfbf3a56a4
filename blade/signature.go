// SPDX-License-Identifier: MIT

package blade

import (
	"math/bits"
	"strconv"
	"strings"
)

// MaxDimensions is the largest basis size a Signature can address.
const MaxDimensions = 8

// Signature identifies a basis blade: bit i set means e(i+1) participates.
// Signature 0 is the scalar.
type Signature uint8

// Grade returns the number of basis vectors in the blade.
// Complexity: O(1).
func (s Signature) Grade() int {
	return bits.OnesCount8(uint8(s))
}

// Has reports whether basis vector e(i+1) participates in the blade.
// Indices outside [0, MaxDimensions) report false.
func (s Signature) Has(i int) bool {
	if i < 0 || i >= MaxDimensions {
		return false
	}

	return s&(1<<uint(i)) != 0
}

// String renders the blade as "1" for the scalar or "e1e3..." otherwise.
func (s Signature) String() string {
	if s == 0 {
		return "1"
	}
	var sb strings.Builder
	for i := 0; i < MaxDimensions; i++ {
		if s.Has(i) {
			sb.WriteByte('e')
			sb.WriteString(strconv.Itoa(i + 1))
		}
	}

	return sb.String()
}
