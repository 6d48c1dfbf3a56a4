// SPDX-License-Identifier: MIT

package multivector

import (
	"math/bits"
	"sync"

	"github.com/katalvlaran/clifford/blade"
)

// BladeSign returns +1 or -1: the sign picked up when the basis vectors of
// blade a followed by those of blade b are reordered into ascending order
// and repeated vectors are cancelled (e_i·e_i = 1).
//
// The scan packs both blades into one 2n-bit word, c = b<<n | a. At step i
// bit 0 tracks e(i+1) on the left and bit n tracks it on the right. When the
// right-hand vector is present it must travel past every vector held in bits
// 1..n-1; an odd count flips the sign. The right-hand occurrence is then
// removed (it either cancels the left one or takes its place) and the word
// shifts right by one.
//
// Preconditions: 0 ≤ n ≤ MaxDimensions and a, b < 2^n.
// Complexity: O(n).
func BladeSign(a, b blade.Signature, n int) float64 {
	var (
		c      = uint16(b)<<uint(n) | uint16(a) // combined word
		right  = uint16(1) << uint(n)           // right-hand tracking bit
		window = right - 2                      // bits 1..n-1
		sign   = 1.0
	)
	for i := 0; i < n; i++ {
		if c&right != 0 {
			if bits.OnesCount16(c&window)&1 == 1 {
				sign = -sign
			}
			c ^= right | 1
		}
		c >>= 1
	}

	return sign
}

// signTable caches BladeSign for every pair of 8-bit signatures. The sign
// does not depend on n once a, b < 2^n, so one table serves all dimensions.
var signTable = sync.OnceValue(func() *[1 << MaxDimensions][1 << MaxDimensions]int8 {
	var tbl [1 << MaxDimensions][1 << MaxDimensions]int8
	for a := range tbl {
		for b := range tbl[a] {
			tbl[a][b] = int8(BladeSign(blade.Signature(a), blade.Signature(b), MaxDimensions))
		}
	}

	return &tbl
})
