// SPDX-License-Identifier: MIT

package blade

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// CombinationSet holds every grade-k blade of an n-dimensional algebra in
// canonical recursive order. It is built once by Generate and never mutated.
type CombinationSet struct {
	n, k       int         // dimension count and grade
	signatures []Signature // len == Binomial(n, k)
}

// Generate enumerates every k-element subset of {0..n-1} as a Signature.
//
// Order: the smallest index is fixed first, then the procedure recurses over
// strictly larger indices. For n=4, k=2 this yields
// e1e2, e1e3, e1e4, e2e3, e2e4, e3e4.
//
// Stage 1 (Validate): 0 ≤ k ≤ n ≤ MaxDimensions, else ErrOutOfRange.
// Stage 2 (Prepare): size the output with Binomial(n, k).
// Stage 3 (Execute): recursive enumeration.
// Complexity: O(C(n,k)) time and memory.
func Generate(n, k int) (*CombinationSet, error) {
	if n < 0 || n > MaxDimensions || k < 0 || k > n {
		return nil, bladeErrorf("Generate", n, k, ErrOutOfRange)
	}

	cs := &CombinationSet{
		n:          n,
		k:          k,
		signatures: make([]Signature, 0, Binomial(n, k)),
	}
	cs.collect(0, k, 0)

	return cs, nil
}

// collect appends every completion of acc that picks `remaining` more
// indices from [start, n).
func (cs *CombinationSet) collect(start, remaining int, acc Signature) {
	if remaining == 0 {
		cs.signatures = append(cs.signatures, acc)
		return
	}
	// the last pick must leave room for the remaining-1 larger indices
	for i := start; i <= cs.n-remaining; i++ {
		cs.collect(i+1, remaining-1, acc|Signature(1)<<uint(i))
	}
}

// N returns the dimension count the set was generated for.
func (cs *CombinationSet) N() int { return cs.n }

// K returns the grade of every signature in the set.
func (cs *CombinationSet) K() int { return cs.k }

// Len returns the number of signatures, C(n, k).
func (cs *CombinationSet) Len() int { return len(cs.signatures) }

// At returns the i-th signature in construction order.
// It panics when i is out of range, like slice indexing.
func (cs *CombinationSet) At(i int) Signature { return cs.signatures[i] }

// Signatures returns a copy of the signatures in construction order.
// Complexity: O(C(n,k)).
func (cs *CombinationSet) Signatures() []Signature {
	out := make([]Signature, len(cs.signatures))
	copy(out, cs.signatures)

	return out
}

// Bitmap returns the signatures as a roaring bitmap. Iteration over the
// bitmap is in ascending numeric order, not construction order.
// Complexity: O(C(n,k)).
func (cs *CombinationSet) Bitmap() *roaring.Bitmap {
	bm := roaring.New()
	for _, s := range cs.signatures {
		bm.Add(uint32(s))
	}

	return bm
}
