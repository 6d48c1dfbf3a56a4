// SPDX-License-Identifier: MIT

package multivector

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/katalvlaran/clifford/blade"
)

const (
	// MinDimensions is the smallest supported basis size.
	MinDimensions = 2

	// MaxDimensions is the largest supported basis size, bounded by the
	// 8-bit blade signature.
	MaxDimensions = blade.MaxDimensions
)

// Multivector is a dense element of Cl(n).
//
// coeffs is indexed by blade signature. posToSig and sigToPos map the
// natural grade-by-grade position of a blade to its signature and back;
// they are filled once in New and never written again, so results of
// operations share them with their receiver.
type Multivector struct {
	n        int               // dimension count, fixed for the lifetime
	coeffs   []float64         // len == 1<<n, indexed by signature
	posToSig []blade.Signature // natural position -> signature
	sigToPos []int             // signature -> natural position
	opts     Options
}

// New allocates the zero multivector of Cl(n).
//
// Stage 1 (Validate): MinDimensions ≤ n ≤ MaxDimensions, else ErrInvalidDimension.
// Stage 2 (Prepare): allocate coefficients and both index tables (2^n each).
// Stage 3 (Execute): scalar at position 0, then grades 1..n in blade.Generate order.
// Stage 4 (Finalize): invert the position table.
// Complexity: O(2^n) time and memory.
func New(n int, opts ...Option) (*Multivector, error) {
	if err := validateDimension("New", n); err != nil {
		return nil, err
	}
	size := 1 << n
	m := &Multivector{
		n:        n,
		coeffs:   make([]float64, size),
		posToSig: make([]blade.Signature, size),
		sigToPos: make([]int, size),
		opts:     gatherOptions(opts...),
	}
	if err := m.buildTables(); err != nil {
		return nil, err
	}

	return m, nil
}

// FromCoefficients builds a multivector of Cl(n) from coeffs, which must be
// indexed by signature and hold exactly 2^n values. coeffs is copied.
func FromCoefficients(n int, coeffs []float64, opts ...Option) (*Multivector, error) {
	m, err := New(n, opts...)
	if err != nil {
		return nil, err
	}
	if len(coeffs) != len(m.coeffs) {
		return nil, fmt.Errorf("FromCoefficients(%d): got %d values: %w", n, len(coeffs), ErrBadLength)
	}
	for sig, v := range coeffs {
		if err = m.Set(blade.Signature(sig), v); err != nil {
			return nil, fmt.Errorf("FromCoefficients(%d): %w", n, err)
		}
	}

	return m, nil
}

// buildTables fills posToSig grade by grade and derives sigToPos.
func (m *Multivector) buildTables() error {
	pos := 1 // position 0 holds the scalar (signature 0)
	for g := 1; g <= m.n; g++ {
		cs, err := blade.Generate(m.n, g)
		if err != nil {
			return fmt.Errorf("New(%d): %w", m.n, err)
		}
		for i := 0; i < cs.Len(); i++ {
			if pos >= len(m.posToSig) {
				panic(fmt.Sprintf("multivector: blade table overflow at grade %d", g))
			}
			m.posToSig[pos] = cs.At(i)
			pos++
		}
	}
	if pos != len(m.posToSig) {
		panic(fmt.Sprintf("multivector: blade table holds %d of %d blades", pos, len(m.posToSig)))
	}
	for p, sig := range m.posToSig {
		m.sigToPos[sig] = p
	}

	return nil
}

// newLike returns a zero multivector with m's dimension, tables and options.
func (m *Multivector) newLike() *Multivector {
	return &Multivector{
		n:        m.n,
		coeffs:   make([]float64, len(m.coeffs)),
		posToSig: m.posToSig,
		sigToPos: m.sigToPos,
		opts:     m.opts,
	}
}

// Dimension returns n, the number of basis vectors.
func (m *Multivector) Dimension() int { return m.n }

// Len returns the number of blades, 2^n.
func (m *Multivector) Len() int { return len(m.coeffs) }

// checkSignature returns ErrOutOfRange when sig does not address a blade.
func (m *Multivector) checkSignature(method string, sig blade.Signature) error {
	if int(sig) >= len(m.coeffs) {
		return mvErrorf(method, int(sig), ErrOutOfRange)
	}

	return nil
}

// Set stores v as the coefficient of blade sig.
// Errors: ErrOutOfRange when sig ≥ 2^n; ErrNaNInf for a non-finite v while
// validation is enabled.
// Complexity: O(1).
func (m *Multivector) Set(sig blade.Signature, v float64) error {
	if err := m.checkSignature("Set", sig); err != nil {
		return err
	}
	if m.opts.validateNaNInf && !isFinite(v) {
		return mvErrorf("Set", int(sig), ErrNaNInf)
	}
	m.coeffs[sig] = v

	return nil
}

// At returns the coefficient of blade sig, or ErrOutOfRange.
// Complexity: O(1).
func (m *Multivector) At(sig blade.Signature) (float64, error) {
	if err := m.checkSignature("At", sig); err != nil {
		return 0, err
	}

	return m.coeffs[sig], nil
}

// Scalar returns the grade-0 coefficient.
func (m *Multivector) Scalar() float64 { return m.coeffs[0] }

// SignatureAt returns the blade stored at natural position pos.
func (m *Multivector) SignatureAt(pos int) (blade.Signature, error) {
	if pos < 0 || pos >= len(m.posToSig) {
		return 0, mvErrorf("SignatureAt", pos, ErrOutOfRange)
	}

	return m.posToSig[pos], nil
}

// PositionOf returns the natural position of blade sig.
func (m *Multivector) PositionOf(sig blade.Signature) (int, error) {
	if err := m.checkSignature("PositionOf", sig); err != nil {
		return 0, err
	}

	return m.sigToPos[sig], nil
}

// Coefficients returns a copy of the coefficients, indexed by signature.
func (m *Multivector) Coefficients() []float64 {
	out := make([]float64, len(m.coeffs))
	copy(out, m.coeffs)

	return out
}

// Clone returns a deep copy of the coefficients.
// Complexity: O(2^n).
func (m *Multivector) Clone() *Multivector {
	out := m.newLike()
	copy(out.coeffs, m.coeffs)

	return out
}

// Support returns the signatures of all non-zero blades.
// Complexity: O(2^n).
func (m *Multivector) Support() *roaring.Bitmap {
	bm := roaring.New()
	for sig, v := range m.coeffs {
		if v != 0 {
			bm.Add(uint32(sig))
		}
	}

	return bm
}

// Equal reports whether m and other have the same dimension and identical
// coefficients.
func (m *Multivector) Equal(other *Multivector) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.n != other.n {
		return false
	}
	for i, v := range m.coeffs {
		if v != other.coeffs[i] {
			return false
		}
	}

	return true
}

// AllClose reports whether every pair of coefficients satisfies
// |a-b| ≤ tol·max(1, |a|, |b|), i.e. absolute near zero and relative
// for large magnitudes. Dimensions must match.
func (m *Multivector) AllClose(other *Multivector, tol float64) bool {
	if m == nil || other == nil || m.n != other.n {
		return false
	}
	for i, a := range m.coeffs {
		b := other.coeffs[i]
		scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
		if !(math.Abs(a-b) <= tol*scale) {
			return false
		}
	}

	return true
}

// String renders every blade in natural (grade) order as label:coefficient.
//
//	[1:1 e1:0.5 e2:0 e1e2:-2]
func (m *Multivector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for pos, sig := range m.posToSig {
		if pos > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(sig.String())
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatFloat(m.coeffs[sig], 'g', -1, 64))
	}
	sb.WriteByte(']')

	return sb.String()
}
