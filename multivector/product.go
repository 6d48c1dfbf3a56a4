// SPDX-License-Identifier: MIT

package multivector

import (
	"golang.org/x/sync/errgroup"
)

// Mul returns the geometric product a·b as a new multivector carrying a's
// options. Neither operand is modified.
//
// For every pair of non-zero blades (sa, sb):
//
//	result[sa XOR sb] += a[sa] · b[sb] · BladeSign(sa, sb)
//
// Errors: ErrNilMultivector, ErrDimensionMismatch.
// Complexity: O(s_a·s_b) where s is the number of non-zero blades.
func Mul(a, b *Multivector) (*Multivector, error) {
	if err := validateOperands("Mul", a, b); err != nil {
		return nil, err
	}
	out := a.newLike()
	a.productInto(out.coeffs, b)

	return out, nil
}

// Mul returns m·other. See the package-level Mul.
func (m *Multivector) Mul(other *Multivector) (*Multivector, error) {
	return Mul(m, other)
}

// MulInPlace replaces m's coefficients with those of m·other.
// other may be m itself.
func (m *Multivector) MulInPlace(other *Multivector) error {
	if err := validateOperands("MulInPlace", m, other); err != nil {
		return err
	}
	dst := make([]float64, len(m.coeffs))
	m.productInto(dst, other)
	m.coeffs = dst

	return nil
}

// productInto accumulates m·other into dst, which must be zeroed and 2^n long.
func (m *Multivector) productInto(dst []float64, other *Multivector) {
	if m.opts.workers > 1 {
		m.productParallel(dst, other)
		return
	}
	m.productSerial(dst, other)
}

// productSerial walks every pair of non-zero blades.
func (m *Multivector) productSerial(dst []float64, other *Multivector) {
	var (
		tbl   = signTable()
		left  = m.Support().ToArray()
		right = other.Support().ToArray()
		ca    float64
	)
	for _, sa := range left {
		ca = m.coeffs[sa]
		for _, sb := range right {
			dst[sa^sb] += ca * other.coeffs[sb] * float64(tbl[sa][sb])
		}
	}
}

// productParallel gives each worker a contiguous range of result blades and
// computes dst[r] = Σ m[sa]·other[sa^r]·sign(sa, sa^r) over pairs of
// non-zero blades with sa ascending, the same terms and summation order as
// productSerial. Workers write disjoint slots, so no synchronisation is
// needed beyond Wait.
func (m *Multivector) productParallel(dst []float64, other *Multivector) {
	var (
		tbl     = signTable()
		left    = m.Support().ToArray()
		workers = min(m.opts.workers, len(dst))
		chunk   = (len(dst) + workers - 1) / workers
		g       errgroup.Group
	)
	g.SetLimit(workers)
	m.opts.logger.Debug("multivector: parallel product",
		"dimension", m.n,
		"workers", workers,
		"terms", len(left)*len(dst),
	)

	for start := 0; start < len(dst); start += chunk {
		end := min(start+chunk, len(dst))
		g.Go(func() error {
			var acc float64
			for r := start; r < end; r++ {
				acc = 0
				for _, sa := range left {
					sb := sa ^ uint32(r)
					if other.coeffs[sb] == 0 {
						continue // outside other's support, as in productSerial
					}
					acc += m.coeffs[sa] * other.coeffs[sb] * float64(tbl[sa][sb])
				}
				dst[r] = acc
			}
			return nil
		})
	}
	_ = g.Wait() // workers never fail
}
