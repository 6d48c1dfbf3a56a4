// SPDX-License-Identifier: MIT

package multivector

// Add returns m + other.
// Errors: ErrNilMultivector, ErrDimensionMismatch.
func (m *Multivector) Add(other *Multivector) (*Multivector, error) {
	if err := validateOperands("Add", m, other); err != nil {
		return nil, err
	}
	out := m.newLike()
	for i, v := range m.coeffs {
		out.coeffs[i] = v + other.coeffs[i]
	}

	return out, nil
}

// Sub returns m - other.
// Errors: ErrNilMultivector, ErrDimensionMismatch.
func (m *Multivector) Sub(other *Multivector) (*Multivector, error) {
	if err := validateOperands("Sub", m, other); err != nil {
		return nil, err
	}
	out := m.newLike()
	for i, v := range m.coeffs {
		out.coeffs[i] = v - other.coeffs[i]
	}

	return out, nil
}

// Scale returns f·m.
func (m *Multivector) Scale(f float64) *Multivector {
	out := m.newLike()
	for i, v := range m.coeffs {
		out.coeffs[i] = f * v
	}

	return out
}
