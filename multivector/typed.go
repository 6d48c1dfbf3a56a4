// SPDX-License-Identifier: MIT

package multivector

import (
	"fmt"

	"github.com/katalvlaran/clifford/blade"
)

// Dim fixes a dimension count at the type level. Count must return a value
// in [MinDimensions, MaxDimensions]; D2..D8 cover every supported algebra.
type Dim interface {
	Count() int
}

// Dimension markers for Of.
type (
	D2 struct{}
	D3 struct{}
	D4 struct{}
	D5 struct{}
	D6 struct{}
	D7 struct{}
	D8 struct{}
)

func (D2) Count() int { return 2 }
func (D3) Count() int { return 3 }
func (D4) Count() int { return 4 }
func (D5) Count() int { return 5 }
func (D6) Count() int { return 6 }
func (D7) Count() int { return 7 }
func (D8) Count() int { return 8 }

// Of is a multivector whose dimension is part of its type: Of[D3] and
// Of[D4] cannot be multiplied together, so the typed product needs no
// ErrDimensionMismatch path.
//
// The zero value reads as the zero multivector; Set requires a value
// obtained from NewOf.
type Of[D Dim] struct {
	mv *Multivector
}

// NewOf allocates the zero multivector of Cl(D).
// Errors: ErrInvalidDimension when D.Count() is out of range.
func NewOf[D Dim](opts ...Option) (Of[D], error) {
	var d D
	mv, err := New(d.Count(), opts...)
	if err != nil {
		return Of[D]{}, err
	}

	return Of[D]{mv: mv}, nil
}

// get returns the wrapped multivector, materialising a zero one for the
// zero value. An out-of-range D is a programming error.
func (x Of[D]) get() *Multivector {
	if x.mv != nil {
		return x.mv
	}
	var d D
	mv, err := New(d.Count())
	if err != nil {
		panic(fmt.Sprintf("multivector: Of[%T]: %v", d, err))
	}

	return mv
}

// Untyped returns a deep copy as a plain *Multivector.
func (x Of[D]) Untyped() *Multivector { return x.get().Clone() }

// Set stores v as the coefficient of blade sig.
func (x Of[D]) Set(sig blade.Signature, v float64) error {
	if x.mv == nil {
		return fmt.Errorf("Of.Set: %w", ErrNilMultivector)
	}

	return x.mv.Set(sig, v)
}

// At returns the coefficient of blade sig.
func (x Of[D]) At(sig blade.Signature) (float64, error) { return x.get().At(sig) }

// Scalar returns the grade-0 coefficient.
func (x Of[D]) Scalar() float64 { return x.get().Scalar() }

// Mul returns x·y. Both operands share D, so the product cannot fail.
func (x Of[D]) Mul(y Of[D]) Of[D] {
	a, b := x.get(), y.get()
	out := a.newLike()
	a.productInto(out.coeffs, b)

	return Of[D]{mv: out}
}

// SpaceInverted returns the grade involution of x.
func (x Of[D]) SpaceInverted() Of[D] { return Of[D]{mv: x.get().SpaceInverted()} }

// Reverted returns the reversion of x.
func (x Of[D]) Reverted() Of[D] { return Of[D]{mv: x.get().Reverted()} }

// Conjugated returns the Clifford conjugate of x.
func (x Of[D]) Conjugated() Of[D] { return Of[D]{mv: x.get().Conjugated()} }

// Inverse returns x⁻¹; see Inverse for the error cases.
func (x Of[D]) Inverse() (Of[D], error) {
	inv, err := Inverse(x.get())
	if err != nil {
		return Of[D]{}, err
	}

	return Of[D]{mv: inv}, nil
}

// String renders x like Multivector.String.
func (x Of[D]) String() string { return x.get().String() }
