package multivector_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/clifford/multivector"
)

// ExampleMul shows the anticommutation of distinct basis vectors.
func ExampleMul() {
	e1, _ := multivector.New(3)
	_ = e1.Set(0b001, 1)
	e2, _ := multivector.New(3)
	_ = e2.Set(0b010, 1)

	p, _ := multivector.Mul(e1, e2)
	q, _ := multivector.Mul(e2, e1)
	a, _ := p.At(0b011)
	b, _ := q.At(0b011)
	fmt.Println("e1·e2 =", a, "e1e2")
	fmt.Println("e2·e1 =", b, "e1e2")
	// Output:
	// e1·e2 = 1 e1e2
	// e2·e1 = -1 e1e2
}

// ExampleMultivector_Inverse inverts e1+e2 in Cl(2).
func ExampleMultivector_Inverse() {
	x, _ := multivector.New(2)
	_ = x.Set(0b01, 1)
	_ = x.Set(0b10, 1)

	inv, err := x.Inverse()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	c1, _ := inv.At(0b01)
	c2, _ := inv.At(0b10)
	one, _ := multivector.Mul(x, inv)
	fmt.Println(c1, c2, one.Scalar())
	// Output:
	// 0.5 0.5 1
}

// ExampleMultivector_Inverse_unsupported shows the Cl(5) refusal.
func ExampleMultivector_Inverse_unsupported() {
	x, _ := multivector.New(5)
	_ = x.Set(0, 1)

	_, err := x.Inverse()
	fmt.Println(errors.Is(err, multivector.ErrUnsupportedDimension))
	// Output:
	// true
}

// ExampleMultivector_String lists every blade in grade order.
func ExampleMultivector_String() {
	x, _ := multivector.New(2)
	_ = x.Set(0, 1)
	_ = x.Set(0b01, 0.5)
	_ = x.Set(0b11, -2)
	fmt.Println(x)
	// Output:
	// [1:1 e1:0.5 e2:0 e1e2:-2]
}

// ExampleOf squares a typed Cl(3) vector.
func ExampleOf() {
	v, _ := multivector.NewOf[multivector.D3]()
	_ = v.Set(0b001, 3)
	_ = v.Set(0b010, 4)
	fmt.Println(v.Mul(v).Scalar())
	// Output:
	// 25
}
