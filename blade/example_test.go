package blade_test

import (
	"fmt"

	"github.com/katalvlaran/clifford/blade"
)

// ExampleGenerate lists the bivectors of Cl(3) in canonical order.
func ExampleGenerate() {
	cs, err := blade.Generate(3, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(cs.Len(), cs.Signatures())
	// Output:
	// 3 [e1e2 e1e3 e2e3]
}

// ExampleBinomial shows how the blade count of each grade adds up to 2^n.
func ExampleBinomial() {
	counts := make([]uint64, 0, 5)
	for k := 0; k <= 4; k++ {
		counts = append(counts, blade.Binomial(4, k))
	}
	fmt.Println(counts)
	// Output:
	// [1 4 6 4 1]
}
