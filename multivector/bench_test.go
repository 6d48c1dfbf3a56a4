package multivector_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/clifford/multivector"
)

// benchmarkMul multiplies two dense random multivectors of Cl(n).
func benchmarkMul(b *testing.B, n int, opts ...multivector.Option) {
	rng := rand.New(rand.NewSource(42))
	x := RandomMV(b, rng, n, opts...)
	y := RandomMV(b, rng, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := multivector.Mul(x, y); err != nil {
			b.Fatalf("Mul failed: %v", err)
		}
	}
}

func BenchmarkMul_Dim4(b *testing.B) { benchmarkMul(b, 4) }

func BenchmarkMul_Dim8(b *testing.B) { benchmarkMul(b, 8) }

func BenchmarkMul_Dim8Workers4(b *testing.B) { benchmarkMul(b, 8, multivector.WithWorkers(4)) }

// BenchmarkInverse_Dim4 measures the four-product Cl(4) inverse.
func BenchmarkInverse_Dim4(b *testing.B) {
	x := DominantMV(b, rand.New(rand.NewSource(42)), 4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.Inverse(); err != nil {
			b.Fatalf("Inverse failed: %v", err)
		}
	}
}
