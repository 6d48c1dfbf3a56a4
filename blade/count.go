// SPDX-License-Identifier: MIT

package blade

// Factorial returns n! for n ≥ 0 (0! = 1). Negative n yields 0.
// Complexity: O(n).
func Factorial(n int) uint64 {
	if n < 0 {
		return 0
	}

	return FallingFactorial(n, n)
}

// FallingFactorial returns n·(n-1)···(n-k+1), the number of ordered
// k-selections out of n. FallingFactorial(n, 0) = 1.
// Returns 0 when k < 0 or k > n.
// Complexity: O(k).
func FallingFactorial(n, k int) uint64 {
	if k < 0 || k > n {
		return 0
	}
	var (
		acc uint64 = 1 // running product
		i   int        // factor offset
	)
	for i = 0; i < k; i++ {
		acc *= uint64(n - i)
	}

	return acc
}

// Binomial returns C(n, k) = n!/(k!(n-k)!), computed as the falling
// factorial of n over k!. Returns 0 when k < 0 or k > n.
// Complexity: O(k).
func Binomial(n, k int) uint64 {
	if k < 0 || k > n {
		return 0
	}

	return FallingFactorial(n, k) / Factorial(k)
}
