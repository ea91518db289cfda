package numeric

import "math/big"

// Fib returns the n-th Fibonacci number by direct recursion.
// For n <= 1 it returns n itself, including negative n.
func Fib(n int) *big.Int {
	if n <= 1 {
		return big.NewInt(int64(n))
	}
	out := Fib(n - 1)
	return out.Add(out, Fib(n-2))
}

// Fib2 returns the n-th Fibonacci number using an accumulator pair.
func Fib2(n int) *big.Int {
	a, b := big.NewInt(0), big.NewInt(1)
	for i := 0; i < n; i++ {
		// (a, b) <- (b, a+b)
		a.Add(a, b)
		a, b = b, a
	}
	return a
}
