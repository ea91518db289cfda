package numeric

import "math/big"

// Fact returns n! by multiplying 1..n. n <= 0 yields 1.
func Fact(n int) *big.Int {
	result := big.NewInt(1)
	var f big.Int
	for i := 1; i <= n; i++ {
		result.Mul(result, f.SetInt64(int64(i)))
	}
	return result
}
