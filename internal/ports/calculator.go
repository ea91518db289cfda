package ports

import (
	"math/big"

	"github.com/aalvaropc/numutil/internal/domain"
)

// Calculator resolves a function name to its implementation.
type Calculator interface {
	Compute(fn domain.Function, n int) (*big.Int, error)
}
