package calculators

import (
	"fmt"
	"math/big"

	"github.com/aalvaropc/numutil/internal/domain"
	"github.com/aalvaropc/numutil/internal/numeric"
	"github.com/aalvaropc/numutil/internal/ports"
)

// Func is the shape shared by every numeric function.
type Func func(n int) *big.Int

// Registry maps function names to implementations.
type Registry struct {
	funcs map[domain.Function]Func
}

type Option func(*Registry)

// WithFunc registers or replaces a function; mostly useful for tests.
func WithFunc(name domain.Function, fn Func) Option {
	return func(r *Registry) { r.funcs[name] = fn }
}

// New returns a registry bound to the numeric package.
func New(opts ...Option) *Registry {
	r := &Registry{
		funcs: map[domain.Function]Func{
			domain.FuncFib:  numeric.Fib,
			domain.FuncFib2: numeric.Fib2,
			domain.FuncFact: numeric.Fact,
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.Calculator = (*Registry)(nil)

func (r *Registry) Compute(fn domain.Function, n int) (*big.Int, error) {
	f, ok := r.funcs[fn]
	if !ok {
		return nil, &domain.OpError{
			Op:   "calculators.compute",
			Kind: domain.KindUnknownFunction,
			Err:  fmt.Errorf("%q: %w", fn, domain.ErrUnknownFunction),
		}
	}
	return f(n), nil
}
