package usecase

import (
	"context"
	"fmt"
	"math/big"

	"github.com/aalvaropc/numutil/internal/domain"
	"github.com/aalvaropc/numutil/internal/ports"
)

type reference struct {
	fn   domain.Function
	n    int
	want *big.Int
}

var references = []reference{
	{domain.FuncFib2, 0, mustBig("0")},
	{domain.FuncFib2, 1, mustBig("1")},
	{domain.FuncFib2, 10, mustBig("55")},
	{domain.FuncFact, 0, mustBig("1")},
	{domain.FuncFact, 1, mustBig("1")},
	{domain.FuncFact, 5, mustBig("120")},
	{domain.FuncFib2, 100, mustBig("354224848179261915075")},
}

// mustBig parses a decimal literal and panics on malformed input.
func mustBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(fmt.Sprintf("usecase: invalid decimal literal %q", s))
	}
	return v
}

type Verify struct {
	calc ports.Calculator
	settings
}

func NewVerify(calc ports.Calculator, opts ...Option) *Verify {
	return &Verify{
		calc:     calc,
		settings: applyOptions(opts),
	}
}

// Execute checks that fib and fib2 agree on [0, maxN], that known reference
// values hold, and that repeated calls return equal values. Check failures
// are reported in the result; the error is reserved for cancellation,
// bad arguments, and calculator failures.
func (uc *Verify) Execute(ctx context.Context, maxN int) (domain.Verification, error) {
	var out domain.Verification

	if maxN < 0 {
		return out, &domain.OpError{
			Op:   "usecase.verify",
			Kind: domain.KindInvalidArgument,
			Err:  fmt.Errorf("max must be >= 0, got %d: %w", maxN, domain.ErrInvalidArgument),
		}
	}

	agree, err := uc.checkAgreement(ctx, maxN)
	if err != nil {
		return out, err
	}
	out.Checks = append(out.Checks, agree)

	for _, ref := range references {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		c, err := uc.checkReference(ref)
		if err != nil {
			return out, err
		}
		out.Checks = append(out.Checks, c)
	}

	for _, fn := range domain.Functions() {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		c, err := uc.checkRepeatable(fn, 20)
		if err != nil {
			return out, err
		}
		out.Checks = append(out.Checks, c)
	}

	uc.logger.Info("verify.done",
		"max", maxN,
		"checks", len(out.Checks),
		"failed", len(out.Failed()),
	)
	return out, nil
}

func (uc *Verify) checkAgreement(ctx context.Context, maxN int) (domain.CheckResult, error) {
	name := fmt.Sprintf("fib(n) == fib2(n) for n in [0, %d]", maxN)
	for n := 0; n <= maxN; n++ {
		if err := ctx.Err(); err != nil {
			return domain.CheckResult{}, err
		}
		a, err := uc.calc.Compute(domain.FuncFib, n)
		if err != nil {
			return domain.CheckResult{}, err
		}
		b, err := uc.calc.Compute(domain.FuncFib2, n)
		if err != nil {
			return domain.CheckResult{}, err
		}
		if a.Cmp(b) != 0 {
			return domain.CheckResult{
				Name:    name,
				Message: fmt.Sprintf("n=%d: fib=%s fib2=%s", n, a, b),
			}, nil
		}
	}
	return domain.CheckResult{Name: name, Passed: true, Message: "ok"}, nil
}

func (uc *Verify) checkReference(ref reference) (domain.CheckResult, error) {
	name := fmt.Sprintf("%s(%d) == %s", ref.fn, ref.n, ref.want)
	got, err := uc.calc.Compute(ref.fn, ref.n)
	if err != nil {
		return domain.CheckResult{}, err
	}
	if got.Cmp(ref.want) != 0 {
		return domain.CheckResult{Name: name, Message: fmt.Sprintf("got %s", got)}, nil
	}
	return domain.CheckResult{Name: name, Passed: true, Message: "ok"}, nil
}

func (uc *Verify) checkRepeatable(fn domain.Function, n int) (domain.CheckResult, error) {
	name := fmt.Sprintf("%s(%d) is repeatable", fn, n)
	first, err := uc.calc.Compute(fn, n)
	if err != nil {
		return domain.CheckResult{}, err
	}
	second, err := uc.calc.Compute(fn, n)
	if err != nil {
		return domain.CheckResult{}, err
	}
	if first.Cmp(second) != 0 {
		return domain.CheckResult{
			Name:    name,
			Message: fmt.Sprintf("first=%s second=%s", first, second),
		}, nil
	}
	return domain.CheckResult{Name: name, Passed: true, Message: "ok"}, nil
}
