package usecase

import (
	"context"

	"github.com/aalvaropc/numutil/internal/domain"
	"github.com/aalvaropc/numutil/internal/ports"
)

type Evaluate struct {
	calc  ports.Calculator
	store ports.EvaluationStore
	settings
}

// NewEvaluate builds the single-value use case. A nil store disables saving.
func NewEvaluate(calc ports.Calculator, store ports.EvaluationStore, opts ...Option) *Evaluate {
	return &Evaluate{
		calc:     calc,
		store:    store,
		settings: applyOptions(opts),
	}
}

func (uc *Evaluate) Execute(ctx context.Context, fn domain.Function, n int) (domain.Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return domain.Evaluation{}, err
	}

	ev := domain.Evaluation{
		Function:  fn,
		N:         n,
		StartedAt: uc.now(),
	}

	v, err := uc.calc.Compute(fn, n)
	if err != nil {
		return ev, err
	}
	ev.Value = v
	ev.Duration = uc.now().Sub(ev.StartedAt)

	if uc.store != nil {
		id, err := uc.store.Save(ev)
		if err != nil {
			return ev, err
		}
		ev.ID = id
	}

	uc.logger.Info("evaluate.done",
		"function", string(fn),
		"n", n,
		"digits", ev.Digits(),
		"duration", ev.Duration,
		"id", ev.ID,
	)
	return ev, nil
}
