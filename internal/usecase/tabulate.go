package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/aalvaropc/numutil/internal/domain"
	"github.com/aalvaropc/numutil/internal/ports"
)

// MaxTableRows bounds a single Tabulate call.
const MaxTableRows = 1 << 20

type Tabulate struct {
	calc ports.Calculator
	settings
}

func NewTabulate(calc ports.Calculator, opts ...Option) *Tabulate {
	return &Tabulate{
		calc:     calc,
		settings: applyOptions(opts),
	}
}

// Execute evaluates fn for every n in [from, to]. Rows are computed by a
// bounded errgroup and returned in ascending n order.
func (uc *Tabulate) Execute(ctx context.Context, fn domain.Function, from, to int) (domain.Table, error) {
	tbl := domain.Table{
		Function:  fn,
		From:      from,
		To:        to,
		StartedAt: uc.now(),
	}

	if from > to {
		return tbl, &domain.OpError{
			Op:   "usecase.tabulate",
			Kind: domain.KindInvalidArgument,
			Err:  fmt.Errorf("from (%d) > to (%d): %w", from, to, domain.ErrInvalidArgument),
		}
	}

	// Two's complement subtraction keeps the distance exact even when
	// to-from overflows int64.
	span := uint64(int64(to) - int64(from))
	if span >= MaxTableRows {
		return tbl, &domain.OpError{
			Op:   "usecase.tabulate",
			Kind: domain.KindInvalidArgument,
			Err:  fmt.Errorf("range [%d, %d] exceeds %d rows: %w", from, to, MaxTableRows, domain.ErrInvalidArgument),
		}
	}

	rows := make([]domain.TableRow, int(span)+1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.workers)

	for i := range rows {
		if gctx.Err() != nil {
			break
		}
		n := from + i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := uc.calc.Compute(fn, n)
			if err != nil {
				return err
			}
			rows[i] = domain.TableRow{N: n, Value: v}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		tbl.EndedAt = uc.now()
		return tbl, err
	}
	// errgroup cancels gctx on Wait; only the caller's context matters here.
	if err := ctx.Err(); err != nil {
		tbl.EndedAt = uc.now()
		return tbl, err
	}

	tbl.Rows = rows
	tbl.EndedAt = uc.now()

	uc.logger.Info("table.done",
		"function", string(fn),
		"from", from,
		"to", to,
		"workers", uc.workers,
		"duration", tbl.EndedAt.Sub(tbl.StartedAt),
	)
	return tbl, nil
}
