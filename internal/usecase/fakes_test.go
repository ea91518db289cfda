package usecase

import (
	"errors"
	"math/big"
	"sync"
	"time"

	"github.com/aalvaropc/numutil/internal/domain"
)

type fakeCalculator struct {
	mu    sync.Mutex
	calls int
	err   error
	fn    func(domain.Function, int) *big.Int
}

func (c *fakeCalculator) Compute(fn domain.Function, n int) (*big.Int, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	if c.fn != nil {
		return c.fn(fn, n), nil
	}
	return big.NewInt(int64(n)), nil
}

type fakeStore struct {
	saved []domain.Evaluation
	id    string
	err   error
}

func (s *fakeStore) Save(ev domain.Evaluation) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = append(s.saved, ev)
	return s.id, nil
}

var errBoom = errors.New("boom")

// stepClock returns a now func that advances one millisecond per call.
func stepClock() func() time.Time {
	var mu sync.Mutex
	t := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Millisecond)
		return t
	}
}
