package usecase

import (
	"io"
	"log/slog"
	"time"
)

type settings struct {
	logger  *slog.Logger
	now     func() time.Time
	workers int
}

func defaultSettings() settings {
	return settings{
		logger:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now:     time.Now,
		workers: 4,
	}
}

// Option configures any of the use cases in this package.
type Option func(*settings)

func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *settings) {
		if now != nil {
			s.now = now
		}
	}
}

// WithWorkers bounds the number of concurrent computations in Tabulate.
func WithWorkers(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.workers = n
		}
	}
}

func applyOptions(opts []Option) settings {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
