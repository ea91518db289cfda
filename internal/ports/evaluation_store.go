package ports

import "github.com/aalvaropc/numutil/internal/domain"

// EvaluationStore persists evaluation artifacts.
type EvaluationStore interface {
	Save(ev domain.Evaluation) (id string, err error)
}
