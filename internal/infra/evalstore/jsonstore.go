package evalstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/numutil/internal/domain"
	"github.com/aalvaropc/numutil/internal/ports"
)

const defaultDir = "runs"

// Artifact is the on-disk form of a saved evaluation.
// Value is kept as a decimal string so large results survive JSON.
type Artifact struct {
	ID         string    `json:"id"`
	Function   string    `json:"function"`
	N          int       `json:"n"`
	Value      string    `json:"value"`
	Digits     int       `json:"digits"`
	StartedAt  time.Time `json:"started_at"`
	DurationNS int64     `json:"duration_ns"`
}

type JSONStore struct {
	rootDir    string
	dirName    string
	writeIndex bool
	now        func() time.Time
	newID      func() string
}

type Option func(*JSONStore)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

// WithIDFunc overrides the UUID generator.
func WithIDFunc(fn func() string) Option {
	return func(s *JSONStore) { s.newID = fn }
}

func NewJSONStore(root string, cfg domain.StoreConfig, opts ...Option) *JSONStore {
	dir := cfg.Dir
	if strings.TrimSpace(dir) == "" {
		dir = defaultDir
	}

	s := &JSONStore{
		rootDir:    root,
		dirName:    dir,
		writeIndex: cfg.Index,
		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.EvaluationStore = (*JSONStore)(nil)

// Dir returns the directory artifacts are written to.
func (s *JSONStore) Dir() string {
	if filepath.IsAbs(s.dirName) {
		return s.dirName
	}
	return filepath.Join(s.rootDir, s.dirName)
}

func (s *JSONStore) Save(ev domain.Evaluation) (string, error) {
	dir := s.Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "evalstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := ev.StartedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	id := ev.ID
	if id == "" {
		id = s.newID()
	}

	slug := slugify(fmt.Sprintf("%s n%d", ev.Function, ev.N))
	if slug == "" {
		slug = "eval"
	}
	filename := fmt.Sprintf("%s_%s.json", ts.Format("20060102T150405Z"), slug)
	path := filepath.Join(dir, filename)

	art := Artifact{
		ID:         id,
		Function:   string(ev.Function),
		N:          ev.N,
		Digits:     ev.Digits(),
		StartedAt:  ts,
		DurationNS: ev.Duration.Nanoseconds(),
	}
	if ev.Value != nil {
		art.Value = ev.Value.String()
	}

	b, err := json.MarshalIndent(art, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "evalstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "evalstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "evalstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, filename, art)
	}

	return id, nil
}

func (s *JSONStore) appendIndex(dir, filename string, art Artifact) error {
	type idx struct {
		ID        string    `json:"id"`
		File      string    `json:"file"`
		Function  string    `json:"function"`
		N         int       `json:"n"`
		StartedAt time.Time `json:"started_at"`
	}
	line, err := json.Marshal(idx{
		ID:        art.ID,
		File:      filename,
		Function:  art.Function,
		N:         art.N,
		StartedAt: art.StartedAt,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, "index.jsonl")
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, _ = f.Write(append(line, '\n'))
	return nil
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
