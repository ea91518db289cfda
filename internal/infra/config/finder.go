package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/numutil/internal/domain"
)

// DefaultFileName is the config file looked up when --config is not given.
const DefaultFileName = "numutil.yaml"

// Finder locates numutil.yaml by searching upward from a start directory.
type Finder struct {
	FileName string // defaults to "numutil.yaml"
}

func NewFinder() *Finder {
	return &Finder{FileName: DefaultFileName}
}

// Find returns the path of the nearest config file at or above startDir.
func (f *Finder) Find(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "config.find",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "config.find",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	name := f.FileName
	if name == "" {
		name = DefaultFileName
	}

	cur := filepath.Clean(abs)
	for {
		p := filepath.Join(cur, name)
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "config.find",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}
