package config

import (
	"fmt"
	"os"

	"github.com/aalvaropc/numutil/internal/domain"
	"gopkg.in/yaml.v3"
)

// Load reads a config file and applies it on top of domain.DefaultConfig.
func Load(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return apply(path, cfg, y)
}

// Discover finds the nearest numutil.yaml from startDir and loads it.
// When none exists the defaults are returned with an empty path.
func Discover(startDir string) (domain.Config, string, error) {
	path, err := NewFinder().Find(startDir)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return domain.DefaultConfig(), "", nil
		}
		return domain.DefaultConfig(), "", err
	}

	cfg, err := Load(path)
	return cfg, path, err
}

func apply(path string, cfg domain.Config, y yamlConfig) (domain.Config, error) {
	n := y.Numutil

	if n.Table.Workers != nil {
		if *n.Table.Workers < 1 {
			return cfg, invalidField(path, "table.workers", "must be >= 1")
		}
		cfg.Table.Workers = *n.Table.Workers
	}

	if n.Store.Dir != "" {
		cfg.Store.Dir = n.Store.Dir
	}
	if n.Store.Index != nil {
		cfg.Store.Index = *n.Store.Index
	}

	if n.Logging.Dir != "" {
		cfg.Logging.Dir = n.Logging.Dir
	}
	if n.Logging.Debug != nil {
		cfg.Logging.Debug = *n.Logging.Debug
	}

	return cfg, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
