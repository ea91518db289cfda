package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/numutil/internal/domain"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	p := filepath.Join(dir, DefaultFileName)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestLoad_AppliesDefaults(t *testing.T) {
	// Partial config (only workers)
	p := writeConfig(t, t.TempDir(), "numutil:\n  table:\n    workers: 2\n")

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Table.Workers != 2 {
		t.Fatalf("expected workers=2, got=%d", cfg.Table.Workers)
	}
	if cfg.Store.Dir != "runs" || !cfg.Store.Index {
		t.Fatalf("unexpected store defaults: %+v", cfg.Store)
	}
	if cfg.Logging.Dir != "" || cfg.Logging.Debug {
		t.Fatalf("expected logging off by default, got %+v", cfg.Logging)
	}
}

func TestLoad_FullConfig(t *testing.T) {
	content := `numutil:
  table:
    workers: 8
  store:
    dir: artifacts
    index: false
  logging:
    dir: logs
    debug: true
`
	cfg, err := Load(writeConfig(t, t.TempDir(), content))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Table.Workers != 8 {
		t.Fatalf("expected workers=8, got=%d", cfg.Table.Workers)
	}
	if cfg.Store.Dir != "artifacts" || cfg.Store.Index {
		t.Fatalf("unexpected store: %+v", cfg.Store)
	}
	if cfg.Logging.Dir != "logs" || !cfg.Logging.Debug {
		t.Fatalf("unexpected logging: %+v", cfg.Logging)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	p := writeConfig(t, t.TempDir(), "numutil: [unclosed\n")
	_, err := Load(p)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
	if !strings.Contains(err.Error(), p) {
		t.Fatalf("expected path in error, got %v", err)
	}
}

func TestLoad_RejectsZeroWorkers(t *testing.T) {
	p := writeConfig(t, t.TempDir(), "numutil:\n  table:\n    workers: 0\n")
	_, err := Load(p)
	if err == nil || !strings.Contains(err.Error(), "table.workers") {
		t.Fatalf("expected table.workers error, got %v", err)
	}
}

func TestDiscover_NoFileYieldsDefaults(t *testing.T) {
	cfg, path, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}
	if path != "" {
		t.Fatalf("expected empty path, got %q", path)
	}
	if cfg != domain.DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestDiscover_FindsNearestFile(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "numutil:\n  table:\n    workers: 10\n")

	cfg, path, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}
	if path != want {
		t.Fatalf("expected path %s, got %s", want, path)
	}
	if cfg.Table.Workers != 10 {
		t.Fatalf("expected workers=10, got %d", cfg.Table.Workers)
	}
}
