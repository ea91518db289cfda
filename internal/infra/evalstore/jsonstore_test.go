package evalstore

import (
	"encoding/json"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/numutil/internal/domain"
)

func fixedNow() time.Time {
	return time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)
}

func TestSave_CreatesJSONFile(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.StoreConfig{Dir: "runs"}, WithNow(fixedNow))

	v, _ := new(big.Int).SetString("354224848179261915075", 10)
	id, err := store.Save(domain.Evaluation{
		Function: domain.FuncFib2,
		N:        100,
		Value:    v,
		Duration: 3 * time.Microsecond,
	})
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected uuid id, got %q: %v", id, err)
	}

	wantFile := filepath.Join(tmp, "runs", "20260203T101112Z_fib2-n100.json")
	b, err := os.ReadFile(wantFile)
	if err != nil {
		t.Fatalf("expected file at %s: %v", wantFile, err)
	}

	var decoded Artifact
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Value != "354224848179261915075" {
		t.Fatalf("expected exact value, got %q", decoded.Value)
	}
	if decoded.ID != id || decoded.Function != "fib2" || decoded.N != 100 || decoded.Digits != 21 {
		t.Fatalf("unexpected artifact: %+v", decoded)
	}
	if decoded.DurationNS != 3000 {
		t.Fatalf("expected duration 3000ns, got %d", decoded.DurationNS)
	}

	if _, err := os.Stat(filepath.Join(tmp, "runs", "index.jsonl")); !os.IsNotExist(err) {
		t.Fatalf("expected no index when disabled, stat err=%v", err)
	}
}

func TestSave_KeepsExistingIDAndStartTime(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.StoreConfig{}, WithIDFunc(func() string { return "unused" }))

	start := time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)
	id, err := store.Save(domain.Evaluation{
		ID:        "given",
		Function:  domain.FuncFib,
		N:         -3,
		Value:     big.NewInt(-3),
		StartedAt: start,
	})
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if id != "given" {
		t.Fatalf("expected given id, got %q", id)
	}

	wantFile := filepath.Join(tmp, defaultDir, "20251231T235959Z_fib-n-3.json")
	if _, err := os.Stat(wantFile); err != nil {
		t.Fatalf("expected file at %s: %v", wantFile, err)
	}
}

func TestSave_AppendsIndex(t *testing.T) {
	tmp := t.TempDir()
	n := 0
	store := NewJSONStore(tmp, domain.StoreConfig{Dir: "runs", Index: true},
		WithNow(fixedNow),
		WithIDFunc(func() string { n++; return "id-" + string(rune('0'+n)) }),
	)

	for _, k := range []int{5, 6} {
		if _, err := store.Save(domain.Evaluation{Function: domain.FuncFact, N: k, Value: big.NewInt(1)}); err != nil {
			t.Fatalf("Save error: %v", err)
		}
	}

	b, err := os.ReadFile(filepath.Join(tmp, "runs", "index.jsonl"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 index lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], `"id":"id-1"`) || !strings.Contains(lines[1], `"n":6`) {
		t.Fatalf("unexpected index contents: %s", b)
	}
}

func TestSave_MkdirFailure(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewJSONStore(blocker, domain.StoreConfig{Dir: "runs"})
	_, err := store.Save(domain.Evaluation{Function: domain.FuncFib2})
	if !domain.IsKind(err, domain.KindExecution) {
		t.Fatalf("expected KindExecution, got %v", err)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"fib2 n100": "fib2-n100",
		"fib n-3":   "fib-n-3",
		"  ":        "",
		"A__B":      "a-b",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDir_Absolute(t *testing.T) {
	abs := t.TempDir()
	s := NewJSONStore("/ignored", domain.StoreConfig{Dir: abs})
	if s.Dir() != abs {
		t.Fatalf("expected %s, got %s", abs, s.Dir())
	}
}
