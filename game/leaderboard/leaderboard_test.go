package leaderboard

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

var at = time.Date(2024, 3, 5, 9, 7, 2, 0, time.Local)

func scores(entries []Entry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Score
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRecordKeepsTopFive(t *testing.T) {
	lb := Load(&MemoryStore{}, zerolog.Nop())

	for _, s := range []int{50, 20, 90, 10, 70, 30} {
		if _, err := lb.Record(s, at, ""); err != nil {
			t.Fatalf("Record(%d): %v", s, err)
		}
	}

	want := []int{90, 70, 50, 30, 20}
	if got := scores(lb.Entries()); !equalInts(got, want) {
		t.Fatalf("entries = %v, want %v", got, want)
	}
}

func TestRecordTiesKeepInsertionOrder(t *testing.T) {
	lb := Load(nil, zerolog.Nop())
	lb.Record(40, at, "first")
	lb.Record(40, at, "second")

	top := lb.Top(2)
	if top[0].Run != "first" || top[1].Run != "second" {
		t.Fatalf("tie order = %q, %q", top[0].Run, top[1].Run)
	}
}

func TestRecordBelowFullBoardDropped(t *testing.T) {
	lb := Load(nil, zerolog.Nop())
	for _, s := range []int{100, 90, 80, 70, 60} {
		lb.Record(s, at, "")
	}
	lb.Record(10, at, "")

	if got := scores(lb.Entries()); got[len(got)-1] != 60 {
		t.Fatalf("entries = %v, lowest should stay 60", got)
	}
}

func TestRecordDateFormat(t *testing.T) {
	lb := Load(nil, zerolog.Nop())
	e, _ := lb.Record(10, at, "")
	if e.Date != "2024/03/05 09:07:02" {
		t.Fatalf("date = %q", e.Date)
	}
}

func TestLoadFailureStartsEmpty(t *testing.T) {
	lb := Load(&MemoryStore{Err: errors.New("disk gone")}, zerolog.Nop())
	if len(lb.Entries()) != 0 {
		t.Fatal("expected empty board")
	}
}

func TestSaveFailureKeepsEntry(t *testing.T) {
	store := &MemoryStore{}
	lb := Load(store, zerolog.Nop())
	store.Err = errors.New("read-only")

	if _, err := lb.Record(30, at, ""); err == nil {
		t.Fatal("expected save error")
	}
	if lb.Best() != 30 {
		t.Fatalf("best = %d, want 30", lb.Best())
	}
}

func TestLoadSanitizes(t *testing.T) {
	store := &MemoryStore{}
	store.Save([]Entry{{Score: 10}, {Score: -5}, {Score: 60}, {Score: 30}, {Score: 20}, {Score: 50}, {Score: 40}})

	lb := Load(store, zerolog.Nop())
	want := []int{60, 50, 40, 30, 20}
	if got := scores(lb.Entries()); !equalInts(got, want) {
		t.Fatalf("entries = %v, want %v", got, want)
	}
}

func TestTopBounds(t *testing.T) {
	lb := Load(nil, zerolog.Nop())
	lb.Record(10, at, "")

	if n := len(lb.Top(3)); n != 1 {
		t.Errorf("Top(3) len = %d, want 1", n)
	}
	if n := len(lb.Top(-1)); n != 0 {
		t.Errorf("Top(-1) len = %d, want 0", n)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "leaderboard.json")
	lb := Load(NewFileStore(path), zerolog.Nop())
	lb.Record(20, at, "a")
	lb.Record(80, at, "b")

	reloaded := Load(NewFileStore(path), zerolog.Nop())
	want := []int{80, 20}
	if got := scores(reloaded.Entries()); !equalInts(got, want) {
		t.Fatalf("reloaded = %v, want %v", got, want)
	}
}

func TestFileStoreMissingAndMalformed(t *testing.T) {
	dir := t.TempDir()

	entries, err := NewFileStore(filepath.Join(dir, "missing.json")).Load()
	if err != nil || len(entries) != 0 {
		t.Fatalf("missing file: %v, %v", entries, err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileStore(bad).Load(); err == nil {
		t.Fatal("expected parse error")
	}
	if lb := Load(NewFileStore(bad), zerolog.Nop()); len(lb.Entries()) != 0 {
		t.Fatal("malformed file should load empty")
	}
}

func TestRank(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "Unranked"},
		{10, "Bronze"},
		{99, "Bronze"},
		{100, "Silver"},
		{250, "Gold"},
		{390, "Platinum"},
		{400, "Diamond"},
		{590, "Star"},
		{600, "King"},
		{2000, "King"},
	}
	for _, tt := range tests {
		if got := Rank(tt.score); got != tt.want {
			t.Errorf("Rank(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
