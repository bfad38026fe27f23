package outcome

import (
	"path/filepath"
	"testing"
	"time"
)

// TestSQLiteStore_ReportRecent verifies outcomes persist and list newest first.
func TestSQLiteStore_ReportRecent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "outcomes.db")
	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer store.Close()

	start := time.Unix(1700000000, 0).UTC()
	store.Report(Outcome{ID: "one", Kind: KindPress, Target: "enter", Start: start, End: start.Add(time.Millisecond), Success: true})
	store.Report(Outcome{ID: "two", Kind: KindExec, Target: "sleep", Start: start, End: start.Add(time.Second), FailedStep: 3, Error: "boom"})

	got, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(got))
	}
	if got[0].ID != "two" || got[0].Success || got[0].FailedStep != 3 || got[0].Error != "boom" {
		t.Fatalf("unexpected newest outcome %+v", got[0])
	}
	if got[1].ID != "one" || !got[1].Success || got[1].Kind != KindPress {
		t.Fatalf("unexpected oldest outcome %+v", got[1])
	}
	if got[0].Duration() != time.Second {
		t.Fatalf("expected 1s duration, got %s", got[0].Duration())
	}
}

// TestSQLiteStore_Reopen verifies data survives reopening the database.
func TestSQLiteStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outcomes.db")
	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	now := time.Now()
	store.Report(Outcome{ID: "persisted", Kind: KindExec, Target: "bsod", Start: now, End: now, Success: true})
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	store, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()
	got, err := store.Recent(1)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "persisted" {
		t.Fatalf("unexpected outcomes %+v", got)
	}
}

// TestOpenSQLite_EmptyPath verifies a path is required.
func TestOpenSQLite_EmptyPath(t *testing.T) {
	if _, err := OpenSQLite(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
