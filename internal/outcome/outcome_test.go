package outcome

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

type failedAt int

func (f failedAt) Error() string   { return fmt.Sprintf("failed at %d", int(f)) }
func (f failedAt) StepNumber() int { return int(f) }

type captureReporter struct {
	got []Outcome
}

func (c *captureReporter) Report(o Outcome) { c.got = append(c.got, o) }

// fixedClock returns a clock advancing by step on every call.
func fixedClock(step time.Duration) func() time.Time {
	now := time.Unix(1700000000, 0)
	return func() time.Time {
		t := now
		now = now.Add(step)
		return t
	}
}

// TestRecorder_Success verifies successful outcomes are stamped and reported.
func TestRecorder_Success(t *testing.T) {
	rep := &captureReporter{}
	rec := NewRecorder(rep)
	rec.SetNowFunc(fixedClock(200 * time.Millisecond))

	o := rec.Finish(rec.Begin(KindExec, "shutdown"), nil)
	if !o.Success || o.Error != "" || o.FailedStep != 0 {
		t.Fatalf("unexpected outcome %+v", o)
	}
	if o.ID == "" {
		t.Fatalf("expected an id")
	}
	if o.Duration() != 200*time.Millisecond {
		t.Fatalf("expected 200ms duration, got %s", o.Duration())
	}
	if len(rep.got) != 1 || rep.got[0].ID != o.ID {
		t.Fatalf("expected one reported outcome, got %+v", rep.got)
	}
}

// TestRecorder_FailureRecordsStep verifies step-aware errors populate FailedStep.
func TestRecorder_FailureRecordsStep(t *testing.T) {
	rep := &captureReporter{}
	rec := NewRecorder(rep)
	err := fmt.Errorf("shutdown: %w", failedAt(2))

	o := rec.Finish(rec.Begin(KindExec, "shutdown"), err)
	if o.Success || o.FailedStep != 2 || o.Error == "" {
		t.Fatalf("unexpected outcome %+v", o)
	}
}

// TestRecorder_PlainFailure verifies other errors leave FailedStep unset.
func TestRecorder_PlainFailure(t *testing.T) {
	rec := NewRecorder(nil)
	o := rec.Finish(rec.Begin(KindPress, "win-m"), errors.New("boom"))
	if o.Success || o.FailedStep != 0 || o.Error != "boom" {
		t.Fatalf("unexpected outcome %+v", o)
	}
}

// TestMulti_FansOut verifies every reporter receives the outcome.
func TestMulti_FansOut(t *testing.T) {
	a, b := &captureReporter{}, &captureReporter{}
	Multi{a, nil, b}.Report(Outcome{ID: "x"})
	if len(a.got) != 1 || len(b.got) != 1 {
		t.Fatalf("expected fan-out, got %d and %d", len(a.got), len(b.got))
	}
}

// TestJournal_RecentNewestFirst verifies ring order and capacity.
func TestJournal_RecentNewestFirst(t *testing.T) {
	j := NewJournal(3)
	for i := 1; i <= 5; i++ {
		j.Report(Outcome{ID: fmt.Sprint(i)})
	}
	got, err := j.Recent(0)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(got) != 3 || got[0].ID != "5" || got[1].ID != "4" || got[2].ID != "3" {
		t.Fatalf("unexpected journal contents %+v", got)
	}
	got, _ = j.Recent(1)
	if len(got) != 1 || got[0].ID != "5" {
		t.Fatalf("unexpected limited contents %+v", got)
	}
}

// TestJournal_PartiallyFilled verifies a journal that has not wrapped.
func TestJournal_PartiallyFilled(t *testing.T) {
	j := NewJournal(10)
	j.Report(Outcome{ID: "a"})
	j.Report(Outcome{ID: "b"})
	got, _ := j.Recent(5)
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("unexpected journal contents %+v", got)
	}
}
