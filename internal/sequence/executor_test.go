package sequence

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/frudas24/deskremote/internal/testutil"
)

// newTestExecutor wires an executor to a fake injector and sleeper sharing one event log.
func newTestExecutor(failAt int) (*Executor, *testutil.FakeInjector, *[]string) {
	events := &[]string{}
	inj := &testutil.FakeInjector{FailAt: failAt}
	inj.OnCall = func(c testutil.Call) { *events = append(*events, c.String()) }
	sleeper := testutil.NewFakeSleeper(events)
	exec := NewExecutor(inj)
	exec.SetSleepFunc(sleeper.Sleep)
	return exec, inj, events
}

// TestRun_ExecutesInOrder verifies steps run strictly in list order.
func TestRun_ExecutesInOrder(t *testing.T) {
	exec, _, events := newTestExecutor(0)
	seq := Of(Press("win-m"), Wait(200*time.Millisecond), Press("enter"))
	if err := exec.Run(seq); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	want := []string{"PressChord(win+m)", "Wait(200ms)", "PressKey(enter)"}
	if !reflect.DeepEqual(*events, want) {
		t.Fatalf("expected %v, got %v", want, *events)
	}
}

// TestRun_StopsAtFirstFailure verifies later steps are skipped after a failure.
func TestRun_StopsAtFirstFailure(t *testing.T) {
	exec, inj, _ := newTestExecutor(2)
	seq := Of(Press("a"), Press("b"), Press("c"), Press("d"), Press("e"))

	err := exec.Run(seq)
	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("expected StepError, got %v", err)
	}
	if stepErr.Index != 1 {
		t.Fatalf("expected failure at index 1 (step 2), got %d", stepErr.Index)
	}
	if !errors.Is(err, testutil.ErrInjected) {
		t.Fatalf("expected wrapped injector error, got %v", err)
	}
	want := []string{"PressKey(a)", "PressKey(b)"}
	if got := inj.CallStrings(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected calls %v, got %v", want, got)
	}
}

// TestRun_FailureSkipsWaits verifies waits after a failed step are not taken.
func TestRun_FailureSkipsWaits(t *testing.T) {
	exec, _, events := newTestExecutor(1)
	seq := Of(Press("win-m"), Wait(time.Second), Press("enter"))
	if err := exec.Run(seq); err == nil {
		t.Fatalf("expected error")
	}
	if len(*events) != 1 {
		t.Fatalf("expected only the failing press, got %v", *events)
	}
}

// TestRun_Hold verifies hold steps bracket the wait with down/up.
func TestRun_Hold(t *testing.T) {
	exec, _, events := newTestExecutor(0)
	if err := exec.Run(Of(Hold("shift", 500*time.Millisecond))); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	want := []string{"KeyDown(shift)", "Wait(500ms)", "KeyUp(shift)"}
	if !reflect.DeepEqual(*events, want) {
		t.Fatalf("expected %v, got %v", want, *events)
	}
}

// TestRun_UnknownKind verifies unknown step kinds fail the sequence.
func TestRun_UnknownKind(t *testing.T) {
	exec, _, _ := newTestExecutor(0)
	err := exec.Run(Sequence{{Kind: "teleport"}})
	var stepErr *StepError
	if !errors.As(err, &stepErr) || stepErr.Index != 0 {
		t.Fatalf("expected StepError at index 0, got %v", err)
	}
}

// TestRepeat_Layout verifies repeat emits press/wait pairs.
func TestRepeat_Layout(t *testing.T) {
	steps := Repeat("volumeup", 3, 10*time.Millisecond)
	if len(steps) != 6 {
		t.Fatalf("expected 6 steps, got %d", len(steps))
	}
	for i, s := range steps {
		wantKind := StepPress
		if i%2 == 1 {
			wantKind = StepWait
		}
		if s.Kind != wantKind {
			t.Fatalf("step %d kind = %s, want %s", i, s.Kind, wantKind)
		}
	}
	if got := Repeat("x", 2, 0); len(got) != 2 {
		t.Fatalf("expected presses only without interval, got %d", len(got))
	}
}

// TestStepError_Message verifies the error names the 1-based step.
func TestStepError_Message(t *testing.T) {
	err := &StepError{Index: 1, Step: Press("alt-f4"), Err: errors.New("boom")}
	if err.Error() != "step 2 (press alt-f4): boom" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
