// Package testutil provides test doubles shared across packages.
package testutil

import (
	"errors"
	"strings"
	"sync"

	"github.com/frudas24/deskremote/internal/wininput"
)

// ErrInjected is returned by FakeInjector when a failure is scheduled.
var ErrInjected = errors.New("injected failure")

// Call records a single injected action.
type Call struct {
	Name string
	Keys []string
}

// String renders a call as "Name(k1+k2)".
func (c Call) String() string {
	return c.Name + "(" + strings.Join(c.Keys, "+") + ")"
}

// FakeInjector implements wininput.Injector and records calls for tests.
// FailAt makes the Nth call (1-based) return Err (ErrInjected when nil).
type FakeInjector struct {
	mu     sync.Mutex
	calls  []Call
	FailAt int
	Err    error
	// OnCall, when set, runs after each call is recorded.
	OnCall func(Call)
}

// Ensure FakeInjector implements the interface.
var _ wininput.Injector = (*FakeInjector)(nil)

// PressChord records a chord press.
func (f *FakeInjector) PressChord(keys []string) error {
	return f.record(Call{Name: "PressChord", Keys: append([]string(nil), keys...)})
}

// PressKey records a single key press.
func (f *FakeInjector) PressKey(key string) error {
	return f.record(Call{Name: "PressKey", Keys: []string{key}})
}

// KeyDown records a key down.
func (f *FakeInjector) KeyDown(key string) error {
	return f.record(Call{Name: "KeyDown", Keys: []string{key}})
}

// KeyUp records a key up.
func (f *FakeInjector) KeyUp(key string) error {
	return f.record(Call{Name: "KeyUp", Keys: []string{key}})
}

// Calls returns a copy of the recorded calls.
func (f *FakeInjector) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallStrings returns recorded calls rendered with Call.String.
func (f *FakeInjector) CallStrings() []string {
	calls := f.Calls()
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.String()
	}
	return out
}

// record stores the call and returns the scheduled failure, if any.
func (f *FakeInjector) record(c Call) error {
	f.mu.Lock()
	f.calls = append(f.calls, c)
	n := len(f.calls)
	hook := f.OnCall
	var err error
	if f.FailAt > 0 && n == f.FailAt {
		err = f.Err
		if err == nil {
			err = ErrInjected
		}
	}
	f.mu.Unlock()
	if hook != nil {
		hook(c)
	}
	return err
}
