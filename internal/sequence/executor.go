// Package sequence executes ordered, timed key sequences.
package sequence

import (
	"fmt"
	"log"
	"time"

	"github.com/frudas24/deskremote/internal/wininput"
)

// StepError reports the step that aborted a sequence.
type StepError struct {
	Index int
	Step  Step
	Err   error
}

// Error implements error.
func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.StepNumber(), e.Step, e.Err)
}

// StepNumber returns the 1-based position of the failing step.
func (e *StepError) StepNumber() int {
	return e.Index + 1
}

// Unwrap returns the injector error.
func (e *StepError) Unwrap() error {
	return e.Err
}

// Executor runs sequences against an injector on the calling goroutine.
type Executor struct {
	injector wininput.Injector
	sleep    func(time.Duration)
	debug    bool
}

// NewExecutor creates an executor that sleeps in real time.
func NewExecutor(injector wininput.Injector) *Executor {
	return &Executor{
		injector: injector,
		sleep:    time.Sleep,
	}
}

// SetSleepFunc overrides the sleep function (for tests).
func (e *Executor) SetSleepFunc(fn func(time.Duration)) {
	if fn == nil {
		fn = time.Sleep
	}
	e.sleep = fn
}

// SetDebug enables per-step trace logging.
func (e *Executor) SetDebug(debug bool) {
	e.debug = debug
}

// Run executes every step in order and stops at the first failing step.
// Keys already pressed are not undone.
func (e *Executor) Run(seq Sequence) error {
	for i, step := range seq {
		if e.debug {
			log.Printf("sequence: step %d/%d %s", i+1, len(seq), step)
		}
		if err := e.runStep(step); err != nil {
			return &StepError{Index: i, Step: step, Err: err}
		}
	}
	return nil
}

// Press presses a single chord synchronously.
func (e *Executor) Press(step Step) error {
	return e.runStep(step)
}

// runStep executes a single step.
func (e *Executor) runStep(step Step) error {
	switch step.Kind {
	case StepPress:
		if len(step.Keys) == 1 {
			return e.injector.PressKey(step.Keys[0])
		}
		return e.injector.PressChord(step.Keys)
	case StepWait:
		e.sleep(step.Duration)
		return nil
	case StepHold:
		if len(step.Keys) != 1 {
			return fmt.Errorf("hold needs exactly one key, got %d", len(step.Keys))
		}
		if err := e.injector.KeyDown(step.Keys[0]); err != nil {
			return err
		}
		e.sleep(step.Duration)
		return e.injector.KeyUp(step.Keys[0])
	default:
		return fmt.Errorf("unknown step kind %q", step.Kind)
	}
}
