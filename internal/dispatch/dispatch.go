// Package dispatch runs button presses and commands and reports their outcomes.
//
// Presses run on the caller. Commands run on their own goroutine so callers
// are never delayed by the waits inside a sequence. Concurrent commands are
// not serialized: two commands dispatched close together may interleave their
// key events at the OS level.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime/debug"
	"sync"

	"github.com/frudas24/deskremote/internal/command"
	"github.com/frudas24/deskremote/internal/keys"
	"github.com/frudas24/deskremote/internal/outcome"
	"github.com/frudas24/deskremote/internal/sequence"
)

// ErrClosing is returned by Exec once Wait has started.
var ErrClosing = errors.New("dispatcher is shutting down")

// Executor runs a resolved handler to completion.
type Executor interface {
	Execute(ctx context.Context, h command.Handler) (command.Result, error)
}

// Presser presses a single chord step synchronously.
type Presser interface {
	Press(step sequence.Step) error
}

// Dispatcher resolves identifiers and runs them.
type Dispatcher struct {
	registry *command.Registry
	engine   Executor
	presser  Presser
	recorder *outcome.Recorder
	spawn    func(func())
	mu       sync.Mutex
	closing  bool
	inflight sync.WaitGroup
}

// New creates a dispatcher.
func New(registry *command.Registry, engine Executor, presser Presser, recorder *outcome.Recorder) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		engine:   engine,
		presser:  presser,
		recorder: recorder,
		spawn:    func(fn func()) { go fn() },
	}
}

// Commands returns the command vocabulary.
func (d *Dispatcher) Commands() []string {
	return d.registry.Names()
}

// Press parses button into a chord and presses it on the calling goroutine.
func (d *Dispatcher) Press(button string) error {
	chord, err := keys.ParseToken(button)
	if err != nil {
		return err
	}
	o := d.recorder.Begin(outcome.KindPress, chord.String())
	err = d.presser.Press(sequence.Step{Kind: sequence.StepPress, Keys: chord})
	d.recorder.Finish(o, err)
	return err
}

// Exec resolves name and dispatches it. Only resolution and shutdown errors are returned;
// execution results are reported through the recorder. It returns the outcome id.
func (d *Dispatcher) Exec(name string) (string, error) {
	h, ok := d.registry.Resolve(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", command.ErrUnknownCommand, name)
	}
	return d.Dispatch(h)
}

// Dispatch runs h on a new goroutine and returns immediately. It refuses new
// work with ErrClosing once Wait has been called.
func (d *Dispatcher) Dispatch(h command.Handler) (string, error) {
	d.mu.Lock()
	if d.closing {
		d.mu.Unlock()
		return "", ErrClosing
	}
	d.inflight.Add(1)
	d.mu.Unlock()

	o := d.recorder.Begin(outcome.KindExec, h.Name())
	d.spawn(func() {
		defer d.inflight.Done()
		d.run(o, h)
	})
	return o.ID, nil
}

// Run resolves name and executes it on the calling goroutine.
func (d *Dispatcher) Run(name string) (outcome.Outcome, error) {
	h, ok := d.registry.Resolve(name)
	if !ok {
		return outcome.Outcome{}, fmt.Errorf("%w: %s", command.ErrUnknownCommand, name)
	}
	o := d.run(d.recorder.Begin(outcome.KindExec, h.Name()), h)
	return o, nil
}

// Wait stops accepting commands, then blocks until all dispatched commands
// finish or ctx is done.
func (d *Dispatcher) Wait(ctx context.Context) error {
	d.mu.Lock()
	d.closing = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run executes h and finalizes o. Panics become failed outcomes.
func (d *Dispatcher) run(o outcome.Outcome, h command.Handler) (result outcome.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("exec: %s panicked: %v\n%s", h.Name(), r, debug.Stack())
			result = d.recorder.Finish(o, fmt.Errorf("panic: %v", r))
		}
	}()
	res, err := d.engine.Execute(context.Background(), h)
	o.Warning = res.Warning
	return d.recorder.Finish(o, err)
}
