// Package outcome records and reports the result of dispatched actions.
package outcome

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Kind identifies which entry point produced an outcome.
type Kind string

const (
	// KindPress is a /press button action.
	KindPress Kind = "press"
	// KindExec is an /exec command action.
	KindExec Kind = "exec"
)

// Outcome describes one dispatched action from start to finish.
type Outcome struct {
	ID         string    `json:"id"`
	Kind       Kind      `json:"kind"`
	Target     string    `json:"target"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Success    bool      `json:"success"`
	FailedStep int       `json:"failedStep,omitempty"`
	Error      string    `json:"error,omitempty"`
	Warning    string    `json:"warning,omitempty"`
}

// Duration returns the elapsed time of a finished outcome.
func (o Outcome) Duration() time.Duration {
	if o.End.IsZero() {
		return 0
	}
	return o.End.Sub(o.Start)
}

// Reporter consumes finished outcomes.
type Reporter interface {
	Report(Outcome)
}

// Lister returns recently reported outcomes, newest first.
type Lister interface {
	Recent(limit int) ([]Outcome, error)
}

// stepFailure is implemented by errors that know which step failed.
type stepFailure interface {
	StepNumber() int
}

// Recorder stamps outcomes and hands them to a reporter.
type Recorder struct {
	reporter Reporter
	now      func() time.Time
}

// NewRecorder creates a recorder reporting to r.
func NewRecorder(r Reporter) *Recorder {
	return &Recorder{reporter: r, now: time.Now}
}

// SetNowFunc overrides the clock (for tests).
func (r *Recorder) SetNowFunc(fn func() time.Time) {
	if fn == nil {
		fn = time.Now
	}
	r.now = fn
}

// Begin creates an outcome for a starting action.
func (r *Recorder) Begin(kind Kind, target string) Outcome {
	return Outcome{
		ID:     uuid.NewString(),
		Kind:   kind,
		Target: target,
		Start:  r.now(),
	}
}

// Finish finalizes o with err and reports it.
func (r *Recorder) Finish(o Outcome, err error) Outcome {
	o.End = r.now()
	o.Success = err == nil
	if err != nil {
		o.Error = err.Error()
		var sf stepFailure
		if errors.As(err, &sf) {
			o.FailedStep = sf.StepNumber()
		}
	}
	if r.reporter != nil {
		r.reporter.Report(o)
	}
	return o
}

// Multi fans an outcome out to several reporters.
type Multi []Reporter

// Report implements Reporter.
func (m Multi) Report(o Outcome) {
	for _, r := range m {
		if r != nil {
			r.Report(o)
		}
	}
}
