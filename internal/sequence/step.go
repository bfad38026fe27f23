// Package sequence executes ordered, timed key sequences.
package sequence

import (
	"fmt"
	"time"

	"github.com/frudas24/deskremote/internal/keys"
)

// StepKind identifies the kind of step to execute.
type StepKind string

const (
	// StepPress presses a chord (or a single key) and releases it.
	StepPress StepKind = "press"
	// StepWait pauses for a fixed duration.
	StepWait StepKind = "wait"
	// StepHold holds a key down for a fixed duration.
	StepHold StepKind = "hold"
)

// Step is one atomic unit of a sequence.
type Step struct {
	Kind     StepKind
	Keys     keys.Chord
	Duration time.Duration
}

// String renders the step for logs.
func (s Step) String() string {
	switch s.Kind {
	case StepPress:
		return "press " + s.Keys.String()
	case StepWait:
		return "wait " + s.Duration.String()
	case StepHold:
		return fmt.Sprintf("hold %s %s", s.Keys.String(), s.Duration)
	default:
		return string(s.Kind)
	}
}

// Sequence is an ordered list of steps.
type Sequence []Step

// Press returns a step pressing the chord described by token ("win-m", "enter").
func Press(token string) Step {
	return Step{Kind: StepPress, Keys: keys.Parse(token)}
}

// Wait returns an unconditional delay step.
func Wait(d time.Duration) Step {
	return Step{Kind: StepWait, Duration: d}
}

// Hold returns a step holding key down for d.
func Hold(key string, d time.Duration) Step {
	return Step{Kind: StepHold, Keys: keys.Chord{key}, Duration: d}
}

// Repeat returns n presses of key, each followed by a wait of interval.
func Repeat(key string, n int, interval time.Duration) []Step {
	out := make([]Step, 0, 2*n)
	for i := 0; i < n; i++ {
		out = append(out, Press(key))
		if interval > 0 {
			out = append(out, Wait(interval))
		}
	}
	return out
}

// Of flattens steps and step groups into a sequence.
func Of(parts ...any) Sequence {
	var seq Sequence
	for _, p := range parts {
		switch v := p.(type) {
		case Step:
			seq = append(seq, v)
		case []Step:
			seq = append(seq, v...)
		case Sequence:
			seq = append(seq, v...)
		default:
			panic(fmt.Sprintf("sequence.Of: unsupported part %T", p))
		}
	}
	return seq
}
