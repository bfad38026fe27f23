// Package command resolves command names to handlers and executes them.
package command

import (
	"time"

	"github.com/frudas24/deskremote/internal/sequence"
)

// UI settle and navigation timings. These emulate the time the shell needs to
// react and must stay fixed.
const (
	settleDelay    = 200 * time.Millisecond
	menuKeyDelay   = 50 * time.Millisecond
	volumeSteps    = 10
	volumeKeyDelay = 10 * time.Millisecond
	sleepMenuDown  = 5
	sleepMenuUp    = 2
)

// Handler is one command variant. The set is closed: only types in this
// package implement it.
type Handler interface {
	// Name returns the command name the handler was resolved from.
	Name() string
	handler()
}

// Shutdown opens the shell shutdown dialog and confirms the default action.
type Shutdown struct{}

// Sleep opens the shutdown dialog and selects the sleep entry.
type Sleep struct{}

// BSOD runs the configured bsod helper process.
type BSOD struct{}

// Direction is the volume change direction.
type Direction int

const (
	// Up raises the volume.
	Up Direction = iota
	// Down lowers the volume.
	Down
)

// String returns "up" or "down".
func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

// Key returns the media key name for the direction.
func (d Direction) Key() string {
	if d == Down {
		return "volumedown"
	}
	return "volumeup"
}

// VolumeAdjust taps the volume media key repeatedly.
type VolumeAdjust struct {
	Direction Direction
}

// OpenWebsite opens a site from the configured site table.
type OpenWebsite struct {
	Site string
}

// OpenApplication opens the camera application.
type OpenApplication struct{}

// Name implements Handler.
func (Shutdown) Name() string { return "shutdown" }

// Name implements Handler.
func (Sleep) Name() string { return "sleep" }

// Name implements Handler.
func (BSOD) Name() string { return "bsod" }

// Name implements Handler.
func (v VolumeAdjust) Name() string { return "volume-" + v.Direction.String() }

// Name implements Handler.
func (o OpenWebsite) Name() string { return "open-" + o.Site }

// Name implements Handler.
func (OpenApplication) Name() string { return "open-camera" }

func (Shutdown) handler()        {}
func (Sleep) handler()           {}
func (BSOD) handler()            {}
func (VolumeAdjust) handler()    {}
func (OpenWebsite) handler()     {}
func (OpenApplication) handler() {}

// ShutdownSequence minimizes everything, opens the shutdown dialog and confirms.
func ShutdownSequence() sequence.Sequence {
	return sequence.Of(
		openShutdownDialog(),
		sequence.Press("enter"),
	)
}

// SleepSequence opens the shutdown dialog, moves the selection to "Sleep" and confirms.
func SleepSequence() sequence.Sequence {
	return sequence.Of(
		openShutdownDialog(),
		sequence.Repeat("down", sleepMenuDown, menuKeyDelay),
		sequence.Repeat("up", sleepMenuUp, menuKeyDelay),
		sequence.Press("enter"),
	)
}

// VolumeSequence taps the media key for d ten times.
func VolumeSequence(d Direction) sequence.Sequence {
	return sequence.Of(sequence.Repeat(d.Key(), volumeSteps, volumeKeyDelay))
}

// openShutdownDialog is the shared opening of Shutdown and Sleep.
func openShutdownDialog() sequence.Sequence {
	return sequence.Of(
		sequence.Press("win-m"),
		sequence.Wait(settleDelay),
		sequence.Press("alt-f4"),
		sequence.Wait(settleDelay),
	)
}
