// Package wininput defines Windows keyboard injection interfaces.
package wininput

import "errors"

var (
	// ErrUnknownKey indicates a key name with no virtual-key mapping.
	ErrUnknownKey = errors.New("unknown key")
	// ErrUnsupported indicates WinAPI input injection is not available.
	ErrUnsupported = errors.New("wininput is only supported on Windows")
)

// Injector defines the keyboard operations used by the dispatch engine.
type Injector interface {
	PressChord(keys []string) error
	PressKey(key string) error
	KeyDown(key string) error
	KeyUp(key string) error
}
