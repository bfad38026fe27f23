//go:build !windows

// Package wininput defines Windows keyboard injection interfaces.
package wininput

// NoopInjector is a placeholder injector for non-Windows builds.
type NoopInjector struct{}

// NewInjector returns a non-functional injector on non-Windows platforms.
func NewInjector() (Injector, error) {
	return &NoopInjector{}, ErrUnsupported
}

// PressChord validates key names and returns ErrUnsupported.
func (n *NoopInjector) PressChord(keys []string) error {
	if _, err := lookupAll(keys); err != nil {
		return err
	}
	return ErrUnsupported
}

// PressKey validates the key name and returns ErrUnsupported.
func (n *NoopInjector) PressKey(key string) error {
	if _, err := Lookup(key); err != nil {
		return err
	}
	return ErrUnsupported
}

// KeyDown returns ErrUnsupported.
func (n *NoopInjector) KeyDown(string) error {
	return ErrUnsupported
}

// KeyUp returns ErrUnsupported.
func (n *NoopInjector) KeyUp(string) error {
	return ErrUnsupported
}
