//go:build windows

// Package wininput defines Windows keyboard injection interfaces.
package wininput

// PressChord presses every key together, releasing them in reverse order.
func (w *WinInjector) PressChord(keys []string) error {
	return pressChord(sendKeyboardInput, keys)
}

// PressKey sends a single key press and release.
func (w *WinInjector) PressKey(key string) error {
	return tapKey(sendKeyboardInput, key)
}

// KeyDown holds a key down.
func (w *WinInjector) KeyDown(key string) error {
	return transition(sendKeyboardInput, key, false)
}

// KeyUp releases a held key.
func (w *WinInjector) KeyUp(key string) error {
	return transition(sendKeyboardInput, key, true)
}
