//go:build windows

// Package wininput defines Windows keyboard injection interfaces.
package wininput

import "github.com/lxn/win"

// WinInjector injects keyboard input using WinAPI.
type WinInjector struct{}

// NewInjector returns a Windows input injector.
func NewInjector() (Injector, error) {
	return &WinInjector{}, nil
}

// sendKeyboardInput dispatches a single virtual-key transition.
func sendKeyboardInput(spec KeySpec, up bool) error {
	var flags uint32
	if spec.Extended {
		flags |= win.KEYEVENTF_EXTENDEDKEY
	}
	if up {
		flags |= win.KEYEVENTF_KEYUP
	}
	input := win.INPUT{
		Type: win.INPUT_KEYBOARD,
		Ki: win.KEYBDINPUT{
			WVk:     spec.VK,
			DwFlags: flags,
		},
	}
	if win.SendInput(1, &input, int32(unsafeSizeofInput())) != 1 {
		return win.GetLastError()
	}
	return nil
}

// unsafeSizeofInput returns the input struct size for SendInput.
func unsafeSizeofInput() uintptr {
	return unsafeSizeofInputValue
}

var unsafeSizeofInputValue = uintptr(win.SizeofINPUT)
