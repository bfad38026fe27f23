//go:build windows

package launcher

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// swShowNormal activates and displays the launched window.
const swShowNormal = 1

// ShellLauncher opens targets with ShellExecute("open").
type ShellLauncher struct{}

// New returns the platform launcher.
func New() Launcher {
	return &ShellLauncher{}
}

// OpenURL opens url in the default browser.
func (l *ShellLauncher) OpenURL(url string) error {
	return shellOpen(url, "")
}

// OpenApp opens target with its associated application.
func (l *ShellLauncher) OpenApp(target string, args ...string) error {
	return shellOpen(target, joinArgs(args))
}

// shellOpen invokes ShellExecute with the "open" verb.
func shellOpen(file, params string) error {
	verb, err := windows.UTF16PtrFromString("open")
	if err != nil {
		return err
	}
	filePtr, err := windows.UTF16PtrFromString(file)
	if err != nil {
		return err
	}
	var paramsPtr *uint16
	if params != "" {
		paramsPtr, err = windows.UTF16PtrFromString(params)
		if err != nil {
			return err
		}
	}
	if err := windows.ShellExecute(0, verb, filePtr, paramsPtr, nil, swShowNormal); err != nil {
		return fmt.Errorf("ShellExecute %s: %w", file, err)
	}
	return nil
}
