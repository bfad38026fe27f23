//go:build !windows

// Package proc runs helper processes and reports their exit status.
package proc

import "os/exec"

// configureCmd is a no-op outside Windows.
func configureCmd(*exec.Cmd) {}
