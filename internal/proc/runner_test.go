package proc

import (
	"context"
	"runtime"
	"strings"
	"testing"
)

// skipOnWindows skips tests that rely on a POSIX shell.
func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires /bin/sh")
	}
}

// TestRun_NonZeroExitIsNotAnError verifies exit codes are reported in the result.
func TestRun_NonZeroExitIsNotAnError(t *testing.T) {
	skipOnWindows(t)
	res, err := NewRunner().Run(context.Background(), "sh", "-c", "echo oops 1>&2; exit 3")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if res.ExitCode != 3 {
		t.Fatalf("expected exit code 3, got %d", res.ExitCode)
	}
	if strings.TrimSpace(res.Stderr) != "oops" {
		t.Fatalf("unexpected stderr %q", res.Stderr)
	}
}

// TestRun_CapturesStdout verifies stdout is captured on success.
func TestRun_CapturesStdout(t *testing.T) {
	skipOnWindows(t)
	res, err := NewRunner().Run(context.Background(), "sh", "-c", "echo hello")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.ExitCode != 0 || strings.TrimSpace(res.Stdout) != "hello" {
		t.Fatalf("unexpected result %+v", res)
	}
}

// TestRun_LaunchFailure verifies a missing binary is an error.
func TestRun_LaunchFailure(t *testing.T) {
	_, err := NewRunner().Run(context.Background(), "deskremote-definitely-missing-binary")
	if err == nil {
		t.Fatalf("expected launch error")
	}
}

// TestRun_EmptyName verifies an empty command name is rejected.
func TestRun_EmptyName(t *testing.T) {
	if _, err := NewRunner().Run(context.Background(), ""); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if err := NewRunner().Start(""); err == nil {
		t.Fatalf("expected error for empty name")
	}
}
