// Package proc runs helper processes and reports their exit status.
package proc

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os/exec"
	"time"
)

// Result describes a completed process.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Runner launches processes. A non-zero exit is reported in Result, not as an error.
type Runner struct{}

// NewRunner returns a new Runner instance.
func NewRunner() *Runner {
	return &Runner{}
}

// Run starts name with args, waits for it and returns its exit status.
// The error is non-nil only when the process could not be started or waited on.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	if name == "" {
		return Result{}, errors.New("command name is required")
	}
	cmd := exec.CommandContext(ctx, name, args...)
	configureCmd(cmd)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	res := Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	if err != nil {
		return res, err
	}
	return res, nil
}

// Start launches name with args without waiting. The process is reaped in
// the background and a non-zero exit is logged.
func (r *Runner) Start(name string, args ...string) error {
	if name == "" {
		return errors.New("command name is required")
	}
	cmd := exec.Command(name, args...)
	configureCmd(cmd)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Printf("proc: %s exited: %v", name, err)
		}
	}()
	return nil
}
