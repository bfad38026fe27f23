// Package command resolves command names to handlers and executes them.
package command

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/frudas24/deskremote/internal/config"
	"github.com/frudas24/deskremote/internal/launcher"
	"github.com/frudas24/deskremote/internal/proc"
	"github.com/frudas24/deskremote/internal/sequence"
)

// ProcessRunner runs a helper process to completion.
type ProcessRunner interface {
	Run(ctx context.Context, name string, args ...string) (proc.Result, error)
}

// Result carries non-fatal details of a finished handler.
type Result struct {
	Warning string
}

// Engine executes handlers against the OS collaborators.
type Engine struct {
	cfg      config.Config
	executor *sequence.Executor
	launcher launcher.Launcher
	procs    ProcessRunner
	spawn    func(func())
}

// NewEngine creates an engine with its collaborators wired.
func NewEngine(cfg config.Config, executor *sequence.Executor, l launcher.Launcher, procs ProcessRunner) *Engine {
	return &Engine{
		cfg:      cfg,
		executor: executor,
		launcher: l,
		procs:    procs,
		spawn:    func(fn func()) { go fn() },
	}
}

// SetSpawnFunc overrides how detached work (browser launches) is started.
func (e *Engine) SetSpawnFunc(fn func(func())) {
	if fn == nil {
		fn = func(f func()) { go f() }
	}
	e.spawn = fn
}

// Execute runs h on the calling goroutine.
func (e *Engine) Execute(ctx context.Context, h Handler) (Result, error) {
	switch h := h.(type) {
	case Shutdown:
		return Result{}, e.executor.Run(ShutdownSequence())
	case Sleep:
		return Result{}, e.executor.Run(SleepSequence())
	case VolumeAdjust:
		return Result{}, e.executor.Run(VolumeSequence(h.Direction))
	case BSOD:
		return e.runBSOD(ctx)
	case OpenWebsite:
		return Result{}, e.openWebsite(h.Site)
	case OpenApplication:
		return Result{}, e.openCamera()
	case nil:
		return Result{}, fmt.Errorf("%w: nil handler", ErrInvalidArgument)
	default:
		return Result{}, fmt.Errorf("%w: unsupported handler %T", ErrInvalidArgument, h)
	}
}

// runBSOD runs the bsod helper. A non-zero exit is a warning.
func (e *Engine) runBSOD(ctx context.Context) (Result, error) {
	res, err := e.procs.Run(ctx, e.cfg.BSODCommand)
	if err != nil {
		return Result{}, fmt.Errorf("start %s: %w", e.cfg.BSODCommand, err)
	}
	log.Printf("exec: %s exited with code %d", e.cfg.BSODCommand, res.ExitCode)
	if res.ExitCode == 0 {
		return Result{}, nil
	}
	warning := fmt.Sprintf("%s exited with code %d", e.cfg.BSODCommand, res.ExitCode)
	if stderr := strings.TrimSpace(res.Stderr); stderr != "" {
		warning += ": " + stderr
	}
	return Result{Warning: warning}, nil
}

// openWebsite resolves site and opens it on a detached goroutine.
func (e *Engine) openWebsite(site string) error {
	url, ok := e.cfg.SiteURL(site)
	if !ok {
		return fmt.Errorf("%w: unknown website %q", ErrInvalidArgument, site)
	}
	e.spawn(func() {
		if err := e.launcher.OpenURL(url); err != nil {
			log.Printf("exec: open %s (%s): %v", site, url, err)
			return
		}
		log.Printf("exec: opened %s in browser", site)
	})
	return nil
}

// openCamera opens the camera application. Failures are not retried.
func (e *Engine) openCamera() error {
	if err := e.launcher.OpenApp(e.cfg.CameraURI, e.cfg.CameraPath); err != nil {
		return fmt.Errorf("open camera: %w", err)
	}
	return nil
}
