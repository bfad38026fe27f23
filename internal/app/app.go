// Package app wires HTTP routes, the control channel, and dispatch together.
package app

import (
	"errors"

	"github.com/frudas24/deskremote/internal/auth"
	"github.com/frudas24/deskremote/internal/config"
	"github.com/frudas24/deskremote/internal/control"
	"github.com/frudas24/deskremote/internal/outcome"
)

// Dispatcher runs presses and commands on behalf of the HTTP layer.
type Dispatcher interface {
	Press(button string) error
	Exec(name string) (string, error)
	Commands() []string
}

// App coordinates the HTTP API and the websocket control channel.
type App struct {
	cfg        config.Config
	guard      *auth.Guard
	dispatcher Dispatcher
	outcomes   outcome.Lister
	control    *control.Server
}

// New creates a new application with its dependencies wired. outcomes may be nil.
func New(cfg config.Config, dispatcher Dispatcher, outcomes outcome.Lister) (*App, error) {
	if dispatcher == nil {
		return nil, errors.New("dispatcher is required")
	}
	guard := auth.New(cfg.APIKeyEnabled, cfg.APIKeyHeader, cfg.APIKey)
	return &App{
		cfg:        cfg,
		guard:      guard,
		dispatcher: dispatcher,
		outcomes:   outcomes,
		control:    control.NewServer(dispatcher, control.ConnReplace, guard),
	}, nil
}

// Control returns the control websocket handler.
func (a *App) Control() *control.Server {
	return a.control
}

// Guard returns the API-key guard shared by HTTP and websocket routes.
func (a *App) Guard() *auth.Guard {
	return a.guard
}
