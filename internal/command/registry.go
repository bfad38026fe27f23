// Package command resolves command names to handlers and executes them.
package command

import (
	"errors"
	"sort"
)

var (
	// ErrUnknownCommand is returned for names outside the vocabulary.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrInvalidArgument is returned when a handler parameter cannot be resolved.
	ErrInvalidArgument = errors.New("invalid argument")
)

const websitePrefix = "open-"

// Registry maps the closed command vocabulary to handler constructors.
type Registry struct {
	entries map[string]func() Handler
}

// NewRegistry builds the vocabulary. Every site key adds an "open-<site>" command.
func NewRegistry(sites []string) *Registry {
	entries := map[string]func() Handler{
		"shutdown":    func() Handler { return Shutdown{} },
		"sleep":       func() Handler { return Sleep{} },
		"bsod":        func() Handler { return BSOD{} },
		"volume-up":   func() Handler { return VolumeAdjust{Direction: Up} },
		"volume-down": func() Handler { return VolumeAdjust{Direction: Down} },
		"open-camera": func() Handler { return OpenApplication{} },
	}
	for _, site := range sites {
		name := websitePrefix + site
		if site == "" {
			continue
		}
		if _, taken := entries[name]; taken {
			continue
		}
		entries[name] = func() Handler { return OpenWebsite{Site: site} }
	}
	return &Registry{entries: entries}
}

// Resolve returns a fresh handler for name. Matching is exact and case-sensitive.
func (r *Registry) Resolve(name string) (Handler, bool) {
	build, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	return build(), true
}

// Names returns the vocabulary in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
