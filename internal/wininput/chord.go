// Package wininput defines Windows keyboard injection interfaces.
package wininput

// sendFunc emits one key transition.
type sendFunc func(spec KeySpec, up bool) error

// tapKey presses and releases a single named key.
func tapKey(send sendFunc, name string) error {
	spec, err := Lookup(name)
	if err != nil {
		return err
	}
	if err := send(spec, false); err != nil {
		return err
	}
	return send(spec, true)
}

// transition sends a single down or up event for a named key.
func transition(send sendFunc, name string, up bool) error {
	spec, err := Lookup(name)
	if err != nil {
		return err
	}
	return send(spec, up)
}

// pressChord holds keys in order and releases them in reverse order.
func pressChord(send sendFunc, names []string) error {
	specs, err := lookupAll(names)
	if err != nil {
		return err
	}
	for i, spec := range specs {
		if err := send(spec, false); err != nil {
			release(send, specs[:i])
			return err
		}
	}
	var firstErr error
	for i := len(specs) - 1; i >= 0; i-- {
		if err := send(specs[i], true); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// release lifts held keys in reverse order, ignoring errors.
func release(send sendFunc, held []KeySpec) {
	for i := len(held) - 1; i >= 0; i-- {
		_ = send(held[i], true)
	}
}
