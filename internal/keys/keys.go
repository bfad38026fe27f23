// Package keys parses button tokens into key chords.
package keys

import (
	"errors"
	"strings"
)

// Separator joins key names inside a button token.
const Separator = "-"

// ErrEmptyToken is returned for blank button tokens.
var ErrEmptyToken = errors.New("button token is empty")

// Chord is an ordered set of key names pressed together.
type Chord []string

// Single reports whether the chord holds exactly one key.
func (c Chord) Single() bool {
	return len(c) == 1
}

// String renders the chord back into token form.
func (c Chord) String() string {
	return strings.Join(c, Separator)
}

// Parse splits a token on "-" into a chord. Key names are passed through unchanged.
func Parse(token string) Chord {
	return Chord(strings.Split(token, Separator))
}

// ParseToken trims and validates a raw token before parsing it.
func ParseToken(raw string) (Chord, error) {
	token := strings.TrimSpace(raw)
	if token == "" {
		return nil, ErrEmptyToken
	}
	return Parse(token), nil
}
