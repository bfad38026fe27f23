// Package auth guards endpoints with an optional API-key header.
package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

// Guard validates a configured header against a shared secret.
type Guard struct {
	enabled bool
	header  string
	key     string
}

// New returns a guard. A disabled guard admits every request.
func New(enabled bool, header, key string) *Guard {
	if header == "" {
		header = "X-API-Key"
	}
	return &Guard{enabled: enabled, header: header, key: key}
}

// Enabled reports whether the header check is active.
func (g *Guard) Enabled() bool {
	return g.enabled
}

// Header returns the header name carrying the key.
func (g *Guard) Header() string {
	return g.header
}

// Check reports whether r carries the expected key.
func (g *Guard) Check(r *http.Request) bool {
	if !g.enabled {
		return true
	}
	got := r.Header.Get(g.header)
	if got == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(g.key)) == 1
}

// Reject writes the 401 response for a failed check.
func (g *Guard) Reject(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", g.header)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid API Key"})
}

// Require wraps next so it only runs for requests passing Check.
func (g *Guard) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !g.Check(r) {
			g.Reject(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}
