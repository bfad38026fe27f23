package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// okHandler records whether it ran.
func okHandler(ran *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		*ran = true
		w.WriteHeader(http.StatusNoContent)
	})
}

// TestGuard_DisabledAdmitsAll verifies a disabled guard passes requests through.
func TestGuard_DisabledAdmitsAll(t *testing.T) {
	g := New(false, "X-API-Key", "secret")
	var ran bool
	rec := httptest.NewRecorder()
	g.Require(okHandler(&ran)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/press/enter", nil))
	if !ran || rec.Code != http.StatusNoContent {
		t.Fatalf("expected pass-through, got ran=%v code=%d", ran, rec.Code)
	}
}

// TestGuard_MissingHeader verifies requests without the header are rejected.
func TestGuard_MissingHeader(t *testing.T) {
	g := New(true, "X-API-Key", "secret")
	var ran bool
	rec := httptest.NewRecorder()
	g.Require(okHandler(&ran)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/exec/sleep", nil))
	if ran {
		t.Fatalf("expected handler not to run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if rec.Header().Get("WWW-Authenticate") != "X-API-Key" {
		t.Fatalf("expected WWW-Authenticate header, got %q", rec.Header().Get("WWW-Authenticate"))
	}
	if !strings.Contains(rec.Body.String(), `"detail":"Invalid API Key"`) {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

// TestGuard_WrongAndRightKey verifies key comparison.
func TestGuard_WrongAndRightKey(t *testing.T) {
	g := New(true, "X-Remote-Key", "secret")

	bad := httptest.NewRequest(http.MethodGet, "/", nil)
	bad.Header.Set("X-Remote-Key", "secreT")
	if g.Check(bad) {
		t.Fatalf("expected mismatched key to fail")
	}

	good := httptest.NewRequest(http.MethodGet, "/", nil)
	good.Header.Set("X-Remote-Key", "secret")
	if !g.Check(good) {
		t.Fatalf("expected matching key to pass")
	}
}

// TestNew_DefaultHeader verifies the default header name.
func TestNew_DefaultHeader(t *testing.T) {
	if h := New(true, "", "k").Header(); h != "X-API-Key" {
		t.Fatalf("expected default header, got %q", h)
	}
}
