package command

import (
	"reflect"
	"testing"
)

// TestResolve_Vocabulary verifies each name maps to the expected variant.
func TestResolve_Vocabulary(t *testing.T) {
	r := NewRegistry([]string{"spotify", "youtube"})
	cases := map[string]Handler{
		"shutdown":     Shutdown{},
		"sleep":        Sleep{},
		"bsod":         BSOD{},
		"volume-up":    VolumeAdjust{Direction: Up},
		"volume-down":  VolumeAdjust{Direction: Down},
		"open-spotify": OpenWebsite{Site: "spotify"},
		"open-youtube": OpenWebsite{Site: "youtube"},
		"open-camera":  OpenApplication{},
	}
	for name, want := range cases {
		got, ok := r.Resolve(name)
		if !ok {
			t.Fatalf("Resolve(%q) unresolved", name)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Resolve(%q) = %#v, want %#v", name, got, want)
		}
		if got.Name() != name {
			t.Fatalf("Name() = %q, want %q", got.Name(), name)
		}
	}
}

// TestResolve_Unknown verifies names outside the vocabulary are unresolved.
func TestResolve_Unknown(t *testing.T) {
	r := NewRegistry([]string{"spotify", "youtube"})
	for _, name := range []string{"", "Shutdown", "SHUTDOWN", "reboot", "volume", "open-netflix", "open-", " sleep", "sleep "} {
		if h, ok := r.Resolve(name); ok || h != nil {
			t.Fatalf("Resolve(%q) = %#v, want unresolved", name, h)
		}
	}
}

// TestResolve_SiteCannotShadowCamera verifies a site named "camera" does not replace open-camera.
func TestResolve_SiteCannotShadowCamera(t *testing.T) {
	r := NewRegistry([]string{"camera", ""})
	h, ok := r.Resolve("open-camera")
	if !ok {
		t.Fatalf("expected open-camera to resolve")
	}
	if _, isApp := h.(OpenApplication); !isApp {
		t.Fatalf("expected OpenApplication, got %#v", h)
	}
	if _, ok := r.Resolve("open-"); ok {
		t.Fatalf("expected empty site to be skipped")
	}
}

// TestNames_Sorted verifies the vocabulary listing.
func TestNames_Sorted(t *testing.T) {
	got := NewRegistry([]string{"youtube", "spotify"}).Names()
	want := []string{"bsod", "open-camera", "open-spotify", "open-youtube", "shutdown", "sleep", "volume-down", "volume-up"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
