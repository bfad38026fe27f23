package wininput

import (
	"errors"
	"testing"
)

// TestLookup_NamedKeys verifies common key names resolve.
func TestLookup_NamedKeys(t *testing.T) {
	cases := map[string]uint16{
		"enter":      0x0D,
		"win":        0x5B,
		"alt":        0x12,
		"f4":         0x73,
		"f24":        0x87,
		"m":          0x4D,
		"7":          0x37,
		"num0":       0x60,
		"volumeup":   0xAF,
		"volumedown": 0xAE,
		"down":       0x28,
		"up":         0x26,
	}
	for name, vk := range cases {
		spec, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q) failed: %v", name, err)
		}
		if spec.VK != vk {
			t.Fatalf("Lookup(%q) = 0x%X, want 0x%X", name, spec.VK, vk)
		}
	}
}

// TestLookup_CaseInsensitive verifies names match regardless of case.
func TestLookup_CaseInsensitive(t *testing.T) {
	lower, err := Lookup("enter")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	upper, err := Lookup("ENTER")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if lower != upper {
		t.Fatalf("expected equal specs, got %+v and %+v", lower, upper)
	}
}

// TestLookup_Unknown verifies unknown names return ErrUnknownKey.
func TestLookup_Unknown(t *testing.T) {
	for _, name := range []string{"", "notakey", "f0", "f25", "num10", "fx"} {
		if _, err := Lookup(name); !errors.Is(err, ErrUnknownKey) {
			t.Fatalf("Lookup(%q) err = %v, want ErrUnknownKey", name, err)
		}
	}
}

// TestLookup_ExtendedKeys verifies navigation and media keys carry the extended flag.
func TestLookup_ExtendedKeys(t *testing.T) {
	for _, name := range []string{"up", "down", "delete", "volumeup", "win"} {
		spec, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q) failed: %v", name, err)
		}
		if !spec.Extended {
			t.Fatalf("expected %q to be extended", name)
		}
	}
	spec, _ := Lookup("a")
	if spec.Extended {
		t.Fatalf("expected letter key to be non-extended")
	}
}
