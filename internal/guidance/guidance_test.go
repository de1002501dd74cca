package guidance

import (
	"strings"
	"testing"
)

func TestLookupKnownItems(t *testing.T) {
	for _, stt := range []string{"1", "2", "3", "6", "7", "8", "11", "19"} {
		text := Lookup(stt)
		if text == fallback {
			t.Errorf("item %s has no detailed instructions", stt)
		}
		if text == "" {
			t.Errorf("item %s returned empty text", stt)
		}
	}

	if !strings.Contains(Lookup("1"), "FOD") {
		t.Error("item 1 should mention FOD checks")
	}
}

func TestLookupFallback(t *testing.T) {
	for _, stt := range []string{"4", "99", "", "abc"} {
		if got := Lookup(stt); got != fallback {
			t.Errorf("Lookup(%q) = %q, want fallback", stt, got)
		}
	}
}
