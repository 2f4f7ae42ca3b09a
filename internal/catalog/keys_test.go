package catalog

import (
	"testing"

	"github.com/abhisek/pawnforge/internal/puzzlegen"
)

func TestCacheKey(t *testing.T) {
	got := CacheKey("alice", "tactics", puzzlegen.BandHard, "v3.0.0")
	if got != "alice|tactics|hard|v3.0.0" {
		t.Errorf("unexpected key %q", got)
	}
}

func TestVersionCurrent(t *testing.T) {
	cases := []struct {
		entry, want string
		current     bool
	}{
		{"v3.0.0", "v3.0.0", true},
		{"v3.1.0", "v3.0.0", true},  // newer entry still serves
		{"v2.9.0", "v3.0.0", false}, // older schema is a miss
		{"v3.0.0", "v3.1.0", false},
		{"garbage", "v3.0.0", false}, // invalid tags fall back to equality
		{"garbage", "garbage", true},
	}
	for _, c := range cases {
		if got := versionCurrent(c.entry, c.want); got != c.current {
			t.Errorf("versionCurrent(%q, %q) = %v, want %v", c.entry, c.want, got, c.current)
		}
	}
}
