package cmd

import "testing"

func TestPlayerColor(t *testing.T) {
	cases := []struct {
		name      string
		user      string
		flag      string
		white     string
		black     string
		want      string
		expectErr bool
	}{
		{name: "matches white tag", user: "alice", white: "Alice", black: "bob", want: "w"},
		{name: "matches black tag", user: "bob", white: "alice", black: "Bob", want: "b"},
		{name: "explicit flag wins", user: "alice", flag: "black", white: "alice", black: "bob", want: "b"},
		{name: "short flag", user: "x", flag: "w", white: "a", black: "b", want: "w"},
		{name: "no match", user: "carol", white: "alice", black: "bob", expectErr: true},
		{name: "ambiguous", user: "alice", white: "alice", black: "alice", expectErr: true},
		{name: "bad flag", user: "alice", flag: "green", white: "alice", black: "bob", expectErr: true},
	}

	for _, c := range cases {
		got, err := playerColor(c.user, c.flag, c.white, c.black)
		if c.expectErr {
			if err == nil {
				t.Errorf("%s: expected error", c.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", c.name, err)
			continue
		}
		if got != c.want {
			t.Errorf("%s: expected %q, got %q", c.name, c.want, got)
		}
	}
}

func TestGameFingerprint(t *testing.T) {
	moves := []string{"e4", "e5", "Nf3"}
	a := gameFingerprint("alice", "bob", "2026.08.01", moves)
	b := gameFingerprint("alice", "bob", "2026.08.01", moves)
	if a != b {
		t.Errorf("fingerprint must be stable for identical games")
	}
	if len(a) != 16 {
		t.Errorf("expected a 16-char fingerprint, got %d", len(a))
	}

	c := gameFingerprint("alice", "bob", "2026.08.02", moves)
	if a == c {
		t.Errorf("different games must not collide")
	}
}
