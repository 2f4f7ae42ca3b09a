package analysis

import (
	"errors"
	"testing"

	"github.com/abhisek/pawnforge/internal/store"
	"github.com/notnil/chess"
)

func gameOfLength(n int) *Game {
	return &Game{
		ID:          "g1",
		UserID:      "u1",
		PlayerColor: chess.White,
		Moves:       make([]string, n),
	}
}

func TestSelectPlies_ShortGame(t *testing.T) {
	_, err := SelectPlies(gameOfLength(9))
	if !errors.Is(err, ErrInsufficientGameLength) {
		t.Errorf("expected ErrInsufficientGameLength, got %v", err)
	}
}

func TestSelectPlies_Windows(t *testing.T) {
	sels, err := SelectPlies(gameOfLength(60))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byPly := make(map[int]Priority)
	prev := -1
	for _, s := range sels {
		if s.Ply <= prev {
			t.Fatalf("selections not strictly ascending at ply %d", s.Ply)
		}
		prev = s.Ply
		byPly[s.Ply] = s.Priority
	}

	// Middlegame: every third ply in [10, 40).
	for ply := 10; ply < 40; ply += 3 {
		if p, ok := byPly[ply]; !ok || p != PriorityMedium {
			t.Errorf("expected medium selection at ply %d, got %v (present=%v)", ply, p, ok)
		}
	}
	// Endgame: every second ply in [40, 60).
	for ply := 40; ply < 60; ply += 2 {
		if p, ok := byPly[ply]; !ok || p != PriorityHigh {
			t.Errorf("expected high selection at ply %d, got %v (present=%v)", ply, p, ok)
		}
	}
	if _, ok := byPly[9]; ok {
		t.Errorf("ply 9 is before the middlegame window")
	}
	if _, ok := byPly[11]; ok {
		t.Errorf("ply 11 is off the middlegame stride")
	}
}

func TestSelectPlies_ShortGameSkipsEndgameOverlap(t *testing.T) {
	// 30 plies: middlegame covers [10, 30), endgame window is empty because
	// it never starts before ply 40.
	sels, err := SelectPlies(gameOfLength(30))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range sels {
		if s.Priority == PriorityHigh {
			t.Errorf("unexpected endgame selection at ply %d in a 30-ply game", s.Ply)
		}
		if s.Ply >= 30 {
			t.Errorf("selection %d past the end of the game", s.Ply)
		}
	}
}

func TestSelectPlies_JudgedPlies(t *testing.T) {
	g := gameOfLength(60)
	g.Judgments = []store.Judgment{
		{Ply: 5, Severity: "blunder"},
		{Ply: 7, Severity: "inaccuracy"},
		{Ply: 10, Severity: "mistake"},
	}

	sels, err := SelectPlies(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	byPly := make(map[int]Priority)
	for _, s := range sels {
		byPly[s.Ply] = s.Priority
	}

	if p, ok := byPly[5]; !ok || p != PriorityCritical {
		t.Errorf("expected judged blunder at ply 5 to be critical, got %v (present=%v)", p, ok)
	}
	if _, ok := byPly[7]; ok {
		t.Errorf("inaccuracy judgments should not force selection")
	}
	// Ply 10 is both a middlegame sample and judged: highest priority wins.
	if p := byPly[10]; p != PriorityCritical {
		t.Errorf("expected critical priority at overlapping ply 10, got %v", p)
	}
}

func TestSelectPlies_JudgedPlyOutOfRange(t *testing.T) {
	g := gameOfLength(12)
	g.Judgments = []store.Judgment{{Ply: 99, Severity: "blunder"}}

	sels, err := SelectPlies(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range sels {
		if s.Ply >= 12 {
			t.Errorf("selection %d past the end of the game", s.Ply)
		}
	}
}
