package rules

import (
	"errors"
	"testing"

	"github.com/notnil/chess"
)

func TestDecodeMove_UCIAndSANAgree(t *testing.T) {
	pos := StartingPosition()

	uci, err := DecodeMove(pos, "e2e4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	san, err := DecodeMove(pos, "e4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !SameMove(uci, san) {
		t.Errorf("expected e2e4 and e4 to decode to the same move")
	}
}

func TestDecodeMove_Invalid(t *testing.T) {
	pos := StartingPosition()
	if _, err := DecodeMove(pos, "banana"); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("expected ErrInvalidMove, got %v", err)
	}
}

func TestApplyMove_IllegalMove(t *testing.T) {
	pos := StartingPosition()
	// Decodable coordinates, but a pawn cannot jump three squares.
	if _, _, err := ApplyMove(pos, "e2e5"); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("expected ErrInvalidMove, got %v", err)
	}
}

func TestApplyMove_AdvancesTurn(t *testing.T) {
	pos := StartingPosition()
	next, m, err := ApplyMove(pos, "e2e4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Turn() != chess.Black {
		t.Errorf("expected black to move after e4, got %v", next.Turn())
	}
	if UCI(m) != "e2e4" {
		t.Errorf("expected canonical encoding e2e4, got %q", UCI(m))
	}
}

func TestReplay(t *testing.T) {
	moves := []string{"e4", "e5", "Nf3", "Nc6", "Bc4", "Bc5"}

	pos, err := Replay(moves, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pos.Turn() != chess.White {
		t.Errorf("expected white to move at ply 4, got %v", pos.Turn())
	}

	if _, err := Replay(moves, 7); err == nil {
		t.Errorf("expected out-of-range error for ply past the move list")
	}
	if _, err := Replay([]string{"e4", "e9"}, 2); err == nil {
		t.Errorf("expected error replaying an unplayable move")
	}
}

func TestUCI_Promotion(t *testing.T) {
	pos, err := PositionFromFEN("8/P7/8/8/8/8/8/k6K w - - 0 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, m, err := ApplyMove(pos, "a7a8q")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if UCI(m) != "a7a8q" {
		t.Errorf("expected a7a8q, got %q", UCI(m))
	}
}

func TestIsMate(t *testing.T) {
	pos, err := PositionFromFEN("6k1/5ppp/8/8/8/8/5PPP/4R1K1 w - - 0 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	next, _, err := ApplyMove(pos, "e1e8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !IsMate(next) {
		t.Errorf("expected back-rank mate after e1e8")
	}
	if !IsGameOver(next) {
		t.Errorf("expected game over after mate")
	}
}

func TestIsCapture_TagPreserved(t *testing.T) {
	moves := []string{"e4", "d5"}
	pos, err := Replay(moves, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, m, err := ApplyMove(pos, "exd5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !IsCapture(m) {
		t.Errorf("expected exd5 to be tagged as a capture")
	}
}

func TestPositionFromFEN_Invalid(t *testing.T) {
	if _, err := PositionFromFEN("not a fen"); err == nil {
		t.Errorf("expected error for malformed FEN")
	}
}
