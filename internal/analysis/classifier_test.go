package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/pawnforge/internal/oracle"
	"github.com/abhisek/pawnforge/internal/rules"
	"github.com/notnil/chess"
)

// italianMoves is a 12-ply Italian setup. With 12 plies, exactly ply 10 is
// selected for analysis, and White is to move there.
var italianMoves = []string{
	"e4", "e5", "Nf3", "Nc6", "Bc4", "Bc5",
	"c3", "Nf6", "d3", "d6", "O-O", "O-O",
}

func italianGame() *Game {
	return &Game{
		ID:          "g1",
		UserID:      "u1",
		PlayerColor: chess.White,
		Moves:       italianMoves,
	}
}

// legalMove fetches the tagged canonical move for a coordinate string.
func legalMove(t *testing.T, pos *chess.Position, uci string) *chess.Move {
	t.Helper()
	for _, m := range rules.LegalMoves(pos) {
		if rules.UCI(m) == uci {
			return m
		}
	}
	t.Fatalf("no legal move %q in position %s", uci, pos.String())
	return nil
}

func ply10Position(t *testing.T) *chess.Position {
	t.Helper()
	pos, err := rules.Replay(italianMoves, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return pos
}

func TestClassifyGame_HangingPieceMistake(t *testing.T) {
	pos := ply10Position(t)
	// Engine prefers the Bxf7+ capture; the played castling move scored
	// 200cp worse.
	mock := oracle.NewMockEngine(oracle.MockResponse{Result: &oracle.Result{
		BestMove: legalMove(t, pos, "c4f7"),
		Eval:     oracle.Evaluation{Type: oracle.EvalCentipawn, Value: 250},
		Alternatives: []oracle.ScoredMove{
			{Move: legalMove(t, pos, "e1g1"), Eval: oracle.Evaluation{Type: oracle.EvalCentipawn, Value: 50}},
		},
	}})

	c := NewClassifier(mock, DefaultClassifierConfig())
	mistakes, err := c.ClassifyGame(context.Background(), italianGame())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mistakes) != 1 {
		t.Fatalf("expected 1 mistake, got %d", len(mistakes))
	}

	m := mistakes[0]
	if m.CentipawnLoss != 200 {
		t.Errorf("expected 200cp loss, got %d", m.CentipawnLoss)
	}
	if m.Severity != SeverityMistake {
		t.Errorf("expected severity mistake, got %q", m.Severity)
	}
	if m.Theme != ThemeHangingPiece {
		t.Errorf("expected hanging-piece theme for a best-move capture, got %q", m.Theme)
	}
	if m.CorrectMove != "c4f7" {
		t.Errorf("expected correct move c4f7, got %q", m.CorrectMove)
	}
	if m.PlayedMove != "e1g1" {
		t.Errorf("expected played move e1g1, got %q", m.PlayedMove)
	}
	if m.Ply != 10 {
		t.Errorf("expected ply 10, got %d", m.Ply)
	}
	if m.SourceGameID != "g1" {
		t.Errorf("expected source game g1, got %q", m.SourceGameID)
	}
}

func TestClassifyGame_BestMovePlayed(t *testing.T) {
	pos := ply10Position(t)
	mock := oracle.NewMockEngine(oracle.MockResponse{Result: &oracle.Result{
		BestMove: legalMove(t, pos, "e1g1"),
		Eval:     oracle.Evaluation{Type: oracle.EvalCentipawn, Value: 40},
	}})

	c := NewClassifier(mock, DefaultClassifierConfig())
	mistakes, err := c.ClassifyGame(context.Background(), italianGame())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mistakes) != 0 {
		t.Errorf("playing the engine's move is not a mistake, got %d", len(mistakes))
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected exactly one engine call, got %d", mock.CallCount())
	}
}

func TestClassifyGame_MissedMate(t *testing.T) {
	pos := ply10Position(t)
	mock := oracle.NewMockEngine(oracle.MockResponse{Result: &oracle.Result{
		BestMove: legalMove(t, pos, "c4f7"),
		Eval:     oracle.Evaluation{Type: oracle.EvalMate, Value: 2},
	}})

	c := NewClassifier(mock, DefaultClassifierConfig())
	mistakes, err := c.ClassifyGame(context.Background(), italianGame())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mistakes) != 1 {
		t.Fatalf("expected 1 mistake, got %d", len(mistakes))
	}
	if mistakes[0].Severity != SeverityMissedWin {
		t.Errorf("expected missed-win severity, got %q", mistakes[0].Severity)
	}
	if mistakes[0].CentipawnLoss != MissedWinLossCP {
		t.Errorf("expected fixed %dcp loss, got %d", MissedWinLossCP, mistakes[0].CentipawnLoss)
	}
	if mistakes[0].Theme != ThemeForcedMate {
		t.Errorf("expected forced-mate theme, got %q", mistakes[0].Theme)
	}
}

func TestClassifyGame_NoiseFloor(t *testing.T) {
	pos := ply10Position(t)
	mock := oracle.NewMockEngine(oracle.MockResponse{Result: &oracle.Result{
		BestMove: legalMove(t, pos, "c4f7"),
		Eval:     oracle.Evaluation{Type: oracle.EvalCentipawn, Value: 80},
		Alternatives: []oracle.ScoredMove{
			{Move: legalMove(t, pos, "e1g1"), Eval: oracle.Evaluation{Type: oracle.EvalCentipawn, Value: 50}},
		},
	}})

	c := NewClassifier(mock, DefaultClassifierConfig())
	mistakes, err := c.ClassifyGame(context.Background(), italianGame())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mistakes) != 0 {
		t.Errorf("a 30cp gap is noise, got %d mistakes", len(mistakes))
	}
}

func TestClassifyGame_DefaultLossWithoutAlternatives(t *testing.T) {
	pos := ply10Position(t)
	mock := oracle.NewMockEngine(oracle.MockResponse{Result: &oracle.Result{
		BestMove: legalMove(t, pos, "c4f7"),
		Eval:     oracle.Evaluation{Type: oracle.EvalCentipawn, Value: 250},
	}})

	c := NewClassifier(mock, DefaultClassifierConfig())
	mistakes, err := c.ClassifyGame(context.Background(), italianGame())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mistakes) != 1 {
		t.Fatalf("expected 1 mistake, got %d", len(mistakes))
	}
	if mistakes[0].CentipawnLoss != DefaultLossCP {
		t.Errorf("expected default %dcp loss, got %d", DefaultLossCP, mistakes[0].CentipawnLoss)
	}
	if mistakes[0].Severity != SeverityMistake {
		t.Errorf("expected severity mistake at the default loss, got %q", mistakes[0].Severity)
	}
}

func TestClassifyGame_EngineFailureSkipsPosition(t *testing.T) {
	mock := oracle.NewMockEngine(oracle.MockResponse{Err: errors.New("search timeout")})

	c := NewClassifier(mock, DefaultClassifierConfig())
	mistakes, err := c.ClassifyGame(context.Background(), italianGame())
	if err != nil {
		t.Fatalf("engine trouble should skip, not fail: %v", err)
	}
	if len(mistakes) != 0 {
		t.Errorf("expected no mistakes, got %d", len(mistakes))
	}
}

func TestClassifyGame_ShortGame(t *testing.T) {
	mock := oracle.NewMockEngine()
	g := italianGame()
	g.Moves = g.Moves[:4]

	c := NewClassifier(mock, DefaultClassifierConfig())
	mistakes, err := c.ClassifyGame(context.Background(), g)
	if err != nil {
		t.Fatalf("short games are a skip, not a failure: %v", err)
	}
	if mistakes != nil {
		t.Errorf("expected nil mistakes for a short game")
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected no engine calls for a short game")
	}
}

func TestClassifyGame_OpponentPliesIgnored(t *testing.T) {
	mock := oracle.NewMockEngine()
	g := italianGame()
	g.PlayerColor = chess.Black

	c := NewClassifier(mock, DefaultClassifierConfig())
	if _, err := c.ClassifyGame(context.Background(), g); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The only selected ply (10) has White to move; a black subject means
	// nothing gets analyzed.
	if mock.CallCount() != 0 {
		t.Errorf("expected no engine calls for opponent plies, got %d", mock.CallCount())
	}
}
