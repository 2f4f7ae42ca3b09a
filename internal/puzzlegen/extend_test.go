package puzzlegen

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/pawnforge/internal/oracle"
	"github.com/abhisek/pawnforge/internal/rules"
	"github.com/notnil/chess"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.MinLine = 4
	cfg.MaxLine = 6
	return cfg
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

// pvLine builds a principal variation by walking the coordinate moves from
// pos, returning tagged moves valid in sequence.
func pvLine(t *testing.T, pos *chess.Position, ucis ...string) []*chess.Move {
	t.Helper()
	line := make([]*chess.Move, 0, len(ucis))
	cur := pos
	for _, u := range ucis {
		m := legalMove(t, cur, u)
		next, err := rules.Apply(cur, m)
		if err != nil {
			t.Fatalf("apply %s: %v", u, err)
		}
		line = append(line, m)
		cur = next
	}
	return line
}

func TestExtend_PVSatisfiesMinimum(t *testing.T) {
	pos := rules.StartingPosition()
	pv := pvLine(t, pos, "e2e4", "e7e5", "g1f3", "b8c6")
	mock := oracle.NewMockEngine(oracle.MockResponse{Result: &oracle.Result{
		BestMove: pv[0],
		PV:       pv,
		Eval:     oracle.Evaluation{Type: oracle.EvalCentipawn, Value: 20},
	}})

	e := NewExtender(mock, testConfig())
	line, err := e.Extend(context.Background(), pos, 4, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"e2e4", "e7e5", "g1f3", "b8c6"}
	if len(line) != len(want) {
		t.Fatalf("expected %d plies, got %d", len(want), len(line))
	}
	for i := range want {
		if line[i] != want[i] {
			t.Errorf("ply %d: expected %s, got %s", i, want[i], line[i])
		}
	}
	if mock.CallCount() != 1 {
		t.Errorf("a sufficient PV needs one query, got %d", mock.CallCount())
	}
}

func TestExtend_TruncatesAtMaximum(t *testing.T) {
	pos := rules.StartingPosition()
	pv := pvLine(t, pos, "e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "f8c5", "c2c3", "g8f6")
	mock := oracle.NewMockEngine(oracle.MockResponse{Result: &oracle.Result{
		BestMove: pv[0],
		PV:       pv,
		Eval:     oracle.Evaluation{Type: oracle.EvalCentipawn, Value: 20},
	}})

	e := NewExtender(mock, testConfig())
	line, err := e.Extend(context.Background(), pos, 4, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(line) != 6 {
		t.Errorf("expected the line capped at 6 plies, got %d", len(line))
	}
}

func TestExtend_StepwiseFallback(t *testing.T) {
	pos := rules.StartingPosition()
	steps := pvLine(t, pos, "e2e4", "e7e5")

	// The deep query fails; the stepwise tier supplies one move per call.
	mock := oracle.NewMockEngine(
		oracle.MockResponse{Err: &oracle.ErrEmptyResult{}},
		oracle.MockResponse{Result: &oracle.Result{BestMove: steps[0]}},
		oracle.MockResponse{Result: &oracle.Result{BestMove: steps[1]}},
	)

	e := NewExtender(mock, testConfig())
	line, err := e.Extend(context.Background(), pos, 2, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(line) != 2 || line[0] != "e2e4" || line[1] != "e7e5" {
		t.Errorf("unexpected line: %v", line)
	}
	if mock.CallCount() != 3 {
		t.Errorf("expected 3 engine calls, got %d", mock.CallCount())
	}
}

func TestExtend_TooShort(t *testing.T) {
	mock := oracle.NewMockEngine()
	e := NewExtender(mock, testConfig())
	_, err := e.Extend(context.Background(), rules.StartingPosition(), 4, 6)
	if !errors.Is(err, ErrLineTooShort) {
		t.Errorf("expected ErrLineTooShort, got %v", err)
	}
}

func TestExtend_StopsAtGameOver(t *testing.T) {
	pos, err := rules.PositionFromFEN("6k1/5ppp/8/8/8/8/5PPP/4R1K1 w - - 0 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mate := legalMove(t, pos, "e1e8")
	mock := oracle.NewMockEngine(oracle.MockResponse{Result: &oracle.Result{
		BestMove: mate,
		PV:       []*chess.Move{mate},
		Eval:     oracle.Evaluation{Type: oracle.EvalMate, Value: 1},
	}})

	e := NewExtender(mock, testConfig())
	_, err = e.Extend(context.Background(), pos, 4, 6)
	if !errors.Is(err, ErrLineTooShort) {
		t.Errorf("expected ErrLineTooShort after immediate mate, got %v", err)
	}
	// The board is terminal after the mate; no stepwise query may follow.
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 engine call, got %d", mock.CallCount())
	}
}

func TestExtend_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := oracle.NewMockEngine()
	e := NewExtender(mock, testConfig())
	_, err := e.Extend(ctx, rules.StartingPosition(), 4, 6)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context cancellation to surface, got %v", err)
	}
}
