package oracle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/notnil/chess"
)

func bestMove(t *testing.T, pos *chess.Position, uci string) *chess.Move {
	t.Helper()
	for _, m := range pos.ValidMoves() {
		if m.S1().String()+m.S2().String() == uci {
			return m
		}
	}
	t.Fatalf("no legal move %q in position", uci)
	return nil
}

func TestMockEngine_FIFO(t *testing.T) {
	pos := chess.NewGame().Position()
	first := &Result{BestMove: bestMove(t, pos, "e2e4"), Eval: Evaluation{Type: EvalCentipawn, Value: 30}}
	second := &Result{BestMove: bestMove(t, pos, "d2d4"), Eval: Evaluation{Type: EvalCentipawn, Value: 25}}

	mock := NewMockEngine(
		MockResponse{Result: first},
		MockResponse{Result: second},
	)

	req := Request{Position: pos, TimeBudget: time.Second}
	r1, err := mock.Analyze(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r1 != first {
		t.Errorf("expected first canned result")
	}
	r2, err := mock.Analyze(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r2 != second {
		t.Errorf("expected second canned result")
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 recorded calls, got %d", mock.CallCount())
	}
}

func TestMockEngine_EmptyQueue(t *testing.T) {
	mock := NewMockEngine()
	_, err := mock.Analyze(context.Background(), Request{})
	var unavailable *ErrEngineUnavailable
	if !errors.As(err, &unavailable) {
		t.Errorf("expected ErrEngineUnavailable, got %v", err)
	}
}

func TestMockEngine_CannedError(t *testing.T) {
	want := &ErrSearchFailed{Err: errors.New("boom")}
	mock := NewMockEngine(MockResponse{Err: want})
	_, err := mock.Analyze(context.Background(), Request{})
	if !errors.Is(err, want) {
		t.Errorf("expected canned error, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("failed calls should still be recorded")
	}
}
