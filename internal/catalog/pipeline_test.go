package catalog

import (
	"context"
	"testing"

	"github.com/abhisek/pawnforge/internal/analysis"
	"github.com/abhisek/pawnforge/internal/datasets"
	"github.com/abhisek/pawnforge/internal/oracle"
	"github.com/abhisek/pawnforge/internal/puzzlegen"
	"github.com/abhisek/pawnforge/internal/rules"
	"github.com/abhisek/pawnforge/internal/store"
	"github.com/notnil/chess"
)

func pipelineConfig() Config {
	cfg := DefaultConfig()
	cfg.Generation.MinLine = 2
	cfg.Generation.MaxLine = 4
	return cfg
}

func TestPipeline_OpeningsFromDeviation(t *testing.T) {
	// White leaves the Italian at ply 6 (a3 instead of c3).
	rec := &store.GameRecord{
		GameID:      "g1",
		UserID:      "alice",
		PlayerColor: "w",
		Moves:       []string{"e4", "e5", "Nf3", "Nc6", "Bc4", "Bc5", "a3", "Nf6", "d3", "d6"},
	}

	// The assembler extends from the position after the book move c3.
	pre, err := rules.Replay(rec.Moves, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after, _, err := rules.ApplyMove(pre, "c2c3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var reply *chess.Move
	for _, m := range rules.LegalMoves(after) {
		if rules.UCI(m) == "g8f6" {
			reply = m
		}
	}
	engine := oracle.NewMockEngine(oracle.MockResponse{Result: &oracle.Result{
		BestMove: reply,
		PV:       []*chess.Move{reply},
		Eval:     oracle.Evaluation{Type: oracle.EvalCentipawn, Value: 15},
	}})

	p := newPipeline(engine, pipelineConfig())
	batch, err := p.run(context.Background(), []*store.GameRecord{rec}, datasets.CategoryOpenings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch) != 1 {
		t.Fatalf("expected 1 deviation puzzle, got %d", len(batch))
	}
	if batch[0].Source != puzzlegen.SourceDeviation {
		t.Errorf("expected deviation provenance, got %q", batch[0].Source)
	}
	if batch[0].GroupKey != "italian-game" {
		t.Errorf("expected italian-game group, got %q", batch[0].GroupKey)
	}
	if batch[0].SolutionLine[0] != "c2c3" {
		t.Errorf("expected the book move heading the solution, got %q", batch[0].SolutionLine[0])
	}
	if batch[0].Difficulty == "" {
		t.Errorf("expected a difficulty band assigned")
	}
}

func TestPipeline_ShardRowFailuresAreSkipped(t *testing.T) {
	// No engine material at all: every dataset row fails its extension and
	// is dropped without failing the tier.
	p := newPipeline(oracle.NewMockEngine(), DefaultConfig())
	batch, err := p.run(context.Background(), nil, datasets.CategoryTactics)
	if err != nil {
		t.Fatalf("expected per-row failures to be absorbed, got %v", err)
	}
	if len(batch) != 0 {
		t.Errorf("expected an empty batch, got %d", len(batch))
	}
}

func TestPipeline_ContextCancellationAborts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := newPipeline(oracle.NewMockEngine(), DefaultConfig())
	if _, err := p.run(ctx, nil, datasets.CategoryTactics); err == nil {
		t.Errorf("expected cancellation to abort the tier")
	}
}

func TestMistakeInCategory(t *testing.T) {
	endgame := &analysis.Mistake{Theme: analysis.ThemeEndgame}
	tactic := &analysis.Mistake{Theme: analysis.ThemeHangingPiece}

	if !mistakeInCategory(endgame, datasets.CategoryEndgames) {
		t.Errorf("endgame mistakes belong to the endgames category")
	}
	if mistakeInCategory(endgame, datasets.CategoryTactics) {
		t.Errorf("endgame mistakes must not leak into tactics")
	}
	if !mistakeInCategory(tactic, datasets.CategoryTactics) {
		t.Errorf("non-endgame mistakes belong to tactics")
	}
	if mistakeInCategory(tactic, datasets.CategoryOpenings) {
		t.Errorf("openings are driven by deviations, not classified mistakes")
	}
}

func TestRecoverable(t *testing.T) {
	if recoverable(context.Canceled) {
		t.Errorf("cancellation is not recoverable")
	}
	if recoverable(context.DeadlineExceeded) {
		t.Errorf("deadline expiry is not recoverable")
	}
	if !recoverable(puzzlegen.ErrLineTooShort) {
		t.Errorf("quality-gate drops are recoverable")
	}
}
