package puzzlegen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/pawnforge/internal/analysis"
	"github.com/abhisek/pawnforge/internal/datasets"
	"github.com/abhisek/pawnforge/internal/oracle"
	"github.com/abhisek/pawnforge/internal/rules"
	"github.com/notnil/chess"
)

func TestFromMistake(t *testing.T) {
	start := rules.StartingPosition()
	after, _, err := rules.ApplyMove(start, "e2e4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reply := legalMove(t, after, "e7e5")
	mock := oracle.NewMockEngine(oracle.MockResponse{Result: &oracle.Result{
		BestMove: reply,
		PV:       []*chess.Move{reply},
		Eval:     oracle.Evaluation{Type: oracle.EvalCentipawn, Value: 20},
	}})

	cfg := testConfig()
	cfg.MinLine = 2
	cfg.MaxLine = 4
	a := NewAssembler(mock, cfg)

	m := &analysis.Mistake{
		Position:      start.String(),
		PlayedMove:    "d2d3",
		CorrectMove:   "e2e4",
		CentipawnLoss: 200,
		Severity:      analysis.SeverityMistake,
		Theme:         analysis.ThemeTactics,
		SourceGameID:  "g1",
		Ply:           10,
	}
	p, err := a.FromMistake(context.Background(), m, datasets.CategoryTactics)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.StartFEN != start.String() {
		t.Errorf("puzzle must start at the mistake position")
	}
	if len(p.SolutionLine) != 2 || p.SolutionLine[0] != "e2e4" || p.SolutionLine[1] != "e7e5" {
		t.Errorf("unexpected solution: %v", p.SolutionLine)
	}
	if p.Source != SourceMistake {
		t.Errorf("expected mistake provenance, got %q", p.Source)
	}
	if p.GroupKey != "g1" || p.SourceGameID != "g1" {
		t.Errorf("expected the source game as group key, got %q/%q", p.GroupKey, p.SourceGameID)
	}
	if p.Objective == "" || p.Hint == "" {
		t.Errorf("expected narrative fields to be filled")
	}
	if !strings.Contains(p.Explanation, "e2e4") {
		t.Errorf("explanation should name the correct move: %q", p.Explanation)
	}
	if !strings.Contains(p.Explanation, "mistake") {
		t.Errorf("explanation should mention the severity: %q", p.Explanation)
	}
}

func TestFromMistake_QualityGate(t *testing.T) {
	mock := oracle.NewMockEngine()
	a := NewAssembler(mock, testConfig())

	m := &analysis.Mistake{
		Position:     rules.StartingPosition().String(),
		CorrectMove:  "e2e4",
		Theme:        analysis.ThemeTactics,
		SourceGameID: "g1",
	}
	_, err := a.FromMistake(context.Background(), m, datasets.CategoryTactics)
	if !errors.Is(err, ErrLineTooShort) {
		t.Errorf("expected ErrLineTooShort, got %v", err)
	}
}

func TestFromDeviation(t *testing.T) {
	// Position before White's c3 in the Italian.
	moves := []string{"e4", "e5", "Nf3", "Nc6", "Bc4", "Bc5"}
	pos, err := rules.Replay(moves, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after, _, err := rules.ApplyMove(pos, "c2c3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pv := pvLine(t, after, "g8f6", "d2d3")
	mock := oracle.NewMockEngine(oracle.MockResponse{Result: &oracle.Result{
		BestMove: pv[0],
		PV:       pv,
		Eval:     oracle.Evaluation{Type: oracle.EvalCentipawn, Value: 15},
	}})

	cfg := testConfig()
	cfg.MinLine = 3
	cfg.MaxLine = 5
	a := NewAssembler(mock, cfg)

	d := &analysis.OpeningDeviation{
		Position:     pos.String(),
		PlayedMove:   "a2a3",
		ExpectedMove: "c2c3",
		Family:       "italian-game",
		Rating:       1400,
		SourceGameID: "g1",
		Ply:          6,
	}
	p, err := a.FromDeviation(context.Background(), d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.SolutionLine[0] != "c2c3" {
		t.Errorf("the book move must head the solution, got %q", p.SolutionLine[0])
	}
	if p.Category != datasets.CategoryOpenings {
		t.Errorf("expected openings category, got %q", p.Category)
	}
	if p.Theme != analysis.ThemeOpening {
		t.Errorf("expected opening theme, got %q", p.Theme)
	}
	if p.Rating != 1400 {
		t.Errorf("expected the line's rating, got %d", p.Rating)
	}
	if p.GroupKey != "italian-game" {
		t.Errorf("expected the family as group key, got %q", p.GroupKey)
	}
	if !strings.Contains(p.Explanation, "Italian Game") {
		t.Errorf("explanation should name the reference line: %q", p.Explanation)
	}
}

func TestFromRow_RoleShift(t *testing.T) {
	row := datasets.Row{
		ID:     "italian-game",
		Moves:  []string{"e4", "e5", "Nf3", "Nc6", "Bc4", "Bc5", "c3", "Nf6", "d3", "d6"},
		Rating: 1400,
		Theme:  string(analysis.ThemeOpening),
	}

	cfg := testConfig() // MinLine 4, MaxLine 6
	mock := oracle.NewMockEngine()
	a := NewAssembler(mock, cfg)

	p, err := a.FromRow(context.Background(), row, datasets.CategoryOpenings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The row's first move was applied, so the student plays the other side.
	startPos, err := rules.PositionFromFEN(p.StartFEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if startPos.Turn() != chess.Black {
		t.Errorf("expected the side to move flipped to black, got %v", startPos.Turn())
	}
	if p.SolutionLine[0] != "e7e5" {
		t.Errorf("expected the reply to head the solution, got %q", p.SolutionLine[0])
	}
	if len(p.SolutionLine) != cfg.MaxLine {
		t.Errorf("expected the line capped at %d plies, got %d", cfg.MaxLine, len(p.SolutionLine))
	}
	if p.Source != SourceDataset {
		t.Errorf("expected dataset provenance, got %q", p.Source)
	}
	if p.GroupKey != "italian-game" {
		t.Errorf("expected row id as group key, got %q", p.GroupKey)
	}
	// The reference line alone satisfied the length bounds.
	if mock.CallCount() != 0 {
		t.Errorf("expected no engine calls, got %d", mock.CallCount())
	}
}

func TestFromRow_TooFewMoves(t *testing.T) {
	row := datasets.Row{ID: "r1", FEN: "4k3/8/4K3/8/8/8/8/7Q w - - 0 1", Moves: []string{"h1h8"}}
	a := NewAssembler(oracle.NewMockEngine(), testConfig())
	if _, err := a.FromRow(context.Background(), row, datasets.CategoryEndgames); err == nil {
		t.Errorf("expected error for a row too short to role-shift")
	}
}

func TestFromFallbackRow(t *testing.T) {
	row := datasets.Row{
		ID:    "fallback-back-rank",
		FEN:   "6k1/5ppp/8/8/8/8/5PPP/4R1K1 w - - 0 1",
		Moves: []string{"e1e8"},
		Theme: string(analysis.ThemeForcedMate),
	}

	p, err := FromFallbackRow(row, datasets.CategoryTactics, BandEasy, testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Fallback rows are served verbatim, below the minimum-line gate.
	if len(p.SolutionLine) != 1 || p.SolutionLine[0] != "e1e8" {
		t.Errorf("unexpected solution: %v", p.SolutionLine)
	}
	if p.Source != SourceFallback {
		t.Errorf("expected fallback provenance, got %q", p.Source)
	}
	if p.Difficulty != BandEasy {
		t.Errorf("expected the requested band, got %q", p.Difficulty)
	}
	// No row rating: the band's estimate applies.
	if p.Rating != testConfig().RatingByBand[BandEasy] {
		t.Errorf("expected band rating, got %d", p.Rating)
	}
	if p.Theme != analysis.ThemeForcedMate {
		t.Errorf("expected forced-mate theme, got %q", p.Theme)
	}
}

func TestFromFallbackRow_KeepsRowRating(t *testing.T) {
	row := datasets.Row{
		ID:     "r1",
		FEN:    "4k3/8/4K3/8/8/8/8/7Q w - - 0 1",
		Moves:  []string{"h1h8"},
		Rating: 1350,
	}
	p, err := FromFallbackRow(row, datasets.CategoryEndgames, BandMedium, testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Rating != 1350 {
		t.Errorf("expected the row's own rating, got %d", p.Rating)
	}
}
