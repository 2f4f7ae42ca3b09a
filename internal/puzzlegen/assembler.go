package puzzlegen

import (
	"context"
	"fmt"

	"github.com/abhisek/pawnforge/internal/analysis"
	"github.com/abhisek/pawnforge/internal/datasets"
	"github.com/abhisek/pawnforge/internal/oracle"
	"github.com/abhisek/pawnforge/internal/rules"
	"github.com/google/uuid"
	"github.com/notnil/chess"
)

// Assembler converts mistakes, opening deviations, and reference dataset
// rows into canonical puzzles. All notation normalization happens here.
type Assembler struct {
	extender *Extender
	cfg      Config
}

// NewAssembler creates an Assembler using the given engine session.
func NewAssembler(engine oracle.Engine, cfg Config) *Assembler {
	return &Assembler{
		extender: NewExtender(engine, cfg),
		cfg:      cfg,
	}
}

// FromMistake builds a puzzle whose first solution move is the move the
// player should have found, extended into a full continuation.
// Returns ErrLineTooShort when the quality gate drops the candidate.
func (a *Assembler) FromMistake(ctx context.Context, m *analysis.Mistake, category string) (*Puzzle, error) {
	pos, err := rules.PositionFromFEN(m.Position)
	if err != nil {
		return nil, fmt.Errorf("mistake position: %w", err)
	}
	after, correct, err := rules.ApplyMove(pos, m.CorrectMove)
	if err != nil {
		return nil, fmt.Errorf("apply correct move: %w", err)
	}

	ext, err := a.extender.Extend(ctx, after, a.cfg.MinLine-1, a.cfg.MaxLine-1)
	if err != nil {
		return nil, err
	}
	solution := append([]string{rules.UCI(correct)}, ext...)

	p := &Puzzle{
		ID:           uuid.NewString(),
		StartFEN:     m.Position,
		SolutionLine: solution,
		Theme:        m.Theme,
		Category:     category,
		Source:       SourceMistake,
		SourceGameID: m.SourceGameID,
		GroupKey:     m.SourceGameID,
	}
	applyNarrative(p, narrativeDetail{severity: m.Severity})
	return p, nil
}

// FromDeviation builds a puzzle from the position where the player left a
// reference opening line; the book move heads the solution.
func (a *Assembler) FromDeviation(ctx context.Context, d *analysis.OpeningDeviation) (*Puzzle, error) {
	pos, err := rules.PositionFromFEN(d.Position)
	if err != nil {
		return nil, fmt.Errorf("deviation position: %w", err)
	}
	after, book, err := rules.ApplyMove(pos, d.ExpectedMove)
	if err != nil {
		return nil, fmt.Errorf("apply book move: %w", err)
	}

	ext, err := a.extender.Extend(ctx, after, a.cfg.MinLine-1, a.cfg.MaxLine-1)
	if err != nil {
		return nil, err
	}
	solution := append([]string{rules.UCI(book)}, ext...)

	p := &Puzzle{
		ID:           uuid.NewString(),
		StartFEN:     d.Position,
		SolutionLine: solution,
		Rating:       d.Rating,
		Theme:        analysis.ThemeOpening,
		Category:     datasets.CategoryOpenings,
		Source:       SourceDeviation,
		SourceGameID: d.SourceGameID,
		GroupKey:     d.Family,
	}
	applyNarrative(p, narrativeDetail{family: d.Family})
	return p, nil
}

// FromRow builds a puzzle from a reference dataset row. The row's first
// move is applied to the stored position (role shift): the opponent's reply
// heads the stored line and the puzzle's side-to-move flips relative to the
// raw row, so the student inherits the position mid-sequence.
func (a *Assembler) FromRow(ctx context.Context, row datasets.Row, category string) (*Puzzle, error) {
	pos, err := rowStartPosition(row)
	if err != nil {
		return nil, err
	}
	if len(row.Moves) < 2 {
		return nil, fmt.Errorf("row %s: need at least two moves for role shift", row.ID)
	}

	start, _, err := rules.ApplyMove(pos, row.Moves[0])
	if err != nil {
		return nil, fmt.Errorf("row %s: apply entry move: %w", row.ID, err)
	}

	// Replay the remaining reference moves as the head of the solution.
	var solution []string
	cur := start
	for _, ms := range row.Moves[1:] {
		next, m, err := rules.ApplyMove(cur, ms)
		if err != nil {
			return nil, fmt.Errorf("row %s: apply move %q: %w", row.ID, ms, err)
		}
		solution = append(solution, rules.UCI(m))
		cur = next
	}

	// Extend past the reference line up to the quality gate.
	if len(solution) < a.cfg.MinLine {
		ext, err := a.extender.Extend(ctx, cur, a.cfg.MinLine-len(solution), a.cfg.MaxLine-len(solution))
		if err != nil {
			return nil, err
		}
		solution = append(solution, ext...)
	}
	if len(solution) > a.cfg.MaxLine {
		solution = solution[:a.cfg.MaxLine]
	}

	p := &Puzzle{
		ID:           uuid.NewString(),
		StartFEN:     start.String(),
		SolutionLine: solution,
		Rating:       row.Rating,
		Theme:        rowTheme(row),
		Category:     category,
		Source:       SourceDataset,
		GroupKey:     row.ID,
	}
	applyNarrative(p, narrativeDetail{})
	return p, nil
}

// FromFallbackRow builds a curated fallback puzzle. Served verbatim: no
// role shift, no extension, exempt from the minimum-line gate, and tagged
// so callers can distinguish it from generated material. A plain function
// because the path never consults an engine.
func FromFallbackRow(row datasets.Row, category string, band DifficultyBand, cfg Config) (*Puzzle, error) {
	pos, err := rowStartPosition(row)
	if err != nil {
		return nil, err
	}

	var solution []string
	cur := pos
	for _, ms := range row.Moves {
		next, m, err := rules.ApplyMove(cur, ms)
		if err != nil {
			return nil, fmt.Errorf("fallback row %s: apply move %q: %w", row.ID, ms, err)
		}
		solution = append(solution, rules.UCI(m))
		cur = next
	}

	rating := row.Rating
	if rating == 0 {
		rating = cfg.RatingByBand[band]
	}

	p := &Puzzle{
		ID:           uuid.NewString(),
		StartFEN:     pos.String(),
		SolutionLine: solution,
		Difficulty:   band,
		Rating:       rating,
		Theme:        rowTheme(row),
		Category:     category,
		Source:       SourceFallback,
		GroupKey:     row.ID,
	}
	applyNarrative(p, narrativeDetail{})
	return p, nil
}

func rowStartPosition(row datasets.Row) (*chess.Position, error) {
	if row.FEN == "" {
		return rules.StartingPosition(), nil
	}
	p, err := rules.PositionFromFEN(row.FEN)
	if err != nil {
		return nil, fmt.Errorf("row %s: %w", row.ID, err)
	}
	return p, nil
}

func rowTheme(row datasets.Row) analysis.Theme {
	if row.Theme != "" {
		return analysis.Theme(row.Theme)
	}
	return analysis.ThemeTactics
}
