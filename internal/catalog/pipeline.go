package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/abhisek/pawnforge/internal/analysis"
	"github.com/abhisek/pawnforge/internal/datasets"
	"github.com/abhisek/pawnforge/internal/oracle"
	"github.com/abhisek/pawnforge/internal/puzzlegen"
	"github.com/abhisek/pawnforge/internal/store"
)

// pipeline runs the per-category generation flow over one engine session:
// select → classify → assemble → band. One pipeline per tier task; the
// engine session is owned by the tier, so oracle calls inside a tier are
// strictly sequential.
type pipeline struct {
	engine    oracle.Engine
	assembler *puzzlegen.Assembler
	cfg       Config
}

func newPipeline(engine oracle.Engine, cfg Config) *pipeline {
	return &pipeline{
		engine:    engine,
		assembler: puzzlegen.NewAssembler(engine, cfg.Generation),
		cfg:       cfg,
	}
}

// run produces the banded candidate batch for one category from the user's
// games plus the category's reference shard. Per-candidate failures
// (quality gate, engine trouble) drop the candidate; only context
// cancellation aborts.
func (p *pipeline) run(ctx context.Context, games []*store.GameRecord, category string) ([]*puzzlegen.Puzzle, error) {
	var batch []*puzzlegen.Puzzle

	fromGames, err := p.fromGames(ctx, games, category)
	if err != nil {
		return nil, err
	}
	batch = append(batch, fromGames...)

	fromShard, err := p.fromShard(ctx, category)
	if err != nil {
		return nil, err
	}
	batch = append(batch, fromShard...)

	puzzlegen.AssignBands(batch, p.cfg.Generation)
	return batch, nil
}

// fromGames mines the user's own games for the category.
func (p *pipeline) fromGames(ctx context.Context, games []*store.GameRecord, category string) ([]*puzzlegen.Puzzle, error) {
	var out []*puzzlegen.Puzzle

	var detector *analysis.DeviationDetector
	if category == datasets.CategoryOpenings {
		shard, err := datasets.Openings()
		if err != nil {
			return nil, err
		}
		detector = analysis.NewDeviationDetector(shard)
	}
	classifier := analysis.NewClassifier(p.engine, p.cfg.Classifier)

	for _, rec := range games {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g := analysis.GameFromRecord(rec)

		if detector != nil {
			if dev := detector.Detect(g); dev != nil {
				puzzle, err := p.assembler.FromDeviation(ctx, dev)
				if err == nil {
					out = append(out, puzzle)
				} else if !recoverable(err) {
					return nil, err
				}
			}
			continue
		}

		mistakes, err := classifier.ClassifyGame(ctx, g)
		if err != nil {
			return nil, err
		}
		for i := range mistakes {
			m := &mistakes[i]
			if !mistakeInCategory(m, category) {
				continue
			}
			puzzle, err := p.assembler.FromMistake(ctx, m, category)
			if err != nil {
				if recoverable(err) {
					continue
				}
				return nil, err
			}
			out = append(out, puzzle)
		}
	}

	return out, nil
}

// fromShard converts the category's reference rows.
func (p *pipeline) fromShard(ctx context.Context, category string) ([]*puzzlegen.Puzzle, error) {
	if category == datasets.CategoryOpenings {
		// Openings come from the user's deviations; the shard is the book.
		return nil, nil
	}

	shard, err := datasets.ByCategory(category)
	if err != nil {
		return nil, err
	}

	var out []*puzzlegen.Puzzle
	for _, row := range shard.Rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		puzzle, err := p.assembler.FromRow(ctx, row, category)
		if err != nil {
			if recoverable(err) {
				fmt.Fprintf(os.Stderr, "warning: dataset row %s: %v\n", row.ID, err)
				continue
			}
			return nil, err
		}
		out = append(out, puzzle)
	}
	return out, nil
}

// mistakeInCategory routes classified mistakes to the category being built.
func mistakeInCategory(m *analysis.Mistake, category string) bool {
	switch category {
	case datasets.CategoryEndgames:
		return m.Theme == analysis.ThemeEndgame
	case datasets.CategoryTactics:
		return m.Theme != analysis.ThemeEndgame
	default:
		return false
	}
}

// recoverable reports whether a per-candidate error is absorbed by the
// pipeline rather than aborting the tier.
func recoverable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}
