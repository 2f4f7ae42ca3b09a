package puzzlegen

import (
	"context"
	"errors"

	"github.com/abhisek/pawnforge/internal/oracle"
	"github.com/abhisek/pawnforge/internal/rules"
	"github.com/notnil/chess"
)

// ErrLineTooShort marks a candidate whose continuation could not reach the
// minimum length. A quality gate: the candidate is dropped, not surfaced as
// a user error.
var ErrLineTooShort = errors.New("puzzlegen: continuation shorter than minimum")

// Extender grows a short engine line into a bounded forced continuation by
// re-querying the engine iteratively.
type Extender struct {
	engine oracle.Engine
	cfg    Config
}

// NewExtender creates an Extender using the given engine session.
func NewExtender(engine oracle.Engine, cfg Config) *Extender {
	return &Extender{engine: engine, cfg: cfg}
}

// Extend produces a continuation of minPlies to maxPlies half-moves from
// pos. Strategy is two-tier: one deep principal-variation query first, then
// stepwise single-best-move queries until the minimum is met. Stepwise
// querying guarantees forward progress even when the engine declines to
// return a multi-move line. Returns ErrLineTooShort when both strategies
// are exhausted short of minPlies.
func (e *Extender) Extend(ctx context.Context, pos *chess.Position, minPlies, maxPlies int) ([]string, error) {
	var line []string

	// Tier one: a single deep query for a principal variation.
	res, err := e.engine.Analyze(ctx, oracle.Request{
		Position:   pos,
		Depth:      e.cfg.Depth,
		TimeBudget: e.cfg.FirstBudget,
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		// A failed first query still leaves the stepwise tier.
		res = nil
	}

	if res != nil {
		pv := res.PV
		if len(pv) == 0 {
			pv = []*chess.Move{res.BestMove}
		}
		for _, m := range pv {
			if len(line) >= maxPlies {
				break
			}
			next, applyErr := rules.Apply(pos, m)
			if applyErr != nil {
				// Unrecognized or stale PV move: stop consuming the line.
				break
			}
			line = append(line, rules.UCI(m))
			pos = next
		}
	}

	// Tier two: stepwise fallback, one best move per query.
	for len(line) < minPlies {
		if rules.IsGameOver(pos) {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err := e.engine.Analyze(ctx, oracle.Request{
			Position:   pos,
			Depth:      e.cfg.Depth,
			TimeBudget: e.cfg.StepBudget,
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			break
		}

		next, applyErr := rules.Apply(pos, res.BestMove)
		if applyErr != nil {
			break
		}
		line = append(line, rules.UCI(res.BestMove))
		pos = next
	}

	if len(line) < minPlies {
		return nil, ErrLineTooShort
	}
	if len(line) > maxPlies {
		line = line[:maxPlies]
	}
	return line, nil
}
