package analysis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/pawnforge/internal/oracle"
	"github.com/abhisek/pawnforge/internal/rules"
	"github.com/notnil/chess"
)

// Centipawn-loss thresholds. The estimation itself is a heuristic (see the
// Alternatives path below); the thresholds band its output and are relied on
// by downstream difficulty banding, so they must move together if ever tuned.
const (
	// NoiseFloorCP: losses below this are discarded as noise.
	NoiseFloorCP = 50

	// MistakeCP and BlunderCP open the second and third severity bands.
	MistakeCP = 150
	BlunderCP = 300

	// MissedWinLossCP is the fixed loss assigned when the engine announced
	// a forced mate the player failed to play.
	MissedWinLossCP = 500

	// DefaultLossCP is the estimate used when the engine reports no
	// evaluation for the played move. Deliberately moderate: an unverified
	// non-best move classifies as a plain mistake, not noise or a blunder.
	DefaultLossCP = 150
)

// ClassifierConfig controls engine usage during classification.
type ClassifierConfig struct {
	// TimeBudget is the per-position engine search budget.
	TimeBudget time.Duration

	// Depth caps search depth. Zero means time-governed.
	Depth int
}

// DefaultClassifierConfig returns the standard classification budget.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		TimeBudget: oracle.DefaultBudgets().Classify,
		Depth:      0,
	}
}

// Classifier compares played moves against engine analysis and produces
// Mistake records. One engine call per selected position; positions are
// analyzed in ascending ply order.
type Classifier struct {
	engine oracle.Engine
	cfg    ClassifierConfig
}

// NewClassifier creates a Classifier using the given engine session.
func NewClassifier(engine oracle.Engine, cfg ClassifierConfig) *Classifier {
	return &Classifier{engine: engine, cfg: cfg}
}

// ClassifyGame runs selection and classification over one game.
// Short games yield no mistakes. Per-position failures (engine timeout,
// empty result, unplayable recorded move) skip the position; only context
// cancellation aborts the scan.
func (c *Classifier) ClassifyGame(ctx context.Context, g *Game) ([]Mistake, error) {
	selections, err := SelectPlies(g)
	if err != nil {
		// Too short: a skip, not an error.
		return nil, nil
	}

	var mistakes []Mistake

	pos := rules.StartingPosition()
	ply := 0
	for _, sel := range selections {
		// Advance the board to the selected ply.
		for ; ply < sel.Ply; ply++ {
			next, _, err := rules.ApplyMove(pos, g.Moves[ply])
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: game %s ply %d: %v\n", g.ID, ply, err)
				return mistakes, nil
			}
			pos = next
		}

		if !playerToMove(pos, g.PlayerColor) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return mistakes, err
		}

		if m := c.classifyPosition(ctx, g, pos, sel.Ply); m != nil {
			mistakes = append(mistakes, *m)
		}
	}

	return mistakes, nil
}

// classifyPosition analyzes one position and returns a Mistake, or nil when
// the played move was best, the loss was noise, or the engine gave nothing
// usable.
func (c *Classifier) classifyPosition(ctx context.Context, g *Game, pos *chess.Position, ply int) *Mistake {
	played, err := rules.DecodeMove(pos, g.Moves[ply])
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: game %s ply %d: unplayable move %q\n", g.ID, ply, g.Moves[ply])
		return nil
	}

	res, err := c.engine.Analyze(ctx, oracle.Request{
		Position:   pos,
		Depth:      c.cfg.Depth,
		TimeBudget: c.cfg.TimeBudget,
	})
	if err != nil {
		// Timeout or empty result: skip the position silently.
		return nil
	}

	// Best-move identity is by origin and destination square, not notation.
	if rules.SameMove(played, res.BestMove) {
		return nil
	}

	missedMate := res.Eval.Type == oracle.EvalMate && res.Eval.Value > 0

	loss := estimateLoss(res, played, missedMate)
	if loss < NoiseFloorCP {
		return nil
	}

	return &Mistake{
		Position:      pos.String(),
		PlayedMove:    rules.UCI(played),
		CorrectMove:   rules.UCI(res.BestMove),
		CentipawnLoss: loss,
		Severity:      severityFor(loss, missedMate),
		Theme:         inferTheme(res, missedMate, ply, len(g.Moves)),
		SourceGameID:  g.ID,
		Ply:           ply,
	}
}

// estimateLoss approximates the cost of the played move.
//
// When the engine reported candidate lines including the played move, the
// loss is the evaluation gap between the best line and the played line.
// Otherwise the fixed default applies. This indirect estimate (rather than
// re-searching the played move) is a deliberate, preserved heuristic.
func estimateLoss(res *oracle.Result, played *chess.Move, missedMate bool) int {
	if missedMate {
		return MissedWinLossCP
	}

	for _, alt := range res.Alternatives {
		if !rules.SameMove(alt.Move, played) {
			continue
		}
		if alt.Eval.Type == oracle.EvalMate {
			// Played into being mated.
			return MissedWinLossCP
		}
		if res.Eval.Type != oracle.EvalCentipawn {
			break
		}
		loss := res.Eval.Value - alt.Eval.Value
		if loss < 0 {
			loss = 0
		}
		return loss
	}

	return DefaultLossCP
}

func severityFor(loss int, missedMate bool) Severity {
	switch {
	case missedMate:
		return SeverityMissedWin
	case loss >= BlunderCP:
		return SeverityBlunder
	case loss >= MistakeCP:
		return SeverityMistake
	default:
		return SeverityInaccuracy
	}
}

// inferTheme picks a coarse motif from simple facts about the best move:
// did it mate, capture, or check?
func inferTheme(res *oracle.Result, missedMate bool, ply, gameLen int) Theme {
	switch {
	case missedMate:
		return ThemeForcedMate
	case rules.IsCapture(res.BestMove):
		return ThemeHangingPiece
	case rules.GivesCheck(res.BestMove):
		return ThemeDiscoveredCheck
	case endgamePly(ply, gameLen):
		return ThemeEndgame
	case ply < middlegameStart:
		return ThemeOpening
	default:
		return ThemeTactics
	}
}

func playerToMove(pos *chess.Position, player chess.Color) bool {
	return pos.Turn() == player
}
