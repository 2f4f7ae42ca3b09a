package puzzlegen

import (
	"time"

	"github.com/abhisek/pawnforge/internal/oracle"
)

// Config controls line extension and rating assignment.
type Config struct {
	// MinLine and MaxLine bound solution-line length in plies. Candidates
	// that cannot reach MinLine are dropped; lines are truncated to MaxLine.
	// A single best move is a weak puzzle — the forced multi-move sequence
	// is what teaches follow-through.
	MinLine int
	MaxLine int

	// FirstBudget is the engine budget for the initial principal-variation
	// query. Deep search matters most at the branch point.
	FirstBudget time.Duration

	// StepBudget is the engine budget for each stepwise follow-up query.
	StepBudget time.Duration

	// Depth caps extension search depth. Zero means time-governed.
	Depth int

	// RatingByBand maps a difficulty label to a numeric rating estimate,
	// used when the source carries no rating of its own.
	RatingByBand map[DifficultyBand]int
}

// DefaultConfig returns a Config with the standard line bounds and budgets.
func DefaultConfig() Config {
	budgets := oracle.DefaultBudgets()
	return Config{
		MinLine:     12,
		MaxLine:     14,
		FirstBudget: budgets.FirstPV,
		StepBudget:  budgets.Step,
		Depth:       0,
		RatingByBand: map[DifficultyBand]int{
			BandEasy:   1200,
			BandMedium: 1600,
			BandHard:   2000,
		},
	}
}
