// Package puzzlegen turns classified mistakes, opening deviations, and
// reference dataset rows into canonical puzzles with verified multi-move
// solution lines.
package puzzlegen

import "github.com/abhisek/pawnforge/internal/analysis"

// DifficultyBand labels a puzzle's difficulty tier.
type DifficultyBand string

const (
	BandEasy   DifficultyBand = "easy"
	BandMedium DifficultyBand = "medium"
	BandHard   DifficultyBand = "hard"
)

// Bands lists every difficulty band in ascending order.
func Bands() []DifficultyBand {
	return []DifficultyBand{BandEasy, BandMedium, BandHard}
}

// Provenance records which source produced a puzzle.
type Provenance string

const (
	SourceMistake   Provenance = "mistake"
	SourceDeviation Provenance = "opening-deviation"
	SourceDataset   Provenance = "dataset"
	SourceFallback  Provenance = "fallback"
)

// Puzzle is the one canonical puzzle shape. Field names are normalized here,
// at assembly, and nowhere else. Read-only after creation.
type Puzzle struct {
	ID string `json:"id"`

	// StartFEN is the position presented to the student.
	StartFEN string `json:"start_fen"`

	// SolutionLine is the verified continuation in coordinate notation.
	// At least the configured minimum length unless Source is fallback.
	SolutionLine []string `json:"solution_line"`

	Difficulty DifficultyBand `json:"difficulty"`

	// Rating estimates the puzzle's strength requirement.
	Rating int `json:"rating"`

	Theme    analysis.Theme `json:"theme"`
	Category string         `json:"category"`

	Objective   string `json:"objective"`
	Hint        string `json:"hint"`
	Explanation string `json:"explanation"`

	Source Provenance `json:"source"`

	// SourceGameID is set for puzzles derived from the user's own games.
	SourceGameID string `json:"source_game_id,omitempty"`

	// GroupKey drives the diversity interleave: game id for mistakes,
	// opening family for deviations, row id family for dataset puzzles.
	GroupKey string `json:"group_key"`
}
