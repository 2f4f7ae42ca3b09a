package catalog

import (
	"time"

	"github.com/abhisek/pawnforge/internal/analysis"
	"github.com/abhisek/pawnforge/internal/datasets"
	"github.com/abhisek/pawnforge/internal/puzzlegen"
)

// Categories lists every puzzle category the catalog serves.
func Categories() []string {
	return []string{
		datasets.CategoryTactics,
		datasets.CategoryOpenings,
		datasets.CategoryEndgames,
	}
}

// Config controls catalog generation and caching.
type Config struct {
	// SchemaVersion tags cache keys and entries.
	SchemaVersion string

	// PuzzlesPerSet is the target size of one (category, difficulty) set.
	PuzzlesPerSet int

	// GamesPerUser bounds how many recent games feed one generation run.
	GamesPerUser int

	// StuckTimeout resets an abandoned in-flight generation so a stuck
	// task cannot permanently block future attempts.
	StuckTimeout time.Duration

	// StoreRetries bounds retries of record/cache store operations before
	// the failure surfaces to the caller.
	StoreRetries int

	// Classifier and Generation tune the pipeline stages.
	Classifier puzzleClassifierConfig
	Generation puzzlegen.Config
}

// puzzleClassifierConfig aliases the analysis config to keep Config
// self-contained for callers.
type puzzleClassifierConfig = analysis.ClassifierConfig

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		SchemaVersion: SchemaVersion,
		PuzzlesPerSet: 10,
		GamesPerUser:  25,
		StuckTimeout:  10 * time.Minute,
		StoreRetries:  3,
		Classifier:    analysis.DefaultClassifierConfig(),
		Generation:    puzzlegen.DefaultConfig(),
	}
}
