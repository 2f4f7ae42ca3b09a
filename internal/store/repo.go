package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/abhisek/pawnforge/ent/schema"
)

// Judgment is a third-party move-quality tag attached to one ply of a game.
type Judgment = schema.JudgmentData

// GameRecord is an imported game as the pipeline reads it. Owned by the
// ingestion layer; read-only to the pipeline.
type GameRecord struct {
	GameID      string
	UserID      string
	PlayerColor string // "w" or "b"
	White       string
	Black       string
	Result      string
	Moves       []string // standard algebraic notation, one entry per ply
	Judgments   []Judgment
	ImportedAt  time.Time
}

// GameRepo provides access to imported game records.
type GameRepo interface {
	// Save upserts a game record keyed by GameID.
	Save(ctx context.Context, rec *GameRecord) error

	// UserGames returns up to limit most recently imported games for a user.
	UserGames(ctx context.Context, userID string, limit int) ([]*GameRecord, error)
}

// CacheEntry is one generated puzzle set. Puzzles is the serialized ordered
// puzzle list; the store treats it as opaque bytes so the catalog layer owns
// the format (and cache hits are byte-identical to what was written).
type CacheEntry struct {
	Key           string
	UserID        string
	Category      string
	Difficulty    string
	SchemaVersion string
	Puzzles       json.RawMessage
	GeneratedAt   time.Time
}

// CacheRepo manages generated puzzle sets. Writes are whole-entry
// replacements; there is no partial mutation of an entry.
type CacheRepo interface {
	// Get returns the entry for key, or nil if none exists.
	Get(ctx context.Context, key string) (*CacheEntry, error)

	// Put stores the entry, replacing any existing entry with the same key.
	Put(ctx context.Context, entry *CacheEntry) error

	// Delete removes entries for a user, optionally filtered by category.
	// Empty category removes all of the user's entries. Returns the number
	// of entries removed.
	Delete(ctx context.Context, userID, category string) (int, error)

	// List returns all entries for a user, most recent first.
	List(ctx context.Context, userID string) ([]*CacheEntry, error)
}

// EngineRequestEventData captures the data for a single analysis call event.
type EngineRequestEventData struct {
	Engine       string
	Depth        int
	TimeBudgetMs int64
	LatencyMs    int64
	Success      bool
	BestMove     string
	ReachedDepth int
	ErrorMessage string
}

// GenerationEventData captures one catalog generation run for a tier.
type GenerationEventData struct {
	UserID       string
	Category     string
	Difficulty   string
	PuzzleCount  int
	Fallback     bool
	DurationMs   int64
	ErrorMessage string
}

// EngineStats summarizes engine usage for the stats command.
type EngineStats struct {
	Calls       int
	Failures    int
	TotalTimeMs int64
}

// EventRepo provides append access to pipeline events.
type EventRepo interface {
	// AppendEngineRequest records an analysis engine call event.
	AppendEngineRequest(ctx context.Context, data EngineRequestEventData) error

	// AppendGeneration records a completed generation tier.
	AppendGeneration(ctx context.Context, data GenerationEventData) error

	// EngineUsage aggregates engine call statistics.
	EngineUsage(ctx context.Context) (*EngineStats, error)
}
