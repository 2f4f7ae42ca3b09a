// Package datasets loads the read-only reference shards: opening lines,
// endgame and tactic rows, and the curated fallback puzzle set. Shards are
// JSON, validated against a schema at load, and embedded in the binary.
package datasets

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

//go:embed seed/*.json
var seedFS embed.FS

// Shard categories.
const (
	CategoryTactics  = "tactics"
	CategoryOpenings = "openings"
	CategoryEndgames = "endgames"
	CategoryFallback = "fallback"
)

// Row is one reference entry: a starting position, a move list, and a
// strength rating. Openings leave FEN empty (lines start from the initial
// position). Fallback rows carry their serving category.
type Row struct {
	ID       string   `json:"id"`
	FEN      string   `json:"fen,omitempty"`
	Moves    []string `json:"moves"`
	Rating   int      `json:"rating,omitempty"`
	Theme    string   `json:"theme,omitempty"`
	Category string   `json:"category,omitempty"`
}

// Shard is a named collection of rows for one category.
type Shard struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Rows     []Row  `json:"rows"`
}

// ParseShard decodes and validates one shard document.
func ParseShard(data []byte) (*Shard, error) {
	if err := validateShard(data); err != nil {
		return nil, err
	}
	var s Shard
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode shard: %w", err)
	}
	return &s, nil
}

// LoadShardFile reads and validates a shard from disk, for user-supplied
// datasets alongside the embedded ones.
func LoadShardFile(path string) (*Shard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read shard %s: %w", path, err)
	}
	s, err := ParseShard(data)
	if err != nil {
		return nil, fmt.Errorf("shard %s: %w", path, err)
	}
	return s, nil
}

var (
	embeddedOnce   sync.Once
	embeddedShards map[string]*Shard
	embeddedErr    error
)

func loadEmbedded() {
	embeddedShards = make(map[string]*Shard)
	entries, err := seedFS.ReadDir("seed")
	if err != nil {
		embeddedErr = fmt.Errorf("read embedded seeds: %w", err)
		return
	}
	for _, entry := range entries {
		data, err := seedFS.ReadFile("seed/" + entry.Name())
		if err != nil {
			embeddedErr = fmt.Errorf("read embedded shard %s: %w", entry.Name(), err)
			return
		}
		s, err := ParseShard(data)
		if err != nil {
			embeddedErr = fmt.Errorf("embedded shard %s: %w", entry.Name(), err)
			return
		}
		embeddedShards[s.Category] = s
	}
}

// ByCategory returns the embedded shard for a category
// (openings, endgames, tactics).
func ByCategory(category string) (*Shard, error) {
	embeddedOnce.Do(loadEmbedded)
	if embeddedErr != nil {
		return nil, embeddedErr
	}
	s, ok := embeddedShards[category]
	if !ok {
		return nil, fmt.Errorf("no embedded shard for category %q", category)
	}
	return s, nil
}

// Openings returns the embedded opening-line shard.
func Openings() (*Shard, error) { return ByCategory(CategoryOpenings) }

// Endgames returns the embedded endgame shard.
func Endgames() (*Shard, error) { return ByCategory(CategoryEndgames) }

// Tactics returns the embedded tactic shard.
func Tactics() (*Shard, error) { return ByCategory(CategoryTactics) }

// Fallback returns the curated fallback rows for a serving category.
// These are complete puzzles, exempt from the minimum-line quality gate.
func Fallback(category string) ([]Row, error) {
	s, err := ByCategory(CategoryFallback)
	if err != nil {
		return nil, err
	}
	var rows []Row
	for _, r := range s.Rows {
		if r.Category == category {
			rows = append(rows, r)
		}
	}
	return rows, nil
}
