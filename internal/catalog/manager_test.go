package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/pawnforge/internal/datasets"
	"github.com/abhisek/pawnforge/internal/oracle"
	"github.com/abhisek/pawnforge/internal/puzzlegen"
	"github.com/abhisek/pawnforge/internal/store"
)

type fakeCache struct {
	mu       sync.Mutex
	entries  map[string]*store.CacheEntry
	puts     int
	failPuts int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]*store.CacheEntry{}}
}

func (f *fakeCache) Get(_ context.Context, key string) (*store.CacheEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.entries[key], nil
}

func (f *fakeCache) Put(_ context.Context, entry *store.CacheEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failPuts > 0 {
		f.failPuts--
		return errors.New("disk full")
	}
	f.puts++
	f.entries[entry.Key] = entry
	return nil
}

func (f *fakeCache) Delete(_ context.Context, userID, category string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var removed int
	for key, e := range f.entries {
		if e.UserID != userID {
			continue
		}
		if category != "" && e.Category != category {
			continue
		}
		delete(f.entries, key)
		removed++
	}
	return removed, nil
}

func (f *fakeCache) List(_ context.Context, userID string) ([]*store.CacheEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*store.CacheEntry
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeCache) putCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.puts
}

type fakeGames struct {
	games []*store.GameRecord
}

func (f *fakeGames) Save(context.Context, *store.GameRecord) error { return nil }

func (f *fakeGames) UserGames(_ context.Context, userID string, limit int) ([]*store.GameRecord, error) {
	if len(f.games) > limit {
		return f.games[:limit], nil
	}
	return f.games, nil
}

type fakeEvents struct {
	mu          sync.Mutex
	generations []store.GenerationEventData
}

func (f *fakeEvents) AppendEngineRequest(context.Context, store.EngineRequestEventData) error {
	return nil
}

func (f *fakeEvents) AppendGeneration(_ context.Context, data store.GenerationEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.generations = append(f.generations, data)
	return nil
}

func (f *fakeEvents) EngineUsage(context.Context) (*store.EngineStats, error) {
	return &store.EngineStats{}, nil
}

func (f *fakeEvents) generationEvents() []store.GenerationEventData {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]store.GenerationEventData, len(f.generations))
	copy(out, f.generations)
	return out
}

// mockFactory yields engines with no canned responses: every analysis call
// fails, so generation falls through to the curated fallback sets.
func mockFactory() (oracle.Engine, error) {
	return oracle.NewMockEngine(), nil
}

func newTestManager(cache *fakeCache, games *fakeGames, events *fakeEvents) *Manager {
	return NewManager(cache, games, events, mockFactory, nil, DefaultConfig())
}

func TestGenerate_FallbackWhenNoMaterial(t *testing.T) {
	cache := newFakeCache()
	events := &fakeEvents{}
	m := newTestManager(cache, &fakeGames{}, events)

	if err := m.Generate(context.Background(), "alice", datasets.CategoryTactics); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fallbackRows, err := datasets.Fallback(datasets.CategoryTactics)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, band := range puzzlegen.Bands() {
		key := CacheKey("alice", datasets.CategoryTactics, band, SchemaVersion)
		entry, err := cache.Get(context.Background(), key)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry == nil {
			t.Fatalf("expected a cache entry for band %s", band)
		}

		var puzzles []*puzzlegen.Puzzle
		if err := json.Unmarshal(entry.Puzzles, &puzzles); err != nil {
			t.Fatalf("decode entry: %v", err)
		}
		if len(puzzles) != len(fallbackRows) {
			t.Errorf("band %s: expected %d fallback puzzles, got %d", band, len(fallbackRows), len(puzzles))
		}
		for _, p := range puzzles {
			if p.Source != puzzlegen.SourceFallback {
				t.Errorf("band %s: expected fallback provenance, got %q", band, p.Source)
			}
			if p.Difficulty != band {
				t.Errorf("band %s: puzzle labeled %q", band, p.Difficulty)
			}
		}
	}

	gens := events.generationEvents()
	if len(gens) != len(puzzlegen.Bands()) {
		t.Fatalf("expected one generation event per band, got %d", len(gens))
	}
	for _, g := range gens {
		if !g.Fallback {
			t.Errorf("expected fallback flagged in the %s event", g.Difficulty)
		}
	}
}

func TestGenerate_Reentrancy(t *testing.T) {
	m := newTestManager(newFakeCache(), &fakeGames{}, &fakeEvents{})
	m.inflight["alice|tactics"] = time.Now()

	err := m.Generate(context.Background(), "alice", datasets.CategoryTactics)
	if !errors.Is(err, ErrGenerationInProgress) {
		t.Errorf("expected ErrGenerationInProgress, got %v", err)
	}

	// A different category for the same user is independent.
	if err := m.Generate(context.Background(), "alice", datasets.CategoryEndgames); err != nil {
		t.Errorf("unexpected error for independent category: %v", err)
	}
}

func TestGenerate_StuckSlotReset(t *testing.T) {
	cache := newFakeCache()
	m := newTestManager(cache, &fakeGames{}, &fakeEvents{})
	m.inflight["alice|tactics"] = time.Now().Add(-11 * time.Minute)

	if err := m.Generate(context.Background(), "alice", datasets.CategoryTactics); err != nil {
		t.Fatalf("a stale slot must be stolen, got %v", err)
	}
	if cache.putCount() == 0 {
		t.Errorf("expected entries written after stealing the slot")
	}

	m.mu.Lock()
	_, held := m.inflight["alice|tactics"]
	m.mu.Unlock()
	if held {
		t.Errorf("slot should be released after generation")
	}
}

func TestPuzzles_CacheHitIsByteIdentical(t *testing.T) {
	cache := newFakeCache()
	m := newTestManager(cache, &fakeGames{}, &fakeEvents{})

	first, err := m.Puzzles(context.Background(), "alice", datasets.CategoryTactics, puzzlegen.BandMedium)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) == 0 {
		t.Fatal("expected puzzles on first call")
	}
	putsAfterFirst := cache.putCount()

	key := CacheKey("alice", datasets.CategoryTactics, puzzlegen.BandMedium, SchemaVersion)
	entry, _ := cache.Get(context.Background(), key)
	raw := append([]byte(nil), entry.Puzzles...)

	second, err := m.Puzzles(context.Background(), "alice", datasets.CategoryTactics, puzzlegen.BandMedium)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.putCount() != putsAfterFirst {
		t.Errorf("a cache hit must not rewrite entries")
	}
	entry, _ = cache.Get(context.Background(), key)
	if !bytes.Equal(raw, entry.Puzzles) {
		t.Errorf("cached bytes changed between reads")
	}
	if len(second) != len(first) {
		t.Errorf("cache hit returned %d puzzles, first run %d", len(second), len(first))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("puzzle %d differs between runs", i)
		}
	}
}

func TestPuzzles_StaleSchemaRegenerates(t *testing.T) {
	cache := newFakeCache()
	m := newTestManager(cache, &fakeGames{}, &fakeEvents{})

	key := CacheKey("alice", datasets.CategoryTactics, puzzlegen.BandMedium, SchemaVersion)
	cache.entries[key] = &store.CacheEntry{
		Key:           key,
		UserID:        "alice",
		Category:      datasets.CategoryTactics,
		Difficulty:    string(puzzlegen.BandMedium),
		SchemaVersion: "v2.0.0",
		Puzzles:       json.RawMessage(`[]`),
		GeneratedAt:   time.Now(),
	}

	puzzles, err := m.Puzzles(context.Background(), "alice", datasets.CategoryTactics, puzzlegen.BandMedium)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(puzzles) == 0 {
		t.Errorf("expected a regenerated set past the stale schema entry")
	}
	entry, _ := cache.Get(context.Background(), key)
	if entry.SchemaVersion != SchemaVersion {
		t.Errorf("expected the entry rewritten at %s, got %s", SchemaVersion, entry.SchemaVersion)
	}
}

func TestGenerate_StoreRetries(t *testing.T) {
	cache := newFakeCache()
	cache.failPuts = 2 // fewer than the retry budget per operation
	m := newTestManager(cache, &fakeGames{}, &fakeEvents{})

	if err := m.Generate(context.Background(), "alice", datasets.CategoryTactics); err != nil {
		t.Fatalf("expected retries to absorb transient failures, got %v", err)
	}

	exhausted := newFakeCache()
	exhausted.failPuts = 100
	m2 := newTestManager(exhausted, &fakeGames{}, &fakeEvents{})
	if err := m2.Generate(context.Background(), "alice", datasets.CategoryTactics); err == nil {
		t.Errorf("expected an error once the retry budget is exhausted")
	}
}

func TestClearCache(t *testing.T) {
	cache := newFakeCache()
	m := newTestManager(cache, &fakeGames{}, &fakeEvents{})

	ctx := context.Background()
	if err := m.Generate(ctx, "alice", datasets.CategoryTactics); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Generate(ctx, "alice", datasets.CategoryEndgames); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	removed, err := m.ClearCache(ctx, "alice", datasets.CategoryTactics)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != len(puzzlegen.Bands()) {
		t.Errorf("expected %d tactics entries removed, got %d", len(puzzlegen.Bands()), removed)
	}

	removed, err = m.ClearCache(ctx, "alice", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != len(puzzlegen.Bands()) {
		t.Errorf("expected the remaining endgame entries removed, got %d", removed)
	}
}
