// Package catalog orchestrates puzzle generation across categories and
// difficulties, memoizes results in the cache store, and guards against
// duplicate concurrent generation.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/abhisek/pawnforge/internal/datasets"
	"github.com/abhisek/pawnforge/internal/interleave"
	"github.com/abhisek/pawnforge/internal/oracle"
	"github.com/abhisek/pawnforge/internal/puzzlegen"
	"github.com/abhisek/pawnforge/internal/store"
	"golang.org/x/sync/errgroup"
)

// ErrGenerationInProgress signals that another request is already
// generating for the same (user, category). A non-error condition for the
// duplicate caller: retry after the first run completes.
var ErrGenerationInProgress = errors.New("catalog: generation already in progress")

// EngineFactory opens a fresh engine session. Each difficulty tier owns one
// session, so tiers may run concurrently while calls within a tier stay
// sequential.
type EngineFactory func() (oracle.Engine, error)

// Manager is the catalog's public entry point. All pipeline errors are
// recovered internally; only record/cache store failures escape.
type Manager struct {
	cache     store.CacheRepo
	games     store.GameRepo
	events    store.EventRepo
	newEngine EngineFactory
	mixer     *interleave.Scheduler
	cfg       Config

	mu       sync.Mutex
	inflight map[string]time.Time // (user|category) → start time
}

// NewManager creates a Manager with injected stores and engine factory.
// A nil mixer gets a randomly seeded one.
func NewManager(cache store.CacheRepo, games store.GameRepo, events store.EventRepo, newEngine EngineFactory, mixer *interleave.Scheduler, cfg Config) *Manager {
	if mixer == nil {
		mixer = interleave.New(nil)
	}
	return &Manager{
		cache:     cache,
		games:     games,
		events:    events,
		newEngine: newEngine,
		mixer:     mixer,
		cfg:       cfg,
		inflight:  make(map[string]time.Time),
	}
}

// Puzzles returns the puzzle set for (user, category, difficulty), serving
// from cache when a current entry exists and generating otherwise.
func (m *Manager) Puzzles(ctx context.Context, userID, category string, band puzzlegen.DifficultyBand) ([]*puzzlegen.Puzzle, error) {
	if entry, err := m.currentEntry(ctx, userID, category, band); err != nil {
		return nil, err
	} else if entry != nil {
		return decodePuzzles(entry)
	}

	if err := m.Generate(ctx, userID, category); err != nil {
		return nil, err
	}

	entry, err := m.currentEntry(ctx, userID, category, band)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("catalog: no entry after generation for %s/%s/%s", userID, category, band)
	}
	return decodePuzzles(entry)
}

// Generate runs the full pipeline for every difficulty tier of
// (user, category) concurrently, writing one cache entry per tier as it
// completes. A second call for the same pair while one is running returns
// ErrGenerationInProgress immediately.
func (m *Manager) Generate(ctx context.Context, userID, category string) error {
	if err := m.acquire(userID, category); err != nil {
		return err
	}
	defer m.release(userID, category)

	games, err := m.loadGames(ctx, userID)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, band := range puzzlegen.Bands() {
		g.Go(func() error {
			return m.generateTier(gctx, userID, category, band, games)
		})
	}
	return g.Wait()
}

// ClearCache removes the user's entries for a category, or every category
// when none is given.
func (m *Manager) ClearCache(ctx context.Context, userID, category string) (int, error) {
	var removed int
	err := m.withStoreRetry(ctx, func() error {
		n, err := m.cache.Delete(ctx, userID, category)
		removed = n
		return err
	})
	return removed, err
}

// generateTier runs one (category, difficulty) tier over its own engine
// session and writes the resulting entry.
func (m *Manager) generateTier(ctx context.Context, userID, category string, band puzzlegen.DifficultyBand, games []*store.GameRecord) error {
	start := time.Now()

	puzzles, genErr := m.buildTier(ctx, category, games, band)
	usedFallback := false
	if genErr == nil && len(puzzles) == 0 {
		// No generatable material: serve the curated set transparently.
		puzzles, genErr = m.fallbackTier(category, band)
		usedFallback = true
	}

	m.logGeneration(ctx, store.GenerationEventData{
		UserID:      userID,
		Category:    category,
		Difficulty:  string(band),
		PuzzleCount: len(puzzles),
		Fallback:    usedFallback,
		DurationMs:  time.Since(start).Milliseconds(),
		ErrorMessage: func() string {
			if genErr != nil {
				return genErr.Error()
			}
			return ""
		}(),
	})
	if genErr != nil {
		return genErr
	}

	payload, err := json.Marshal(puzzles)
	if err != nil {
		return fmt.Errorf("encode puzzles: %w", err)
	}

	entry := &store.CacheEntry{
		Key:           CacheKey(userID, category, band, m.cfg.SchemaVersion),
		UserID:        userID,
		Category:      category,
		Difficulty:    string(band),
		SchemaVersion: m.cfg.SchemaVersion,
		Puzzles:       payload,
		GeneratedAt:   time.Now().UTC(),
	}
	return m.withStoreRetry(ctx, func() error {
		return m.cache.Put(ctx, entry)
	})
}

// buildTier runs the pipeline and interleaves the band's candidates.
func (m *Manager) buildTier(ctx context.Context, category string, games []*store.GameRecord, band puzzlegen.DifficultyBand) ([]*puzzlegen.Puzzle, error) {
	engine, err := m.newEngine()
	if err != nil {
		// Engine trouble is recovered by the fallback set, not surfaced.
		return nil, nil
	}
	defer engine.Close()

	batch, err := newPipeline(engine, m.cfg).run(ctx, games, category)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, nil
	}

	candidates := puzzlegen.FilterBand(batch, band)
	return m.mixer.Interleave(candidates, m.cfg.PuzzlesPerSet), nil
}

// fallbackTier assembles the curated fallback set for a category.
func (m *Manager) fallbackTier(category string, band puzzlegen.DifficultyBand) ([]*puzzlegen.Puzzle, error) {
	rows, err := datasets.Fallback(category)
	if err != nil {
		return nil, err
	}

	var out []*puzzlegen.Puzzle
	for _, row := range rows {
		p, err := puzzlegen.FromFallbackRow(row, category, band, m.cfg.Generation)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// acquire claims the (user, category) generation slot. A slot held longer
// than StuckTimeout is treated as abandoned and stolen.
func (m *Manager) acquire(userID, category string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := userID + "|" + category
	if started, ok := m.inflight[key]; ok {
		if time.Since(started) < m.cfg.StuckTimeout {
			return ErrGenerationInProgress
		}
	}
	m.inflight[key] = time.Now()
	return nil
}

func (m *Manager) release(userID, category string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.inflight, userID+"|"+category)
}

// currentEntry fetches the cache entry and filters stale schema versions.
func (m *Manager) currentEntry(ctx context.Context, userID, category string, band puzzlegen.DifficultyBand) (*store.CacheEntry, error) {
	key := CacheKey(userID, category, band, m.cfg.SchemaVersion)
	var entry *store.CacheEntry
	err := m.withStoreRetry(ctx, func() error {
		e, err := m.cache.Get(ctx, key)
		entry = e
		return err
	})
	if err != nil {
		return nil, err
	}
	if entry == nil || !versionCurrent(entry.SchemaVersion, m.cfg.SchemaVersion) {
		return nil, nil
	}
	return entry, nil
}

func (m *Manager) loadGames(ctx context.Context, userID string) ([]*store.GameRecord, error) {
	var games []*store.GameRecord
	err := m.withStoreRetry(ctx, func() error {
		g, err := m.games.UserGames(ctx, userID, m.cfg.GamesPerUser)
		games = g
		return err
	})
	return games, err
}

// withStoreRetry retries a store operation a bounded number of times.
// Infrastructure failure past the bound is the one hard error the manager
// surfaces.
func (m *Manager) withStoreRetry(ctx context.Context, op func() error) error {
	attempts := m.cfg.StoreRetries
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if lastErr = op(); lastErr == nil {
			return nil
		}
	}
	return fmt.Errorf("store operation failed after %d attempts: %w", attempts, lastErr)
}

func (m *Manager) logGeneration(ctx context.Context, data store.GenerationEventData) {
	if m.events == nil {
		return
	}
	// Best effort; generation outcome does not depend on event logging.
	_ = m.events.AppendGeneration(ctx, data)
}

func decodePuzzles(entry *store.CacheEntry) ([]*puzzlegen.Puzzle, error) {
	var puzzles []*puzzlegen.Puzzle
	if err := json.Unmarshal(entry.Puzzles, &puzzles); err != nil {
		return nil, fmt.Errorf("decode cache entry %s: %w", entry.Key, err)
	}
	return puzzles, nil
}
