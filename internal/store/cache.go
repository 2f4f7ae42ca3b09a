package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/pawnforge/ent"
	"github.com/abhisek/pawnforge/ent/puzzlecache"
)

// cacheRepo implements CacheRepo using the ent client.
type cacheRepo struct {
	client *ent.Client
}

func (r *cacheRepo) Get(ctx context.Context, key string) (*CacheEntry, error) {
	row, err := r.client.PuzzleCache.Query().
		Where(puzzlecache.CacheKey(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query cache entry %s: %w", key, err)
	}
	return entCacheToEntry(row), nil
}

func (r *cacheRepo) Put(ctx context.Context, entry *CacheEntry) error {
	// Whole-entry replacement: delete any prior row for the key, then insert.
	_, err := r.client.PuzzleCache.Delete().
		Where(puzzlecache.CacheKey(entry.Key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("replace cache entry %s: %w", entry.Key, err)
	}

	generatedAt := entry.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now().UTC()
	}

	_, err = r.client.PuzzleCache.Create().
		SetCacheKey(entry.Key).
		SetUserID(entry.UserID).
		SetCategory(entry.Category).
		SetDifficulty(entry.Difficulty).
		SetSchemaVersion(entry.SchemaVersion).
		SetPuzzles(entry.Puzzles).
		SetGeneratedAt(generatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save cache entry %s: %w", entry.Key, err)
	}
	return nil
}

func (r *cacheRepo) Delete(ctx context.Context, userID, category string) (int, error) {
	q := r.client.PuzzleCache.Delete().
		Where(puzzlecache.UserID(userID))
	if category != "" {
		q = q.Where(puzzlecache.Category(category))
	}

	n, err := q.Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete cache entries for %s: %w", userID, err)
	}
	return n, nil
}

func (r *cacheRepo) List(ctx context.Context, userID string) ([]*CacheEntry, error) {
	rows, err := r.client.PuzzleCache.Query().
		Where(puzzlecache.UserID(userID)).
		Order(ent.Desc(puzzlecache.FieldGeneratedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cache entries for %s: %w", userID, err)
	}

	entries := make([]*CacheEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, entCacheToEntry(row))
	}
	return entries, nil
}

func entCacheToEntry(row *ent.PuzzleCache) *CacheEntry {
	return &CacheEntry{
		Key:           row.CacheKey,
		UserID:        row.UserID,
		Category:      row.Category,
		Difficulty:    row.Difficulty,
		SchemaVersion: row.SchemaVersion,
		Puzzles:       row.Puzzles,
		GeneratedAt:   row.GeneratedAt,
	}
}
