package interleave

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/abhisek/pawnforge/internal/puzzlegen"
)

func seeded() *Scheduler {
	return New(rand.New(rand.NewPCG(7, 11)))
}

func candidates(counts map[string]int) []*puzzlegen.Puzzle {
	var out []*puzzlegen.Puzzle
	for key, n := range counts {
		for i := 0; i < n; i++ {
			out = append(out, &puzzlegen.Puzzle{
				ID:       fmt.Sprintf("%s-%d", key, i),
				GroupKey: key,
			})
		}
	}
	return out
}

func assertNoAdjacency(t *testing.T, out []*puzzlegen.Puzzle) {
	t.Helper()
	for i := 1; i < len(out); i++ {
		if out[i-1].GroupKey == out[i].GroupKey {
			t.Errorf("adjacent puzzles share group %q at index %d", out[i].GroupKey, i)
		}
	}
}

func TestInterleave_NoSameGroupAdjacency(t *testing.T) {
	pool := candidates(map[string]int{"g1": 3, "g2": 3, "g3": 3})
	out := seeded().Interleave(pool, 9)
	if len(out) != 9 {
		t.Fatalf("expected 9 puzzles, got %d", len(out))
	}
	assertNoAdjacency(t, out)
}

func TestInterleave_DominantGroup(t *testing.T) {
	// One heavy source plus a few singletons: adjacency stays avoidable up
	// to the point the singletons run out.
	pool := candidates(map[string]int{"g1": 5, "g2": 1, "g3": 1})
	out := seeded().Interleave(pool, 5)
	if len(out) != 5 {
		t.Fatalf("expected 5 puzzles, got %d", len(out))
	}

	seen := map[string]bool{}
	for _, p := range out {
		seen[p.GroupKey] = true
	}
	if !seen["g2"] || !seen["g3"] {
		t.Errorf("expected the minority groups represented, got %v", seen)
	}
}

func TestInterleave_SingleGroupStillFills(t *testing.T) {
	// Adjacency is unavoidable with one group; the quota still matters more
	// than the spacing preference.
	pool := candidates(map[string]int{"g1": 4})
	out := seeded().Interleave(pool, 3)
	if len(out) != 3 {
		t.Errorf("expected 3 puzzles despite forced adjacency, got %d", len(out))
	}
}

func TestInterleave_FewerCandidatesThanQuota(t *testing.T) {
	pool := candidates(map[string]int{"g1": 1, "g2": 1})
	out := seeded().Interleave(pool, 10)
	if len(out) != 2 {
		t.Errorf("expected all candidates when the pool is small, got %d", len(out))
	}
}

func TestInterleave_Empty(t *testing.T) {
	s := seeded()
	if out := s.Interleave(nil, 5); out != nil {
		t.Errorf("expected nil for empty pool, got %v", out)
	}
	if out := s.Interleave(candidates(map[string]int{"g1": 2}), 0); out != nil {
		t.Errorf("expected nil for zero quota, got %v", out)
	}
}

func TestInterleave_ConcurrentCallers(t *testing.T) {
	// Difficulty tiers share one Scheduler and run in parallel; the shared
	// rand source must not race. Run under the race detector.
	s := New(nil)

	var wg sync.WaitGroup
	results := make([][]*puzzlegen.Puzzle, 3)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pool := candidates(map[string]int{"g1": 3, "g2": 3, "g3": 3})
			results[i] = s.Interleave(pool, 9)
		}()
	}
	wg.Wait()

	for i, out := range results {
		if len(out) != 9 {
			t.Fatalf("caller %d: expected 9 puzzles, got %d", i, len(out))
		}
		assertNoAdjacency(t, out)
	}
}

func TestInterleave_DeterministicWithSeed(t *testing.T) {
	pool1 := candidates(map[string]int{"g1": 3, "g2": 2, "g3": 2})
	pool2 := candidates(map[string]int{"g1": 3, "g2": 2, "g3": 2})

	a := New(rand.New(rand.NewPCG(1, 2))).Interleave(pool1, 7)
	b := New(rand.New(rand.NewPCG(1, 2))).Interleave(pool2, 7)

	if len(a) != len(b) {
		t.Fatalf("runs differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Errorf("index %d differs: %s vs %s", i, a[i].ID, b[i].ID)
		}
	}
}
