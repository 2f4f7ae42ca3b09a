// Package interleave diversifies a candidate puzzle pool so the final
// selection avoids back-to-back items from the same source.
package interleave

import (
	"math/rand/v2"
	"sort"
	"sync"

	"github.com/abhisek/pawnforge/internal/puzzlegen"
)

// Scheduler interleaves candidates by their group key. Output order is the
// only externally meaningful order; internal bucket visiting order is
// intentionally randomized across runs unless a seeded source is injected.
// Safe for concurrent use: difficulty tiers share one Scheduler, and the
// rand source is not safe on its own.
type Scheduler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Scheduler. A nil rng uses a randomly seeded source; tests
// inject a seeded one for determinism.
func New(rng *rand.Rand) *Scheduler {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Scheduler{rng: rng}
}

type bucket struct {
	key   string
	items []*puzzlegen.Puzzle
}

// Interleave selects up to n candidates, round-robining across group-key
// buckets (largest first) and never placing two items with the same key
// adjacently while an alternative exists. Terminates in O(n · buckets).
func (s *Scheduler) Interleave(candidates []*puzzlegen.Puzzle, n int) []*puzzlegen.Puzzle {
	if n <= 0 || len(candidates) == 0 {
		return nil
	}

	byKey := make(map[string]*bucket)
	var buckets []*bucket
	for _, p := range candidates {
		b, ok := byKey[p.GroupKey]
		if !ok {
			b = &bucket{key: p.GroupKey}
			byKey[p.GroupKey] = b
			buckets = append(buckets, b)
		}
		b.items = append(b.items, p)
	}

	// Largest buckets first so heavy sources drain early and fair
	// representation tracks bucket size. Key order breaks ties for
	// deterministic tests.
	sort.SliceStable(buckets, func(i, j int) bool {
		if len(buckets[i].items) != len(buckets[j].items) {
			return len(buckets[i].items) > len(buckets[j].items)
		}
		return buckets[i].key < buckets[j].key
	})

	var out []*puzzlegen.Puzzle
	lastKey := ""
	for len(out) < n {
		picked := false
		for _, b := range buckets {
			if len(out) >= n {
				break
			}
			if len(b.items) == 0 || b.key == lastKey {
				continue
			}
			out = append(out, b.items[0])
			b.items = b.items[1:]
			lastKey = b.key
			picked = true
		}
		if !picked {
			// Only conflicting buckets remain. Emit anyway when items are
			// left and the quota isn't met: adjacency is unavoidable once a
			// single key survives.
			remaining := largestNonEmpty(buckets)
			if remaining == nil {
				break
			}
			out = append(out, remaining.items[0])
			remaining.items = remaining.items[1:]
			lastKey = remaining.key
		}
	}

	s.shuffle(out)
	return out
}

// shuffle performs a light pass of random pair swaps, skipping any swap
// that would create a new same-key adjacency.
func (s *Scheduler) shuffle(items []*puzzlegen.Puzzle) {
	if len(items) < 2 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for range items {
		i := s.rng.IntN(len(items))
		j := s.rng.IntN(len(items))
		if i == j {
			continue
		}
		items[i], items[j] = items[j], items[i]
		if hasAdjacencyAround(items, i) || hasAdjacencyAround(items, j) {
			items[i], items[j] = items[j], items[i]
		}
	}
}

func hasAdjacencyAround(items []*puzzlegen.Puzzle, idx int) bool {
	if idx > 0 && items[idx-1].GroupKey == items[idx].GroupKey {
		return true
	}
	if idx < len(items)-1 && items[idx].GroupKey == items[idx+1].GroupKey {
		return true
	}
	return false
}

func largestNonEmpty(buckets []*bucket) *bucket {
	var best *bucket
	for _, b := range buckets {
		if len(b.items) == 0 {
			continue
		}
		if best == nil || len(b.items) > len(best.items) {
			best = b
		}
	}
	return best
}
