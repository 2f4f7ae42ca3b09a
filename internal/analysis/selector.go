package analysis

import (
	"errors"
	"sort"
)

// ErrInsufficientGameLength marks a game too short to analyze meaningfully.
// Callers skip the game; it is not a failure.
var ErrInsufficientGameLength = errors.New("analysis: game too short to analyze")

// Priority orders selections by how promising the ply is.
type Priority int

const (
	// PriorityMedium: middlegame sample.
	PriorityMedium Priority = iota
	// PriorityHigh: endgame sample. Endgame technique errors are common and
	// easy to isolate, so the endgame window is sampled more densely.
	PriorityHigh
	// PriorityCritical: ply flagged as a significant error by third-party
	// judgments, injected regardless of the sampling windows.
	PriorityCritical
)

// Selection is one ply chosen for deep analysis.
type Selection struct {
	Ply      int
	Priority Priority
}

// Sampling policy constants.
const (
	minAnalyzablePlies = 10
	middlegameStart    = 10
	middlegameEnd      = 40
	middlegameStep     = 3
	endgameTail        = 20
	endgameStep        = 2
)

// judgedSeverities are the third-party tags that force a ply into the
// selection set.
var judgedSeverities = map[string]bool{
	"mistake":    true,
	"blunder":    true,
	"inaccuracy": false, // too noisy to force analysis on its own
}

// SelectPlies scans the game's move list and returns the plies worth
// analyzing, ascending and de-duplicated (keeping the highest priority when
// a ply qualifies more than once).
func SelectPlies(g *Game) ([]Selection, error) {
	n := len(g.Moves)
	if n < minAnalyzablePlies {
		return nil, ErrInsufficientGameLength
	}

	byPly := make(map[int]Priority)
	record := func(ply int, p Priority) {
		if ply < 0 || ply >= n {
			return
		}
		if existing, ok := byPly[ply]; !ok || p > existing {
			byPly[ply] = p
		}
	}

	// Middlegame: every third ply in [10, min(40, n)).
	hi := middlegameEnd
	if n < hi {
		hi = n
	}
	for ply := middlegameStart; ply < hi; ply += middlegameStep {
		record(ply, PriorityMedium)
	}

	// Endgame: every second ply from max(40, n-20) to the end.
	lo := n - endgameTail
	if lo < middlegameEnd {
		lo = middlegameEnd
	}
	for ply := lo; ply < n; ply += endgameStep {
		record(ply, PriorityHigh)
	}

	// Judged plies: injected regardless of the windows above.
	for _, j := range g.Judgments {
		if judgedSeverities[j.Severity] {
			record(j.Ply, PriorityCritical)
		}
	}

	selections := make([]Selection, 0, len(byPly))
	for ply, p := range byPly {
		selections = append(selections, Selection{Ply: ply, Priority: p})
	}
	sort.Slice(selections, func(i, j int) bool {
		return selections[i].Ply < selections[j].Ply
	})
	return selections, nil
}

// endgamePly reports whether the ply falls in the game's endgame window.
func endgamePly(ply, gameLen int) bool {
	lo := gameLen - endgameTail
	if lo < middlegameEnd {
		lo = middlegameEnd
	}
	return ply >= lo
}
