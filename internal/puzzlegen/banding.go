package puzzlegen

import "sort"

// AssignBands labels a generated batch by final line length: the batch is
// stable-sorted by ascending solution length, the shortest third becomes
// easy, the middle third medium, and the longest third hard. An explicit,
// reproducible policy — output ordering tests depend on it exactly.
// Puzzles without a source rating also receive the band's rating estimate.
func AssignBands(batch []*Puzzle, cfg Config) {
	if len(batch) == 0 {
		return
	}

	sort.SliceStable(batch, func(i, j int) bool {
		return len(batch[i].SolutionLine) < len(batch[j].SolutionLine)
	})

	third := (len(batch) + 2) / 3
	for i, p := range batch {
		switch {
		case i < third:
			p.Difficulty = BandEasy
		case i < 2*third:
			p.Difficulty = BandMedium
		default:
			p.Difficulty = BandHard
		}
		if p.Rating == 0 {
			p.Rating = cfg.RatingByBand[p.Difficulty]
		}
	}
}

// FilterBand returns the puzzles labeled with the given band, preserving
// order.
func FilterBand(batch []*Puzzle, band DifficultyBand) []*Puzzle {
	var out []*Puzzle
	for _, p := range batch {
		if p.Difficulty == band {
			out = append(out, p)
		}
	}
	return out
}
