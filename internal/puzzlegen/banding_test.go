package puzzlegen

import "testing"

func puzzleWithLine(n int) *Puzzle {
	line := make([]string, n)
	for i := range line {
		line[i] = "e2e4"
	}
	return &Puzzle{ID: string(rune('a' + n)), SolutionLine: line}
}

func TestAssignBands_ThirdsByLineLength(t *testing.T) {
	batch := []*Puzzle{
		puzzleWithLine(5), puzzleWithLine(1), puzzleWithLine(3),
		puzzleWithLine(2), puzzleWithLine(4), puzzleWithLine(6),
		puzzleWithLine(7), puzzleWithLine(9), puzzleWithLine(8),
	}
	AssignBands(batch, testConfig())

	for i := 1; i < len(batch); i++ {
		if len(batch[i-1].SolutionLine) > len(batch[i].SolutionLine) {
			t.Fatalf("batch not sorted ascending by line length at index %d", i)
		}
	}
	wantBands := []DifficultyBand{
		BandEasy, BandEasy, BandEasy,
		BandMedium, BandMedium, BandMedium,
		BandHard, BandHard, BandHard,
	}
	for i, p := range batch {
		if p.Difficulty != wantBands[i] {
			t.Errorf("index %d (line %d): expected %s, got %s", i, len(p.SolutionLine), wantBands[i], p.Difficulty)
		}
	}
}

func TestAssignBands_UnevenBatch(t *testing.T) {
	batch := []*Puzzle{
		puzzleWithLine(1), puzzleWithLine(2), puzzleWithLine(3), puzzleWithLine(4),
	}
	AssignBands(batch, testConfig())

	// ceil(4/3) = 2 per band: two easy, two medium, none hard.
	got := map[DifficultyBand]int{}
	for _, p := range batch {
		got[p.Difficulty]++
	}
	if got[BandEasy] != 2 || got[BandMedium] != 2 || got[BandHard] != 0 {
		t.Errorf("unexpected band distribution: %v", got)
	}
}

func TestAssignBands_Rating(t *testing.T) {
	cfg := testConfig()
	withRating := puzzleWithLine(2)
	withRating.Rating = 1500
	withoutRating := puzzleWithLine(8)

	AssignBands([]*Puzzle{withRating, withoutRating}, cfg)

	if withRating.Rating != 1500 {
		t.Errorf("a source rating must be preserved, got %d", withRating.Rating)
	}
	if withoutRating.Rating != cfg.RatingByBand[withoutRating.Difficulty] {
		t.Errorf("expected the band estimate, got %d", withoutRating.Rating)
	}
}

func TestAssignBands_Empty(t *testing.T) {
	AssignBands(nil, testConfig())
}

func TestFilterBand(t *testing.T) {
	batch := []*Puzzle{
		{ID: "a", Difficulty: BandEasy},
		{ID: "b", Difficulty: BandHard},
		{ID: "c", Difficulty: BandEasy},
	}
	easy := FilterBand(batch, BandEasy)
	if len(easy) != 2 || easy[0].ID != "a" || easy[1].ID != "c" {
		t.Errorf("unexpected filtered batch: %+v", easy)
	}
	if got := FilterBand(batch, BandMedium); len(got) != 0 {
		t.Errorf("expected no medium puzzles, got %d", len(got))
	}
}
