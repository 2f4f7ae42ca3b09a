package analysis

import (
	"testing"

	"github.com/abhisek/pawnforge/internal/datasets"
	"github.com/notnil/chess"
)

func openingDetector(t *testing.T) *DeviationDetector {
	t.Helper()
	shard, err := datasets.Openings()
	if err != nil {
		t.Fatalf("load openings shard: %v", err)
	}
	return NewDeviationDetector(shard)
}

func TestDetect_SubjectDeviation(t *testing.T) {
	d := openingDetector(t)
	// Follows the Italian for six plies, then White plays a3 where book
	// wants c3.
	g := &Game{
		ID:          "g1",
		PlayerColor: chess.White,
		Moves:       []string{"e4", "e5", "Nf3", "Nc6", "Bc4", "Bc5", "a3", "Nf6"},
	}

	dev := d.Detect(g)
	if dev == nil {
		t.Fatal("expected a deviation")
	}
	if dev.Family != "italian-game" {
		t.Errorf("expected italian-game family, got %q", dev.Family)
	}
	if dev.Ply != 6 {
		t.Errorf("expected deviation at ply 6, got %d", dev.Ply)
	}
	if dev.PlayedMove != "a2a3" {
		t.Errorf("expected played move a2a3, got %q", dev.PlayedMove)
	}
	if dev.ExpectedMove != "c2c3" {
		t.Errorf("expected book move c2c3, got %q", dev.ExpectedMove)
	}
	if dev.Rating != 1400 {
		t.Errorf("expected the line's rating 1400, got %d", dev.Rating)
	}
	if dev.SourceGameID != "g1" {
		t.Errorf("expected source game g1, got %q", dev.SourceGameID)
	}
}

func TestDetect_OpponentDeviationIgnored(t *testing.T) {
	d := openingDetector(t)
	// Black leaves the Italian at ply 5; the subject plays White, so there
	// is nothing to train.
	g := &Game{
		ID:          "g2",
		PlayerColor: chess.White,
		Moves:       []string{"e4", "e5", "Nf3", "Nc6", "Bc4", "d6", "d4", "exd4"},
	}
	if dev := d.Detect(g); dev != nil {
		t.Errorf("expected nil for an opponent deviation, got %+v", dev)
	}
}

func TestDetect_NoBookPrefix(t *testing.T) {
	d := openingDetector(t)
	// The game never matches any reference line long enough to count.
	g := &Game{
		ID:          "g3",
		PlayerColor: chess.White,
		Moves:       []string{"h4", "h5", "a4", "a5", "Nf3", "Nf6"},
	}
	if dev := d.Detect(g); dev != nil {
		t.Errorf("expected nil without a book prefix, got %+v", dev)
	}
}

func TestDetect_FollowedBook(t *testing.T) {
	d := openingDetector(t)
	g := &Game{
		ID:          "g4",
		PlayerColor: chess.White,
		Moves:       []string{"e4", "e5", "Nf3", "Nc6", "Bc4", "Bc5", "c3", "Nf6", "d3", "d6"},
	}
	if dev := d.Detect(g); dev != nil {
		t.Errorf("expected nil when the game follows book, got %+v", dev)
	}
}

func TestDetect_BlackSubject(t *testing.T) {
	d := openingDetector(t)
	// Black leaves the Najdorf at ply 5 (d6 is book, e6 is not, and no other
	// line continues e4 c5 Nf3 with e6 here).
	g := &Game{
		ID:          "g5",
		PlayerColor: chess.Black,
		Moves:       []string{"e4", "c5", "Nf3", "e6", "d4", "cxd4"},
	}

	dev := d.Detect(g)
	if dev == nil {
		t.Fatal("expected a deviation for the black subject")
	}
	if dev.Family != "sicilian-najdorf" {
		t.Errorf("expected sicilian-najdorf family, got %q", dev.Family)
	}
	if dev.Ply != 3 {
		t.Errorf("expected deviation at ply 3, got %d", dev.Ply)
	}
	if dev.ExpectedMove != "d7d6" {
		t.Errorf("expected book move d7d6, got %q", dev.ExpectedMove)
	}
}
