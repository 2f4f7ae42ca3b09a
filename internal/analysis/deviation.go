package analysis

import (
	"fmt"
	"os"

	"github.com/abhisek/pawnforge/internal/datasets"
	"github.com/abhisek/pawnforge/internal/rules"
)

const (
	// openingMaxPly bounds how deep into the game a departure still counts
	// as an opening deviation.
	openingMaxPly = 12

	// minBookPrefix is the number of plies a game must follow a reference
	// line before a departure from it is meaningful.
	minBookPrefix = 2
)

// DeviationDetector finds the first departure from a known reference
// opening line by the subject player.
type DeviationDetector struct {
	lines []datasets.Row
}

// NewDeviationDetector creates a detector over the given opening shard.
func NewDeviationDetector(shard *datasets.Shard) *DeviationDetector {
	return &DeviationDetector{lines: shard.Rows}
}

// Detect returns the subject's first opening deviation in the game, or nil
// when the game followed book, left book too late, or the opponent deviated
// first. Reference lines are matched by move identity, not notation text.
func (d *DeviationDetector) Detect(g *Game) *OpeningDeviation {
	best := -1
	var bestDev *OpeningDeviation

	for _, line := range d.lines {
		matched, dev := d.matchLine(g, line)
		if matched > best {
			best = matched
			bestDev = dev
		}
	}

	if best < minBookPrefix {
		return nil
	}
	return bestDev
}

// matchLine walks the game against one reference line. Returns the matched
// prefix length and, when the first divergence is the subject's move inside
// the opening window, the deviation record.
func (d *DeviationDetector) matchLine(g *Game, line datasets.Row) (int, *OpeningDeviation) {
	pos := rules.StartingPosition()
	limit := len(line.Moves)
	if len(g.Moves) < limit {
		limit = len(g.Moves)
	}

	for ply := 0; ply < limit && ply < openingMaxPly; ply++ {
		played, err := rules.DecodeMove(pos, g.Moves[ply])
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: game %s ply %d: unplayable move %q\n", g.ID, ply, g.Moves[ply])
			return ply, nil
		}
		book, err := rules.DecodeMove(pos, line.Moves[ply])
		if err != nil {
			// Malformed reference row; treat the line as exhausted here.
			return ply, nil
		}

		if !rules.SameMove(played, book) {
			if !playerToMove(pos, g.PlayerColor) {
				// The opponent left book first; nothing to train.
				return ply, nil
			}
			return ply, &OpeningDeviation{
				Position:     pos.String(),
				PlayedMove:   rules.UCI(played),
				ExpectedMove: rules.UCI(book),
				Family:       line.ID,
				Rating:       line.Rating,
				SourceGameID: g.ID,
				Ply:          ply,
			}
		}

		next, err := rules.Apply(pos, played)
		if err != nil {
			return ply, nil
		}
		pos = next
	}

	// Followed the line to its end (or the window): no deviation.
	return limit, nil
}
