// Package analysis scans imported games for instructive mistakes: it selects
// the plies worth deep analysis, classifies the played move against the
// engine's preference, and detects early deviations from reference opening
// lines.
package analysis

import (
	"github.com/abhisek/pawnforge/internal/store"
	"github.com/notnil/chess"
)

// Game is a game under analysis: the recorded move list plus the metadata
// the selector and classifier need. Built from a store.GameRecord; read-only.
type Game struct {
	ID          string
	UserID      string
	PlayerColor chess.Color
	Moves       []string // one entry per ply, algebraic or coordinate
	Judgments   []store.Judgment
}

// GameFromRecord converts an imported record into an analyzable game.
func GameFromRecord(rec *store.GameRecord) *Game {
	color := chess.White
	if rec.PlayerColor == "b" {
		color = chess.Black
	}
	return &Game{
		ID:          rec.GameID,
		UserID:      rec.UserID,
		PlayerColor: color,
		Moves:       rec.Moves,
		Judgments:   rec.Judgments,
	}
}

// Severity bands a mistake by how much it cost.
type Severity string

const (
	SeverityInaccuracy Severity = "inaccuracy"
	SeverityMistake    Severity = "mistake"
	SeverityBlunder    Severity = "blunder"
	SeverityMissedWin  Severity = "missed-win"
)

// Theme is a coarse tactical motif inferred from post-move pattern checks.
// Closed set: theme-dependent text is resolved once through the registry in
// themes.go, never by ad hoc string matching.
type Theme string

const (
	ThemeHangingPiece    Theme = "hanging-piece"
	ThemeDiscoveredCheck Theme = "discovered-check"
	ThemeForcedMate      Theme = "forced-mate"
	ThemeEndgame         Theme = "endgame-technique"
	ThemeOpening         Theme = "opening-principles"
	ThemeTactics         Theme = "general-tactics"
)

// Mistake is a classified error by the subject player at one ply.
// Immutable once created.
type Mistake struct {
	// Position is the FEN of the board before the played move.
	Position string

	// PlayedMove and CorrectMove are in coordinate notation.
	PlayedMove  string
	CorrectMove string

	// CentipawnLoss is the estimated cost of the played move. Always >= the
	// classifier's noise floor.
	CentipawnLoss int

	Severity Severity
	Theme    Theme

	SourceGameID string
	Ply          int
}

// OpeningDeviation is the first departure from a known reference opening
// line by the subject player.
type OpeningDeviation struct {
	// Position is the FEN of the board before the deviating move.
	Position string

	// PlayedMove and ExpectedMove are in coordinate notation.
	PlayedMove   string
	ExpectedMove string

	// Family names the reference line deviated from ("italian-game").
	Family string

	// Rating is the reference line's strength rating.
	Rating int

	SourceGameID string
	Ply          int
}
