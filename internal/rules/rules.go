// Package rules adapts the chess move-legality library to the pipeline's
// needs: FEN application, legal-move queries, and interop between algebraic
// and coordinate move encodings.
package rules

import (
	"errors"
	"fmt"

	"github.com/notnil/chess"
)

// ErrInvalidMove indicates a move string that is not legal (or not
// decodable) in the given position.
var ErrInvalidMove = errors.New("rules: invalid move")

// StartingPosition returns the standard initial position.
func StartingPosition() *chess.Position {
	return chess.NewGame().Position()
}

// PositionFromFEN parses a FEN string into a position.
func PositionFromFEN(fen string) (*chess.Position, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("parse FEN %q: %w", fen, err)
	}
	return chess.NewGame(opt).Position(), nil
}

// DecodeMove decodes a move string against a position. Coordinate (UCI)
// notation is tried first since that is what analysis engines emit, then
// standard algebraic notation for moves recorded from game imports.
func DecodeMove(pos *chess.Position, s string) (*chess.Move, error) {
	uci := chess.UCINotation{}
	if m, err := uci.Decode(pos, s); err == nil {
		return m, nil
	}
	m, err := chess.AlgebraicNotation{}.Decode(pos, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	return m, nil
}

// ApplyMove decodes and applies a move, returning the resulting position.
// The move must be legal in pos.
func ApplyMove(pos *chess.Position, s string) (*chess.Position, *chess.Move, error) {
	m, err := DecodeMove(pos, s)
	if err != nil {
		return nil, nil, err
	}
	vm := findLegal(pos, m)
	if vm == nil {
		return nil, nil, fmt.Errorf("%w: %q not legal here", ErrInvalidMove, s)
	}
	return pos.Update(vm), vm, nil
}

// Apply applies an already-decoded move after re-checking legality.
// Engine principal variations occasionally contain moves from a stale
// search; the legality check catches those instead of corrupting the board.
func Apply(pos *chess.Position, m *chess.Move) (*chess.Position, error) {
	vm := findLegal(pos, m)
	if vm == nil {
		return nil, fmt.Errorf("%w: %s not legal here", ErrInvalidMove, UCI(m))
	}
	return pos.Update(vm), nil
}

// LegalMoves returns every legal move in the position.
func LegalMoves(pos *chess.Position) []*chess.Move {
	return pos.ValidMoves()
}

// Replay applies moves from the starting position through ply (exclusive),
// returning the position in which moves[ply] would be played.
func Replay(moves []string, ply int) (*chess.Position, error) {
	if ply < 0 || ply > len(moves) {
		return nil, fmt.Errorf("replay: ply %d out of range [0,%d]", ply, len(moves))
	}
	pos := StartingPosition()
	for i := 0; i < ply; i++ {
		next, _, err := ApplyMove(pos, moves[i])
		if err != nil {
			return nil, fmt.Errorf("replay ply %d: %w", i, err)
		}
		pos = next
	}
	return pos, nil
}

// UCI renders a move in coordinate notation ("e2e4", "e7e8q").
// This is the canonical encoding for stored solution lines.
func UCI(m *chess.Move) string {
	s := m.S1().String() + m.S2().String()
	if m.Promo() != chess.NoPieceType {
		s += m.Promo().String()
	}
	return s
}

// SameMove reports whether two moves are the same by origin, destination,
// and promotion piece. Notation differences ("Ngf3" vs "g1f3") don't matter.
func SameMove(a, b *chess.Move) bool {
	if a == nil || b == nil {
		return false
	}
	return a.S1() == b.S1() && a.S2() == b.S2() && a.Promo() == b.Promo()
}

// IsCapture reports whether the move captures a piece.
func IsCapture(m *chess.Move) bool {
	return m.HasTag(chess.Capture) || m.HasTag(chess.EnPassant)
}

// GivesCheck reports whether the move checks the opposing king.
func GivesCheck(m *chess.Move) bool {
	return m.HasTag(chess.Check)
}

// IsGameOver reports whether the position has no continuation
// (checkmate or stalemate).
func IsGameOver(pos *chess.Position) bool {
	return pos.Status() != chess.NoMethod
}

// IsMate reports whether the side to move is checkmated.
func IsMate(pos *chess.Position) bool {
	return pos.Status() == chess.Checkmate
}

// findLegal returns the canonical legal move matching m (with move tags
// populated), or nil when m is not legal in pos.
func findLegal(pos *chess.Position, m *chess.Move) *chess.Move {
	for _, vm := range pos.ValidMoves() {
		if SameMove(vm, m) {
			return vm
		}
	}
	return nil
}
