// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// EngineRequestEvent is the predicate function for enginerequestevent builders.
type EngineRequestEvent func(*sql.Selector)

// Game is the predicate function for game builders.
type Game func(*sql.Selector)

// GenerationEvent is the predicate function for generationevent builders.
type GenerationEvent func(*sql.Selector)

// PuzzleCache is the predicate function for puzzlecache builders.
type PuzzleCache func(*sql.Selector)
