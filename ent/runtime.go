// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/pawnforge/ent/enginerequestevent"
	"github.com/abhisek/pawnforge/ent/game"
	"github.com/abhisek/pawnforge/ent/generationevent"
	"github.com/abhisek/pawnforge/ent/puzzlecache"
	"github.com/abhisek/pawnforge/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	enginerequesteventMixin := schema.EngineRequestEvent{}.Mixin()
	enginerequesteventMixinFields0 := enginerequesteventMixin[0].Fields()
	_ = enginerequesteventMixinFields0
	enginerequesteventFields := schema.EngineRequestEvent{}.Fields()
	_ = enginerequesteventFields
	// enginerequesteventDescTimestamp is the schema descriptor for timestamp field.
	enginerequesteventDescTimestamp := enginerequesteventMixinFields0[1].Descriptor()
	// enginerequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	enginerequestevent.DefaultTimestamp = enginerequesteventDescTimestamp.Default.(func() time.Time)
	// enginerequesteventDescDepth is the schema descriptor for depth field.
	enginerequesteventDescDepth := enginerequesteventFields[1].Descriptor()
	// enginerequestevent.DefaultDepth holds the default value on creation for the depth field.
	enginerequestevent.DefaultDepth = enginerequesteventDescDepth.Default.(int)
	// enginerequesteventDescTimeBudgetMs is the schema descriptor for time_budget_ms field.
	enginerequesteventDescTimeBudgetMs := enginerequesteventFields[2].Descriptor()
	// enginerequestevent.DefaultTimeBudgetMs holds the default value on creation for the time_budget_ms field.
	enginerequestevent.DefaultTimeBudgetMs = enginerequesteventDescTimeBudgetMs.Default.(int64)
	// enginerequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	enginerequesteventDescLatencyMs := enginerequesteventFields[3].Descriptor()
	// enginerequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	enginerequestevent.DefaultLatencyMs = enginerequesteventDescLatencyMs.Default.(int64)
	// enginerequesteventDescBestMove is the schema descriptor for best_move field.
	enginerequesteventDescBestMove := enginerequesteventFields[5].Descriptor()
	// enginerequestevent.DefaultBestMove holds the default value on creation for the best_move field.
	enginerequestevent.DefaultBestMove = enginerequesteventDescBestMove.Default.(string)
	// enginerequesteventDescReachedDepth is the schema descriptor for reached_depth field.
	enginerequesteventDescReachedDepth := enginerequesteventFields[6].Descriptor()
	// enginerequestevent.DefaultReachedDepth holds the default value on creation for the reached_depth field.
	enginerequestevent.DefaultReachedDepth = enginerequesteventDescReachedDepth.Default.(int)
	// enginerequesteventDescErrorMessage is the schema descriptor for error_message field.
	enginerequesteventDescErrorMessage := enginerequesteventFields[7].Descriptor()
	// enginerequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	enginerequestevent.DefaultErrorMessage = enginerequesteventDescErrorMessage.Default.(string)
	gameFields := schema.Game{}.Fields()
	_ = gameFields
	// gameDescWhite is the schema descriptor for white field.
	gameDescWhite := gameFields[3].Descriptor()
	// game.DefaultWhite holds the default value on creation for the white field.
	game.DefaultWhite = gameDescWhite.Default.(string)
	// gameDescBlack is the schema descriptor for black field.
	gameDescBlack := gameFields[4].Descriptor()
	// game.DefaultBlack holds the default value on creation for the black field.
	game.DefaultBlack = gameDescBlack.Default.(string)
	// gameDescResult is the schema descriptor for result field.
	gameDescResult := gameFields[5].Descriptor()
	// game.DefaultResult holds the default value on creation for the result field.
	game.DefaultResult = gameDescResult.Default.(string)
	// gameDescImportedAt is the schema descriptor for imported_at field.
	gameDescImportedAt := gameFields[8].Descriptor()
	// game.DefaultImportedAt holds the default value on creation for the imported_at field.
	game.DefaultImportedAt = gameDescImportedAt.Default.(func() time.Time)
	generationeventMixin := schema.GenerationEvent{}.Mixin()
	generationeventMixinFields0 := generationeventMixin[0].Fields()
	_ = generationeventMixinFields0
	generationeventFields := schema.GenerationEvent{}.Fields()
	_ = generationeventFields
	// generationeventDescTimestamp is the schema descriptor for timestamp field.
	generationeventDescTimestamp := generationeventMixinFields0[1].Descriptor()
	// generationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	generationevent.DefaultTimestamp = generationeventDescTimestamp.Default.(func() time.Time)
	// generationeventDescPuzzleCount is the schema descriptor for puzzle_count field.
	generationeventDescPuzzleCount := generationeventFields[3].Descriptor()
	// generationevent.DefaultPuzzleCount holds the default value on creation for the puzzle_count field.
	generationevent.DefaultPuzzleCount = generationeventDescPuzzleCount.Default.(int)
	// generationeventDescFallback is the schema descriptor for fallback field.
	generationeventDescFallback := generationeventFields[4].Descriptor()
	// generationevent.DefaultFallback holds the default value on creation for the fallback field.
	generationevent.DefaultFallback = generationeventDescFallback.Default.(bool)
	// generationeventDescDurationMs is the schema descriptor for duration_ms field.
	generationeventDescDurationMs := generationeventFields[5].Descriptor()
	// generationevent.DefaultDurationMs holds the default value on creation for the duration_ms field.
	generationevent.DefaultDurationMs = generationeventDescDurationMs.Default.(int64)
	// generationeventDescErrorMessage is the schema descriptor for error_message field.
	generationeventDescErrorMessage := generationeventFields[6].Descriptor()
	// generationevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	generationevent.DefaultErrorMessage = generationeventDescErrorMessage.Default.(string)
	puzzlecacheFields := schema.PuzzleCache{}.Fields()
	_ = puzzlecacheFields
	// puzzlecacheDescGeneratedAt is the schema descriptor for generated_at field.
	puzzlecacheDescGeneratedAt := puzzlecacheFields[6].Descriptor()
	// puzzlecache.DefaultGeneratedAt holds the default value on creation for the generated_at field.
	puzzlecache.DefaultGeneratedAt = puzzlecacheDescGeneratedAt.Default.(func() time.Time)
}
