package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GenerationEvent records one catalog generation run for a
// (user, category, difficulty) tier.
type GenerationEvent struct {
	ent.Schema
}

func (GenerationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (GenerationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id"),
		field.String("category").
			Comment("Puzzle category: tactics, openings, endgames"),
		field.String("difficulty").
			Comment("Difficulty band: easy, medium, hard"),
		field.Int("puzzle_count").
			Default(0).
			Comment("Number of puzzles written to the cache"),
		field.Bool("fallback").
			Default(false).
			Comment("Whether the curated fallback set was served"),
		field.Int64("duration_ms").
			Default(0).
			Comment("Wall-clock time for the tier"),
		field.String("error_message").
			Default("").
			Comment("Error message if the tier failed"),
	}
}

func (GenerationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("category"),
	}
}
