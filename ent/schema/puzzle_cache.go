package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PuzzleCache is one generated puzzle set for a
// (user, category, difficulty, schemaVersion) tuple. Writes are whole-entry
// replacements keyed by cache_key; there is no partial mutation.
type PuzzleCache struct {
	ent.Schema
}

func (PuzzleCache) Fields() []ent.Field {
	return []ent.Field{
		field.String("cache_key").
			Unique().
			Comment("user|category|difficulty|schemaVersion"),
		field.String("user_id"),
		field.String("category"),
		field.String("difficulty"),
		field.String("schema_version").
			Comment("Semver tag; older tags are treated as a miss"),
		field.Bytes("puzzles").
			Comment("Serialized ordered puzzle list (JSON)"),
		field.Time("generated_at").
			Default(time.Now),
	}
}

func (PuzzleCache) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "category"),
		index.Fields("generated_at"),
	}
}
