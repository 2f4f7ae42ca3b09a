package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// JudgmentData is a third-party move-quality tag attached to one ply.
type JudgmentData struct {
	Ply      int    `json:"ply"`
	Severity string `json:"severity"`
}

// Game is an imported game record: the ordered move list plus the metadata
// the pipeline needs. Read-only to the pipeline once imported.
type Game struct {
	ent.Schema
}

func (Game) Fields() []ent.Field {
	return []ent.Field{
		field.String("game_id").
			Unique().
			Immutable().
			Comment("Stable source identifier (PGN Site/Event tag or hash)"),
		field.String("user_id").
			Immutable().
			Comment("Owner of this game record"),
		field.String("player_color").
			Comment("Side the subject played: w or b"),
		field.String("white").
			Default("").
			Comment("White player name"),
		field.String("black").
			Default("").
			Comment("Black player name"),
		field.String("result").
			Default("").
			Comment("Game result tag: 1-0, 0-1, 1/2-1/2"),
		field.JSON("moves", []string{}).
			Comment("Ordered move list in standard algebraic notation"),
		field.JSON("judgments", []JudgmentData{}).
			Optional().
			Comment("Optional third-party per-ply quality judgments"),
		field.Time("imported_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Game) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("imported_at"),
	}
}
