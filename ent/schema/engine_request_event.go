package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EngineRequestEvent records every analysis engine call for cost tracking
// and debugging.
type EngineRequestEvent struct {
	ent.Schema
}

func (EngineRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (EngineRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("engine").
			Comment("Engine identifier: binary path or 'mock'"),
		field.Int("depth").
			Default(0).
			Comment("Requested search depth cap (0 = time-governed)"),
		field.Int64("time_budget_ms").
			Default(0).
			Comment("Requested search time budget"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock time for the call"),
		field.Bool("success").
			Comment("Whether the call produced a usable result"),
		field.String("best_move").
			Default("").
			Comment("Best move in coordinate notation, empty on failure"),
		field.Int("reached_depth").
			Default(0).
			Comment("Search depth actually reached"),
		field.String("error_message").
			Default("").
			Comment("Error message if failed"),
	}
}

func (EngineRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("engine"),
		index.Fields("success"),
	}
}
