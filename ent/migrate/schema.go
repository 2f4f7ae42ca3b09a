// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EngineRequestEventsColumns holds the columns for the "engine_request_events" table.
	EngineRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "engine", Type: field.TypeString},
		{Name: "depth", Type: field.TypeInt, Default: 0},
		{Name: "time_budget_ms", Type: field.TypeInt64, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "best_move", Type: field.TypeString, Default: ""},
		{Name: "reached_depth", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// EngineRequestEventsTable holds the schema information for the "engine_request_events" table.
	EngineRequestEventsTable = &schema.Table{
		Name:       "engine_request_events",
		Columns:    EngineRequestEventsColumns,
		PrimaryKey: []*schema.Column{EngineRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "enginerequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{EngineRequestEventsColumns[1]},
			},
			{
				Name:    "enginerequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{EngineRequestEventsColumns[2]},
			},
			{
				Name:    "enginerequestevent_engine",
				Unique:  false,
				Columns: []*schema.Column{EngineRequestEventsColumns[3]},
			},
			{
				Name:    "enginerequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{EngineRequestEventsColumns[7]},
			},
		},
	}
	// GamesColumns holds the columns for the "games" table.
	GamesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "game_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "player_color", Type: field.TypeString},
		{Name: "white", Type: field.TypeString, Default: ""},
		{Name: "black", Type: field.TypeString, Default: ""},
		{Name: "result", Type: field.TypeString, Default: ""},
		{Name: "moves", Type: field.TypeJSON},
		{Name: "judgments", Type: field.TypeJSON, Nullable: true},
		{Name: "imported_at", Type: field.TypeTime},
	}
	// GamesTable holds the schema information for the "games" table.
	GamesTable = &schema.Table{
		Name:       "games",
		Columns:    GamesColumns,
		PrimaryKey: []*schema.Column{GamesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "game_user_id",
				Unique:  false,
				Columns: []*schema.Column{GamesColumns[2]},
			},
			{
				Name:    "game_imported_at",
				Unique:  false,
				Columns: []*schema.Column{GamesColumns[9]},
			},
		},
	}
	// GenerationEventsColumns holds the columns for the "generation_events" table.
	GenerationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "puzzle_count", Type: field.TypeInt, Default: 0},
		{Name: "fallback", Type: field.TypeBool, Default: false},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// GenerationEventsTable holds the schema information for the "generation_events" table.
	GenerationEventsTable = &schema.Table{
		Name:       "generation_events",
		Columns:    GenerationEventsColumns,
		PrimaryKey: []*schema.Column{GenerationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "generationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{GenerationEventsColumns[1]},
			},
			{
				Name:    "generationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{GenerationEventsColumns[2]},
			},
			{
				Name:    "generationevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{GenerationEventsColumns[3]},
			},
			{
				Name:    "generationevent_category",
				Unique:  false,
				Columns: []*schema.Column{GenerationEventsColumns[4]},
			},
		},
	}
	// PuzzleCachesColumns holds the columns for the "puzzle_caches" table.
	PuzzleCachesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "cache_key", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "schema_version", Type: field.TypeString},
		{Name: "puzzles", Type: field.TypeBytes},
		{Name: "generated_at", Type: field.TypeTime},
	}
	// PuzzleCachesTable holds the schema information for the "puzzle_caches" table.
	PuzzleCachesTable = &schema.Table{
		Name:       "puzzle_caches",
		Columns:    PuzzleCachesColumns,
		PrimaryKey: []*schema.Column{PuzzleCachesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "puzzlecache_user_id_category",
				Unique:  false,
				Columns: []*schema.Column{PuzzleCachesColumns[2], PuzzleCachesColumns[3]},
			},
			{
				Name:    "puzzlecache_generated_at",
				Unique:  false,
				Columns: []*schema.Column{PuzzleCachesColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EngineRequestEventsTable,
		GamesTable,
		GenerationEventsTable,
		PuzzleCachesTable,
	}
)

func init() {
}
