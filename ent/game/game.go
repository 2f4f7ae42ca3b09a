// Code generated by ent, DO NOT EDIT.

package game

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the game type in the database.
	Label = "game"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldGameID holds the string denoting the game_id field in the database.
	FieldGameID = "game_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldPlayerColor holds the string denoting the player_color field in the database.
	FieldPlayerColor = "player_color"
	// FieldWhite holds the string denoting the white field in the database.
	FieldWhite = "white"
	// FieldBlack holds the string denoting the black field in the database.
	FieldBlack = "black"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldMoves holds the string denoting the moves field in the database.
	FieldMoves = "moves"
	// FieldJudgments holds the string denoting the judgments field in the database.
	FieldJudgments = "judgments"
	// FieldImportedAt holds the string denoting the imported_at field in the database.
	FieldImportedAt = "imported_at"
	// Table holds the table name of the game in the database.
	Table = "games"
)

// Columns holds all SQL columns for game fields.
var Columns = []string{
	FieldID,
	FieldGameID,
	FieldUserID,
	FieldPlayerColor,
	FieldWhite,
	FieldBlack,
	FieldResult,
	FieldMoves,
	FieldJudgments,
	FieldImportedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultWhite holds the default value on creation for the "white" field.
	DefaultWhite string
	// DefaultBlack holds the default value on creation for the "black" field.
	DefaultBlack string
	// DefaultResult holds the default value on creation for the "result" field.
	DefaultResult string
	// DefaultImportedAt holds the default value on creation for the "imported_at" field.
	DefaultImportedAt func() time.Time
)

// OrderOption defines the ordering options for the Game queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByGameID orders the results by the game_id field.
func ByGameID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGameID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByPlayerColor orders the results by the player_color field.
func ByPlayerColor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlayerColor, opts...).ToFunc()
}

// ByWhite orders the results by the white field.
func ByWhite(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWhite, opts...).ToFunc()
}

// ByBlack orders the results by the black field.
func ByBlack(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlack, opts...).ToFunc()
}

// ByResult orders the results by the result field.
func ByResult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResult, opts...).ToFunc()
}

// ByImportedAt orders the results by the imported_at field.
func ByImportedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImportedAt, opts...).ToFunc()
}
