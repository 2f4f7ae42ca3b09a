// Code generated by ent, DO NOT EDIT.

package enginerequestevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the enginerequestevent type in the database.
	Label = "engine_request_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldEngine holds the string denoting the engine field in the database.
	FieldEngine = "engine"
	// FieldDepth holds the string denoting the depth field in the database.
	FieldDepth = "depth"
	// FieldTimeBudgetMs holds the string denoting the time_budget_ms field in the database.
	FieldTimeBudgetMs = "time_budget_ms"
	// FieldLatencyMs holds the string denoting the latency_ms field in the database.
	FieldLatencyMs = "latency_ms"
	// FieldSuccess holds the string denoting the success field in the database.
	FieldSuccess = "success"
	// FieldBestMove holds the string denoting the best_move field in the database.
	FieldBestMove = "best_move"
	// FieldReachedDepth holds the string denoting the reached_depth field in the database.
	FieldReachedDepth = "reached_depth"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// Table holds the table name of the enginerequestevent in the database.
	Table = "engine_request_events"
)

// Columns holds all SQL columns for enginerequestevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldEngine,
	FieldDepth,
	FieldTimeBudgetMs,
	FieldLatencyMs,
	FieldSuccess,
	FieldBestMove,
	FieldReachedDepth,
	FieldErrorMessage,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultDepth holds the default value on creation for the "depth" field.
	DefaultDepth int
	// DefaultTimeBudgetMs holds the default value on creation for the "time_budget_ms" field.
	DefaultTimeBudgetMs int64
	// DefaultLatencyMs holds the default value on creation for the "latency_ms" field.
	DefaultLatencyMs int64
	// DefaultBestMove holds the default value on creation for the "best_move" field.
	DefaultBestMove string
	// DefaultReachedDepth holds the default value on creation for the "reached_depth" field.
	DefaultReachedDepth int
	// DefaultErrorMessage holds the default value on creation for the "error_message" field.
	DefaultErrorMessage string
)

// OrderOption defines the ordering options for the EngineRequestEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByEngine orders the results by the engine field.
func ByEngine(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngine, opts...).ToFunc()
}

// ByDepth orders the results by the depth field.
func ByDepth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepth, opts...).ToFunc()
}

// ByTimeBudgetMs orders the results by the time_budget_ms field.
func ByTimeBudgetMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeBudgetMs, opts...).ToFunc()
}

// ByLatencyMs orders the results by the latency_ms field.
func ByLatencyMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatencyMs, opts...).ToFunc()
}

// BySuccess orders the results by the success field.
func BySuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccess, opts...).ToFunc()
}

// ByBestMove orders the results by the best_move field.
func ByBestMove(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBestMove, opts...).ToFunc()
}

// ByReachedDepth orders the results by the reached_depth field.
func ByReachedDepth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReachedDepth, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}
