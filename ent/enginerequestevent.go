// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/pawnforge/ent/enginerequestevent"
)

// EngineRequestEvent is the model entity for the EngineRequestEvent schema.
type EngineRequestEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Engine identifier: binary path or 'mock'
	Engine string `json:"engine,omitempty"`
	// Requested search depth cap (0 = time-governed)
	Depth int `json:"depth,omitempty"`
	// Requested search time budget
	TimeBudgetMs int64 `json:"time_budget_ms,omitempty"`
	// Wall-clock time for the call
	LatencyMs int64 `json:"latency_ms,omitempty"`
	// Whether the call produced a usable result
	Success bool `json:"success,omitempty"`
	// Best move in coordinate notation, empty on failure
	BestMove string `json:"best_move,omitempty"`
	// Search depth actually reached
	ReachedDepth int `json:"reached_depth,omitempty"`
	// Error message if failed
	ErrorMessage string `json:"error_message,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EngineRequestEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case enginerequestevent.FieldSuccess:
			values[i] = new(sql.NullBool)
		case enginerequestevent.FieldID, enginerequestevent.FieldSequence, enginerequestevent.FieldDepth, enginerequestevent.FieldTimeBudgetMs, enginerequestevent.FieldLatencyMs, enginerequestevent.FieldReachedDepth:
			values[i] = new(sql.NullInt64)
		case enginerequestevent.FieldEngine, enginerequestevent.FieldBestMove, enginerequestevent.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case enginerequestevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EngineRequestEvent fields.
func (_m *EngineRequestEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case enginerequestevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case enginerequestevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case enginerequestevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case enginerequestevent.FieldEngine:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field engine", values[i])
			} else if value.Valid {
				_m.Engine = value.String
			}
		case enginerequestevent.FieldDepth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field depth", values[i])
			} else if value.Valid {
				_m.Depth = int(value.Int64)
			}
		case enginerequestevent.FieldTimeBudgetMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_budget_ms", values[i])
			} else if value.Valid {
				_m.TimeBudgetMs = value.Int64
			}
		case enginerequestevent.FieldLatencyMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_ms", values[i])
			} else if value.Valid {
				_m.LatencyMs = value.Int64
			}
		case enginerequestevent.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case enginerequestevent.FieldBestMove:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field best_move", values[i])
			} else if value.Valid {
				_m.BestMove = value.String
			}
		case enginerequestevent.FieldReachedDepth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reached_depth", values[i])
			} else if value.Valid {
				_m.ReachedDepth = int(value.Int64)
			}
		case enginerequestevent.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EngineRequestEvent.
// This includes values selected through modifiers, order, etc.
func (_m *EngineRequestEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EngineRequestEvent.
// Note that you need to call EngineRequestEvent.Unwrap() before calling this method if this EngineRequestEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EngineRequestEvent) Update() *EngineRequestEventUpdateOne {
	return NewEngineRequestEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EngineRequestEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EngineRequestEvent) Unwrap() *EngineRequestEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EngineRequestEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EngineRequestEvent) String() string {
	var builder strings.Builder
	builder.WriteString("EngineRequestEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("engine=")
	builder.WriteString(_m.Engine)
	builder.WriteString(", ")
	builder.WriteString("depth=")
	builder.WriteString(fmt.Sprintf("%v", _m.Depth))
	builder.WriteString(", ")
	builder.WriteString("time_budget_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeBudgetMs))
	builder.WriteString(", ")
	builder.WriteString("latency_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.LatencyMs))
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	builder.WriteString("best_move=")
	builder.WriteString(_m.BestMove)
	builder.WriteString(", ")
	builder.WriteString("reached_depth=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReachedDepth))
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteByte(')')
	return builder.String()
}

// EngineRequestEvents is a parsable slice of EngineRequestEvent.
type EngineRequestEvents []*EngineRequestEvent
