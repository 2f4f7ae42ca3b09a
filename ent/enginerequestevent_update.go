// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pawnforge/ent/enginerequestevent"
	"github.com/abhisek/pawnforge/ent/predicate"
)

// EngineRequestEventUpdate is the builder for updating EngineRequestEvent entities.
type EngineRequestEventUpdate struct {
	config
	hooks    []Hook
	mutation *EngineRequestEventMutation
}

// Where appends a list predicates to the EngineRequestEventUpdate builder.
func (_u *EngineRequestEventUpdate) Where(ps ...predicate.EngineRequestEvent) *EngineRequestEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEngine sets the "engine" field.
func (_u *EngineRequestEventUpdate) SetEngine(v string) *EngineRequestEventUpdate {
	_u.mutation.SetEngine(v)
	return _u
}

// SetNillableEngine sets the "engine" field if the given value is not nil.
func (_u *EngineRequestEventUpdate) SetNillableEngine(v *string) *EngineRequestEventUpdate {
	if v != nil {
		_u.SetEngine(*v)
	}
	return _u
}

// SetDepth sets the "depth" field.
func (_u *EngineRequestEventUpdate) SetDepth(v int) *EngineRequestEventUpdate {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *EngineRequestEventUpdate) SetNillableDepth(v *int) *EngineRequestEventUpdate {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *EngineRequestEventUpdate) AddDepth(v int) *EngineRequestEventUpdate {
	_u.mutation.AddDepth(v)
	return _u
}

// SetTimeBudgetMs sets the "time_budget_ms" field.
func (_u *EngineRequestEventUpdate) SetTimeBudgetMs(v int64) *EngineRequestEventUpdate {
	_u.mutation.ResetTimeBudgetMs()
	_u.mutation.SetTimeBudgetMs(v)
	return _u
}

// SetNillableTimeBudgetMs sets the "time_budget_ms" field if the given value is not nil.
func (_u *EngineRequestEventUpdate) SetNillableTimeBudgetMs(v *int64) *EngineRequestEventUpdate {
	if v != nil {
		_u.SetTimeBudgetMs(*v)
	}
	return _u
}

// AddTimeBudgetMs adds value to the "time_budget_ms" field.
func (_u *EngineRequestEventUpdate) AddTimeBudgetMs(v int64) *EngineRequestEventUpdate {
	_u.mutation.AddTimeBudgetMs(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *EngineRequestEventUpdate) SetLatencyMs(v int64) *EngineRequestEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *EngineRequestEventUpdate) SetNillableLatencyMs(v *int64) *EngineRequestEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *EngineRequestEventUpdate) AddLatencyMs(v int64) *EngineRequestEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *EngineRequestEventUpdate) SetSuccess(v bool) *EngineRequestEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *EngineRequestEventUpdate) SetNillableSuccess(v *bool) *EngineRequestEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetBestMove sets the "best_move" field.
func (_u *EngineRequestEventUpdate) SetBestMove(v string) *EngineRequestEventUpdate {
	_u.mutation.SetBestMove(v)
	return _u
}

// SetNillableBestMove sets the "best_move" field if the given value is not nil.
func (_u *EngineRequestEventUpdate) SetNillableBestMove(v *string) *EngineRequestEventUpdate {
	if v != nil {
		_u.SetBestMove(*v)
	}
	return _u
}

// SetReachedDepth sets the "reached_depth" field.
func (_u *EngineRequestEventUpdate) SetReachedDepth(v int) *EngineRequestEventUpdate {
	_u.mutation.ResetReachedDepth()
	_u.mutation.SetReachedDepth(v)
	return _u
}

// SetNillableReachedDepth sets the "reached_depth" field if the given value is not nil.
func (_u *EngineRequestEventUpdate) SetNillableReachedDepth(v *int) *EngineRequestEventUpdate {
	if v != nil {
		_u.SetReachedDepth(*v)
	}
	return _u
}

// AddReachedDepth adds value to the "reached_depth" field.
func (_u *EngineRequestEventUpdate) AddReachedDepth(v int) *EngineRequestEventUpdate {
	_u.mutation.AddReachedDepth(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *EngineRequestEventUpdate) SetErrorMessage(v string) *EngineRequestEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *EngineRequestEventUpdate) SetNillableErrorMessage(v *string) *EngineRequestEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the EngineRequestEventMutation object of the builder.
func (_u *EngineRequestEventUpdate) Mutation() *EngineRequestEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EngineRequestEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EngineRequestEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EngineRequestEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EngineRequestEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EngineRequestEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(enginerequestevent.Table, enginerequestevent.Columns, sqlgraph.NewFieldSpec(enginerequestevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Engine(); ok {
		_spec.SetField(enginerequestevent.FieldEngine, field.TypeString, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(enginerequestevent.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(enginerequestevent.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeBudgetMs(); ok {
		_spec.SetField(enginerequestevent.FieldTimeBudgetMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeBudgetMs(); ok {
		_spec.AddField(enginerequestevent.FieldTimeBudgetMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(enginerequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(enginerequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(enginerequestevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BestMove(); ok {
		_spec.SetField(enginerequestevent.FieldBestMove, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReachedDepth(); ok {
		_spec.SetField(enginerequestevent.FieldReachedDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReachedDepth(); ok {
		_spec.AddField(enginerequestevent.FieldReachedDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(enginerequestevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{enginerequestevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EngineRequestEventUpdateOne is the builder for updating a single EngineRequestEvent entity.
type EngineRequestEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EngineRequestEventMutation
}

// SetEngine sets the "engine" field.
func (_u *EngineRequestEventUpdateOne) SetEngine(v string) *EngineRequestEventUpdateOne {
	_u.mutation.SetEngine(v)
	return _u
}

// SetNillableEngine sets the "engine" field if the given value is not nil.
func (_u *EngineRequestEventUpdateOne) SetNillableEngine(v *string) *EngineRequestEventUpdateOne {
	if v != nil {
		_u.SetEngine(*v)
	}
	return _u
}

// SetDepth sets the "depth" field.
func (_u *EngineRequestEventUpdateOne) SetDepth(v int) *EngineRequestEventUpdateOne {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *EngineRequestEventUpdateOne) SetNillableDepth(v *int) *EngineRequestEventUpdateOne {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *EngineRequestEventUpdateOne) AddDepth(v int) *EngineRequestEventUpdateOne {
	_u.mutation.AddDepth(v)
	return _u
}

// SetTimeBudgetMs sets the "time_budget_ms" field.
func (_u *EngineRequestEventUpdateOne) SetTimeBudgetMs(v int64) *EngineRequestEventUpdateOne {
	_u.mutation.ResetTimeBudgetMs()
	_u.mutation.SetTimeBudgetMs(v)
	return _u
}

// SetNillableTimeBudgetMs sets the "time_budget_ms" field if the given value is not nil.
func (_u *EngineRequestEventUpdateOne) SetNillableTimeBudgetMs(v *int64) *EngineRequestEventUpdateOne {
	if v != nil {
		_u.SetTimeBudgetMs(*v)
	}
	return _u
}

// AddTimeBudgetMs adds value to the "time_budget_ms" field.
func (_u *EngineRequestEventUpdateOne) AddTimeBudgetMs(v int64) *EngineRequestEventUpdateOne {
	_u.mutation.AddTimeBudgetMs(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *EngineRequestEventUpdateOne) SetLatencyMs(v int64) *EngineRequestEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *EngineRequestEventUpdateOne) SetNillableLatencyMs(v *int64) *EngineRequestEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *EngineRequestEventUpdateOne) AddLatencyMs(v int64) *EngineRequestEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *EngineRequestEventUpdateOne) SetSuccess(v bool) *EngineRequestEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *EngineRequestEventUpdateOne) SetNillableSuccess(v *bool) *EngineRequestEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetBestMove sets the "best_move" field.
func (_u *EngineRequestEventUpdateOne) SetBestMove(v string) *EngineRequestEventUpdateOne {
	_u.mutation.SetBestMove(v)
	return _u
}

// SetNillableBestMove sets the "best_move" field if the given value is not nil.
func (_u *EngineRequestEventUpdateOne) SetNillableBestMove(v *string) *EngineRequestEventUpdateOne {
	if v != nil {
		_u.SetBestMove(*v)
	}
	return _u
}

// SetReachedDepth sets the "reached_depth" field.
func (_u *EngineRequestEventUpdateOne) SetReachedDepth(v int) *EngineRequestEventUpdateOne {
	_u.mutation.ResetReachedDepth()
	_u.mutation.SetReachedDepth(v)
	return _u
}

// SetNillableReachedDepth sets the "reached_depth" field if the given value is not nil.
func (_u *EngineRequestEventUpdateOne) SetNillableReachedDepth(v *int) *EngineRequestEventUpdateOne {
	if v != nil {
		_u.SetReachedDepth(*v)
	}
	return _u
}

// AddReachedDepth adds value to the "reached_depth" field.
func (_u *EngineRequestEventUpdateOne) AddReachedDepth(v int) *EngineRequestEventUpdateOne {
	_u.mutation.AddReachedDepth(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *EngineRequestEventUpdateOne) SetErrorMessage(v string) *EngineRequestEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *EngineRequestEventUpdateOne) SetNillableErrorMessage(v *string) *EngineRequestEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the EngineRequestEventMutation object of the builder.
func (_u *EngineRequestEventUpdateOne) Mutation() *EngineRequestEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the EngineRequestEventUpdate builder.
func (_u *EngineRequestEventUpdateOne) Where(ps ...predicate.EngineRequestEvent) *EngineRequestEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EngineRequestEventUpdateOne) Select(field string, fields ...string) *EngineRequestEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EngineRequestEvent entity.
func (_u *EngineRequestEventUpdateOne) Save(ctx context.Context) (*EngineRequestEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EngineRequestEventUpdateOne) SaveX(ctx context.Context) *EngineRequestEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EngineRequestEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EngineRequestEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EngineRequestEventUpdateOne) sqlSave(ctx context.Context) (_node *EngineRequestEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(enginerequestevent.Table, enginerequestevent.Columns, sqlgraph.NewFieldSpec(enginerequestevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EngineRequestEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, enginerequestevent.FieldID)
		for _, f := range fields {
			if !enginerequestevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != enginerequestevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Engine(); ok {
		_spec.SetField(enginerequestevent.FieldEngine, field.TypeString, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(enginerequestevent.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(enginerequestevent.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeBudgetMs(); ok {
		_spec.SetField(enginerequestevent.FieldTimeBudgetMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeBudgetMs(); ok {
		_spec.AddField(enginerequestevent.FieldTimeBudgetMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(enginerequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(enginerequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(enginerequestevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BestMove(); ok {
		_spec.SetField(enginerequestevent.FieldBestMove, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReachedDepth(); ok {
		_spec.SetField(enginerequestevent.FieldReachedDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReachedDepth(); ok {
		_spec.AddField(enginerequestevent.FieldReachedDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(enginerequestevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &EngineRequestEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{enginerequestevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
