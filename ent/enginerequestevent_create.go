// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pawnforge/ent/enginerequestevent"
)

// EngineRequestEventCreate is the builder for creating a EngineRequestEvent entity.
type EngineRequestEventCreate struct {
	config
	mutation *EngineRequestEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *EngineRequestEventCreate) SetSequence(v int64) *EngineRequestEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *EngineRequestEventCreate) SetTimestamp(v time.Time) *EngineRequestEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *EngineRequestEventCreate) SetNillableTimestamp(v *time.Time) *EngineRequestEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetEngine sets the "engine" field.
func (_c *EngineRequestEventCreate) SetEngine(v string) *EngineRequestEventCreate {
	_c.mutation.SetEngine(v)
	return _c
}

// SetDepth sets the "depth" field.
func (_c *EngineRequestEventCreate) SetDepth(v int) *EngineRequestEventCreate {
	_c.mutation.SetDepth(v)
	return _c
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_c *EngineRequestEventCreate) SetNillableDepth(v *int) *EngineRequestEventCreate {
	if v != nil {
		_c.SetDepth(*v)
	}
	return _c
}

// SetTimeBudgetMs sets the "time_budget_ms" field.
func (_c *EngineRequestEventCreate) SetTimeBudgetMs(v int64) *EngineRequestEventCreate {
	_c.mutation.SetTimeBudgetMs(v)
	return _c
}

// SetNillableTimeBudgetMs sets the "time_budget_ms" field if the given value is not nil.
func (_c *EngineRequestEventCreate) SetNillableTimeBudgetMs(v *int64) *EngineRequestEventCreate {
	if v != nil {
		_c.SetTimeBudgetMs(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *EngineRequestEventCreate) SetLatencyMs(v int64) *EngineRequestEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *EngineRequestEventCreate) SetNillableLatencyMs(v *int64) *EngineRequestEventCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *EngineRequestEventCreate) SetSuccess(v bool) *EngineRequestEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetBestMove sets the "best_move" field.
func (_c *EngineRequestEventCreate) SetBestMove(v string) *EngineRequestEventCreate {
	_c.mutation.SetBestMove(v)
	return _c
}

// SetNillableBestMove sets the "best_move" field if the given value is not nil.
func (_c *EngineRequestEventCreate) SetNillableBestMove(v *string) *EngineRequestEventCreate {
	if v != nil {
		_c.SetBestMove(*v)
	}
	return _c
}

// SetReachedDepth sets the "reached_depth" field.
func (_c *EngineRequestEventCreate) SetReachedDepth(v int) *EngineRequestEventCreate {
	_c.mutation.SetReachedDepth(v)
	return _c
}

// SetNillableReachedDepth sets the "reached_depth" field if the given value is not nil.
func (_c *EngineRequestEventCreate) SetNillableReachedDepth(v *int) *EngineRequestEventCreate {
	if v != nil {
		_c.SetReachedDepth(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *EngineRequestEventCreate) SetErrorMessage(v string) *EngineRequestEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *EngineRequestEventCreate) SetNillableErrorMessage(v *string) *EngineRequestEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the EngineRequestEventMutation object of the builder.
func (_c *EngineRequestEventCreate) Mutation() *EngineRequestEventMutation {
	return _c.mutation
}

// Save creates the EngineRequestEvent in the database.
func (_c *EngineRequestEventCreate) Save(ctx context.Context) (*EngineRequestEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EngineRequestEventCreate) SaveX(ctx context.Context) *EngineRequestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EngineRequestEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EngineRequestEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EngineRequestEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := enginerequestevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Depth(); !ok {
		v := enginerequestevent.DefaultDepth
		_c.mutation.SetDepth(v)
	}
	if _, ok := _c.mutation.TimeBudgetMs(); !ok {
		v := enginerequestevent.DefaultTimeBudgetMs
		_c.mutation.SetTimeBudgetMs(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := enginerequestevent.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.BestMove(); !ok {
		v := enginerequestevent.DefaultBestMove
		_c.mutation.SetBestMove(v)
	}
	if _, ok := _c.mutation.ReachedDepth(); !ok {
		v := enginerequestevent.DefaultReachedDepth
		_c.mutation.SetReachedDepth(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := enginerequestevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EngineRequestEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "EngineRequestEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "EngineRequestEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Engine(); !ok {
		return &ValidationError{Name: "engine", err: errors.New(`ent: missing required field "EngineRequestEvent.engine"`)}
	}
	if _, ok := _c.mutation.Depth(); !ok {
		return &ValidationError{Name: "depth", err: errors.New(`ent: missing required field "EngineRequestEvent.depth"`)}
	}
	if _, ok := _c.mutation.TimeBudgetMs(); !ok {
		return &ValidationError{Name: "time_budget_ms", err: errors.New(`ent: missing required field "EngineRequestEvent.time_budget_ms"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "EngineRequestEvent.latency_ms"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "EngineRequestEvent.success"`)}
	}
	if _, ok := _c.mutation.BestMove(); !ok {
		return &ValidationError{Name: "best_move", err: errors.New(`ent: missing required field "EngineRequestEvent.best_move"`)}
	}
	if _, ok := _c.mutation.ReachedDepth(); !ok {
		return &ValidationError{Name: "reached_depth", err: errors.New(`ent: missing required field "EngineRequestEvent.reached_depth"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "EngineRequestEvent.error_message"`)}
	}
	return nil
}

func (_c *EngineRequestEventCreate) sqlSave(ctx context.Context) (*EngineRequestEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EngineRequestEventCreate) createSpec() (*EngineRequestEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &EngineRequestEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(enginerequestevent.Table, sqlgraph.NewFieldSpec(enginerequestevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(enginerequestevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(enginerequestevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Engine(); ok {
		_spec.SetField(enginerequestevent.FieldEngine, field.TypeString, value)
		_node.Engine = value
	}
	if value, ok := _c.mutation.Depth(); ok {
		_spec.SetField(enginerequestevent.FieldDepth, field.TypeInt, value)
		_node.Depth = value
	}
	if value, ok := _c.mutation.TimeBudgetMs(); ok {
		_spec.SetField(enginerequestevent.FieldTimeBudgetMs, field.TypeInt64, value)
		_node.TimeBudgetMs = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(enginerequestevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(enginerequestevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.BestMove(); ok {
		_spec.SetField(enginerequestevent.FieldBestMove, field.TypeString, value)
		_node.BestMove = value
	}
	if value, ok := _c.mutation.ReachedDepth(); ok {
		_spec.SetField(enginerequestevent.FieldReachedDepth, field.TypeInt, value)
		_node.ReachedDepth = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(enginerequestevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// EngineRequestEventCreateBulk is the builder for creating many EngineRequestEvent entities in bulk.
type EngineRequestEventCreateBulk struct {
	config
	err      error
	builders []*EngineRequestEventCreate
}

// Save creates the EngineRequestEvent entities in the database.
func (_c *EngineRequestEventCreateBulk) Save(ctx context.Context) ([]*EngineRequestEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EngineRequestEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EngineRequestEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EngineRequestEventCreateBulk) SaveX(ctx context.Context) []*EngineRequestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EngineRequestEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EngineRequestEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
