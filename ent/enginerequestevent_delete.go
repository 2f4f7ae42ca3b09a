// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pawnforge/ent/enginerequestevent"
	"github.com/abhisek/pawnforge/ent/predicate"
)

// EngineRequestEventDelete is the builder for deleting a EngineRequestEvent entity.
type EngineRequestEventDelete struct {
	config
	hooks    []Hook
	mutation *EngineRequestEventMutation
}

// Where appends a list predicates to the EngineRequestEventDelete builder.
func (_d *EngineRequestEventDelete) Where(ps ...predicate.EngineRequestEvent) *EngineRequestEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *EngineRequestEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EngineRequestEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *EngineRequestEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(enginerequestevent.Table, sqlgraph.NewFieldSpec(enginerequestevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// EngineRequestEventDeleteOne is the builder for deleting a single EngineRequestEvent entity.
type EngineRequestEventDeleteOne struct {
	_d *EngineRequestEventDelete
}

// Where appends a list predicates to the EngineRequestEventDelete builder.
func (_d *EngineRequestEventDeleteOne) Where(ps ...predicate.EngineRequestEvent) *EngineRequestEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *EngineRequestEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{enginerequestevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EngineRequestEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
