// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pawnforge/ent/predicate"
	"github.com/abhisek/pawnforge/ent/puzzlecache"
)

// PuzzleCacheDelete is the builder for deleting a PuzzleCache entity.
type PuzzleCacheDelete struct {
	config
	hooks    []Hook
	mutation *PuzzleCacheMutation
}

// Where appends a list predicates to the PuzzleCacheDelete builder.
func (_d *PuzzleCacheDelete) Where(ps ...predicate.PuzzleCache) *PuzzleCacheDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PuzzleCacheDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PuzzleCacheDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PuzzleCacheDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(puzzlecache.Table, sqlgraph.NewFieldSpec(puzzlecache.FieldID, field.TypeInt))
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

// PuzzleCacheDeleteOne is the builder for deleting a single PuzzleCache entity.
type PuzzleCacheDeleteOne struct {
	_d *PuzzleCacheDelete
}

// Where appends a list predicates to the PuzzleCacheDelete builder.
func (_d *PuzzleCacheDeleteOne) Where(ps ...predicate.PuzzleCache) *PuzzleCacheDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PuzzleCacheDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{puzzlecache.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PuzzleCacheDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
