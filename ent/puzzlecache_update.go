// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pawnforge/ent/predicate"
	"github.com/abhisek/pawnforge/ent/puzzlecache"
)

// PuzzleCacheUpdate is the builder for updating PuzzleCache entities.
type PuzzleCacheUpdate struct {
	config
	hooks    []Hook
	mutation *PuzzleCacheMutation
}

// Where appends a list predicates to the PuzzleCacheUpdate builder.
func (_u *PuzzleCacheUpdate) Where(ps ...predicate.PuzzleCache) *PuzzleCacheUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCacheKey sets the "cache_key" field.
func (_u *PuzzleCacheUpdate) SetCacheKey(v string) *PuzzleCacheUpdate {
	_u.mutation.SetCacheKey(v)
	return _u
}

// SetNillableCacheKey sets the "cache_key" field if the given value is not nil.
func (_u *PuzzleCacheUpdate) SetNillableCacheKey(v *string) *PuzzleCacheUpdate {
	if v != nil {
		_u.SetCacheKey(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PuzzleCacheUpdate) SetUserID(v string) *PuzzleCacheUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PuzzleCacheUpdate) SetNillableUserID(v *string) *PuzzleCacheUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *PuzzleCacheUpdate) SetCategory(v string) *PuzzleCacheUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *PuzzleCacheUpdate) SetNillableCategory(v *string) *PuzzleCacheUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *PuzzleCacheUpdate) SetDifficulty(v string) *PuzzleCacheUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *PuzzleCacheUpdate) SetNillableDifficulty(v *string) *PuzzleCacheUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetSchemaVersion sets the "schema_version" field.
func (_u *PuzzleCacheUpdate) SetSchemaVersion(v string) *PuzzleCacheUpdate {
	_u.mutation.SetSchemaVersion(v)
	return _u
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_u *PuzzleCacheUpdate) SetNillableSchemaVersion(v *string) *PuzzleCacheUpdate {
	if v != nil {
		_u.SetSchemaVersion(*v)
	}
	return _u
}

// SetPuzzles sets the "puzzles" field.
func (_u *PuzzleCacheUpdate) SetPuzzles(v []byte) *PuzzleCacheUpdate {
	_u.mutation.SetPuzzles(v)
	return _u
}

// SetGeneratedAt sets the "generated_at" field.
func (_u *PuzzleCacheUpdate) SetGeneratedAt(v time.Time) *PuzzleCacheUpdate {
	_u.mutation.SetGeneratedAt(v)
	return _u
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_u *PuzzleCacheUpdate) SetNillableGeneratedAt(v *time.Time) *PuzzleCacheUpdate {
	if v != nil {
		_u.SetGeneratedAt(*v)
	}
	return _u
}

// Mutation returns the PuzzleCacheMutation object of the builder.
func (_u *PuzzleCacheUpdate) Mutation() *PuzzleCacheMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PuzzleCacheUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PuzzleCacheUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PuzzleCacheUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PuzzleCacheUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PuzzleCacheUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(puzzlecache.Table, puzzlecache.Columns, sqlgraph.NewFieldSpec(puzzlecache.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CacheKey(); ok {
		_spec.SetField(puzzlecache.FieldCacheKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(puzzlecache.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(puzzlecache.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(puzzlecache.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.SchemaVersion(); ok {
		_spec.SetField(puzzlecache.FieldSchemaVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Puzzles(); ok {
		_spec.SetField(puzzlecache.FieldPuzzles, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.GeneratedAt(); ok {
		_spec.SetField(puzzlecache.FieldGeneratedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{puzzlecache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PuzzleCacheUpdateOne is the builder for updating a single PuzzleCache entity.
type PuzzleCacheUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PuzzleCacheMutation
}

// SetCacheKey sets the "cache_key" field.
func (_u *PuzzleCacheUpdateOne) SetCacheKey(v string) *PuzzleCacheUpdateOne {
	_u.mutation.SetCacheKey(v)
	return _u
}

// SetNillableCacheKey sets the "cache_key" field if the given value is not nil.
func (_u *PuzzleCacheUpdateOne) SetNillableCacheKey(v *string) *PuzzleCacheUpdateOne {
	if v != nil {
		_u.SetCacheKey(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PuzzleCacheUpdateOne) SetUserID(v string) *PuzzleCacheUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PuzzleCacheUpdateOne) SetNillableUserID(v *string) *PuzzleCacheUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *PuzzleCacheUpdateOne) SetCategory(v string) *PuzzleCacheUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *PuzzleCacheUpdateOne) SetNillableCategory(v *string) *PuzzleCacheUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *PuzzleCacheUpdateOne) SetDifficulty(v string) *PuzzleCacheUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *PuzzleCacheUpdateOne) SetNillableDifficulty(v *string) *PuzzleCacheUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetSchemaVersion sets the "schema_version" field.
func (_u *PuzzleCacheUpdateOne) SetSchemaVersion(v string) *PuzzleCacheUpdateOne {
	_u.mutation.SetSchemaVersion(v)
	return _u
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_u *PuzzleCacheUpdateOne) SetNillableSchemaVersion(v *string) *PuzzleCacheUpdateOne {
	if v != nil {
		_u.SetSchemaVersion(*v)
	}
	return _u
}

// SetPuzzles sets the "puzzles" field.
func (_u *PuzzleCacheUpdateOne) SetPuzzles(v []byte) *PuzzleCacheUpdateOne {
	_u.mutation.SetPuzzles(v)
	return _u
}

// SetGeneratedAt sets the "generated_at" field.
func (_u *PuzzleCacheUpdateOne) SetGeneratedAt(v time.Time) *PuzzleCacheUpdateOne {
	_u.mutation.SetGeneratedAt(v)
	return _u
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_u *PuzzleCacheUpdateOne) SetNillableGeneratedAt(v *time.Time) *PuzzleCacheUpdateOne {
	if v != nil {
		_u.SetGeneratedAt(*v)
	}
	return _u
}

// Mutation returns the PuzzleCacheMutation object of the builder.
func (_u *PuzzleCacheUpdateOne) Mutation() *PuzzleCacheMutation {
	return _u.mutation
}

// Where appends a list predicates to the PuzzleCacheUpdate builder.
func (_u *PuzzleCacheUpdateOne) Where(ps ...predicate.PuzzleCache) *PuzzleCacheUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PuzzleCacheUpdateOne) Select(field string, fields ...string) *PuzzleCacheUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PuzzleCache entity.
func (_u *PuzzleCacheUpdateOne) Save(ctx context.Context) (*PuzzleCache, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PuzzleCacheUpdateOne) SaveX(ctx context.Context) *PuzzleCache {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PuzzleCacheUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PuzzleCacheUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PuzzleCacheUpdateOne) sqlSave(ctx context.Context) (_node *PuzzleCache, err error) {
	_spec := sqlgraph.NewUpdateSpec(puzzlecache.Table, puzzlecache.Columns, sqlgraph.NewFieldSpec(puzzlecache.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PuzzleCache.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, puzzlecache.FieldID)
		for _, f := range fields {
			if !puzzlecache.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != puzzlecache.FieldID {
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
	if value, ok := _u.mutation.CacheKey(); ok {
		_spec.SetField(puzzlecache.FieldCacheKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(puzzlecache.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(puzzlecache.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(puzzlecache.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.SchemaVersion(); ok {
		_spec.SetField(puzzlecache.FieldSchemaVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Puzzles(); ok {
		_spec.SetField(puzzlecache.FieldPuzzles, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.GeneratedAt(); ok {
		_spec.SetField(puzzlecache.FieldGeneratedAt, field.TypeTime, value)
	}
	_node = &PuzzleCache{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{puzzlecache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
