// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pawnforge/ent/puzzlecache"
)

// PuzzleCacheCreate is the builder for creating a PuzzleCache entity.
type PuzzleCacheCreate struct {
	config
	mutation *PuzzleCacheMutation
	hooks    []Hook
}

// SetCacheKey sets the "cache_key" field.
func (_c *PuzzleCacheCreate) SetCacheKey(v string) *PuzzleCacheCreate {
	_c.mutation.SetCacheKey(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PuzzleCacheCreate) SetUserID(v string) *PuzzleCacheCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *PuzzleCacheCreate) SetCategory(v string) *PuzzleCacheCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *PuzzleCacheCreate) SetDifficulty(v string) *PuzzleCacheCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetSchemaVersion sets the "schema_version" field.
func (_c *PuzzleCacheCreate) SetSchemaVersion(v string) *PuzzleCacheCreate {
	_c.mutation.SetSchemaVersion(v)
	return _c
}

// SetPuzzles sets the "puzzles" field.
func (_c *PuzzleCacheCreate) SetPuzzles(v []byte) *PuzzleCacheCreate {
	_c.mutation.SetPuzzles(v)
	return _c
}

// SetGeneratedAt sets the "generated_at" field.
func (_c *PuzzleCacheCreate) SetGeneratedAt(v time.Time) *PuzzleCacheCreate {
	_c.mutation.SetGeneratedAt(v)
	return _c
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_c *PuzzleCacheCreate) SetNillableGeneratedAt(v *time.Time) *PuzzleCacheCreate {
	if v != nil {
		_c.SetGeneratedAt(*v)
	}
	return _c
}

// Mutation returns the PuzzleCacheMutation object of the builder.
func (_c *PuzzleCacheCreate) Mutation() *PuzzleCacheMutation {
	return _c.mutation
}

// Save creates the PuzzleCache in the database.
func (_c *PuzzleCacheCreate) Save(ctx context.Context) (*PuzzleCache, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PuzzleCacheCreate) SaveX(ctx context.Context) *PuzzleCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PuzzleCacheCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PuzzleCacheCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PuzzleCacheCreate) defaults() {
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		v := puzzlecache.DefaultGeneratedAt()
		_c.mutation.SetGeneratedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PuzzleCacheCreate) check() error {
	if _, ok := _c.mutation.CacheKey(); !ok {
		return &ValidationError{Name: "cache_key", err: errors.New(`ent: missing required field "PuzzleCache.cache_key"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PuzzleCache.user_id"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "PuzzleCache.category"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "PuzzleCache.difficulty"`)}
	}
	if _, ok := _c.mutation.SchemaVersion(); !ok {
		return &ValidationError{Name: "schema_version", err: errors.New(`ent: missing required field "PuzzleCache.schema_version"`)}
	}
	if _, ok := _c.mutation.Puzzles(); !ok {
		return &ValidationError{Name: "puzzles", err: errors.New(`ent: missing required field "PuzzleCache.puzzles"`)}
	}
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		return &ValidationError{Name: "generated_at", err: errors.New(`ent: missing required field "PuzzleCache.generated_at"`)}
	}
	return nil
}

func (_c *PuzzleCacheCreate) sqlSave(ctx context.Context) (*PuzzleCache, error) {
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

func (_c *PuzzleCacheCreate) createSpec() (*PuzzleCache, *sqlgraph.CreateSpec) {
	var (
		_node = &PuzzleCache{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(puzzlecache.Table, sqlgraph.NewFieldSpec(puzzlecache.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CacheKey(); ok {
		_spec.SetField(puzzlecache.FieldCacheKey, field.TypeString, value)
		_node.CacheKey = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(puzzlecache.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(puzzlecache.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(puzzlecache.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.SchemaVersion(); ok {
		_spec.SetField(puzzlecache.FieldSchemaVersion, field.TypeString, value)
		_node.SchemaVersion = value
	}
	if value, ok := _c.mutation.Puzzles(); ok {
		_spec.SetField(puzzlecache.FieldPuzzles, field.TypeBytes, value)
		_node.Puzzles = value
	}
	if value, ok := _c.mutation.GeneratedAt(); ok {
		_spec.SetField(puzzlecache.FieldGeneratedAt, field.TypeTime, value)
		_node.GeneratedAt = value
	}
	return _node, _spec
}

// PuzzleCacheCreateBulk is the builder for creating many PuzzleCache entities in bulk.
type PuzzleCacheCreateBulk struct {
	config
	err      error
	builders []*PuzzleCacheCreate
}

// Save creates the PuzzleCache entities in the database.
func (_c *PuzzleCacheCreateBulk) Save(ctx context.Context) ([]*PuzzleCache, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PuzzleCache, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PuzzleCacheMutation)
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
func (_c *PuzzleCacheCreateBulk) SaveX(ctx context.Context) []*PuzzleCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PuzzleCacheCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PuzzleCacheCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
