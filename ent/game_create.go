// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pawnforge/ent/game"
	"github.com/abhisek/pawnforge/ent/schema"
)

// GameCreate is the builder for creating a Game entity.
type GameCreate struct {
	config
	mutation *GameMutation
	hooks    []Hook
}

// SetGameID sets the "game_id" field.
func (_c *GameCreate) SetGameID(v string) *GameCreate {
	_c.mutation.SetGameID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *GameCreate) SetUserID(v string) *GameCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPlayerColor sets the "player_color" field.
func (_c *GameCreate) SetPlayerColor(v string) *GameCreate {
	_c.mutation.SetPlayerColor(v)
	return _c
}

// SetWhite sets the "white" field.
func (_c *GameCreate) SetWhite(v string) *GameCreate {
	_c.mutation.SetWhite(v)
	return _c
}

// SetNillableWhite sets the "white" field if the given value is not nil.
func (_c *GameCreate) SetNillableWhite(v *string) *GameCreate {
	if v != nil {
		_c.SetWhite(*v)
	}
	return _c
}

// SetBlack sets the "black" field.
func (_c *GameCreate) SetBlack(v string) *GameCreate {
	_c.mutation.SetBlack(v)
	return _c
}

// SetNillableBlack sets the "black" field if the given value is not nil.
func (_c *GameCreate) SetNillableBlack(v *string) *GameCreate {
	if v != nil {
		_c.SetBlack(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *GameCreate) SetResult(v string) *GameCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_c *GameCreate) SetNillableResult(v *string) *GameCreate {
	if v != nil {
		_c.SetResult(*v)
	}
	return _c
}

// SetMoves sets the "moves" field.
func (_c *GameCreate) SetMoves(v []string) *GameCreate {
	_c.mutation.SetMoves(v)
	return _c
}

// SetJudgments sets the "judgments" field.
func (_c *GameCreate) SetJudgments(v []schema.JudgmentData) *GameCreate {
	_c.mutation.SetJudgments(v)
	return _c
}

// SetImportedAt sets the "imported_at" field.
func (_c *GameCreate) SetImportedAt(v time.Time) *GameCreate {
	_c.mutation.SetImportedAt(v)
	return _c
}

// SetNillableImportedAt sets the "imported_at" field if the given value is not nil.
func (_c *GameCreate) SetNillableImportedAt(v *time.Time) *GameCreate {
	if v != nil {
		_c.SetImportedAt(*v)
	}
	return _c
}

// Mutation returns the GameMutation object of the builder.
func (_c *GameCreate) Mutation() *GameMutation {
	return _c.mutation
}

// Save creates the Game in the database.
func (_c *GameCreate) Save(ctx context.Context) (*Game, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GameCreate) SaveX(ctx context.Context) *Game {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GameCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GameCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GameCreate) defaults() {
	if _, ok := _c.mutation.White(); !ok {
		v := game.DefaultWhite
		_c.mutation.SetWhite(v)
	}
	if _, ok := _c.mutation.Black(); !ok {
		v := game.DefaultBlack
		_c.mutation.SetBlack(v)
	}
	if _, ok := _c.mutation.Result(); !ok {
		v := game.DefaultResult
		_c.mutation.SetResult(v)
	}
	if _, ok := _c.mutation.ImportedAt(); !ok {
		v := game.DefaultImportedAt()
		_c.mutation.SetImportedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GameCreate) check() error {
	if _, ok := _c.mutation.GameID(); !ok {
		return &ValidationError{Name: "game_id", err: errors.New(`ent: missing required field "Game.game_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Game.user_id"`)}
	}
	if _, ok := _c.mutation.PlayerColor(); !ok {
		return &ValidationError{Name: "player_color", err: errors.New(`ent: missing required field "Game.player_color"`)}
	}
	if _, ok := _c.mutation.White(); !ok {
		return &ValidationError{Name: "white", err: errors.New(`ent: missing required field "Game.white"`)}
	}
	if _, ok := _c.mutation.Black(); !ok {
		return &ValidationError{Name: "black", err: errors.New(`ent: missing required field "Game.black"`)}
	}
	if _, ok := _c.mutation.Result(); !ok {
		return &ValidationError{Name: "result", err: errors.New(`ent: missing required field "Game.result"`)}
	}
	if _, ok := _c.mutation.Moves(); !ok {
		return &ValidationError{Name: "moves", err: errors.New(`ent: missing required field "Game.moves"`)}
	}
	if _, ok := _c.mutation.ImportedAt(); !ok {
		return &ValidationError{Name: "imported_at", err: errors.New(`ent: missing required field "Game.imported_at"`)}
	}
	return nil
}

func (_c *GameCreate) sqlSave(ctx context.Context) (*Game, error) {
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

func (_c *GameCreate) createSpec() (*Game, *sqlgraph.CreateSpec) {
	var (
		_node = &Game{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(game.Table, sqlgraph.NewFieldSpec(game.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.GameID(); ok {
		_spec.SetField(game.FieldGameID, field.TypeString, value)
		_node.GameID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(game.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.PlayerColor(); ok {
		_spec.SetField(game.FieldPlayerColor, field.TypeString, value)
		_node.PlayerColor = value
	}
	if value, ok := _c.mutation.White(); ok {
		_spec.SetField(game.FieldWhite, field.TypeString, value)
		_node.White = value
	}
	if value, ok := _c.mutation.Black(); ok {
		_spec.SetField(game.FieldBlack, field.TypeString, value)
		_node.Black = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(game.FieldResult, field.TypeString, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.Moves(); ok {
		_spec.SetField(game.FieldMoves, field.TypeJSON, value)
		_node.Moves = value
	}
	if value, ok := _c.mutation.Judgments(); ok {
		_spec.SetField(game.FieldJudgments, field.TypeJSON, value)
		_node.Judgments = value
	}
	if value, ok := _c.mutation.ImportedAt(); ok {
		_spec.SetField(game.FieldImportedAt, field.TypeTime, value)
		_node.ImportedAt = value
	}
	return _node, _spec
}

// GameCreateBulk is the builder for creating many Game entities in bulk.
type GameCreateBulk struct {
	config
	err      error
	builders []*GameCreate
}

// Save creates the Game entities in the database.
func (_c *GameCreateBulk) Save(ctx context.Context) ([]*Game, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Game, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GameMutation)
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
func (_c *GameCreateBulk) SaveX(ctx context.Context) []*Game {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GameCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GameCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
