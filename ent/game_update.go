// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pawnforge/ent/game"
	"github.com/abhisek/pawnforge/ent/predicate"
	"github.com/abhisek/pawnforge/ent/schema"
)

// GameUpdate is the builder for updating Game entities.
type GameUpdate struct {
	config
	hooks    []Hook
	mutation *GameMutation
}

// Where appends a list predicates to the GameUpdate builder.
func (_u *GameUpdate) Where(ps ...predicate.Game) *GameUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlayerColor sets the "player_color" field.
func (_u *GameUpdate) SetPlayerColor(v string) *GameUpdate {
	_u.mutation.SetPlayerColor(v)
	return _u
}

// SetNillablePlayerColor sets the "player_color" field if the given value is not nil.
func (_u *GameUpdate) SetNillablePlayerColor(v *string) *GameUpdate {
	if v != nil {
		_u.SetPlayerColor(*v)
	}
	return _u
}

// SetWhite sets the "white" field.
func (_u *GameUpdate) SetWhite(v string) *GameUpdate {
	_u.mutation.SetWhite(v)
	return _u
}

// SetNillableWhite sets the "white" field if the given value is not nil.
func (_u *GameUpdate) SetNillableWhite(v *string) *GameUpdate {
	if v != nil {
		_u.SetWhite(*v)
	}
	return _u
}

// SetBlack sets the "black" field.
func (_u *GameUpdate) SetBlack(v string) *GameUpdate {
	_u.mutation.SetBlack(v)
	return _u
}

// SetNillableBlack sets the "black" field if the given value is not nil.
func (_u *GameUpdate) SetNillableBlack(v *string) *GameUpdate {
	if v != nil {
		_u.SetBlack(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *GameUpdate) SetResult(v string) *GameUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *GameUpdate) SetNillableResult(v *string) *GameUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// SetMoves sets the "moves" field.
func (_u *GameUpdate) SetMoves(v []string) *GameUpdate {
	_u.mutation.SetMoves(v)
	return _u
}

// AppendMoves appends value to the "moves" field.
func (_u *GameUpdate) AppendMoves(v []string) *GameUpdate {
	_u.mutation.AppendMoves(v)
	return _u
}

// SetJudgments sets the "judgments" field.
func (_u *GameUpdate) SetJudgments(v []schema.JudgmentData) *GameUpdate {
	_u.mutation.SetJudgments(v)
	return _u
}

// AppendJudgments appends value to the "judgments" field.
func (_u *GameUpdate) AppendJudgments(v []schema.JudgmentData) *GameUpdate {
	_u.mutation.AppendJudgments(v)
	return _u
}

// ClearJudgments clears the value of the "judgments" field.
func (_u *GameUpdate) ClearJudgments() *GameUpdate {
	_u.mutation.ClearJudgments()
	return _u
}

// Mutation returns the GameMutation object of the builder.
func (_u *GameUpdate) Mutation() *GameMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GameUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GameUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GameUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GameUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GameUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(game.Table, game.Columns, sqlgraph.NewFieldSpec(game.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PlayerColor(); ok {
		_spec.SetField(game.FieldPlayerColor, field.TypeString, value)
	}
	if value, ok := _u.mutation.White(); ok {
		_spec.SetField(game.FieldWhite, field.TypeString, value)
	}
	if value, ok := _u.mutation.Black(); ok {
		_spec.SetField(game.FieldBlack, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(game.FieldResult, field.TypeString, value)
	}
	if value, ok := _u.mutation.Moves(); ok {
		_spec.SetField(game.FieldMoves, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMoves(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, game.FieldMoves, value)
		})
	}
	if value, ok := _u.mutation.Judgments(); ok {
		_spec.SetField(game.FieldJudgments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedJudgments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, game.FieldJudgments, value)
		})
	}
	if _u.mutation.JudgmentsCleared() {
		_spec.ClearField(game.FieldJudgments, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{game.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GameUpdateOne is the builder for updating a single Game entity.
type GameUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GameMutation
}

// SetPlayerColor sets the "player_color" field.
func (_u *GameUpdateOne) SetPlayerColor(v string) *GameUpdateOne {
	_u.mutation.SetPlayerColor(v)
	return _u
}

// SetNillablePlayerColor sets the "player_color" field if the given value is not nil.
func (_u *GameUpdateOne) SetNillablePlayerColor(v *string) *GameUpdateOne {
	if v != nil {
		_u.SetPlayerColor(*v)
	}
	return _u
}

// SetWhite sets the "white" field.
func (_u *GameUpdateOne) SetWhite(v string) *GameUpdateOne {
	_u.mutation.SetWhite(v)
	return _u
}

// SetNillableWhite sets the "white" field if the given value is not nil.
func (_u *GameUpdateOne) SetNillableWhite(v *string) *GameUpdateOne {
	if v != nil {
		_u.SetWhite(*v)
	}
	return _u
}

// SetBlack sets the "black" field.
func (_u *GameUpdateOne) SetBlack(v string) *GameUpdateOne {
	_u.mutation.SetBlack(v)
	return _u
}

// SetNillableBlack sets the "black" field if the given value is not nil.
func (_u *GameUpdateOne) SetNillableBlack(v *string) *GameUpdateOne {
	if v != nil {
		_u.SetBlack(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *GameUpdateOne) SetResult(v string) *GameUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *GameUpdateOne) SetNillableResult(v *string) *GameUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// SetMoves sets the "moves" field.
func (_u *GameUpdateOne) SetMoves(v []string) *GameUpdateOne {
	_u.mutation.SetMoves(v)
	return _u
}

// AppendMoves appends value to the "moves" field.
func (_u *GameUpdateOne) AppendMoves(v []string) *GameUpdateOne {
	_u.mutation.AppendMoves(v)
	return _u
}

// SetJudgments sets the "judgments" field.
func (_u *GameUpdateOne) SetJudgments(v []schema.JudgmentData) *GameUpdateOne {
	_u.mutation.SetJudgments(v)
	return _u
}

// AppendJudgments appends value to the "judgments" field.
func (_u *GameUpdateOne) AppendJudgments(v []schema.JudgmentData) *GameUpdateOne {
	_u.mutation.AppendJudgments(v)
	return _u
}

// ClearJudgments clears the value of the "judgments" field.
func (_u *GameUpdateOne) ClearJudgments() *GameUpdateOne {
	_u.mutation.ClearJudgments()
	return _u
}

// Mutation returns the GameMutation object of the builder.
func (_u *GameUpdateOne) Mutation() *GameMutation {
	return _u.mutation
}

// Where appends a list predicates to the GameUpdate builder.
func (_u *GameUpdateOne) Where(ps ...predicate.Game) *GameUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GameUpdateOne) Select(field string, fields ...string) *GameUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Game entity.
func (_u *GameUpdateOne) Save(ctx context.Context) (*Game, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GameUpdateOne) SaveX(ctx context.Context) *Game {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GameUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GameUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GameUpdateOne) sqlSave(ctx context.Context) (_node *Game, err error) {
	_spec := sqlgraph.NewUpdateSpec(game.Table, game.Columns, sqlgraph.NewFieldSpec(game.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Game.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, game.FieldID)
		for _, f := range fields {
			if !game.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != game.FieldID {
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
	if value, ok := _u.mutation.PlayerColor(); ok {
		_spec.SetField(game.FieldPlayerColor, field.TypeString, value)
	}
	if value, ok := _u.mutation.White(); ok {
		_spec.SetField(game.FieldWhite, field.TypeString, value)
	}
	if value, ok := _u.mutation.Black(); ok {
		_spec.SetField(game.FieldBlack, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(game.FieldResult, field.TypeString, value)
	}
	if value, ok := _u.mutation.Moves(); ok {
		_spec.SetField(game.FieldMoves, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMoves(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, game.FieldMoves, value)
		})
	}
	if value, ok := _u.mutation.Judgments(); ok {
		_spec.SetField(game.FieldJudgments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedJudgments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, game.FieldJudgments, value)
		})
	}
	if _u.mutation.JudgmentsCleared() {
		_spec.ClearField(game.FieldJudgments, field.TypeJSON)
	}
	_node = &Game{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{game.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
