// Code generated by ent, DO NOT EDIT.

package game

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/pawnforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldID, id))
}

// GameID applies equality check predicate on the "game_id" field. It's identical to GameIDEQ.
func GameID(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldGameID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldUserID, v))
}

// PlayerColor applies equality check predicate on the "player_color" field. It's identical to PlayerColorEQ.
func PlayerColor(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldPlayerColor, v))
}

// White applies equality check predicate on the "white" field. It's identical to WhiteEQ.
func White(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldWhite, v))
}

// Black applies equality check predicate on the "black" field. It's identical to BlackEQ.
func Black(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldBlack, v))
}

// Result applies equality check predicate on the "result" field. It's identical to ResultEQ.
func Result(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldResult, v))
}

// ImportedAt applies equality check predicate on the "imported_at" field. It's identical to ImportedAtEQ.
func ImportedAt(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldImportedAt, v))
}

// GameIDEQ applies the EQ predicate on the "game_id" field.
func GameIDEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldGameID, v))
}

// GameIDNEQ applies the NEQ predicate on the "game_id" field.
func GameIDNEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldGameID, v))
}

// GameIDIn applies the In predicate on the "game_id" field.
func GameIDIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldGameID, vs...))
}

// GameIDNotIn applies the NotIn predicate on the "game_id" field.
func GameIDNotIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldGameID, vs...))
}

// GameIDGT applies the GT predicate on the "game_id" field.
func GameIDGT(v string) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldGameID, v))
}

// GameIDGTE applies the GTE predicate on the "game_id" field.
func GameIDGTE(v string) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldGameID, v))
}

// GameIDLT applies the LT predicate on the "game_id" field.
func GameIDLT(v string) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldGameID, v))
}

// GameIDLTE applies the LTE predicate on the "game_id" field.
func GameIDLTE(v string) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldGameID, v))
}

// GameIDContains applies the Contains predicate on the "game_id" field.
func GameIDContains(v string) predicate.Game {
	return predicate.Game(sql.FieldContains(FieldGameID, v))
}

// GameIDHasPrefix applies the HasPrefix predicate on the "game_id" field.
func GameIDHasPrefix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasPrefix(FieldGameID, v))
}

// GameIDHasSuffix applies the HasSuffix predicate on the "game_id" field.
func GameIDHasSuffix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasSuffix(FieldGameID, v))
}

// GameIDEqualFold applies the EqualFold predicate on the "game_id" field.
func GameIDEqualFold(v string) predicate.Game {
	return predicate.Game(sql.FieldEqualFold(FieldGameID, v))
}

// GameIDContainsFold applies the ContainsFold predicate on the "game_id" field.
func GameIDContainsFold(v string) predicate.Game {
	return predicate.Game(sql.FieldContainsFold(FieldGameID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Game {
	return predicate.Game(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Game {
	return predicate.Game(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Game {
	return predicate.Game(sql.FieldContainsFold(FieldUserID, v))
}

// PlayerColorEQ applies the EQ predicate on the "player_color" field.
func PlayerColorEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldPlayerColor, v))
}

// PlayerColorNEQ applies the NEQ predicate on the "player_color" field.
func PlayerColorNEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldPlayerColor, v))
}

// PlayerColorIn applies the In predicate on the "player_color" field.
func PlayerColorIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldPlayerColor, vs...))
}

// PlayerColorNotIn applies the NotIn predicate on the "player_color" field.
func PlayerColorNotIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldPlayerColor, vs...))
}

// PlayerColorGT applies the GT predicate on the "player_color" field.
func PlayerColorGT(v string) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldPlayerColor, v))
}

// PlayerColorGTE applies the GTE predicate on the "player_color" field.
func PlayerColorGTE(v string) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldPlayerColor, v))
}

// PlayerColorLT applies the LT predicate on the "player_color" field.
func PlayerColorLT(v string) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldPlayerColor, v))
}

// PlayerColorLTE applies the LTE predicate on the "player_color" field.
func PlayerColorLTE(v string) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldPlayerColor, v))
}

// PlayerColorContains applies the Contains predicate on the "player_color" field.
func PlayerColorContains(v string) predicate.Game {
	return predicate.Game(sql.FieldContains(FieldPlayerColor, v))
}

// PlayerColorHasPrefix applies the HasPrefix predicate on the "player_color" field.
func PlayerColorHasPrefix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasPrefix(FieldPlayerColor, v))
}

// PlayerColorHasSuffix applies the HasSuffix predicate on the "player_color" field.
func PlayerColorHasSuffix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasSuffix(FieldPlayerColor, v))
}

// PlayerColorEqualFold applies the EqualFold predicate on the "player_color" field.
func PlayerColorEqualFold(v string) predicate.Game {
	return predicate.Game(sql.FieldEqualFold(FieldPlayerColor, v))
}

// PlayerColorContainsFold applies the ContainsFold predicate on the "player_color" field.
func PlayerColorContainsFold(v string) predicate.Game {
	return predicate.Game(sql.FieldContainsFold(FieldPlayerColor, v))
}

// WhiteEQ applies the EQ predicate on the "white" field.
func WhiteEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldWhite, v))
}

// WhiteNEQ applies the NEQ predicate on the "white" field.
func WhiteNEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldWhite, v))
}

// WhiteIn applies the In predicate on the "white" field.
func WhiteIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldWhite, vs...))
}

// WhiteNotIn applies the NotIn predicate on the "white" field.
func WhiteNotIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldWhite, vs...))
}

// WhiteGT applies the GT predicate on the "white" field.
func WhiteGT(v string) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldWhite, v))
}

// WhiteGTE applies the GTE predicate on the "white" field.
func WhiteGTE(v string) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldWhite, v))
}

// WhiteLT applies the LT predicate on the "white" field.
func WhiteLT(v string) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldWhite, v))
}

// WhiteLTE applies the LTE predicate on the "white" field.
func WhiteLTE(v string) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldWhite, v))
}

// WhiteContains applies the Contains predicate on the "white" field.
func WhiteContains(v string) predicate.Game {
	return predicate.Game(sql.FieldContains(FieldWhite, v))
}

// WhiteHasPrefix applies the HasPrefix predicate on the "white" field.
func WhiteHasPrefix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasPrefix(FieldWhite, v))
}

// WhiteHasSuffix applies the HasSuffix predicate on the "white" field.
func WhiteHasSuffix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasSuffix(FieldWhite, v))
}

// WhiteEqualFold applies the EqualFold predicate on the "white" field.
func WhiteEqualFold(v string) predicate.Game {
	return predicate.Game(sql.FieldEqualFold(FieldWhite, v))
}

// WhiteContainsFold applies the ContainsFold predicate on the "white" field.
func WhiteContainsFold(v string) predicate.Game {
	return predicate.Game(sql.FieldContainsFold(FieldWhite, v))
}

// BlackEQ applies the EQ predicate on the "black" field.
func BlackEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldBlack, v))
}

// BlackNEQ applies the NEQ predicate on the "black" field.
func BlackNEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldBlack, v))
}

// BlackIn applies the In predicate on the "black" field.
func BlackIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldBlack, vs...))
}

// BlackNotIn applies the NotIn predicate on the "black" field.
func BlackNotIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldBlack, vs...))
}

// BlackGT applies the GT predicate on the "black" field.
func BlackGT(v string) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldBlack, v))
}

// BlackGTE applies the GTE predicate on the "black" field.
func BlackGTE(v string) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldBlack, v))
}

// BlackLT applies the LT predicate on the "black" field.
func BlackLT(v string) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldBlack, v))
}

// BlackLTE applies the LTE predicate on the "black" field.
func BlackLTE(v string) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldBlack, v))
}

// BlackContains applies the Contains predicate on the "black" field.
func BlackContains(v string) predicate.Game {
	return predicate.Game(sql.FieldContains(FieldBlack, v))
}

// BlackHasPrefix applies the HasPrefix predicate on the "black" field.
func BlackHasPrefix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasPrefix(FieldBlack, v))
}

// BlackHasSuffix applies the HasSuffix predicate on the "black" field.
func BlackHasSuffix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasSuffix(FieldBlack, v))
}

// BlackEqualFold applies the EqualFold predicate on the "black" field.
func BlackEqualFold(v string) predicate.Game {
	return predicate.Game(sql.FieldEqualFold(FieldBlack, v))
}

// BlackContainsFold applies the ContainsFold predicate on the "black" field.
func BlackContainsFold(v string) predicate.Game {
	return predicate.Game(sql.FieldContainsFold(FieldBlack, v))
}

// ResultEQ applies the EQ predicate on the "result" field.
func ResultEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldResult, v))
}

// ResultNEQ applies the NEQ predicate on the "result" field.
func ResultNEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldResult, v))
}

// ResultIn applies the In predicate on the "result" field.
func ResultIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldResult, vs...))
}

// ResultNotIn applies the NotIn predicate on the "result" field.
func ResultNotIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldResult, vs...))
}

// ResultGT applies the GT predicate on the "result" field.
func ResultGT(v string) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldResult, v))
}

// ResultGTE applies the GTE predicate on the "result" field.
func ResultGTE(v string) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldResult, v))
}

// ResultLT applies the LT predicate on the "result" field.
func ResultLT(v string) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldResult, v))
}

// ResultLTE applies the LTE predicate on the "result" field.
func ResultLTE(v string) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldResult, v))
}

// ResultContains applies the Contains predicate on the "result" field.
func ResultContains(v string) predicate.Game {
	return predicate.Game(sql.FieldContains(FieldResult, v))
}

// ResultHasPrefix applies the HasPrefix predicate on the "result" field.
func ResultHasPrefix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasPrefix(FieldResult, v))
}

// ResultHasSuffix applies the HasSuffix predicate on the "result" field.
func ResultHasSuffix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasSuffix(FieldResult, v))
}

// ResultEqualFold applies the EqualFold predicate on the "result" field.
func ResultEqualFold(v string) predicate.Game {
	return predicate.Game(sql.FieldEqualFold(FieldResult, v))
}

// ResultContainsFold applies the ContainsFold predicate on the "result" field.
func ResultContainsFold(v string) predicate.Game {
	return predicate.Game(sql.FieldContainsFold(FieldResult, v))
}

// JudgmentsIsNil applies the IsNil predicate on the "judgments" field.
func JudgmentsIsNil() predicate.Game {
	return predicate.Game(sql.FieldIsNull(FieldJudgments))
}

// JudgmentsNotNil applies the NotNil predicate on the "judgments" field.
func JudgmentsNotNil() predicate.Game {
	return predicate.Game(sql.FieldNotNull(FieldJudgments))
}

// ImportedAtEQ applies the EQ predicate on the "imported_at" field.
func ImportedAtEQ(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldImportedAt, v))
}

// ImportedAtNEQ applies the NEQ predicate on the "imported_at" field.
func ImportedAtNEQ(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldImportedAt, v))
}

// ImportedAtIn applies the In predicate on the "imported_at" field.
func ImportedAtIn(vs ...time.Time) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldImportedAt, vs...))
}

// ImportedAtNotIn applies the NotIn predicate on the "imported_at" field.
func ImportedAtNotIn(vs ...time.Time) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldImportedAt, vs...))
}

// ImportedAtGT applies the GT predicate on the "imported_at" field.
func ImportedAtGT(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldImportedAt, v))
}

// ImportedAtGTE applies the GTE predicate on the "imported_at" field.
func ImportedAtGTE(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldImportedAt, v))
}

// ImportedAtLT applies the LT predicate on the "imported_at" field.
func ImportedAtLT(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldImportedAt, v))
}

// ImportedAtLTE applies the LTE predicate on the "imported_at" field.
func ImportedAtLTE(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldImportedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Game) predicate.Game {
	return predicate.Game(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Game) predicate.Game {
	return predicate.Game(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Game) predicate.Game {
	return predicate.Game(sql.NotPredicates(p))
}
