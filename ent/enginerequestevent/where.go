// Code generated by ent, DO NOT EDIT.

package enginerequestevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/pawnforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Engine applies equality check predicate on the "engine" field. It's identical to EngineEQ.
func Engine(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldEQ(FieldEngine, v))
}

// Depth applies equality check predicate on the "depth" field. It's identical to DepthEQ.
func Depth(v int) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldEQ(FieldDepth, v))
}

// TimeBudgetMs applies equality check predicate on the "time_budget_ms" field. It's identical to TimeBudgetMsEQ.
func TimeBudgetMs(v int64) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldEQ(FieldTimeBudgetMs, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int64) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldEQ(FieldSuccess, v))
}

// BestMove applies equality check predicate on the "best_move" field. It's identical to BestMoveEQ.
func BestMove(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldEQ(FieldBestMove, v))
}

// ReachedDepth applies equality check predicate on the "reached_depth" field. It's identical to ReachedDepthEQ.
func ReachedDepth(v int) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldEQ(FieldReachedDepth, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldLTE(FieldTimestamp, v))
}

// EngineEQ applies the EQ predicate on the "engine" field.
func EngineEQ(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldEQ(FieldEngine, v))
}

// EngineNEQ applies the NEQ predicate on the "engine" field.
func EngineNEQ(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldNEQ(FieldEngine, v))
}

// EngineIn applies the In predicate on the "engine" field.
func EngineIn(vs ...string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldIn(FieldEngine, vs...))
}

// EngineNotIn applies the NotIn predicate on the "engine" field.
func EngineNotIn(vs ...string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldNotIn(FieldEngine, vs...))
}

// EngineGT applies the GT predicate on the "engine" field.
func EngineGT(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldGT(FieldEngine, v))
}

// EngineGTE applies the GTE predicate on the "engine" field.
func EngineGTE(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldGTE(FieldEngine, v))
}

// EngineLT applies the LT predicate on the "engine" field.
func EngineLT(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldLT(FieldEngine, v))
}

// EngineLTE applies the LTE predicate on the "engine" field.
func EngineLTE(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldLTE(FieldEngine, v))
}

// EngineContains applies the Contains predicate on the "engine" field.
func EngineContains(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldContains(FieldEngine, v))
}

// EngineHasPrefix applies the HasPrefix predicate on the "engine" field.
func EngineHasPrefix(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldHasPrefix(FieldEngine, v))
}

// EngineHasSuffix applies the HasSuffix predicate on the "engine" field.
func EngineHasSuffix(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldHasSuffix(FieldEngine, v))
}

// EngineEqualFold applies the EqualFold predicate on the "engine" field.
func EngineEqualFold(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldEqualFold(FieldEngine, v))
}

// EngineContainsFold applies the ContainsFold predicate on the "engine" field.
func EngineContainsFold(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldContainsFold(FieldEngine, v))
}

// DepthEQ applies the EQ predicate on the "depth" field.
func DepthEQ(v int) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldEQ(FieldDepth, v))
}

// DepthNEQ applies the NEQ predicate on the "depth" field.
func DepthNEQ(v int) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldNEQ(FieldDepth, v))
}

// DepthIn applies the In predicate on the "depth" field.
func DepthIn(vs ...int) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldIn(FieldDepth, vs...))
}

// DepthNotIn applies the NotIn predicate on the "depth" field.
func DepthNotIn(vs ...int) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldNotIn(FieldDepth, vs...))
}

// DepthGT applies the GT predicate on the "depth" field.
func DepthGT(v int) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldGT(FieldDepth, v))
}

// DepthGTE applies the GTE predicate on the "depth" field.
func DepthGTE(v int) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldGTE(FieldDepth, v))
}

// DepthLT applies the LT predicate on the "depth" field.
func DepthLT(v int) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldLT(FieldDepth, v))
}

// DepthLTE applies the LTE predicate on the "depth" field.
func DepthLTE(v int) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldLTE(FieldDepth, v))
}

// TimeBudgetMsEQ applies the EQ predicate on the "time_budget_ms" field.
func TimeBudgetMsEQ(v int64) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldEQ(FieldTimeBudgetMs, v))
}

// TimeBudgetMsNEQ applies the NEQ predicate on the "time_budget_ms" field.
func TimeBudgetMsNEQ(v int64) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldNEQ(FieldTimeBudgetMs, v))
}

// TimeBudgetMsIn applies the In predicate on the "time_budget_ms" field.
func TimeBudgetMsIn(vs ...int64) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldIn(FieldTimeBudgetMs, vs...))
}

// TimeBudgetMsNotIn applies the NotIn predicate on the "time_budget_ms" field.
func TimeBudgetMsNotIn(vs ...int64) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldNotIn(FieldTimeBudgetMs, vs...))
}

// TimeBudgetMsGT applies the GT predicate on the "time_budget_ms" field.
func TimeBudgetMsGT(v int64) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldGT(FieldTimeBudgetMs, v))
}

// TimeBudgetMsGTE applies the GTE predicate on the "time_budget_ms" field.
func TimeBudgetMsGTE(v int64) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldGTE(FieldTimeBudgetMs, v))
}

// TimeBudgetMsLT applies the LT predicate on the "time_budget_ms" field.
func TimeBudgetMsLT(v int64) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldLT(FieldTimeBudgetMs, v))
}

// TimeBudgetMsLTE applies the LTE predicate on the "time_budget_ms" field.
func TimeBudgetMsLTE(v int64) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldLTE(FieldTimeBudgetMs, v))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int64) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int64) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int64) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int64) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int64) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int64) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int64) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int64) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldLTE(FieldLatencyMs, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldNEQ(FieldSuccess, v))
}

// BestMoveEQ applies the EQ predicate on the "best_move" field.
func BestMoveEQ(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldEQ(FieldBestMove, v))
}

// BestMoveNEQ applies the NEQ predicate on the "best_move" field.
func BestMoveNEQ(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldNEQ(FieldBestMove, v))
}

// BestMoveIn applies the In predicate on the "best_move" field.
func BestMoveIn(vs ...string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldIn(FieldBestMove, vs...))
}

// BestMoveNotIn applies the NotIn predicate on the "best_move" field.
func BestMoveNotIn(vs ...string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldNotIn(FieldBestMove, vs...))
}

// BestMoveGT applies the GT predicate on the "best_move" field.
func BestMoveGT(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldGT(FieldBestMove, v))
}

// BestMoveGTE applies the GTE predicate on the "best_move" field.
func BestMoveGTE(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldGTE(FieldBestMove, v))
}

// BestMoveLT applies the LT predicate on the "best_move" field.
func BestMoveLT(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldLT(FieldBestMove, v))
}

// BestMoveLTE applies the LTE predicate on the "best_move" field.
func BestMoveLTE(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldLTE(FieldBestMove, v))
}

// BestMoveContains applies the Contains predicate on the "best_move" field.
func BestMoveContains(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldContains(FieldBestMove, v))
}

// BestMoveHasPrefix applies the HasPrefix predicate on the "best_move" field.
func BestMoveHasPrefix(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldHasPrefix(FieldBestMove, v))
}

// BestMoveHasSuffix applies the HasSuffix predicate on the "best_move" field.
func BestMoveHasSuffix(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldHasSuffix(FieldBestMove, v))
}

// BestMoveEqualFold applies the EqualFold predicate on the "best_move" field.
func BestMoveEqualFold(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldEqualFold(FieldBestMove, v))
}

// BestMoveContainsFold applies the ContainsFold predicate on the "best_move" field.
func BestMoveContainsFold(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldContainsFold(FieldBestMove, v))
}

// ReachedDepthEQ applies the EQ predicate on the "reached_depth" field.
func ReachedDepthEQ(v int) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldEQ(FieldReachedDepth, v))
}

// ReachedDepthNEQ applies the NEQ predicate on the "reached_depth" field.
func ReachedDepthNEQ(v int) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldNEQ(FieldReachedDepth, v))
}

// ReachedDepthIn applies the In predicate on the "reached_depth" field.
func ReachedDepthIn(vs ...int) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldIn(FieldReachedDepth, vs...))
}

// ReachedDepthNotIn applies the NotIn predicate on the "reached_depth" field.
func ReachedDepthNotIn(vs ...int) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldNotIn(FieldReachedDepth, vs...))
}

// ReachedDepthGT applies the GT predicate on the "reached_depth" field.
func ReachedDepthGT(v int) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldGT(FieldReachedDepth, v))
}

// ReachedDepthGTE applies the GTE predicate on the "reached_depth" field.
func ReachedDepthGTE(v int) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldGTE(FieldReachedDepth, v))
}

// ReachedDepthLT applies the LT predicate on the "reached_depth" field.
func ReachedDepthLT(v int) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldLT(FieldReachedDepth, v))
}

// ReachedDepthLTE applies the LTE predicate on the "reached_depth" field.
func ReachedDepthLTE(v int) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldLTE(FieldReachedDepth, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EngineRequestEvent) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EngineRequestEvent) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EngineRequestEvent) predicate.EngineRequestEvent {
	return predicate.EngineRequestEvent(sql.NotPredicates(p))
}
