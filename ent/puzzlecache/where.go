// Code generated by ent, DO NOT EDIT.

package puzzlecache

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/pawnforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldLTE(FieldID, id))
}

// CacheKey applies equality check predicate on the "cache_key" field. It's identical to CacheKeyEQ.
func CacheKey(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldEQ(FieldCacheKey, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldEQ(FieldUserID, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldEQ(FieldCategory, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldEQ(FieldDifficulty, v))
}

// SchemaVersion applies equality check predicate on the "schema_version" field. It's identical to SchemaVersionEQ.
func SchemaVersion(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldEQ(FieldSchemaVersion, v))
}

// Puzzles applies equality check predicate on the "puzzles" field. It's identical to PuzzlesEQ.
func Puzzles(v []byte) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldEQ(FieldPuzzles, v))
}

// GeneratedAt applies equality check predicate on the "generated_at" field. It's identical to GeneratedAtEQ.
func GeneratedAt(v time.Time) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldEQ(FieldGeneratedAt, v))
}

// CacheKeyEQ applies the EQ predicate on the "cache_key" field.
func CacheKeyEQ(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldEQ(FieldCacheKey, v))
}

// CacheKeyNEQ applies the NEQ predicate on the "cache_key" field.
func CacheKeyNEQ(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldNEQ(FieldCacheKey, v))
}

// CacheKeyIn applies the In predicate on the "cache_key" field.
func CacheKeyIn(vs ...string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldIn(FieldCacheKey, vs...))
}

// CacheKeyNotIn applies the NotIn predicate on the "cache_key" field.
func CacheKeyNotIn(vs ...string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldNotIn(FieldCacheKey, vs...))
}

// CacheKeyGT applies the GT predicate on the "cache_key" field.
func CacheKeyGT(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldGT(FieldCacheKey, v))
}

// CacheKeyGTE applies the GTE predicate on the "cache_key" field.
func CacheKeyGTE(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldGTE(FieldCacheKey, v))
}

// CacheKeyLT applies the LT predicate on the "cache_key" field.
func CacheKeyLT(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldLT(FieldCacheKey, v))
}

// CacheKeyLTE applies the LTE predicate on the "cache_key" field.
func CacheKeyLTE(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldLTE(FieldCacheKey, v))
}

// CacheKeyContains applies the Contains predicate on the "cache_key" field.
func CacheKeyContains(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldContains(FieldCacheKey, v))
}

// CacheKeyHasPrefix applies the HasPrefix predicate on the "cache_key" field.
func CacheKeyHasPrefix(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldHasPrefix(FieldCacheKey, v))
}

// CacheKeyHasSuffix applies the HasSuffix predicate on the "cache_key" field.
func CacheKeyHasSuffix(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldHasSuffix(FieldCacheKey, v))
}

// CacheKeyEqualFold applies the EqualFold predicate on the "cache_key" field.
func CacheKeyEqualFold(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldEqualFold(FieldCacheKey, v))
}

// CacheKeyContainsFold applies the ContainsFold predicate on the "cache_key" field.
func CacheKeyContainsFold(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldContainsFold(FieldCacheKey, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldContainsFold(FieldUserID, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldContainsFold(FieldCategory, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldContainsFold(FieldDifficulty, v))
}

// SchemaVersionEQ applies the EQ predicate on the "schema_version" field.
func SchemaVersionEQ(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldEQ(FieldSchemaVersion, v))
}

// SchemaVersionNEQ applies the NEQ predicate on the "schema_version" field.
func SchemaVersionNEQ(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldNEQ(FieldSchemaVersion, v))
}

// SchemaVersionIn applies the In predicate on the "schema_version" field.
func SchemaVersionIn(vs ...string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldIn(FieldSchemaVersion, vs...))
}

// SchemaVersionNotIn applies the NotIn predicate on the "schema_version" field.
func SchemaVersionNotIn(vs ...string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldNotIn(FieldSchemaVersion, vs...))
}

// SchemaVersionGT applies the GT predicate on the "schema_version" field.
func SchemaVersionGT(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldGT(FieldSchemaVersion, v))
}

// SchemaVersionGTE applies the GTE predicate on the "schema_version" field.
func SchemaVersionGTE(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldGTE(FieldSchemaVersion, v))
}

// SchemaVersionLT applies the LT predicate on the "schema_version" field.
func SchemaVersionLT(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldLT(FieldSchemaVersion, v))
}

// SchemaVersionLTE applies the LTE predicate on the "schema_version" field.
func SchemaVersionLTE(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldLTE(FieldSchemaVersion, v))
}

// SchemaVersionContains applies the Contains predicate on the "schema_version" field.
func SchemaVersionContains(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldContains(FieldSchemaVersion, v))
}

// SchemaVersionHasPrefix applies the HasPrefix predicate on the "schema_version" field.
func SchemaVersionHasPrefix(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldHasPrefix(FieldSchemaVersion, v))
}

// SchemaVersionHasSuffix applies the HasSuffix predicate on the "schema_version" field.
func SchemaVersionHasSuffix(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldHasSuffix(FieldSchemaVersion, v))
}

// SchemaVersionEqualFold applies the EqualFold predicate on the "schema_version" field.
func SchemaVersionEqualFold(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldEqualFold(FieldSchemaVersion, v))
}

// SchemaVersionContainsFold applies the ContainsFold predicate on the "schema_version" field.
func SchemaVersionContainsFold(v string) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldContainsFold(FieldSchemaVersion, v))
}

// PuzzlesEQ applies the EQ predicate on the "puzzles" field.
func PuzzlesEQ(v []byte) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldEQ(FieldPuzzles, v))
}

// PuzzlesNEQ applies the NEQ predicate on the "puzzles" field.
func PuzzlesNEQ(v []byte) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldNEQ(FieldPuzzles, v))
}

// PuzzlesIn applies the In predicate on the "puzzles" field.
func PuzzlesIn(vs ...[]byte) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldIn(FieldPuzzles, vs...))
}

// PuzzlesNotIn applies the NotIn predicate on the "puzzles" field.
func PuzzlesNotIn(vs ...[]byte) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldNotIn(FieldPuzzles, vs...))
}

// PuzzlesGT applies the GT predicate on the "puzzles" field.
func PuzzlesGT(v []byte) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldGT(FieldPuzzles, v))
}

// PuzzlesGTE applies the GTE predicate on the "puzzles" field.
func PuzzlesGTE(v []byte) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldGTE(FieldPuzzles, v))
}

// PuzzlesLT applies the LT predicate on the "puzzles" field.
func PuzzlesLT(v []byte) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldLT(FieldPuzzles, v))
}

// PuzzlesLTE applies the LTE predicate on the "puzzles" field.
func PuzzlesLTE(v []byte) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldLTE(FieldPuzzles, v))
}

// GeneratedAtEQ applies the EQ predicate on the "generated_at" field.
func GeneratedAtEQ(v time.Time) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldEQ(FieldGeneratedAt, v))
}

// GeneratedAtNEQ applies the NEQ predicate on the "generated_at" field.
func GeneratedAtNEQ(v time.Time) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldNEQ(FieldGeneratedAt, v))
}

// GeneratedAtIn applies the In predicate on the "generated_at" field.
func GeneratedAtIn(vs ...time.Time) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldIn(FieldGeneratedAt, vs...))
}

// GeneratedAtNotIn applies the NotIn predicate on the "generated_at" field.
func GeneratedAtNotIn(vs ...time.Time) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldNotIn(FieldGeneratedAt, vs...))
}

// GeneratedAtGT applies the GT predicate on the "generated_at" field.
func GeneratedAtGT(v time.Time) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldGT(FieldGeneratedAt, v))
}

// GeneratedAtGTE applies the GTE predicate on the "generated_at" field.
func GeneratedAtGTE(v time.Time) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldGTE(FieldGeneratedAt, v))
}

// GeneratedAtLT applies the LT predicate on the "generated_at" field.
func GeneratedAtLT(v time.Time) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldLT(FieldGeneratedAt, v))
}

// GeneratedAtLTE applies the LTE predicate on the "generated_at" field.
func GeneratedAtLTE(v time.Time) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.FieldLTE(FieldGeneratedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PuzzleCache) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PuzzleCache) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PuzzleCache) predicate.PuzzleCache {
	return predicate.PuzzleCache(sql.NotPredicates(p))
}
