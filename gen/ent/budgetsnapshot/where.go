// Code generated by ent, DO NOT EDIT.

package budgetsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldEQ(FieldUserID, v))
}

// Day applies equality check predicate on the "day" field. It's identical to DayEQ.
func Day(v string) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldEQ(FieldDay, v))
}

// TokensUsed applies equality check predicate on the "tokens_used" field. It's identical to TokensUsedEQ.
func TokensUsed(v int64) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldEQ(FieldTokensUsed, v))
}

// SpendUsd applies equality check predicate on the "spend_usd" field. It's identical to SpendUsdEQ.
func SpendUsd(v float64) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldEQ(FieldSpendUsd, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldLTE(FieldUserID, v))
}

// DayEQ applies the EQ predicate on the "day" field.
func DayEQ(v string) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldEQ(FieldDay, v))
}

// DayNEQ applies the NEQ predicate on the "day" field.
func DayNEQ(v string) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldNEQ(FieldDay, v))
}

// DayIn applies the In predicate on the "day" field.
func DayIn(vs ...string) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldIn(FieldDay, vs...))
}

// DayNotIn applies the NotIn predicate on the "day" field.
func DayNotIn(vs ...string) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldNotIn(FieldDay, vs...))
}

// DayGT applies the GT predicate on the "day" field.
func DayGT(v string) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldGT(FieldDay, v))
}

// DayGTE applies the GTE predicate on the "day" field.
func DayGTE(v string) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldGTE(FieldDay, v))
}

// DayLT applies the LT predicate on the "day" field.
func DayLT(v string) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldLT(FieldDay, v))
}

// DayLTE applies the LTE predicate on the "day" field.
func DayLTE(v string) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldLTE(FieldDay, v))
}

// DayContains applies the Contains predicate on the "day" field.
func DayContains(v string) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldContains(FieldDay, v))
}

// DayHasPrefix applies the HasPrefix predicate on the "day" field.
func DayHasPrefix(v string) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldHasPrefix(FieldDay, v))
}

// DayHasSuffix applies the HasSuffix predicate on the "day" field.
func DayHasSuffix(v string) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldHasSuffix(FieldDay, v))
}

// DayEqualFold applies the EqualFold predicate on the "day" field.
func DayEqualFold(v string) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldEqualFold(FieldDay, v))
}

// DayContainsFold applies the ContainsFold predicate on the "day" field.
func DayContainsFold(v string) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldContainsFold(FieldDay, v))
}

// TokensUsedEQ applies the EQ predicate on the "tokens_used" field.
func TokensUsedEQ(v int64) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldEQ(FieldTokensUsed, v))
}

// TokensUsedNEQ applies the NEQ predicate on the "tokens_used" field.
func TokensUsedNEQ(v int64) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldNEQ(FieldTokensUsed, v))
}

// TokensUsedIn applies the In predicate on the "tokens_used" field.
func TokensUsedIn(vs ...int64) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldIn(FieldTokensUsed, vs...))
}

// TokensUsedNotIn applies the NotIn predicate on the "tokens_used" field.
func TokensUsedNotIn(vs ...int64) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldNotIn(FieldTokensUsed, vs...))
}

// TokensUsedGT applies the GT predicate on the "tokens_used" field.
func TokensUsedGT(v int64) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldGT(FieldTokensUsed, v))
}

// TokensUsedGTE applies the GTE predicate on the "tokens_used" field.
func TokensUsedGTE(v int64) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldGTE(FieldTokensUsed, v))
}

// TokensUsedLT applies the LT predicate on the "tokens_used" field.
func TokensUsedLT(v int64) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldLT(FieldTokensUsed, v))
}

// TokensUsedLTE applies the LTE predicate on the "tokens_used" field.
func TokensUsedLTE(v int64) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldLTE(FieldTokensUsed, v))
}

// SpendUsdEQ applies the EQ predicate on the "spend_usd" field.
func SpendUsdEQ(v float64) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldEQ(FieldSpendUsd, v))
}

// SpendUsdNEQ applies the NEQ predicate on the "spend_usd" field.
func SpendUsdNEQ(v float64) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldNEQ(FieldSpendUsd, v))
}

// SpendUsdIn applies the In predicate on the "spend_usd" field.
func SpendUsdIn(vs ...float64) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldIn(FieldSpendUsd, vs...))
}

// SpendUsdNotIn applies the NotIn predicate on the "spend_usd" field.
func SpendUsdNotIn(vs ...float64) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldNotIn(FieldSpendUsd, vs...))
}

// SpendUsdGT applies the GT predicate on the "spend_usd" field.
func SpendUsdGT(v float64) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldGT(FieldSpendUsd, v))
}

// SpendUsdGTE applies the GTE predicate on the "spend_usd" field.
func SpendUsdGTE(v float64) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldGTE(FieldSpendUsd, v))
}

// SpendUsdLT applies the LT predicate on the "spend_usd" field.
func SpendUsdLT(v float64) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldLT(FieldSpendUsd, v))
}

// SpendUsdLTE applies the LTE predicate on the "spend_usd" field.
func SpendUsdLTE(v float64) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldLTE(FieldSpendUsd, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BudgetSnapshot) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BudgetSnapshot) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BudgetSnapshot) predicate.BudgetSnapshot {
	return predicate.BudgetSnapshot(sql.NotPredicates(p))
}
