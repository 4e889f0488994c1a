// Code generated by ent, DO NOT EDIT.

package budgetsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the budgetsnapshot type in the database.
	Label = "budget_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldDay holds the string denoting the day field in the database.
	FieldDay = "day"
	// FieldTokensUsed holds the string denoting the tokens_used field in the database.
	FieldTokensUsed = "tokens_used"
	// FieldSpendUsd holds the string denoting the spend_usd field in the database.
	FieldSpendUsd = "spend_usd"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the budgetsnapshot in the database.
	Table = "budget_snapshot"
)

// Columns holds all SQL columns for budgetsnapshot fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldDay,
	FieldTokensUsed,
	FieldSpendUsd,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DayValidator is a validator for the "day" field. It is called by the builders before save.
	DayValidator func(string) error
	// DefaultTokensUsed holds the default value on creation for the "tokens_used" field.
	DefaultTokensUsed int64
	// DefaultSpendUsd holds the default value on creation for the "spend_usd" field.
	DefaultSpendUsd float64
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the BudgetSnapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByDay orders the results by the day field.
func ByDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDay, opts...).ToFunc()
}

// ByTokensUsed orders the results by the tokens_used field.
func ByTokensUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensUsed, opts...).ToFunc()
}

// BySpendUsd orders the results by the spend_usd field.
func BySpendUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpendUsd, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
