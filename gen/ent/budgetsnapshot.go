// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/budgetsnapshot"
	"github.com/google/uuid"
)

// BudgetSnapshot is the model entity for the BudgetSnapshot schema.
type BudgetSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Day holds the value of the "day" field.
	Day string `json:"day,omitempty"`
	// TokensUsed holds the value of the "tokens_used" field.
	TokensUsed int64 `json:"tokens_used,omitempty"`
	// SpendUsd holds the value of the "spend_usd" field.
	SpendUsd float64 `json:"spend_usd,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BudgetSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case budgetsnapshot.FieldSpendUsd:
			values[i] = new(sql.NullFloat64)
		case budgetsnapshot.FieldTokensUsed:
			values[i] = new(sql.NullInt64)
		case budgetsnapshot.FieldDay:
			values[i] = new(sql.NullString)
		case budgetsnapshot.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case budgetsnapshot.FieldID, budgetsnapshot.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BudgetSnapshot fields.
func (_m *BudgetSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case budgetsnapshot.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case budgetsnapshot.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case budgetsnapshot.FieldDay:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field day", values[i])
			} else if value.Valid {
				_m.Day = value.String
			}
		case budgetsnapshot.FieldTokensUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_used", values[i])
			} else if value.Valid {
				_m.TokensUsed = value.Int64
			}
		case budgetsnapshot.FieldSpendUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field spend_usd", values[i])
			} else if value.Valid {
				_m.SpendUsd = value.Float64
			}
		case budgetsnapshot.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BudgetSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *BudgetSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BudgetSnapshot.
// Note that you need to call BudgetSnapshot.Unwrap() before calling this method if this BudgetSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BudgetSnapshot) Update() *BudgetSnapshotUpdateOne {
	return NewBudgetSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BudgetSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BudgetSnapshot) Unwrap() *BudgetSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BudgetSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BudgetSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("BudgetSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("day=")
	builder.WriteString(_m.Day)
	builder.WriteString(", ")
	builder.WriteString("tokens_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensUsed))
	builder.WriteString(", ")
	builder.WriteString("spend_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpendUsd))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BudgetSnapshots is a parsable slice of BudgetSnapshot.
type BudgetSnapshots []*BudgetSnapshot
