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
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/budgetsnapshot"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/predicate"
	"github.com/google/uuid"
)

// BudgetSnapshotUpdate is the builder for updating BudgetSnapshot entities.
type BudgetSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *BudgetSnapshotMutation
}

// Where appends a list predicates to the BudgetSnapshotUpdate builder.
func (_u *BudgetSnapshotUpdate) Where(ps ...predicate.BudgetSnapshot) *BudgetSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *BudgetSnapshotUpdate) SetUserID(v uuid.UUID) *BudgetSnapshotUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BudgetSnapshotUpdate) SetNillableUserID(v *uuid.UUID) *BudgetSnapshotUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *BudgetSnapshotUpdate) SetDay(v string) *BudgetSnapshotUpdate {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *BudgetSnapshotUpdate) SetNillableDay(v *string) *BudgetSnapshotUpdate {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *BudgetSnapshotUpdate) SetTokensUsed(v int64) *BudgetSnapshotUpdate {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *BudgetSnapshotUpdate) SetNillableTokensUsed(v *int64) *BudgetSnapshotUpdate {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *BudgetSnapshotUpdate) AddTokensUsed(v int64) *BudgetSnapshotUpdate {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetSpendUsd sets the "spend_usd" field.
func (_u *BudgetSnapshotUpdate) SetSpendUsd(v float64) *BudgetSnapshotUpdate {
	_u.mutation.ResetSpendUsd()
	_u.mutation.SetSpendUsd(v)
	return _u
}

// SetNillableSpendUsd sets the "spend_usd" field if the given value is not nil.
func (_u *BudgetSnapshotUpdate) SetNillableSpendUsd(v *float64) *BudgetSnapshotUpdate {
	if v != nil {
		_u.SetSpendUsd(*v)
	}
	return _u
}

// AddSpendUsd adds value to the "spend_usd" field.
func (_u *BudgetSnapshotUpdate) AddSpendUsd(v float64) *BudgetSnapshotUpdate {
	_u.mutation.AddSpendUsd(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BudgetSnapshotUpdate) SetUpdatedAt(v time.Time) *BudgetSnapshotUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BudgetSnapshotMutation object of the builder.
func (_u *BudgetSnapshotUpdate) Mutation() *BudgetSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BudgetSnapshotUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BudgetSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BudgetSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BudgetSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BudgetSnapshotUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := budgetsnapshot.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BudgetSnapshotUpdate) check() error {
	if v, ok := _u.mutation.Day(); ok {
		if err := budgetsnapshot.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "BudgetSnapshot.day": %w`, err)}
		}
	}
	return nil
}

func (_u *BudgetSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(budgetsnapshot.Table, budgetsnapshot.Columns, sqlgraph.NewFieldSpec(budgetsnapshot.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(budgetsnapshot.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(budgetsnapshot.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(budgetsnapshot.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(budgetsnapshot.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SpendUsd(); ok {
		_spec.SetField(budgetsnapshot.FieldSpendUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSpendUsd(); ok {
		_spec.AddField(budgetsnapshot.FieldSpendUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(budgetsnapshot.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{budgetsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BudgetSnapshotUpdateOne is the builder for updating a single BudgetSnapshot entity.
type BudgetSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BudgetSnapshotMutation
}

// SetUserID sets the "user_id" field.
func (_u *BudgetSnapshotUpdateOne) SetUserID(v uuid.UUID) *BudgetSnapshotUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BudgetSnapshotUpdateOne) SetNillableUserID(v *uuid.UUID) *BudgetSnapshotUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *BudgetSnapshotUpdateOne) SetDay(v string) *BudgetSnapshotUpdateOne {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *BudgetSnapshotUpdateOne) SetNillableDay(v *string) *BudgetSnapshotUpdateOne {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *BudgetSnapshotUpdateOne) SetTokensUsed(v int64) *BudgetSnapshotUpdateOne {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *BudgetSnapshotUpdateOne) SetNillableTokensUsed(v *int64) *BudgetSnapshotUpdateOne {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *BudgetSnapshotUpdateOne) AddTokensUsed(v int64) *BudgetSnapshotUpdateOne {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetSpendUsd sets the "spend_usd" field.
func (_u *BudgetSnapshotUpdateOne) SetSpendUsd(v float64) *BudgetSnapshotUpdateOne {
	_u.mutation.ResetSpendUsd()
	_u.mutation.SetSpendUsd(v)
	return _u
}

// SetNillableSpendUsd sets the "spend_usd" field if the given value is not nil.
func (_u *BudgetSnapshotUpdateOne) SetNillableSpendUsd(v *float64) *BudgetSnapshotUpdateOne {
	if v != nil {
		_u.SetSpendUsd(*v)
	}
	return _u
}

// AddSpendUsd adds value to the "spend_usd" field.
func (_u *BudgetSnapshotUpdateOne) AddSpendUsd(v float64) *BudgetSnapshotUpdateOne {
	_u.mutation.AddSpendUsd(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BudgetSnapshotUpdateOne) SetUpdatedAt(v time.Time) *BudgetSnapshotUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BudgetSnapshotMutation object of the builder.
func (_u *BudgetSnapshotUpdateOne) Mutation() *BudgetSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the BudgetSnapshotUpdate builder.
func (_u *BudgetSnapshotUpdateOne) Where(ps ...predicate.BudgetSnapshot) *BudgetSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BudgetSnapshotUpdateOne) Select(field string, fields ...string) *BudgetSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BudgetSnapshot entity.
func (_u *BudgetSnapshotUpdateOne) Save(ctx context.Context) (*BudgetSnapshot, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BudgetSnapshotUpdateOne) SaveX(ctx context.Context) *BudgetSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BudgetSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BudgetSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BudgetSnapshotUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := budgetsnapshot.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BudgetSnapshotUpdateOne) check() error {
	if v, ok := _u.mutation.Day(); ok {
		if err := budgetsnapshot.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "BudgetSnapshot.day": %w`, err)}
		}
	}
	return nil
}

func (_u *BudgetSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *BudgetSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(budgetsnapshot.Table, budgetsnapshot.Columns, sqlgraph.NewFieldSpec(budgetsnapshot.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BudgetSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, budgetsnapshot.FieldID)
		for _, f := range fields {
			if !budgetsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != budgetsnapshot.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(budgetsnapshot.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(budgetsnapshot.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(budgetsnapshot.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(budgetsnapshot.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SpendUsd(); ok {
		_spec.SetField(budgetsnapshot.FieldSpendUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSpendUsd(); ok {
		_spec.AddField(budgetsnapshot.FieldSpendUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(budgetsnapshot.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &BudgetSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{budgetsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
