// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/budgetsnapshot"
	"github.com/google/uuid"
)

// BudgetSnapshotCreate is the builder for creating a BudgetSnapshot entity.
type BudgetSnapshotCreate struct {
	config
	mutation *BudgetSnapshotMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *BudgetSnapshotCreate) SetUserID(v uuid.UUID) *BudgetSnapshotCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDay sets the "day" field.
func (_c *BudgetSnapshotCreate) SetDay(v string) *BudgetSnapshotCreate {
	_c.mutation.SetDay(v)
	return _c
}

// SetTokensUsed sets the "tokens_used" field.
func (_c *BudgetSnapshotCreate) SetTokensUsed(v int64) *BudgetSnapshotCreate {
	_c.mutation.SetTokensUsed(v)
	return _c
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_c *BudgetSnapshotCreate) SetNillableTokensUsed(v *int64) *BudgetSnapshotCreate {
	if v != nil {
		_c.SetTokensUsed(*v)
	}
	return _c
}

// SetSpendUsd sets the "spend_usd" field.
func (_c *BudgetSnapshotCreate) SetSpendUsd(v float64) *BudgetSnapshotCreate {
	_c.mutation.SetSpendUsd(v)
	return _c
}

// SetNillableSpendUsd sets the "spend_usd" field if the given value is not nil.
func (_c *BudgetSnapshotCreate) SetNillableSpendUsd(v *float64) *BudgetSnapshotCreate {
	if v != nil {
		_c.SetSpendUsd(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BudgetSnapshotCreate) SetUpdatedAt(v time.Time) *BudgetSnapshotCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BudgetSnapshotCreate) SetNillableUpdatedAt(v *time.Time) *BudgetSnapshotCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BudgetSnapshotCreate) SetID(v uuid.UUID) *BudgetSnapshotCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BudgetSnapshotCreate) SetNillableID(v *uuid.UUID) *BudgetSnapshotCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the BudgetSnapshotMutation object of the builder.
func (_c *BudgetSnapshotCreate) Mutation() *BudgetSnapshotMutation {
	return _c.mutation
}

// Save creates the BudgetSnapshot in the database.
func (_c *BudgetSnapshotCreate) Save(ctx context.Context) (*BudgetSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BudgetSnapshotCreate) SaveX(ctx context.Context) *BudgetSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BudgetSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BudgetSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BudgetSnapshotCreate) defaults() {
	if _, ok := _c.mutation.TokensUsed(); !ok {
		v := budgetsnapshot.DefaultTokensUsed
		_c.mutation.SetTokensUsed(v)
	}
	if _, ok := _c.mutation.SpendUsd(); !ok {
		v := budgetsnapshot.DefaultSpendUsd
		_c.mutation.SetSpendUsd(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := budgetsnapshot.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := budgetsnapshot.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BudgetSnapshotCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "BudgetSnapshot.user_id"`)}
	}
	if _, ok := _c.mutation.Day(); !ok {
		return &ValidationError{Name: "day", err: errors.New(`ent: missing required field "BudgetSnapshot.day"`)}
	}
	if v, ok := _c.mutation.Day(); ok {
		if err := budgetsnapshot.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "BudgetSnapshot.day": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		return &ValidationError{Name: "tokens_used", err: errors.New(`ent: missing required field "BudgetSnapshot.tokens_used"`)}
	}
	if _, ok := _c.mutation.SpendUsd(); !ok {
		return &ValidationError{Name: "spend_usd", err: errors.New(`ent: missing required field "BudgetSnapshot.spend_usd"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BudgetSnapshot.updated_at"`)}
	}
	return nil
}

func (_c *BudgetSnapshotCreate) sqlSave(ctx context.Context) (*BudgetSnapshot, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BudgetSnapshotCreate) createSpec() (*BudgetSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &BudgetSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(budgetsnapshot.Table, sqlgraph.NewFieldSpec(budgetsnapshot.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(budgetsnapshot.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Day(); ok {
		_spec.SetField(budgetsnapshot.FieldDay, field.TypeString, value)
		_node.Day = value
	}
	if value, ok := _c.mutation.TokensUsed(); ok {
		_spec.SetField(budgetsnapshot.FieldTokensUsed, field.TypeInt64, value)
		_node.TokensUsed = value
	}
	if value, ok := _c.mutation.SpendUsd(); ok {
		_spec.SetField(budgetsnapshot.FieldSpendUsd, field.TypeFloat64, value)
		_node.SpendUsd = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(budgetsnapshot.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BudgetSnapshot.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BudgetSnapshotUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *BudgetSnapshotCreate) OnConflict(opts ...sql.ConflictOption) *BudgetSnapshotUpsertOne {
	_c.conflict = opts
	return &BudgetSnapshotUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BudgetSnapshot.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BudgetSnapshotCreate) OnConflictColumns(columns ...string) *BudgetSnapshotUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BudgetSnapshotUpsertOne{
		create: _c,
	}
}

type (
	// BudgetSnapshotUpsertOne is the builder for "upsert"-ing
	//  one BudgetSnapshot node.
	BudgetSnapshotUpsertOne struct {
		create *BudgetSnapshotCreate
	}

	// BudgetSnapshotUpsert is the "OnConflict" setter.
	BudgetSnapshotUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *BudgetSnapshotUpsert) SetUserID(v uuid.UUID) *BudgetSnapshotUpsert {
	u.Set(budgetsnapshot.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *BudgetSnapshotUpsert) UpdateUserID() *BudgetSnapshotUpsert {
	u.SetExcluded(budgetsnapshot.FieldUserID)
	return u
}

// SetDay sets the "day" field.
func (u *BudgetSnapshotUpsert) SetDay(v string) *BudgetSnapshotUpsert {
	u.Set(budgetsnapshot.FieldDay, v)
	return u
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *BudgetSnapshotUpsert) UpdateDay() *BudgetSnapshotUpsert {
	u.SetExcluded(budgetsnapshot.FieldDay)
	return u
}

// SetTokensUsed sets the "tokens_used" field.
func (u *BudgetSnapshotUpsert) SetTokensUsed(v int64) *BudgetSnapshotUpsert {
	u.Set(budgetsnapshot.FieldTokensUsed, v)
	return u
}

// UpdateTokensUsed sets the "tokens_used" field to the value that was provided on create.
func (u *BudgetSnapshotUpsert) UpdateTokensUsed() *BudgetSnapshotUpsert {
	u.SetExcluded(budgetsnapshot.FieldTokensUsed)
	return u
}

// AddTokensUsed adds v to the "tokens_used" field.
func (u *BudgetSnapshotUpsert) AddTokensUsed(v int64) *BudgetSnapshotUpsert {
	u.Add(budgetsnapshot.FieldTokensUsed, v)
	return u
}

// SetSpendUsd sets the "spend_usd" field.
func (u *BudgetSnapshotUpsert) SetSpendUsd(v float64) *BudgetSnapshotUpsert {
	u.Set(budgetsnapshot.FieldSpendUsd, v)
	return u
}

// UpdateSpendUsd sets the "spend_usd" field to the value that was provided on create.
func (u *BudgetSnapshotUpsert) UpdateSpendUsd() *BudgetSnapshotUpsert {
	u.SetExcluded(budgetsnapshot.FieldSpendUsd)
	return u
}

// AddSpendUsd adds v to the "spend_usd" field.
func (u *BudgetSnapshotUpsert) AddSpendUsd(v float64) *BudgetSnapshotUpsert {
	u.Add(budgetsnapshot.FieldSpendUsd, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BudgetSnapshotUpsert) SetUpdatedAt(v time.Time) *BudgetSnapshotUpsert {
	u.Set(budgetsnapshot.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BudgetSnapshotUpsert) UpdateUpdatedAt() *BudgetSnapshotUpsert {
	u.SetExcluded(budgetsnapshot.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.BudgetSnapshot.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(budgetsnapshot.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BudgetSnapshotUpsertOne) UpdateNewValues() *BudgetSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(budgetsnapshot.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BudgetSnapshot.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BudgetSnapshotUpsertOne) Ignore() *BudgetSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BudgetSnapshotUpsertOne) DoNothing() *BudgetSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BudgetSnapshotCreate.OnConflict
// documentation for more info.
func (u *BudgetSnapshotUpsertOne) Update(set func(*BudgetSnapshotUpsert)) *BudgetSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BudgetSnapshotUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *BudgetSnapshotUpsertOne) SetUserID(v uuid.UUID) *BudgetSnapshotUpsertOne {
	return u.Update(func(s *BudgetSnapshotUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *BudgetSnapshotUpsertOne) UpdateUserID() *BudgetSnapshotUpsertOne {
	return u.Update(func(s *BudgetSnapshotUpsert) {
		s.UpdateUserID()
	})
}

// SetDay sets the "day" field.
func (u *BudgetSnapshotUpsertOne) SetDay(v string) *BudgetSnapshotUpsertOne {
	return u.Update(func(s *BudgetSnapshotUpsert) {
		s.SetDay(v)
	})
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *BudgetSnapshotUpsertOne) UpdateDay() *BudgetSnapshotUpsertOne {
	return u.Update(func(s *BudgetSnapshotUpsert) {
		s.UpdateDay()
	})
}

// SetTokensUsed sets the "tokens_used" field.
func (u *BudgetSnapshotUpsertOne) SetTokensUsed(v int64) *BudgetSnapshotUpsertOne {
	return u.Update(func(s *BudgetSnapshotUpsert) {
		s.SetTokensUsed(v)
	})
}

// AddTokensUsed adds v to the "tokens_used" field.
func (u *BudgetSnapshotUpsertOne) AddTokensUsed(v int64) *BudgetSnapshotUpsertOne {
	return u.Update(func(s *BudgetSnapshotUpsert) {
		s.AddTokensUsed(v)
	})
}

// UpdateTokensUsed sets the "tokens_used" field to the value that was provided on create.
func (u *BudgetSnapshotUpsertOne) UpdateTokensUsed() *BudgetSnapshotUpsertOne {
	return u.Update(func(s *BudgetSnapshotUpsert) {
		s.UpdateTokensUsed()
	})
}

// SetSpendUsd sets the "spend_usd" field.
func (u *BudgetSnapshotUpsertOne) SetSpendUsd(v float64) *BudgetSnapshotUpsertOne {
	return u.Update(func(s *BudgetSnapshotUpsert) {
		s.SetSpendUsd(v)
	})
}

// AddSpendUsd adds v to the "spend_usd" field.
func (u *BudgetSnapshotUpsertOne) AddSpendUsd(v float64) *BudgetSnapshotUpsertOne {
	return u.Update(func(s *BudgetSnapshotUpsert) {
		s.AddSpendUsd(v)
	})
}

// UpdateSpendUsd sets the "spend_usd" field to the value that was provided on create.
func (u *BudgetSnapshotUpsertOne) UpdateSpendUsd() *BudgetSnapshotUpsertOne {
	return u.Update(func(s *BudgetSnapshotUpsert) {
		s.UpdateSpendUsd()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BudgetSnapshotUpsertOne) SetUpdatedAt(v time.Time) *BudgetSnapshotUpsertOne {
	return u.Update(func(s *BudgetSnapshotUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BudgetSnapshotUpsertOne) UpdateUpdatedAt() *BudgetSnapshotUpsertOne {
	return u.Update(func(s *BudgetSnapshotUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *BudgetSnapshotUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BudgetSnapshotCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BudgetSnapshotUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BudgetSnapshotUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: BudgetSnapshotUpsertOne.ID is not supported by MySQL driver. Use BudgetSnapshotUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BudgetSnapshotUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BudgetSnapshotCreateBulk is the builder for creating many BudgetSnapshot entities in bulk.
type BudgetSnapshotCreateBulk struct {
	config
	err      error
	builders []*BudgetSnapshotCreate
	conflict []sql.ConflictOption
}

// Save creates the BudgetSnapshot entities in the database.
func (_c *BudgetSnapshotCreateBulk) Save(ctx context.Context) ([]*BudgetSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BudgetSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BudgetSnapshotMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *BudgetSnapshotCreateBulk) SaveX(ctx context.Context) []*BudgetSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BudgetSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BudgetSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BudgetSnapshot.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BudgetSnapshotUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *BudgetSnapshotCreateBulk) OnConflict(opts ...sql.ConflictOption) *BudgetSnapshotUpsertBulk {
	_c.conflict = opts
	return &BudgetSnapshotUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BudgetSnapshot.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BudgetSnapshotCreateBulk) OnConflictColumns(columns ...string) *BudgetSnapshotUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BudgetSnapshotUpsertBulk{
		create: _c,
	}
}

// BudgetSnapshotUpsertBulk is the builder for "upsert"-ing
// a bulk of BudgetSnapshot nodes.
type BudgetSnapshotUpsertBulk struct {
	create *BudgetSnapshotCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.BudgetSnapshot.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(budgetsnapshot.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BudgetSnapshotUpsertBulk) UpdateNewValues() *BudgetSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(budgetsnapshot.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BudgetSnapshot.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BudgetSnapshotUpsertBulk) Ignore() *BudgetSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BudgetSnapshotUpsertBulk) DoNothing() *BudgetSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BudgetSnapshotCreateBulk.OnConflict
// documentation for more info.
func (u *BudgetSnapshotUpsertBulk) Update(set func(*BudgetSnapshotUpsert)) *BudgetSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BudgetSnapshotUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *BudgetSnapshotUpsertBulk) SetUserID(v uuid.UUID) *BudgetSnapshotUpsertBulk {
	return u.Update(func(s *BudgetSnapshotUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *BudgetSnapshotUpsertBulk) UpdateUserID() *BudgetSnapshotUpsertBulk {
	return u.Update(func(s *BudgetSnapshotUpsert) {
		s.UpdateUserID()
	})
}

// SetDay sets the "day" field.
func (u *BudgetSnapshotUpsertBulk) SetDay(v string) *BudgetSnapshotUpsertBulk {
	return u.Update(func(s *BudgetSnapshotUpsert) {
		s.SetDay(v)
	})
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *BudgetSnapshotUpsertBulk) UpdateDay() *BudgetSnapshotUpsertBulk {
	return u.Update(func(s *BudgetSnapshotUpsert) {
		s.UpdateDay()
	})
}

// SetTokensUsed sets the "tokens_used" field.
func (u *BudgetSnapshotUpsertBulk) SetTokensUsed(v int64) *BudgetSnapshotUpsertBulk {
	return u.Update(func(s *BudgetSnapshotUpsert) {
		s.SetTokensUsed(v)
	})
}

// AddTokensUsed adds v to the "tokens_used" field.
func (u *BudgetSnapshotUpsertBulk) AddTokensUsed(v int64) *BudgetSnapshotUpsertBulk {
	return u.Update(func(s *BudgetSnapshotUpsert) {
		s.AddTokensUsed(v)
	})
}

// UpdateTokensUsed sets the "tokens_used" field to the value that was provided on create.
func (u *BudgetSnapshotUpsertBulk) UpdateTokensUsed() *BudgetSnapshotUpsertBulk {
	return u.Update(func(s *BudgetSnapshotUpsert) {
		s.UpdateTokensUsed()
	})
}

// SetSpendUsd sets the "spend_usd" field.
func (u *BudgetSnapshotUpsertBulk) SetSpendUsd(v float64) *BudgetSnapshotUpsertBulk {
	return u.Update(func(s *BudgetSnapshotUpsert) {
		s.SetSpendUsd(v)
	})
}

// AddSpendUsd adds v to the "spend_usd" field.
func (u *BudgetSnapshotUpsertBulk) AddSpendUsd(v float64) *BudgetSnapshotUpsertBulk {
	return u.Update(func(s *BudgetSnapshotUpsert) {
		s.AddSpendUsd(v)
	})
}

// UpdateSpendUsd sets the "spend_usd" field to the value that was provided on create.
func (u *BudgetSnapshotUpsertBulk) UpdateSpendUsd() *BudgetSnapshotUpsertBulk {
	return u.Update(func(s *BudgetSnapshotUpsert) {
		s.UpdateSpendUsd()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BudgetSnapshotUpsertBulk) SetUpdatedAt(v time.Time) *BudgetSnapshotUpsertBulk {
	return u.Update(func(s *BudgetSnapshotUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BudgetSnapshotUpsertBulk) UpdateUpdatedAt() *BudgetSnapshotUpsertBulk {
	return u.Update(func(s *BudgetSnapshotUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *BudgetSnapshotUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BudgetSnapshotCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BudgetSnapshotCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BudgetSnapshotUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
