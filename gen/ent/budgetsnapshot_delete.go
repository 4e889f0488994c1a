// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/budgetsnapshot"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/predicate"
)

// BudgetSnapshotDelete is the builder for deleting a BudgetSnapshot entity.
type BudgetSnapshotDelete struct {
	config
	hooks    []Hook
	mutation *BudgetSnapshotMutation
}

// Where appends a list predicates to the BudgetSnapshotDelete builder.
func (_d *BudgetSnapshotDelete) Where(ps ...predicate.BudgetSnapshot) *BudgetSnapshotDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BudgetSnapshotDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BudgetSnapshotDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BudgetSnapshotDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(budgetsnapshot.Table, sqlgraph.NewFieldSpec(budgetsnapshot.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// BudgetSnapshotDeleteOne is the builder for deleting a single BudgetSnapshot entity.
type BudgetSnapshotDeleteOne struct {
	_d *BudgetSnapshotDelete
}

// Where appends a list predicates to the BudgetSnapshotDelete builder.
func (_d *BudgetSnapshotDeleteOne) Where(ps ...predicate.BudgetSnapshot) *BudgetSnapshotDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BudgetSnapshotDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{budgetsnapshot.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BudgetSnapshotDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
