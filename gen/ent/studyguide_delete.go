// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/predicate"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/studyguide"
)

// StudyGuideDelete is the builder for deleting a StudyGuide entity.
type StudyGuideDelete struct {
	config
	hooks    []Hook
	mutation *StudyGuideMutation
}

// Where appends a list predicates to the StudyGuideDelete builder.
func (_d *StudyGuideDelete) Where(ps ...predicate.StudyGuide) *StudyGuideDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *StudyGuideDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *StudyGuideDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *StudyGuideDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(studyguide.Table, sqlgraph.NewFieldSpec(studyguide.FieldID, field.TypeUUID))
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

// StudyGuideDeleteOne is the builder for deleting a single StudyGuide entity.
type StudyGuideDeleteOne struct {
	_d *StudyGuideDelete
}

// Where appends a list predicates to the StudyGuideDelete builder.
func (_d *StudyGuideDeleteOne) Where(ps ...predicate.StudyGuide) *StudyGuideDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *StudyGuideDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{studyguide.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *StudyGuideDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
