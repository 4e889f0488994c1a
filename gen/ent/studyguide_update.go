// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/predicate"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/studyguide"
	"github.com/google/uuid"
)

// StudyGuideUpdate is the builder for updating StudyGuide entities.
type StudyGuideUpdate struct {
	config
	hooks    []Hook
	mutation *StudyGuideMutation
}

// Where appends a list predicates to the StudyGuideUpdate builder.
func (_u *StudyGuideUpdate) Where(ps ...predicate.StudyGuide) *StudyGuideUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *StudyGuideUpdate) SetJobID(v uuid.UUID) *StudyGuideUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *StudyGuideUpdate) SetNillableJobID(v *uuid.UUID) *StudyGuideUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *StudyGuideUpdate) SetUserID(v uuid.UUID) *StudyGuideUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *StudyGuideUpdate) SetNillableUserID(v *uuid.UUID) *StudyGuideUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *StudyGuideUpdate) SetTitle(v string) *StudyGuideUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StudyGuideUpdate) SetNillableTitle(v *string) *StudyGuideUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *StudyGuideUpdate) SetContent(v json.RawMessage) *StudyGuideUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// AppendContent appends value to the "content" field.
func (_u *StudyGuideUpdate) AppendContent(v json.RawMessage) *StudyGuideUpdate {
	_u.mutation.AppendContent(v)
	return _u
}

// SetDetailLevel sets the "detail_level" field.
func (_u *StudyGuideUpdate) SetDetailLevel(v string) *StudyGuideUpdate {
	_u.mutation.SetDetailLevel(v)
	return _u
}

// SetNillableDetailLevel sets the "detail_level" field if the given value is not nil.
func (_u *StudyGuideUpdate) SetNillableDetailLevel(v *string) *StudyGuideUpdate {
	if v != nil {
		_u.SetDetailLevel(*v)
	}
	return _u
}

// ClearDetailLevel clears the value of the "detail_level" field.
func (_u *StudyGuideUpdate) ClearDetailLevel() *StudyGuideUpdate {
	_u.mutation.ClearDetailLevel()
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *StudyGuideUpdate) SetQuestionCount(v int) *StudyGuideUpdate {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *StudyGuideUpdate) SetNillableQuestionCount(v *int) *StudyGuideUpdate {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *StudyGuideUpdate) AddQuestionCount(v int) *StudyGuideUpdate {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetConceptCount sets the "concept_count" field.
func (_u *StudyGuideUpdate) SetConceptCount(v int) *StudyGuideUpdate {
	_u.mutation.ResetConceptCount()
	_u.mutation.SetConceptCount(v)
	return _u
}

// SetNillableConceptCount sets the "concept_count" field if the given value is not nil.
func (_u *StudyGuideUpdate) SetNillableConceptCount(v *int) *StudyGuideUpdate {
	if v != nil {
		_u.SetConceptCount(*v)
	}
	return _u
}

// AddConceptCount adds value to the "concept_count" field.
func (_u *StudyGuideUpdate) AddConceptCount(v int) *StudyGuideUpdate {
	_u.mutation.AddConceptCount(v)
	return _u
}

// SetQaScore sets the "qa_score" field.
func (_u *StudyGuideUpdate) SetQaScore(v float32) *StudyGuideUpdate {
	_u.mutation.ResetQaScore()
	_u.mutation.SetQaScore(v)
	return _u
}

// SetNillableQaScore sets the "qa_score" field if the given value is not nil.
func (_u *StudyGuideUpdate) SetNillableQaScore(v *float32) *StudyGuideUpdate {
	if v != nil {
		_u.SetQaScore(*v)
	}
	return _u
}

// AddQaScore adds value to the "qa_score" field.
func (_u *StudyGuideUpdate) AddQaScore(v float32) *StudyGuideUpdate {
	_u.mutation.AddQaScore(v)
	return _u
}

// SetGeneratedAt sets the "generated_at" field.
func (_u *StudyGuideUpdate) SetGeneratedAt(v time.Time) *StudyGuideUpdate {
	_u.mutation.SetGeneratedAt(v)
	return _u
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_u *StudyGuideUpdate) SetNillableGeneratedAt(v *time.Time) *StudyGuideUpdate {
	if v != nil {
		_u.SetGeneratedAt(*v)
	}
	return _u
}

// Mutation returns the StudyGuideMutation object of the builder.
func (_u *StudyGuideUpdate) Mutation() *StudyGuideMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudyGuideUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudyGuideUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudyGuideUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudyGuideUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudyGuideUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := studyguide.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "StudyGuide.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DetailLevel(); ok {
		if err := studyguide.DetailLevelValidator(v); err != nil {
			return &ValidationError{Name: "detail_level", err: fmt.Errorf(`ent: validator failed for field "StudyGuide.detail_level": %w`, err)}
		}
	}
	return nil
}

func (_u *StudyGuideUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studyguide.Table, studyguide.Columns, sqlgraph.NewFieldSpec(studyguide.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(studyguide.FieldJobID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(studyguide.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(studyguide.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(studyguide.FieldContent, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContent(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studyguide.FieldContent, value)
		})
	}
	if value, ok := _u.mutation.DetailLevel(); ok {
		_spec.SetField(studyguide.FieldDetailLevel, field.TypeString, value)
	}
	if _u.mutation.DetailLevelCleared() {
		_spec.ClearField(studyguide.FieldDetailLevel, field.TypeString)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(studyguide.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(studyguide.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConceptCount(); ok {
		_spec.SetField(studyguide.FieldConceptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConceptCount(); ok {
		_spec.AddField(studyguide.FieldConceptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QaScore(); ok {
		_spec.SetField(studyguide.FieldQaScore, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedQaScore(); ok {
		_spec.AddField(studyguide.FieldQaScore, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.GeneratedAt(); ok {
		_spec.SetField(studyguide.FieldGeneratedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studyguide.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudyGuideUpdateOne is the builder for updating a single StudyGuide entity.
type StudyGuideUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudyGuideMutation
}

// SetJobID sets the "job_id" field.
func (_u *StudyGuideUpdateOne) SetJobID(v uuid.UUID) *StudyGuideUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *StudyGuideUpdateOne) SetNillableJobID(v *uuid.UUID) *StudyGuideUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *StudyGuideUpdateOne) SetUserID(v uuid.UUID) *StudyGuideUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *StudyGuideUpdateOne) SetNillableUserID(v *uuid.UUID) *StudyGuideUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *StudyGuideUpdateOne) SetTitle(v string) *StudyGuideUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StudyGuideUpdateOne) SetNillableTitle(v *string) *StudyGuideUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *StudyGuideUpdateOne) SetContent(v json.RawMessage) *StudyGuideUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// AppendContent appends value to the "content" field.
func (_u *StudyGuideUpdateOne) AppendContent(v json.RawMessage) *StudyGuideUpdateOne {
	_u.mutation.AppendContent(v)
	return _u
}

// SetDetailLevel sets the "detail_level" field.
func (_u *StudyGuideUpdateOne) SetDetailLevel(v string) *StudyGuideUpdateOne {
	_u.mutation.SetDetailLevel(v)
	return _u
}

// SetNillableDetailLevel sets the "detail_level" field if the given value is not nil.
func (_u *StudyGuideUpdateOne) SetNillableDetailLevel(v *string) *StudyGuideUpdateOne {
	if v != nil {
		_u.SetDetailLevel(*v)
	}
	return _u
}

// ClearDetailLevel clears the value of the "detail_level" field.
func (_u *StudyGuideUpdateOne) ClearDetailLevel() *StudyGuideUpdateOne {
	_u.mutation.ClearDetailLevel()
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *StudyGuideUpdateOne) SetQuestionCount(v int) *StudyGuideUpdateOne {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *StudyGuideUpdateOne) SetNillableQuestionCount(v *int) *StudyGuideUpdateOne {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *StudyGuideUpdateOne) AddQuestionCount(v int) *StudyGuideUpdateOne {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetConceptCount sets the "concept_count" field.
func (_u *StudyGuideUpdateOne) SetConceptCount(v int) *StudyGuideUpdateOne {
	_u.mutation.ResetConceptCount()
	_u.mutation.SetConceptCount(v)
	return _u
}

// SetNillableConceptCount sets the "concept_count" field if the given value is not nil.
func (_u *StudyGuideUpdateOne) SetNillableConceptCount(v *int) *StudyGuideUpdateOne {
	if v != nil {
		_u.SetConceptCount(*v)
	}
	return _u
}

// AddConceptCount adds value to the "concept_count" field.
func (_u *StudyGuideUpdateOne) AddConceptCount(v int) *StudyGuideUpdateOne {
	_u.mutation.AddConceptCount(v)
	return _u
}

// SetQaScore sets the "qa_score" field.
func (_u *StudyGuideUpdateOne) SetQaScore(v float32) *StudyGuideUpdateOne {
	_u.mutation.ResetQaScore()
	_u.mutation.SetQaScore(v)
	return _u
}

// SetNillableQaScore sets the "qa_score" field if the given value is not nil.
func (_u *StudyGuideUpdateOne) SetNillableQaScore(v *float32) *StudyGuideUpdateOne {
	if v != nil {
		_u.SetQaScore(*v)
	}
	return _u
}

// AddQaScore adds value to the "qa_score" field.
func (_u *StudyGuideUpdateOne) AddQaScore(v float32) *StudyGuideUpdateOne {
	_u.mutation.AddQaScore(v)
	return _u
}

// SetGeneratedAt sets the "generated_at" field.
func (_u *StudyGuideUpdateOne) SetGeneratedAt(v time.Time) *StudyGuideUpdateOne {
	_u.mutation.SetGeneratedAt(v)
	return _u
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_u *StudyGuideUpdateOne) SetNillableGeneratedAt(v *time.Time) *StudyGuideUpdateOne {
	if v != nil {
		_u.SetGeneratedAt(*v)
	}
	return _u
}

// Mutation returns the StudyGuideMutation object of the builder.
func (_u *StudyGuideUpdateOne) Mutation() *StudyGuideMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudyGuideUpdate builder.
func (_u *StudyGuideUpdateOne) Where(ps ...predicate.StudyGuide) *StudyGuideUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudyGuideUpdateOne) Select(field string, fields ...string) *StudyGuideUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudyGuide entity.
func (_u *StudyGuideUpdateOne) Save(ctx context.Context) (*StudyGuide, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudyGuideUpdateOne) SaveX(ctx context.Context) *StudyGuide {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudyGuideUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudyGuideUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudyGuideUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := studyguide.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "StudyGuide.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DetailLevel(); ok {
		if err := studyguide.DetailLevelValidator(v); err != nil {
			return &ValidationError{Name: "detail_level", err: fmt.Errorf(`ent: validator failed for field "StudyGuide.detail_level": %w`, err)}
		}
	}
	return nil
}

func (_u *StudyGuideUpdateOne) sqlSave(ctx context.Context) (_node *StudyGuide, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studyguide.Table, studyguide.Columns, sqlgraph.NewFieldSpec(studyguide.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudyGuide.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studyguide.FieldID)
		for _, f := range fields {
			if !studyguide.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studyguide.FieldID {
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
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(studyguide.FieldJobID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(studyguide.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(studyguide.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(studyguide.FieldContent, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContent(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studyguide.FieldContent, value)
		})
	}
	if value, ok := _u.mutation.DetailLevel(); ok {
		_spec.SetField(studyguide.FieldDetailLevel, field.TypeString, value)
	}
	if _u.mutation.DetailLevelCleared() {
		_spec.ClearField(studyguide.FieldDetailLevel, field.TypeString)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(studyguide.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(studyguide.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConceptCount(); ok {
		_spec.SetField(studyguide.FieldConceptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConceptCount(); ok {
		_spec.AddField(studyguide.FieldConceptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QaScore(); ok {
		_spec.SetField(studyguide.FieldQaScore, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedQaScore(); ok {
		_spec.AddField(studyguide.FieldQaScore, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.GeneratedAt(); ok {
		_spec.SetField(studyguide.FieldGeneratedAt, field.TypeTime, value)
	}
	_node = &StudyGuide{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studyguide.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
