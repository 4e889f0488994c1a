// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/studyguide"
	"github.com/google/uuid"
)

// StudyGuideCreate is the builder for creating a StudyGuide entity.
type StudyGuideCreate struct {
	config
	mutation *StudyGuideMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetJobID sets the "job_id" field.
func (_c *StudyGuideCreate) SetJobID(v uuid.UUID) *StudyGuideCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *StudyGuideCreate) SetUserID(v uuid.UUID) *StudyGuideCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *StudyGuideCreate) SetTitle(v string) *StudyGuideCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *StudyGuideCreate) SetContent(v json.RawMessage) *StudyGuideCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetDetailLevel sets the "detail_level" field.
func (_c *StudyGuideCreate) SetDetailLevel(v string) *StudyGuideCreate {
	_c.mutation.SetDetailLevel(v)
	return _c
}

// SetNillableDetailLevel sets the "detail_level" field if the given value is not nil.
func (_c *StudyGuideCreate) SetNillableDetailLevel(v *string) *StudyGuideCreate {
	if v != nil {
		_c.SetDetailLevel(*v)
	}
	return _c
}

// SetQuestionCount sets the "question_count" field.
func (_c *StudyGuideCreate) SetQuestionCount(v int) *StudyGuideCreate {
	_c.mutation.SetQuestionCount(v)
	return _c
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_c *StudyGuideCreate) SetNillableQuestionCount(v *int) *StudyGuideCreate {
	if v != nil {
		_c.SetQuestionCount(*v)
	}
	return _c
}

// SetConceptCount sets the "concept_count" field.
func (_c *StudyGuideCreate) SetConceptCount(v int) *StudyGuideCreate {
	_c.mutation.SetConceptCount(v)
	return _c
}

// SetNillableConceptCount sets the "concept_count" field if the given value is not nil.
func (_c *StudyGuideCreate) SetNillableConceptCount(v *int) *StudyGuideCreate {
	if v != nil {
		_c.SetConceptCount(*v)
	}
	return _c
}

// SetQaScore sets the "qa_score" field.
func (_c *StudyGuideCreate) SetQaScore(v float32) *StudyGuideCreate {
	_c.mutation.SetQaScore(v)
	return _c
}

// SetNillableQaScore sets the "qa_score" field if the given value is not nil.
func (_c *StudyGuideCreate) SetNillableQaScore(v *float32) *StudyGuideCreate {
	if v != nil {
		_c.SetQaScore(*v)
	}
	return _c
}

// SetGeneratedAt sets the "generated_at" field.
func (_c *StudyGuideCreate) SetGeneratedAt(v time.Time) *StudyGuideCreate {
	_c.mutation.SetGeneratedAt(v)
	return _c
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_c *StudyGuideCreate) SetNillableGeneratedAt(v *time.Time) *StudyGuideCreate {
	if v != nil {
		_c.SetGeneratedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StudyGuideCreate) SetID(v uuid.UUID) *StudyGuideCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *StudyGuideCreate) SetNillableID(v *uuid.UUID) *StudyGuideCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the StudyGuideMutation object of the builder.
func (_c *StudyGuideCreate) Mutation() *StudyGuideMutation {
	return _c.mutation
}

// Save creates the StudyGuide in the database.
func (_c *StudyGuideCreate) Save(ctx context.Context) (*StudyGuide, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudyGuideCreate) SaveX(ctx context.Context) *StudyGuide {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudyGuideCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudyGuideCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudyGuideCreate) defaults() {
	if _, ok := _c.mutation.QuestionCount(); !ok {
		v := studyguide.DefaultQuestionCount
		_c.mutation.SetQuestionCount(v)
	}
	if _, ok := _c.mutation.ConceptCount(); !ok {
		v := studyguide.DefaultConceptCount
		_c.mutation.SetConceptCount(v)
	}
	if _, ok := _c.mutation.QaScore(); !ok {
		v := studyguide.DefaultQaScore
		_c.mutation.SetQaScore(v)
	}
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		v := studyguide.DefaultGeneratedAt()
		_c.mutation.SetGeneratedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := studyguide.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudyGuideCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "StudyGuide.job_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "StudyGuide.user_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "StudyGuide.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := studyguide.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "StudyGuide.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "StudyGuide.content"`)}
	}
	if v, ok := _c.mutation.DetailLevel(); ok {
		if err := studyguide.DetailLevelValidator(v); err != nil {
			return &ValidationError{Name: "detail_level", err: fmt.Errorf(`ent: validator failed for field "StudyGuide.detail_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		return &ValidationError{Name: "question_count", err: errors.New(`ent: missing required field "StudyGuide.question_count"`)}
	}
	if _, ok := _c.mutation.ConceptCount(); !ok {
		return &ValidationError{Name: "concept_count", err: errors.New(`ent: missing required field "StudyGuide.concept_count"`)}
	}
	if _, ok := _c.mutation.QaScore(); !ok {
		return &ValidationError{Name: "qa_score", err: errors.New(`ent: missing required field "StudyGuide.qa_score"`)}
	}
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		return &ValidationError{Name: "generated_at", err: errors.New(`ent: missing required field "StudyGuide.generated_at"`)}
	}
	return nil
}

func (_c *StudyGuideCreate) sqlSave(ctx context.Context) (*StudyGuide, error) {
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

func (_c *StudyGuideCreate) createSpec() (*StudyGuide, *sqlgraph.CreateSpec) {
	var (
		_node = &StudyGuide{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studyguide.Table, sqlgraph.NewFieldSpec(studyguide.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(studyguide.FieldJobID, field.TypeUUID, value)
		_node.JobID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(studyguide.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(studyguide.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(studyguide.FieldContent, field.TypeJSON, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.DetailLevel(); ok {
		_spec.SetField(studyguide.FieldDetailLevel, field.TypeString, value)
		_node.DetailLevel = value
	}
	if value, ok := _c.mutation.QuestionCount(); ok {
		_spec.SetField(studyguide.FieldQuestionCount, field.TypeInt, value)
		_node.QuestionCount = value
	}
	if value, ok := _c.mutation.ConceptCount(); ok {
		_spec.SetField(studyguide.FieldConceptCount, field.TypeInt, value)
		_node.ConceptCount = value
	}
	if value, ok := _c.mutation.QaScore(); ok {
		_spec.SetField(studyguide.FieldQaScore, field.TypeFloat32, value)
		_node.QaScore = value
	}
	if value, ok := _c.mutation.GeneratedAt(); ok {
		_spec.SetField(studyguide.FieldGeneratedAt, field.TypeTime, value)
		_node.GeneratedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StudyGuide.Create().
//		SetJobID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudyGuideUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *StudyGuideCreate) OnConflict(opts ...sql.ConflictOption) *StudyGuideUpsertOne {
	_c.conflict = opts
	return &StudyGuideUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StudyGuide.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StudyGuideCreate) OnConflictColumns(columns ...string) *StudyGuideUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StudyGuideUpsertOne{
		create: _c,
	}
}

type (
	// StudyGuideUpsertOne is the builder for "upsert"-ing
	//  one StudyGuide node.
	StudyGuideUpsertOne struct {
		create *StudyGuideCreate
	}

	// StudyGuideUpsert is the "OnConflict" setter.
	StudyGuideUpsert struct {
		*sql.UpdateSet
	}
)

// SetJobID sets the "job_id" field.
func (u *StudyGuideUpsert) SetJobID(v uuid.UUID) *StudyGuideUpsert {
	u.Set(studyguide.FieldJobID, v)
	return u
}

// UpdateJobID sets the "job_id" field to the value that was provided on create.
func (u *StudyGuideUpsert) UpdateJobID() *StudyGuideUpsert {
	u.SetExcluded(studyguide.FieldJobID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *StudyGuideUpsert) SetUserID(v uuid.UUID) *StudyGuideUpsert {
	u.Set(studyguide.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *StudyGuideUpsert) UpdateUserID() *StudyGuideUpsert {
	u.SetExcluded(studyguide.FieldUserID)
	return u
}

// SetTitle sets the "title" field.
func (u *StudyGuideUpsert) SetTitle(v string) *StudyGuideUpsert {
	u.Set(studyguide.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *StudyGuideUpsert) UpdateTitle() *StudyGuideUpsert {
	u.SetExcluded(studyguide.FieldTitle)
	return u
}

// SetContent sets the "content" field.
func (u *StudyGuideUpsert) SetContent(v json.RawMessage) *StudyGuideUpsert {
	u.Set(studyguide.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *StudyGuideUpsert) UpdateContent() *StudyGuideUpsert {
	u.SetExcluded(studyguide.FieldContent)
	return u
}

// SetDetailLevel sets the "detail_level" field.
func (u *StudyGuideUpsert) SetDetailLevel(v string) *StudyGuideUpsert {
	u.Set(studyguide.FieldDetailLevel, v)
	return u
}

// UpdateDetailLevel sets the "detail_level" field to the value that was provided on create.
func (u *StudyGuideUpsert) UpdateDetailLevel() *StudyGuideUpsert {
	u.SetExcluded(studyguide.FieldDetailLevel)
	return u
}

// ClearDetailLevel clears the value of the "detail_level" field.
func (u *StudyGuideUpsert) ClearDetailLevel() *StudyGuideUpsert {
	u.SetNull(studyguide.FieldDetailLevel)
	return u
}

// SetQuestionCount sets the "question_count" field.
func (u *StudyGuideUpsert) SetQuestionCount(v int) *StudyGuideUpsert {
	u.Set(studyguide.FieldQuestionCount, v)
	return u
}

// UpdateQuestionCount sets the "question_count" field to the value that was provided on create.
func (u *StudyGuideUpsert) UpdateQuestionCount() *StudyGuideUpsert {
	u.SetExcluded(studyguide.FieldQuestionCount)
	return u
}

// AddQuestionCount adds v to the "question_count" field.
func (u *StudyGuideUpsert) AddQuestionCount(v int) *StudyGuideUpsert {
	u.Add(studyguide.FieldQuestionCount, v)
	return u
}

// SetConceptCount sets the "concept_count" field.
func (u *StudyGuideUpsert) SetConceptCount(v int) *StudyGuideUpsert {
	u.Set(studyguide.FieldConceptCount, v)
	return u
}

// UpdateConceptCount sets the "concept_count" field to the value that was provided on create.
func (u *StudyGuideUpsert) UpdateConceptCount() *StudyGuideUpsert {
	u.SetExcluded(studyguide.FieldConceptCount)
	return u
}

// AddConceptCount adds v to the "concept_count" field.
func (u *StudyGuideUpsert) AddConceptCount(v int) *StudyGuideUpsert {
	u.Add(studyguide.FieldConceptCount, v)
	return u
}

// SetQaScore sets the "qa_score" field.
func (u *StudyGuideUpsert) SetQaScore(v float32) *StudyGuideUpsert {
	u.Set(studyguide.FieldQaScore, v)
	return u
}

// UpdateQaScore sets the "qa_score" field to the value that was provided on create.
func (u *StudyGuideUpsert) UpdateQaScore() *StudyGuideUpsert {
	u.SetExcluded(studyguide.FieldQaScore)
	return u
}

// AddQaScore adds v to the "qa_score" field.
func (u *StudyGuideUpsert) AddQaScore(v float32) *StudyGuideUpsert {
	u.Add(studyguide.FieldQaScore, v)
	return u
}

// SetGeneratedAt sets the "generated_at" field.
func (u *StudyGuideUpsert) SetGeneratedAt(v time.Time) *StudyGuideUpsert {
	u.Set(studyguide.FieldGeneratedAt, v)
	return u
}

// UpdateGeneratedAt sets the "generated_at" field to the value that was provided on create.
func (u *StudyGuideUpsert) UpdateGeneratedAt() *StudyGuideUpsert {
	u.SetExcluded(studyguide.FieldGeneratedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StudyGuide.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(studyguide.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StudyGuideUpsertOne) UpdateNewValues() *StudyGuideUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(studyguide.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StudyGuide.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StudyGuideUpsertOne) Ignore() *StudyGuideUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudyGuideUpsertOne) DoNothing() *StudyGuideUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudyGuideCreate.OnConflict
// documentation for more info.
func (u *StudyGuideUpsertOne) Update(set func(*StudyGuideUpsert)) *StudyGuideUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudyGuideUpsert{UpdateSet: update})
	}))
	return u
}

// SetJobID sets the "job_id" field.
func (u *StudyGuideUpsertOne) SetJobID(v uuid.UUID) *StudyGuideUpsertOne {
	return u.Update(func(s *StudyGuideUpsert) {
		s.SetJobID(v)
	})
}

// UpdateJobID sets the "job_id" field to the value that was provided on create.
func (u *StudyGuideUpsertOne) UpdateJobID() *StudyGuideUpsertOne {
	return u.Update(func(s *StudyGuideUpsert) {
		s.UpdateJobID()
	})
}

// SetUserID sets the "user_id" field.
func (u *StudyGuideUpsertOne) SetUserID(v uuid.UUID) *StudyGuideUpsertOne {
	return u.Update(func(s *StudyGuideUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *StudyGuideUpsertOne) UpdateUserID() *StudyGuideUpsertOne {
	return u.Update(func(s *StudyGuideUpsert) {
		s.UpdateUserID()
	})
}

// SetTitle sets the "title" field.
func (u *StudyGuideUpsertOne) SetTitle(v string) *StudyGuideUpsertOne {
	return u.Update(func(s *StudyGuideUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *StudyGuideUpsertOne) UpdateTitle() *StudyGuideUpsertOne {
	return u.Update(func(s *StudyGuideUpsert) {
		s.UpdateTitle()
	})
}

// SetContent sets the "content" field.
func (u *StudyGuideUpsertOne) SetContent(v json.RawMessage) *StudyGuideUpsertOne {
	return u.Update(func(s *StudyGuideUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *StudyGuideUpsertOne) UpdateContent() *StudyGuideUpsertOne {
	return u.Update(func(s *StudyGuideUpsert) {
		s.UpdateContent()
	})
}

// SetDetailLevel sets the "detail_level" field.
func (u *StudyGuideUpsertOne) SetDetailLevel(v string) *StudyGuideUpsertOne {
	return u.Update(func(s *StudyGuideUpsert) {
		s.SetDetailLevel(v)
	})
}

// UpdateDetailLevel sets the "detail_level" field to the value that was provided on create.
func (u *StudyGuideUpsertOne) UpdateDetailLevel() *StudyGuideUpsertOne {
	return u.Update(func(s *StudyGuideUpsert) {
		s.UpdateDetailLevel()
	})
}

// ClearDetailLevel clears the value of the "detail_level" field.
func (u *StudyGuideUpsertOne) ClearDetailLevel() *StudyGuideUpsertOne {
	return u.Update(func(s *StudyGuideUpsert) {
		s.ClearDetailLevel()
	})
}

// SetQuestionCount sets the "question_count" field.
func (u *StudyGuideUpsertOne) SetQuestionCount(v int) *StudyGuideUpsertOne {
	return u.Update(func(s *StudyGuideUpsert) {
		s.SetQuestionCount(v)
	})
}

// AddQuestionCount adds v to the "question_count" field.
func (u *StudyGuideUpsertOne) AddQuestionCount(v int) *StudyGuideUpsertOne {
	return u.Update(func(s *StudyGuideUpsert) {
		s.AddQuestionCount(v)
	})
}

// UpdateQuestionCount sets the "question_count" field to the value that was provided on create.
func (u *StudyGuideUpsertOne) UpdateQuestionCount() *StudyGuideUpsertOne {
	return u.Update(func(s *StudyGuideUpsert) {
		s.UpdateQuestionCount()
	})
}

// SetConceptCount sets the "concept_count" field.
func (u *StudyGuideUpsertOne) SetConceptCount(v int) *StudyGuideUpsertOne {
	return u.Update(func(s *StudyGuideUpsert) {
		s.SetConceptCount(v)
	})
}

// AddConceptCount adds v to the "concept_count" field.
func (u *StudyGuideUpsertOne) AddConceptCount(v int) *StudyGuideUpsertOne {
	return u.Update(func(s *StudyGuideUpsert) {
		s.AddConceptCount(v)
	})
}

// UpdateConceptCount sets the "concept_count" field to the value that was provided on create.
func (u *StudyGuideUpsertOne) UpdateConceptCount() *StudyGuideUpsertOne {
	return u.Update(func(s *StudyGuideUpsert) {
		s.UpdateConceptCount()
	})
}

// SetQaScore sets the "qa_score" field.
func (u *StudyGuideUpsertOne) SetQaScore(v float32) *StudyGuideUpsertOne {
	return u.Update(func(s *StudyGuideUpsert) {
		s.SetQaScore(v)
	})
}

// AddQaScore adds v to the "qa_score" field.
func (u *StudyGuideUpsertOne) AddQaScore(v float32) *StudyGuideUpsertOne {
	return u.Update(func(s *StudyGuideUpsert) {
		s.AddQaScore(v)
	})
}

// UpdateQaScore sets the "qa_score" field to the value that was provided on create.
func (u *StudyGuideUpsertOne) UpdateQaScore() *StudyGuideUpsertOne {
	return u.Update(func(s *StudyGuideUpsert) {
		s.UpdateQaScore()
	})
}

// SetGeneratedAt sets the "generated_at" field.
func (u *StudyGuideUpsertOne) SetGeneratedAt(v time.Time) *StudyGuideUpsertOne {
	return u.Update(func(s *StudyGuideUpsert) {
		s.SetGeneratedAt(v)
	})
}

// UpdateGeneratedAt sets the "generated_at" field to the value that was provided on create.
func (u *StudyGuideUpsertOne) UpdateGeneratedAt() *StudyGuideUpsertOne {
	return u.Update(func(s *StudyGuideUpsert) {
		s.UpdateGeneratedAt()
	})
}

// Exec executes the query.
func (u *StudyGuideUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StudyGuideCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudyGuideUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StudyGuideUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StudyGuideUpsertOne.ID is not supported by MySQL driver. Use StudyGuideUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StudyGuideUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StudyGuideCreateBulk is the builder for creating many StudyGuide entities in bulk.
type StudyGuideCreateBulk struct {
	config
	err      error
	builders []*StudyGuideCreate
	conflict []sql.ConflictOption
}

// Save creates the StudyGuide entities in the database.
func (_c *StudyGuideCreateBulk) Save(ctx context.Context) ([]*StudyGuide, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudyGuide, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudyGuideMutation)
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
func (_c *StudyGuideCreateBulk) SaveX(ctx context.Context) []*StudyGuide {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudyGuideCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudyGuideCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StudyGuide.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudyGuideUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *StudyGuideCreateBulk) OnConflict(opts ...sql.ConflictOption) *StudyGuideUpsertBulk {
	_c.conflict = opts
	return &StudyGuideUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StudyGuide.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StudyGuideCreateBulk) OnConflictColumns(columns ...string) *StudyGuideUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StudyGuideUpsertBulk{
		create: _c,
	}
}

// StudyGuideUpsertBulk is the builder for "upsert"-ing
// a bulk of StudyGuide nodes.
type StudyGuideUpsertBulk struct {
	create *StudyGuideCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StudyGuide.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(studyguide.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StudyGuideUpsertBulk) UpdateNewValues() *StudyGuideUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(studyguide.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StudyGuide.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StudyGuideUpsertBulk) Ignore() *StudyGuideUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudyGuideUpsertBulk) DoNothing() *StudyGuideUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudyGuideCreateBulk.OnConflict
// documentation for more info.
func (u *StudyGuideUpsertBulk) Update(set func(*StudyGuideUpsert)) *StudyGuideUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudyGuideUpsert{UpdateSet: update})
	}))
	return u
}

// SetJobID sets the "job_id" field.
func (u *StudyGuideUpsertBulk) SetJobID(v uuid.UUID) *StudyGuideUpsertBulk {
	return u.Update(func(s *StudyGuideUpsert) {
		s.SetJobID(v)
	})
}

// UpdateJobID sets the "job_id" field to the value that was provided on create.
func (u *StudyGuideUpsertBulk) UpdateJobID() *StudyGuideUpsertBulk {
	return u.Update(func(s *StudyGuideUpsert) {
		s.UpdateJobID()
	})
}

// SetUserID sets the "user_id" field.
func (u *StudyGuideUpsertBulk) SetUserID(v uuid.UUID) *StudyGuideUpsertBulk {
	return u.Update(func(s *StudyGuideUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *StudyGuideUpsertBulk) UpdateUserID() *StudyGuideUpsertBulk {
	return u.Update(func(s *StudyGuideUpsert) {
		s.UpdateUserID()
	})
}

// SetTitle sets the "title" field.
func (u *StudyGuideUpsertBulk) SetTitle(v string) *StudyGuideUpsertBulk {
	return u.Update(func(s *StudyGuideUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *StudyGuideUpsertBulk) UpdateTitle() *StudyGuideUpsertBulk {
	return u.Update(func(s *StudyGuideUpsert) {
		s.UpdateTitle()
	})
}

// SetContent sets the "content" field.
func (u *StudyGuideUpsertBulk) SetContent(v json.RawMessage) *StudyGuideUpsertBulk {
	return u.Update(func(s *StudyGuideUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *StudyGuideUpsertBulk) UpdateContent() *StudyGuideUpsertBulk {
	return u.Update(func(s *StudyGuideUpsert) {
		s.UpdateContent()
	})
}

// SetDetailLevel sets the "detail_level" field.
func (u *StudyGuideUpsertBulk) SetDetailLevel(v string) *StudyGuideUpsertBulk {
	return u.Update(func(s *StudyGuideUpsert) {
		s.SetDetailLevel(v)
	})
}

// UpdateDetailLevel sets the "detail_level" field to the value that was provided on create.
func (u *StudyGuideUpsertBulk) UpdateDetailLevel() *StudyGuideUpsertBulk {
	return u.Update(func(s *StudyGuideUpsert) {
		s.UpdateDetailLevel()
	})
}

// ClearDetailLevel clears the value of the "detail_level" field.
func (u *StudyGuideUpsertBulk) ClearDetailLevel() *StudyGuideUpsertBulk {
	return u.Update(func(s *StudyGuideUpsert) {
		s.ClearDetailLevel()
	})
}

// SetQuestionCount sets the "question_count" field.
func (u *StudyGuideUpsertBulk) SetQuestionCount(v int) *StudyGuideUpsertBulk {
	return u.Update(func(s *StudyGuideUpsert) {
		s.SetQuestionCount(v)
	})
}

// AddQuestionCount adds v to the "question_count" field.
func (u *StudyGuideUpsertBulk) AddQuestionCount(v int) *StudyGuideUpsertBulk {
	return u.Update(func(s *StudyGuideUpsert) {
		s.AddQuestionCount(v)
	})
}

// UpdateQuestionCount sets the "question_count" field to the value that was provided on create.
func (u *StudyGuideUpsertBulk) UpdateQuestionCount() *StudyGuideUpsertBulk {
	return u.Update(func(s *StudyGuideUpsert) {
		s.UpdateQuestionCount()
	})
}

// SetConceptCount sets the "concept_count" field.
func (u *StudyGuideUpsertBulk) SetConceptCount(v int) *StudyGuideUpsertBulk {
	return u.Update(func(s *StudyGuideUpsert) {
		s.SetConceptCount(v)
	})
}

// AddConceptCount adds v to the "concept_count" field.
func (u *StudyGuideUpsertBulk) AddConceptCount(v int) *StudyGuideUpsertBulk {
	return u.Update(func(s *StudyGuideUpsert) {
		s.AddConceptCount(v)
	})
}

// UpdateConceptCount sets the "concept_count" field to the value that was provided on create.
func (u *StudyGuideUpsertBulk) UpdateConceptCount() *StudyGuideUpsertBulk {
	return u.Update(func(s *StudyGuideUpsert) {
		s.UpdateConceptCount()
	})
}

// SetQaScore sets the "qa_score" field.
func (u *StudyGuideUpsertBulk) SetQaScore(v float32) *StudyGuideUpsertBulk {
	return u.Update(func(s *StudyGuideUpsert) {
		s.SetQaScore(v)
	})
}

// AddQaScore adds v to the "qa_score" field.
func (u *StudyGuideUpsertBulk) AddQaScore(v float32) *StudyGuideUpsertBulk {
	return u.Update(func(s *StudyGuideUpsert) {
		s.AddQaScore(v)
	})
}

// UpdateQaScore sets the "qa_score" field to the value that was provided on create.
func (u *StudyGuideUpsertBulk) UpdateQaScore() *StudyGuideUpsertBulk {
	return u.Update(func(s *StudyGuideUpsert) {
		s.UpdateQaScore()
	})
}

// SetGeneratedAt sets the "generated_at" field.
func (u *StudyGuideUpsertBulk) SetGeneratedAt(v time.Time) *StudyGuideUpsertBulk {
	return u.Update(func(s *StudyGuideUpsert) {
		s.SetGeneratedAt(v)
	})
}

// UpdateGeneratedAt sets the "generated_at" field to the value that was provided on create.
func (u *StudyGuideUpsertBulk) UpdateGeneratedAt() *StudyGuideUpsertBulk {
	return u.Update(func(s *StudyGuideUpsert) {
		s.UpdateGeneratedAt()
	})
}

// Exec executes the query.
func (u *StudyGuideUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StudyGuideCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StudyGuideCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudyGuideUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
