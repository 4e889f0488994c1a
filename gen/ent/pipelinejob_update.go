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
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/pipelinejob"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/predicate"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/studyguide"
	"github.com/google/uuid"
)

// PipelineJobUpdate is the builder for updating PipelineJob entities.
type PipelineJobUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineJobMutation
}

// Where appends a list predicates to the PipelineJobUpdate builder.
func (_u *PipelineJobUpdate) Where(ps ...predicate.PipelineJob) *PipelineJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PipelineJobUpdate) SetUserID(v uuid.UUID) *PipelineJobUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableUserID(v *uuid.UUID) *PipelineJobUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDocumentRef sets the "document_ref" field.
func (_u *PipelineJobUpdate) SetDocumentRef(v string) *PipelineJobUpdate {
	_u.mutation.SetDocumentRef(v)
	return _u
}

// SetNillableDocumentRef sets the "document_ref" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableDocumentRef(v *string) *PipelineJobUpdate {
	if v != nil {
		_u.SetDocumentRef(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *PipelineJobUpdate) SetFormat(v string) *PipelineJobUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableFormat(v *string) *PipelineJobUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *PipelineJobUpdate) SetStage(v string) *PipelineJobUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableStage(v *string) *PipelineJobUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineJobUpdate) SetStatus(v string) *PipelineJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableStatus(v *string) *PipelineJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *PipelineJobUpdate) SetProgress(v int32) *PipelineJobUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableProgress(v *int32) *PipelineJobUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *PipelineJobUpdate) AddProgress(v int32) *PipelineJobUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetMessage sets the "message" field.
func (_u *PipelineJobUpdate) SetMessage(v string) *PipelineJobUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableMessage(v *string) *PipelineJobUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *PipelineJobUpdate) ClearMessage() *PipelineJobUpdate {
	_u.mutation.ClearMessage()
	return _u
}

// SetReasonCode sets the "reason_code" field.
func (_u *PipelineJobUpdate) SetReasonCode(v string) *PipelineJobUpdate {
	_u.mutation.SetReasonCode(v)
	return _u
}

// SetNillableReasonCode sets the "reason_code" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableReasonCode(v *string) *PipelineJobUpdate {
	if v != nil {
		_u.SetReasonCode(*v)
	}
	return _u
}

// ClearReasonCode clears the value of the "reason_code" field.
func (_u *PipelineJobUpdate) ClearReasonCode() *PipelineJobUpdate {
	_u.mutation.ClearReasonCode()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *PipelineJobUpdate) SetTokensUsed(v int64) *PipelineJobUpdate {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableTokensUsed(v *int64) *PipelineJobUpdate {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *PipelineJobUpdate) AddTokensUsed(v int64) *PipelineJobUpdate {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetSpendUsd sets the "spend_usd" field.
func (_u *PipelineJobUpdate) SetSpendUsd(v float64) *PipelineJobUpdate {
	_u.mutation.ResetSpendUsd()
	_u.mutation.SetSpendUsd(v)
	return _u
}

// SetNillableSpendUsd sets the "spend_usd" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableSpendUsd(v *float64) *PipelineJobUpdate {
	if v != nil {
		_u.SetSpendUsd(*v)
	}
	return _u
}

// AddSpendUsd adds value to the "spend_usd" field.
func (_u *PipelineJobUpdate) AddSpendUsd(v float64) *PipelineJobUpdate {
	_u.mutation.AddSpendUsd(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PipelineJobUpdate) SetCreatedAt(v time.Time) *PipelineJobUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableCreatedAt(v *time.Time) *PipelineJobUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PipelineJobUpdate) SetUpdatedAt(v time.Time) *PipelineJobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *PipelineJobUpdate) SetFinishedAt(v time.Time) *PipelineJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableFinishedAt(v *time.Time) *PipelineJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *PipelineJobUpdate) ClearFinishedAt() *PipelineJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *PipelineJobUpdate) SetLastError(v string) *PipelineJobUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableLastError(v *string) *PipelineJobUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *PipelineJobUpdate) ClearLastError() *PipelineJobUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetGuideID sets the "guide_id" field.
func (_u *PipelineJobUpdate) SetGuideID(v uuid.UUID) *PipelineJobUpdate {
	_u.mutation.SetGuideID(v)
	return _u
}

// SetNillableGuideID sets the "guide_id" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableGuideID(v *uuid.UUID) *PipelineJobUpdate {
	if v != nil {
		_u.SetGuideID(*v)
	}
	return _u
}

// ClearGuideID clears the value of the "guide_id" field.
func (_u *PipelineJobUpdate) ClearGuideID() *PipelineJobUpdate {
	_u.mutation.ClearGuideID()
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *PipelineJobUpdate) SetCancelRequested(v bool) *PipelineJobUpdate {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableCancelRequested(v *bool) *PipelineJobUpdate {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetPreferences sets the "preferences" field.
func (_u *PipelineJobUpdate) SetPreferences(v json.RawMessage) *PipelineJobUpdate {
	_u.mutation.SetPreferences(v)
	return _u
}

// AppendPreferences appends value to the "preferences" field.
func (_u *PipelineJobUpdate) AppendPreferences(v json.RawMessage) *PipelineJobUpdate {
	_u.mutation.AppendPreferences(v)
	return _u
}

// ClearPreferences clears the value of the "preferences" field.
func (_u *PipelineJobUpdate) ClearPreferences() *PipelineJobUpdate {
	_u.mutation.ClearPreferences()
	return _u
}

// SetGuide sets the "guide" edge to the StudyGuide entity.
func (_u *PipelineJobUpdate) SetGuide(v *StudyGuide) *PipelineJobUpdate {
	return _u.SetGuideID(v.ID)
}

// Mutation returns the PipelineJobMutation object of the builder.
func (_u *PipelineJobUpdate) Mutation() *PipelineJobMutation {
	return _u.mutation
}

// ClearGuide clears the "guide" edge to the StudyGuide entity.
func (_u *PipelineJobUpdate) ClearGuide() *PipelineJobUpdate {
	_u.mutation.ClearGuide()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineJobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PipelineJobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pipelinejob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineJobUpdate) check() error {
	if v, ok := _u.mutation.DocumentRef(); ok {
		if err := pipelinejob.DocumentRefValidator(v); err != nil {
			return &ValidationError{Name: "document_ref", err: fmt.Errorf(`ent: validator failed for field "PipelineJob.document_ref": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := pipelinejob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "PipelineJob.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := pipelinejob.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "PipelineJob.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinejob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinejob.Table, pipelinejob.Columns, sqlgraph.NewFieldSpec(pipelinejob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(pipelinejob.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DocumentRef(); ok {
		_spec.SetField(pipelinejob.FieldDocumentRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(pipelinejob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(pipelinejob.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinejob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(pipelinejob.FieldProgress, field.TypeInt32, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(pipelinejob.FieldProgress, field.TypeInt32, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(pipelinejob.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(pipelinejob.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ReasonCode(); ok {
		_spec.SetField(pipelinejob.FieldReasonCode, field.TypeString, value)
	}
	if _u.mutation.ReasonCodeCleared() {
		_spec.ClearField(pipelinejob.FieldReasonCode, field.TypeString)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(pipelinejob.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(pipelinejob.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SpendUsd(); ok {
		_spec.SetField(pipelinejob.FieldSpendUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSpendUsd(); ok {
		_spec.AddField(pipelinejob.FieldSpendUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(pipelinejob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pipelinejob.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(pipelinejob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(pipelinejob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(pipelinejob.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(pipelinejob.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(pipelinejob.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Preferences(); ok {
		_spec.SetField(pipelinejob.FieldPreferences, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPreferences(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinejob.FieldPreferences, value)
		})
	}
	if _u.mutation.PreferencesCleared() {
		_spec.ClearField(pipelinejob.FieldPreferences, field.TypeJSON)
	}
	if _u.mutation.GuideCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   pipelinejob.GuideTable,
			Columns: []string{pipelinejob.GuideColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studyguide.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GuideIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   pipelinejob.GuideTable,
			Columns: []string{pipelinejob.GuideColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studyguide.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinejob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineJobUpdateOne is the builder for updating a single PipelineJob entity.
type PipelineJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineJobMutation
}

// SetUserID sets the "user_id" field.
func (_u *PipelineJobUpdateOne) SetUserID(v uuid.UUID) *PipelineJobUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableUserID(v *uuid.UUID) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDocumentRef sets the "document_ref" field.
func (_u *PipelineJobUpdateOne) SetDocumentRef(v string) *PipelineJobUpdateOne {
	_u.mutation.SetDocumentRef(v)
	return _u
}

// SetNillableDocumentRef sets the "document_ref" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableDocumentRef(v *string) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetDocumentRef(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *PipelineJobUpdateOne) SetFormat(v string) *PipelineJobUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableFormat(v *string) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *PipelineJobUpdateOne) SetStage(v string) *PipelineJobUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableStage(v *string) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineJobUpdateOne) SetStatus(v string) *PipelineJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableStatus(v *string) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *PipelineJobUpdateOne) SetProgress(v int32) *PipelineJobUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableProgress(v *int32) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *PipelineJobUpdateOne) AddProgress(v int32) *PipelineJobUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetMessage sets the "message" field.
func (_u *PipelineJobUpdateOne) SetMessage(v string) *PipelineJobUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableMessage(v *string) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *PipelineJobUpdateOne) ClearMessage() *PipelineJobUpdateOne {
	_u.mutation.ClearMessage()
	return _u
}

// SetReasonCode sets the "reason_code" field.
func (_u *PipelineJobUpdateOne) SetReasonCode(v string) *PipelineJobUpdateOne {
	_u.mutation.SetReasonCode(v)
	return _u
}

// SetNillableReasonCode sets the "reason_code" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableReasonCode(v *string) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetReasonCode(*v)
	}
	return _u
}

// ClearReasonCode clears the value of the "reason_code" field.
func (_u *PipelineJobUpdateOne) ClearReasonCode() *PipelineJobUpdateOne {
	_u.mutation.ClearReasonCode()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *PipelineJobUpdateOne) SetTokensUsed(v int64) *PipelineJobUpdateOne {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableTokensUsed(v *int64) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *PipelineJobUpdateOne) AddTokensUsed(v int64) *PipelineJobUpdateOne {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetSpendUsd sets the "spend_usd" field.
func (_u *PipelineJobUpdateOne) SetSpendUsd(v float64) *PipelineJobUpdateOne {
	_u.mutation.ResetSpendUsd()
	_u.mutation.SetSpendUsd(v)
	return _u
}

// SetNillableSpendUsd sets the "spend_usd" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableSpendUsd(v *float64) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetSpendUsd(*v)
	}
	return _u
}

// AddSpendUsd adds value to the "spend_usd" field.
func (_u *PipelineJobUpdateOne) AddSpendUsd(v float64) *PipelineJobUpdateOne {
	_u.mutation.AddSpendUsd(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PipelineJobUpdateOne) SetCreatedAt(v time.Time) *PipelineJobUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableCreatedAt(v *time.Time) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PipelineJobUpdateOne) SetUpdatedAt(v time.Time) *PipelineJobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *PipelineJobUpdateOne) SetFinishedAt(v time.Time) *PipelineJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableFinishedAt(v *time.Time) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *PipelineJobUpdateOne) ClearFinishedAt() *PipelineJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *PipelineJobUpdateOne) SetLastError(v string) *PipelineJobUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableLastError(v *string) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *PipelineJobUpdateOne) ClearLastError() *PipelineJobUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetGuideID sets the "guide_id" field.
func (_u *PipelineJobUpdateOne) SetGuideID(v uuid.UUID) *PipelineJobUpdateOne {
	_u.mutation.SetGuideID(v)
	return _u
}

// SetNillableGuideID sets the "guide_id" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableGuideID(v *uuid.UUID) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetGuideID(*v)
	}
	return _u
}

// ClearGuideID clears the value of the "guide_id" field.
func (_u *PipelineJobUpdateOne) ClearGuideID() *PipelineJobUpdateOne {
	_u.mutation.ClearGuideID()
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *PipelineJobUpdateOne) SetCancelRequested(v bool) *PipelineJobUpdateOne {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableCancelRequested(v *bool) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetPreferences sets the "preferences" field.
func (_u *PipelineJobUpdateOne) SetPreferences(v json.RawMessage) *PipelineJobUpdateOne {
	_u.mutation.SetPreferences(v)
	return _u
}

// AppendPreferences appends value to the "preferences" field.
func (_u *PipelineJobUpdateOne) AppendPreferences(v json.RawMessage) *PipelineJobUpdateOne {
	_u.mutation.AppendPreferences(v)
	return _u
}

// ClearPreferences clears the value of the "preferences" field.
func (_u *PipelineJobUpdateOne) ClearPreferences() *PipelineJobUpdateOne {
	_u.mutation.ClearPreferences()
	return _u
}

// SetGuide sets the "guide" edge to the StudyGuide entity.
func (_u *PipelineJobUpdateOne) SetGuide(v *StudyGuide) *PipelineJobUpdateOne {
	return _u.SetGuideID(v.ID)
}

// Mutation returns the PipelineJobMutation object of the builder.
func (_u *PipelineJobUpdateOne) Mutation() *PipelineJobMutation {
	return _u.mutation
}

// ClearGuide clears the "guide" edge to the StudyGuide entity.
func (_u *PipelineJobUpdateOne) ClearGuide() *PipelineJobUpdateOne {
	_u.mutation.ClearGuide()
	return _u
}

// Where appends a list predicates to the PipelineJobUpdate builder.
func (_u *PipelineJobUpdateOne) Where(ps ...predicate.PipelineJob) *PipelineJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineJobUpdateOne) Select(field string, fields ...string) *PipelineJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PipelineJob entity.
func (_u *PipelineJobUpdateOne) Save(ctx context.Context) (*PipelineJob, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineJobUpdateOne) SaveX(ctx context.Context) *PipelineJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PipelineJobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pipelinejob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineJobUpdateOne) check() error {
	if v, ok := _u.mutation.DocumentRef(); ok {
		if err := pipelinejob.DocumentRefValidator(v); err != nil {
			return &ValidationError{Name: "document_ref", err: fmt.Errorf(`ent: validator failed for field "PipelineJob.document_ref": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := pipelinejob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "PipelineJob.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := pipelinejob.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "PipelineJob.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinejob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineJobUpdateOne) sqlSave(ctx context.Context) (_node *PipelineJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinejob.Table, pipelinejob.Columns, sqlgraph.NewFieldSpec(pipelinejob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PipelineJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinejob.FieldID)
		for _, f := range fields {
			if !pipelinejob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipelinejob.FieldID {
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
		_spec.SetField(pipelinejob.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DocumentRef(); ok {
		_spec.SetField(pipelinejob.FieldDocumentRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(pipelinejob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(pipelinejob.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinejob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(pipelinejob.FieldProgress, field.TypeInt32, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(pipelinejob.FieldProgress, field.TypeInt32, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(pipelinejob.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(pipelinejob.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ReasonCode(); ok {
		_spec.SetField(pipelinejob.FieldReasonCode, field.TypeString, value)
	}
	if _u.mutation.ReasonCodeCleared() {
		_spec.ClearField(pipelinejob.FieldReasonCode, field.TypeString)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(pipelinejob.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(pipelinejob.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SpendUsd(); ok {
		_spec.SetField(pipelinejob.FieldSpendUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSpendUsd(); ok {
		_spec.AddField(pipelinejob.FieldSpendUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(pipelinejob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pipelinejob.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(pipelinejob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(pipelinejob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(pipelinejob.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(pipelinejob.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(pipelinejob.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Preferences(); ok {
		_spec.SetField(pipelinejob.FieldPreferences, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPreferences(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinejob.FieldPreferences, value)
		})
	}
	if _u.mutation.PreferencesCleared() {
		_spec.ClearField(pipelinejob.FieldPreferences, field.TypeJSON)
	}
	if _u.mutation.GuideCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   pipelinejob.GuideTable,
			Columns: []string{pipelinejob.GuideColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studyguide.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GuideIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   pipelinejob.GuideTable,
			Columns: []string{pipelinejob.GuideColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studyguide.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PipelineJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinejob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
