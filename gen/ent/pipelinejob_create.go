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
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/pipelinejob"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/studyguide"
	"github.com/google/uuid"
)

// PipelineJobCreate is the builder for creating a PipelineJob entity.
type PipelineJobCreate struct {
	config
	mutation *PipelineJobMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *PipelineJobCreate) SetUserID(v uuid.UUID) *PipelineJobCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDocumentRef sets the "document_ref" field.
func (_c *PipelineJobCreate) SetDocumentRef(v string) *PipelineJobCreate {
	_c.mutation.SetDocumentRef(v)
	return _c
}

// SetFormat sets the "format" field.
func (_c *PipelineJobCreate) SetFormat(v string) *PipelineJobCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *PipelineJobCreate) SetStage(v string) *PipelineJobCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PipelineJobCreate) SetStatus(v string) *PipelineJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetProgress sets the "progress" field.
func (_c *PipelineJobCreate) SetProgress(v int32) *PipelineJobCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableProgress(v *int32) *PipelineJobCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *PipelineJobCreate) SetMessage(v string) *PipelineJobCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableMessage(v *string) *PipelineJobCreate {
	if v != nil {
		_c.SetMessage(*v)
	}
	return _c
}

// SetReasonCode sets the "reason_code" field.
func (_c *PipelineJobCreate) SetReasonCode(v string) *PipelineJobCreate {
	_c.mutation.SetReasonCode(v)
	return _c
}

// SetNillableReasonCode sets the "reason_code" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableReasonCode(v *string) *PipelineJobCreate {
	if v != nil {
		_c.SetReasonCode(*v)
	}
	return _c
}

// SetTokensUsed sets the "tokens_used" field.
func (_c *PipelineJobCreate) SetTokensUsed(v int64) *PipelineJobCreate {
	_c.mutation.SetTokensUsed(v)
	return _c
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableTokensUsed(v *int64) *PipelineJobCreate {
	if v != nil {
		_c.SetTokensUsed(*v)
	}
	return _c
}

// SetSpendUsd sets the "spend_usd" field.
func (_c *PipelineJobCreate) SetSpendUsd(v float64) *PipelineJobCreate {
	_c.mutation.SetSpendUsd(v)
	return _c
}

// SetNillableSpendUsd sets the "spend_usd" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableSpendUsd(v *float64) *PipelineJobCreate {
	if v != nil {
		_c.SetSpendUsd(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PipelineJobCreate) SetCreatedAt(v time.Time) *PipelineJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableCreatedAt(v *time.Time) *PipelineJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PipelineJobCreate) SetUpdatedAt(v time.Time) *PipelineJobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableUpdatedAt(v *time.Time) *PipelineJobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *PipelineJobCreate) SetFinishedAt(v time.Time) *PipelineJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableFinishedAt(v *time.Time) *PipelineJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *PipelineJobCreate) SetLastError(v string) *PipelineJobCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableLastError(v *string) *PipelineJobCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetGuideID sets the "guide_id" field.
func (_c *PipelineJobCreate) SetGuideID(v uuid.UUID) *PipelineJobCreate {
	_c.mutation.SetGuideID(v)
	return _c
}

// SetNillableGuideID sets the "guide_id" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableGuideID(v *uuid.UUID) *PipelineJobCreate {
	if v != nil {
		_c.SetGuideID(*v)
	}
	return _c
}

// SetCancelRequested sets the "cancel_requested" field.
func (_c *PipelineJobCreate) SetCancelRequested(v bool) *PipelineJobCreate {
	_c.mutation.SetCancelRequested(v)
	return _c
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableCancelRequested(v *bool) *PipelineJobCreate {
	if v != nil {
		_c.SetCancelRequested(*v)
	}
	return _c
}

// SetPreferences sets the "preferences" field.
func (_c *PipelineJobCreate) SetPreferences(v json.RawMessage) *PipelineJobCreate {
	_c.mutation.SetPreferences(v)
	return _c
}

// SetID sets the "id" field.
func (_c *PipelineJobCreate) SetID(v uuid.UUID) *PipelineJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableID(v *uuid.UUID) *PipelineJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetGuide sets the "guide" edge to the StudyGuide entity.
func (_c *PipelineJobCreate) SetGuide(v *StudyGuide) *PipelineJobCreate {
	return _c.SetGuideID(v.ID)
}

// Mutation returns the PipelineJobMutation object of the builder.
func (_c *PipelineJobCreate) Mutation() *PipelineJobMutation {
	return _c.mutation
}

// Save creates the PipelineJob in the database.
func (_c *PipelineJobCreate) Save(ctx context.Context) (*PipelineJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineJobCreate) SaveX(ctx context.Context) *PipelineJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineJobCreate) defaults() {
	if _, ok := _c.mutation.Progress(); !ok {
		v := pipelinejob.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		v := pipelinejob.DefaultTokensUsed
		_c.mutation.SetTokensUsed(v)
	}
	if _, ok := _c.mutation.SpendUsd(); !ok {
		v := pipelinejob.DefaultSpendUsd
		_c.mutation.SetSpendUsd(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pipelinejob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := pipelinejob.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		v := pipelinejob.DefaultCancelRequested
		_c.mutation.SetCancelRequested(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := pipelinejob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineJobCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PipelineJob.user_id"`)}
	}
	if _, ok := _c.mutation.DocumentRef(); !ok {
		return &ValidationError{Name: "document_ref", err: errors.New(`ent: missing required field "PipelineJob.document_ref"`)}
	}
	if v, ok := _c.mutation.DocumentRef(); ok {
		if err := pipelinejob.DocumentRefValidator(v); err != nil {
			return &ValidationError{Name: "document_ref", err: fmt.Errorf(`ent: validator failed for field "PipelineJob.document_ref": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "PipelineJob.format"`)}
	}
	if v, ok := _c.mutation.Format(); ok {
		if err := pipelinejob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "PipelineJob.format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "PipelineJob.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := pipelinejob.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "PipelineJob.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PipelineJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pipelinejob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "PipelineJob.progress"`)}
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		return &ValidationError{Name: "tokens_used", err: errors.New(`ent: missing required field "PipelineJob.tokens_used"`)}
	}
	if _, ok := _c.mutation.SpendUsd(); !ok {
		return &ValidationError{Name: "spend_usd", err: errors.New(`ent: missing required field "PipelineJob.spend_usd"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PipelineJob.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PipelineJob.updated_at"`)}
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		return &ValidationError{Name: "cancel_requested", err: errors.New(`ent: missing required field "PipelineJob.cancel_requested"`)}
	}
	return nil
}

func (_c *PipelineJobCreate) sqlSave(ctx context.Context) (*PipelineJob, error) {
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

func (_c *PipelineJobCreate) createSpec() (*PipelineJob, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelinejob.Table, sqlgraph.NewFieldSpec(pipelinejob.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(pipelinejob.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.DocumentRef(); ok {
		_spec.SetField(pipelinejob.FieldDocumentRef, field.TypeString, value)
		_node.DocumentRef = value
	}
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(pipelinejob.FieldFormat, field.TypeString, value)
		_node.Format = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(pipelinejob.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pipelinejob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(pipelinejob.FieldProgress, field.TypeInt32, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(pipelinejob.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.ReasonCode(); ok {
		_spec.SetField(pipelinejob.FieldReasonCode, field.TypeString, value)
		_node.ReasonCode = value
	}
	if value, ok := _c.mutation.TokensUsed(); ok {
		_spec.SetField(pipelinejob.FieldTokensUsed, field.TypeInt64, value)
		_node.TokensUsed = value
	}
	if value, ok := _c.mutation.SpendUsd(); ok {
		_spec.SetField(pipelinejob.FieldSpendUsd, field.TypeFloat64, value)
		_node.SpendUsd = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pipelinejob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(pipelinejob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(pipelinejob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(pipelinejob.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.CancelRequested(); ok {
		_spec.SetField(pipelinejob.FieldCancelRequested, field.TypeBool, value)
		_node.CancelRequested = value
	}
	if value, ok := _c.mutation.Preferences(); ok {
		_spec.SetField(pipelinejob.FieldPreferences, field.TypeJSON, value)
		_node.Preferences = value
	}
	if nodes := _c.mutation.GuideIDs(); len(nodes) > 0 {
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
		_node.GuideID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PipelineJob.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PipelineJobUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *PipelineJobCreate) OnConflict(opts ...sql.ConflictOption) *PipelineJobUpsertOne {
	_c.conflict = opts
	return &PipelineJobUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PipelineJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PipelineJobCreate) OnConflictColumns(columns ...string) *PipelineJobUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PipelineJobUpsertOne{
		create: _c,
	}
}

type (
	// PipelineJobUpsertOne is the builder for "upsert"-ing
	//  one PipelineJob node.
	PipelineJobUpsertOne struct {
		create *PipelineJobCreate
	}

	// PipelineJobUpsert is the "OnConflict" setter.
	PipelineJobUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *PipelineJobUpsert) SetUserID(v uuid.UUID) *PipelineJobUpsert {
	u.Set(pipelinejob.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PipelineJobUpsert) UpdateUserID() *PipelineJobUpsert {
	u.SetExcluded(pipelinejob.FieldUserID)
	return u
}

// SetDocumentRef sets the "document_ref" field.
func (u *PipelineJobUpsert) SetDocumentRef(v string) *PipelineJobUpsert {
	u.Set(pipelinejob.FieldDocumentRef, v)
	return u
}

// UpdateDocumentRef sets the "document_ref" field to the value that was provided on create.
func (u *PipelineJobUpsert) UpdateDocumentRef() *PipelineJobUpsert {
	u.SetExcluded(pipelinejob.FieldDocumentRef)
	return u
}

// SetFormat sets the "format" field.
func (u *PipelineJobUpsert) SetFormat(v string) *PipelineJobUpsert {
	u.Set(pipelinejob.FieldFormat, v)
	return u
}

// UpdateFormat sets the "format" field to the value that was provided on create.
func (u *PipelineJobUpsert) UpdateFormat() *PipelineJobUpsert {
	u.SetExcluded(pipelinejob.FieldFormat)
	return u
}

// SetStage sets the "stage" field.
func (u *PipelineJobUpsert) SetStage(v string) *PipelineJobUpsert {
	u.Set(pipelinejob.FieldStage, v)
	return u
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *PipelineJobUpsert) UpdateStage() *PipelineJobUpsert {
	u.SetExcluded(pipelinejob.FieldStage)
	return u
}

// SetStatus sets the "status" field.
func (u *PipelineJobUpsert) SetStatus(v string) *PipelineJobUpsert {
	u.Set(pipelinejob.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PipelineJobUpsert) UpdateStatus() *PipelineJobUpsert {
	u.SetExcluded(pipelinejob.FieldStatus)
	return u
}

// SetProgress sets the "progress" field.
func (u *PipelineJobUpsert) SetProgress(v int32) *PipelineJobUpsert {
	u.Set(pipelinejob.FieldProgress, v)
	return u
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *PipelineJobUpsert) UpdateProgress() *PipelineJobUpsert {
	u.SetExcluded(pipelinejob.FieldProgress)
	return u
}

// AddProgress adds v to the "progress" field.
func (u *PipelineJobUpsert) AddProgress(v int32) *PipelineJobUpsert {
	u.Add(pipelinejob.FieldProgress, v)
	return u
}

// SetMessage sets the "message" field.
func (u *PipelineJobUpsert) SetMessage(v string) *PipelineJobUpsert {
	u.Set(pipelinejob.FieldMessage, v)
	return u
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *PipelineJobUpsert) UpdateMessage() *PipelineJobUpsert {
	u.SetExcluded(pipelinejob.FieldMessage)
	return u
}

// ClearMessage clears the value of the "message" field.
func (u *PipelineJobUpsert) ClearMessage() *PipelineJobUpsert {
	u.SetNull(pipelinejob.FieldMessage)
	return u
}

// SetReasonCode sets the "reason_code" field.
func (u *PipelineJobUpsert) SetReasonCode(v string) *PipelineJobUpsert {
	u.Set(pipelinejob.FieldReasonCode, v)
	return u
}

// UpdateReasonCode sets the "reason_code" field to the value that was provided on create.
func (u *PipelineJobUpsert) UpdateReasonCode() *PipelineJobUpsert {
	u.SetExcluded(pipelinejob.FieldReasonCode)
	return u
}

// ClearReasonCode clears the value of the "reason_code" field.
func (u *PipelineJobUpsert) ClearReasonCode() *PipelineJobUpsert {
	u.SetNull(pipelinejob.FieldReasonCode)
	return u
}

// SetTokensUsed sets the "tokens_used" field.
func (u *PipelineJobUpsert) SetTokensUsed(v int64) *PipelineJobUpsert {
	u.Set(pipelinejob.FieldTokensUsed, v)
	return u
}

// UpdateTokensUsed sets the "tokens_used" field to the value that was provided on create.
func (u *PipelineJobUpsert) UpdateTokensUsed() *PipelineJobUpsert {
	u.SetExcluded(pipelinejob.FieldTokensUsed)
	return u
}

// AddTokensUsed adds v to the "tokens_used" field.
func (u *PipelineJobUpsert) AddTokensUsed(v int64) *PipelineJobUpsert {
	u.Add(pipelinejob.FieldTokensUsed, v)
	return u
}

// SetSpendUsd sets the "spend_usd" field.
func (u *PipelineJobUpsert) SetSpendUsd(v float64) *PipelineJobUpsert {
	u.Set(pipelinejob.FieldSpendUsd, v)
	return u
}

// UpdateSpendUsd sets the "spend_usd" field to the value that was provided on create.
func (u *PipelineJobUpsert) UpdateSpendUsd() *PipelineJobUpsert {
	u.SetExcluded(pipelinejob.FieldSpendUsd)
	return u
}

// AddSpendUsd adds v to the "spend_usd" field.
func (u *PipelineJobUpsert) AddSpendUsd(v float64) *PipelineJobUpsert {
	u.Add(pipelinejob.FieldSpendUsd, v)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *PipelineJobUpsert) SetCreatedAt(v time.Time) *PipelineJobUpsert {
	u.Set(pipelinejob.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *PipelineJobUpsert) UpdateCreatedAt() *PipelineJobUpsert {
	u.SetExcluded(pipelinejob.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PipelineJobUpsert) SetUpdatedAt(v time.Time) *PipelineJobUpsert {
	u.Set(pipelinejob.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PipelineJobUpsert) UpdateUpdatedAt() *PipelineJobUpsert {
	u.SetExcluded(pipelinejob.FieldUpdatedAt)
	return u
}

// SetFinishedAt sets the "finished_at" field.
func (u *PipelineJobUpsert) SetFinishedAt(v time.Time) *PipelineJobUpsert {
	u.Set(pipelinejob.FieldFinishedAt, v)
	return u
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *PipelineJobUpsert) UpdateFinishedAt() *PipelineJobUpsert {
	u.SetExcluded(pipelinejob.FieldFinishedAt)
	return u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *PipelineJobUpsert) ClearFinishedAt() *PipelineJobUpsert {
	u.SetNull(pipelinejob.FieldFinishedAt)
	return u
}

// SetLastError sets the "last_error" field.
func (u *PipelineJobUpsert) SetLastError(v string) *PipelineJobUpsert {
	u.Set(pipelinejob.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *PipelineJobUpsert) UpdateLastError() *PipelineJobUpsert {
	u.SetExcluded(pipelinejob.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *PipelineJobUpsert) ClearLastError() *PipelineJobUpsert {
	u.SetNull(pipelinejob.FieldLastError)
	return u
}

// SetGuideID sets the "guide_id" field.
func (u *PipelineJobUpsert) SetGuideID(v uuid.UUID) *PipelineJobUpsert {
	u.Set(pipelinejob.FieldGuideID, v)
	return u
}

// UpdateGuideID sets the "guide_id" field to the value that was provided on create.
func (u *PipelineJobUpsert) UpdateGuideID() *PipelineJobUpsert {
	u.SetExcluded(pipelinejob.FieldGuideID)
	return u
}

// ClearGuideID clears the value of the "guide_id" field.
func (u *PipelineJobUpsert) ClearGuideID() *PipelineJobUpsert {
	u.SetNull(pipelinejob.FieldGuideID)
	return u
}

// SetCancelRequested sets the "cancel_requested" field.
func (u *PipelineJobUpsert) SetCancelRequested(v bool) *PipelineJobUpsert {
	u.Set(pipelinejob.FieldCancelRequested, v)
	return u
}

// UpdateCancelRequested sets the "cancel_requested" field to the value that was provided on create.
func (u *PipelineJobUpsert) UpdateCancelRequested() *PipelineJobUpsert {
	u.SetExcluded(pipelinejob.FieldCancelRequested)
	return u
}

// SetPreferences sets the "preferences" field.
func (u *PipelineJobUpsert) SetPreferences(v json.RawMessage) *PipelineJobUpsert {
	u.Set(pipelinejob.FieldPreferences, v)
	return u
}

// UpdatePreferences sets the "preferences" field to the value that was provided on create.
func (u *PipelineJobUpsert) UpdatePreferences() *PipelineJobUpsert {
	u.SetExcluded(pipelinejob.FieldPreferences)
	return u
}

// ClearPreferences clears the value of the "preferences" field.
func (u *PipelineJobUpsert) ClearPreferences() *PipelineJobUpsert {
	u.SetNull(pipelinejob.FieldPreferences)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PipelineJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pipelinejob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PipelineJobUpsertOne) UpdateNewValues() *PipelineJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(pipelinejob.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PipelineJob.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PipelineJobUpsertOne) Ignore() *PipelineJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PipelineJobUpsertOne) DoNothing() *PipelineJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PipelineJobCreate.OnConflict
// documentation for more info.
func (u *PipelineJobUpsertOne) Update(set func(*PipelineJobUpsert)) *PipelineJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PipelineJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *PipelineJobUpsertOne) SetUserID(v uuid.UUID) *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PipelineJobUpsertOne) UpdateUserID() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateUserID()
	})
}

// SetDocumentRef sets the "document_ref" field.
func (u *PipelineJobUpsertOne) SetDocumentRef(v string) *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetDocumentRef(v)
	})
}

// UpdateDocumentRef sets the "document_ref" field to the value that was provided on create.
func (u *PipelineJobUpsertOne) UpdateDocumentRef() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateDocumentRef()
	})
}

// SetFormat sets the "format" field.
func (u *PipelineJobUpsertOne) SetFormat(v string) *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetFormat(v)
	})
}

// UpdateFormat sets the "format" field to the value that was provided on create.
func (u *PipelineJobUpsertOne) UpdateFormat() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateFormat()
	})
}

// SetStage sets the "stage" field.
func (u *PipelineJobUpsertOne) SetStage(v string) *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetStage(v)
	})
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *PipelineJobUpsertOne) UpdateStage() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateStage()
	})
}

// SetStatus sets the "status" field.
func (u *PipelineJobUpsertOne) SetStatus(v string) *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PipelineJobUpsertOne) UpdateStatus() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateStatus()
	})
}

// SetProgress sets the "progress" field.
func (u *PipelineJobUpsertOne) SetProgress(v int32) *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetProgress(v)
	})
}

// AddProgress adds v to the "progress" field.
func (u *PipelineJobUpsertOne) AddProgress(v int32) *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.AddProgress(v)
	})
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *PipelineJobUpsertOne) UpdateProgress() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateProgress()
	})
}

// SetMessage sets the "message" field.
func (u *PipelineJobUpsertOne) SetMessage(v string) *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *PipelineJobUpsertOne) UpdateMessage() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateMessage()
	})
}

// ClearMessage clears the value of the "message" field.
func (u *PipelineJobUpsertOne) ClearMessage() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.ClearMessage()
	})
}

// SetReasonCode sets the "reason_code" field.
func (u *PipelineJobUpsertOne) SetReasonCode(v string) *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetReasonCode(v)
	})
}

// UpdateReasonCode sets the "reason_code" field to the value that was provided on create.
func (u *PipelineJobUpsertOne) UpdateReasonCode() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateReasonCode()
	})
}

// ClearReasonCode clears the value of the "reason_code" field.
func (u *PipelineJobUpsertOne) ClearReasonCode() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.ClearReasonCode()
	})
}

// SetTokensUsed sets the "tokens_used" field.
func (u *PipelineJobUpsertOne) SetTokensUsed(v int64) *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetTokensUsed(v)
	})
}

// AddTokensUsed adds v to the "tokens_used" field.
func (u *PipelineJobUpsertOne) AddTokensUsed(v int64) *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.AddTokensUsed(v)
	})
}

// UpdateTokensUsed sets the "tokens_used" field to the value that was provided on create.
func (u *PipelineJobUpsertOne) UpdateTokensUsed() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateTokensUsed()
	})
}

// SetSpendUsd sets the "spend_usd" field.
func (u *PipelineJobUpsertOne) SetSpendUsd(v float64) *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetSpendUsd(v)
	})
}

// AddSpendUsd adds v to the "spend_usd" field.
func (u *PipelineJobUpsertOne) AddSpendUsd(v float64) *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.AddSpendUsd(v)
	})
}

// UpdateSpendUsd sets the "spend_usd" field to the value that was provided on create.
func (u *PipelineJobUpsertOne) UpdateSpendUsd() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateSpendUsd()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *PipelineJobUpsertOne) SetCreatedAt(v time.Time) *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *PipelineJobUpsertOne) UpdateCreatedAt() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PipelineJobUpsertOne) SetUpdatedAt(v time.Time) *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PipelineJobUpsertOne) UpdateUpdatedAt() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *PipelineJobUpsertOne) SetFinishedAt(v time.Time) *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *PipelineJobUpsertOne) UpdateFinishedAt() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *PipelineJobUpsertOne) ClearFinishedAt() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.ClearFinishedAt()
	})
}

// SetLastError sets the "last_error" field.
func (u *PipelineJobUpsertOne) SetLastError(v string) *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *PipelineJobUpsertOne) UpdateLastError() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *PipelineJobUpsertOne) ClearLastError() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.ClearLastError()
	})
}

// SetGuideID sets the "guide_id" field.
func (u *PipelineJobUpsertOne) SetGuideID(v uuid.UUID) *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetGuideID(v)
	})
}

// UpdateGuideID sets the "guide_id" field to the value that was provided on create.
func (u *PipelineJobUpsertOne) UpdateGuideID() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateGuideID()
	})
}

// ClearGuideID clears the value of the "guide_id" field.
func (u *PipelineJobUpsertOne) ClearGuideID() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.ClearGuideID()
	})
}

// SetCancelRequested sets the "cancel_requested" field.
func (u *PipelineJobUpsertOne) SetCancelRequested(v bool) *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetCancelRequested(v)
	})
}

// UpdateCancelRequested sets the "cancel_requested" field to the value that was provided on create.
func (u *PipelineJobUpsertOne) UpdateCancelRequested() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateCancelRequested()
	})
}

// SetPreferences sets the "preferences" field.
func (u *PipelineJobUpsertOne) SetPreferences(v json.RawMessage) *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetPreferences(v)
	})
}

// UpdatePreferences sets the "preferences" field to the value that was provided on create.
func (u *PipelineJobUpsertOne) UpdatePreferences() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdatePreferences()
	})
}

// ClearPreferences clears the value of the "preferences" field.
func (u *PipelineJobUpsertOne) ClearPreferences() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.ClearPreferences()
	})
}

// Exec executes the query.
func (u *PipelineJobUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PipelineJobCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PipelineJobUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PipelineJobUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PipelineJobUpsertOne.ID is not supported by MySQL driver. Use PipelineJobUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PipelineJobUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PipelineJobCreateBulk is the builder for creating many PipelineJob entities in bulk.
type PipelineJobCreateBulk struct {
	config
	err      error
	builders []*PipelineJobCreate
	conflict []sql.ConflictOption
}

// Save creates the PipelineJob entities in the database.
func (_c *PipelineJobCreateBulk) Save(ctx context.Context) ([]*PipelineJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineJobMutation)
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
func (_c *PipelineJobCreateBulk) SaveX(ctx context.Context) []*PipelineJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PipelineJob.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PipelineJobUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *PipelineJobCreateBulk) OnConflict(opts ...sql.ConflictOption) *PipelineJobUpsertBulk {
	_c.conflict = opts
	return &PipelineJobUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PipelineJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PipelineJobCreateBulk) OnConflictColumns(columns ...string) *PipelineJobUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PipelineJobUpsertBulk{
		create: _c,
	}
}

// PipelineJobUpsertBulk is the builder for "upsert"-ing
// a bulk of PipelineJob nodes.
type PipelineJobUpsertBulk struct {
	create *PipelineJobCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PipelineJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pipelinejob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PipelineJobUpsertBulk) UpdateNewValues() *PipelineJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(pipelinejob.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PipelineJob.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PipelineJobUpsertBulk) Ignore() *PipelineJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PipelineJobUpsertBulk) DoNothing() *PipelineJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PipelineJobCreateBulk.OnConflict
// documentation for more info.
func (u *PipelineJobUpsertBulk) Update(set func(*PipelineJobUpsert)) *PipelineJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PipelineJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *PipelineJobUpsertBulk) SetUserID(v uuid.UUID) *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PipelineJobUpsertBulk) UpdateUserID() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateUserID()
	})
}

// SetDocumentRef sets the "document_ref" field.
func (u *PipelineJobUpsertBulk) SetDocumentRef(v string) *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetDocumentRef(v)
	})
}

// UpdateDocumentRef sets the "document_ref" field to the value that was provided on create.
func (u *PipelineJobUpsertBulk) UpdateDocumentRef() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateDocumentRef()
	})
}

// SetFormat sets the "format" field.
func (u *PipelineJobUpsertBulk) SetFormat(v string) *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetFormat(v)
	})
}

// UpdateFormat sets the "format" field to the value that was provided on create.
func (u *PipelineJobUpsertBulk) UpdateFormat() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateFormat()
	})
}

// SetStage sets the "stage" field.
func (u *PipelineJobUpsertBulk) SetStage(v string) *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetStage(v)
	})
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *PipelineJobUpsertBulk) UpdateStage() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateStage()
	})
}

// SetStatus sets the "status" field.
func (u *PipelineJobUpsertBulk) SetStatus(v string) *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PipelineJobUpsertBulk) UpdateStatus() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateStatus()
	})
}

// SetProgress sets the "progress" field.
func (u *PipelineJobUpsertBulk) SetProgress(v int32) *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetProgress(v)
	})
}

// AddProgress adds v to the "progress" field.
func (u *PipelineJobUpsertBulk) AddProgress(v int32) *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.AddProgress(v)
	})
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *PipelineJobUpsertBulk) UpdateProgress() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateProgress()
	})
}

// SetMessage sets the "message" field.
func (u *PipelineJobUpsertBulk) SetMessage(v string) *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *PipelineJobUpsertBulk) UpdateMessage() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateMessage()
	})
}

// ClearMessage clears the value of the "message" field.
func (u *PipelineJobUpsertBulk) ClearMessage() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.ClearMessage()
	})
}

// SetReasonCode sets the "reason_code" field.
func (u *PipelineJobUpsertBulk) SetReasonCode(v string) *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetReasonCode(v)
	})
}

// UpdateReasonCode sets the "reason_code" field to the value that was provided on create.
func (u *PipelineJobUpsertBulk) UpdateReasonCode() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateReasonCode()
	})
}

// ClearReasonCode clears the value of the "reason_code" field.
func (u *PipelineJobUpsertBulk) ClearReasonCode() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.ClearReasonCode()
	})
}

// SetTokensUsed sets the "tokens_used" field.
func (u *PipelineJobUpsertBulk) SetTokensUsed(v int64) *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetTokensUsed(v)
	})
}

// AddTokensUsed adds v to the "tokens_used" field.
func (u *PipelineJobUpsertBulk) AddTokensUsed(v int64) *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.AddTokensUsed(v)
	})
}

// UpdateTokensUsed sets the "tokens_used" field to the value that was provided on create.
func (u *PipelineJobUpsertBulk) UpdateTokensUsed() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateTokensUsed()
	})
}

// SetSpendUsd sets the "spend_usd" field.
func (u *PipelineJobUpsertBulk) SetSpendUsd(v float64) *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetSpendUsd(v)
	})
}

// AddSpendUsd adds v to the "spend_usd" field.
func (u *PipelineJobUpsertBulk) AddSpendUsd(v float64) *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.AddSpendUsd(v)
	})
}

// UpdateSpendUsd sets the "spend_usd" field to the value that was provided on create.
func (u *PipelineJobUpsertBulk) UpdateSpendUsd() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateSpendUsd()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *PipelineJobUpsertBulk) SetCreatedAt(v time.Time) *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *PipelineJobUpsertBulk) UpdateCreatedAt() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PipelineJobUpsertBulk) SetUpdatedAt(v time.Time) *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PipelineJobUpsertBulk) UpdateUpdatedAt() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *PipelineJobUpsertBulk) SetFinishedAt(v time.Time) *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *PipelineJobUpsertBulk) UpdateFinishedAt() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *PipelineJobUpsertBulk) ClearFinishedAt() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.ClearFinishedAt()
	})
}

// SetLastError sets the "last_error" field.
func (u *PipelineJobUpsertBulk) SetLastError(v string) *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *PipelineJobUpsertBulk) UpdateLastError() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *PipelineJobUpsertBulk) ClearLastError() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.ClearLastError()
	})
}

// SetGuideID sets the "guide_id" field.
func (u *PipelineJobUpsertBulk) SetGuideID(v uuid.UUID) *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetGuideID(v)
	})
}

// UpdateGuideID sets the "guide_id" field to the value that was provided on create.
func (u *PipelineJobUpsertBulk) UpdateGuideID() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateGuideID()
	})
}

// ClearGuideID clears the value of the "guide_id" field.
func (u *PipelineJobUpsertBulk) ClearGuideID() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.ClearGuideID()
	})
}

// SetCancelRequested sets the "cancel_requested" field.
func (u *PipelineJobUpsertBulk) SetCancelRequested(v bool) *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetCancelRequested(v)
	})
}

// UpdateCancelRequested sets the "cancel_requested" field to the value that was provided on create.
func (u *PipelineJobUpsertBulk) UpdateCancelRequested() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateCancelRequested()
	})
}

// SetPreferences sets the "preferences" field.
func (u *PipelineJobUpsertBulk) SetPreferences(v json.RawMessage) *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetPreferences(v)
	})
}

// UpdatePreferences sets the "preferences" field to the value that was provided on create.
func (u *PipelineJobUpsertBulk) UpdatePreferences() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdatePreferences()
	})
}

// ClearPreferences clears the value of the "preferences" field.
func (u *PipelineJobUpsertBulk) ClearPreferences() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.ClearPreferences()
	})
}

// Exec executes the query.
func (u *PipelineJobUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PipelineJobCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PipelineJobCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PipelineJobUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
