// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/budgetsnapshot"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/pipelinejob"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/predicate"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/studyguide"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBudgetSnapshot = "BudgetSnapshot"
	TypePipelineJob    = "PipelineJob"
	TypeStudyGuide     = "StudyGuide"
)

// BudgetSnapshotMutation represents an operation that mutates the BudgetSnapshot nodes in the graph.
type BudgetSnapshotMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	user_id        *uuid.UUID
	day            *string
	tokens_used    *int64
	addtokens_used *int64
	spend_usd      *float64
	addspend_usd   *float64
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*BudgetSnapshot, error)
	predicates     []predicate.BudgetSnapshot
}

var _ ent.Mutation = (*BudgetSnapshotMutation)(nil)

// budgetsnapshotOption allows management of the mutation configuration using functional options.
type budgetsnapshotOption func(*BudgetSnapshotMutation)

// newBudgetSnapshotMutation creates new mutation for the BudgetSnapshot entity.
func newBudgetSnapshotMutation(c config, op Op, opts ...budgetsnapshotOption) *BudgetSnapshotMutation {
	m := &BudgetSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeBudgetSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBudgetSnapshotID sets the ID field of the mutation.
func withBudgetSnapshotID(id uuid.UUID) budgetsnapshotOption {
	return func(m *BudgetSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *BudgetSnapshot
		)
		m.oldValue = func(ctx context.Context) (*BudgetSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BudgetSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBudgetSnapshot sets the old BudgetSnapshot of the mutation.
func withBudgetSnapshot(node *BudgetSnapshot) budgetsnapshotOption {
	return func(m *BudgetSnapshotMutation) {
		m.oldValue = func(context.Context) (*BudgetSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BudgetSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BudgetSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BudgetSnapshot entities.
func (m *BudgetSnapshotMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BudgetSnapshotMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BudgetSnapshotMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BudgetSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *BudgetSnapshotMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *BudgetSnapshotMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the BudgetSnapshot entity.
// If the BudgetSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetSnapshotMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *BudgetSnapshotMutation) ResetUserID() {
	m.user_id = nil
}

// SetDay sets the "day" field.
func (m *BudgetSnapshotMutation) SetDay(s string) {
	m.day = &s
}

// Day returns the value of the "day" field in the mutation.
func (m *BudgetSnapshotMutation) Day() (r string, exists bool) {
	v := m.day
	if v == nil {
		return
	}
	return *v, true
}

// OldDay returns the old "day" field's value of the BudgetSnapshot entity.
// If the BudgetSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetSnapshotMutation) OldDay(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDay: %w", err)
	}
	return oldValue.Day, nil
}

// ResetDay resets all changes to the "day" field.
func (m *BudgetSnapshotMutation) ResetDay() {
	m.day = nil
}

// SetTokensUsed sets the "tokens_used" field.
func (m *BudgetSnapshotMutation) SetTokensUsed(i int64) {
	m.tokens_used = &i
	m.addtokens_used = nil
}

// TokensUsed returns the value of the "tokens_used" field in the mutation.
func (m *BudgetSnapshotMutation) TokensUsed() (r int64, exists bool) {
	v := m.tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensUsed returns the old "tokens_used" field's value of the BudgetSnapshot entity.
// If the BudgetSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetSnapshotMutation) OldTokensUsed(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensUsed: %w", err)
	}
	return oldValue.TokensUsed, nil
}

// AddTokensUsed adds i to the "tokens_used" field.
func (m *BudgetSnapshotMutation) AddTokensUsed(i int64) {
	if m.addtokens_used != nil {
		*m.addtokens_used += i
	} else {
		m.addtokens_used = &i
	}
}

// AddedTokensUsed returns the value that was added to the "tokens_used" field in this mutation.
func (m *BudgetSnapshotMutation) AddedTokensUsed() (r int64, exists bool) {
	v := m.addtokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensUsed resets all changes to the "tokens_used" field.
func (m *BudgetSnapshotMutation) ResetTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
}

// SetSpendUsd sets the "spend_usd" field.
func (m *BudgetSnapshotMutation) SetSpendUsd(f float64) {
	m.spend_usd = &f
	m.addspend_usd = nil
}

// SpendUsd returns the value of the "spend_usd" field in the mutation.
func (m *BudgetSnapshotMutation) SpendUsd() (r float64, exists bool) {
	v := m.spend_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldSpendUsd returns the old "spend_usd" field's value of the BudgetSnapshot entity.
// If the BudgetSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetSnapshotMutation) OldSpendUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpendUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpendUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpendUsd: %w", err)
	}
	return oldValue.SpendUsd, nil
}

// AddSpendUsd adds f to the "spend_usd" field.
func (m *BudgetSnapshotMutation) AddSpendUsd(f float64) {
	if m.addspend_usd != nil {
		*m.addspend_usd += f
	} else {
		m.addspend_usd = &f
	}
}

// AddedSpendUsd returns the value that was added to the "spend_usd" field in this mutation.
func (m *BudgetSnapshotMutation) AddedSpendUsd() (r float64, exists bool) {
	v := m.addspend_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetSpendUsd resets all changes to the "spend_usd" field.
func (m *BudgetSnapshotMutation) ResetSpendUsd() {
	m.spend_usd = nil
	m.addspend_usd = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BudgetSnapshotMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BudgetSnapshotMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BudgetSnapshot entity.
// If the BudgetSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetSnapshotMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BudgetSnapshotMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the BudgetSnapshotMutation builder.
func (m *BudgetSnapshotMutation) Where(ps ...predicate.BudgetSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BudgetSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BudgetSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BudgetSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BudgetSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BudgetSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BudgetSnapshot).
func (m *BudgetSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BudgetSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user_id != nil {
		fields = append(fields, budgetsnapshot.FieldUserID)
	}
	if m.day != nil {
		fields = append(fields, budgetsnapshot.FieldDay)
	}
	if m.tokens_used != nil {
		fields = append(fields, budgetsnapshot.FieldTokensUsed)
	}
	if m.spend_usd != nil {
		fields = append(fields, budgetsnapshot.FieldSpendUsd)
	}
	if m.updated_at != nil {
		fields = append(fields, budgetsnapshot.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BudgetSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case budgetsnapshot.FieldUserID:
		return m.UserID()
	case budgetsnapshot.FieldDay:
		return m.Day()
	case budgetsnapshot.FieldTokensUsed:
		return m.TokensUsed()
	case budgetsnapshot.FieldSpendUsd:
		return m.SpendUsd()
	case budgetsnapshot.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BudgetSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case budgetsnapshot.FieldUserID:
		return m.OldUserID(ctx)
	case budgetsnapshot.FieldDay:
		return m.OldDay(ctx)
	case budgetsnapshot.FieldTokensUsed:
		return m.OldTokensUsed(ctx)
	case budgetsnapshot.FieldSpendUsd:
		return m.OldSpendUsd(ctx)
	case budgetsnapshot.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BudgetSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BudgetSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case budgetsnapshot.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case budgetsnapshot.FieldDay:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDay(v)
		return nil
	case budgetsnapshot.FieldTokensUsed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensUsed(v)
		return nil
	case budgetsnapshot.FieldSpendUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpendUsd(v)
		return nil
	case budgetsnapshot.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BudgetSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BudgetSnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addtokens_used != nil {
		fields = append(fields, budgetsnapshot.FieldTokensUsed)
	}
	if m.addspend_usd != nil {
		fields = append(fields, budgetsnapshot.FieldSpendUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BudgetSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case budgetsnapshot.FieldTokensUsed:
		return m.AddedTokensUsed()
	case budgetsnapshot.FieldSpendUsd:
		return m.AddedSpendUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BudgetSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case budgetsnapshot.FieldTokensUsed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensUsed(v)
		return nil
	case budgetsnapshot.FieldSpendUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSpendUsd(v)
		return nil
	}
	return fmt.Errorf("unknown BudgetSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BudgetSnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BudgetSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BudgetSnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BudgetSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BudgetSnapshotMutation) ResetField(name string) error {
	switch name {
	case budgetsnapshot.FieldUserID:
		m.ResetUserID()
		return nil
	case budgetsnapshot.FieldDay:
		m.ResetDay()
		return nil
	case budgetsnapshot.FieldTokensUsed:
		m.ResetTokensUsed()
		return nil
	case budgetsnapshot.FieldSpendUsd:
		m.ResetSpendUsd()
		return nil
	case budgetsnapshot.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown BudgetSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BudgetSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BudgetSnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BudgetSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BudgetSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BudgetSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BudgetSnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BudgetSnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BudgetSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BudgetSnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BudgetSnapshot edge %s", name)
}

// PipelineJobMutation represents an operation that mutates the PipelineJob nodes in the graph.
type PipelineJobMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	user_id           *uuid.UUID
	document_ref      *string
	format            *string
	stage             *string
	status            *string
	progress          *int32
	addprogress       *int32
	message           *string
	reason_code       *string
	tokens_used       *int64
	addtokens_used    *int64
	spend_usd         *float64
	addspend_usd      *float64
	created_at        *time.Time
	updated_at        *time.Time
	finished_at       *time.Time
	last_error        *string
	cancel_requested  *bool
	preferences       *json.RawMessage
	appendpreferences json.RawMessage
	clearedFields     map[string]struct{}
	guide             *uuid.UUID
	clearedguide      bool
	done              bool
	oldValue          func(context.Context) (*PipelineJob, error)
	predicates        []predicate.PipelineJob
}

var _ ent.Mutation = (*PipelineJobMutation)(nil)

// pipelinejobOption allows management of the mutation configuration using functional options.
type pipelinejobOption func(*PipelineJobMutation)

// newPipelineJobMutation creates new mutation for the PipelineJob entity.
func newPipelineJobMutation(c config, op Op, opts ...pipelinejobOption) *PipelineJobMutation {
	m := &PipelineJobMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineJobID sets the ID field of the mutation.
func withPipelineJobID(id uuid.UUID) pipelinejobOption {
	return func(m *PipelineJobMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineJob
		)
		m.oldValue = func(ctx context.Context) (*PipelineJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineJob sets the old PipelineJob of the mutation.
func withPipelineJob(node *PipelineJob) pipelinejobOption {
	return func(m *PipelineJobMutation) {
		m.oldValue = func(context.Context) (*PipelineJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PipelineJob entities.
func (m *PipelineJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *PipelineJobMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PipelineJobMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PipelineJobMutation) ResetUserID() {
	m.user_id = nil
}

// SetDocumentRef sets the "document_ref" field.
func (m *PipelineJobMutation) SetDocumentRef(s string) {
	m.document_ref = &s
}

// DocumentRef returns the value of the "document_ref" field in the mutation.
func (m *PipelineJobMutation) DocumentRef() (r string, exists bool) {
	v := m.document_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentRef returns the old "document_ref" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldDocumentRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentRef: %w", err)
	}
	return oldValue.DocumentRef, nil
}

// ResetDocumentRef resets all changes to the "document_ref" field.
func (m *PipelineJobMutation) ResetDocumentRef() {
	m.document_ref = nil
}

// SetFormat sets the "format" field.
func (m *PipelineJobMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *PipelineJobMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *PipelineJobMutation) ResetFormat() {
	m.format = nil
}

// SetStage sets the "stage" field.
func (m *PipelineJobMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *PipelineJobMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *PipelineJobMutation) ResetStage() {
	m.stage = nil
}

// SetStatus sets the "status" field.
func (m *PipelineJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *PipelineJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PipelineJobMutation) ResetStatus() {
	m.status = nil
}

// SetProgress sets the "progress" field.
func (m *PipelineJobMutation) SetProgress(i int32) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *PipelineJobMutation) Progress() (r int32, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldProgress(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *PipelineJobMutation) AddProgress(i int32) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *PipelineJobMutation) AddedProgress() (r int32, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *PipelineJobMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetMessage sets the "message" field.
func (m *PipelineJobMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *PipelineJobMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ClearMessage clears the value of the "message" field.
func (m *PipelineJobMutation) ClearMessage() {
	m.message = nil
	m.clearedFields[pipelinejob.FieldMessage] = struct{}{}
}

// MessageCleared returns if the "message" field was cleared in this mutation.
func (m *PipelineJobMutation) MessageCleared() bool {
	_, ok := m.clearedFields[pipelinejob.FieldMessage]
	return ok
}

// ResetMessage resets all changes to the "message" field.
func (m *PipelineJobMutation) ResetMessage() {
	m.message = nil
	delete(m.clearedFields, pipelinejob.FieldMessage)
}

// SetReasonCode sets the "reason_code" field.
func (m *PipelineJobMutation) SetReasonCode(s string) {
	m.reason_code = &s
}

// ReasonCode returns the value of the "reason_code" field in the mutation.
func (m *PipelineJobMutation) ReasonCode() (r string, exists bool) {
	v := m.reason_code
	if v == nil {
		return
	}
	return *v, true
}

// OldReasonCode returns the old "reason_code" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldReasonCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasonCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasonCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasonCode: %w", err)
	}
	return oldValue.ReasonCode, nil
}

// ClearReasonCode clears the value of the "reason_code" field.
func (m *PipelineJobMutation) ClearReasonCode() {
	m.reason_code = nil
	m.clearedFields[pipelinejob.FieldReasonCode] = struct{}{}
}

// ReasonCodeCleared returns if the "reason_code" field was cleared in this mutation.
func (m *PipelineJobMutation) ReasonCodeCleared() bool {
	_, ok := m.clearedFields[pipelinejob.FieldReasonCode]
	return ok
}

// ResetReasonCode resets all changes to the "reason_code" field.
func (m *PipelineJobMutation) ResetReasonCode() {
	m.reason_code = nil
	delete(m.clearedFields, pipelinejob.FieldReasonCode)
}

// SetTokensUsed sets the "tokens_used" field.
func (m *PipelineJobMutation) SetTokensUsed(i int64) {
	m.tokens_used = &i
	m.addtokens_used = nil
}

// TokensUsed returns the value of the "tokens_used" field in the mutation.
func (m *PipelineJobMutation) TokensUsed() (r int64, exists bool) {
	v := m.tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensUsed returns the old "tokens_used" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldTokensUsed(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensUsed: %w", err)
	}
	return oldValue.TokensUsed, nil
}

// AddTokensUsed adds i to the "tokens_used" field.
func (m *PipelineJobMutation) AddTokensUsed(i int64) {
	if m.addtokens_used != nil {
		*m.addtokens_used += i
	} else {
		m.addtokens_used = &i
	}
}

// AddedTokensUsed returns the value that was added to the "tokens_used" field in this mutation.
func (m *PipelineJobMutation) AddedTokensUsed() (r int64, exists bool) {
	v := m.addtokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensUsed resets all changes to the "tokens_used" field.
func (m *PipelineJobMutation) ResetTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
}

// SetSpendUsd sets the "spend_usd" field.
func (m *PipelineJobMutation) SetSpendUsd(f float64) {
	m.spend_usd = &f
	m.addspend_usd = nil
}

// SpendUsd returns the value of the "spend_usd" field in the mutation.
func (m *PipelineJobMutation) SpendUsd() (r float64, exists bool) {
	v := m.spend_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldSpendUsd returns the old "spend_usd" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldSpendUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpendUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpendUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpendUsd: %w", err)
	}
	return oldValue.SpendUsd, nil
}

// AddSpendUsd adds f to the "spend_usd" field.
func (m *PipelineJobMutation) AddSpendUsd(f float64) {
	if m.addspend_usd != nil {
		*m.addspend_usd += f
	} else {
		m.addspend_usd = &f
	}
}

// AddedSpendUsd returns the value that was added to the "spend_usd" field in this mutation.
func (m *PipelineJobMutation) AddedSpendUsd() (r float64, exists bool) {
	v := m.addspend_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetSpendUsd resets all changes to the "spend_usd" field.
func (m *PipelineJobMutation) ResetSpendUsd() {
	m.spend_usd = nil
	m.addspend_usd = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PipelineJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PipelineJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PipelineJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PipelineJobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PipelineJobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PipelineJobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *PipelineJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *PipelineJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *PipelineJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[pipelinejob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *PipelineJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[pipelinejob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *PipelineJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, pipelinejob.FieldFinishedAt)
}

// SetLastError sets the "last_error" field.
func (m *PipelineJobMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *PipelineJobMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *PipelineJobMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[pipelinejob.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *PipelineJobMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[pipelinejob.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *PipelineJobMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, pipelinejob.FieldLastError)
}

// SetGuideID sets the "guide_id" field.
func (m *PipelineJobMutation) SetGuideID(u uuid.UUID) {
	m.guide = &u
}

// GuideID returns the value of the "guide_id" field in the mutation.
func (m *PipelineJobMutation) GuideID() (r uuid.UUID, exists bool) {
	v := m.guide
	if v == nil {
		return
	}
	return *v, true
}

// OldGuideID returns the old "guide_id" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldGuideID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGuideID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGuideID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGuideID: %w", err)
	}
	return oldValue.GuideID, nil
}

// ClearGuideID clears the value of the "guide_id" field.
func (m *PipelineJobMutation) ClearGuideID() {
	m.guide = nil
	m.clearedFields[pipelinejob.FieldGuideID] = struct{}{}
}

// GuideIDCleared returns if the "guide_id" field was cleared in this mutation.
func (m *PipelineJobMutation) GuideIDCleared() bool {
	_, ok := m.clearedFields[pipelinejob.FieldGuideID]
	return ok
}

// ResetGuideID resets all changes to the "guide_id" field.
func (m *PipelineJobMutation) ResetGuideID() {
	m.guide = nil
	delete(m.clearedFields, pipelinejob.FieldGuideID)
}

// SetCancelRequested sets the "cancel_requested" field.
func (m *PipelineJobMutation) SetCancelRequested(b bool) {
	m.cancel_requested = &b
}

// CancelRequested returns the value of the "cancel_requested" field in the mutation.
func (m *PipelineJobMutation) CancelRequested() (r bool, exists bool) {
	v := m.cancel_requested
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelRequested returns the old "cancel_requested" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldCancelRequested(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelRequested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelRequested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelRequested: %w", err)
	}
	return oldValue.CancelRequested, nil
}

// ResetCancelRequested resets all changes to the "cancel_requested" field.
func (m *PipelineJobMutation) ResetCancelRequested() {
	m.cancel_requested = nil
}

// SetPreferences sets the "preferences" field.
func (m *PipelineJobMutation) SetPreferences(jm json.RawMessage) {
	m.preferences = &jm
	m.appendpreferences = nil
}

// Preferences returns the value of the "preferences" field in the mutation.
func (m *PipelineJobMutation) Preferences() (r json.RawMessage, exists bool) {
	v := m.preferences
	if v == nil {
		return
	}
	return *v, true
}

// OldPreferences returns the old "preferences" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldPreferences(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreferences is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreferences requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreferences: %w", err)
	}
	return oldValue.Preferences, nil
}

// AppendPreferences adds jm to the "preferences" field.
func (m *PipelineJobMutation) AppendPreferences(jm json.RawMessage) {
	m.appendpreferences = append(m.appendpreferences, jm...)
}

// AppendedPreferences returns the list of values that were appended to the "preferences" field in this mutation.
func (m *PipelineJobMutation) AppendedPreferences() (json.RawMessage, bool) {
	if len(m.appendpreferences) == 0 {
		return nil, false
	}
	return m.appendpreferences, true
}

// ClearPreferences clears the value of the "preferences" field.
func (m *PipelineJobMutation) ClearPreferences() {
	m.preferences = nil
	m.appendpreferences = nil
	m.clearedFields[pipelinejob.FieldPreferences] = struct{}{}
}

// PreferencesCleared returns if the "preferences" field was cleared in this mutation.
func (m *PipelineJobMutation) PreferencesCleared() bool {
	_, ok := m.clearedFields[pipelinejob.FieldPreferences]
	return ok
}

// ResetPreferences resets all changes to the "preferences" field.
func (m *PipelineJobMutation) ResetPreferences() {
	m.preferences = nil
	m.appendpreferences = nil
	delete(m.clearedFields, pipelinejob.FieldPreferences)
}

// ClearGuide clears the "guide" edge to the StudyGuide entity.
func (m *PipelineJobMutation) ClearGuide() {
	m.clearedguide = true
	m.clearedFields[pipelinejob.FieldGuideID] = struct{}{}
}

// GuideCleared reports if the "guide" edge to the StudyGuide entity was cleared.
func (m *PipelineJobMutation) GuideCleared() bool {
	return m.GuideIDCleared() || m.clearedguide
}

// GuideIDs returns the "guide" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GuideID instead. It exists only for internal usage by the builders.
func (m *PipelineJobMutation) GuideIDs() (ids []uuid.UUID) {
	if id := m.guide; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGuide resets all changes to the "guide" edge.
func (m *PipelineJobMutation) ResetGuide() {
	m.guide = nil
	m.clearedguide = false
}

// Where appends a list predicates to the PipelineJobMutation builder.
func (m *PipelineJobMutation) Where(ps ...predicate.PipelineJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineJob).
func (m *PipelineJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineJobMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.user_id != nil {
		fields = append(fields, pipelinejob.FieldUserID)
	}
	if m.document_ref != nil {
		fields = append(fields, pipelinejob.FieldDocumentRef)
	}
	if m.format != nil {
		fields = append(fields, pipelinejob.FieldFormat)
	}
	if m.stage != nil {
		fields = append(fields, pipelinejob.FieldStage)
	}
	if m.status != nil {
		fields = append(fields, pipelinejob.FieldStatus)
	}
	if m.progress != nil {
		fields = append(fields, pipelinejob.FieldProgress)
	}
	if m.message != nil {
		fields = append(fields, pipelinejob.FieldMessage)
	}
	if m.reason_code != nil {
		fields = append(fields, pipelinejob.FieldReasonCode)
	}
	if m.tokens_used != nil {
		fields = append(fields, pipelinejob.FieldTokensUsed)
	}
	if m.spend_usd != nil {
		fields = append(fields, pipelinejob.FieldSpendUsd)
	}
	if m.created_at != nil {
		fields = append(fields, pipelinejob.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, pipelinejob.FieldUpdatedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, pipelinejob.FieldFinishedAt)
	}
	if m.last_error != nil {
		fields = append(fields, pipelinejob.FieldLastError)
	}
	if m.guide != nil {
		fields = append(fields, pipelinejob.FieldGuideID)
	}
	if m.cancel_requested != nil {
		fields = append(fields, pipelinejob.FieldCancelRequested)
	}
	if m.preferences != nil {
		fields = append(fields, pipelinejob.FieldPreferences)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinejob.FieldUserID:
		return m.UserID()
	case pipelinejob.FieldDocumentRef:
		return m.DocumentRef()
	case pipelinejob.FieldFormat:
		return m.Format()
	case pipelinejob.FieldStage:
		return m.Stage()
	case pipelinejob.FieldStatus:
		return m.Status()
	case pipelinejob.FieldProgress:
		return m.Progress()
	case pipelinejob.FieldMessage:
		return m.Message()
	case pipelinejob.FieldReasonCode:
		return m.ReasonCode()
	case pipelinejob.FieldTokensUsed:
		return m.TokensUsed()
	case pipelinejob.FieldSpendUsd:
		return m.SpendUsd()
	case pipelinejob.FieldCreatedAt:
		return m.CreatedAt()
	case pipelinejob.FieldUpdatedAt:
		return m.UpdatedAt()
	case pipelinejob.FieldFinishedAt:
		return m.FinishedAt()
	case pipelinejob.FieldLastError:
		return m.LastError()
	case pipelinejob.FieldGuideID:
		return m.GuideID()
	case pipelinejob.FieldCancelRequested:
		return m.CancelRequested()
	case pipelinejob.FieldPreferences:
		return m.Preferences()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinejob.FieldUserID:
		return m.OldUserID(ctx)
	case pipelinejob.FieldDocumentRef:
		return m.OldDocumentRef(ctx)
	case pipelinejob.FieldFormat:
		return m.OldFormat(ctx)
	case pipelinejob.FieldStage:
		return m.OldStage(ctx)
	case pipelinejob.FieldStatus:
		return m.OldStatus(ctx)
	case pipelinejob.FieldProgress:
		return m.OldProgress(ctx)
	case pipelinejob.FieldMessage:
		return m.OldMessage(ctx)
	case pipelinejob.FieldReasonCode:
		return m.OldReasonCode(ctx)
	case pipelinejob.FieldTokensUsed:
		return m.OldTokensUsed(ctx)
	case pipelinejob.FieldSpendUsd:
		return m.OldSpendUsd(ctx)
	case pipelinejob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pipelinejob.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case pipelinejob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case pipelinejob.FieldLastError:
		return m.OldLastError(ctx)
	case pipelinejob.FieldGuideID:
		return m.OldGuideID(ctx)
	case pipelinejob.FieldCancelRequested:
		return m.OldCancelRequested(ctx)
	case pipelinejob.FieldPreferences:
		return m.OldPreferences(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinejob.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case pipelinejob.FieldDocumentRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentRef(v)
		return nil
	case pipelinejob.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case pipelinejob.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case pipelinejob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pipelinejob.FieldProgress:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case pipelinejob.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case pipelinejob.FieldReasonCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasonCode(v)
		return nil
	case pipelinejob.FieldTokensUsed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensUsed(v)
		return nil
	case pipelinejob.FieldSpendUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpendUsd(v)
		return nil
	case pipelinejob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pipelinejob.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case pipelinejob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case pipelinejob.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case pipelinejob.FieldGuideID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGuideID(v)
		return nil
	case pipelinejob.FieldCancelRequested:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelRequested(v)
		return nil
	case pipelinejob.FieldPreferences:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreferences(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineJobMutation) AddedFields() []string {
	var fields []string
	if m.addprogress != nil {
		fields = append(fields, pipelinejob.FieldProgress)
	}
	if m.addtokens_used != nil {
		fields = append(fields, pipelinejob.FieldTokensUsed)
	}
	if m.addspend_usd != nil {
		fields = append(fields, pipelinejob.FieldSpendUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pipelinejob.FieldProgress:
		return m.AddedProgress()
	case pipelinejob.FieldTokensUsed:
		return m.AddedTokensUsed()
	case pipelinejob.FieldSpendUsd:
		return m.AddedSpendUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pipelinejob.FieldProgress:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	case pipelinejob.FieldTokensUsed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensUsed(v)
		return nil
	case pipelinejob.FieldSpendUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSpendUsd(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipelinejob.FieldMessage) {
		fields = append(fields, pipelinejob.FieldMessage)
	}
	if m.FieldCleared(pipelinejob.FieldReasonCode) {
		fields = append(fields, pipelinejob.FieldReasonCode)
	}
	if m.FieldCleared(pipelinejob.FieldFinishedAt) {
		fields = append(fields, pipelinejob.FieldFinishedAt)
	}
	if m.FieldCleared(pipelinejob.FieldLastError) {
		fields = append(fields, pipelinejob.FieldLastError)
	}
	if m.FieldCleared(pipelinejob.FieldGuideID) {
		fields = append(fields, pipelinejob.FieldGuideID)
	}
	if m.FieldCleared(pipelinejob.FieldPreferences) {
		fields = append(fields, pipelinejob.FieldPreferences)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineJobMutation) ClearField(name string) error {
	switch name {
	case pipelinejob.FieldMessage:
		m.ClearMessage()
		return nil
	case pipelinejob.FieldReasonCode:
		m.ClearReasonCode()
		return nil
	case pipelinejob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case pipelinejob.FieldLastError:
		m.ClearLastError()
		return nil
	case pipelinejob.FieldGuideID:
		m.ClearGuideID()
		return nil
	case pipelinejob.FieldPreferences:
		m.ClearPreferences()
		return nil
	}
	return fmt.Errorf("unknown PipelineJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineJobMutation) ResetField(name string) error {
	switch name {
	case pipelinejob.FieldUserID:
		m.ResetUserID()
		return nil
	case pipelinejob.FieldDocumentRef:
		m.ResetDocumentRef()
		return nil
	case pipelinejob.FieldFormat:
		m.ResetFormat()
		return nil
	case pipelinejob.FieldStage:
		m.ResetStage()
		return nil
	case pipelinejob.FieldStatus:
		m.ResetStatus()
		return nil
	case pipelinejob.FieldProgress:
		m.ResetProgress()
		return nil
	case pipelinejob.FieldMessage:
		m.ResetMessage()
		return nil
	case pipelinejob.FieldReasonCode:
		m.ResetReasonCode()
		return nil
	case pipelinejob.FieldTokensUsed:
		m.ResetTokensUsed()
		return nil
	case pipelinejob.FieldSpendUsd:
		m.ResetSpendUsd()
		return nil
	case pipelinejob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pipelinejob.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case pipelinejob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case pipelinejob.FieldLastError:
		m.ResetLastError()
		return nil
	case pipelinejob.FieldGuideID:
		m.ResetGuideID()
		return nil
	case pipelinejob.FieldCancelRequested:
		m.ResetCancelRequested()
		return nil
	case pipelinejob.FieldPreferences:
		m.ResetPreferences()
		return nil
	}
	return fmt.Errorf("unknown PipelineJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.guide != nil {
		edges = append(edges, pipelinejob.EdgeGuide)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pipelinejob.EdgeGuide:
		if id := m.guide; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedguide {
		edges = append(edges, pipelinejob.EdgeGuide)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineJobMutation) EdgeCleared(name string) bool {
	switch name {
	case pipelinejob.EdgeGuide:
		return m.clearedguide
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineJobMutation) ClearEdge(name string) error {
	switch name {
	case pipelinejob.EdgeGuide:
		m.ClearGuide()
		return nil
	}
	return fmt.Errorf("unknown PipelineJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineJobMutation) ResetEdge(name string) error {
	switch name {
	case pipelinejob.EdgeGuide:
		m.ResetGuide()
		return nil
	}
	return fmt.Errorf("unknown PipelineJob edge %s", name)
}

// StudyGuideMutation represents an operation that mutates the StudyGuide nodes in the graph.
type StudyGuideMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	job_id            *uuid.UUID
	user_id           *uuid.UUID
	title             *string
	content           *json.RawMessage
	appendcontent     json.RawMessage
	detail_level      *string
	question_count    *int
	addquestion_count *int
	concept_count     *int
	addconcept_count  *int
	qa_score          *float32
	addqa_score       *float32
	generated_at      *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*StudyGuide, error)
	predicates        []predicate.StudyGuide
}

var _ ent.Mutation = (*StudyGuideMutation)(nil)

// studyguideOption allows management of the mutation configuration using functional options.
type studyguideOption func(*StudyGuideMutation)

// newStudyGuideMutation creates new mutation for the StudyGuide entity.
func newStudyGuideMutation(c config, op Op, opts ...studyguideOption) *StudyGuideMutation {
	m := &StudyGuideMutation{
		config:        c,
		op:            op,
		typ:           TypeStudyGuide,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudyGuideID sets the ID field of the mutation.
func withStudyGuideID(id uuid.UUID) studyguideOption {
	return func(m *StudyGuideMutation) {
		var (
			err   error
			once  sync.Once
			value *StudyGuide
		)
		m.oldValue = func(ctx context.Context) (*StudyGuide, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StudyGuide.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudyGuide sets the old StudyGuide of the mutation.
func withStudyGuide(node *StudyGuide) studyguideOption {
	return func(m *StudyGuideMutation) {
		m.oldValue = func(context.Context) (*StudyGuide, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudyGuideMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudyGuideMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StudyGuide entities.
func (m *StudyGuideMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudyGuideMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudyGuideMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StudyGuide.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *StudyGuideMutation) SetJobID(u uuid.UUID) {
	m.job_id = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *StudyGuideMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the StudyGuide entity.
// If the StudyGuide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyGuideMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *StudyGuideMutation) ResetJobID() {
	m.job_id = nil
}

// SetUserID sets the "user_id" field.
func (m *StudyGuideMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *StudyGuideMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the StudyGuide entity.
// If the StudyGuide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyGuideMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *StudyGuideMutation) ResetUserID() {
	m.user_id = nil
}

// SetTitle sets the "title" field.
func (m *StudyGuideMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *StudyGuideMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the StudyGuide entity.
// If the StudyGuide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyGuideMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *StudyGuideMutation) ResetTitle() {
	m.title = nil
}

// SetContent sets the "content" field.
func (m *StudyGuideMutation) SetContent(jm json.RawMessage) {
	m.content = &jm
	m.appendcontent = nil
}

// Content returns the value of the "content" field in the mutation.
func (m *StudyGuideMutation) Content() (r json.RawMessage, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the StudyGuide entity.
// If the StudyGuide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyGuideMutation) OldContent(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// AppendContent adds jm to the "content" field.
func (m *StudyGuideMutation) AppendContent(jm json.RawMessage) {
	m.appendcontent = append(m.appendcontent, jm...)
}

// AppendedContent returns the list of values that were appended to the "content" field in this mutation.
func (m *StudyGuideMutation) AppendedContent() (json.RawMessage, bool) {
	if len(m.appendcontent) == 0 {
		return nil, false
	}
	return m.appendcontent, true
}

// ResetContent resets all changes to the "content" field.
func (m *StudyGuideMutation) ResetContent() {
	m.content = nil
	m.appendcontent = nil
}

// SetDetailLevel sets the "detail_level" field.
func (m *StudyGuideMutation) SetDetailLevel(s string) {
	m.detail_level = &s
}

// DetailLevel returns the value of the "detail_level" field in the mutation.
func (m *StudyGuideMutation) DetailLevel() (r string, exists bool) {
	v := m.detail_level
	if v == nil {
		return
	}
	return *v, true
}

// OldDetailLevel returns the old "detail_level" field's value of the StudyGuide entity.
// If the StudyGuide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyGuideMutation) OldDetailLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetailLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetailLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetailLevel: %w", err)
	}
	return oldValue.DetailLevel, nil
}

// ClearDetailLevel clears the value of the "detail_level" field.
func (m *StudyGuideMutation) ClearDetailLevel() {
	m.detail_level = nil
	m.clearedFields[studyguide.FieldDetailLevel] = struct{}{}
}

// DetailLevelCleared returns if the "detail_level" field was cleared in this mutation.
func (m *StudyGuideMutation) DetailLevelCleared() bool {
	_, ok := m.clearedFields[studyguide.FieldDetailLevel]
	return ok
}

// ResetDetailLevel resets all changes to the "detail_level" field.
func (m *StudyGuideMutation) ResetDetailLevel() {
	m.detail_level = nil
	delete(m.clearedFields, studyguide.FieldDetailLevel)
}

// SetQuestionCount sets the "question_count" field.
func (m *StudyGuideMutation) SetQuestionCount(i int) {
	m.question_count = &i
	m.addquestion_count = nil
}

// QuestionCount returns the value of the "question_count" field in the mutation.
func (m *StudyGuideMutation) QuestionCount() (r int, exists bool) {
	v := m.question_count
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionCount returns the old "question_count" field's value of the StudyGuide entity.
// If the StudyGuide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyGuideMutation) OldQuestionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionCount: %w", err)
	}
	return oldValue.QuestionCount, nil
}

// AddQuestionCount adds i to the "question_count" field.
func (m *StudyGuideMutation) AddQuestionCount(i int) {
	if m.addquestion_count != nil {
		*m.addquestion_count += i
	} else {
		m.addquestion_count = &i
	}
}

// AddedQuestionCount returns the value that was added to the "question_count" field in this mutation.
func (m *StudyGuideMutation) AddedQuestionCount() (r int, exists bool) {
	v := m.addquestion_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionCount resets all changes to the "question_count" field.
func (m *StudyGuideMutation) ResetQuestionCount() {
	m.question_count = nil
	m.addquestion_count = nil
}

// SetConceptCount sets the "concept_count" field.
func (m *StudyGuideMutation) SetConceptCount(i int) {
	m.concept_count = &i
	m.addconcept_count = nil
}

// ConceptCount returns the value of the "concept_count" field in the mutation.
func (m *StudyGuideMutation) ConceptCount() (r int, exists bool) {
	v := m.concept_count
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptCount returns the old "concept_count" field's value of the StudyGuide entity.
// If the StudyGuide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyGuideMutation) OldConceptCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptCount: %w", err)
	}
	return oldValue.ConceptCount, nil
}

// AddConceptCount adds i to the "concept_count" field.
func (m *StudyGuideMutation) AddConceptCount(i int) {
	if m.addconcept_count != nil {
		*m.addconcept_count += i
	} else {
		m.addconcept_count = &i
	}
}

// AddedConceptCount returns the value that was added to the "concept_count" field in this mutation.
func (m *StudyGuideMutation) AddedConceptCount() (r int, exists bool) {
	v := m.addconcept_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetConceptCount resets all changes to the "concept_count" field.
func (m *StudyGuideMutation) ResetConceptCount() {
	m.concept_count = nil
	m.addconcept_count = nil
}

// SetQaScore sets the "qa_score" field.
func (m *StudyGuideMutation) SetQaScore(f float32) {
	m.qa_score = &f
	m.addqa_score = nil
}

// QaScore returns the value of the "qa_score" field in the mutation.
func (m *StudyGuideMutation) QaScore() (r float32, exists bool) {
	v := m.qa_score
	if v == nil {
		return
	}
	return *v, true
}

// OldQaScore returns the old "qa_score" field's value of the StudyGuide entity.
// If the StudyGuide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyGuideMutation) OldQaScore(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQaScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQaScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQaScore: %w", err)
	}
	return oldValue.QaScore, nil
}

// AddQaScore adds f to the "qa_score" field.
func (m *StudyGuideMutation) AddQaScore(f float32) {
	if m.addqa_score != nil {
		*m.addqa_score += f
	} else {
		m.addqa_score = &f
	}
}

// AddedQaScore returns the value that was added to the "qa_score" field in this mutation.
func (m *StudyGuideMutation) AddedQaScore() (r float32, exists bool) {
	v := m.addqa_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetQaScore resets all changes to the "qa_score" field.
func (m *StudyGuideMutation) ResetQaScore() {
	m.qa_score = nil
	m.addqa_score = nil
}

// SetGeneratedAt sets the "generated_at" field.
func (m *StudyGuideMutation) SetGeneratedAt(t time.Time) {
	m.generated_at = &t
}

// GeneratedAt returns the value of the "generated_at" field in the mutation.
func (m *StudyGuideMutation) GeneratedAt() (r time.Time, exists bool) {
	v := m.generated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedAt returns the old "generated_at" field's value of the StudyGuide entity.
// If the StudyGuide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyGuideMutation) OldGeneratedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedAt: %w", err)
	}
	return oldValue.GeneratedAt, nil
}

// ResetGeneratedAt resets all changes to the "generated_at" field.
func (m *StudyGuideMutation) ResetGeneratedAt() {
	m.generated_at = nil
}

// Where appends a list predicates to the StudyGuideMutation builder.
func (m *StudyGuideMutation) Where(ps ...predicate.StudyGuide) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudyGuideMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudyGuideMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StudyGuide, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudyGuideMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudyGuideMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StudyGuide).
func (m *StudyGuideMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudyGuideMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.job_id != nil {
		fields = append(fields, studyguide.FieldJobID)
	}
	if m.user_id != nil {
		fields = append(fields, studyguide.FieldUserID)
	}
	if m.title != nil {
		fields = append(fields, studyguide.FieldTitle)
	}
	if m.content != nil {
		fields = append(fields, studyguide.FieldContent)
	}
	if m.detail_level != nil {
		fields = append(fields, studyguide.FieldDetailLevel)
	}
	if m.question_count != nil {
		fields = append(fields, studyguide.FieldQuestionCount)
	}
	if m.concept_count != nil {
		fields = append(fields, studyguide.FieldConceptCount)
	}
	if m.qa_score != nil {
		fields = append(fields, studyguide.FieldQaScore)
	}
	if m.generated_at != nil {
		fields = append(fields, studyguide.FieldGeneratedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudyGuideMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case studyguide.FieldJobID:
		return m.JobID()
	case studyguide.FieldUserID:
		return m.UserID()
	case studyguide.FieldTitle:
		return m.Title()
	case studyguide.FieldContent:
		return m.Content()
	case studyguide.FieldDetailLevel:
		return m.DetailLevel()
	case studyguide.FieldQuestionCount:
		return m.QuestionCount()
	case studyguide.FieldConceptCount:
		return m.ConceptCount()
	case studyguide.FieldQaScore:
		return m.QaScore()
	case studyguide.FieldGeneratedAt:
		return m.GeneratedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudyGuideMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case studyguide.FieldJobID:
		return m.OldJobID(ctx)
	case studyguide.FieldUserID:
		return m.OldUserID(ctx)
	case studyguide.FieldTitle:
		return m.OldTitle(ctx)
	case studyguide.FieldContent:
		return m.OldContent(ctx)
	case studyguide.FieldDetailLevel:
		return m.OldDetailLevel(ctx)
	case studyguide.FieldQuestionCount:
		return m.OldQuestionCount(ctx)
	case studyguide.FieldConceptCount:
		return m.OldConceptCount(ctx)
	case studyguide.FieldQaScore:
		return m.OldQaScore(ctx)
	case studyguide.FieldGeneratedAt:
		return m.OldGeneratedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StudyGuide field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudyGuideMutation) SetField(name string, value ent.Value) error {
	switch name {
	case studyguide.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case studyguide.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case studyguide.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case studyguide.FieldContent:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case studyguide.FieldDetailLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetailLevel(v)
		return nil
	case studyguide.FieldQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionCount(v)
		return nil
	case studyguide.FieldConceptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptCount(v)
		return nil
	case studyguide.FieldQaScore:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQaScore(v)
		return nil
	case studyguide.FieldGeneratedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StudyGuide field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudyGuideMutation) AddedFields() []string {
	var fields []string
	if m.addquestion_count != nil {
		fields = append(fields, studyguide.FieldQuestionCount)
	}
	if m.addconcept_count != nil {
		fields = append(fields, studyguide.FieldConceptCount)
	}
	if m.addqa_score != nil {
		fields = append(fields, studyguide.FieldQaScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudyGuideMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case studyguide.FieldQuestionCount:
		return m.AddedQuestionCount()
	case studyguide.FieldConceptCount:
		return m.AddedConceptCount()
	case studyguide.FieldQaScore:
		return m.AddedQaScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudyGuideMutation) AddField(name string, value ent.Value) error {
	switch name {
	case studyguide.FieldQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionCount(v)
		return nil
	case studyguide.FieldConceptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConceptCount(v)
		return nil
	case studyguide.FieldQaScore:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQaScore(v)
		return nil
	}
	return fmt.Errorf("unknown StudyGuide numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudyGuideMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(studyguide.FieldDetailLevel) {
		fields = append(fields, studyguide.FieldDetailLevel)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudyGuideMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudyGuideMutation) ClearField(name string) error {
	switch name {
	case studyguide.FieldDetailLevel:
		m.ClearDetailLevel()
		return nil
	}
	return fmt.Errorf("unknown StudyGuide nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudyGuideMutation) ResetField(name string) error {
	switch name {
	case studyguide.FieldJobID:
		m.ResetJobID()
		return nil
	case studyguide.FieldUserID:
		m.ResetUserID()
		return nil
	case studyguide.FieldTitle:
		m.ResetTitle()
		return nil
	case studyguide.FieldContent:
		m.ResetContent()
		return nil
	case studyguide.FieldDetailLevel:
		m.ResetDetailLevel()
		return nil
	case studyguide.FieldQuestionCount:
		m.ResetQuestionCount()
		return nil
	case studyguide.FieldConceptCount:
		m.ResetConceptCount()
		return nil
	case studyguide.FieldQaScore:
		m.ResetQaScore()
		return nil
	case studyguide.FieldGeneratedAt:
		m.ResetGeneratedAt()
		return nil
	}
	return fmt.Errorf("unknown StudyGuide field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudyGuideMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudyGuideMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudyGuideMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudyGuideMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudyGuideMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudyGuideMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudyGuideMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StudyGuide unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudyGuideMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StudyGuide edge %s", name)
}
