// Code generated by ent, DO NOT EDIT.

package pipelinejob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the pipelinejob type in the database.
	Label = "pipeline_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldDocumentRef holds the string denoting the document_ref field in the database.
	FieldDocumentRef = "document_ref"
	// FieldFormat holds the string denoting the format field in the database.
	FieldFormat = "format"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldProgress holds the string denoting the progress field in the database.
	FieldProgress = "progress"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldReasonCode holds the string denoting the reason_code field in the database.
	FieldReasonCode = "reason_code"
	// FieldTokensUsed holds the string denoting the tokens_used field in the database.
	FieldTokensUsed = "tokens_used"
	// FieldSpendUsd holds the string denoting the spend_usd field in the database.
	FieldSpendUsd = "spend_usd"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldGuideID holds the string denoting the guide_id field in the database.
	FieldGuideID = "guide_id"
	// FieldCancelRequested holds the string denoting the cancel_requested field in the database.
	FieldCancelRequested = "cancel_requested"
	// FieldPreferences holds the string denoting the preferences field in the database.
	FieldPreferences = "preferences"
	// EdgeGuide holds the string denoting the guide edge name in mutations.
	EdgeGuide = "guide"
	// Table holds the table name of the pipelinejob in the database.
	Table = "pipeline_job"
	// GuideTable is the table that holds the guide relation/edge.
	GuideTable = "pipeline_job"
	// GuideInverseTable is the table name for the StudyGuide entity.
	// It exists in this package in order to avoid circular dependency with the "studyguide" package.
	GuideInverseTable = "study_guide"
	// GuideColumn is the table column denoting the guide relation/edge.
	GuideColumn = "guide_id"
)

// Columns holds all SQL columns for pipelinejob fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldDocumentRef,
	FieldFormat,
	FieldStage,
	FieldStatus,
	FieldProgress,
	FieldMessage,
	FieldReasonCode,
	FieldTokensUsed,
	FieldSpendUsd,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldFinishedAt,
	FieldLastError,
	FieldGuideID,
	FieldCancelRequested,
	FieldPreferences,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DocumentRefValidator is a validator for the "document_ref" field. It is called by the builders before save.
	DocumentRefValidator func(string) error
	// FormatValidator is a validator for the "format" field. It is called by the builders before save.
	FormatValidator func(string) error
	// StageValidator is a validator for the "stage" field. It is called by the builders before save.
	StageValidator func(string) error
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultProgress holds the default value on creation for the "progress" field.
	DefaultProgress int32
	// DefaultTokensUsed holds the default value on creation for the "tokens_used" field.
	DefaultTokensUsed int64
	// DefaultSpendUsd holds the default value on creation for the "spend_usd" field.
	DefaultSpendUsd float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultCancelRequested holds the default value on creation for the "cancel_requested" field.
	DefaultCancelRequested bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the PipelineJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByDocumentRef orders the results by the document_ref field.
func ByDocumentRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentRef, opts...).ToFunc()
}

// ByFormat orders the results by the format field.
func ByFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFormat, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByProgress orders the results by the progress field.
func ByProgress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgress, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByReasonCode orders the results by the reason_code field.
func ByReasonCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasonCode, opts...).ToFunc()
}

// ByTokensUsed orders the results by the tokens_used field.
func ByTokensUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensUsed, opts...).ToFunc()
}

// BySpendUsd orders the results by the spend_usd field.
func BySpendUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpendUsd, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByGuideID orders the results by the guide_id field.
func ByGuideID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGuideID, opts...).ToFunc()
}

// ByCancelRequested orders the results by the cancel_requested field.
func ByCancelRequested(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelRequested, opts...).ToFunc()
}

// ByGuideField orders the results by guide field.
func ByGuideField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGuideStep(), sql.OrderByField(field, opts...))
	}
}
func newGuideStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GuideInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, GuideTable, GuideColumn),
	)
}
