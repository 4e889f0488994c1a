// Code generated by ent, DO NOT EDIT.

package pipelinejob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldUserID, v))
}

// DocumentRef applies equality check predicate on the "document_ref" field. It's identical to DocumentRefEQ.
func DocumentRef(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldDocumentRef, v))
}

// Format applies equality check predicate on the "format" field. It's identical to FormatEQ.
func Format(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldFormat, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldStage, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldStatus, v))
}

// Progress applies equality check predicate on the "progress" field. It's identical to ProgressEQ.
func Progress(v int32) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldProgress, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldMessage, v))
}

// ReasonCode applies equality check predicate on the "reason_code" field. It's identical to ReasonCodeEQ.
func ReasonCode(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldReasonCode, v))
}

// TokensUsed applies equality check predicate on the "tokens_used" field. It's identical to TokensUsedEQ.
func TokensUsed(v int64) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldTokensUsed, v))
}

// SpendUsd applies equality check predicate on the "spend_usd" field. It's identical to SpendUsdEQ.
func SpendUsd(v float64) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldSpendUsd, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldFinishedAt, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldLastError, v))
}

// GuideID applies equality check predicate on the "guide_id" field. It's identical to GuideIDEQ.
func GuideID(v uuid.UUID) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldGuideID, v))
}

// CancelRequested applies equality check predicate on the "cancel_requested" field. It's identical to CancelRequestedEQ.
func CancelRequested(v bool) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldCancelRequested, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLTE(FieldUserID, v))
}

// DocumentRefEQ applies the EQ predicate on the "document_ref" field.
func DocumentRefEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldDocumentRef, v))
}

// DocumentRefNEQ applies the NEQ predicate on the "document_ref" field.
func DocumentRefNEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNEQ(FieldDocumentRef, v))
}

// DocumentRefIn applies the In predicate on the "document_ref" field.
func DocumentRefIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIn(FieldDocumentRef, vs...))
}

// DocumentRefNotIn applies the NotIn predicate on the "document_ref" field.
func DocumentRefNotIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotIn(FieldDocumentRef, vs...))
}

// DocumentRefGT applies the GT predicate on the "document_ref" field.
func DocumentRefGT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGT(FieldDocumentRef, v))
}

// DocumentRefGTE applies the GTE predicate on the "document_ref" field.
func DocumentRefGTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGTE(FieldDocumentRef, v))
}

// DocumentRefLT applies the LT predicate on the "document_ref" field.
func DocumentRefLT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLT(FieldDocumentRef, v))
}

// DocumentRefLTE applies the LTE predicate on the "document_ref" field.
func DocumentRefLTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLTE(FieldDocumentRef, v))
}

// DocumentRefContains applies the Contains predicate on the "document_ref" field.
func DocumentRefContains(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContains(FieldDocumentRef, v))
}

// DocumentRefHasPrefix applies the HasPrefix predicate on the "document_ref" field.
func DocumentRefHasPrefix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasPrefix(FieldDocumentRef, v))
}

// DocumentRefHasSuffix applies the HasSuffix predicate on the "document_ref" field.
func DocumentRefHasSuffix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasSuffix(FieldDocumentRef, v))
}

// DocumentRefEqualFold applies the EqualFold predicate on the "document_ref" field.
func DocumentRefEqualFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEqualFold(FieldDocumentRef, v))
}

// DocumentRefContainsFold applies the ContainsFold predicate on the "document_ref" field.
func DocumentRefContainsFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContainsFold(FieldDocumentRef, v))
}

// FormatEQ applies the EQ predicate on the "format" field.
func FormatEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldFormat, v))
}

// FormatNEQ applies the NEQ predicate on the "format" field.
func FormatNEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNEQ(FieldFormat, v))
}

// FormatIn applies the In predicate on the "format" field.
func FormatIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIn(FieldFormat, vs...))
}

// FormatNotIn applies the NotIn predicate on the "format" field.
func FormatNotIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotIn(FieldFormat, vs...))
}

// FormatGT applies the GT predicate on the "format" field.
func FormatGT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGT(FieldFormat, v))
}

// FormatGTE applies the GTE predicate on the "format" field.
func FormatGTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGTE(FieldFormat, v))
}

// FormatLT applies the LT predicate on the "format" field.
func FormatLT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLT(FieldFormat, v))
}

// FormatLTE applies the LTE predicate on the "format" field.
func FormatLTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLTE(FieldFormat, v))
}

// FormatContains applies the Contains predicate on the "format" field.
func FormatContains(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContains(FieldFormat, v))
}

// FormatHasPrefix applies the HasPrefix predicate on the "format" field.
func FormatHasPrefix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasPrefix(FieldFormat, v))
}

// FormatHasSuffix applies the HasSuffix predicate on the "format" field.
func FormatHasSuffix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasSuffix(FieldFormat, v))
}

// FormatEqualFold applies the EqualFold predicate on the "format" field.
func FormatEqualFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEqualFold(FieldFormat, v))
}

// FormatContainsFold applies the ContainsFold predicate on the "format" field.
func FormatContainsFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContainsFold(FieldFormat, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLTE(FieldStage, v))
}

// StageContains applies the Contains predicate on the "stage" field.
func StageContains(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContains(FieldStage, v))
}

// StageHasPrefix applies the HasPrefix predicate on the "stage" field.
func StageHasPrefix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasPrefix(FieldStage, v))
}

// StageHasSuffix applies the HasSuffix predicate on the "stage" field.
func StageHasSuffix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasSuffix(FieldStage, v))
}

// StageEqualFold applies the EqualFold predicate on the "stage" field.
func StageEqualFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEqualFold(FieldStage, v))
}

// StageContainsFold applies the ContainsFold predicate on the "stage" field.
func StageContainsFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContainsFold(FieldStage, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContainsFold(FieldStatus, v))
}

// ProgressEQ applies the EQ predicate on the "progress" field.
func ProgressEQ(v int32) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldProgress, v))
}

// ProgressNEQ applies the NEQ predicate on the "progress" field.
func ProgressNEQ(v int32) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNEQ(FieldProgress, v))
}

// ProgressIn applies the In predicate on the "progress" field.
func ProgressIn(vs ...int32) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIn(FieldProgress, vs...))
}

// ProgressNotIn applies the NotIn predicate on the "progress" field.
func ProgressNotIn(vs ...int32) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotIn(FieldProgress, vs...))
}

// ProgressGT applies the GT predicate on the "progress" field.
func ProgressGT(v int32) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGT(FieldProgress, v))
}

// ProgressGTE applies the GTE predicate on the "progress" field.
func ProgressGTE(v int32) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGTE(FieldProgress, v))
}

// ProgressLT applies the LT predicate on the "progress" field.
func ProgressLT(v int32) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLT(FieldProgress, v))
}

// ProgressLTE applies the LTE predicate on the "progress" field.
func ProgressLTE(v int32) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLTE(FieldProgress, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageIsNil applies the IsNil predicate on the "message" field.
func MessageIsNil() predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIsNull(FieldMessage))
}

// MessageNotNil applies the NotNil predicate on the "message" field.
func MessageNotNil() predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotNull(FieldMessage))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContainsFold(FieldMessage, v))
}

// ReasonCodeEQ applies the EQ predicate on the "reason_code" field.
func ReasonCodeEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldReasonCode, v))
}

// ReasonCodeNEQ applies the NEQ predicate on the "reason_code" field.
func ReasonCodeNEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNEQ(FieldReasonCode, v))
}

// ReasonCodeIn applies the In predicate on the "reason_code" field.
func ReasonCodeIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIn(FieldReasonCode, vs...))
}

// ReasonCodeNotIn applies the NotIn predicate on the "reason_code" field.
func ReasonCodeNotIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotIn(FieldReasonCode, vs...))
}

// ReasonCodeGT applies the GT predicate on the "reason_code" field.
func ReasonCodeGT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGT(FieldReasonCode, v))
}

// ReasonCodeGTE applies the GTE predicate on the "reason_code" field.
func ReasonCodeGTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGTE(FieldReasonCode, v))
}

// ReasonCodeLT applies the LT predicate on the "reason_code" field.
func ReasonCodeLT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLT(FieldReasonCode, v))
}

// ReasonCodeLTE applies the LTE predicate on the "reason_code" field.
func ReasonCodeLTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLTE(FieldReasonCode, v))
}

// ReasonCodeContains applies the Contains predicate on the "reason_code" field.
func ReasonCodeContains(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContains(FieldReasonCode, v))
}

// ReasonCodeHasPrefix applies the HasPrefix predicate on the "reason_code" field.
func ReasonCodeHasPrefix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasPrefix(FieldReasonCode, v))
}

// ReasonCodeHasSuffix applies the HasSuffix predicate on the "reason_code" field.
func ReasonCodeHasSuffix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasSuffix(FieldReasonCode, v))
}

// ReasonCodeIsNil applies the IsNil predicate on the "reason_code" field.
func ReasonCodeIsNil() predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIsNull(FieldReasonCode))
}

// ReasonCodeNotNil applies the NotNil predicate on the "reason_code" field.
func ReasonCodeNotNil() predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotNull(FieldReasonCode))
}

// ReasonCodeEqualFold applies the EqualFold predicate on the "reason_code" field.
func ReasonCodeEqualFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEqualFold(FieldReasonCode, v))
}

// ReasonCodeContainsFold applies the ContainsFold predicate on the "reason_code" field.
func ReasonCodeContainsFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContainsFold(FieldReasonCode, v))
}

// TokensUsedEQ applies the EQ predicate on the "tokens_used" field.
func TokensUsedEQ(v int64) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldTokensUsed, v))
}

// TokensUsedNEQ applies the NEQ predicate on the "tokens_used" field.
func TokensUsedNEQ(v int64) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNEQ(FieldTokensUsed, v))
}

// TokensUsedIn applies the In predicate on the "tokens_used" field.
func TokensUsedIn(vs ...int64) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIn(FieldTokensUsed, vs...))
}

// TokensUsedNotIn applies the NotIn predicate on the "tokens_used" field.
func TokensUsedNotIn(vs ...int64) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotIn(FieldTokensUsed, vs...))
}

// TokensUsedGT applies the GT predicate on the "tokens_used" field.
func TokensUsedGT(v int64) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGT(FieldTokensUsed, v))
}

// TokensUsedGTE applies the GTE predicate on the "tokens_used" field.
func TokensUsedGTE(v int64) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGTE(FieldTokensUsed, v))
}

// TokensUsedLT applies the LT predicate on the "tokens_used" field.
func TokensUsedLT(v int64) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLT(FieldTokensUsed, v))
}

// TokensUsedLTE applies the LTE predicate on the "tokens_used" field.
func TokensUsedLTE(v int64) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLTE(FieldTokensUsed, v))
}

// SpendUsdEQ applies the EQ predicate on the "spend_usd" field.
func SpendUsdEQ(v float64) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldSpendUsd, v))
}

// SpendUsdNEQ applies the NEQ predicate on the "spend_usd" field.
func SpendUsdNEQ(v float64) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNEQ(FieldSpendUsd, v))
}

// SpendUsdIn applies the In predicate on the "spend_usd" field.
func SpendUsdIn(vs ...float64) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIn(FieldSpendUsd, vs...))
}

// SpendUsdNotIn applies the NotIn predicate on the "spend_usd" field.
func SpendUsdNotIn(vs ...float64) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotIn(FieldSpendUsd, vs...))
}

// SpendUsdGT applies the GT predicate on the "spend_usd" field.
func SpendUsdGT(v float64) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGT(FieldSpendUsd, v))
}

// SpendUsdGTE applies the GTE predicate on the "spend_usd" field.
func SpendUsdGTE(v float64) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGTE(FieldSpendUsd, v))
}

// SpendUsdLT applies the LT predicate on the "spend_usd" field.
func SpendUsdLT(v float64) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLT(FieldSpendUsd, v))
}

// SpendUsdLTE applies the LTE predicate on the "spend_usd" field.
func SpendUsdLTE(v float64) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLTE(FieldSpendUsd, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLTE(FieldUpdatedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotNull(FieldFinishedAt))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldContainsFold(FieldLastError, v))
}

// GuideIDEQ applies the EQ predicate on the "guide_id" field.
func GuideIDEQ(v uuid.UUID) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldGuideID, v))
}

// GuideIDNEQ applies the NEQ predicate on the "guide_id" field.
func GuideIDNEQ(v uuid.UUID) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNEQ(FieldGuideID, v))
}

// GuideIDIn applies the In predicate on the "guide_id" field.
func GuideIDIn(vs ...uuid.UUID) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIn(FieldGuideID, vs...))
}

// GuideIDNotIn applies the NotIn predicate on the "guide_id" field.
func GuideIDNotIn(vs ...uuid.UUID) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotIn(FieldGuideID, vs...))
}

// GuideIDIsNil applies the IsNil predicate on the "guide_id" field.
func GuideIDIsNil() predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIsNull(FieldGuideID))
}

// GuideIDNotNil applies the NotNil predicate on the "guide_id" field.
func GuideIDNotNil() predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotNull(FieldGuideID))
}

// CancelRequestedEQ applies the EQ predicate on the "cancel_requested" field.
func CancelRequestedEQ(v bool) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldEQ(FieldCancelRequested, v))
}

// CancelRequestedNEQ applies the NEQ predicate on the "cancel_requested" field.
func CancelRequestedNEQ(v bool) predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNEQ(FieldCancelRequested, v))
}

// PreferencesIsNil applies the IsNil predicate on the "preferences" field.
func PreferencesIsNil() predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldIsNull(FieldPreferences))
}

// PreferencesNotNil applies the NotNil predicate on the "preferences" field.
func PreferencesNotNil() predicate.PipelineJob {
	return predicate.PipelineJob(sql.FieldNotNull(FieldPreferences))
}

// HasGuide applies the HasEdge predicate on the "guide" edge.
func HasGuide() predicate.PipelineJob {
	return predicate.PipelineJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, GuideTable, GuideColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGuideWith applies the HasEdge predicate on the "guide" edge with a given conditions (other predicates).
func HasGuideWith(preds ...predicate.StudyGuide) predicate.PipelineJob {
	return predicate.PipelineJob(func(s *sql.Selector) {
		step := newGuideStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PipelineJob) predicate.PipelineJob {
	return predicate.PipelineJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PipelineJob) predicate.PipelineJob {
	return predicate.PipelineJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PipelineJob) predicate.PipelineJob {
	return predicate.PipelineJob(sql.NotPredicates(p))
}
