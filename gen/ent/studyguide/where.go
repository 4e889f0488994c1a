// Code generated by ent, DO NOT EDIT.

package studyguide

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldEQ(FieldJobID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldEQ(FieldUserID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldEQ(FieldTitle, v))
}

// DetailLevel applies equality check predicate on the "detail_level" field. It's identical to DetailLevelEQ.
func DetailLevel(v string) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldEQ(FieldDetailLevel, v))
}

// QuestionCount applies equality check predicate on the "question_count" field. It's identical to QuestionCountEQ.
func QuestionCount(v int) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldEQ(FieldQuestionCount, v))
}

// ConceptCount applies equality check predicate on the "concept_count" field. It's identical to ConceptCountEQ.
func ConceptCount(v int) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldEQ(FieldConceptCount, v))
}

// QaScore applies equality check predicate on the "qa_score" field. It's identical to QaScoreEQ.
func QaScore(v float32) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldEQ(FieldQaScore, v))
}

// GeneratedAt applies equality check predicate on the "generated_at" field. It's identical to GeneratedAtEQ.
func GeneratedAt(v time.Time) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldEQ(FieldGeneratedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v uuid.UUID) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v uuid.UUID) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v uuid.UUID) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v uuid.UUID) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldLTE(FieldJobID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldLTE(FieldUserID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldContainsFold(FieldTitle, v))
}

// DetailLevelEQ applies the EQ predicate on the "detail_level" field.
func DetailLevelEQ(v string) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldEQ(FieldDetailLevel, v))
}

// DetailLevelNEQ applies the NEQ predicate on the "detail_level" field.
func DetailLevelNEQ(v string) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldNEQ(FieldDetailLevel, v))
}

// DetailLevelIn applies the In predicate on the "detail_level" field.
func DetailLevelIn(vs ...string) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldIn(FieldDetailLevel, vs...))
}

// DetailLevelNotIn applies the NotIn predicate on the "detail_level" field.
func DetailLevelNotIn(vs ...string) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldNotIn(FieldDetailLevel, vs...))
}

// DetailLevelGT applies the GT predicate on the "detail_level" field.
func DetailLevelGT(v string) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldGT(FieldDetailLevel, v))
}

// DetailLevelGTE applies the GTE predicate on the "detail_level" field.
func DetailLevelGTE(v string) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldGTE(FieldDetailLevel, v))
}

// DetailLevelLT applies the LT predicate on the "detail_level" field.
func DetailLevelLT(v string) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldLT(FieldDetailLevel, v))
}

// DetailLevelLTE applies the LTE predicate on the "detail_level" field.
func DetailLevelLTE(v string) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldLTE(FieldDetailLevel, v))
}

// DetailLevelContains applies the Contains predicate on the "detail_level" field.
func DetailLevelContains(v string) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldContains(FieldDetailLevel, v))
}

// DetailLevelHasPrefix applies the HasPrefix predicate on the "detail_level" field.
func DetailLevelHasPrefix(v string) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldHasPrefix(FieldDetailLevel, v))
}

// DetailLevelHasSuffix applies the HasSuffix predicate on the "detail_level" field.
func DetailLevelHasSuffix(v string) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldHasSuffix(FieldDetailLevel, v))
}

// DetailLevelIsNil applies the IsNil predicate on the "detail_level" field.
func DetailLevelIsNil() predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldIsNull(FieldDetailLevel))
}

// DetailLevelNotNil applies the NotNil predicate on the "detail_level" field.
func DetailLevelNotNil() predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldNotNull(FieldDetailLevel))
}

// DetailLevelEqualFold applies the EqualFold predicate on the "detail_level" field.
func DetailLevelEqualFold(v string) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldEqualFold(FieldDetailLevel, v))
}

// DetailLevelContainsFold applies the ContainsFold predicate on the "detail_level" field.
func DetailLevelContainsFold(v string) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldContainsFold(FieldDetailLevel, v))
}

// QuestionCountEQ applies the EQ predicate on the "question_count" field.
func QuestionCountEQ(v int) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldEQ(FieldQuestionCount, v))
}

// QuestionCountNEQ applies the NEQ predicate on the "question_count" field.
func QuestionCountNEQ(v int) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldNEQ(FieldQuestionCount, v))
}

// QuestionCountIn applies the In predicate on the "question_count" field.
func QuestionCountIn(vs ...int) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldIn(FieldQuestionCount, vs...))
}

// QuestionCountNotIn applies the NotIn predicate on the "question_count" field.
func QuestionCountNotIn(vs ...int) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldNotIn(FieldQuestionCount, vs...))
}

// QuestionCountGT applies the GT predicate on the "question_count" field.
func QuestionCountGT(v int) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldGT(FieldQuestionCount, v))
}

// QuestionCountGTE applies the GTE predicate on the "question_count" field.
func QuestionCountGTE(v int) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldGTE(FieldQuestionCount, v))
}

// QuestionCountLT applies the LT predicate on the "question_count" field.
func QuestionCountLT(v int) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldLT(FieldQuestionCount, v))
}

// QuestionCountLTE applies the LTE predicate on the "question_count" field.
func QuestionCountLTE(v int) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldLTE(FieldQuestionCount, v))
}

// ConceptCountEQ applies the EQ predicate on the "concept_count" field.
func ConceptCountEQ(v int) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldEQ(FieldConceptCount, v))
}

// ConceptCountNEQ applies the NEQ predicate on the "concept_count" field.
func ConceptCountNEQ(v int) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldNEQ(FieldConceptCount, v))
}

// ConceptCountIn applies the In predicate on the "concept_count" field.
func ConceptCountIn(vs ...int) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldIn(FieldConceptCount, vs...))
}

// ConceptCountNotIn applies the NotIn predicate on the "concept_count" field.
func ConceptCountNotIn(vs ...int) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldNotIn(FieldConceptCount, vs...))
}

// ConceptCountGT applies the GT predicate on the "concept_count" field.
func ConceptCountGT(v int) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldGT(FieldConceptCount, v))
}

// ConceptCountGTE applies the GTE predicate on the "concept_count" field.
func ConceptCountGTE(v int) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldGTE(FieldConceptCount, v))
}

// ConceptCountLT applies the LT predicate on the "concept_count" field.
func ConceptCountLT(v int) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldLT(FieldConceptCount, v))
}

// ConceptCountLTE applies the LTE predicate on the "concept_count" field.
func ConceptCountLTE(v int) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldLTE(FieldConceptCount, v))
}

// QaScoreEQ applies the EQ predicate on the "qa_score" field.
func QaScoreEQ(v float32) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldEQ(FieldQaScore, v))
}

// QaScoreNEQ applies the NEQ predicate on the "qa_score" field.
func QaScoreNEQ(v float32) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldNEQ(FieldQaScore, v))
}

// QaScoreIn applies the In predicate on the "qa_score" field.
func QaScoreIn(vs ...float32) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldIn(FieldQaScore, vs...))
}

// QaScoreNotIn applies the NotIn predicate on the "qa_score" field.
func QaScoreNotIn(vs ...float32) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldNotIn(FieldQaScore, vs...))
}

// QaScoreGT applies the GT predicate on the "qa_score" field.
func QaScoreGT(v float32) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldGT(FieldQaScore, v))
}

// QaScoreGTE applies the GTE predicate on the "qa_score" field.
func QaScoreGTE(v float32) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldGTE(FieldQaScore, v))
}

// QaScoreLT applies the LT predicate on the "qa_score" field.
func QaScoreLT(v float32) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldLT(FieldQaScore, v))
}

// QaScoreLTE applies the LTE predicate on the "qa_score" field.
func QaScoreLTE(v float32) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldLTE(FieldQaScore, v))
}

// GeneratedAtEQ applies the EQ predicate on the "generated_at" field.
func GeneratedAtEQ(v time.Time) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldEQ(FieldGeneratedAt, v))
}

// GeneratedAtNEQ applies the NEQ predicate on the "generated_at" field.
func GeneratedAtNEQ(v time.Time) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldNEQ(FieldGeneratedAt, v))
}

// GeneratedAtIn applies the In predicate on the "generated_at" field.
func GeneratedAtIn(vs ...time.Time) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldIn(FieldGeneratedAt, vs...))
}

// GeneratedAtNotIn applies the NotIn predicate on the "generated_at" field.
func GeneratedAtNotIn(vs ...time.Time) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldNotIn(FieldGeneratedAt, vs...))
}

// GeneratedAtGT applies the GT predicate on the "generated_at" field.
func GeneratedAtGT(v time.Time) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldGT(FieldGeneratedAt, v))
}

// GeneratedAtGTE applies the GTE predicate on the "generated_at" field.
func GeneratedAtGTE(v time.Time) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldGTE(FieldGeneratedAt, v))
}

// GeneratedAtLT applies the LT predicate on the "generated_at" field.
func GeneratedAtLT(v time.Time) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldLT(FieldGeneratedAt, v))
}

// GeneratedAtLTE applies the LTE predicate on the "generated_at" field.
func GeneratedAtLTE(v time.Time) predicate.StudyGuide {
	return predicate.StudyGuide(sql.FieldLTE(FieldGeneratedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StudyGuide) predicate.StudyGuide {
	return predicate.StudyGuide(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StudyGuide) predicate.StudyGuide {
	return predicate.StudyGuide(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StudyGuide) predicate.StudyGuide {
	return predicate.StudyGuide(sql.NotPredicates(p))
}
