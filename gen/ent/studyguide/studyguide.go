// Code generated by ent, DO NOT EDIT.

package studyguide

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the studyguide type in the database.
	Label = "study_guide"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldDetailLevel holds the string denoting the detail_level field in the database.
	FieldDetailLevel = "detail_level"
	// FieldQuestionCount holds the string denoting the question_count field in the database.
	FieldQuestionCount = "question_count"
	// FieldConceptCount holds the string denoting the concept_count field in the database.
	FieldConceptCount = "concept_count"
	// FieldQaScore holds the string denoting the qa_score field in the database.
	FieldQaScore = "qa_score"
	// FieldGeneratedAt holds the string denoting the generated_at field in the database.
	FieldGeneratedAt = "generated_at"
	// Table holds the table name of the studyguide in the database.
	Table = "study_guide"
)

// Columns holds all SQL columns for studyguide fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldUserID,
	FieldTitle,
	FieldContent,
	FieldDetailLevel,
	FieldQuestionCount,
	FieldConceptCount,
	FieldQaScore,
	FieldGeneratedAt,
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
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DetailLevelValidator is a validator for the "detail_level" field. It is called by the builders before save.
	DetailLevelValidator func(string) error
	// DefaultQuestionCount holds the default value on creation for the "question_count" field.
	DefaultQuestionCount int
	// DefaultConceptCount holds the default value on creation for the "concept_count" field.
	DefaultConceptCount int
	// DefaultQaScore holds the default value on creation for the "qa_score" field.
	DefaultQaScore float32
	// DefaultGeneratedAt holds the default value on creation for the "generated_at" field.
	DefaultGeneratedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the StudyGuide queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDetailLevel orders the results by the detail_level field.
func ByDetailLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetailLevel, opts...).ToFunc()
}

// ByQuestionCount orders the results by the question_count field.
func ByQuestionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionCount, opts...).ToFunc()
}

// ByConceptCount orders the results by the concept_count field.
func ByConceptCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptCount, opts...).ToFunc()
}

// ByQaScore orders the results by the qa_score field.
func ByQaScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQaScore, opts...).ToFunc()
}

// ByGeneratedAt orders the results by the generated_at field.
func ByGeneratedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneratedAt, opts...).ToFunc()
}
