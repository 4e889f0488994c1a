// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/studyguide"
	"github.com/google/uuid"
)

// StudyGuide is the model entity for the StudyGuide schema.
type StudyGuide struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID uuid.UUID `json:"job_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Content holds the value of the "content" field.
	Content json.RawMessage `json:"content,omitempty"`
	// DetailLevel holds the value of the "detail_level" field.
	DetailLevel string `json:"detail_level,omitempty"`
	// QuestionCount holds the value of the "question_count" field.
	QuestionCount int `json:"question_count,omitempty"`
	// ConceptCount holds the value of the "concept_count" field.
	ConceptCount int `json:"concept_count,omitempty"`
	// QaScore holds the value of the "qa_score" field.
	QaScore float32 `json:"qa_score,omitempty"`
	// GeneratedAt holds the value of the "generated_at" field.
	GeneratedAt  time.Time `json:"generated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StudyGuide) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case studyguide.FieldContent:
			values[i] = new([]byte)
		case studyguide.FieldQaScore:
			values[i] = new(sql.NullFloat64)
		case studyguide.FieldQuestionCount, studyguide.FieldConceptCount:
			values[i] = new(sql.NullInt64)
		case studyguide.FieldTitle, studyguide.FieldDetailLevel:
			values[i] = new(sql.NullString)
		case studyguide.FieldGeneratedAt:
			values[i] = new(sql.NullTime)
		case studyguide.FieldID, studyguide.FieldJobID, studyguide.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StudyGuide fields.
func (_m *StudyGuide) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case studyguide.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case studyguide.FieldJobID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value != nil {
				_m.JobID = *value
			}
		case studyguide.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case studyguide.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case studyguide.FieldContent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Content); err != nil {
					return fmt.Errorf("unmarshal field content: %w", err)
				}
			}
		case studyguide.FieldDetailLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detail_level", values[i])
			} else if value.Valid {
				_m.DetailLevel = value.String
			}
		case studyguide.FieldQuestionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_count", values[i])
			} else if value.Valid {
				_m.QuestionCount = int(value.Int64)
			}
		case studyguide.FieldConceptCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field concept_count", values[i])
			} else if value.Valid {
				_m.ConceptCount = int(value.Int64)
			}
		case studyguide.FieldQaScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field qa_score", values[i])
			} else if value.Valid {
				_m.QaScore = float32(value.Float64)
			}
		case studyguide.FieldGeneratedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field generated_at", values[i])
			} else if value.Valid {
				_m.GeneratedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StudyGuide.
// This includes values selected through modifiers, order, etc.
func (_m *StudyGuide) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StudyGuide.
// Note that you need to call StudyGuide.Unwrap() before calling this method if this StudyGuide
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StudyGuide) Update() *StudyGuideUpdateOne {
	return NewStudyGuideClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StudyGuide entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StudyGuide) Unwrap() *StudyGuide {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StudyGuide is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StudyGuide) String() string {
	var builder strings.Builder
	builder.WriteString("StudyGuide(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(fmt.Sprintf("%v", _m.Content))
	builder.WriteString(", ")
	builder.WriteString("detail_level=")
	builder.WriteString(_m.DetailLevel)
	builder.WriteString(", ")
	builder.WriteString("question_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionCount))
	builder.WriteString(", ")
	builder.WriteString("concept_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConceptCount))
	builder.WriteString(", ")
	builder.WriteString("qa_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.QaScore))
	builder.WriteString(", ")
	builder.WriteString("generated_at=")
	builder.WriteString(_m.GeneratedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StudyGuides is a parsable slice of StudyGuide.
type StudyGuides []*StudyGuide
