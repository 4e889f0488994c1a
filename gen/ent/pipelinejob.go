// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/pipelinejob"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/studyguide"
	"github.com/google/uuid"
)

// PipelineJob is the model entity for the PipelineJob schema.
type PipelineJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// DocumentRef holds the value of the "document_ref" field.
	DocumentRef string `json:"document_ref,omitempty"`
	// Format holds the value of the "format" field.
	Format string `json:"format,omitempty"`
	// Stage holds the value of the "stage" field.
	Stage string `json:"stage,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Progress holds the value of the "progress" field.
	Progress int32 `json:"progress,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// ReasonCode holds the value of the "reason_code" field.
	ReasonCode string `json:"reason_code,omitempty"`
	// TokensUsed holds the value of the "tokens_used" field.
	TokensUsed int64 `json:"tokens_used,omitempty"`
	// SpendUsd holds the value of the "spend_usd" field.
	SpendUsd float64 `json:"spend_usd,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError *string `json:"last_error,omitempty"`
	// GuideID holds the value of the "guide_id" field.
	GuideID *uuid.UUID `json:"guide_id,omitempty"`
	// CancelRequested holds the value of the "cancel_requested" field.
	CancelRequested bool `json:"cancel_requested,omitempty"`
	// Preferences holds the value of the "preferences" field.
	Preferences json.RawMessage `json:"preferences,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PipelineJobQuery when eager-loading is set.
	Edges        PipelineJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PipelineJobEdges holds the relations/edges for other nodes in the graph.
type PipelineJobEdges struct {
	// Guide holds the value of the guide edge.
	Guide *StudyGuide `json:"guide,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// GuideOrErr returns the Guide value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PipelineJobEdges) GuideOrErr() (*StudyGuide, error) {
	if e.Guide != nil {
		return e.Guide, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: studyguide.Label}
	}
	return nil, &NotLoadedError{edge: "guide"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PipelineJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pipelinejob.FieldGuideID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case pipelinejob.FieldPreferences:
			values[i] = new([]byte)
		case pipelinejob.FieldCancelRequested:
			values[i] = new(sql.NullBool)
		case pipelinejob.FieldSpendUsd:
			values[i] = new(sql.NullFloat64)
		case pipelinejob.FieldProgress, pipelinejob.FieldTokensUsed:
			values[i] = new(sql.NullInt64)
		case pipelinejob.FieldDocumentRef, pipelinejob.FieldFormat, pipelinejob.FieldStage, pipelinejob.FieldStatus, pipelinejob.FieldMessage, pipelinejob.FieldReasonCode, pipelinejob.FieldLastError:
			values[i] = new(sql.NullString)
		case pipelinejob.FieldCreatedAt, pipelinejob.FieldUpdatedAt, pipelinejob.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case pipelinejob.FieldID, pipelinejob.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PipelineJob fields.
func (_m *PipelineJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pipelinejob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case pipelinejob.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case pipelinejob.FieldDocumentRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_ref", values[i])
			} else if value.Valid {
				_m.DocumentRef = value.String
			}
		case pipelinejob.FieldFormat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field format", values[i])
			} else if value.Valid {
				_m.Format = value.String
			}
		case pipelinejob.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = value.String
			}
		case pipelinejob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case pipelinejob.FieldProgress:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field progress", values[i])
			} else if value.Valid {
				_m.Progress = int32(value.Int64)
			}
		case pipelinejob.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case pipelinejob.FieldReasonCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason_code", values[i])
			} else if value.Valid {
				_m.ReasonCode = value.String
			}
		case pipelinejob.FieldTokensUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_used", values[i])
			} else if value.Valid {
				_m.TokensUsed = value.Int64
			}
		case pipelinejob.FieldSpendUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field spend_usd", values[i])
			} else if value.Valid {
				_m.SpendUsd = value.Float64
			}
		case pipelinejob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pipelinejob.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case pipelinejob.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case pipelinejob.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = new(string)
				*_m.LastError = value.String
			}
		case pipelinejob.FieldGuideID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field guide_id", values[i])
			} else if value.Valid {
				_m.GuideID = new(uuid.UUID)
				*_m.GuideID = *value.S.(*uuid.UUID)
			}
		case pipelinejob.FieldCancelRequested:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cancel_requested", values[i])
			} else if value.Valid {
				_m.CancelRequested = value.Bool
			}
		case pipelinejob.FieldPreferences:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field preferences", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Preferences); err != nil {
					return fmt.Errorf("unmarshal field preferences: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PipelineJob.
// This includes values selected through modifiers, order, etc.
func (_m *PipelineJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryGuide queries the "guide" edge of the PipelineJob entity.
func (_m *PipelineJob) QueryGuide() *StudyGuideQuery {
	return NewPipelineJobClient(_m.config).QueryGuide(_m)
}

// Update returns a builder for updating this PipelineJob.
// Note that you need to call PipelineJob.Unwrap() before calling this method if this PipelineJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PipelineJob) Update() *PipelineJobUpdateOne {
	return NewPipelineJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PipelineJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PipelineJob) Unwrap() *PipelineJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PipelineJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PipelineJob) String() string {
	var builder strings.Builder
	builder.WriteString("PipelineJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("document_ref=")
	builder.WriteString(_m.DocumentRef)
	builder.WriteString(", ")
	builder.WriteString("format=")
	builder.WriteString(_m.Format)
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(_m.Stage)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.Progress))
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("reason_code=")
	builder.WriteString(_m.ReasonCode)
	builder.WriteString(", ")
	builder.WriteString("tokens_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensUsed))
	builder.WriteString(", ")
	builder.WriteString("spend_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpendUsd))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastError; v != nil {
		builder.WriteString("last_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.GuideID; v != nil {
		builder.WriteString("guide_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("cancel_requested=")
	builder.WriteString(fmt.Sprintf("%v", _m.CancelRequested))
	builder.WriteString(", ")
	builder.WriteString("preferences=")
	builder.WriteString(fmt.Sprintf("%v", _m.Preferences))
	builder.WriteByte(')')
	return builder.String()
}

// PipelineJobs is a parsable slice of PipelineJob.
type PipelineJobs []*PipelineJob
