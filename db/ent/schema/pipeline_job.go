package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/gagni555/course-content-to-study-material-generator/constants"
	"github.com/gagni555/course-content-to-study-material-generator/db/ent/schema/utils"
)

type PipelineJob struct{ ent.Schema }

func (PipelineJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "pipeline_job"},
	}
}

func (PipelineJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("user_id", uuid.UUID{}),
		field.String("document_ref").NotEmpty(),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.String("stage").
			Validate(utils.EnumValidator(
				string(constants.StageIngestion),
				string(constants.StageAnalysis),
				string(constants.StageGeneration),
				string(constants.StageQA),
			)),
		field.String("status").
			Validate(utils.EnumValidator(
				string(constants.JobStatusQueued),
				string(constants.JobStatusRunning),
				string(constants.JobStatusCompleted),
				string(constants.JobStatusFailed),
				string(constants.JobStatusAwaitingReview),
			)),
		field.Int32("progress").Default(0),
		field.String("message").Optional(),
		field.String("reason_code").Optional(),
		field.Int64("tokens_used").Default(0),
		field.Float("spend_usd").Default(0),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("last_error").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.UUID("guide_id", uuid.UUID{}).Optional().Nillable(),
		field.Bool("cancel_requested").Default(false),
		field.JSON("preferences", json.RawMessage{}).Optional(),
	}
}

func (PipelineJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("guide", StudyGuide.Type).
			Field("guide_id").
			Unique(),
	}
}

func (PipelineJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "status", "created_at"),
		index.Fields("status"),
	}
}
