package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/gagni555/course-content-to-study-material-generator/db/ent/schema/utils"
)

type StudyGuide struct{ ent.Schema }

func (StudyGuide) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "study_guide"},
	}
}

func (StudyGuide) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("job_id", uuid.UUID{}).Unique(),
		field.UUID("user_id", uuid.UUID{}),
		field.String("title").NotEmpty(),
		field.JSON("content", json.RawMessage{}).
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
		field.String("detail_level").Optional().
			Validate(utils.EnumValidator("", "brief", "standard", "detailed")),
		field.Int("question_count").Default(0),
		field.Int("concept_count").Default(0),
		field.Float32("qa_score").Default(0),
		field.Time("generated_at").Default(time.Now),
	}
}

func (StudyGuide) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id"),
		index.Fields("user_id", "generated_at"),
	}
}
