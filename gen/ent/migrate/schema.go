// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BudgetSnapshotColumns holds the columns for the "budget_snapshot" table.
	BudgetSnapshotColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "day", Type: field.TypeString},
		{Name: "tokens_used", Type: field.TypeInt64, Default: 0},
		{Name: "spend_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BudgetSnapshotTable holds the schema information for the "budget_snapshot" table.
	BudgetSnapshotTable = &schema.Table{
		Name:       "budget_snapshot",
		Columns:    BudgetSnapshotColumns,
		PrimaryKey: []*schema.Column{BudgetSnapshotColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "budgetsnapshot_user_id_day",
				Unique:  true,
				Columns: []*schema.Column{BudgetSnapshotColumns[1], BudgetSnapshotColumns[2]},
			},
		},
	}
	// PipelineJobColumns holds the columns for the "pipeline_job" table.
	PipelineJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "document_ref", Type: field.TypeString},
		{Name: "format", Type: field.TypeString},
		{Name: "stage", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "progress", Type: field.TypeInt32, Default: 0},
		{Name: "message", Type: field.TypeString, Nullable: true},
		{Name: "reason_code", Type: field.TypeString, Nullable: true},
		{Name: "tokens_used", Type: field.TypeInt64, Default: 0},
		{Name: "spend_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "cancel_requested", Type: field.TypeBool, Default: false},
		{Name: "preferences", Type: field.TypeJSON, Nullable: true},
		{Name: "guide_id", Type: field.TypeUUID, Nullable: true},
	}
	// PipelineJobTable holds the schema information for the "pipeline_job" table.
	PipelineJobTable = &schema.Table{
		Name:       "pipeline_job",
		Columns:    PipelineJobColumns,
		PrimaryKey: []*schema.Column{PipelineJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pipeline_job_study_guide_guide",
				Columns:    []*schema.Column{PipelineJobColumns[17]},
				RefColumns: []*schema.Column{StudyGuideColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pipelinejob_user_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{PipelineJobColumns[1], PipelineJobColumns[5], PipelineJobColumns[11]},
			},
			{
				Name:    "pipelinejob_status",
				Unique:  false,
				Columns: []*schema.Column{PipelineJobColumns[5]},
			},
		},
	}
	// StudyGuideColumns holds the columns for the "study_guide" table.
	StudyGuideColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "job_id", Type: field.TypeUUID, Unique: true},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "content", Type: field.TypeJSON, SchemaType: map[string]string{"postgres": "jsonb"}},
		{Name: "detail_level", Type: field.TypeString, Nullable: true},
		{Name: "question_count", Type: field.TypeInt, Default: 0},
		{Name: "concept_count", Type: field.TypeInt, Default: 0},
		{Name: "qa_score", Type: field.TypeFloat32, Default: 0},
		{Name: "generated_at", Type: field.TypeTime},
	}
	// StudyGuideTable holds the schema information for the "study_guide" table.
	StudyGuideTable = &schema.Table{
		Name:       "study_guide",
		Columns:    StudyGuideColumns,
		PrimaryKey: []*schema.Column{StudyGuideColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studyguide_job_id",
				Unique:  false,
				Columns: []*schema.Column{StudyGuideColumns[1]},
			},
			{
				Name:    "studyguide_user_id_generated_at",
				Unique:  false,
				Columns: []*schema.Column{StudyGuideColumns[2], StudyGuideColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BudgetSnapshotTable,
		PipelineJobTable,
		StudyGuideTable,
	}
)

func init() {
	BudgetSnapshotTable.Annotation = &entsql.Annotation{
		Table: "budget_snapshot",
	}
	PipelineJobTable.ForeignKeys[0].RefTable = StudyGuideTable
	PipelineJobTable.Annotation = &entsql.Annotation{
		Table: "pipeline_job",
	}
	StudyGuideTable.Annotation = &entsql.Annotation{
		Table: "study_guide",
	}
}
