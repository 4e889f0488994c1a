// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/gagni555/course-content-to-study-material-generator/db/ent/schema"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/budgetsnapshot"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/pipelinejob"
	"github.com/gagni555/course-content-to-study-material-generator/gen/ent/studyguide"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	budgetsnapshotFields := schema.BudgetSnapshot{}.Fields()
	_ = budgetsnapshotFields
	// budgetsnapshotDescDay is the schema descriptor for day field.
	budgetsnapshotDescDay := budgetsnapshotFields[2].Descriptor()
	// budgetsnapshot.DayValidator is a validator for the "day" field. It is called by the builders before save.
	budgetsnapshot.DayValidator = budgetsnapshotDescDay.Validators[0].(func(string) error)
	// budgetsnapshotDescTokensUsed is the schema descriptor for tokens_used field.
	budgetsnapshotDescTokensUsed := budgetsnapshotFields[3].Descriptor()
	// budgetsnapshot.DefaultTokensUsed holds the default value on creation for the tokens_used field.
	budgetsnapshot.DefaultTokensUsed = budgetsnapshotDescTokensUsed.Default.(int64)
	// budgetsnapshotDescSpendUsd is the schema descriptor for spend_usd field.
	budgetsnapshotDescSpendUsd := budgetsnapshotFields[4].Descriptor()
	// budgetsnapshot.DefaultSpendUsd holds the default value on creation for the spend_usd field.
	budgetsnapshot.DefaultSpendUsd = budgetsnapshotDescSpendUsd.Default.(float64)
	// budgetsnapshotDescUpdatedAt is the schema descriptor for updated_at field.
	budgetsnapshotDescUpdatedAt := budgetsnapshotFields[5].Descriptor()
	// budgetsnapshot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	budgetsnapshot.DefaultUpdatedAt = budgetsnapshotDescUpdatedAt.Default.(func() time.Time)
	// budgetsnapshot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	budgetsnapshot.UpdateDefaultUpdatedAt = budgetsnapshotDescUpdatedAt.UpdateDefault.(func() time.Time)
	// budgetsnapshotDescID is the schema descriptor for id field.
	budgetsnapshotDescID := budgetsnapshotFields[0].Descriptor()
	// budgetsnapshot.DefaultID holds the default value on creation for the id field.
	budgetsnapshot.DefaultID = budgetsnapshotDescID.Default.(func() uuid.UUID)
	pipelinejobFields := schema.PipelineJob{}.Fields()
	_ = pipelinejobFields
	// pipelinejobDescDocumentRef is the schema descriptor for document_ref field.
	pipelinejobDescDocumentRef := pipelinejobFields[2].Descriptor()
	// pipelinejob.DocumentRefValidator is a validator for the "document_ref" field. It is called by the builders before save.
	pipelinejob.DocumentRefValidator = pipelinejobDescDocumentRef.Validators[0].(func(string) error)
	// pipelinejobDescFormat is the schema descriptor for format field.
	pipelinejobDescFormat := pipelinejobFields[3].Descriptor()
	// pipelinejob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	pipelinejob.FormatValidator = func() func(string) error {
		validators := pipelinejobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// pipelinejobDescStage is the schema descriptor for stage field.
	pipelinejobDescStage := pipelinejobFields[4].Descriptor()
	// pipelinejob.StageValidator is a validator for the "stage" field. It is called by the builders before save.
	pipelinejob.StageValidator = pipelinejobDescStage.Validators[0].(func(string) error)
	// pipelinejobDescStatus is the schema descriptor for status field.
	pipelinejobDescStatus := pipelinejobFields[5].Descriptor()
	// pipelinejob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	pipelinejob.StatusValidator = pipelinejobDescStatus.Validators[0].(func(string) error)
	// pipelinejobDescProgress is the schema descriptor for progress field.
	pipelinejobDescProgress := pipelinejobFields[6].Descriptor()
	// pipelinejob.DefaultProgress holds the default value on creation for the progress field.
	pipelinejob.DefaultProgress = pipelinejobDescProgress.Default.(int32)
	// pipelinejobDescTokensUsed is the schema descriptor for tokens_used field.
	pipelinejobDescTokensUsed := pipelinejobFields[9].Descriptor()
	// pipelinejob.DefaultTokensUsed holds the default value on creation for the tokens_used field.
	pipelinejob.DefaultTokensUsed = pipelinejobDescTokensUsed.Default.(int64)
	// pipelinejobDescSpendUsd is the schema descriptor for spend_usd field.
	pipelinejobDescSpendUsd := pipelinejobFields[10].Descriptor()
	// pipelinejob.DefaultSpendUsd holds the default value on creation for the spend_usd field.
	pipelinejob.DefaultSpendUsd = pipelinejobDescSpendUsd.Default.(float64)
	// pipelinejobDescCreatedAt is the schema descriptor for created_at field.
	pipelinejobDescCreatedAt := pipelinejobFields[11].Descriptor()
	// pipelinejob.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipelinejob.DefaultCreatedAt = pipelinejobDescCreatedAt.Default.(func() time.Time)
	// pipelinejobDescUpdatedAt is the schema descriptor for updated_at field.
	pipelinejobDescUpdatedAt := pipelinejobFields[12].Descriptor()
	// pipelinejob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pipelinejob.DefaultUpdatedAt = pipelinejobDescUpdatedAt.Default.(func() time.Time)
	// pipelinejob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pipelinejob.UpdateDefaultUpdatedAt = pipelinejobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// pipelinejobDescCancelRequested is the schema descriptor for cancel_requested field.
	pipelinejobDescCancelRequested := pipelinejobFields[16].Descriptor()
	// pipelinejob.DefaultCancelRequested holds the default value on creation for the cancel_requested field.
	pipelinejob.DefaultCancelRequested = pipelinejobDescCancelRequested.Default.(bool)
	// pipelinejobDescID is the schema descriptor for id field.
	pipelinejobDescID := pipelinejobFields[0].Descriptor()
	// pipelinejob.DefaultID holds the default value on creation for the id field.
	pipelinejob.DefaultID = pipelinejobDescID.Default.(func() uuid.UUID)
	studyguideFields := schema.StudyGuide{}.Fields()
	_ = studyguideFields
	// studyguideDescTitle is the schema descriptor for title field.
	studyguideDescTitle := studyguideFields[3].Descriptor()
	// studyguide.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	studyguide.TitleValidator = studyguideDescTitle.Validators[0].(func(string) error)
	// studyguideDescDetailLevel is the schema descriptor for detail_level field.
	studyguideDescDetailLevel := studyguideFields[5].Descriptor()
	// studyguide.DetailLevelValidator is a validator for the "detail_level" field. It is called by the builders before save.
	studyguide.DetailLevelValidator = studyguideDescDetailLevel.Validators[0].(func(string) error)
	// studyguideDescQuestionCount is the schema descriptor for question_count field.
	studyguideDescQuestionCount := studyguideFields[6].Descriptor()
	// studyguide.DefaultQuestionCount holds the default value on creation for the question_count field.
	studyguide.DefaultQuestionCount = studyguideDescQuestionCount.Default.(int)
	// studyguideDescConceptCount is the schema descriptor for concept_count field.
	studyguideDescConceptCount := studyguideFields[7].Descriptor()
	// studyguide.DefaultConceptCount holds the default value on creation for the concept_count field.
	studyguide.DefaultConceptCount = studyguideDescConceptCount.Default.(int)
	// studyguideDescQaScore is the schema descriptor for qa_score field.
	studyguideDescQaScore := studyguideFields[8].Descriptor()
	// studyguide.DefaultQaScore holds the default value on creation for the qa_score field.
	studyguide.DefaultQaScore = studyguideDescQaScore.Default.(float32)
	// studyguideDescGeneratedAt is the schema descriptor for generated_at field.
	studyguideDescGeneratedAt := studyguideFields[9].Descriptor()
	// studyguide.DefaultGeneratedAt holds the default value on creation for the generated_at field.
	studyguide.DefaultGeneratedAt = studyguideDescGeneratedAt.Default.(func() time.Time)
	// studyguideDescID is the schema descriptor for id field.
	studyguideDescID := studyguideFields[0].Descriptor()
	// studyguide.DefaultID holds the default value on creation for the id field.
	studyguide.DefaultID = studyguideDescID.Default.(func() uuid.UUID)
}
