// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BudgetSnapshot is the predicate function for budgetsnapshot builders.
type BudgetSnapshot func(*sql.Selector)

// PipelineJob is the predicate function for pipelinejob builders.
type PipelineJob func(*sql.Selector)

// StudyGuide is the predicate function for studyguide builders.
type StudyGuide func(*sql.Selector)
