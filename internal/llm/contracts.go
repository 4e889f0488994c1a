package llm

import (
	"context"

	"github.com/gagni555/course-content-to-study-material-generator/internal/entity"
)

// AnalyzeRequest asks for concept extraction over normalized document text.
type AnalyzeRequest struct {
	DocumentText    string
	Title           string
	Topic           string
	DifficultyLevel string
	Model           string // override; empty uses the client default
}

// ConceptExtractor is the analysis capability the pipeline depends on.
// Implementations must be deterministic for identical input and model version.
type ConceptExtractor interface {
	ExtractConcepts(ctx context.Context, req AnalyzeRequest) (entity.AnalysisResult, entity.Usage, error)
}

// GenerateRequest asks for study-guide generation from analyzed content.
type GenerateRequest struct {
	DocumentText string
	Title        string
	Analysis     entity.AnalysisResult
	Preferences  entity.Preferences
	Model        string // primary or fallback, chosen by the caller
}

// GuideGenerator is the generation capability the pipeline depends on.
type GuideGenerator interface {
	GenerateGuide(ctx context.Context, req GenerateRequest) (entity.StudyGuideContent, entity.Usage, error)
}
