package pipeline

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/gagni555/course-content-to-study-material-generator/internal/common"
	"github.com/gagni555/course-content-to-study-material-generator/internal/entity"
	"github.com/gagni555/course-content-to-study-material-generator/internal/extract"
	"github.com/gagni555/course-content-to-study-material-generator/internal/llm"
	"github.com/gagni555/course-content-to-study-material-generator/internal/qa"
)

type stubExtractor struct {
	res extract.TextExtractionResult
	err error
}

func (s stubExtractor) Extract(context.Context, string) (extract.TextExtractionResult, error) {
	return s.res, s.err
}

func TestIngestionExecutor_SplitsPagesIntoSections(t *testing.T) {
	ex := NewIngestionExecutor(stubExtractor{res: extract.TextExtractionResult{
		Text:       "first page text\fsecond page text",
		Pages:      2,
		WordCount:  6,
		SourceType: "PDF",
		Method:     "pdftotext",
		Confidence: 0.95,
	}}, nil)

	job := &entity.Job{ID: uuid.New(), DocumentRef: "/tmp/lecture.pdf"}
	out, err := ex.Run(context.Background(), job, Payload{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	doc := out.Payload.Document
	if doc == nil {
		t.Fatal("no document in payload")
	}
	if len(doc.Sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(doc.Sections))
	}
	if doc.Sections[1].Page != 2 {
		t.Fatalf("second section page = %d, want 2", doc.Sections[1].Page)
	}
	if doc.Title != "lecture" {
		t.Fatalf("title = %q, want filename stem", doc.Title)
	}
	if out.Confidence != 0.95 {
		t.Fatalf("confidence = %v", out.Confidence)
	}
}

func TestIngestionExecutor_EmptyTextIsValidationError(t *testing.T) {
	ex := NewIngestionExecutor(stubExtractor{res: extract.TextExtractionResult{Text: "  \f "}}, nil)
	job := &entity.Job{ID: uuid.New(), DocumentRef: "/tmp/blank.pdf"}
	_, err := ex.Run(context.Background(), job, Payload{})
	if !common.IsValidationError(err) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestIngestionExecutor_PrefersTopicAsTitle(t *testing.T) {
	ex := NewIngestionExecutor(stubExtractor{res: extract.TextExtractionResult{Text: "some body text", Pages: 1}}, nil)
	job := &entity.Job{
		ID:          uuid.New(),
		DocumentRef: "/tmp/week3.pdf",
		Preferences: entity.Preferences{Topic: "Cell Biology"},
	}
	out, err := ex.Run(context.Background(), job, Payload{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.Payload.Document.Title != "Cell Biology" {
		t.Fatalf("title = %q", out.Payload.Document.Title)
	}
}

type stubConceptExtractor struct {
	analysis entity.AnalysisResult
	usage    entity.Usage
	err      error
}

func (s stubConceptExtractor) ExtractConcepts(context.Context, llm.AnalyzeRequest) (entity.AnalysisResult, entity.Usage, error) {
	return s.analysis, s.usage, s.err
}

func TestAnalysisExecutor_FlagsIntroducedEntities(t *testing.T) {
	ex := NewAnalysisExecutor(stubConceptExtractor{
		analysis: entity.AnalysisResult{Concepts: []entity.Concept{
			{Term: "photosynthesis", Definition: "light to chemical energy"},
			{Term: "mitochondria", Definition: "not in this document"},
		}},
		usage: entity.Usage{PromptTokens: 100, CompletionTokens: 50},
	}, nil)

	in := Payload{Document: testDoc()}
	out, err := ex.Run(context.Background(), &entity.Job{ID: uuid.New()}, in)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.Confidence != 0.5 {
		t.Fatalf("confidence = %v, want 0.5", out.Confidence)
	}
	if len(out.Flags) != 1 || out.Flags[0] != "introduced_entity:mitochondria" {
		t.Fatalf("flags = %v", out.Flags)
	}
	if out.Usage.TotalTokens() != 150 {
		t.Fatalf("usage tokens = %d", out.Usage.TotalTokens())
	}
}

func TestAnalysisExecutor_RequiresIngestionOutput(t *testing.T) {
	ex := NewAnalysisExecutor(stubConceptExtractor{}, nil)
	_, err := ex.Run(context.Background(), &entity.Job{ID: uuid.New()}, Payload{})
	if err == nil {
		t.Fatal("expected error without a document")
	}
}

func TestQAExecutor_ConfidenceIsQualityScore(t *testing.T) {
	ex := NewQAExecutor(qa.NewScorer(qa.Config{}, nil))
	in := Payload{Document: testDoc(), Guide: testGuide()}
	out, err := ex.Run(context.Background(), &entity.Job{ID: uuid.New()}, in)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.Confidence != out.Payload.QAScore {
		t.Fatalf("confidence %v != qa score %v", out.Confidence, out.Payload.QAScore)
	}
	if out.Confidence <= 0 {
		t.Fatalf("score = %v, want > 0 for grounded guide", out.Confidence)
	}
}

func TestGenerationExecutor_DropsConceptsLowerConfidence(t *testing.T) {
	in := Payload{Document: testDoc(), Analysis: &entity.AnalysisResult{Concepts: []entity.Concept{
		{Term: "photosynthesis"},
		{Term: "chlorophyll"},
	}}}
	guide := entity.StudyGuideContent{
		Title:    "Photosynthesis",
		Concepts: []entity.Concept{{Term: "photosynthesis"}},
	}
	e := &GenerationExecutor{}
	out := e.outcome(in, guide, entity.Usage{})
	if out.Confidence != 0.5 {
		t.Fatalf("confidence = %v, want 0.5", out.Confidence)
	}
	if len(out.Flags) != 1 || out.Flags[0] != "concept_dropped:chlorophyll" {
		t.Fatalf("flags = %v", out.Flags)
	}
}
