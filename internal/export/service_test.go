package export

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/gagni555/course-content-to-study-material-generator/internal/common"
	"github.com/gagni555/course-content-to-study-material-generator/internal/entity"
)

type stubGuides struct {
	guide *entity.StudyGuide
}

func (s stubGuides) GetByJob(_ context.Context, jobID uuid.UUID) (*entity.StudyGuide, error) {
	if s.guide == nil {
		return nil, common.NotFoundError("study guide not found")
	}
	return s.guide, nil
}

func storedGuide(t *testing.T, content entity.StudyGuideContent) *entity.StudyGuide {
	t.Helper()
	raw, err := json.Marshal(content)
	if err != nil {
		t.Fatalf("marshal content: %v", err)
	}
	return &entity.StudyGuide{
		ID:            uuid.New(),
		JobID:         uuid.New(),
		UserID:        uuid.New(),
		Title:         "Photosynthesis",
		Content:       raw,
		QuestionCount: len(content.Questions),
		ConceptCount:  len(content.Concepts),
		GeneratedAt:   time.Now(),
	}
}

func TestExportStudyGuideXLSX_AllSheets(t *testing.T) {
	content := entity.StudyGuideContent{
		Title: "Photosynthesis",
		Questions: []entity.Question{
			{QuestionType: "multiple_choice", QuestionText: "What pigment absorbs light?",
				Options: []string{"chlorophyll", "keratin"}, CorrectAnswer: "chlorophyll", Difficulty: "easy"},
		},
		Concepts: []entity.Concept{
			{Term: "chlorophyll", Definition: "light-absorbing pigment", ImportanceScore: 0.8},
		},
		Flashcards: []entity.Flashcard{
			{Front: "chlorophyll", Back: "light-absorbing pigment"},
		},
	}
	svc := NewService(stubGuides{guide: storedGuide(t, content)}, nil)

	raw, filename, err := svc.ExportStudyGuideXLSX(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Fatalf("filename = %q", filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	for _, sheet := range []string{"Questions", "Concepts", "Flashcards"} {
		if idx, _ := f.GetSheetIndex(sheet); idx == -1 {
			t.Fatalf("missing sheet %q", sheet)
		}
	}
	got, err := f.GetCellValue("Questions", "D2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if got != "What pigment absorbs light?" {
		t.Fatalf("question cell = %q", got)
	}
	opts, _ := f.GetCellValue("Questions", "E2")
	if opts != "chlorophyll | keratin" {
		t.Fatalf("options cell = %q", opts)
	}
}

func TestExportStudyGuideXLSX_OmitsEmptyComponents(t *testing.T) {
	content := entity.StudyGuideContent{
		Title: "Photosynthesis",
		Concepts: []entity.Concept{
			{Term: "chlorophyll", Definition: "light-absorbing pigment"},
		},
	}
	svc := NewService(stubGuides{guide: storedGuide(t, content)}, nil)

	raw, _, err := svc.ExportStudyGuideXLSX(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	if idx, _ := f.GetSheetIndex("Concepts"); idx == -1 {
		t.Fatal("missing Concepts sheet")
	}
	if idx, _ := f.GetSheetIndex("Questions"); idx != -1 {
		t.Fatal("unexpected Questions sheet for guide without questions")
	}
}

func TestExportStudyGuideXLSX_NoContentFails(t *testing.T) {
	svc := NewService(stubGuides{guide: storedGuide(t, entity.StudyGuideContent{Title: "Empty"})}, nil)
	if _, _, err := svc.ExportStudyGuideXLSX(context.Background(), uuid.New()); err == nil {
		t.Fatal("expected error for empty guide")
	}
}

func TestExportStudyGuideXLSX_MissingGuide(t *testing.T) {
	svc := NewService(stubGuides{}, nil)
	if _, _, err := svc.ExportStudyGuideXLSX(context.Background(), uuid.New()); err == nil {
		t.Fatal("expected not-found error")
	}
}
