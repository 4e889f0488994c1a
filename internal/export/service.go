package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/gagni555/course-content-to-study-material-generator/internal/entity"
)

// GuideSource is the read side the exporter needs.
type GuideSource interface {
	GetByJob(ctx context.Context, jobID uuid.UUID) (*entity.StudyGuide, error)
}

// Service produces XLSX bytes from finished study guides.
type Service struct {
	guides GuideSource
	logger *slog.Logger
}

func NewService(guides GuideSource, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{guides: guides, logger: logger}
}

// ExportStudyGuideXLSX returns a workbook with one sheet per guide component:
// questions, concepts, and flashcards. Empty components are omitted.
func (s *Service) ExportStudyGuideXLSX(ctx context.Context, jobID uuid.UUID) ([]byte, string, error) {
	start := time.Now()

	guide, err := s.guides.GetByJob(ctx, jobID)
	if err != nil {
		return nil, "", err
	}
	var content entity.StudyGuideContent
	if err := json.Unmarshal(guide.Content, &content); err != nil {
		return nil, "", fmt.Errorf("decode guide content: %w", err)
	}

	f := excelize.NewFile()
	wroteFirst := false

	if len(content.Questions) > 0 {
		if err := s.writeQuestions(f, content.Questions, &wroteFirst); err != nil {
			return nil, "", err
		}
	}
	if len(content.Concepts) > 0 {
		if err := s.writeConcepts(f, content.Concepts, &wroteFirst); err != nil {
			return nil, "", err
		}
	}
	if len(content.Flashcards) > 0 {
		if err := s.writeFlashcards(f, content.Flashcards, &wroteFirst); err != nil {
			return nil, "", err
		}
	}
	if !wroteFirst {
		return nil, "", fmt.Errorf("guide %s has no exportable content", guide.ID)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("write workbook: %w", err)
	}
	filename := fmt.Sprintf("study-guide-%s.xlsx", guide.ID)
	s.logger.Info("export.ok", "job_id", jobID, "guide_id", guide.ID,
		"bytes", buf.Len(), "duration_ms", time.Since(start).Milliseconds())
	return buf.Bytes(), filename, nil
}

// addSheet creates the sheet, reusing excelize's default first sheet for the
// first component written.
func addSheet(f *excelize.File, name string, wroteFirst *bool) error {
	if !*wroteFirst {
		*wroteFirst = true
		active := f.GetSheetName(f.GetActiveSheetIndex())
		return f.SetSheetName(active, name)
	}
	_, err := f.NewSheet(name)
	return err
}

func setRow(f *excelize.File, sheet string, row int, values []any) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
}

func (s *Service) writeQuestions(f *excelize.File, questions []entity.Question, wroteFirst *bool) error {
	const sheet = "Questions"
	if err := addSheet(f, sheet, wroteFirst); err != nil {
		return err
	}
	setRow(f, sheet, 1, []any{"Type", "Difficulty", "Bloom Level", "Question", "Options", "Answer", "Explanation"})
	for i, q := range questions {
		options := ""
		for j, opt := range q.Options {
			if j > 0 {
				options += " | "
			}
			options += opt
		}
		setRow(f, sheet, i+2, []any{q.QuestionType, q.Difficulty, q.BloomLevel, q.QuestionText, options, q.CorrectAnswer, q.Explanation})
	}
	return nil
}

func (s *Service) writeConcepts(f *excelize.File, concepts []entity.Concept, wroteFirst *bool) error {
	const sheet = "Concepts"
	if err := addSheet(f, sheet, wroteFirst); err != nil {
		return err
	}
	setRow(f, sheet, 1, []any{"Term", "Definition", "Importance", "Category", "Page"})
	for i, c := range concepts {
		setRow(f, sheet, i+2, []any{c.Term, c.Definition, c.ImportanceScore, c.Category, c.PageReference})
	}
	return nil
}

func (s *Service) writeFlashcards(f *excelize.File, cards []entity.Flashcard, wroteFirst *bool) error {
	const sheet = "Flashcards"
	if err := addSheet(f, sheet, wroteFirst); err != nil {
		return err
	}
	setRow(f, sheet, 1, []any{"Front", "Back"})
	for i, c := range cards {
		setRow(f, sheet, i+2, []any{c.Front, c.Back})
	}
	return nil
}
