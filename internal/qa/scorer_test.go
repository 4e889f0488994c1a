package qa

import (
	"strings"
	"testing"

	"github.com/gagni555/course-content-to-study-material-generator/internal/entity"
)

func sourceDoc() entity.NormalizedDocument {
	return entity.NormalizedDocument{
		Title: "Photosynthesis",
		Sections: []entity.DocumentSection{
			{Type: "paragraph", Level: 1, Page: 1, Position: 1, Content: strings.Join([]string{
				"Photosynthesis converts light energy into chemical energy.",
				"Chlorophyll absorbs sunlight within chloroplasts.",
				"The light-dependent reactions produce oxygen molecules and energy carriers.",
				"Carbon dioxide becomes glucose during the Calvin cycle reactions.",
			}, " ")},
		},
	}
}

func groundedGuide() entity.StudyGuideContent {
	return entity.StudyGuideContent{
		Title: "Photosynthesis Study Guide",
		SummarySections: []entity.SummarySection{
			{Level: "understand", Content: "Photosynthesis converts light energy into chemical energy using chlorophyll inside chloroplasts, where reactions produce oxygen and glucose."},
		},
		Questions: []entity.Question{
			{QuestionText: "What absorbs sunlight?", QuestionType: "multiple_choice",
				CorrectAnswer: "chlorophyll", Options: []string{"chlorophyll", "mitochondria"}, Difficulty: "easy"},
		},
		Concepts: []entity.Concept{
			{Term: "chlorophyll", Definition: "Pigment that absorbs sunlight.", ImportanceScore: 0.9},
			{Term: "glucose", Definition: "Sugar produced during the Calvin cycle.", ImportanceScore: 0.8},
		},
	}
}

func TestScore_GroundedGuideScoresHigh(t *testing.T) {
	s := NewScorer(Config{}, nil)
	score, flags := s.Score(groundedGuide(), sourceDoc())
	if score != 1.0 {
		t.Fatalf("expected perfect score, got %.2f flags=%v", score, flags)
	}
	if len(flags) != 0 {
		t.Fatalf("unexpected flags: %v", flags)
	}
}

func TestScore_UngroundedSummaryFlagged(t *testing.T) {
	s := NewScorer(Config{}, nil)
	g := groundedGuide()
	g.SummarySections = append(g.SummarySections, entity.SummarySection{
		Level:   "analyze",
		Content: "Mitochondrial respiration oxidizes pyruvate through fermentation pathways inside bacterial ribosomes, unrelated entirely.",
	})

	score, flags := s.Score(g, sourceDoc())
	if score >= 1.0 {
		t.Fatalf("hallucinated summary must lower the score, got %.2f", score)
	}
	found := false
	for _, f := range flags {
		if strings.Contains(f, "not present in source") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected grounding flag, got %v", flags)
	}
}

func TestScore_ShortSummaryFlagged(t *testing.T) {
	s := NewScorer(Config{MinSummaryLength: 50}, nil)
	g := groundedGuide()
	g.SummarySections = []entity.SummarySection{{Level: "remember", Content: "Too short."}}

	score, flags := s.Score(g, sourceDoc())
	if score >= 1.0 {
		t.Fatalf("short summary must lower the score")
	}
	if len(flags) == 0 || !strings.Contains(flags[0], "too short") {
		t.Fatalf("expected short-summary flag, got %v", flags)
	}
}

func TestScore_MalformedMultipleChoiceFlagged(t *testing.T) {
	s := NewScorer(Config{}, nil)
	g := groundedGuide()
	g.Questions = []entity.Question{
		{QuestionText: "?", QuestionType: "multiple_choice", CorrectAnswer: "chlorophyll",
			Options: []string{"mitochondria"}, Difficulty: "easy"}, // answer missing from options
	}

	_, flags := s.Score(g, sourceDoc())
	found := false
	for _, f := range flags {
		if strings.Contains(f, "options malformed") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected malformed-options flag, got %v", flags)
	}
}

func TestScore_DoesNotMutateGuide(t *testing.T) {
	s := NewScorer(Config{}, nil)
	g := groundedGuide()
	before := g.SummarySections[0].Content

	_, _ = s.Score(g, sourceDoc())
	if g.SummarySections[0].Content != before {
		t.Fatalf("scorer mutated content")
	}
}

func TestScore_ConceptAbsentFromSourceFlagged(t *testing.T) {
	s := NewScorer(Config{}, nil)
	g := groundedGuide()
	g.Concepts = append(g.Concepts, entity.Concept{
		Term: "quantum entanglement", Definition: "Not in this document.", ImportanceScore: 0.5,
	})

	score, flags := s.Score(g, sourceDoc())
	if score >= 1.0 {
		t.Fatalf("introduced entity must lower the score")
	}
	found := false
	for _, f := range flags {
		if strings.Contains(f, "term absent from source") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected absent-term flag, got %v", flags)
	}
}
