package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// NormalizedDocument is the ingestion stage's payload: parsed source content
// in a format-independent shape.
type NormalizedDocument struct {
	DocumentID uuid.UUID         `json:"document_id"`
	Title      string            `json:"title"`
	Sections   []DocumentSection `json:"sections"`
	PageCount  int               `json:"page_count"`
	WordCount  int               `json:"word_count"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// DocumentSection is one unit of parsed content, in source order.
type DocumentSection struct {
	Type     string `json:"type"`  // heading | paragraph
	Level    int    `json:"level"` // heading depth, 1 for body text
	Content  string `json:"content"`
	Page     int    `json:"page"`
	Position int    `json:"position"`
}

// FullText joins all section content in order.
func (d NormalizedDocument) FullText() string {
	var b []byte
	for i, s := range d.Sections {
		if i > 0 {
			b = append(b, '\n')
		}
		b = append(b, s.Content...)
	}
	return string(b)
}

// AnalysisResult is the analysis stage's payload.
type AnalysisResult struct {
	Concepts      []Concept           `json:"concepts"`
	Relationships []ConceptRelation   `json:"relationships,omitempty"`
	ConceptMap    map[string][]string `json:"concept_map,omitempty"`
	ContentChunks []string            `json:"content_chunks,omitempty"`
}

// Concept is a key term extracted from the source document.
type Concept struct {
	Term            string   `json:"term"`
	Definition      string   `json:"definition"`
	ImportanceScore float32  `json:"importance_score"` // 0..1
	Category        string   `json:"category,omitempty"`
	Examples        []string `json:"examples,omitempty"`
	RelatedConcepts []string `json:"related_concepts,omitempty"`
	PageReference   string   `json:"page_reference,omitempty"`
}

// ConceptRelation links two concepts with a typed relationship.
type ConceptRelation struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Kind     string  `json:"kind"` // related | prerequisite | example_of
	Strength float32 `json:"strength"`
}

// StudyGuideContent is the generation stage's payload.
type StudyGuideContent struct {
	Title           string              `json:"title"`
	SummarySections []SummarySection    `json:"summary_sections"`
	Questions       []Question          `json:"questions,omitempty"`
	Concepts        []Concept           `json:"concepts"`
	ConceptMap      map[string][]string `json:"concept_map,omitempty"`
	Flashcards      []Flashcard         `json:"flashcards,omitempty"`
}

// SummarySection is one summary block keyed by Bloom taxonomy level.
type SummarySection struct {
	Level    string   `json:"level"` // remember | understand | apply | analyze | evaluate | create
	Content  string   `json:"content"`
	Examples []string `json:"examples,omitempty"`
}

// Question is one generated practice question.
type Question struct {
	ID            string   `json:"id"`
	QuestionText  string   `json:"question_text"`
	QuestionType  string   `json:"question_type"` // multiple_choice | short_answer | essay | true_false
	CorrectAnswer string   `json:"correct_answer"`
	Options       []string `json:"options,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`
	Difficulty    string   `json:"difficulty"` // easy | medium | hard
	Topic         string   `json:"topic,omitempty"`
	BloomLevel    string   `json:"bloom_level,omitempty"`
	PageReference string   `json:"page_reference,omitempty"`
}

// Flashcard is a front/back study card.
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// StudyGuide is the persisted final artifact record.
type StudyGuide struct {
	ID            uuid.UUID       `json:"id"`
	JobID         uuid.UUID       `json:"job_id"`
	UserID        uuid.UUID       `json:"user_id"`
	Title         string          `json:"title"`
	Content       json.RawMessage `json:"content"`
	DetailLevel   string          `json:"detail_level"`
	QuestionCount int             `json:"question_count"`
	ConceptCount  int             `json:"concept_count"`
	QAScore       float32         `json:"qa_score"`
	GeneratedAt   time.Time       `json:"generated_at"`
}
