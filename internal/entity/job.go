package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/gagni555/course-content-to-study-material-generator/constants"
)

// Job represents one document's processing run for data transfer between layers.
type Job struct {
	ID              uuid.UUID           `json:"id"`
	UserID          uuid.UUID           `json:"user_id"`
	DocumentRef     string              `json:"document_ref"`
	Format          string              `json:"format"`
	Stage           constants.Stage     `json:"stage"`
	Status          constants.JobStatus `json:"status"`
	Progress        int32               `json:"progress"`
	Message         string              `json:"message"`
	ReasonCode      string              `json:"reason_code,omitempty"`
	TokensUsed      int64               `json:"tokens_used"`
	SpendUSD        float64             `json:"spend_usd"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	FinishedAt      *time.Time          `json:"finished_at,omitempty"`
	LastError       *string             `json:"last_error,omitempty"`
	GuideID         *uuid.UUID          `json:"guide_id,omitempty"`
	CancelRequested bool                `json:"cancel_requested"`
	Preferences     Preferences         `json:"preferences"`
}

// Preferences carries the caller's generation options, set at submission.
type Preferences struct {
	CourseName        string `json:"course_name,omitempty"`
	Topic             string `json:"topic,omitempty"`
	DifficultyLevel   string `json:"difficulty_level,omitempty"` // beginner | intermediate | advanced
	DetailLevel       string `json:"detail_level,omitempty"`     // brief | standard | detailed
	IncludeQuestions  bool   `json:"include_questions"`
	IncludeConceptMap bool   `json:"include_concept_map"`
	IncludeFlashcards bool   `json:"include_flashcards"`
}

// Usage records external-model consumption for one call.
type Usage struct {
	PromptTokens     int64   `json:"prompt_tokens"`
	CompletionTokens int64   `json:"completion_tokens"`
	CostUSD          float64 `json:"cost_usd"`
	Model            string  `json:"model,omitempty"`
}

// TotalTokens returns prompt plus completion tokens.
func (u Usage) TotalTokens() int64 { return u.PromptTokens + u.CompletionTokens }

// Add accumulates another call's usage into u.
func (u *Usage) Add(other Usage) {
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.CostUSD += other.CostUSD
}

// StageResult is the immutable output of one stage executor run.
type StageResult struct {
	Payload    json.RawMessage `json:"payload"`
	Confidence float32         `json:"confidence"` // [0,1]
	Flags      []string        `json:"flags,omitempty"`
	Usage      Usage           `json:"usage"`
}
