package pipeline

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gagni555/course-content-to-study-material-generator/constants"
	"github.com/gagni555/course-content-to-study-material-generator/internal/entity"
)

// StageEvent is emitted once per stage attempt, success or failure.
type StageEvent struct {
	JobID      uuid.UUID       `json:"job_id"`
	Stage      constants.Stage `json:"stage"`
	Attempt    int             `json:"attempt"`
	Duration   time.Duration   `json:"duration"`
	Usage      entity.Usage    `json:"usage"`
	Confidence float32         `json:"confidence"`
	Err        string          `json:"error,omitempty"`
}

// EventSink receives stage lifecycle events. Implementations must not block.
type EventSink interface {
	Emit(ev StageEvent)
}

// LogSink writes stage events to structured logs. It is the default sink.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) Emit(ev StageEvent) {
	attrs := []any{
		"job_id", ev.JobID,
		"stage", ev.Stage,
		"attempt", ev.Attempt,
		"duration_ms", ev.Duration.Milliseconds(),
		"tokens", ev.Usage.TotalTokens(),
		"cost_usd", ev.Usage.CostUSD,
		"confidence", ev.Confidence,
	}
	if ev.Err != "" {
		attrs = append(attrs, "error", ev.Err)
		s.logger.Warn("pipeline.stage.failed", attrs...)
		return
	}
	s.logger.Info("pipeline.stage.done", attrs...)
}
