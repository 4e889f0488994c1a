package confidence

import (
	"log/slog"

	"github.com/gagni555/course-content-to-study-material-generator/constants"
	"github.com/gagni555/course-content-to-study-material-generator/internal/common"
	"github.com/gagni555/course-content-to-study-material-generator/internal/entity"
)

// Decision is the evaluator's verdict on a stage result.
type Decision string

const (
	Accept Decision = "ACCEPT"
	Warn   Decision = "WARN"
	Reject Decision = "REJECT"
)

// Thresholds carries the per-stage accept and reject bounds. A score at or
// above accept passes; below reject fails; in between is the warn band.
type Thresholds struct {
	Accept float32
	Reject float32
}

// Evaluator scores stage output against configured per-stage thresholds.
type Evaluator struct {
	byStage map[constants.Stage]Thresholds
	logger  *slog.Logger
}

// NewEvaluator builds an evaluator from config thresholds.
func NewEvaluator(accept, reject common.StageThresholds, logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Evaluator{
		byStage: map[constants.Stage]Thresholds{
			constants.StageIngestion:  {Accept: accept.Ingestion, Reject: reject.Ingestion},
			constants.StageAnalysis:   {Accept: accept.Analysis, Reject: reject.Analysis},
			constants.StageGeneration: {Accept: accept.Generation, Reject: reject.Generation},
			constants.StageQA:         {Accept: accept.QA, Reject: reject.QA},
		},
		logger: logger,
	}
}

// ThresholdsFor returns the bounds applied to the given stage.
func (e *Evaluator) ThresholdsFor(stage constants.Stage) Thresholds {
	if t, ok := e.byStage[stage]; ok {
		return t
	}
	return Thresholds{Accept: 0.80, Reject: 0.60}
}

// Evaluate maps a stage result's confidence score to a decision.
// score >= accept -> Accept; reject <= score < accept -> Warn; below -> Reject.
func (e *Evaluator) Evaluate(stage constants.Stage, result entity.StageResult) Decision {
	t := e.ThresholdsFor(stage)
	var d Decision
	switch {
	case result.Confidence >= t.Accept:
		d = Accept
	case result.Confidence >= t.Reject:
		d = Warn
	default:
		d = Reject
	}
	if d != Accept {
		e.logger.Warn("confidence.decision",
			"stage", stage,
			"score", result.Confidence,
			"decision", d,
			"accept_threshold", t.Accept,
			"reject_threshold", t.Reject,
			"flags", result.Flags,
		)
	}
	return d
}
