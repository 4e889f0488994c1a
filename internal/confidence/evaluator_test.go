package confidence

import (
	"testing"

	"github.com/gagni555/course-content-to-study-material-generator/constants"
	"github.com/gagni555/course-content-to-study-material-generator/internal/common"
	"github.com/gagni555/course-content-to-study-material-generator/internal/entity"
)

func defaultEvaluator() *Evaluator {
	accept := common.StageThresholds{Ingestion: 0.80, Analysis: 0.80, Generation: 0.80, QA: 0.80}
	reject := common.StageThresholds{Ingestion: 0.60, Analysis: 0.60, Generation: 0.60, QA: 0.60}
	return NewEvaluator(accept, reject, nil)
}

func TestEvaluate_Bands(t *testing.T) {
	e := defaultEvaluator()
	cases := []struct {
		score float32
		want  Decision
	}{
		{0.95, Accept},
		{0.80, Accept}, // boundary: accept threshold is inclusive
		{0.79, Warn},
		{0.65, Warn},
		{0.60, Warn}, // boundary: reject threshold is inclusive for warn
		{0.59, Reject},
		{0.0, Reject},
	}
	for _, tc := range cases {
		got := e.Evaluate(constants.StageQA, entity.StageResult{Confidence: tc.score})
		if got != tc.want {
			t.Fatalf("score %.2f: got %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestEvaluate_StageSpecificThresholds(t *testing.T) {
	accept := common.StageThresholds{Ingestion: 0.50, Analysis: 0.90, Generation: 0.80, QA: 0.80}
	reject := common.StageThresholds{Ingestion: 0.20, Analysis: 0.70, Generation: 0.60, QA: 0.60}
	e := NewEvaluator(accept, reject, nil)

	res := entity.StageResult{Confidence: 0.75}
	if got := e.Evaluate(constants.StageIngestion, res); got != Accept {
		t.Fatalf("ingestion at 0.75 should accept, got %s", got)
	}
	if got := e.Evaluate(constants.StageAnalysis, res); got != Warn {
		t.Fatalf("analysis at 0.75 should warn, got %s", got)
	}
	res.Confidence = 0.60
	if got := e.Evaluate(constants.StageAnalysis, res); got != Reject {
		t.Fatalf("analysis at 0.60 should reject, got %s", got)
	}
}
