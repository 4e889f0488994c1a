package constants

// Stage identifies one phase of the document pipeline.
type Stage string

const (
	StageIngestion  Stage = "INGESTION"
	StageAnalysis   Stage = "ANALYSIS"
	StageGeneration Stage = "GENERATION"
	StageQA         Stage = "QA"
)

// StageOrder is the fixed execution sequence. A job enters at INGESTION and
// leaves after QA.
var StageOrder = []Stage{StageIngestion, StageAnalysis, StageGeneration, StageQA}

// NextStage returns the stage after s, or "" when s is the last stage.
func NextStage(s Stage) Stage {
	for i, st := range StageOrder {
		if st == s && i+1 < len(StageOrder) {
			return StageOrder[i+1]
		}
	}
	return ""
}

// StageIndex returns the 0-based position of s in the sequence, or -1.
func StageIndex(s Stage) int {
	for i, st := range StageOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// StageProgress maps a completed stage to the job progress percentage
// reported to callers. Monotonically non-decreasing by construction.
var StageProgress = map[Stage]int32{
	StageIngestion:  25,
	StageAnalysis:   50,
	StageGeneration: 75,
	StageQA:         100,
}
