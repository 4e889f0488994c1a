package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gagni555/course-content-to-study-material-generator/constants"
	"github.com/gagni555/course-content-to-study-material-generator/internal/budget"
	"github.com/gagni555/course-content-to-study-material-generator/internal/common"
	"github.com/gagni555/course-content-to-study-material-generator/internal/entity"
	"github.com/gagni555/course-content-to-study-material-generator/internal/extract"
	"github.com/gagni555/course-content-to-study-material-generator/internal/llm"
	"github.com/gagni555/course-content-to-study-material-generator/internal/qa"
	"github.com/gagni555/course-content-to-study-material-generator/internal/retry"
)

// Payload is the cumulative stage output carried through the pipeline and
// persisted in checkpoints. Each stage fills its own field and must not
// modify fields written by earlier stages.
type Payload struct {
	Document *entity.NormalizedDocument `json:"document,omitempty"`
	Analysis *entity.AnalysisResult     `json:"analysis,omitempty"`
	Guide    *entity.StudyGuideContent  `json:"guide,omitempty"`
	QAScore  float32                    `json:"qa_score,omitempty"`
	QAFlags  []string                   `json:"qa_flags,omitempty"`
}

// Outcome is one stage attempt's result before confidence evaluation.
type Outcome struct {
	Payload    Payload
	Confidence float32
	Flags      []string
	Usage      entity.Usage
}

// StageExecutor runs one stage kind. Implementations are stateless across
// jobs; all per-job state flows through the payload.
type StageExecutor interface {
	Kind() constants.Stage
	Run(ctx context.Context, job *entity.Job, in Payload) (Outcome, error)
}

// sleepCtx waits d or until ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// IngestionExecutor parses the source document into a NormalizedDocument.
type IngestionExecutor struct {
	extractor extract.TextExtractor
	logger    *slog.Logger
}

func NewIngestionExecutor(extractor extract.TextExtractor, logger *slog.Logger) *IngestionExecutor {
	if logger == nil {
		logger = slog.Default()
	}
	return &IngestionExecutor{extractor: extractor, logger: logger}
}

func (e *IngestionExecutor) Kind() constants.Stage { return constants.StageIngestion }

func (e *IngestionExecutor) Run(ctx context.Context, job *entity.Job, in Payload) (Outcome, error) {
	res, err := e.extractor.Extract(ctx, job.DocumentRef)
	if err != nil {
		return Outcome{}, err
	}
	if strings.TrimSpace(res.Text) == "" {
		return Outcome{}, common.NewValidationError("document contains no extractable text")
	}

	title := job.Preferences.Topic
	if title == "" {
		base := filepath.Base(job.DocumentRef)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	doc := entity.NormalizedDocument{
		DocumentID: uuid.New(),
		Title:      title,
		PageCount:  res.Pages,
		WordCount:  res.WordCount,
		Metadata: map[string]string{
			"source_type": res.SourceType,
			"method":      res.Method,
		},
	}
	for i, page := range strings.Split(res.Text, "\f") {
		page = strings.TrimSpace(page)
		if page == "" {
			continue
		}
		doc.Sections = append(doc.Sections, entity.DocumentSection{
			Type:     "paragraph",
			Level:    1,
			Content:  page,
			Page:     i + 1,
			Position: len(doc.Sections),
		})
	}

	in.Document = &doc
	return Outcome{
		Payload:    in,
		Confidence: res.Confidence,
		Flags:      res.Warnings,
	}, nil
}

// AnalysisExecutor extracts concepts from the normalized document. Its
// confidence is the fraction of extracted terms that actually occur in the
// source text; terms the model introduced are flagged.
type AnalysisExecutor struct {
	extractor llm.ConceptExtractor
	logger    *slog.Logger
}

func NewAnalysisExecutor(extractor llm.ConceptExtractor, logger *slog.Logger) *AnalysisExecutor {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalysisExecutor{extractor: extractor, logger: logger}
}

func (e *AnalysisExecutor) Kind() constants.Stage { return constants.StageAnalysis }

func (e *AnalysisExecutor) Run(ctx context.Context, job *entity.Job, in Payload) (Outcome, error) {
	if in.Document == nil {
		return Outcome{}, common.InternalError("analysis requires ingestion output")
	}
	text := in.Document.FullText()

	analysis, usage, err := e.extractor.ExtractConcepts(ctx, llm.AnalyzeRequest{
		DocumentText:    text,
		Title:           in.Document.Title,
		Topic:           job.Preferences.Topic,
		DifficultyLevel: job.Preferences.DifficultyLevel,
	})
	if err != nil {
		return Outcome{Usage: usage}, err
	}
	if len(analysis.Concepts) == 0 {
		return Outcome{Usage: usage}, retry.NewClassified(retry.Transient,
			fmt.Errorf("model returned no concepts"))
	}

	lower := strings.ToLower(text)
	var flags []string
	found := 0
	for _, c := range analysis.Concepts {
		if strings.Contains(lower, strings.ToLower(c.Term)) {
			found++
			continue
		}
		flags = append(flags, "introduced_entity:"+c.Term)
	}
	conf := float32(found) / float32(len(analysis.Concepts))

	in.Analysis = &analysis
	return Outcome{
		Payload:    in,
		Confidence: conf,
		Flags:      flags,
		Usage:      usage,
	}, nil
}

// GenerationExecutor produces the study guide. It owns the model retry loop:
// the primary model gets a bounded number of attempts, then the fallback is
// tried once. Budget is authorized before every dispatch and reconciled
// against actual consumption afterward, including failed calls.
type GenerationExecutor struct {
	generator       llm.GuideGenerator
	guard           *budget.Guard
	retrier         *retry.Controller
	primary         string
	fallback        string
	primaryAttempts int
	costPer1K       float64
	sleep           func(ctx context.Context, d time.Duration) error
	logger          *slog.Logger
}

func NewGenerationExecutor(generator llm.GuideGenerator, guard *budget.Guard, retrier *retry.Controller, cfg common.LLMConfig, logger *slog.Logger) *GenerationExecutor {
	if logger == nil {
		logger = slog.Default()
	}
	return &GenerationExecutor{
		generator:       generator,
		guard:           guard,
		retrier:         retrier,
		primary:         cfg.PrimaryModel,
		fallback:        cfg.FallbackModel,
		primaryAttempts: 3,
		costPer1K:       0.01,
		sleep:           sleepCtx,
		logger:          logger,
	}
}

func (e *GenerationExecutor) Kind() constants.Stage { return constants.StageGeneration }

func (e *GenerationExecutor) Run(ctx context.Context, job *entity.Job, in Payload) (Outcome, error) {
	if in.Document == nil || in.Analysis == nil {
		return Outcome{}, common.InternalError("generation requires ingestion and analysis output")
	}
	req := llm.GenerateRequest{
		DocumentText: in.Document.FullText(),
		Title:        in.Document.Title,
		Analysis:     *in.Analysis,
		Preferences:  job.Preferences,
	}

	var total entity.Usage
	var lastErr error

	for attempt := 0; attempt < e.primaryAttempts; attempt++ {
		guide, usage, err := e.call(ctx, job.UserID, req, e.primary)
		total.Add(usage)
		if err == nil {
			return e.outcome(in, guide, total), nil
		}
		lastErr = err
		class := e.retrier.Classify(err)
		if class == retry.Permanent || class == retry.Critical {
			return Outcome{Usage: total}, err
		}
		var denied *budget.DeniedError
		if errors.As(err, &denied) {
			return Outcome{Usage: total}, err
		}
		e.logger.Warn("generate.primary_attempt_failed",
			"job_id", job.ID, "model", e.primary, "attempt", attempt, "class", class, "error", err)
		if attempt+1 < e.primaryAttempts {
			var delay time.Duration
			if class == retry.RateLimited {
				delay = e.retrier.BackoffDelay(attempt)
			} else {
				delay = e.retrier.Policy().TransientDelay
			}
			if serr := e.sleep(ctx, delay); serr != nil {
				return Outcome{Usage: total}, serr
			}
		}
	}

	e.logger.Warn("generate.falling_back",
		"job_id", job.ID, "primary", e.primary, "fallback", e.fallback, "error", lastErr)
	guide, usage, err := e.call(ctx, job.UserID, req, e.fallback)
	total.Add(usage)
	if err != nil {
		return Outcome{Usage: total}, err
	}
	return e.outcome(in, guide, total), nil
}

// call authorizes budget for one model dispatch, makes the call, and settles
// the reservation with what the provider actually charged.
func (e *GenerationExecutor) call(ctx context.Context, userID uuid.UUID, req llm.GenerateRequest, model string) (entity.StudyGuideContent, entity.Usage, error) {
	rsv, err := e.guard.Authorize(userID, e.estimate(req.DocumentText))
	if err != nil {
		return entity.StudyGuideContent{}, entity.Usage{}, err
	}
	req.Model = model
	guide, usage, err := e.generator.GenerateGuide(ctx, req)
	rsv.Reconcile(usage)
	return guide, usage, err
}

func (e *GenerationExecutor) estimate(docText string) budget.Estimate {
	tokens := int64(len(docText)/4) + 2000
	return budget.Estimate{
		Tokens:  tokens,
		CostUSD: float64(tokens) / 1000 * e.costPer1K,
	}
}

// outcome computes generation confidence as concept coverage: the fraction of
// analyzed concepts the guide actually covers.
func (e *GenerationExecutor) outcome(in Payload, guide entity.StudyGuideContent, usage entity.Usage) Outcome {
	covered := 0
	var flags []string
	guideTerms := make(map[string]struct{}, len(guide.Concepts))
	for _, c := range guide.Concepts {
		guideTerms[strings.ToLower(c.Term)] = struct{}{}
	}
	for _, c := range in.Analysis.Concepts {
		if _, ok := guideTerms[strings.ToLower(c.Term)]; ok {
			covered++
			continue
		}
		flags = append(flags, "concept_dropped:"+c.Term)
	}
	conf := float32(1.0)
	if n := len(in.Analysis.Concepts); n > 0 {
		conf = float32(covered) / float32(n)
	}

	in.Guide = &guide
	return Outcome{
		Payload:    in,
		Confidence: conf,
		Flags:      flags,
		Usage:      usage,
	}
}

// QAExecutor scores the finished guide against the source document. It is a
// pure function of its inputs and makes no external calls.
type QAExecutor struct {
	scorer *qa.Scorer
}

func NewQAExecutor(scorer *qa.Scorer) *QAExecutor {
	return &QAExecutor{scorer: scorer}
}

func (e *QAExecutor) Kind() constants.Stage { return constants.StageQA }

func (e *QAExecutor) Run(_ context.Context, _ *entity.Job, in Payload) (Outcome, error) {
	if in.Document == nil || in.Guide == nil {
		return Outcome{}, common.InternalError("qa requires ingestion and generation output")
	}
	score, flags := e.scorer.Score(*in.Guide, *in.Document)
	in.QAScore = score
	in.QAFlags = flags
	return Outcome{
		Payload:    in,
		Confidence: score,
		Flags:      flags,
	}, nil
}
