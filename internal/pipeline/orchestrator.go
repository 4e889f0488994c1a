package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gagni555/course-content-to-study-material-generator/constants"
	"github.com/gagni555/course-content-to-study-material-generator/internal/budget"
	"github.com/gagni555/course-content-to-study-material-generator/internal/checkpoint"
	"github.com/gagni555/course-content-to-study-material-generator/internal/common"
	"github.com/gagni555/course-content-to-study-material-generator/internal/confidence"
	"github.com/gagni555/course-content-to-study-material-generator/internal/entity"
	"github.com/gagni555/course-content-to-study-material-generator/internal/notify"
	"github.com/gagni555/course-content-to-study-material-generator/internal/retry"
)

// JobStore is the job persistence the orchestrator depends on.
type JobStore interface {
	Create(ctx context.Context, job *entity.Job) error
	Get(ctx context.Context, id uuid.UUID) (*entity.Job, error)
	Update(ctx context.Context, job *entity.Job) error
	// ListActive returns jobs in a non-terminal status.
	ListActive(ctx context.Context) ([]*entity.Job, error)
}

// GuideStore persists finished study guides.
type GuideStore interface {
	Save(ctx context.Context, guide *entity.StudyGuide) error
	GetByJob(ctx context.Context, jobID uuid.UUID) (*entity.StudyGuide, error)
}

// checkpointState is the durable per-job state: the cumulative stage payload
// plus attempt counters, so retries survive a process restart. The checkpoint
// row's stage column records the last stage whose output is in Payload.
// RescoreStage marks a stage a reviewer asked to re-run; it is durable so the
// request survives a restart between approval and the next advance.
type checkpointState struct {
	Payload      Payload                 `json:"payload"`
	Attempts     map[constants.Stage]int `json:"attempts,omitempty"`
	RescoreStage constants.Stage         `json:"rescore_stage,omitempty"`
}

// Orchestrator owns the job state machine. Submit validates and enqueues,
// Advance drives exactly one stage transition, Run drives a job until it
// parks or terminates. All per-job mutation is serialized by a per-job lock.
type Orchestrator struct {
	jobs      JobStore
	guides    GuideStore
	ckpts     checkpoint.Store
	eval      *confidence.Evaluator
	retrier   *retry.Controller
	executors map[constants.Stage]StageExecutor
	events    EventSink
	notifier  notify.Notifier
	rescore   bool
	clock     func() time.Time
	sleep     func(ctx context.Context, d time.Duration) error
	statFile  func(path string) (os.FileInfo, error)
	logger    *slog.Logger

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithEventSink replaces the default log sink.
func WithEventSink(s EventSink) Option {
	return func(o *Orchestrator) { o.events = s }
}

// WithNotifier sets the critical-alert notifier.
func WithNotifier(n notify.Notifier) Option {
	return func(o *Orchestrator) { o.notifier = n }
}

// WithReviewRescore makes review approval re-run the parked stage instead of
// accepting its warned result as-is.
func WithReviewRescore(enabled bool) Option {
	return func(o *Orchestrator) { o.rescore = enabled }
}

// WithClock injects a time source for tests.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.clock = now }
}

// WithSleep injects the retry-delay sleeper for tests.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(o *Orchestrator) { o.sleep = sleep }
}

// WithStat injects the document stat function for tests.
func WithStat(stat func(path string) (os.FileInfo, error)) Option {
	return func(o *Orchestrator) { o.statFile = stat }
}

func NewOrchestrator(
	jobs JobStore,
	guides GuideStore,
	ckpts checkpoint.Store,
	eval *confidence.Evaluator,
	retrier *retry.Controller,
	executors []StageExecutor,
	logger *slog.Logger,
	opts ...Option,
) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	o := &Orchestrator{
		jobs:      jobs,
		guides:    guides,
		ckpts:     ckpts,
		eval:      eval,
		retrier:   retrier,
		executors: make(map[constants.Stage]StageExecutor, len(executors)),
		events:    NewLogSink(logger),
		notifier:  notify.NewNopNotifier(logger),
		clock:     time.Now,
		sleep:     sleepCtx,
		statFile:  os.Stat,
		logger:    logger,
		locks:     make(map[uuid.UUID]*sync.Mutex),
	}
	for _, ex := range executors {
		o.executors[ex.Kind()] = ex
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Submit validates the document reference and creates a queued job. All
// validation happens before any cost is incurred; a rejected submission
// never reaches an executor.
func (o *Orchestrator) Submit(ctx context.Context, userID uuid.UUID, documentRef string, prefs entity.Preferences) (*entity.Job, error) {
	if documentRef == "" {
		return nil, common.NewValidationError("document reference is required")
	}
	format := constants.MapExtToFormat(filepath.Ext(documentRef))
	if format == "" {
		return nil, common.NewValidationError(fmt.Sprintf("unsupported document type %q", filepath.Ext(documentRef)))
	}
	info, err := o.statFile(documentRef)
	if err != nil {
		return nil, common.NewValidationError(fmt.Sprintf("document not readable: %v", err))
	}
	if info.Size() > constants.MaxUploadBytes {
		return nil, common.NewValidationError(fmt.Sprintf("document exceeds %d byte limit", constants.MaxUploadBytes))
	}

	now := o.clock()
	job := &entity.Job{
		ID:          uuid.New(),
		UserID:      userID,
		DocumentRef: documentRef,
		Format:      format,
		Stage:       constants.StageIngestion,
		Status:      constants.JobStatusQueued,
		Message:     "queued",
		CreatedAt:   now,
		UpdatedAt:   now,
		Preferences: prefs,
	}
	if err := o.jobs.Create(ctx, job); err != nil {
		return nil, common.WrapError(err, "create job")
	}
	o.logger.Info("pipeline.submit", "job_id", job.ID, "user_id", userID, "format", format)
	return job, nil
}

// Run drives jobID through stages until it completes, fails, or parks for
// review. It is the unit of work handed to the async queue.
func (o *Orchestrator) Run(ctx context.Context, jobID uuid.UUID) error {
	for {
		job, err := o.Advance(ctx, jobID)
		if err != nil {
			return err
		}
		if job.Status.IsTerminal() || job.Status == constants.JobStatusAwaitingReview {
			return nil
		}
	}
}

// Advance performs exactly one stage transition for jobID. Calling it on a
// job already past the pending stage is a no-op that realigns the job row
// with the durable checkpoint; no stage re-runs and no second checkpoint
// write happens.
func (o *Orchestrator) Advance(ctx context.Context, jobID uuid.UUID) (*entity.Job, error) {
	lock := o.jobLock(jobID)
	lock.Lock()
	defer lock.Unlock()

	job, err := o.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status.IsTerminal() || job.Status == constants.JobStatusAwaitingReview {
		return job, nil
	}
	if job.CancelRequested {
		return o.failJob(ctx, job, constants.ReasonUserCancelled, "cancelled by user", errors.New("cancelled by user"))
	}

	state, curSeq, lastDone, err := o.loadState(ctx, jobID)
	if err != nil {
		return nil, err
	}

	// Realign with the checkpoint: a stage whose output is durable is never
	// re-run, except when a review resolution explicitly asked for a rescore.
	if state.RescoreStage != "" {
		job.Stage = state.RescoreStage
	} else if lastDone != "" {
		if constants.StageIndex(job.Stage) <= constants.StageIndex(lastDone) {
			next := constants.NextStage(lastDone)
			if next == "" {
				return o.completeJob(ctx, job, state)
			}
			job.Stage = next
		}
	}

	stage := job.Stage
	exec, ok := o.executors[stage]
	if !ok {
		return nil, common.InternalErrorf("no executor for stage %s", stage)
	}
	if job.Status == constants.JobStatusQueued {
		job.Status = constants.JobStatusRunning
		job.Message = "running " + string(stage)
		job.UpdatedAt = o.clock()
		if err := o.jobs.Update(ctx, job); err != nil {
			return nil, err
		}
	}

	return o.runStage(ctx, job, exec, state, curSeq, lastDone)
}

// runStage executes one stage with retry, confidence evaluation, and a
// single checkpoint write on success. Cancellation is cooperative: an
// in-flight executor call runs to completion and the request is honored at
// the next attempt or stage boundary.
func (o *Orchestrator) runStage(ctx context.Context, job *entity.Job, exec StageExecutor, state checkpointState, curSeq int64, lastDone constants.Stage) (*entity.Job, error) {
	stage := exec.Kind()
	attempt := state.Attempts[stage]

	for {
		if fresh, err := o.jobs.Get(ctx, job.ID); err == nil && fresh.CancelRequested {
			job.CancelRequested = true
			return o.failJob(ctx, job, constants.ReasonUserCancelled, "cancelled by user", errors.New("cancelled by user"))
		}

		start := o.clock()
		out, runErr := exec.Run(ctx, job, state.Payload)
		dur := time.Since(start)

		job.TokensUsed += out.Usage.TotalTokens()
		job.SpendUSD += out.Usage.CostUSD

		if runErr != nil {
			o.events.Emit(StageEvent{
				JobID: job.ID, Stage: stage, Attempt: attempt,
				Duration: dur, Usage: out.Usage, Err: runErr.Error(),
			})

			var denied *budget.DeniedError
			if errors.As(runErr, &denied) {
				return o.parkJob(ctx, job, constants.ReasonBudgetExceeded,
					fmt.Sprintf("daily budget exhausted (%s)", denied.Reason), runErr)
			}

			class := o.retrier.Classify(runErr)
			// The generation executor owns its model retry loop; transient
			// exhaustion there means primary and fallback are both spent.
			if stage == constants.StageGeneration && (class == retry.Transient || class == retry.RateLimited) {
				return o.parkJob(ctx, job, constants.ReasonRetriesExhausted,
					"generation failed on both primary and fallback models", runErr)
			}

			dec := o.retrier.Decide(class, attempt)
			if dec.Alert {
				alertErr := o.notifier.Alert(ctx, notify.Alert{
					JobID: job.ID, Stage: stage, Error: runErr.Error(), Timestamp: o.clock(),
				})
				if alertErr != nil {
					o.logger.Error("pipeline.alert_failed", "job_id", job.ID, "error", alertErr)
				}
				return o.failJob(ctx, job, constants.ReasonCriticalError,
					fmt.Sprintf("critical failure during %s; operators have been notified", stage), runErr)
			}
			if dec.Retry {
				attempt++
				curSeq = o.persistAttempts(ctx, job.ID, &state, stage, attempt, curSeq, lastDone)
				if serr := o.sleep(ctx, dec.Delay); serr != nil {
					if job.CancelRequested {
						return o.failJob(ctx, job, constants.ReasonUserCancelled, "cancelled by user", serr)
					}
					return o.failJob(ctx, job, constants.ReasonInternalError, "processing interrupted", serr)
				}
				continue
			}
			if dec.Escalate {
				return o.parkJob(ctx, job, constants.ReasonRetriesExhausted,
					fmt.Sprintf("%s retries exhausted", stage), runErr)
			}
			// Validation errors carry our own wording and are safe to show;
			// anything else may embed provider internals and is summarized.
			msg := fmt.Sprintf("%s failed and cannot be retried", stage)
			if common.IsValidationError(runErr) {
				msg = runErr.Error()
			}
			return o.failJob(ctx, job, constants.ReasonPermanentError, msg, runErr)
		}

		o.events.Emit(StageEvent{
			JobID: job.ID, Stage: stage, Attempt: attempt,
			Duration: dur, Usage: out.Usage, Confidence: out.Confidence,
		})

		result := entity.StageResult{
			Confidence: out.Confidence,
			Flags:      out.Flags,
			Usage:      out.Usage,
		}
		decision := o.eval.Evaluate(stage, result)
		switch decision {
		case confidence.Reject:
			rejErr := fmt.Errorf("%s confidence %.2f below reject threshold", stage, out.Confidence)
			dec := o.retrier.Decide(retry.Transient, attempt)
			if dec.Retry {
				attempt++
				curSeq = o.persistAttempts(ctx, job.ID, &state, stage, attempt, curSeq, lastDone)
				if serr := o.sleep(ctx, dec.Delay); serr != nil {
					return o.failJob(ctx, job, constants.ReasonInternalError, "processing interrupted", serr)
				}
				continue
			}
			return o.parkJob(ctx, job, constants.ReasonLowConfidence, rejErr.Error(), nil)

		case confidence.Warn, confidence.Accept:
			state.Payload = out.Payload
			delete(state.Attempts, stage)
			state.RescoreStage = ""
			curSeq++
			raw, err := json.Marshal(state)
			if err != nil {
				return nil, common.WrapError(err, "marshal checkpoint")
			}
			if err := o.ckpts.Save(ctx, job.ID, stage, curSeq, raw); err != nil {
				return nil, common.WrapError(err, "save checkpoint")
			}

			if decision == confidence.Warn {
				return o.parkJob(ctx, job, constants.ReasonLowConfidence,
					fmt.Sprintf("%s confidence %.2f in warn band; result preserved for review", stage, out.Confidence), nil)
			}

			next := constants.NextStage(stage)
			if next == "" {
				return o.completeJob(ctx, job, state)
			}
			job.Stage = next
			job.Progress = constants.StageProgress[stage]
			job.Message = "completed " + string(stage)
			job.UpdatedAt = o.clock()
			// A cancel may have landed while the stage ran; the boundary
			// write must not clobber the request.
			if fresh, ferr := o.jobs.Get(ctx, job.ID); ferr == nil && fresh.CancelRequested {
				job.CancelRequested = true
			}
			if err := o.jobs.Update(ctx, job); err != nil {
				return nil, err
			}
			return job, nil
		}
	}
}

// Cancel requests cooperative cancellation. Queued and parked jobs fail
// immediately; a running job lets its in-flight call finish and stops at the
// next attempt or stage boundary.
func (o *Orchestrator) Cancel(ctx context.Context, jobID uuid.UUID) (*entity.Job, error) {
	job, err := o.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status.IsTerminal() {
		return job, nil
	}
	job.CancelRequested = true
	job.UpdatedAt = o.clock()
	if err := o.jobs.Update(ctx, job); err != nil {
		return nil, err
	}
	o.logger.Info("pipeline.cancel_requested", "job_id", jobID, "status", job.Status)

	if job.Status == constants.JobStatusQueued || job.Status == constants.JobStatusAwaitingReview {
		return o.failJob(ctx, job, constants.ReasonUserCancelled, "cancelled by user", errors.New("cancelled by user"))
	}
	return job, nil
}

// ResolveReview applies a human decision to a parked job. Approval accepts
// the preserved result and resumes the pipeline (or finalizes when the last
// stage is already durable); rejection fails the job. With rescore enabled
// the parked stage runs again instead of its warned result being accepted.
func (o *Orchestrator) ResolveReview(ctx context.Context, jobID uuid.UUID, approve bool, note string) (*entity.Job, error) {
	lock := o.jobLock(jobID)
	lock.Lock()
	defer lock.Unlock()

	job, err := o.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != constants.JobStatusAwaitingReview {
		return nil, common.InvalidArgumentErrorf("job %s is %s, not awaiting review", jobID, job.Status)
	}
	if !approve {
		rejErr := fmt.Errorf("rejected by reviewer: %s", note)
		return o.failJob(ctx, job, job.ReasonCode, rejErr.Error(), rejErr)
	}

	state, curSeq, lastDone, err := o.loadState(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if o.rescore && job.ReasonCode == constants.ReasonLowConfidence && lastDone != "" {
		// Re-run the warned stage rather than trusting its score. The marker
		// is checkpointed so it survives a restart before the next advance.
		state.RescoreStage = lastDone
		raw, merr := json.Marshal(state)
		if merr != nil {
			return nil, common.WrapError(merr, "marshal checkpoint")
		}
		if err := o.ckpts.Save(ctx, jobID, lastDone, curSeq+1, raw); err != nil {
			return nil, common.WrapError(err, "persist rescore request")
		}
		job.Stage = lastDone
	} else if lastDone == constants.StageQA {
		return o.completeJob(ctx, job, state)
	} else if lastDone != "" {
		job.Stage = constants.NextStage(lastDone)
	}

	job.Status = constants.JobStatusQueued
	job.ReasonCode = ""
	job.Message = "review approved"
	job.UpdatedAt = o.clock()
	if err := o.jobs.Update(ctx, job); err != nil {
		return nil, err
	}
	o.logger.Info("pipeline.review_resolved", "job_id", jobID, "approved", true, "stage", job.Stage)
	return job, nil
}

// Recover realigns non-terminal jobs with their checkpoints after a restart
// and returns the jobs that should be re-enqueued. Jobs with no usable
// checkpoint restart from ingestion; parked jobs keep waiting for a human.
func (o *Orchestrator) Recover(ctx context.Context) ([]*entity.Job, error) {
	active, err := o.jobs.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	var resumable []*entity.Job
	for _, job := range active {
		if job.Status == constants.JobStatusAwaitingReview {
			continue
		}
		state, _, lastDone, err := o.loadState(ctx, job.ID)
		if err != nil {
			o.logger.Error("pipeline.recover_load_failed", "job_id", job.ID, "error", err)
			continue
		}
		if state.RescoreStage != "" {
			job.Stage = state.RescoreStage
		} else if lastDone == constants.StageQA {
			if _, err := o.completeJob(ctx, job, state); err != nil {
				o.logger.Error("pipeline.recover_finalize_failed", "job_id", job.ID, "error", err)
			}
			continue
		} else if lastDone != "" {
			job.Stage = constants.NextStage(lastDone)
			job.Progress = constants.StageProgress[lastDone]
		} else {
			job.Stage = constants.StageIngestion
			job.Progress = 0
		}
		job.Status = constants.JobStatusQueued
		job.Message = "recovered"
		job.UpdatedAt = o.clock()
		if err := o.jobs.Update(ctx, job); err != nil {
			o.logger.Error("pipeline.recover_update_failed", "job_id", job.ID, "error", err)
			continue
		}
		o.logger.Info("pipeline.recovered", "job_id", job.ID, "resume_stage", job.Stage)
		resumable = append(resumable, job)
	}
	return resumable, nil
}

// loadState reads the job's checkpoint. It returns the decoded state, the
// current sequence number, and the last durably completed stage ("" when the
// job has no usable checkpoint).
func (o *Orchestrator) loadState(ctx context.Context, jobID uuid.UUID) (checkpointState, int64, constants.Stage, error) {
	state := checkpointState{Attempts: make(map[constants.Stage]int)}
	cp, err := o.ckpts.Load(ctx, jobID)
	if err != nil {
		return state, 0, "", common.WrapError(err, "load checkpoint")
	}
	if cp == nil {
		return state, 0, "", nil
	}
	if err := json.Unmarshal(cp.Payload, &state); err != nil {
		o.logger.Error("pipeline.checkpoint_corrupt", "job_id", jobID, "error", err)
		return checkpointState{Attempts: make(map[constants.Stage]int)}, cp.Seq, "", nil
	}
	if state.Attempts == nil {
		state.Attempts = make(map[constants.Stage]int)
	}
	lastDone := cp.Stage
	if state.Payload.Document == nil {
		// attempt-only checkpoint from before the first completed stage
		lastDone = ""
	}
	return state, cp.Seq, lastDone, nil
}

// persistAttempts makes retry counters durable so a restart mid-retry does
// not reset them. Before any stage completes there is nothing durable to
// anchor the write to, so counters stay in memory until the first checkpoint.
func (o *Orchestrator) persistAttempts(ctx context.Context, jobID uuid.UUID, state *checkpointState, stage constants.Stage, attempt int, curSeq int64, lastDone constants.Stage) int64 {
	state.Attempts[stage] = attempt
	if lastDone == "" {
		return curSeq
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return curSeq
	}
	if err := o.ckpts.Save(ctx, jobID, lastDone, curSeq+1, raw); err != nil {
		o.logger.Warn("pipeline.attempt_persist_failed", "job_id", jobID, "error", err)
		return curSeq
	}
	return curSeq + 1
}

// completeJob persists the final study guide and marks the job done.
func (o *Orchestrator) completeJob(ctx context.Context, job *entity.Job, state checkpointState) (*entity.Job, error) {
	if state.Payload.Guide == nil {
		return nil, common.InternalError("completing job without generated guide")
	}
	content, err := json.Marshal(state.Payload.Guide)
	if err != nil {
		return nil, common.WrapError(err, "marshal guide content")
	}
	guide := &entity.StudyGuide{
		ID:            uuid.New(),
		JobID:         job.ID,
		UserID:        job.UserID,
		Title:         state.Payload.Guide.Title,
		Content:       content,
		DetailLevel:   job.Preferences.DetailLevel,
		QuestionCount: len(state.Payload.Guide.Questions),
		ConceptCount:  len(state.Payload.Guide.Concepts),
		QAScore:       state.Payload.QAScore,
		GeneratedAt:   o.clock(),
	}
	if err := o.guides.Save(ctx, guide); err != nil {
		return nil, common.WrapError(err, "save study guide")
	}

	now := o.clock()
	job.GuideID = &guide.ID
	job.Stage = constants.StageQA
	job.Status = constants.JobStatusCompleted
	job.Progress = 100
	job.Message = "completed"
	job.ReasonCode = ""
	job.FinishedAt = &now
	job.UpdatedAt = now
	if err := o.jobs.Update(ctx, job); err != nil {
		return nil, err
	}
	if err := o.ckpts.Clear(ctx, job.ID); err != nil {
		o.logger.Warn("pipeline.checkpoint_clear_failed", "job_id", job.ID, "error", err)
	}
	o.dropLock(job.ID)
	o.logger.Info("pipeline.completed", "job_id", job.ID, "guide_id", guide.ID,
		"qa_score", state.Payload.QAScore, "tokens", job.TokensUsed, "cost_usd", job.SpendUSD)
	return job, nil
}

// parkJob moves the job to awaiting_review. Its checkpoint is left intact so
// the preserved result survives until a human decides. message must already
// be safe to show; the raw cause goes to last_error and the logs only.
func (o *Orchestrator) parkJob(ctx context.Context, job *entity.Job, reason, message string, cause error) (*entity.Job, error) {
	job.Status = constants.JobStatusAwaitingReview
	job.ReasonCode = reason
	job.Message = message
	if cause != nil {
		raw := cause.Error()
		job.LastError = &raw
	}
	job.UpdatedAt = o.clock()
	if err := o.jobs.Update(ctx, job); err != nil {
		return nil, err
	}
	o.logger.Warn("pipeline.awaiting_review", "job_id", job.ID, "stage", job.Stage, "reason", reason, "error", cause)
	return job, nil
}

// failJob terminates the job. message is the user-visible summary and never
// carries upstream provider output; cause is preserved verbatim in last_error.
func (o *Orchestrator) failJob(ctx context.Context, job *entity.Job, reason, message string, cause error) (*entity.Job, error) {
	now := o.clock()
	raw := cause.Error()
	job.Status = constants.JobStatusFailed
	job.ReasonCode = reason
	job.Message = message
	job.LastError = &raw
	job.FinishedAt = &now
	job.UpdatedAt = now
	if err := o.jobs.Update(ctx, job); err != nil {
		return nil, err
	}
	o.dropLock(job.ID)
	o.logger.Error("pipeline.failed", "job_id", job.ID, "stage", job.Stage, "reason", reason, "error", raw)
	return job, nil
}

func (o *Orchestrator) jobLock(jobID uuid.UUID) *sync.Mutex {
	o.mu.Lock()
	defer o.mu.Unlock()
	lock, ok := o.locks[jobID]
	if !ok {
		lock = &sync.Mutex{}
		o.locks[jobID] = lock
	}
	return lock
}

// dropLock evicts a terminal job's lock entry; callers still holding the
// mutex keep a valid reference.
func (o *Orchestrator) dropLock(jobID uuid.UUID) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.locks, jobID)
}
