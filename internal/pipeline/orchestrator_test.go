package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gagni555/course-content-to-study-material-generator/constants"
	"github.com/gagni555/course-content-to-study-material-generator/internal/budget"
	"github.com/gagni555/course-content-to-study-material-generator/internal/checkpoint"
	"github.com/gagni555/course-content-to-study-material-generator/internal/common"
	"github.com/gagni555/course-content-to-study-material-generator/internal/confidence"
	"github.com/gagni555/course-content-to-study-material-generator/internal/entity"
	"github.com/gagni555/course-content-to-study-material-generator/internal/llm"
	"github.com/gagni555/course-content-to-study-material-generator/internal/notify"
	"github.com/gagni555/course-content-to-study-material-generator/internal/retry"
)

type memJobs struct {
	mu sync.Mutex
	m  map[uuid.UUID]*entity.Job
}

func newMemJobs() *memJobs { return &memJobs{m: make(map[uuid.UUID]*entity.Job)} }

func (s *memJobs) Create(_ context.Context, job *entity.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *job
	s.m[job.ID] = &cp
	return nil
}

func (s *memJobs) Get(_ context.Context, id uuid.UUID) (*entity.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.m[id]
	if !ok {
		return nil, common.NotFoundError("job not found")
	}
	cp := *job
	return &cp, nil
}

func (s *memJobs) Update(_ context.Context, job *entity.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *job
	s.m[job.ID] = &cp
	return nil
}

func (s *memJobs) ListActive(_ context.Context) ([]*entity.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Job
	for _, job := range s.m {
		if !job.Status.IsTerminal() {
			cp := *job
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memGuides struct {
	mu sync.Mutex
	m  map[uuid.UUID]*entity.StudyGuide // keyed by job ID
}

func newMemGuides() *memGuides { return &memGuides{m: make(map[uuid.UUID]*entity.StudyGuide)} }

func (s *memGuides) Save(_ context.Context, guide *entity.StudyGuide) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *guide
	s.m[guide.JobID] = &cp
	return nil
}

func (s *memGuides) GetByJob(_ context.Context, jobID uuid.UUID) (*entity.StudyGuide, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	guide, ok := s.m[jobID]
	if !ok {
		return nil, common.NotFoundError("guide not found")
	}
	cp := *guide
	return &cp, nil
}

// countingStore wraps a checkpoint store and counts saves per stage.
type countingStore struct {
	checkpoint.Store
	mu    sync.Mutex
	saves map[constants.Stage]int
}

func newCountingStore(t *testing.T) *countingStore {
	t.Helper()
	inner, err := checkpoint.NewSQLiteStore(":memory:", nil)
	if err != nil {
		t.Fatalf("open checkpoint store: %v", err)
	}
	t.Cleanup(func() { _ = inner.Close() })
	return &countingStore{Store: inner, saves: make(map[constants.Stage]int)}
}

func (c *countingStore) Save(ctx context.Context, jobID uuid.UUID, stage constants.Stage, seq int64, payload json.RawMessage) error {
	c.mu.Lock()
	c.saves[stage]++
	c.mu.Unlock()
	return c.Store.Save(ctx, jobID, stage, seq, payload)
}

func (c *countingStore) savesFor(stage constants.Stage) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saves[stage]
}

// scriptExec is a scripted stage executor recording its invocations.
type scriptExec struct {
	kind constants.Stage
	mu   sync.Mutex
	runs int
	fn   func(job *entity.Job, in Payload) (Outcome, error)
}

func (s *scriptExec) Kind() constants.Stage { return s.kind }

func (s *scriptExec) Run(_ context.Context, job *entity.Job, in Payload) (Outcome, error) {
	s.mu.Lock()
	s.runs++
	s.mu.Unlock()
	return s.fn(job, in)
}

func (s *scriptExec) runCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runs
}

type fakeFileInfo struct{ size int64 }

func (f fakeFileInfo) Name() string       { return "doc" }
func (f fakeFileInfo) Size() int64        { return f.size }
func (f fakeFileInfo) Mode() fs.FileMode  { return 0 }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return false }
func (f fakeFileInfo) Sys() any           { return nil }

func okStat(string) (os.FileInfo, error) { return fakeFileInfo{size: 1024}, nil }

func testDoc() *entity.NormalizedDocument {
	return &entity.NormalizedDocument{
		DocumentID: uuid.New(),
		Title:      "Photosynthesis",
		Sections: []entity.DocumentSection{
			{Type: "paragraph", Level: 1, Content: "Photosynthesis converts light energy into chemical energy stored in glucose.", Page: 1},
		},
		PageCount: 1,
		WordCount: 11,
	}
}

func testAnalysis() *entity.AnalysisResult {
	return &entity.AnalysisResult{
		Concepts: []entity.Concept{
			{Term: "photosynthesis", Definition: "conversion of light energy to chemical energy", ImportanceScore: 0.9},
		},
	}
}

func testGuide() *entity.StudyGuideContent {
	return &entity.StudyGuideContent{
		Title: "Photosynthesis",
		SummarySections: []entity.SummarySection{
			{Level: "remember", Content: "Photosynthesis converts light energy into chemical energy stored in glucose molecules inside plant cells."},
		},
		Questions: []entity.Question{
			{QuestionType: "short_answer", QuestionText: "What does photosynthesis convert light energy into?", CorrectAnswer: "chemical energy stored in glucose"},
		},
		Concepts: testAnalysis().Concepts,
	}
}

// defaultExecs returns cooperative scripted executors producing high
// confidence at every stage.
func defaultExecs() map[constants.Stage]*scriptExec {
	return map[constants.Stage]*scriptExec{
		constants.StageIngestion: {kind: constants.StageIngestion, fn: func(_ *entity.Job, in Payload) (Outcome, error) {
			in.Document = testDoc()
			return Outcome{Payload: in, Confidence: 0.95}, nil
		}},
		constants.StageAnalysis: {kind: constants.StageAnalysis, fn: func(_ *entity.Job, in Payload) (Outcome, error) {
			in.Analysis = testAnalysis()
			return Outcome{Payload: in, Confidence: 0.95, Usage: entity.Usage{PromptTokens: 500, CompletionTokens: 200, CostUSD: 0.01}}, nil
		}},
		constants.StageGeneration: {kind: constants.StageGeneration, fn: func(_ *entity.Job, in Payload) (Outcome, error) {
			in.Guide = testGuide()
			return Outcome{Payload: in, Confidence: 0.95, Usage: entity.Usage{PromptTokens: 800, CompletionTokens: 600, CostUSD: 0.03}}, nil
		}},
		constants.StageQA: {kind: constants.StageQA, fn: func(_ *entity.Job, in Payload) (Outcome, error) {
			in.QAScore = 0.95
			return Outcome{Payload: in, Confidence: 0.95}, nil
		}},
	}
}

type rig struct {
	jobs   *memJobs
	guides *memGuides
	ckpts  *countingStore
	execs  map[constants.Stage]*scriptExec
	orch   *Orchestrator
}

func newRig(t *testing.T, opts ...Option) *rig {
	t.Helper()
	r := &rig{
		jobs:   newMemJobs(),
		guides: newMemGuides(),
		ckpts:  newCountingStore(t),
		execs:  defaultExecs(),
	}
	r.orch = r.buildOrchestrator(opts...)
	return r
}

func (r *rig) buildOrchestrator(opts ...Option) *Orchestrator {
	all := []StageExecutor{}
	for _, ex := range r.execs {
		all = append(all, ex)
	}
	thrAccept := common.StageThresholds{Ingestion: 0.80, Analysis: 0.80, Generation: 0.80, QA: 0.80}
	thrReject := common.StageThresholds{Ingestion: 0.60, Analysis: 0.60, Generation: 0.60, QA: 0.60}
	base := []Option{
		WithStat(okStat),
		WithSleep(func(context.Context, time.Duration) error { return nil }),
	}
	return NewOrchestrator(
		r.jobs, r.guides, r.ckpts,
		confidence.NewEvaluator(thrAccept, thrReject, nil),
		retry.NewController(retry.Policy{
			TransientAttempts:  3,
			TransientDelay:     time.Millisecond,
			RateLimitAttempts:  5,
			RateLimitBaseDelay: time.Millisecond,
			RateLimitMaxDelay:  4 * time.Millisecond,
		}),
		all, nil,
		append(base, opts...)...,
	)
}

func (r *rig) submit(t *testing.T) *entity.Job {
	t.Helper()
	job, err := r.orch.Submit(context.Background(), uuid.New(), "lecture.pdf", entity.Preferences{IncludeQuestions: true})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	return job
}

func TestSubmit_RejectsInvalidInputBeforeAnyCost(t *testing.T) {
	r := newRig(t)
	ctx := context.Background()

	cases := []struct {
		name string
		ref  string
		stat func(string) (os.FileInfo, error)
	}{
		{"empty ref", "", okStat},
		{"unsupported extension", "notes.exe", okStat},
		{"unreadable file", "lecture.pdf", func(string) (os.FileInfo, error) { return nil, errors.New("no such file") }},
		{"oversized file", "lecture.pdf", func(string) (os.FileInfo, error) {
			return fakeFileInfo{size: constants.MaxUploadBytes + 1}, nil
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r.orch.statFile = tc.stat
			_, err := r.orch.Submit(ctx, uuid.New(), tc.ref, entity.Preferences{})
			if !common.IsValidationError(err) {
				t.Fatalf("want validation error, got %v", err)
			}
		})
	}
	for stage, ex := range r.execs {
		if ex.runCount() != 0 {
			t.Fatalf("%s executor ran %d times on rejected submissions", stage, ex.runCount())
		}
	}
}

func TestRun_AllStagesHighConfidenceCompletes(t *testing.T) {
	r := newRig(t)
	ctx := context.Background()
	job := r.submit(t)

	if err := r.orch.Run(ctx, job.ID); err != nil {
		t.Fatalf("run: %v", err)
	}

	got, _ := r.jobs.Get(ctx, job.ID)
	if got.Status != constants.JobStatusCompleted {
		t.Fatalf("status = %s, want COMPLETED", got.Status)
	}
	if got.Progress != 100 {
		t.Fatalf("progress = %d, want 100", got.Progress)
	}
	if got.GuideID == nil {
		t.Fatal("completed job has no guide reference")
	}
	if got.TokensUsed != 500+200+800+600 {
		t.Fatalf("tokens used = %d", got.TokensUsed)
	}
	guide, err := r.guides.GetByJob(ctx, job.ID)
	if err != nil {
		t.Fatalf("guide not persisted: %v", err)
	}
	if guide.QAScore != 0.95 {
		t.Fatalf("qa score = %v", guide.QAScore)
	}
	for _, stage := range constants.StageOrder {
		if n := r.ckpts.savesFor(stage); n != 1 {
			t.Fatalf("%s checkpoint writes = %d, want 1", stage, n)
		}
		if r.execs[stage].runCount() != 1 {
			t.Fatalf("%s executor runs = %d, want 1", stage, r.execs[stage].runCount())
		}
	}
	// checkpoint cleared on completion
	cp, err := r.ckpts.Load(ctx, job.ID)
	if err != nil {
		t.Fatalf("load checkpoint: %v", err)
	}
	if cp != nil {
		t.Fatal("checkpoint not cleared after completion")
	}
}

func TestAdvance_IdempotentOnDurableStage(t *testing.T) {
	r := newRig(t)
	ctx := context.Background()
	job := r.submit(t)

	if _, err := r.orch.Advance(ctx, job.ID); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if r.execs[constants.StageIngestion].runCount() != 1 {
		t.Fatalf("ingestion runs = %d", r.execs[constants.StageIngestion].runCount())
	}

	// Simulate a crash after the checkpoint write but before the job row
	// update: the row still points at the completed stage.
	stale, _ := r.jobs.Get(ctx, job.ID)
	stale.Stage = constants.StageIngestion
	_ = r.jobs.Update(ctx, stale)

	if _, err := r.orch.Advance(ctx, job.ID); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if r.execs[constants.StageIngestion].runCount() != 1 {
		t.Fatal("durable ingestion stage re-ran")
	}
	if r.execs[constants.StageAnalysis].runCount() != 1 {
		t.Fatal("advance did not proceed to the pending stage")
	}
	if n := r.ckpts.savesFor(constants.StageIngestion); n != 1 {
		t.Fatalf("ingestion checkpoint writes = %d, want 1", n)
	}
}

func TestReject_RetriesThenParks_NeverCompletes(t *testing.T) {
	r := newRig(t)
	r.execs[constants.StageQA].fn = func(_ *entity.Job, in Payload) (Outcome, error) {
		in.QAScore = 0.30
		return Outcome{Payload: in, Confidence: 0.30}, nil
	}
	ctx := context.Background()
	job := r.submit(t)

	if err := r.orch.Run(ctx, job.ID); err != nil {
		t.Fatalf("run: %v", err)
	}
	got, _ := r.jobs.Get(ctx, job.ID)
	if got.Status != constants.JobStatusAwaitingReview {
		t.Fatalf("status = %s, want AWAITING_REVIEW", got.Status)
	}
	if got.ReasonCode != constants.ReasonLowConfidence {
		t.Fatalf("reason = %q", got.ReasonCode)
	}
	if n := r.execs[constants.StageQA].runCount(); n != 3 {
		t.Fatalf("qa attempts = %d, want 3", n)
	}
	if _, err := r.guides.GetByJob(ctx, job.ID); err == nil {
		t.Fatal("rejected output must never surface as a completed guide")
	}
}

func TestQAWarn_ParksWithResultPreserved_ThenApprovalCompletes(t *testing.T) {
	r := newRig(t)
	r.execs[constants.StageQA].fn = func(_ *entity.Job, in Payload) (Outcome, error) {
		in.QAScore = 0.65
		return Outcome{Payload: in, Confidence: 0.65}, nil
	}
	ctx := context.Background()
	job := r.submit(t)

	if err := r.orch.Run(ctx, job.ID); err != nil {
		t.Fatalf("run: %v", err)
	}
	got, _ := r.jobs.Get(ctx, job.ID)
	if got.Status != constants.JobStatusAwaitingReview {
		t.Fatalf("status = %s, want AWAITING_REVIEW", got.Status)
	}

	cp, err := r.ckpts.Load(ctx, job.ID)
	if err != nil || cp == nil {
		t.Fatalf("checkpoint missing for parked job: %v", err)
	}
	var state checkpointState
	if err := json.Unmarshal(cp.Payload, &state); err != nil {
		t.Fatalf("decode checkpoint: %v", err)
	}
	if state.Payload.Guide == nil {
		t.Fatal("parked job lost its generated guide")
	}

	resolved, err := r.orch.ResolveReview(ctx, job.ID, true, "looks fine")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.Status != constants.JobStatusCompleted {
		t.Fatalf("status after approval = %s, want COMPLETED", resolved.Status)
	}
	if _, err := r.guides.GetByJob(ctx, job.ID); err != nil {
		t.Fatalf("approved guide not persisted: %v", err)
	}
}

func TestResolveReview_RejectFailsJob(t *testing.T) {
	r := newRig(t)
	r.execs[constants.StageQA].fn = func(_ *entity.Job, in Payload) (Outcome, error) {
		return Outcome{Payload: in, Confidence: 0.65}, nil
	}
	ctx := context.Background()
	job := r.submit(t)
	_ = r.orch.Run(ctx, job.ID)

	resolved, err := r.orch.ResolveReview(ctx, job.ID, false, "hallucinated content")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.Status != constants.JobStatusFailed {
		t.Fatalf("status = %s, want FAILED", resolved.Status)
	}
}

func TestResolveReview_RequiresParkedJob(t *testing.T) {
	r := newRig(t)
	ctx := context.Background()
	job := r.submit(t)

	if _, err := r.orch.ResolveReview(ctx, job.ID, true, ""); err == nil {
		t.Fatal("resolving a non-parked job must fail")
	}
}

// fakeGenerator rate-limits the primary model and succeeds on the fallback.
type fakeGenerator struct {
	mu    sync.Mutex
	calls map[string]int
}

func (g *fakeGenerator) GenerateGuide(_ context.Context, req llm.GenerateRequest) (entity.StudyGuideContent, entity.Usage, error) {
	g.mu.Lock()
	g.calls[req.Model]++
	g.mu.Unlock()
	if req.Model == "gpt-4o" {
		return entity.StudyGuideContent{}, entity.Usage{}, retry.NewClassified(retry.RateLimited, errors.New("429 too many requests"))
	}
	return *testGuide(), entity.Usage{PromptTokens: 700, CompletionTokens: 500, CostUSD: 0.012, Model: req.Model}, nil
}

func (g *fakeGenerator) callsFor(model string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls[model]
}

func TestGeneration_PrimaryRateLimitedFallsBackOnce(t *testing.T) {
	r := newRig(t)
	gen := &fakeGenerator{calls: make(map[string]int)}
	guard := budget.NewGuard(common.BudgetConfig{DailyTokenLimit: 1_000_000, DailySpendLimit: 100}, nil)
	ge := NewGenerationExecutor(gen, guard,
		retry.NewController(retry.Policy{RateLimitBaseDelay: time.Millisecond, RateLimitMaxDelay: 2 * time.Millisecond}),
		common.LLMConfig{PrimaryModel: "gpt-4o", FallbackModel: "gpt-4o-mini"}, nil)
	ge.sleep = func(context.Context, time.Duration) error { return nil }
	delete(r.execs, constants.StageGeneration)
	r.orch.executors[constants.StageGeneration] = ge

	ctx := context.Background()
	job := r.submit(t)
	if err := r.orch.Run(ctx, job.ID); err != nil {
		t.Fatalf("run: %v", err)
	}

	if n := gen.callsFor("gpt-4o"); n != 3 {
		t.Fatalf("primary attempts = %d, want 3", n)
	}
	if n := gen.callsFor("gpt-4o-mini"); n != 1 {
		t.Fatalf("fallback attempts = %d, want 1", n)
	}
	got, _ := r.jobs.Get(ctx, job.ID)
	if got.Status != constants.JobStatusCompleted {
		t.Fatalf("status = %s, want COMPLETED", got.Status)
	}
	if got.TokensUsed < 700+500 {
		t.Fatalf("fallback usage not recorded: tokens = %d", got.TokensUsed)
	}
	if got.SpendUSD < 0.012 {
		t.Fatalf("fallback cost not recorded: spend = %v", got.SpendUSD)
	}
}

func TestGeneration_BudgetDeniedParksWithoutExternalCall(t *testing.T) {
	r := newRig(t)
	gen := &fakeGenerator{calls: make(map[string]int)}
	guard := budget.NewGuard(common.BudgetConfig{DailyTokenLimit: 10, DailySpendLimit: 100}, nil)

	ge := NewGenerationExecutor(gen, guard, retry.NewController(retry.DefaultPolicy()),
		common.LLMConfig{PrimaryModel: "gpt-4o", FallbackModel: "gpt-4o-mini"}, nil)
	r.orch.executors[constants.StageGeneration] = ge

	ctx := context.Background()
	job := r.submit(t)

	// exhaust the job's user daily allowance up front
	rsv, err := guard.Authorize(job.UserID, budget.Estimate{Tokens: 5})
	if err != nil {
		t.Fatalf("seed authorize: %v", err)
	}
	rsv.Reconcile(entity.Usage{PromptTokens: 50})
	if err := r.orch.Run(ctx, job.ID); err != nil {
		t.Fatalf("run: %v", err)
	}

	got, _ := r.jobs.Get(ctx, job.ID)
	if got.Status != constants.JobStatusAwaitingReview {
		t.Fatalf("status = %s, want AWAITING_REVIEW", got.Status)
	}
	if got.ReasonCode != constants.ReasonBudgetExceeded {
		t.Fatalf("reason = %q", got.ReasonCode)
	}
	if n := gen.callsFor("gpt-4o") + gen.callsFor("gpt-4o-mini"); n != 0 {
		t.Fatalf("external calls made despite denial: %d", n)
	}
}

func TestCancel_QueuedJobFailsImmediately(t *testing.T) {
	r := newRig(t)
	ctx := context.Background()
	job := r.submit(t)

	got, err := r.orch.Cancel(ctx, job.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if got.Status != constants.JobStatusFailed {
		t.Fatalf("status = %s, want FAILED", got.Status)
	}
	if got.ReasonCode != constants.ReasonUserCancelled {
		t.Fatalf("reason = %q", got.ReasonCode)
	}
}

func TestCancel_StopsAtStageBoundary(t *testing.T) {
	r := newRig(t)
	ctx := context.Background()
	job := r.submit(t)

	// Request cancellation while analysis runs; the next boundary check
	// must stop the job before generation.
	r.execs[constants.StageAnalysis].fn = func(j *entity.Job, in Payload) (Outcome, error) {
		fresh, _ := r.jobs.Get(ctx, j.ID)
		fresh.CancelRequested = true
		_ = r.jobs.Update(ctx, fresh)
		in.Analysis = testAnalysis()
		return Outcome{Payload: in, Confidence: 0.95}, nil
	}

	if err := r.orch.Run(ctx, job.ID); err != nil {
		t.Fatalf("run: %v", err)
	}
	got, _ := r.jobs.Get(ctx, job.ID)
	if got.Status != constants.JobStatusFailed {
		t.Fatalf("status = %s, want FAILED", got.Status)
	}
	if got.ReasonCode != constants.ReasonUserCancelled {
		t.Fatalf("reason = %q", got.ReasonCode)
	}
	if r.execs[constants.StageGeneration].runCount() != 0 {
		t.Fatal("generation ran after cancellation")
	}
}

func TestRecover_ResumesFromLastDurableStage(t *testing.T) {
	r := newRig(t)
	ctx := context.Background()
	job := r.submit(t)

	// Complete ingestion and analysis, then simulate a crash mid-flight.
	if _, err := r.orch.Advance(ctx, job.ID); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if _, err := r.orch.Advance(ctx, job.ID); err != nil {
		t.Fatalf("advance: %v", err)
	}
	crashed, _ := r.jobs.Get(ctx, job.ID)
	crashed.Status = constants.JobStatusRunning
	_ = r.jobs.Update(ctx, crashed)

	orch2 := r.buildOrchestrator()
	resumable, err := orch2.Recover(ctx)
	if err != nil {
		t.Fatalf("recover: %v", err)
	}
	if len(resumable) != 1 {
		t.Fatalf("resumable jobs = %d, want 1", len(resumable))
	}
	if resumable[0].Stage != constants.StageGeneration {
		t.Fatalf("resume stage = %s, want GENERATION", resumable[0].Stage)
	}

	if err := orch2.Run(ctx, job.ID); err != nil {
		t.Fatalf("run after recover: %v", err)
	}
	got, _ := r.jobs.Get(ctx, job.ID)
	if got.Status != constants.JobStatusCompleted {
		t.Fatalf("status = %s, want COMPLETED", got.Status)
	}
	// durable stages must not re-run after recovery
	if r.execs[constants.StageIngestion].runCount() != 1 {
		t.Fatalf("ingestion runs = %d, want 1", r.execs[constants.StageIngestion].runCount())
	}
	if r.execs[constants.StageAnalysis].runCount() != 1 {
		t.Fatalf("analysis runs = %d, want 1", r.execs[constants.StageAnalysis].runCount())
	}
}

func TestRecover_SkipsParkedJobs(t *testing.T) {
	r := newRig(t)
	r.execs[constants.StageQA].fn = func(_ *entity.Job, in Payload) (Outcome, error) {
		return Outcome{Payload: in, Confidence: 0.65}, nil
	}
	ctx := context.Background()
	job := r.submit(t)
	_ = r.orch.Run(ctx, job.ID)

	resumable, err := r.orch.Recover(ctx)
	if err != nil {
		t.Fatalf("recover: %v", err)
	}
	for _, j := range resumable {
		if j.ID == job.ID {
			t.Fatal("parked job was re-enqueued by recovery")
		}
	}
	got, _ := r.jobs.Get(ctx, job.ID)
	if got.Status != constants.JobStatusAwaitingReview {
		t.Fatalf("status = %s, want AWAITING_REVIEW", got.Status)
	}
}

func TestTransientFailure_RetriesThenSucceeds(t *testing.T) {
	r := newRig(t)
	fails := 2
	r.execs[constants.StageAnalysis].fn = func(_ *entity.Job, in Payload) (Outcome, error) {
		if fails > 0 {
			fails--
			return Outcome{}, retry.NewClassified(retry.Transient, errors.New("connection reset"))
		}
		in.Analysis = testAnalysis()
		return Outcome{Payload: in, Confidence: 0.95}, nil
	}
	ctx := context.Background()
	job := r.submit(t)

	if err := r.orch.Run(ctx, job.ID); err != nil {
		t.Fatalf("run: %v", err)
	}
	got, _ := r.jobs.Get(ctx, job.ID)
	if got.Status != constants.JobStatusCompleted {
		t.Fatalf("status = %s, want COMPLETED", got.Status)
	}
	if n := r.execs[constants.StageAnalysis].runCount(); n != 3 {
		t.Fatalf("analysis attempts = %d, want 3", n)
	}
}

func TestPermanentFailure_FailsWithoutRetry(t *testing.T) {
	r := newRig(t)
	r.execs[constants.StageAnalysis].fn = func(_ *entity.Job, in Payload) (Outcome, error) {
		return Outcome{}, retry.NewClassified(retry.Permanent, errors.New("document rejected by provider"))
	}
	ctx := context.Background()
	job := r.submit(t)

	if err := r.orch.Run(ctx, job.ID); err != nil {
		t.Fatalf("run: %v", err)
	}
	got, _ := r.jobs.Get(ctx, job.ID)
	if got.Status != constants.JobStatusFailed {
		t.Fatalf("status = %s, want FAILED", got.Status)
	}
	if got.ReasonCode != constants.ReasonPermanentError {
		t.Fatalf("reason = %q, want %q", got.ReasonCode, constants.ReasonPermanentError)
	}
	if n := r.execs[constants.StageAnalysis].runCount(); n != 1 {
		t.Fatalf("analysis attempts = %d, want 1", n)
	}
}

type notifierFunc func(ctx context.Context, jobID uuid.UUID) error

func (f notifierFunc) Alert(ctx context.Context, a notify.Alert) error { return f(ctx, a.JobID) }

func TestCriticalFailure_AlertsAndFails(t *testing.T) {
	r := newRig(t)
	var alerted []uuid.UUID
	var mu sync.Mutex
	r.orch.notifier = notifierFunc(func(_ context.Context, jobID uuid.UUID) error {
		mu.Lock()
		alerted = append(alerted, jobID)
		mu.Unlock()
		return nil
	})
	r.execs[constants.StageIngestion].fn = func(_ *entity.Job, in Payload) (Outcome, error) {
		return Outcome{}, retry.NewClassified(retry.Critical, errors.New("data corruption in checkpoint store"))
	}
	ctx := context.Background()
	job := r.submit(t)

	if err := r.orch.Run(ctx, job.ID); err != nil {
		t.Fatalf("run: %v", err)
	}
	got, _ := r.jobs.Get(ctx, job.ID)
	if got.Status != constants.JobStatusFailed {
		t.Fatalf("status = %s, want FAILED", got.Status)
	}
	if got.ReasonCode != constants.ReasonCriticalError {
		t.Fatalf("reason = %q, want %q", got.ReasonCode, constants.ReasonCriticalError)
	}
	if strings.Contains(got.Message, "data corruption") {
		t.Fatalf("message leaks internal error text: %q", got.Message)
	}
	mu.Lock()
	defer mu.Unlock()
	if len(alerted) != 1 || alerted[0] != job.ID {
		t.Fatalf("alerts = %v, want exactly one for %s", alerted, job.ID)
	}
}

func TestFailedJob_MessageHidesProviderInternals(t *testing.T) {
	r := newRig(t)
	providerBody := `status 400: {"error":{"message":"internal trace id prov-7f3a9 upstream shard us-east-1b"}}`
	r.execs[constants.StageAnalysis].fn = func(_ *entity.Job, in Payload) (Outcome, error) {
		return Outcome{}, retry.NewClassified(retry.Permanent, errors.New(providerBody))
	}
	ctx := context.Background()
	job := r.submit(t)

	if err := r.orch.Run(ctx, job.ID); err != nil {
		t.Fatalf("run: %v", err)
	}
	got, _ := r.jobs.Get(ctx, job.ID)
	if got.Status != constants.JobStatusFailed {
		t.Fatalf("status = %s, want FAILED", got.Status)
	}
	if got.ReasonCode != constants.ReasonPermanentError {
		t.Fatalf("reason = %q, want %q", got.ReasonCode, constants.ReasonPermanentError)
	}
	for _, leak := range []string{"prov-7f3a9", "us-east-1b", "{", "status 400"} {
		if strings.Contains(got.Message, leak) {
			t.Fatalf("message %q leaks provider text %q", got.Message, leak)
		}
	}
	if got.Message == "" {
		t.Fatal("failed job must carry a human-readable message")
	}
	if got.LastError == nil || !strings.Contains(*got.LastError, "prov-7f3a9") {
		t.Fatal("raw provider error must be preserved in last_error for operators")
	}
}

func TestGeneration_BothModelsFailParksWithSanitizedMessage(t *testing.T) {
	r := newRig(t)
	gen := generatorFunc(func(_ context.Context, req llm.GenerateRequest) (entity.StudyGuideContent, entity.Usage, error) {
		return entity.StudyGuideContent{}, entity.Usage{},
			retry.NewClassified(retry.RateLimited, errors.New("429 too many requests: retry-after 30s"))
	})
	guard := budget.NewGuard(common.BudgetConfig{DailyTokenLimit: 1_000_000, DailySpendLimit: 100}, nil)
	ge := NewGenerationExecutor(gen, guard,
		retry.NewController(retry.Policy{RateLimitBaseDelay: time.Millisecond, RateLimitMaxDelay: 2 * time.Millisecond}),
		common.LLMConfig{PrimaryModel: "gpt-4o", FallbackModel: "gpt-4o-mini"}, nil)
	ge.sleep = func(context.Context, time.Duration) error { return nil }
	delete(r.execs, constants.StageGeneration)
	r.orch.executors[constants.StageGeneration] = ge

	ctx := context.Background()
	job := r.submit(t)
	if err := r.orch.Run(ctx, job.ID); err != nil {
		t.Fatalf("run: %v", err)
	}

	got, _ := r.jobs.Get(ctx, job.ID)
	if got.Status != constants.JobStatusAwaitingReview {
		t.Fatalf("status = %s, want AWAITING_REVIEW", got.Status)
	}
	if got.ReasonCode != constants.ReasonRetriesExhausted {
		t.Fatalf("reason = %q, want %q", got.ReasonCode, constants.ReasonRetriesExhausted)
	}
	if strings.Contains(got.Message, "429") || strings.Contains(got.Message, "retry-after") {
		t.Fatalf("message leaks provider response: %q", got.Message)
	}
	if got.LastError == nil || !strings.Contains(*got.LastError, "429") {
		t.Fatal("raw provider error must be preserved in last_error")
	}
	// the analysis output stays durable as the best partial result
	cp, err := r.ckpts.Load(ctx, job.ID)
	if err != nil || cp == nil {
		t.Fatalf("parked job lost its checkpoint: %v", err)
	}
	var state checkpointState
	if err := json.Unmarshal(cp.Payload, &state); err != nil {
		t.Fatalf("decode checkpoint: %v", err)
	}
	if state.Payload.Analysis == nil {
		t.Fatal("analysis output not preserved for review")
	}
}

type generatorFunc func(ctx context.Context, req llm.GenerateRequest) (entity.StudyGuideContent, entity.Usage, error)

func (f generatorFunc) GenerateGuide(ctx context.Context, req llm.GenerateRequest) (entity.StudyGuideContent, entity.Usage, error) {
	return f(ctx, req)
}

func TestCancel_InFlightStageFinishesAndResultIsDurable(t *testing.T) {
	r := newRig(t)
	ctx := context.Background()
	job := r.submit(t)

	// Cancellation arrives while analysis is in flight; the call must run to
	// completion and its output must still reach the checkpoint.
	r.execs[constants.StageAnalysis].fn = func(j *entity.Job, in Payload) (Outcome, error) {
		if _, err := r.orch.Cancel(ctx, j.ID); err != nil {
			t.Errorf("cancel: %v", err)
		}
		in.Analysis = testAnalysis()
		return Outcome{Payload: in, Confidence: 0.95}, nil
	}

	if err := r.orch.Run(ctx, job.ID); err != nil {
		t.Fatalf("run: %v", err)
	}
	got, _ := r.jobs.Get(ctx, job.ID)
	if got.Status != constants.JobStatusFailed {
		t.Fatalf("status = %s, want FAILED", got.Status)
	}
	if got.ReasonCode != constants.ReasonUserCancelled {
		t.Fatalf("reason = %q", got.ReasonCode)
	}
	if n := r.ckpts.savesFor(constants.StageAnalysis); n != 1 {
		t.Fatalf("analysis checkpoint writes = %d, want 1 (in-flight result must persist)", n)
	}
	if r.execs[constants.StageGeneration].runCount() != 0 {
		t.Fatal("generation ran after cancellation")
	}
}

func TestResolveReview_RescoreSurvivesRestart(t *testing.T) {
	r := newRig(t, WithReviewRescore(true))
	var qaScore float32 = 0.65
	r.execs[constants.StageQA].fn = func(_ *entity.Job, in Payload) (Outcome, error) {
		in.QAScore = qaScore
		return Outcome{Payload: in, Confidence: qaScore}, nil
	}
	ctx := context.Background()
	job := r.submit(t)
	_ = r.orch.Run(ctx, job.ID)

	if _, err := r.orch.ResolveReview(ctx, job.ID, true, "re-check it"); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	// Restart before the next advance: the rescore request must survive in
	// the checkpoint, not in process memory.
	qaScore = 0.95
	orch2 := r.buildOrchestrator(WithReviewRescore(true))
	resumable, err := orch2.Recover(ctx)
	if err != nil {
		t.Fatalf("recover: %v", err)
	}
	if len(resumable) != 1 || resumable[0].Stage != constants.StageQA {
		t.Fatalf("resumable = %+v, want the job realigned to QA", resumable)
	}
	if err := orch2.Run(ctx, job.ID); err != nil {
		t.Fatalf("run after restart: %v", err)
	}

	got, _ := r.jobs.Get(ctx, job.ID)
	if got.Status != constants.JobStatusCompleted {
		t.Fatalf("status = %s, want COMPLETED", got.Status)
	}
	if n := r.execs[constants.StageQA].runCount(); n != 2 {
		t.Fatalf("qa runs = %d, want 2 (approved rescore must re-run the stage)", n)
	}
}

func TestTerminalJobsReleaseTheirLocks(t *testing.T) {
	r := newRig(t)
	ctx := context.Background()
	done := r.submit(t)
	if err := r.orch.Run(ctx, done.ID); err != nil {
		t.Fatalf("run: %v", err)
	}

	failed := r.submit(t)
	if _, err := r.orch.Cancel(ctx, failed.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	r.orch.mu.Lock()
	defer r.orch.mu.Unlock()
	if n := len(r.orch.locks); n != 0 {
		t.Fatalf("lock entries after terminal jobs = %d, want 0", n)
	}
}
