package checkpoint

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gagni555/course-content-to-study-material-generator/constants"
)

func newTestStore(t *testing.T, opts ...Option) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(":memory:", nil, opts...)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveLoadClear(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	jobID := uuid.New()

	got, err := s.Load(ctx, jobID)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil checkpoint for unknown job, got %+v", got)
	}

	payload := json.RawMessage(`{"text":"hello"}`)
	if err := s.Save(ctx, jobID, constants.StageIngestion, 1, payload); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err = s.Load(ctx, jobID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatalf("expected checkpoint")
	}
	if got.Stage != constants.StageIngestion || got.Seq != 1 {
		t.Fatalf("unexpected checkpoint: %+v", got)
	}
	if string(got.Payload) != `{"text":"hello"}` {
		t.Fatalf("payload mismatch: %s", got.Payload)
	}

	if err := s.Clear(ctx, jobID); err != nil {
		t.Fatalf("clear: %v", err)
	}
	got, err = s.Load(ctx, jobID)
	if err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil after clear, got %+v", got)
	}
}

func TestSave_RejectsStaleSequence(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	jobID := uuid.New()

	if err := s.Save(ctx, jobID, constants.StageAnalysis, 2, json.RawMessage(`{}`)); err != nil {
		t.Fatalf("save seq 2: %v", err)
	}

	// a late stage-1 write must not overwrite stage 2
	err := s.Save(ctx, jobID, constants.StageIngestion, 1, json.RawMessage(`{}`))
	if !errors.Is(err, ErrStaleSequence) {
		t.Fatalf("expected ErrStaleSequence, got %v", err)
	}
	err = s.Save(ctx, jobID, constants.StageAnalysis, 2, json.RawMessage(`{}`))
	if !errors.Is(err, ErrStaleSequence) {
		t.Fatalf("equal seq must also be rejected, got %v", err)
	}

	got, err := s.Load(ctx, jobID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Stage != constants.StageAnalysis || got.Seq != 2 {
		t.Fatalf("stage 2 checkpoint was clobbered: %+v", got)
	}
}

func TestSave_SupersedesPrior(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	jobID := uuid.New()

	if err := s.Save(ctx, jobID, constants.StageIngestion, 1, json.RawMessage(`{"a":1}`)); err != nil {
		t.Fatalf("save 1: %v", err)
	}
	if err := s.Save(ctx, jobID, constants.StageAnalysis, 2, json.RawMessage(`{"b":2}`)); err != nil {
		t.Fatalf("save 2: %v", err)
	}

	got, err := s.Load(ctx, jobID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Stage != constants.StageAnalysis {
		t.Fatalf("expected the later stage to be current, got %s", got.Stage)
	}
}

func TestLoad_IgnoresExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	clock := func() time.Time { return now }
	s := newTestStore(t, WithTTL(time.Hour), WithClock(func() time.Time { return clock() }))
	jobID := uuid.New()

	if err := s.Save(ctx, jobID, constants.StageGeneration, 3, json.RawMessage(`{}`)); err != nil {
		t.Fatalf("save: %v", err)
	}

	// within TTL
	got, err := s.Load(ctx, jobID)
	if err != nil || got == nil {
		t.Fatalf("expected fresh checkpoint, got %+v err %v", got, err)
	}

	// past TTL: treated as absent, forcing a fresh ingestion
	clock = func() time.Time { return now.Add(2 * time.Hour) }
	got, err = s.Load(ctx, jobID)
	if err != nil {
		t.Fatalf("load expired: %v", err)
	}
	if got != nil {
		t.Fatalf("expected stale checkpoint to be ignored, got %+v", got)
	}
}

func TestPerJobIsolation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	a, b := uuid.New(), uuid.New()

	if err := s.Save(ctx, a, constants.StageIngestion, 1, json.RawMessage(`{"job":"a"}`)); err != nil {
		t.Fatalf("save a: %v", err)
	}
	if err := s.Save(ctx, b, constants.StageQA, 4, json.RawMessage(`{"job":"b"}`)); err != nil {
		t.Fatalf("save b: %v", err)
	}
	if err := s.Clear(ctx, a); err != nil {
		t.Fatalf("clear a: %v", err)
	}

	got, err := s.Load(ctx, b)
	if err != nil || got == nil {
		t.Fatalf("job b checkpoint lost: %+v err %v", got, err)
	}
	if got.Stage != constants.StageQA {
		t.Fatalf("unexpected stage for b: %s", got.Stage)
	}
}

func TestAuditRetention_KeepsSupersededRows(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, WithAuditRetention(true))
	jobID := uuid.New()

	if err := s.Save(ctx, jobID, constants.StageIngestion, 1, json.RawMessage(`{}`)); err != nil {
		t.Fatalf("save 1: %v", err)
	}
	if err := s.Save(ctx, jobID, constants.StageAnalysis, 2, json.RawMessage(`{}`)); err != nil {
		t.Fatalf("save 2: %v", err)
	}

	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM checkpoints WHERE job_id = ?`, jobID.String()).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected both rows retained, got %d", count)
	}

	// Load still returns only the current one.
	got, err := s.Load(ctx, jobID)
	if err != nil || got == nil || got.Stage != constants.StageAnalysis {
		t.Fatalf("expected current=ANALYSIS, got %+v err %v", got, err)
	}
}
