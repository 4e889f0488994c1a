package checkpoint

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/gagni555/course-content-to-study-material-generator/constants"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS checkpoints (
	job_id     TEXT    NOT NULL,
	stage      TEXT    NOT NULL,
	seq        INTEGER NOT NULL,
	payload    BLOB    NOT NULL,
	saved_at   INTEGER NOT NULL,
	superseded INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_checkpoints_job ON checkpoints (job_id, superseded);
`

// SQLiteStore persists checkpoints in a local SQLite file. Writes commit
// before Save returns, which is the durability guarantee the orchestrator
// relies on.
type SQLiteStore struct {
	db          *sql.DB
	ttl         time.Duration
	auditRetain bool
	logger      *slog.Logger
	now         func() time.Time
}

type Option func(*SQLiteStore)

// WithTTL overrides the staleness window (default 1h).
func WithTTL(d time.Duration) Option {
	return func(s *SQLiteStore) {
		if d > 0 {
			s.ttl = d
		}
	}
}

// WithAuditRetention keeps superseded rows instead of deleting them.
func WithAuditRetention(retain bool) Option {
	return func(s *SQLiteStore) { s.auditRetain = retain }
}

// WithClock overrides the time source for tests.
func WithClock(now func() time.Time) Option {
	return func(s *SQLiteStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSQLiteStore opens (creating if needed) the checkpoint database at path.
// Use ":memory:" for tests.
func NewSQLiteStore(path string, logger *slog.Logger, opts ...Option) (*SQLiteStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open checkpoint db: %w", err)
	}
	// SQLite serializes writers anyway; a single connection also keeps
	// :memory: databases coherent across the pool.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schemaDDL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init checkpoint schema: %w", err)
	}
	s := &SQLiteStore{
		db:     db,
		ttl:    time.Hour,
		logger: logger,
		now:    time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) Save(ctx context.Context, jobID uuid.UUID, stage constants.Stage, seq int64, payload json.RawMessage) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin checkpoint save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var cur sql.NullInt64
	err = tx.QueryRowContext(ctx,
		`SELECT MAX(seq) FROM checkpoints WHERE job_id = ? AND superseded = 0`,
		jobID.String(),
	).Scan(&cur)
	if err != nil {
		return fmt.Errorf("read current seq: %w", err)
	}
	if cur.Valid && seq <= cur.Int64 {
		s.logger.Warn("checkpoint.save.stale",
			"job_id", jobID, "stage", stage, "seq", seq, "current_seq", cur.Int64)
		return ErrStaleSequence
	}

	if s.auditRetain {
		_, err = tx.ExecContext(ctx,
			`UPDATE checkpoints SET superseded = 1 WHERE job_id = ? AND superseded = 0`,
			jobID.String())
	} else {
		_, err = tx.ExecContext(ctx,
			`DELETE FROM checkpoints WHERE job_id = ? AND superseded = 0`,
			jobID.String())
	}
	if err != nil {
		return fmt.Errorf("supersede prior checkpoint: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO checkpoints (job_id, stage, seq, payload, saved_at, superseded) VALUES (?, ?, ?, ?, ?, 0)`,
		jobID.String(), string(stage), seq, []byte(payload), s.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("insert checkpoint: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit checkpoint: %w", err)
	}
	s.logger.Debug("checkpoint.save.ok", "job_id", jobID, "stage", stage, "seq", seq, "bytes", len(payload))
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context, jobID uuid.UUID) (*Checkpoint, error) {
	var (
		stage   string
		seq     int64
		payload []byte
		savedAt int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT stage, seq, payload, saved_at FROM checkpoints WHERE job_id = ? AND superseded = 0`,
		jobID.String(),
	).Scan(&stage, &seq, &payload, &savedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load checkpoint: %w", err)
	}

	saved := time.UnixMilli(savedAt)
	if s.ttl > 0 && s.now().Sub(saved) > s.ttl {
		s.logger.Info("checkpoint.load.stale_ignored", "job_id", jobID, "stage", stage, "age", s.now().Sub(saved))
		return nil, nil
	}
	return &Checkpoint{
		JobID:   jobID,
		Stage:   constants.Stage(stage),
		Seq:     seq,
		Payload: payload,
		SavedAt: saved,
	}, nil
}

func (s *SQLiteStore) Clear(ctx context.Context, jobID uuid.UUID) error {
	var err error
	if s.auditRetain {
		_, err = s.db.ExecContext(ctx,
			`UPDATE checkpoints SET superseded = 1 WHERE job_id = ?`, jobID.String())
	} else {
		_, err = s.db.ExecContext(ctx,
			`DELETE FROM checkpoints WHERE job_id = ?`, jobID.String())
	}
	if err != nil {
		return fmt.Errorf("clear checkpoints: %w", err)
	}
	s.logger.Debug("checkpoint.clear.ok", "job_id", jobID)
	return nil
}
