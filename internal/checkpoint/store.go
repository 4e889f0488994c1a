package checkpoint

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/gagni555/course-content-to-study-material-generator/constants"
)

// ErrStaleSequence is returned when a save carries a sequence number at or
// below the stored one. It protects a job's checkpoint ordering against late
// writes from an earlier stage.
var ErrStaleSequence = errors.New("checkpoint sequence is stale")

// Checkpoint is the durable record of a job's last completed stage.
type Checkpoint struct {
	JobID   uuid.UUID       `json:"job_id"`
	Stage   constants.Stage `json:"stage"`
	Seq     int64           `json:"seq"`
	Payload json.RawMessage `json:"payload"`
	SavedAt time.Time       `json:"saved_at"`
}

// Store is the durability boundary for pipeline progress. Once Save returns
// nil the stage's work is permanently recorded, crash or not.
type Store interface {
	// Save records the checkpoint for (jobID, stage). Writes with seq at or
	// below the current one fail with ErrStaleSequence.
	Save(ctx context.Context, jobID uuid.UUID, stage constants.Stage, seq int64, payload json.RawMessage) error
	// Load returns the current checkpoint, or nil when the job has none or
	// the stored one is older than the TTL.
	Load(ctx context.Context, jobID uuid.UUID) (*Checkpoint, error)
	// Clear removes (or retires, under audit retention) the job's checkpoints.
	Clear(ctx context.Context, jobID uuid.UUID) error
}
