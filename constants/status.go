package constants

// JobStatus is the canonical status for rows in pipeline_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued         JobStatus = "QUEUED"          // accepted, not yet dispatched
	JobStatusRunning        JobStatus = "RUNNING"         // a stage is in progress
	JobStatusCompleted      JobStatus = "COMPLETED"       // terminal success
	JobStatusFailed         JobStatus = "FAILED"          // terminal failure
	JobStatusAwaitingReview JobStatus = "AWAITING_REVIEW" // parked for a human decision
)

// IsTerminal reports whether the status admits no further transitions.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// Reason codes surfaced in the job message field. These are the only
// provider-independent codes callers may rely on.
const (
	ReasonUserCancelled    = "UserCancelled"
	ReasonBudgetExceeded   = "BudgetExceeded"
	ReasonLowConfidence    = "LowConfidence"
	ReasonRetriesExhausted = "RetriesExhausted"
	ReasonPermanentError   = "PermanentError"
	ReasonCriticalError    = "CriticalError"
	ReasonInternalError    = "InternalError"
)
