package retry

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/gagni555/course-content-to-study-material-generator/internal/common"
)

// FailureClass buckets an external-call failure for retry policy purposes.
type FailureClass string

const (
	Transient   FailureClass = "TRANSIENT"
	RateLimited FailureClass = "RATE_LIMITED"
	Permanent   FailureClass = "PERMANENT"
	Critical    FailureClass = "CRITICAL"
)

// ClassifiedError wraps an error with an explicit failure class. Capability
// adapters use it to carry provider status codes through classification.
type ClassifiedError struct {
	Class FailureClass
	Err   error
}

func (e *ClassifiedError) Error() string {
	return fmt.Sprintf("%s: %v", strings.ToLower(string(e.Class)), e.Err)
}

func (e *ClassifiedError) Unwrap() error { return e.Err }

// NewClassified wraps err with the given class.
func NewClassified(class FailureClass, err error) error {
	return &ClassifiedError{Class: class, Err: err}
}

// Policy holds per-class attempt limits and backoff bases. Read-only after load.
type Policy struct {
	TransientAttempts  int
	TransientDelay     time.Duration
	RateLimitAttempts  int
	RateLimitBaseDelay time.Duration
	RateLimitMaxDelay  time.Duration
}

// DefaultPolicy mirrors the config defaults.
func DefaultPolicy() Policy {
	return Policy{
		TransientAttempts:  3,
		TransientDelay:     500 * time.Millisecond,
		RateLimitAttempts:  5,
		RateLimitBaseDelay: time.Second,
		RateLimitMaxDelay:  time.Minute,
	}
}

// Decision is the controller's verdict for one failed attempt.
type Decision struct {
	Retry    bool
	Delay    time.Duration
	Class    FailureClass
	Escalate bool // awaiting_review rather than failed on exhaustion
	Alert    bool // notify operators (critical only)
}

// Controller classifies failures and decides retry vs. escalate vs. abort.
type Controller struct {
	policy Policy
}

func NewController(policy Policy) *Controller {
	if policy.TransientAttempts <= 0 {
		policy.TransientAttempts = 3
	}
	if policy.RateLimitAttempts <= 0 {
		policy.RateLimitAttempts = 5
	}
	if policy.TransientDelay <= 0 {
		policy.TransientDelay = 500 * time.Millisecond
	}
	if policy.RateLimitBaseDelay <= 0 {
		policy.RateLimitBaseDelay = time.Second
	}
	if policy.RateLimitMaxDelay <= 0 {
		policy.RateLimitMaxDelay = time.Minute
	}
	return &Controller{policy: policy}
}

func (c *Controller) Policy() Policy { return c.policy }

// Classify buckets err into a failure class. Explicitly classified errors win;
// everything else falls back to type and message heuristics.
func (c *Controller) Classify(err error) FailureClass {
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class
	}
	if common.IsValidationError(err) {
		return Permanent
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return Transient
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return Transient
	}

	msg := strings.ToLower(err.Error())
	switch {
	case containsAny(msg, "rate limit", "too many requests", "429", "quota"):
		return RateLimited
	case containsAny(msg, "timeout", "connection refused", "connection reset", "network", "502", "503", "504", "temporarily unavailable"):
		return Transient
	case containsAny(msg, "validation", "invalid", "not found", "unsupported", "400", "404", "422"):
		return Permanent
	case containsAny(msg, "data corruption", "checkpoint store", "internal server error", "500"):
		return Critical
	default:
		return Transient
	}
}

// Decide returns the verdict after a failure on the given 0-based attempt.
// Attempt counters are per (job, stage); the orchestrator owns them.
func (c *Controller) Decide(class FailureClass, attempt int) Decision {
	switch class {
	case Transient:
		if attempt+1 < c.policy.TransientAttempts {
			return Decision{Retry: true, Delay: c.policy.TransientDelay, Class: class}
		}
		// exhaustion without a permanent classification parks the job for review
		return Decision{Class: class, Escalate: true}
	case RateLimited:
		if attempt+1 < c.policy.RateLimitAttempts {
			return Decision{Retry: true, Delay: c.BackoffDelay(attempt), Class: class}
		}
		return Decision{Class: class, Escalate: true}
	case Critical:
		return Decision{Class: class, Alert: true}
	default: // Permanent
		return Decision{Class: Permanent}
	}
}

// BackoffDelay computes base * 2^attempt capped at the configured max.
func (c *Controller) BackoffDelay(attempt int) time.Duration {
	d := c.policy.RateLimitBaseDelay
	for i := 0; i < attempt; i++ {
		d *= 2
		if d >= c.policy.RateLimitMaxDelay {
			return c.policy.RateLimitMaxDelay
		}
	}
	if d > c.policy.RateLimitMaxDelay {
		return c.policy.RateLimitMaxDelay
	}
	return d
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
