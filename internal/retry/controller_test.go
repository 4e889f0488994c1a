package retry

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/gagni555/course-content-to-study-material-generator/internal/common"
)

func TestClassify_ExplicitClassWins(t *testing.T) {
	err := NewClassified(RateLimited, errors.New("provider said no"))
	c := NewController(DefaultPolicy())
	if got := c.Classify(err); got != RateLimited {
		t.Fatalf("expected RATE_LIMITED, got %s", got)
	}
	// wrapped one level deep still resolves
	wrapped := fmt.Errorf("generation call: %w", err)
	if got := c.Classify(wrapped); got != RateLimited {
		t.Fatalf("expected RATE_LIMITED through wrapping, got %s", got)
	}
}

func TestClassify_Heuristics(t *testing.T) {
	c := NewController(DefaultPolicy())
	cases := []struct {
		err  error
		want FailureClass
	}{
		{errors.New("429 too many requests"), RateLimited},
		{errors.New("upstream quota exhausted"), RateLimited},
		{errors.New("connection reset by peer"), Transient},
		{errors.New("503 service unavailable"), Transient},
		{errors.New("unsupported format: xlsx"), Permanent},
		{errors.New("404 not found"), Permanent},
		{errors.New("checkpoint store data corruption detected"), Critical},
		{common.NewValidationError("document too large"), Permanent},
	}
	for _, tc := range cases {
		if got := c.Classify(tc.err); got != tc.want {
			t.Fatalf("Classify(%q) = %s, want %s", tc.err, got, tc.want)
		}
	}
}

func TestDecide_TransientRetriesThenEscalates(t *testing.T) {
	c := NewController(Policy{TransientAttempts: 3, TransientDelay: 100 * time.Millisecond})

	for attempt := 0; attempt < 2; attempt++ {
		d := c.Decide(Transient, attempt)
		if !d.Retry {
			t.Fatalf("attempt %d: expected retry", attempt)
		}
		if d.Delay != 100*time.Millisecond {
			t.Fatalf("attempt %d: expected fixed delay, got %v", attempt, d.Delay)
		}
	}

	d := c.Decide(Transient, 2)
	if d.Retry {
		t.Fatalf("expected exhaustion after 3 attempts")
	}
	if !d.Escalate {
		t.Fatalf("exhausted transient should escalate to review, not fail")
	}
}

func TestDecide_PermanentAndCritical(t *testing.T) {
	c := NewController(DefaultPolicy())

	d := c.Decide(Permanent, 0)
	if d.Retry || d.Escalate || d.Alert {
		t.Fatalf("permanent must abort without retry or alert: %+v", d)
	}

	d = c.Decide(Critical, 0)
	if d.Retry || d.Escalate {
		t.Fatalf("critical must abort: %+v", d)
	}
	if !d.Alert {
		t.Fatalf("critical must trigger operator alert")
	}
}

func TestBackoffDelay_NonDecreasingAndCapped(t *testing.T) {
	c := NewController(Policy{
		RateLimitAttempts:  10,
		RateLimitBaseDelay: time.Second,
		RateLimitMaxDelay:  8 * time.Second,
	})

	prev := time.Duration(0)
	for attempt := 0; attempt < 10; attempt++ {
		d := c.BackoffDelay(attempt)
		if d < prev {
			t.Fatalf("attempt %d: delay %v decreased from %v", attempt, d, prev)
		}
		if d > 8*time.Second {
			t.Fatalf("attempt %d: delay %v exceeds cap", attempt, d)
		}
		prev = d
	}
	if c.BackoffDelay(0) != time.Second {
		t.Fatalf("first delay should equal base")
	}
	if c.BackoffDelay(1) != 2*time.Second {
		t.Fatalf("second delay should double the base")
	}
	if c.BackoffDelay(9) != 8*time.Second {
		t.Fatalf("late delays should sit at the cap")
	}
}
