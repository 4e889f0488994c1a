package budget

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gagni555/course-content-to-study-material-generator/internal/common"
	"github.com/gagni555/course-content-to-study-material-generator/internal/entity"
)

// DenyReason explains a rejected authorization.
type DenyReason string

const (
	DailyTokenLimitExceeded DenyReason = "DailyTokenLimitExceeded"
	DailySpendLimitExceeded DenyReason = "DailySpendLimitExceeded"
)

// DeniedError is returned by Authorize when a user is over budget.
type DeniedError struct {
	UserID uuid.UUID
	Reason DenyReason
}

func (e *DeniedError) Error() string {
	return fmt.Sprintf("budget denied for user %s: %s", e.UserID, e.Reason)
}

// Estimate is the projected consumption of one external-model call.
type Estimate struct {
	Tokens  int64
	CostUSD float64
}

// Snapshot is a point-in-time view of a user's ledger for reporting.
type Snapshot struct {
	UserID         uuid.UUID
	Day            string // YYYY-MM-DD UTC
	TokensUsed     int64
	SpendUSD       float64
	TokensReserved int64
	SpendReserved  float64
}

// ledger holds one user's counters for the current UTC day.
type ledger struct {
	day            string
	tokensUsed     int64
	spendUSD       float64
	tokensReserved int64
	spendReserved  float64
}

// Guard tracks per-user daily consumption and rejects calls over the limits.
// All mutation happens under per-user locking so concurrent jobs for the same
// user never race on read-modify-write.
type Guard struct {
	cfg      common.BudgetConfig
	logger   *slog.Logger
	now      func() time.Time
	recorder Recorder

	mu      sync.Mutex
	ledgers map[uuid.UUID]*ledger
}

func NewGuard(cfg common.BudgetConfig, logger *slog.Logger) *Guard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Guard{
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
		ledgers: make(map[uuid.UUID]*ledger),
	}
}

// WithClock overrides the time source for tests.
func (g *Guard) WithClock(now func() time.Time) *Guard {
	g.now = now
	return g
}

// Recorder receives the user's ledger snapshot after each settlement. Used
// to mirror in-memory counters to durable storage.
type Recorder func(snap Snapshot)

// WithRecorder sets the settlement hook. It runs outside the guard's lock.
func (g *Guard) WithRecorder(rec Recorder) *Guard {
	g.recorder = rec
	return g
}

// Reservation is a provisional hold on a user's budget. Exactly one of
// Reconcile or Release must be called for every reservation.
type Reservation struct {
	guard   *Guard
	userID  uuid.UUID
	est     Estimate
	settled bool
}

// Authorize must be consulted before every generation-class external call.
// On success the estimated cost is provisionally reserved.
func (g *Guard) Authorize(userID uuid.UUID, est Estimate) (*Reservation, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	l := g.ledgerLocked(userID)
	// A user may exceed the limit by at most one in-flight reservation, so
	// the check looks at committed plus already-reserved usage.
	if l.tokensUsed+l.tokensReserved >= g.cfg.DailyTokenLimit {
		g.logger.Warn("budget.deny", "user_id", userID, "reason", DailyTokenLimitExceeded,
			"tokens_used", l.tokensUsed, "tokens_reserved", l.tokensReserved)
		return nil, &DeniedError{UserID: userID, Reason: DailyTokenLimitExceeded}
	}
	if l.spendUSD+l.spendReserved >= g.cfg.DailySpendLimit {
		g.logger.Warn("budget.deny", "user_id", userID, "reason", DailySpendLimitExceeded,
			"spend_usd", l.spendUSD, "spend_reserved", l.spendReserved)
		return nil, &DeniedError{UserID: userID, Reason: DailySpendLimitExceeded}
	}

	l.tokensReserved += est.Tokens
	l.spendReserved += est.CostUSD
	return &Reservation{guard: g, userID: userID, est: est}, nil
}

// Reconcile settles the reservation against the actual usage of the call.
// The ledger is adjusted up or down; dispatched-but-failed calls are still
// charged for what they consumed.
func (r *Reservation) Reconcile(actual entity.Usage) {
	r.guard.mu.Lock()
	if r.settled {
		r.guard.mu.Unlock()
		return
	}
	r.settled = true

	l := r.guard.ledgerLocked(r.userID)
	l.tokensReserved -= r.est.Tokens
	l.spendReserved -= r.est.CostUSD
	l.tokensUsed += actual.TotalTokens()
	l.spendUSD += actual.CostUSD
	snap := Snapshot{
		UserID:         r.userID,
		Day:            l.day,
		TokensUsed:     l.tokensUsed,
		SpendUSD:       l.spendUSD,
		TokensReserved: l.tokensReserved,
		SpendReserved:  l.spendReserved,
	}
	rec := r.guard.recorder
	r.guard.mu.Unlock()

	r.guard.logger.Debug("budget.reconcile",
		"user_id", r.userID,
		"reserved_tokens", r.est.Tokens,
		"actual_tokens", actual.TotalTokens(),
		"actual_cost_usd", actual.CostUSD,
	)
	if rec != nil {
		rec(snap)
	}
}

// Release cancels a reservation for a call that was never dispatched.
func (r *Reservation) Release() {
	r.Reconcile(entity.Usage{})
}

// Snapshot returns the user's current ledger view.
func (g *Guard) Snapshot(userID uuid.UUID) Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	l := g.ledgerLocked(userID)
	return Snapshot{
		UserID:         userID,
		Day:            l.day,
		TokensUsed:     l.tokensUsed,
		SpendUSD:       l.spendUSD,
		TokensReserved: l.tokensReserved,
		SpendReserved:  l.spendReserved,
	}
}

// ledgerLocked returns the user's ledger for the current UTC day, resetting
// counters at midnight. Caller holds g.mu.
func (g *Guard) ledgerLocked(userID uuid.UUID) *ledger {
	day := g.now().UTC().Format("2006-01-02")
	l, ok := g.ledgers[userID]
	if !ok || l.day != day {
		// in-flight reservations from the prior day carry over so they can
		// still be reconciled; committed usage resets
		var carriedTokens int64
		var carriedSpend float64
		if ok {
			carriedTokens = l.tokensReserved
			carriedSpend = l.spendReserved
		}
		l = &ledger{day: day, tokensReserved: carriedTokens, spendReserved: carriedSpend}
		g.ledgers[userID] = l
	}
	return l
}
