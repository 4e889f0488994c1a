package budget

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gagni555/course-content-to-study-material-generator/internal/common"
	"github.com/gagni555/course-content-to-study-material-generator/internal/entity"
)

func testGuard(tokens int64, spend float64) *Guard {
	return NewGuard(common.BudgetConfig{DailyTokenLimit: tokens, DailySpendLimit: spend}, nil)
}

func TestAuthorizeReconcile_LedgerMatchesActuals(t *testing.T) {
	g := testGuard(10_000, 100)
	user := uuid.New()

	var total int64
	for i := 0; i < 5; i++ {
		res, err := g.Authorize(user, Estimate{Tokens: 500, CostUSD: 0.05})
		if err != nil {
			t.Fatalf("authorize %d: %v", i, err)
		}
		actual := entity.Usage{PromptTokens: 300, CompletionTokens: 150, CostUSD: 0.04}
		res.Reconcile(actual)
		total += actual.TotalTokens()
	}

	snap := g.Snapshot(user)
	if snap.TokensUsed != total {
		t.Fatalf("ledger tokens %d != sum of actuals %d", snap.TokensUsed, total)
	}
	if snap.TokensReserved != 0 || snap.SpendReserved != 0 {
		t.Fatalf("reservations left unreconciled: %+v", snap)
	}
}

func TestAuthorize_DeniesOverTokenLimit(t *testing.T) {
	g := testGuard(1000, 100)
	user := uuid.New()

	res, err := g.Authorize(user, Estimate{Tokens: 600, CostUSD: 0.01})
	if err != nil {
		t.Fatalf("first authorize: %v", err)
	}
	res.Reconcile(entity.Usage{PromptTokens: 1000, CompletionTokens: 0, CostUSD: 0.01})

	_, err = g.Authorize(user, Estimate{Tokens: 1, CostUSD: 0.01})
	var denied *DeniedError
	if !errors.As(err, &denied) {
		t.Fatalf("expected DeniedError, got %v", err)
	}
	if denied.Reason != DailyTokenLimitExceeded {
		t.Fatalf("expected token-limit reason, got %s", denied.Reason)
	}
}

func TestAuthorize_DeniesOverSpendLimit(t *testing.T) {
	g := testGuard(1_000_000, 1.00)
	user := uuid.New()

	res, err := g.Authorize(user, Estimate{Tokens: 10, CostUSD: 0.50})
	if err != nil {
		t.Fatalf("authorize: %v", err)
	}
	res.Reconcile(entity.Usage{CostUSD: 1.00})

	_, err = g.Authorize(user, Estimate{Tokens: 10, CostUSD: 0.01})
	var denied *DeniedError
	if !errors.As(err, &denied) || denied.Reason != DailySpendLimitExceeded {
		t.Fatalf("expected spend-limit denial, got %v", err)
	}
}

func TestRelease_RefundsUndispatchedCall(t *testing.T) {
	g := testGuard(1000, 100)
	user := uuid.New()

	res, err := g.Authorize(user, Estimate{Tokens: 900, CostUSD: 0.10})
	if err != nil {
		t.Fatalf("authorize: %v", err)
	}
	res.Release()

	snap := g.Snapshot(user)
	if snap.TokensUsed != 0 || snap.TokensReserved != 0 {
		t.Fatalf("release should leave ledger untouched: %+v", snap)
	}

	if _, err := g.Authorize(user, Estimate{Tokens: 900, CostUSD: 0.10}); err != nil {
		t.Fatalf("authorize after release: %v", err)
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	g := testGuard(10_000, 100)
	user := uuid.New()

	res, _ := g.Authorize(user, Estimate{Tokens: 100, CostUSD: 0.01})
	actual := entity.Usage{PromptTokens: 80, CostUSD: 0.01}
	res.Reconcile(actual)
	res.Reconcile(actual) // double settle must not double charge

	snap := g.Snapshot(user)
	if snap.TokensUsed != 80 {
		t.Fatalf("double reconcile charged twice: %+v", snap)
	}
}

func TestRecorder_ObservesEachSettlement(t *testing.T) {
	g := testGuard(10_000, 100)
	user := uuid.New()

	var snaps []Snapshot
	g.WithRecorder(func(s Snapshot) { snaps = append(snaps, s) })

	res, _ := g.Authorize(user, Estimate{Tokens: 100, CostUSD: 0.01})
	res.Reconcile(entity.Usage{PromptTokens: 80, CostUSD: 0.01})
	res.Reconcile(entity.Usage{PromptTokens: 80, CostUSD: 0.01}) // settled; no second snapshot

	if len(snaps) != 1 {
		t.Fatalf("recorder calls = %d, want 1", len(snaps))
	}
	if snaps[0].UserID != user || snaps[0].TokensUsed != 80 {
		t.Fatalf("snapshot = %+v", snaps[0])
	}
}

func TestMidnightReset(t *testing.T) {
	now := time.Date(2026, 3, 1, 23, 50, 0, 0, time.UTC)
	g := testGuard(1000, 100).WithClock(func() time.Time { return now })
	user := uuid.New()

	res, _ := g.Authorize(user, Estimate{Tokens: 500})
	res.Reconcile(entity.Usage{PromptTokens: 1000})
	if _, err := g.Authorize(user, Estimate{Tokens: 1}); err == nil {
		t.Fatalf("expected denial before midnight")
	}

	now = now.Add(20 * time.Minute) // past midnight UTC
	if _, err := g.Authorize(user, Estimate{Tokens: 1}); err != nil {
		t.Fatalf("expected fresh ledger after midnight, got %v", err)
	}
}

func TestConcurrentAuthorize_NoRaces(t *testing.T) {
	g := testGuard(1_000_000, 1_000)
	user := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := g.Authorize(user, Estimate{Tokens: 100, CostUSD: 0.01})
			if err != nil {
				return
			}
			res.Reconcile(entity.Usage{PromptTokens: 100, CostUSD: 0.01})
		}()
	}
	wg.Wait()

	snap := g.Snapshot(user)
	if snap.TokensUsed != 50*100 {
		t.Fatalf("lost updates under concurrency: %+v", snap)
	}
	if snap.TokensReserved != 0 {
		t.Fatalf("dangling reservations: %+v", snap)
	}
}
