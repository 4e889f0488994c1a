package async

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestWorkerQueue_ProcessesAllJobs(t *testing.T) {
	var mu sync.Mutex
	seen := make(map[uuid.UUID]int)
	q := NewWorkerQueue(func(_ context.Context, jobID uuid.UUID) error {
		mu.Lock()
		seen[jobID]++
		mu.Unlock()
		return nil
	}, nil, WithWorkers(3), WithQueueSize(16))

	ids := make([]uuid.UUID, 10)
	for i := range ids {
		ids[i] = uuid.New()
		if err := q.Enqueue(context.Background(), Job{JobID: ids[i], SubmittedAt: time.Now()}); err != nil {
			t.Fatalf("enqueue: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	mu.Lock()
	defer mu.Unlock()
	for _, id := range ids {
		if seen[id] != 1 {
			t.Fatalf("job %s ran %d times, want 1", id, seen[id])
		}
	}
}

func TestWorkerQueue_EnqueueAfterShutdownIsDropped(t *testing.T) {
	var ran atomic.Int64
	q := NewWorkerQueue(func(context.Context, uuid.UUID) error {
		ran.Add(1)
		return nil
	}, nil, WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if err := q.Enqueue(context.Background(), Job{JobID: uuid.New()}); err != nil {
		t.Fatalf("enqueue after shutdown: %v", err)
	}
	if ran.Load() != 0 {
		t.Fatalf("jobs ran after shutdown: %d", ran.Load())
	}
}

func TestGate_BoundsConcurrency(t *testing.T) {
	const limit = 5
	g := NewGate(limit)

	var inFlight, peak atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := g.Acquire(context.Background()); err != nil {
				t.Errorf("acquire: %v", err)
				return
			}
			cur := inFlight.Add(1)
			for {
				p := peak.Load()
				if cur <= p || peak.CompareAndSwap(p, cur) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			inFlight.Add(-1)
			g.Release()
		}()
	}
	wg.Wait()

	if peak.Load() > limit {
		t.Fatalf("peak concurrency %d exceeds limit %d", peak.Load(), limit)
	}
}

func TestGate_AcquireRespectsContext(t *testing.T) {
	g := NewGate(1)
	if err := g.Acquire(context.Background()); err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := g.Acquire(ctx); err == nil {
		t.Fatal("acquire on a full gate must fail once ctx is done")
	}
}

func TestGate_UnboundedNeverBlocks(t *testing.T) {
	g := NewGate(0)
	for i := 0; i < 100; i++ {
		if err := g.Acquire(context.Background()); err != nil {
			t.Fatalf("acquire: %v", err)
		}
	}
	g.Release()
}
