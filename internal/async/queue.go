package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"
)

// Job is the smallest useful unit of queued work.
type Job struct {
	JobID       uuid.UUID
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// RunFunc drives one pipeline job to a parked or terminal state.
type RunFunc func(ctx context.Context, jobID uuid.UUID) error

// WorkerQueue fans queued jobs out to a fixed worker pool. Each job gets its
// own timeout context; a full channel applies backpressure to the caller.
type WorkerQueue struct {
	run     RunFunc
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*WorkerQueue)

func WithWorkers(n int) Option {
	return func(q *WorkerQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *WorkerQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithJobTimeout(d time.Duration) Option {
	return func(q *WorkerQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewWorkerQueue(run RunFunc, logger *slog.Logger, opts ...Option) *WorkerQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &WorkerQueue{
		run:     run,
		logger:  logger,
		workers: 4,
		timeout: 15 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *WorkerQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := q.run(ctx, job.JobID)
					cancel()

					if err != nil {
						q.logger.Error("job run failed", "worker_id", workerID, "job_id", job.JobID, "error", err)
					} else {
						q.logger.Info("job run finished", "worker_id", workerID, "job_id", job.JobID)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *WorkerQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "job_id", job.JobID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued job for processing", "job_id", job.JobID)
	default:
		q.logger.Warn("queue full, applying backpressure", "job_id", job.JobID)
		q.ch <- job
	}
	return nil
}

func (q *WorkerQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
