package async

import (
	"context"
	"errors"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/billfold/invoice-ingest/internal/entity"
)

// Invocation is one unit of job driving. Jobs are re-enqueued after each
// invocation until the orchestrator reports a terminal phase.
type Invocation struct {
	JobID       uuid.UUID
	SubmittedAt time.Time
}

// Runner performs one time-boxed invocation of a job.
// *orchestrator.Orchestrator satisfies it.
type Runner interface {
	RunInvocation(ctx context.Context, jobID uuid.UUID) (*entity.IngestJob, error)
}

type Queue interface {
	Enqueue(ctx context.Context, inv Invocation) error
	Shutdown(ctx context.Context)
}

// ErrQueueFull means the invocation was not accepted. Callers may retry;
// the job itself loses no state.
var ErrQueueFull = errors.New("invocation queue full")

// JobQueue drives ingestion jobs through repeated time-boxed invocations
// in the background. It is the in-process stand-in for an external
// scheduler: same invocation contract, different trigger.
type JobQueue struct {
	orch    Runner
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Invocation
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*JobQueue)

func WithWorkers(n int) Option {
	return func(q *JobQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *JobQueue) {
		if n > 0 {
			q.ch = make(chan Invocation, n)
		}
	}
}
func WithInvocationTimeout(d time.Duration) Option {
	return func(q *JobQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewJobQueue(orch Runner, logger *slog.Logger, opts ...Option) *JobQueue {
	q := &JobQueue{
		orch:    orch,
		logger:  logger,
		workers: 2,
		timeout: time.Minute,
		ch:      make(chan Invocation, 64),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *JobQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for inv := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					job, err := q.orch.RunInvocation(ctx, inv.JobID)
					cancel()

					switch {
					case err != nil:
						q.logger.Error("invocation failed", "worker_id", workerID, "job_id", inv.JobID, "error", err)
						// delay the retry so a persistent fault does not spin
						time.AfterFunc(5*time.Second, func() { q.requeue(job, inv) })
					case job.Phase.Terminal():
						q.logger.Info("job finished", "worker_id", workerID, "job_id", inv.JobID, "phase", job.Phase)
					default:
						q.logger.Info("invocation yielded, continuing", "worker_id", workerID, "job_id", inv.JobID, "phase", job.Phase)
						q.requeue(job, inv)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

// requeue puts a still-running job back on the channel unless shutdown
// started. A full queue retries later; lost invocations are not a
// problem either way, jobs are resumable from their persisted state by
// the batch CLI or the next server start.
func (q *JobQueue) requeue(job *entity.IngestJob, inv Invocation) {
	if job != nil && job.Phase.Terminal() {
		return
	}
	if err := q.Enqueue(context.Background(), inv); errors.Is(err, ErrQueueFull) {
		time.AfterFunc(5*time.Second, func() { q.requeue(job, inv) })
	}
}

// Enqueue never blocks: workers requeue through it while holding no
// channel capacity of their own, so a blocking send here would wedge
// the whole pool once the queue fills.
func (q *JobQueue) Enqueue(_ context.Context, inv Invocation) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "job_id", inv.JobID)
		return nil
	}
	select {
	case q.ch <- inv:
		q.logger.Info("queued job invocation", "job_id", inv.JobID)
		return nil
	default:
		q.logger.Warn("queue full, rejecting invocation", "job_id", inv.JobID)
		return ErrQueueFull
	}
}

func (q *JobQueue) Shutdown(ctx context.Context) {
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
