package async

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billfold/invoice-ingest/constants"
	"github.com/billfold/invoice-ingest/internal/entity"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// gateRunner blocks each invocation on a gate so tests control when
// workers are busy. Finished jobs report a terminal phase.
type gateRunner struct {
	started chan uuid.UUID
	gate    chan struct{}

	mu  sync.Mutex
	ran []uuid.UUID
}

func newGateRunner() *gateRunner {
	return &gateRunner{
		started: make(chan uuid.UUID, 16),
		gate:    make(chan struct{}),
	}
}

func (r *gateRunner) RunInvocation(_ context.Context, jobID uuid.UUID) (*entity.IngestJob, error) {
	r.started <- jobID
	<-r.gate
	r.mu.Lock()
	r.ran = append(r.ran, jobID)
	r.mu.Unlock()
	return &entity.IngestJob{ID: jobID, Phase: constants.JobPhaseComplete}, nil
}

func waitStarted(t *testing.T, r *gateRunner) uuid.UUID {
	t.Helper()
	select {
	case id := <-r.started:
		return id
	case <-time.After(2 * time.Second):
		t.Fatal("no invocation started")
		return uuid.Nil
	}
}

func TestEnqueueRejectsWhenFullInsteadOfBlocking(t *testing.T) {
	runner := newGateRunner()
	q := NewJobQueue(runner, testLogger(), WithWorkers(1), WithQueueSize(1))

	// occupy the single worker, then fill the single buffer slot
	require.NoError(t, q.Enqueue(context.Background(), Invocation{JobID: uuid.New()}))
	waitStarted(t, runner)
	require.NoError(t, q.Enqueue(context.Background(), Invocation{JobID: uuid.New()}))

	// the queue is saturated; a further enqueue must return, not block
	done := make(chan error, 1)
	go func() { done <- q.Enqueue(context.Background(), Invocation{JobID: uuid.New()}) }()
	select {
	case err := <-done:
		require.ErrorIs(t, err, ErrQueueFull)
	case <-time.After(2 * time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}

	// draining the gate lets both accepted invocations finish
	close(runner.gate)
	waitStarted(t, runner)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	runner.mu.Lock()
	defer runner.mu.Unlock()
	assert.Len(t, runner.ran, 2)
}

func TestShutdownDrainsWorkers(t *testing.T) {
	runner := newGateRunner()
	close(runner.gate) // never block
	q := NewJobQueue(runner, testLogger(), WithWorkers(2), WithQueueSize(8))

	for i := 0; i < 5; i++ {
		require.NoError(t, q.Enqueue(context.Background(), Invocation{JobID: uuid.New()}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	// enqueue after shutdown is a logged no-op
	require.NoError(t, q.Enqueue(context.Background(), Invocation{JobID: uuid.New()}))
}

func TestTerminalJobIsNotRequeued(t *testing.T) {
	runner := newGateRunner()
	close(runner.gate)
	q := NewJobQueue(runner, testLogger(), WithWorkers(1), WithQueueSize(4))

	jobID := uuid.New()
	require.NoError(t, q.Enqueue(context.Background(), Invocation{JobID: jobID}))
	waitStarted(t, runner)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	runner.mu.Lock()
	defer runner.mu.Unlock()
	assert.Equal(t, []uuid.UUID{jobID}, runner.ran)
}
