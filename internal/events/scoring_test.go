package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubScorer struct {
	mu     sync.Mutex
	scored []uint
	err    error
	done   chan uint
}

func newStubScorer() *stubScorer {
	return &stubScorer{done: make(chan uint, 16)}
}

func (s *stubScorer) ScoreSummarizeSpokenTextAnswer(_ context.Context, answerID uint) error {
	s.mu.Lock()
	s.scored = append(s.scored, answerID)
	s.mu.Unlock()
	s.done <- answerID
	return s.err
}

func (s *stubScorer) scoredIDs() []uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]uint(nil), s.scored...)
}

// startWorker runs the worker and waits for its subscription to attach; the
// in-process channel drops anything published before a consumer exists.
func startWorker(ctx context.Context, worker *ScoringWorker) {
	go worker.Run(ctx)
	time.Sleep(50 * time.Millisecond)
}

func waitForJob(t *testing.T, scorer *stubScorer) uint {
	t.Helper()
	select {
	case id := <-scorer.done:
		return id
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for scoring job")
		return 0
	}
}

func TestDispatchReachesWorker(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	scorer := newStubScorer()
	worker := NewScoringWorker(bus, scorer)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startWorker(ctx, worker)

	dispatcher := NewScoringDispatcher(bus)
	require.NoError(t, dispatcher.DispatchSSTScoring(context.Background(), 42))

	assert.Equal(t, uint(42), waitForJob(t, scorer))
}

func TestWorkerProcessesEveryDispatchedJob(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	scorer := newStubScorer()
	worker := NewScoringWorker(bus, scorer)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startWorker(ctx, worker)

	dispatcher := NewScoringDispatcher(bus)
	for _, id := range []uint{1, 2, 3} {
		require.NoError(t, dispatcher.DispatchSSTScoring(context.Background(), id))
	}
	for range 3 {
		waitForJob(t, scorer)
	}

	// Delivery order across publishes is not guaranteed; every job must
	// arrive exactly once.
	assert.ElementsMatch(t, []uint{1, 2, 3}, scorer.scoredIDs())
}

func TestWorkerAcksFailedJobs(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	scorer := newStubScorer()
	scorer.err = errors.New("grader unavailable")
	worker := NewScoringWorker(bus, scorer)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startWorker(ctx, worker)

	dispatcher := NewScoringDispatcher(bus)
	require.NoError(t, dispatcher.DispatchSSTScoring(context.Background(), 7))
	waitForJob(t, scorer)

	// A failed job is not redelivered: the next one comes through cleanly.
	scorer.err = nil
	require.NoError(t, dispatcher.DispatchSSTScoring(context.Background(), 8))
	assert.Equal(t, uint(8), waitForJob(t, scorer))
	assert.Equal(t, []uint{7, 8}, scorer.scoredIDs())
}

func TestWorkerStopsOnContextCancel(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	worker := NewScoringWorker(bus, newStubScorer())

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan error, 1)
	go func() { stopped <- worker.Run(ctx) }()

	// Give the subscription a moment to attach, then cancel.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-stopped:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}
