package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/team-modeni/modeni-backend/internal/logger"
)

func newTestPool(t *testing.T, workers, queueSize int) (*Pool, context.CancelFunc) {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	pool := NewPool(log, workers, queueSize)
	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)
	return pool, cancel
}

func TestPoolRunsSubmittedTask(t *testing.T) {
	pool, cancel := newTestPool(t, 1, 4)
	defer cancel()

	done := make(chan struct{})
	if err := pool.Submit("test_task", func(ctx context.Context) error {
		close(done)
		return nil
	}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("task never ran")
	}
}

func TestPoolSurvivesPanicAndError(t *testing.T) {
	pool, cancel := newTestPool(t, 1, 4)
	defer cancel()

	if err := pool.Submit("panicking", func(ctx context.Context) error {
		panic("boom")
	}); err != nil {
		t.Fatalf("Submit panicking: %v", err)
	}
	if err := pool.Submit("failing", func(ctx context.Context) error {
		return errors.New("task error")
	}); err != nil {
		t.Fatalf("Submit failing: %v", err)
	}

	// The single worker must still be alive to run this one.
	done := make(chan struct{})
	if err := pool.Submit("after", func(ctx context.Context) error {
		close(done)
		return nil
	}); err != nil {
		t.Fatalf("Submit after: %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("worker died after panic")
	}
}

func TestPoolSubmitRejectsWhenQueueFull(t *testing.T) {
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	// Never started: the queue fills and stays full.
	pool := NewPool(log, 1, 2)

	block := func(ctx context.Context) error { return nil }
	if err := pool.Submit("a", block); err != nil {
		t.Fatalf("Submit a: %v", err)
	}
	if err := pool.Submit("b", block); err != nil {
		t.Fatalf("Submit b: %v", err)
	}
	if err := pool.Submit("c", block); err == nil {
		t.Fatalf("Submit c: expected queue-full error")
	}
}

func TestPoolStopsOnContextCancel(t *testing.T) {
	pool, cancel := newTestPool(t, 2, 4)

	var ran int32
	_ = pool.Submit("first", func(ctx context.Context) error {
		atomic.AddInt32(&ran, 1)
		return nil
	})

	time.Sleep(100 * time.Millisecond)
	cancel()
	pool.Wait()

	if atomic.LoadInt32(&ran) != 1 {
		t.Fatalf("task run count: want=1 got=%d", atomic.LoadInt32(&ran))
	}
}
