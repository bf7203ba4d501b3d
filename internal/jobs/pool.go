package jobs

import (
	"context"
	"fmt"
	"sync"

	"github.com/team-modeni/modeni-backend/internal/logger"
)

// Pool is the bounded executor dedicated to recommendation work. It is
// isolated from the request-handling goroutines so a slow generation
// call never starves unrelated traffic. Task failures are logged and
// swallowed; each task runs at most once.
type Pool struct {
	log     *logger.Logger
	tasks   chan task
	workers int

	startOnce sync.Once
	wg        sync.WaitGroup
}

type task struct {
	name string
	fn   func(ctx context.Context) error
}

func NewPool(baseLog *logger.Logger, workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	return &Pool{
		log:     baseLog.With("component", "JobPool"),
		tasks:   make(chan task, queueSize),
		workers: workers,
	}
}

func (p *Pool) Start(ctx context.Context) {
	p.startOnce.Do(func() {
		for i := 0; i < p.workers; i++ {
			p.wg.Add(1)
			go func() {
				defer p.wg.Done()
				for {
					select {
					case <-ctx.Done():
						return
					case t := <-p.tasks:
						p.run(ctx, t)
					}
				}
			}()
		}
	})
}

func (p *Pool) run(ctx context.Context, t task) {
	// If the task panics, mark it failed instead of taking the worker down.
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("Job panic", "job", t.name, "panic", r)
		}
	}()

	if err := t.fn(ctx); err != nil {
		p.log.Error("Job failed", "job", t.name, "error", err)
	}
}

// Submit enqueues a task without blocking the caller. A full queue
// drops the task: recommendation dispatch is best-effort by contract.
func (p *Pool) Submit(name string, fn func(ctx context.Context) error) error {
	select {
	case p.tasks <- task{name: name, fn: fn}:
		return nil
	default:
		p.log.Warn("Job queue full, dropping task", "job", name)
		return fmt.Errorf("job queue full: %s", name)
	}
}

// Wait blocks until all workers have exited after context cancellation.
func (p *Pool) Wait() {
	p.wg.Wait()
}
