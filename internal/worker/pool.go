package worker

import (
	"context"
	"sync"
)

// Task is a unit of work executed by the pool.
type Task interface {
	Run(ctx context.Context) Outcome
}

// Outcome is the result of one task.
type Outcome interface {
	Err() error
}

// Pool runs tasks on a fixed number of workers. Provider calls are
// slow and rate limited, so the pool exists to overlap waiting, not to
// saturate CPU.
type Pool struct {
	workers    int
	tasks      chan Task
	outcomes   chan Outcome
	wg         sync.WaitGroup
	ctx        context.Context
	cancelFunc context.CancelFunc
	closeOnce  sync.Once
}

// NewPool creates a pool with the given number of workers.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		workers:    workers,
		tasks:      make(chan Task, workers*2),
		outcomes:   make(chan Outcome, workers*2),
		ctx:        ctx,
		cancelFunc: cancel,
	}
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case task, ok := <-p.tasks:
			if !ok {
				return
			}
			outcome := task.Run(p.ctx)
			select {
			case p.outcomes <- outcome:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit queues a task. Submissions after Shutdown are dropped.
func (p *Pool) Submit(task Task) {
	select {
	case <-p.ctx.Done():
		return
	case p.tasks <- task:
	}
}

// Wait closes the queue, waits for all submitted tasks and returns
// their outcomes. Call exactly once, after the last Submit.
func (p *Pool) Wait() []Outcome {
	close(p.tasks)

	go func() {
		p.wg.Wait()
		p.closeOutcomes()
	}()

	var outcomes []Outcome
	for outcome := range p.outcomes {
		outcomes = append(outcomes, outcome)
	}

	return outcomes
}

// Shutdown cancels in-flight tasks and stops the workers.
func (p *Pool) Shutdown() {
	p.cancelFunc()
	p.wg.Wait()
	p.closeOutcomes()
}

func (p *Pool) closeOutcomes() {
	p.closeOnce.Do(func() {
		close(p.outcomes)
	})
}
