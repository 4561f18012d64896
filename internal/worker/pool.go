package worker

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/questgame/internal/logger"
)

// Job is one unit of background work
type Job interface {
	Process(ctx context.Context) error
}

// Pool runs jobs on a fixed number of goroutines. Jobs receive a context
// that is cancelled when the pool stops.
type Pool struct {
	workers int
	queue   chan Job

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

// NewPool creates a pool with workers goroutines and room for queueSize pending jobs
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers: workers,
		queue:   make(chan Job, queueSize),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start launches the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.queue:
			p.run(id, job)
		case <-p.ctx.Done():
			return
		}
	}
}

// run isolates a job so a panic is logged instead of killing the process
func (p *Pool) run(id int, job Job) {
	log := logger.FromContext(p.ctx).With("worker", id, "job", fmt.Sprintf("%T", job))
	defer func() {
		if r := recover(); r != nil {
			log.Error(LogMsgWorkerJobPanicked, "panic", r)
		}
	}()
	if err := job.Process(p.ctx); err != nil {
		log.Error(LogMsgWorkerJobFailed, "error", err)
	}
}

// Enqueue adds a job without blocking. It reports false when the queue is
// full or the pool has stopped.
func (p *Pool) Enqueue(job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return false
	}
	select {
	case p.queue <- job:
		return true
	default:
		logger.Warn(LogMsgWorkerQueueFull, "job", fmt.Sprintf("%T", job))
		return false
	}
}

// Stop cancels running jobs and waits for the workers. Queued jobs that
// have not started are discarded. Later calls are no-ops.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	p.mu.Unlock()

	p.cancel()
	p.wg.Wait()
}
