// Package scheduler feeds periodic jobs into a worker pool.
package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/osse101/questgame/internal/logger"
	"github.com/osse101/questgame/internal/worker"
)

// Scheduler owns one ticker goroutine per registered job
type Scheduler struct {
	pool *worker.Pool
	stop chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// New creates a scheduler that enqueues into pool
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{pool: pool, stop: make(chan struct{})}
}

// Schedule runs job every interval, first after one interval
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.ScheduleAfter(interval, interval, job)
}

// ScheduleAfter runs job once after delay and then every interval. A tick
// that finds the pool queue full is skipped; the next tick tries again.
func (s *Scheduler) ScheduleAfter(delay, interval time.Duration, job worker.Job) {
	name := fmt.Sprintf("%T", job)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		wait := time.NewTimer(delay)
		defer wait.Stop()
		var tick <-chan time.Time
		for {
			select {
			case <-s.stop:
				return
			case <-wait.C:
				ticker := time.NewTicker(interval)
				defer ticker.Stop()
				tick = ticker.C
			case <-tick:
			}
			if !s.pool.Enqueue(job) {
				logger.Debug("Scheduled run skipped", "job", name)
			}
		}
	}()
}

// Stop ends every schedule and waits for the goroutines. Safe to call twice.
func (s *Scheduler) Stop() {
	s.once.Do(func() { close(s.stop) })
	s.wg.Wait()
}
