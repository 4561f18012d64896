package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/questgame/internal/domain"
	"github.com/osse101/questgame/internal/logger"
)

// Roller is the part of the game service touched at the day boundary.
// Reading today expires a stale quest and reading the weekly missions
// regenerates them for a new week.
type Roller interface {
	Today(ctx context.Context) (domain.Today, error)
	Weekly(ctx context.Context) (*domain.WeeklyState, error)
}

// RolloverWorker applies the day rollover at 00:00 UTC even when no request
// arrives to trigger it lazily
type RolloverWorker struct {
	roller   Roller
	now      func() time.Time
	timer    *time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
}

// NewRolloverWorker creates a new RolloverWorker
func NewRolloverWorker(roller Roller) *RolloverWorker {
	return &RolloverWorker{
		roller:   roller,
		now:      time.Now,
		shutdown: make(chan struct{}),
	}
}

// Start schedules the first rollover
func (w *RolloverWorker) Start() {
	w.scheduleNext()
}

func (w *RolloverWorker) scheduleNext() {
	duration := timeUntilRollover(w.now())
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	defer w.mu.Unlock()
	select {
	case <-w.shutdown:
		return
	default:
	}
	if w.timer != nil {
		w.timer.Stop()
	}

	// Two stages so an early timer fire does not reschedule in a tight loop
	if duration > time.Hour {
		wait := duration - 45*time.Minute
		w.timer = time.AfterFunc(wait, w.scheduleNext)
		log.Info(LogMsgRolloverStandby, "next_check_at", w.now().UTC().Add(wait))
		return
	}

	w.timer = time.AfterFunc(duration, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		rem := timeUntilRollover(w.now())
		if rem > 10*time.Second && rem < 23*time.Hour {
			w.scheduleNext()
			return
		}

		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			_ = w.Run(context.Background())
		}()
		w.scheduleNext()
	})
	log.Info(LogMsgRolloverApproach, "next_rollover_at", w.now().UTC().Add(duration))
}

// Run performs the rollover once
func (w *RolloverWorker) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRolloverStarting)

	today, err := w.roller.Today(ctx)
	if err != nil {
		log.Error(LogMsgRolloverFailed, "step", "today", "error", err)
		return err
	}
	weekly, err := w.roller.Weekly(ctx)
	if err != nil {
		log.Error(LogMsgRolloverFailed, "step", "weekly", "error", err)
		return err
	}

	log.Info(LogMsgRolloverCompleted, "active_quest", today.Active(), "week_start", weekly.WeekStart)
	return nil
}

// Shutdown cancels the pending timer and waits for an in-flight rollover
func (w *RolloverWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down rollover worker")

	w.mu.Lock()
	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("Rollover worker shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn("Rollover worker shutdown timeout")
		return ctx.Err()
	}
}

// timeUntilRollover returns the duration until the next 00:00 UTC
func timeUntilRollover(now time.Time) time.Duration {
	now = now.UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
