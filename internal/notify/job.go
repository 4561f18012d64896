package notify

import (
	"context"
	"time"

	"github.com/osse101/questgame/internal/domain"
	"github.com/osse101/questgame/internal/logger"
)

// Reader is the unsynchronized read path the check shares with requests
type Reader interface {
	State(ctx context.Context) domain.State
	Today(ctx context.Context) domain.Today
}

// Job is the periodic reminder check run by the worker pool
type Job struct {
	reader     Reader
	session    *Session
	dispatcher Dispatcher
	schedule   Schedule
	now        func() time.Time
}

// NewJob creates a reminder check. now returns local time; the calendar date
// is taken in UTC like the rest of the game.
func NewJob(reader Reader, session *Session, dispatcher Dispatcher, schedule Schedule, now func() time.Time) *Job {
	if now == nil {
		now = time.Now
	}
	return &Job{
		reader:     reader,
		session:    session,
		dispatcher: dispatcher,
		schedule:   schedule,
		now:        now,
	}
}

// Process implements worker.Job. Dispatch failures are logged and swallowed.
func (j *Job) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	now := j.now()
	snap := Snapshot{
		State: j.reader.State(ctx),
		Today: j.reader.Today(ctx),
		Date:  now.UTC().Format("2006-01-02"),
		Hour:  now.Hour(),
	}

	for _, n := range j.session.Due(Plan(snap, j.schedule)) {
		if err := j.dispatcher.Send(ctx, n.Title, n.Body); err != nil {
			log.Warn("Notification dispatch failed", "key", n.Key, "error", err)
			continue
		}
		log.Debug("Notification sent", "key", n.Key)
	}
	return nil
}
