package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/questgame/internal/logger"
)

type retryEntry struct {
	event     Event
	attempt   int
	notBefore time.Time
	lastErr   error
}

// ResilientPublisher wraps a Bus. A failed publish is retried in the
// background with exponential backoff and ends in the dead-letter file when
// retries are exhausted or the retry queue is full.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter
	shutdown   chan struct{}
	once       sync.Once
	wg         sync.WaitGroup
}

// NewResilientPublisher creates a publisher and starts its retry worker
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open dead-letter file: %w", err)
	}

	p := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	p.wg.Add(1)
	go p.retryWorker()
	return p, nil
}

// PublishWithRetry publishes synchronously and queues the event for retry on failure
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)
	p.enqueue(retryEntry{
		event:     event,
		attempt:   1,
		notBefore: time.Now().Add(CalculateRetryDelay(p.retryDelay, 1)),
		lastErr:   err,
	})
}

// Publish implements Bus. Failures are absorbed by the retry queue.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	p.PublishWithRetry(ctx, event)
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, handler)
}

// Shutdown stops the worker after it drains the queue, bounded by ctx
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.once.Do(func() { close(p.shutdown) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return p.deadLetter.Close()
	case <-ctx.Done():
		logger.FromContext(ctx).Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}

func (p *ResilientPublisher) enqueue(e retryEntry) {
	select {
	case p.retryQueue <- e:
	default:
		logger.Warn(LogMsgRetryQueueFull, "event_type", e.event.Type)
		p.writeDeadLetter(e)
	}
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	for {
		select {
		case e := <-p.retryQueue:
			p.waitUntil(e.notBefore)
			p.retry(e)
		case <-p.shutdown:
			p.drain()
			return
		}
	}
}

// waitUntil sleeps until t or until shutdown begins
func (p *ResilientPublisher) waitUntil(t time.Time) {
	d := time.Until(t)
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-p.shutdown:
	}
}

func (p *ResilientPublisher) retry(e retryEntry) {
	ctx := context.Background()
	err := p.bus.Publish(ctx, e.event)
	if err == nil {
		logger.Info(LogMsgEventRetrySucceeded, "event_type", e.event.Type, "attempt", e.attempt)
		return
	}

	e.lastErr = err
	if e.attempt >= p.maxRetries || p.shuttingDown() {
		logger.Warn(LogMsgEventRetryExhausted, "event_type", e.event.Type, "attempts", e.attempt+1)
		p.writeDeadLetter(e)
		return
	}

	e.attempt++
	e.notBefore = time.Now().Add(CalculateRetryDelay(p.retryDelay, e.attempt))
	logger.Warn(LogMsgEventRetryFailed, "event_type", e.event.Type, "attempt", e.attempt, "error", err)
	p.enqueue(e)
}

// drain makes one final attempt for everything still queued
func (p *ResilientPublisher) drain() {
	n := 0
	for {
		select {
		case e := <-p.retryQueue:
			p.retry(e)
			n++
		default:
			if n > 0 {
				logger.Info(LogMsgQueueDrainedShutdown, "events", n)
			}
			return
		}
	}
}

func (p *ResilientPublisher) shuttingDown() bool {
	select {
	case <-p.shutdown:
		return true
	default:
		return false
	}
}

func (p *ResilientPublisher) writeDeadLetter(e retryEntry) {
	if err := p.deadLetter.Write(e.event, e.attempt+1, e.lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "event_type", e.event.Type, "error", err)
	}
}
