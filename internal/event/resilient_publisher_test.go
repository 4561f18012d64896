package event

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/questgame/internal/domain"
)

var errBusDown = errors.New("bus down")

// flakyBus fails the calls for which failOn returns true
type flakyBus struct {
	mu     sync.Mutex
	calls  []Event
	failOn func(call int) bool
}

func (b *flakyBus) Publish(_ context.Context, evt Event) error {
	b.mu.Lock()
	b.calls = append(b.calls, evt)
	n := len(b.calls)
	b.mu.Unlock()

	if b.failOn != nil && b.failOn(n) {
		return errBusDown
	}
	return nil
}

func (b *flakyBus) Subscribe(Type, Handler) {}

func (b *flakyBus) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

func failFirst(n int) func(int) bool {
	return func(call int) bool { return call <= n }
}

func alwaysFail(int) bool { return true }

func newTestPublisher(t *testing.T, bus Bus, maxRetries int, delay time.Duration) (*ResilientPublisher, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	p, err := NewResilientPublisher(bus, maxRetries, delay, path)
	require.NoError(t, err)
	return p, path
}

func shutdown(t *testing.T, p *ResilientPublisher) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, p.Shutdown(ctx))
}

func deadLetters(t *testing.T, path string) []DeadLetterEntry {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	entries, err := ReadDeadLetters(bytes.NewReader(data))
	require.NoError(t, err)
	return entries
}

func completedEvent() Event {
	q := domain.Quest{ID: "Q-2024-01-02-1", Title: "Ship landing page", Category: domain.CategoryShip}
	return NewQuestCompletedEvent(q, 55, 2, 3, nil)
}

func TestResilientPublisher_DeliversFirstTime(t *testing.T) {
	bus := &flakyBus{}
	p, path := newTestPublisher(t, bus, 3, 5*time.Millisecond)

	require.NoError(t, p.Publish(context.Background(), completedEvent()))
	shutdown(t, p)

	assert.Equal(t, 1, bus.count())
	assert.Empty(t, deadLetters(t, path))
}

func TestResilientPublisher_RetriesUntilDelivered(t *testing.T) {
	bus := &flakyBus{failOn: failFirst(2)}
	p, path := newTestPublisher(t, bus, 3, 5*time.Millisecond)

	assert.NoError(t, p.Publish(context.Background(), NewXPAwardedEvent("quest", 55, 155)),
		"failures are absorbed by the retry queue")

	require.Eventually(t, func() bool { return bus.count() == 3 }, time.Second, 5*time.Millisecond)
	shutdown(t, p)

	assert.Empty(t, deadLetters(t, path))
}

func TestResilientPublisher_ExhaustedRetriesAreDeadLettered(t *testing.T) {
	bus := &flakyBus{failOn: alwaysFail}
	p, path := newTestPublisher(t, bus, 2, 5*time.Millisecond)

	p.PublishWithRetry(context.Background(), NewSpinCompletedEvent("daily", "gold_10", "", 10))

	require.Eventually(t, func() bool { return bus.count() == 3 }, time.Second, 5*time.Millisecond)
	shutdown(t, p)

	entries := deadLetters(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, SpinCompleted, entries[0].Event.Type)
	assert.Equal(t, 3, entries[0].Attempts)
	assert.Equal(t, errBusDown.Error(), entries[0].LastError)
	assert.Equal(t, DeadLetterSchemaVersion, entries[0].SchemaVersion)

	p2, err := DecodePayload[SpinCompletedPayloadV1](entries[0].Event.Payload)
	require.NoError(t, err)
	assert.Equal(t, "gold_10", p2.Segment)
}

func TestResilientPublisher_ShutdownFlushesPending(t *testing.T) {
	t.Run("last attempt succeeds", func(t *testing.T) {
		bus := &flakyBus{failOn: failFirst(1)}
		p, path := newTestPublisher(t, bus, 5, time.Hour)

		p.PublishWithRetry(context.Background(), NewLootRolledEvent("quest", []string{domain.ItemShipToken}))
		shutdown(t, p)

		assert.Equal(t, 2, bus.count())
		assert.Empty(t, deadLetters(t, path))
	})

	t.Run("last attempt fails", func(t *testing.T) {
		bus := &flakyBus{failOn: alwaysFail}
		p, path := newTestPublisher(t, bus, 5, time.Hour)

		p.PublishWithRetry(context.Background(), NewStepToggledEvent("Q-1", 0, true, 5))
		shutdown(t, p)

		entries := deadLetters(t, path)
		require.Len(t, entries, 1)
		assert.Equal(t, StepToggled, entries[0].Event.Type)
	})
}

func TestResilientPublisher_FullQueueDeadLetters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	dl, err := NewDeadLetterWriter(path)
	require.NoError(t, err)

	// No worker and no buffer, so every enqueue overflows
	p := &ResilientPublisher{
		bus:        &flakyBus{failOn: alwaysFail},
		retryQueue: make(chan retryEntry),
		maxRetries: 3,
		retryDelay: time.Millisecond,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	p.PublishWithRetry(context.Background(), NewGoldSpentEvent("shop:hytale", 65))
	p.PublishWithRetry(context.Background(), NewGoldSpentEvent("shop:steam", 40))
	require.NoError(t, dl.Close())

	entries := deadLetters(t, path)
	require.Len(t, entries, 2)
	assert.Equal(t, 2, entries[0].Attempts)
	assert.Equal(t, GoldSpent, entries[1].Event.Type)
}

func TestResilientPublisher_ShutdownTimeout(t *testing.T) {
	bus := &flakyBus{}
	p, _ := newTestPublisher(t, bus, 1, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := p.Shutdown(ctx)
	if err != nil {
		assert.ErrorIs(t, err, context.Canceled)
	}
	shutdown(t, p)
}

func TestCalculateRetryDelay(t *testing.T) {
	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 100 * time.Millisecond},
		{1, 100 * time.Millisecond},
		{2, 200 * time.Millisecond},
		{3, 400 * time.Millisecond},
		{5, 1600 * time.Millisecond},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculateRetryDelay(100*time.Millisecond, tt.attempt), "attempt %d", tt.attempt)
	}
}

func TestReadDeadLetters(t *testing.T) {
	t.Run("skips blank lines", func(t *testing.T) {
		in := `{"schema_version":"1.0","event":{"type":"xp.awarded"},"attempts":4}` + "\n\n"
		entries, err := ReadDeadLetters(strings.NewReader(in))

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, XPAwarded, entries[0].Event.Type)
	})

	t.Run("reports malformed line", func(t *testing.T) {
		in := `{"attempts":1}` + "\nnot json\n"
		entries, err := ReadDeadLetters(strings.NewReader(in))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
		assert.Len(t, entries, 1)
	})
}
