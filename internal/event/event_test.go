package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/osse101/questgame/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		if event.Type != eventType {
			t.Errorf("Expected event type %s, got %s", eventType, event.Type)
		}
		if event.Payload.(string) != "payload" {
			t.Errorf("Expected payload 'payload', got %v", event.Payload)
		}
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    eventType,
		Payload: "payload",
	})

	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if !handled {
		t.Error("Handler was not called")
	}
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if count != 2 {
		t.Errorf("Expected 2 handlers to be called, got %d", count)
	}
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err == nil {
		t.Error("Expected error from Publish, got nil")
	}
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	if err := bus.Publish(context.Background(), Event{Type: QuestCompleted}); err != nil {
		t.Errorf("Publish without subscribers returned error: %v", err)
	}
}

func TestSubscribeAll(t *testing.T) {
	bus := NewMemoryBus()
	seen := map[Type]bool{}
	SubscribeAll(bus, func(_ context.Context, e Event) error {
		seen[e.Type] = true
		return nil
	})

	for _, typ := range AllTypes {
		if err := bus.Publish(context.Background(), Event{Type: typ}); err != nil {
			t.Fatalf("Publish(%s) returned error: %v", typ, err)
		}
	}
	if len(seen) != len(AllTypes) {
		t.Errorf("Expected %d types delivered, got %d", len(AllTypes), len(seen))
	}
}

func TestNewQuestCompletedEvent(t *testing.T) {
	q := domain.Quest{ID: "Q-1", Title: "ship", Category: domain.CategoryShip}
	e := NewQuestCompletedEvent(q, 42, 3, 2, []string{domain.ItemShipToken})

	if e.Type != QuestCompleted || e.Version != EventSchemaVersion {
		t.Fatalf("unexpected envelope: %+v", e)
	}
	p, err := DecodePayload[QuestCompletedPayloadV1](e.Payload)
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if p.XP != 42 || p.Category != domain.CategoryShip || len(p.Loot) != 1 {
		t.Errorf("unexpected payload: %+v", p)
	}
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	raw := map[string]interface{}{"source": "daily", "segment": "gold_10", "gold": 10}
	p, err := DecodePayload[SpinCompletedPayloadV1](raw)
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if p.Segment != "gold_10" || p.Gold != 10 {
		t.Errorf("unexpected payload: %+v", p)
	}
}

func TestDecodePayload_RawMessageAndPointer(t *testing.T) {
	p, err := DecodePayload[GoldSpentPayloadV1](json.RawMessage(`{"reason":"shop:hytale","amount":65}`))
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if p.Amount != 65 || p.Reason != "shop:hytale" {
		t.Errorf("unexpected payload: %+v", p)
	}

	in := &GoldSpentPayloadV1{Amount: 3}
	p, err = DecodePayload[GoldSpentPayloadV1](in)
	if err != nil || p.Amount != 3 {
		t.Errorf("pointer payload: %+v, %v", p, err)
	}

	if _, err := DecodePayload[GoldSpentPayloadV1](json.RawMessage(`[1]`)); err == nil {
		t.Error("expected decode error")
	}
}
