package sse

import (
	"context"

	"github.com/osse101/questgame/internal/event"
	"github.com/osse101/questgame/internal/logger"
)

// Subscriber forwards bus events to the hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{hub: hub, bus: bus}
}

// Subscribe attaches to every game event type
func (s *Subscriber) Subscribe() {
	event.SubscribeAll(s.bus, s.forward)
}

func (s *Subscriber) forward(ctx context.Context, evt event.Event) error {
	logger.FromContext(ctx).Debug(LogMsgEventBroadcast, "event_type", evt.Type)
	s.hub.Broadcast(string(evt.Type), evt.Payload)
	return nil
}
