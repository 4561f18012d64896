package metrics

import (
	"context"

	"github.com/osse101/questgame/internal/event"
	"github.com/osse101/questgame/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every game event
func (e *EventMetricsCollector) Register(bus event.Bus) {
	event.SubscribeAll(bus, e.HandleEvent)
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.QuestCompleted:
		var p event.QuestCompletedPayloadV1
		if p, err = event.DecodePayload[event.QuestCompletedPayloadV1](evt.Payload); err == nil {
			QuestsCompleted.WithLabelValues(string(p.Category)).Inc()
		}

	case event.QuestExpired:
		QuestsExpired.Inc()

	case event.XPAwarded:
		var p event.XPAwardedPayloadV1
		if p, err = event.DecodePayload[event.XPAwardedPayloadV1](evt.Payload); err == nil {
			XPAwarded.WithLabelValues(p.Source).Add(float64(p.Amount))
		}

	case event.LevelUp:
		LevelUps.Inc()

	case event.LootRolled:
		var p event.LootRolledPayloadV1
		if p, err = event.DecodePayload[event.LootRolledPayloadV1](evt.Payload); err == nil {
			for _, item := range p.Items {
				LootDropped.WithLabelValues(item).Inc()
			}
		}

	case event.SpinCompleted:
		var p event.SpinCompletedPayloadV1
		if p, err = event.DecodePayload[event.SpinCompletedPayloadV1](evt.Payload); err == nil {
			Spins.WithLabelValues(p.Source, p.Segment).Inc()
		}

	case event.GoldSpent:
		var p event.GoldSpentPayloadV1
		if p, err = event.DecodePayload[event.GoldSpentPayloadV1](evt.Payload); err == nil {
			GoldSpent.WithLabelValues(p.Reason).Add(float64(p.Amount))
		}
	}

	if err != nil {
		log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}
	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
