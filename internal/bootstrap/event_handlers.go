package bootstrap

import (
	"log/slog"

	"github.com/osse101/questgame/internal/event"
	"github.com/osse101/questgame/internal/metrics"
	"github.com/osse101/questgame/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	SSEHub   *sse.Hub
}

// RegisterEventHandlers subscribes the metrics collector and, when a hub is
// given, the SSE bridge to every game event
func RegisterEventHandlers(deps EventHandlerDependencies) {
	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.SSEHub != nil {
		sse.NewSubscriber(deps.SSEHub, deps.EventBus).Subscribe()
	}
}
