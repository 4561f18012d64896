package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/questgame/internal/event"
	"github.com/osse101/questgame/internal/scheduler"
	"github.com/osse101/questgame/internal/server"
	"github.com/osse101/questgame/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Every field but Server may be nil.
type ShutdownComponents struct {
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	Pool               *worker.Pool
	RolloverWorker     *worker.RolloverWorker
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown stops the components in order:
// 1. HTTP server (stop accepting new requests)
// 2. Background timers and the worker pool
// 3. Event publisher (flush pending retries)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.Pool != nil {
		components.Pool.Stop()
	}
	if components.RolloverWorker != nil {
		if err := components.RolloverWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgRolloverWorkerFailed, "error", err)
		}
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
