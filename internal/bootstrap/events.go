package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/osse101/questgame/internal/config"
	"github.com/osse101/questgame/internal/event"
	"github.com/osse101/questgame/internal/logger"
)

// InitializeEventSystem creates the event bus and the resilient publisher
// the game service publishes through. Undeliverable events end up in
// <home>/logs/event_deadletter.jsonl.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	logDir := filepath.Join(cfg.Home, LogDirName)
	if err := os.MkdirAll(logDir, DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	bus := event.NewMemoryBus()
	path := filepath.Join(logDir, EventDeadLetterFile)
	pub, err := event.NewResilientPublisher(bus, EventDefaultMaxRetries, EventDefaultRetryDelay, path)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}

	logger.Info(LogMsgEventSystemInitialized, "max_retries", EventDefaultMaxRetries, "deadletter_path", path)
	return bus, pub, nil
}
