package bootstrap

import "time"

// Session log files live in <home>/logs
const (
	LogDirName             = "logs"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileRetentionCount older sessions survive each start
	LogFileRetentionCount = 9

	DirPermission     = 0o755
	LogFilePermission = 0o644
)

// Event delivery tuning for the resilient publisher
const (
	EventDefaultMaxRetries = 3
	EventDefaultRetryDelay = 500 * time.Millisecond
	EventDeadLetterFile    = "event_deadletter.jsonl"
)

// Startup
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingQuestGame   = "Starting QuestGame"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"

	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
	LogMsgMetricsCollectorRegistered     = "Metrics collector registered"
)

// Shutdown
const (
	LogMsgShuttingDownServer         = "Shutting down server"
	LogMsgShuttingDownEventPublisher = "Draining event publisher"
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server did not stop in time"
	LogMsgResilientPublisherFailed   = "Event publisher shutdown failed"
	LogMsgRolloverWorkerFailed       = "Rollover worker shutdown failed"
)
