package event

import "time"

// EventSchemaVersion is stamped on every envelope
const EventSchemaVersion = "1.0"

const (
	// RetryQueueBufferSize bounds the events waiting for another attempt
	RetryQueueBufferSize = 256

	// DeadLetterFilePermissions applies when the dead-letter file is created
	DeadLetterFilePermissions = 0o644

	// DeadLetterSchemaVersion is written on every dead-letter line
	DeadLetterSchemaVersion = "1.0"
)

// ===========================
// Log Messages
// ===========================

const (
	LogMsgEventPublishFailed    = "Publishing event failed, will retry"
	LogMsgRetryQueueFull        = "Retry queue is full, dead-lettering event"
	LogMsgDeadLetterWriteFailed = "Could not append to dead-letter file"
	LogMsgEventDeadLettered     = "Event dead-lettered"
	LogMsgEventRetryExhausted   = "Giving up on event"
	LogMsgEventRetryFailed      = "Retry failed, backing off"
	LogMsgEventRetrySucceeded   = "Retry delivered event"
	LogMsgQueueDrainedShutdown  = "Flushed pending retries on shutdown"
	LogMsgShutdownTimeout       = "Timed out waiting for event retries"

	LogMsgHandlerErrorFormat = "%d handler(s) failed for %s: %v"
)

// CalculateRetryDelay doubles baseDelay for every attempt after the first
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return baseDelay << (attempt - 1)
}
