package sse

import "time"

const (
	// QueueSize bounds broadcasts waiting for the fan-out loop
	QueueSize = 64

	// ClientBufferSize bounds events waiting for one slow client
	ClientBufferSize = 32

	// KeepaliveInterval is the comment ping period that keeps proxies from
	// closing an idle stream
	KeepaliveInterval = 25 * time.Second

	// RetryMillis is sent once so browsers reconnect quickly after a restart
	RetryMillis = 2000
)

// Stream control event types. Game events keep their bus type name.
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// QueryParamTypes is the comma separated event type filter
const QueryParamTypes = "types"

// ===========================
// Log Messages
// ===========================

const (
	LogMsgClientConnected    = "Event stream opened"
	LogMsgClientDisconnected = "Event stream closed"
	LogMsgEventBroadcast     = "Forwarding event to stream clients"
	LogMsgEventDropped       = "Stream queue full, event dropped"
	LogMsgClientLagging      = "Stream client lagging, event skipped"
	LogMsgWriteError         = "Failed to write stream event"
)
