package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Game metric names
const (
	MetricNameQuestsCompleted = "questgame_quests_completed_total"
	MetricNameQuestsExpired   = "questgame_quests_expired_total"
	MetricNameXPAwarded       = "questgame_xp_awarded_total"
	MetricNameLootDropped     = "questgame_loot_dropped_total"
	MetricNameSpins           = "questgame_spins_total"
	MetricNameGoldSpent       = "questgame_gold_spent_total"
	MetricNameLevelUps        = "questgame_level_ups_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Game metric help text
const (
	HelpTextQuestsCompleted = "Total number of quests completed"
	HelpTextQuestsExpired   = "Total number of quests returned to the backlog at day rollover"
	HelpTextXPAwarded       = "Total XP awarded"
	HelpTextLootDropped     = "Total number of loot items dropped"
	HelpTextSpins           = "Total number of wheel spins"
	HelpTextGoldSpent       = "Total gold spent"
	HelpTextLevelUps        = "Total number of player level ups"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelItem     = "item"
	LabelCategory = "category"
	LabelSource   = "source"
	LabelSegment  = "segment"
	LabelReason   = "reason"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
