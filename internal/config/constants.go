package config

// Environment variable names
const (
	EnvHome               = "QUESTGAME_HOME"
	EnvHost               = "HOST"
	EnvPort               = "PORT"
	EnvLogLevel           = "LOG_LEVEL"
	EnvLogFormat          = "LOG_FORMAT"
	EnvEnvironment        = "ENVIRONMENT"
	EnvVersion            = "VERSION"
	EnvNotifyEnabled      = "NOTIFY_ENABLED"
	EnvNotifyInterval     = "NOTIFY_INTERVAL"
	EnvNotifyInitialDelay = "NOTIFY_INITIAL_DELAY"
	EnvNotifyStartHour    = "NOTIFY_START_HOUR"
	EnvNotifyEndHour      = "NOTIFY_END_HOUR"
	EnvNotifyFocusHour    = "NOTIFY_FOCUS_HOUR"
	EnvNotifyUrgentHour   = "NOTIFY_URGENT_HOUR"
)

// Defaults
const (
	DefaultHome = "."
	DefaultHost = "127.0.0.1"
	DefaultPort = 8777
)

// GameConfigFile is the optional tuning document in the data directory
const GameConfigFile = "config.json"
