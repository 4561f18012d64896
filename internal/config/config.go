package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the process configuration
type Config struct {
	Home        string
	Host        string
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string

	Notify NotifyConfig
}

// NotifyConfig controls the desktop reminder loop started by serve
type NotifyConfig struct {
	Enabled      bool
	Interval     time.Duration
	InitialDelay time.Duration
	StartHour    int
	EndHour      int
	FocusHour    int
	UrgentHour   int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Home:        getEnv(EnvHome, DefaultHome),
		Host:        getEnv(EnvHost, DefaultHost),
		LogLevel:    strings.ToLower(getEnv(EnvLogLevel, "info")),
		LogFormat:   strings.ToLower(getEnv(EnvLogFormat, "text")),
		Environment: getEnv(EnvEnvironment, "dev"),
		Version:     getEnv(EnvVersion, "dev"),
		Notify: NotifyConfig{
			Enabled:      getEnvAsBool(EnvNotifyEnabled, true),
			Interval:     getEnvAsDuration(EnvNotifyInterval, 15*time.Minute),
			InitialDelay: getEnvAsDuration(EnvNotifyInitialDelay, 10*time.Second),
			StartHour:    getEnvAsInt(EnvNotifyStartHour, 17),
			EndHour:      getEnvAsInt(EnvNotifyEndHour, 22),
			FocusHour:    getEnvAsInt(EnvNotifyFocusHour, 19),
			UrgentHour:   getEnvAsInt(EnvNotifyUrgentHour, 21),
		},
	}

	portStr := getEnv(EnvPort, strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
// An empty value counts as unset.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}
