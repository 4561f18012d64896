package config

import (
	"errors"
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks the loaded values for consistency
func (c *Config) Validate() error {
	var problems []string

	if c.Port <= 0 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("PORT out of range: %d", c.Port))
	}
	if !validLogLevels[c.LogLevel] {
		problems = append(problems, fmt.Sprintf("unknown LOG_LEVEL %q", c.LogLevel))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		problems = append(problems, fmt.Sprintf("unknown LOG_FORMAT %q", c.LogFormat))
	}
	if strings.TrimSpace(c.Home) == "" {
		problems = append(problems, "QUESTGAME_HOME is empty")
	}

	n := c.Notify
	if n.Interval <= 0 {
		problems = append(problems, "NOTIFY_INTERVAL must be positive")
	}
	if n.InitialDelay < 0 {
		problems = append(problems, "NOTIFY_INITIAL_DELAY must not be negative")
	}
	if !validHour(n.StartHour) || !validHour(n.EndHour) || n.StartHour > n.EndHour {
		problems = append(problems, fmt.Sprintf("invalid notification window %d..%d", n.StartHour, n.EndHour))
	}
	if n.FocusHour > n.UrgentHour {
		problems = append(problems, "NOTIFY_FOCUS_HOUR must not exceed NOTIFY_URGENT_HOUR")
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}

func validHour(h int) bool {
	return h >= 0 && h <= 23
}
