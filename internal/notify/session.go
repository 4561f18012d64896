package notify

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Session defaults
const (
	DefaultSessionSize = 64
	DefaultSessionTTL  = 48 * time.Hour
)

// Session remembers which reminders this process already sent. It starts
// empty on every server start and is never persisted.
type Session struct {
	sent *expirable.LRU[string, struct{}]
}

// NewSession creates a session holding up to size keys for ttl
func NewSession(size int, ttl time.Duration) *Session {
	return &Session{sent: expirable.NewLRU[string, struct{}](size, nil, ttl)}
}

// Sent reports whether key was already sent
func (s *Session) Sent(key string) bool {
	return s.sent.Contains(key)
}

// Due drops reminders already sent and marks the rest as sent
func (s *Session) Due(ns []Notification) []Notification {
	var out []Notification
	for _, n := range ns {
		if s.Sent(n.Key) {
			continue
		}
		s.sent.Add(n.Key, struct{}{})
		out = append(out, n)
	}
	return out
}

// Reset forgets every sent key
func (s *Session) Reset() {
	s.sent.Purge()
}
