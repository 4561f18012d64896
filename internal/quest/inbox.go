package quest

import (
	"strings"

	"github.com/osse101/questgame/internal/domain"
)

// CleanInboxLine strips the list marker and the bracketed timestamp
func CleanInboxLine(line string) string {
	text := strings.TrimSpace(line)
	if strings.HasPrefix(text, "-") {
		text = strings.TrimSpace(text[1:])
	}
	if strings.HasPrefix(text, "[") {
		if end := strings.Index(text, "]"); end >= 0 {
			text = strings.TrimSpace(text[end+1:])
		}
	}
	return text
}

// ParseInbox returns the non-empty cleaned lines of inbox.md
func ParseInbox(text string) []string {
	var out []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if cleaned := CleanInboxLine(line); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

// FormatInboxLine renders one inbox entry
func FormatInboxLine(ts, text string) string {
	return "- [" + ts + "] " + text + "\n"
}

// IDAllocator hands out B-NNNN identifiers starting after the current
// backlog size and skipping identifiers already in use.
type IDAllocator struct {
	used map[string]bool
	next int
}

// NewIDAllocator seeds an allocator from backlog
func NewIDAllocator(backlog domain.Backlog) *IDAllocator {
	used := make(map[string]bool, len(backlog.Items))
	for _, item := range backlog.Items {
		used[item.ID] = true
	}
	return &IDAllocator{used: used, next: len(backlog.Items) + 1}
}

// Next returns the next free identifier
func (a *IDAllocator) Next() string {
	id := domain.FormatBacklogID(a.next)
	for a.used[id] {
		a.next++
		id = domain.FormatBacklogID(a.next)
	}
	a.used[id] = true
	a.next++
	return id
}
