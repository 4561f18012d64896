package domain

import "fmt"

// Backlog defaults applied to new and incomplete items
const (
	DefaultImpact        = 3
	DefaultEffortMinutes = 30
	MinImpact            = 1
	MaxImpact            = 5
)

// BacklogItem is a candidate unit of work waiting to be planned
type BacklogItem struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Category      Category `json:"category"`
	Impact        int      `json:"impact"`
	EffortMinutes int      `json:"effort_minutes"`
	Notes         string   `json:"notes"`
	CreatedAt     string   `json:"created_at"`
}

// ImpactOrDefault returns Impact, or DefaultImpact when unset
func (b BacklogItem) ImpactOrDefault() int {
	if b.Impact == 0 {
		return DefaultImpact
	}
	return b.Impact
}

// EffortOrDefault returns EffortMinutes, or DefaultEffortMinutes when unset
func (b BacklogItem) EffortOrDefault() int {
	if b.EffortMinutes == 0 {
		return DefaultEffortMinutes
	}
	return b.EffortMinutes
}

// Backlog is the document persisted in backlog.json
type Backlog struct {
	Items []BacklogItem `json:"items"`
}

// DefaultBacklog returns an empty backlog
func DefaultBacklog() Backlog {
	return Backlog{Items: []BacklogItem{}}
}

// Find returns the index of the item with id, or -1
func (b *Backlog) Find(id string) int {
	for i := range b.Items {
		if b.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// Has reports whether an item with id exists
func (b *Backlog) Has(id string) bool {
	return b.Find(id) >= 0
}

// Remove deletes the item with id and reports whether anything was removed
func (b *Backlog) Remove(id string) bool {
	kept := b.Items[:0]
	removed := false
	for _, item := range b.Items {
		if item.ID == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	b.Items = kept
	return removed
}

// FormatBacklogID renders the B-NNNN identifier for n
func FormatBacklogID(n int) string {
	return fmt.Sprintf("B-%04d", n)
}
