package domain

import (
	"encoding/json"
	"fmt"
)

// Quest source values
const (
	QuestSourceBacklog = "backlog"
)

// Step is one ordered unit of the active quest
type Step struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Quest is the payload of an active Today
type Quest struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Category      Category `json:"category"`
	Impact        int      `json:"impact"`
	EffortMinutes int      `json:"effort_minutes"`
	Steps         []Step   `json:"steps"`
	CreatedAt     string   `json:"created_at"`
	Source        string   `json:"source"`
	BacklogID     string   `json:"backlog_id"`
}

// RemainingSteps counts steps not yet done
func (q *Quest) RemainingSteps() int {
	n := 0
	for _, s := range q.Steps {
		if !s.Done {
			n++
		}
	}
	return n
}

// CreatedDate returns the calendar date part of CreatedAt
func (q *Quest) CreatedDate() string {
	if len(q.CreatedAt) < 10 {
		return q.CreatedAt
	}
	return q.CreatedAt[:10]
}

// Today is either inactive (Quest == nil) or carries the active quest.
// It serializes as {"active":false} or {"active":true, ...quest fields}.
type Today struct {
	quest *Quest
}

// InactiveToday returns the empty variant
func InactiveToday() Today {
	return Today{}
}

// ActiveToday returns the variant carrying q
func ActiveToday(q Quest) Today {
	return Today{quest: &q}
}

// Active reports whether a quest is in progress
func (t Today) Active() bool {
	return t.quest != nil
}

// Quest returns the active quest, or nil when inactive
func (t Today) Quest() *Quest {
	return t.quest
}

type activeDocument struct {
	Active bool `json:"active"`
	Quest
}

// MarshalJSON implements json.Marshaler
func (t Today) MarshalJSON() ([]byte, error) {
	if t.quest == nil {
		return []byte(`{"active":false}`), nil
	}
	return json.Marshal(activeDocument{Active: true, Quest: *t.quest})
}

// UnmarshalJSON implements json.Unmarshaler
func (t *Today) UnmarshalJSON(data []byte) error {
	var doc activeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode today: %w", err)
	}
	if !doc.Active {
		t.quest = nil
		return nil
	}
	q := doc.Quest
	t.quest = &q
	return nil
}
