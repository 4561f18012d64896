package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/questgame/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Game event types
const (
	QuestPlanned   Type = domain.EventTypeQuestPlanned
	QuestCompleted Type = domain.EventTypeQuestCompleted
	QuestExpired   Type = domain.EventTypeQuestExpired
	StepToggled    Type = domain.EventTypeStepToggled
	XPAwarded      Type = domain.EventTypeXPAwarded
	LevelUp        Type = domain.EventTypeLevelUp
	LootRolled     Type = domain.EventTypeLootRolled
	SpinCompleted  Type = domain.EventTypeSpinCompleted
	GoldSpent      Type = domain.EventTypeGoldSpent
)

// AllTypes lists every game event type, for subscribers that want them all
var AllTypes = []Type{
	QuestPlanned, QuestCompleted, QuestExpired, StepToggled,
	XPAwarded, LevelUp, LootRolled, SpinCompleted, GoldSpent,
}

// Typed event payloads

// QuestPlannedPayloadV1 is the typed payload for quest.planned
type QuestPlannedPayloadV1 struct {
	QuestID   string          `json:"quest_id"`
	Title     string          `json:"title"`
	Category  domain.Category `json:"category"`
	Steps     int             `json:"steps"`
	BacklogID string          `json:"backlog_id"`
	Timestamp int64           `json:"timestamp"`
}

// QuestCompletedPayloadV1 is the typed payload for quest.completed
type QuestCompletedPayloadV1 struct {
	QuestID   string          `json:"quest_id"`
	Title     string          `json:"title"`
	Category  domain.Category `json:"category"`
	XP        int             `json:"xp"`
	Level     int             `json:"level"`
	Streak    int             `json:"streak"`
	Loot      []string        `json:"loot"`
	Timestamp int64           `json:"timestamp"`
}

// QuestExpiredPayloadV1 is the typed payload for quest.expired
type QuestExpiredPayloadV1 struct {
	QuestID   string `json:"quest_id"`
	Title     string `json:"title"`
	BacklogID string `json:"backlog_id"`
	Timestamp int64  `json:"timestamp"`
}

// StepToggledPayloadV1 is the typed payload for quest.step_toggled
type StepToggledPayloadV1 struct {
	QuestID   string `json:"quest_id"`
	Index     int    `json:"index"`
	Done      bool   `json:"done"`
	StepXP    int    `json:"step_xp"`
	Timestamp int64  `json:"timestamp"`
}

// XPAwardedPayloadV1 is the typed payload for xp.awarded
type XPAwardedPayloadV1 struct {
	Source    string `json:"source"`
	Amount    int    `json:"amount"`
	TotalXP   int    `json:"total_xp"`
	Timestamp int64  `json:"timestamp"`
}

// LevelUpPayloadV1 is the typed payload for player.level_up
type LevelUpPayloadV1 struct {
	OldLevel  int   `json:"old_level"`
	NewLevel  int   `json:"new_level"`
	Timestamp int64 `json:"timestamp"`
}

// LootRolledPayloadV1 is the typed payload for loot.rolled
type LootRolledPayloadV1 struct {
	Source    string   `json:"source"`
	Items     []string `json:"items"`
	Timestamp int64    `json:"timestamp"`
}

// SpinCompletedPayloadV1 is the typed payload for spin.completed
type SpinCompletedPayloadV1 struct {
	Source    string `json:"source"`
	Segment   string `json:"segment"`
	RewardID  string `json:"reward_id,omitempty"`
	Gold      int    `json:"gold"`
	Timestamp int64  `json:"timestamp"`
}

// GoldSpentPayloadV1 is the typed payload for gold.spent
type GoldSpentPayloadV1 struct {
	Reason    string `json:"reason"`
	Amount    int    `json:"amount"`
	Timestamp int64  `json:"timestamp"`
}

func newEvent(t Type, payload interface{}) Event {
	return Event{Version: EventSchemaVersion, Type: t, Payload: payload}
}

// NewQuestPlannedEvent creates a quest.planned event
func NewQuestPlannedEvent(q domain.Quest) Event {
	return newEvent(QuestPlanned, QuestPlannedPayloadV1{
		QuestID:   q.ID,
		Title:     q.Title,
		Category:  q.Category,
		Steps:     len(q.Steps),
		BacklogID: q.BacklogID,
		Timestamp: time.Now().Unix(),
	})
}

// NewQuestCompletedEvent creates a quest.completed event
func NewQuestCompletedEvent(q domain.Quest, xp, level, streak int, loot []string) Event {
	return newEvent(QuestCompleted, QuestCompletedPayloadV1{
		QuestID:   q.ID,
		Title:     q.Title,
		Category:  q.Category,
		XP:        xp,
		Level:     level,
		Streak:    streak,
		Loot:      loot,
		Timestamp: time.Now().Unix(),
	})
}

// NewQuestExpiredEvent creates a quest.expired event
func NewQuestExpiredEvent(q domain.Quest, backlogID string) Event {
	return newEvent(QuestExpired, QuestExpiredPayloadV1{
		QuestID:   q.ID,
		Title:     q.Title,
		BacklogID: backlogID,
		Timestamp: time.Now().Unix(),
	})
}

// NewStepToggledEvent creates a quest.step_toggled event
func NewStepToggledEvent(questID string, index int, done bool, stepXP int) Event {
	return newEvent(StepToggled, StepToggledPayloadV1{
		QuestID:   questID,
		Index:     index,
		Done:      done,
		StepXP:    stepXP,
		Timestamp: time.Now().Unix(),
	})
}

// NewXPAwardedEvent creates an xp.awarded event
func NewXPAwardedEvent(source string, amount, total int) Event {
	return newEvent(XPAwarded, XPAwardedPayloadV1{
		Source:    source,
		Amount:    amount,
		TotalXP:   total,
		Timestamp: time.Now().Unix(),
	})
}

// NewLevelUpEvent creates a player.level_up event
func NewLevelUpEvent(oldLevel, newLevel int) Event {
	return newEvent(LevelUp, LevelUpPayloadV1{
		OldLevel:  oldLevel,
		NewLevel:  newLevel,
		Timestamp: time.Now().Unix(),
	})
}

// NewLootRolledEvent creates a loot.rolled event
func NewLootRolledEvent(source string, items []string) Event {
	return newEvent(LootRolled, LootRolledPayloadV1{
		Source:    source,
		Items:     items,
		Timestamp: time.Now().Unix(),
	})
}

// NewSpinCompletedEvent creates a spin.completed event
func NewSpinCompletedEvent(source, segment, rewardID string, gold int) Event {
	return newEvent(SpinCompleted, SpinCompletedPayloadV1{
		Source:    source,
		Segment:   segment,
		RewardID:  rewardID,
		Gold:      gold,
		Timestamp: time.Now().Unix(),
	})
}

// NewGoldSpentEvent creates a gold.spent event
func NewGoldSpentEvent(reason string, amount int) Event {
	return newEvent(GoldSpent, GoldSpentPayloadV1{
		Reason:    reason,
		Amount:    amount,
		Timestamp: time.Now().Unix(),
	})
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously
// in subscription order and every handler runs even if an earlier one fails.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll subscribes handler to every game event type
func SubscribeAll(b Bus, handler Handler) {
	for _, t := range AllTypes {
		b.Subscribe(t, handler)
	}
}
