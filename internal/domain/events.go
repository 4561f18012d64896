package domain

// Event type constants published on the internal event bus and consumed by
// the SSE feed and metrics collector.
//
// Event types follow the pattern: <entity>.<action> (e.g., "quest.completed")
const (
	// EventTypeQuestPlanned is published when a backlog item becomes the active quest
	EventTypeQuestPlanned = "quest.planned"

	// EventTypeQuestCompleted is published when the active quest is finished
	EventTypeQuestCompleted = "quest.completed"

	// EventTypeQuestExpired is published when a stale quest returns to the backlog
	EventTypeQuestExpired = "quest.expired"

	// EventTypeStepToggled is published when a quest step changes state
	EventTypeStepToggled = "quest.step_toggled"

	// EventTypeXPAwarded is published whenever XP is granted
	EventTypeXPAwarded = "xp.awarded"

	// EventTypeLevelUp is published when the player level increases
	EventTypeLevelUp = "player.level_up"

	// EventTypeLootRolled is published when loot is added to the inventory
	EventTypeLootRolled = "loot.rolled"

	// EventTypeSpinCompleted is published after any wheel spin
	EventTypeSpinCompleted = "spin.completed"

	// EventTypeGoldSpent is published when inventory is consumed for a purchase or paid spin
	EventTypeGoldSpent = "gold.spent"
)

// XP sources used in event payloads and metrics labels
const (
	XPSourceQuest = "quest"
	XPSourceStep  = "step"
	XPSourceEvent = "event"
	XPSourceSync  = "sync"
)
