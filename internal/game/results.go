package game

import (
	"github.com/osse101/questgame/internal/domain"
)

// TriageResult reports how many inbox lines became backlog items
type TriageResult struct {
	Added int                  `json:"added"`
	Total int                  `json:"total"`
	Items []domain.BacklogItem `json:"items"`
}

// BacklogEdit carries the optional fields of a backlog edit
type BacklogEdit struct {
	Title         *string
	Category      *domain.Category
	Impact        *int
	EffortMinutes *int
}

// StepResult is returned after a step toggle
type StepResult struct {
	Steps  []domain.Step `json:"steps"`
	StepXP int           `json:"step_xp"`
}

// CompleteResult is returned after finishing the active quest
type CompleteResult struct {
	QuestID   string          `json:"quest_id"`
	Title     string          `json:"title"`
	XP        int             `json:"xp"`
	Loot      []string        `json:"loot"`
	Category  domain.Category `json:"category"`
	Level     int             `json:"level"`
	Streak    int             `json:"streak"`
	LeveledUp bool            `json:"leveled_up"`
}

// EventResult is returned after recording an external achievement
type EventResult struct {
	ID       string          `json:"id"`
	Event    string          `json:"event"`
	Category domain.Category `json:"category"`
	XP       int             `json:"xp"`
	Loot     []string        `json:"loot"`
	Level    int             `json:"level"`
}

// SyncResult is returned after rewarding new commits
type SyncResult struct {
	Commits []string `json:"commits"`
	Tags    []string `json:"tags"`
	XP      int      `json:"xp"`
	Loot    []string `json:"loot"`
	Level   int      `json:"level"`
}

// DailyRewardResult is returned after a login reward
type DailyRewardResult struct {
	Gold int `json:"gold"`
}

// SpinResult is returned after any wheel spin
type SpinResult struct {
	Segment        string                 `json:"segment"`
	RewardID       *string                `json:"reward_id"`
	RewardName     string                 `json:"reward_name"`
	Gold           int                    `json:"gold"`
	PendingRewards []domain.PendingReward `json:"pending_rewards"`
}

// PendingRewardsView is the spin panel snapshot
type PendingRewardsView struct {
	Rewards       []domain.PendingReward `json:"rewards"`
	CanSpin       bool                   `json:"can_spin"`
	CanLevelSpin  bool                   `json:"can_level_spin"`
	NextLevelSpin int                    `json:"next_level_spin"`
}

// PurchaseResult is returned after a shop purchase
type PurchaseResult struct {
	RewardID   string `json:"reward_id"`
	RewardName string `json:"reward_name"`
	Cost       int    `json:"cost"`
}

// CelebrateResult is returned after logging a celebration
type CelebrateResult struct {
	Text string `json:"text"`
	Size string `json:"size"`
	Gold int    `json:"gold"`
}

// RevenueResult is returned after recording income
type RevenueResult struct {
	Entry domain.RevenueEntry `json:"entry"`
	Total float64             `json:"total"`
}

// Status is the combined snapshot rendered by the status command
type Status struct {
	State      domain.State `json:"state"`
	Today      domain.Today `json:"today"`
	RecentLoot []string     `json:"recent_loot"`
}

// RecentLootSize is how many inventory items Status reports
const RecentLootSize = 5
