package domain

// MaxInventory is the number of most recent loot items kept
const MaxInventory = 50

// MaxRecentCategories bounds the recent-category history
const MaxRecentCategories = 10

// StateVersion is the schema version written to state.json
const StateVersion = 1

// Player is the progression summary of the single user
type Player struct {
	Name         string  `json:"name"`
	XP           int     `json:"xp"`
	Level        int     `json:"level"`
	Streak       int     `json:"streak"`
	LastDoneDate *string `json:"last_done_date"`
}

// SkillTable tracks per-category advancement. Progress stays below Level*3.
type SkillTable struct {
	Level    int `json:"level"`
	Progress int `json:"progress"`
}

// Tables holds one skill table per category
type Tables struct {
	Build SkillTable `json:"build"`
	Ship  SkillTable `json:"ship"`
	Reach SkillTable `json:"reach"`
}

// Get returns the table for a category, falling back to build
func (t *Tables) Get(c Category) *SkillTable {
	switch c {
	case CategoryShip:
		return &t.Ship
	case CategoryReach:
		return &t.Reach
	default:
		return &t.Build
	}
}

// Stats holds completion bookkeeping used by quest selection
type Stats struct {
	LastCategories []Category `json:"last_categories"`
	TotalDone      int        `json:"total_done"`
}

// GitCursor remembers the newest commit already rewarded by sync
type GitCursor struct {
	Enabled      bool    `json:"enabled"`
	LastSeenHash *string `json:"last_seen_hash"`
}

// WeeklyMission is a single goal in the current week
type WeeklyMission struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Target     int    `json:"target"`
	Progress   int    `json:"progress"`
	RewardGold int    `json:"reward_gold"`
	Completed  bool   `json:"completed"`
}

// WeeklyState is the mission set for the week starting on WeekStart (a Monday)
type WeeklyState struct {
	WeekStart string          `json:"week_start"`
	Missions  []WeeklyMission `json:"missions"`
}

// PendingReward is a spin prize waiting to be used before it expires
type PendingReward struct {
	ID         string `json:"id"`
	RewardID   string `json:"reward_id"`
	RewardName string `json:"reward_name"`
	RewardIcon string `json:"reward_icon"`
	Expires    string `json:"expires"`
}

// RevenueEntry is one recorded income event
type RevenueEntry struct {
	Amount float64 `json:"amount"`
	Note   string  `json:"note"`
	Date   string  `json:"date"`
}

// Revenue keeps a running total independent of how many entries are retained
type Revenue struct {
	Total   float64        `json:"total"`
	Entries []RevenueEntry `json:"entries"`
}

// State is the aggregate persisted in state.json
type State struct {
	Version        int             `json:"version"`
	Player         Player          `json:"player"`
	Tables         Tables          `json:"tables"`
	Inventory      []string        `json:"inventory"`
	Stats          Stats           `json:"stats"`
	Git            GitCursor       `json:"git"`
	Weekly         *WeeklyState    `json:"weekly,omitempty"`
	DailySpinDate  string          `json:"daily_spin_date,omitempty"`
	LastSpinLevel  *int            `json:"last_spin_level,omitempty"`
	PendingRewards []PendingReward `json:"pending_rewards,omitempty"`
	Revenue        *Revenue        `json:"revenue,omitempty"`
}

// DefaultState returns the state used when state.json is missing or unreadable
func DefaultState() State {
	return State{
		Version: StateVersion,
		Player: Player{
			Name:  "player",
			Level: 1,
		},
		Tables: Tables{
			Build: SkillTable{Level: 1},
			Ship:  SkillTable{Level: 1},
			Reach: SkillTable{Level: 1},
		},
		Inventory: []string{},
		Stats:     Stats{LastCategories: []Category{}},
		Git:       GitCursor{Enabled: true},
	}
}

// AddItems appends loot and evicts the oldest entries beyond MaxInventory
func (s *State) AddItems(items ...string) {
	s.Inventory = append(s.Inventory, items...)
	if len(s.Inventory) > MaxInventory {
		s.Inventory = append([]string(nil), s.Inventory[len(s.Inventory)-MaxInventory:]...)
	}
}

// AddGems appends n common gems, subject to the inventory cap
func (s *State) AddGems(n int) {
	gems := make([]string, n)
	for i := range gems {
		gems[i] = ItemCommonGem
	}
	s.AddItems(gems...)
}

// RecordCategory appends a completed category to the bounded history
func (s *State) RecordCategory(c Category) {
	s.Stats.LastCategories = append(s.Stats.LastCategories, c)
	if n := len(s.Stats.LastCategories); n > MaxRecentCategories {
		s.Stats.LastCategories = append([]Category(nil), s.Stats.LastCategories[n-MaxRecentCategories:]...)
	}
}

// ActivePendingRewards returns the pending rewards that have not expired on date
func (s *State) ActivePendingRewards(date string) []PendingReward {
	out := make([]PendingReward, 0, len(s.PendingRewards))
	for _, r := range s.PendingRewards {
		if r.Expires >= date {
			out = append(out, r)
		}
	}
	return out
}

// Normalize fills collections a hand-edited or older state.json may omit
func (s *State) Normalize() {
	if s.Inventory == nil {
		s.Inventory = []string{}
	}
	if s.Stats.LastCategories == nil {
		s.Stats.LastCategories = []Category{}
	}
	for _, c := range Categories {
		if t := s.Tables.Get(c); t.Level < 1 {
			t.Level = 1
		}
	}
	if s.Player.Level < 1 {
		s.Player.Level = 1
	}
}
