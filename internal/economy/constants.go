// Package economy prices inventory items in gold and spends them.
package economy

import "github.com/osse101/questgame/internal/domain"

// ==================== Gold Values ====================

// GemGold is the gold value of one common gem, the unit grants are paid in
const GemGold = 10

// ItemValues is the gold value of every loot item. Unknown items are worth 0.
var ItemValues = map[string]int{
	domain.ItemBuildShard: 15,
	domain.ItemShipToken:  15,
	domain.ItemReachLeaf:  15,
	domain.ItemCommonGem:  GemGold,
	domain.ItemRareBadge:  50,
	domain.ItemEpicBadge:  100,
}

// ==================== Spin Costs ====================

const (
	PaidSpinCost    = 30
	PremiumSpinCost = 100
)

// ==================== Grants ====================

// DailyRewardGold is indexed by streak day, saturating on the last entry
var DailyRewardGold = []int{5, 10, 15, 20, 30, 40, 100}

// Celebration sizes
const (
	CelebrateSmall  = "small"
	CelebrateMedium = "medium"
	CelebrateBig    = "big"
	CelebrateEpic   = "epic"
)

// CelebrateGold maps a celebration size to its gold reward
var CelebrateGold = map[string]int{
	CelebrateSmall:  10,
	CelebrateMedium: 25,
	CelebrateBig:    50,
	CelebrateEpic:   100,
}

// MaxRevenueEntries bounds the revenue history
const MaxRevenueEntries = 100
