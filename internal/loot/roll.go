// Package loot rolls quest drops and spins the reward wheels.
package loot

import (
	"github.com/osse101/questgame/internal/domain"
	"github.com/osse101/questgame/internal/progression"
	"github.com/osse101/questgame/internal/rng"
)

// StreakBonusPerDay shifts both tier thresholds per streak day, capped with the XP streak cap
const StreakBonusPerDay = 0.005

// Roll returns the category material plus one tier item. The draw is
// seeded by date+contextID so the same quest on the same day always drops
// the same items.
func Roll(date string, category domain.Category, streak int, contextID string, rarity domain.Rarity) []string {
	return RollWith(rng.ForDay(date, contextID), category, streak, rarity)
}

// RollWith performs the same roll against an arbitrary source
func RollWith(src rng.Source, category domain.Category, streak int, rarity domain.Rarity) []string {
	return []string{domain.MaterialFor(category), Tier(src.Float64(), streak, rarity)}
}

// Tier maps a roll in [0,1) to epic, rare or common. The streak bonus is
// added to the epic threshold and again to the rare band.
func Tier(roll float64, streak int, rarity domain.Rarity) string {
	bonus := float64(progression.CappedStreak(streak)) * StreakBonusPerDay
	epic := rarity.Epic + bonus
	rare := epic + rarity.Rare + bonus

	switch {
	case roll < epic:
		return domain.ItemEpicBadge
	case roll < rare:
		return domain.ItemRareBadge
	default:
		return domain.ItemCommonGem
	}
}
