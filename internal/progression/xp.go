package progression

import (
	"math"

	"github.com/osse101/questgame/internal/domain"
)

// XP formula constants
const (
	// BaseQuestXP is the XP of an impact-0 quest before weighting
	BaseQuestXP = 10

	// XPPerImpact is added per impact point
	XPPerImpact = 8

	// StreakBonusPerDay is the flat bonus per streak day
	StreakBonusPerDay = 2

	// MaxStreakBonusDays caps the streak contribution
	MaxStreakBonusDays = 14

	// FirstLevelThreshold is the XP needed to leave level 1
	FirstLevelThreshold = 100

	// ThresholdGrowth multiplies the threshold after every level
	ThresholdGrowth = 1.3
)

// CalcXP returns floor((10 + impact*8) * weight + min(streak,14)*2)
func CalcXP(impact int, category domain.Category, streak int, weights domain.CategoryWeights) int {
	base := float64(BaseQuestXP + impact*XPPerImpact)
	bonus := StreakBonusPerDay * cappedStreak(streak)
	return int(math.Floor(base*weights.For(category) + float64(bonus)))
}

// LevelForXP walks the geometric curve from level 1. The level is always
// recomputed from total XP and never stored independently.
func LevelForXP(xp int) int {
	level, _, _ := walkCurve(xp)
	return level
}

// XPToNextLevel returns the current level, XP into it and the threshold of the level
func XPToNextLevel(xp int) (level, into, threshold int) {
	return walkCurve(xp)
}

func walkCurve(xp int) (level, remaining, threshold int) {
	level = 1
	threshold = FirstLevelThreshold
	remaining = xp
	for remaining >= threshold {
		remaining -= threshold
		level++
		threshold = int(math.Floor(float64(threshold) * ThresholdGrowth))
	}
	return level, remaining, threshold
}

func cappedStreak(streak int) int {
	if streak < 0 {
		return 0
	}
	if streak > MaxStreakBonusDays {
		return MaxStreakBonusDays
	}
	return streak
}

// CappedStreak exposes the streak cap for other reward formulas
func CappedStreak(streak int) int {
	return cappedStreak(streak)
}
