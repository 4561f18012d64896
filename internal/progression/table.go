package progression

import "github.com/osse101/questgame/internal/domain"

// ProgressPerLevel is the multiplier of level giving the progress needed to advance
const ProgressPerLevel = 3

// UpdateTable adds one progress point. Reaching level*3 resets progress to
// exactly zero and advances the level; excess is discarded.
func UpdateTable(table *domain.SkillTable) (leveledUp bool) {
	if table.Level < 1 {
		table.Level = 1
	}
	table.Progress++
	if table.Progress >= table.Level*ProgressPerLevel {
		table.Progress = 0
		table.Level++
		return true
	}
	return false
}

// Needed returns the progress required to advance table
func Needed(table domain.SkillTable) int {
	return table.Level * ProgressPerLevel
}
