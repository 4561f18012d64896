// Package quest ranks backlog candidates and builds the steps of the daily quest.
package quest

import "github.com/osse101/questgame/internal/domain"

// Scoring constants
const (
	// ImpactWeight multiplies the item impact
	ImpactWeight = 10

	// VarietyBonus is granted when the category is absent from the recent window
	VarietyBonus = 15

	// VarietyWindow is how many recent completions the variety bonus looks at
	VarietyWindow = 2

	// EntrepreneurBonus is granted to ship and reach items
	EntrepreneurBonus = 10

	// ForceWindow is the run of build completions that forces ship/reach work
	ForceWindow = 3

	// DefaultMaxEffortMinutes filters candidates when no config is present
	DefaultMaxEffortMinutes = 50
)

// ShouldForceShipReach reports whether the last three completions were all build
func ShouldForceShipReach(last []domain.Category) bool {
	if len(last) < ForceWindow {
		return false
	}
	for _, c := range last[len(last)-ForceWindow:] {
		if c != domain.CategoryBuild {
			return false
		}
	}
	return true
}

// Score returns impact*10 - effort + variety bonus + entrepreneur bonus
func Score(item domain.BacklogItem, last []domain.Category) int {
	c := domain.CategoryOrDefault(item.Category)
	score := item.ImpactOrDefault()*ImpactWeight - item.EffortOrDefault()

	if !contains(tail(last, VarietyWindow), c) {
		score += VarietyBonus
	}
	if c.IsEntrepreneurial() {
		score += EntrepreneurBonus
	}
	return score
}

// Candidates applies the effort filter, falling back to the whole backlog
// when it removes everything, then the force-entrepreneurship restriction.
func Candidates(items []domain.BacklogItem, maxEffort int, last []domain.Category) []domain.BacklogItem {
	candidates := make([]domain.BacklogItem, 0, len(items))
	for _, item := range items {
		if item.EffortOrDefault() <= maxEffort {
			candidates = append(candidates, item)
		}
	}
	if len(candidates) == 0 {
		candidates = append(candidates, items...)
	}

	if ShouldForceShipReach(last) {
		var forced []domain.BacklogItem
		for _, item := range candidates {
			if item.Category.IsEntrepreneurial() {
				forced = append(forced, item)
			}
		}
		if len(forced) > 0 {
			candidates = forced
		}
	}
	return candidates
}

// Select returns the highest scoring candidate. Ties keep the earliest item.
func Select(items []domain.BacklogItem, maxEffort int, last []domain.Category) (domain.BacklogItem, bool) {
	candidates := Candidates(items, maxEffort, last)
	if len(candidates) == 0 {
		return domain.BacklogItem{}, false
	}

	best := candidates[0]
	bestScore := Score(best, last)
	for _, item := range candidates[1:] {
		if s := Score(item, last); s > bestScore {
			best, bestScore = item, s
		}
	}
	return best, true
}

func tail(cs []domain.Category, n int) []domain.Category {
	if len(cs) <= n {
		return cs
	}
	return cs[len(cs)-n:]
}

func contains(cs []domain.Category, c domain.Category) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}
	return false
}

// FormatQuestID returns the daily quest identifier
func FormatQuestID(date string) string {
	return "Q-" + date + "-001"
}
