package economy

import (
	"math"
	"sort"
)

// Value returns the gold value of item
func Value(item string) int {
	return ItemValues[item]
}

// Fortune sums the gold value of the inventory
func Fortune(inventory []string) int {
	total := 0
	for _, item := range inventory {
		total += Value(item)
	}
	return total
}

// SpendCheapestFirst removes items in ascending value order until cost is
// covered and returns the surviving items in their original order. Items of
// equal value are consumed in inventory order. Overshoot is not refunded.
// The second result is false when the fortune does not cover cost.
func SpendCheapestFirst(inventory []string, cost int) ([]string, bool) {
	if Fortune(inventory) < cost {
		return inventory, false
	}

	order := make([]int, len(inventory))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return Value(inventory[order[a]]) < Value(inventory[order[b]])
	})

	removed := make(map[int]bool)
	remaining := cost
	for _, idx := range order {
		if remaining <= 0 {
			break
		}
		removed[idx] = true
		remaining -= Value(inventory[idx])
	}

	kept := make([]string, 0, len(inventory)-len(removed))
	for i, item := range inventory {
		if !removed[i] {
			kept = append(kept, item)
		}
	}
	return kept, true
}

// GemsFor converts a gold grant into common gems, rounding up
func GemsFor(gold int) int {
	return int(math.Ceil(float64(gold) / GemGold))
}

// SpinGems converts a spin gold result into common gems, rounding half away from zero
func SpinGems(gold int) int {
	return int(math.Round(float64(gold) / GemGold))
}

// DailyReward returns the gold for a login on the given streak day
func DailyReward(streak int) int {
	day := max(streak, 1) - 1
	day = min(day, len(DailyRewardGold)-1)
	return DailyRewardGold[day]
}

// Celebration normalizes size, defaulting unknown sizes to small, and returns its gold
func Celebration(size string) (string, int) {
	if g, ok := CelebrateGold[size]; ok {
		return size, g
	}
	return CelebrateSmall, CelebrateGold[CelebrateSmall]
}
