package loot

import "github.com/osse101/questgame/internal/rng"

// Wheel segments
const (
	SegmentGold10        = "gold_10"
	SegmentGold20        = "gold_20"
	SegmentNothing       = "nada"
	SegmentRewardCommon  = "reward_common"
	SegmentRewardMedium  = "reward_medium"
	SegmentRewardPremium = "reward_premium"
	SegmentJackpot       = "jackpot"
	SegmentWishlist      = "wishlist"
)

// WishlistChance is the premium wheel jackpot odds, in percent
const WishlistChance = 2

// Reward pools drawn from by the reward segments
var (
	CommonRewards  = []string{"silence", "rest", "meditar", "rezar"}
	MediumRewards  = []string{"youtube", "sleep"}
	PremiumRewards = []string{"anime", "series"}
	JackpotRewards = []string{"hytale"}
)

// Spin is the outcome of one wheel turn. Exactly one of Gold, RewardID or
// Wishlist is set unless the segment is SegmentNothing.
type Spin struct {
	Segment  string
	RewardID string
	Gold     int
	Wishlist bool
}

type segment struct {
	below float64
	spin  func(rng.Source) Spin
}

func gold(name string, amount int) func(rng.Source) Spin {
	return func(rng.Source) Spin { return Spin{Segment: name, Gold: amount} }
}

func reward(name string, pool []string) func(rng.Source) Spin {
	return func(src rng.Source) Spin {
		return Spin{Segment: name, RewardID: pick(src, pool)}
	}
}

// dailySegments is ordered by cumulative upper bound over [0,100)
var dailySegments = []segment{
	{45, gold(SegmentGold10, 10)},
	{70, gold(SegmentGold20, 20)},
	{80, func(rng.Source) Spin { return Spin{Segment: SegmentNothing} }},
	{90, reward(SegmentRewardCommon, CommonRewards)},
	{95, reward(SegmentRewardMedium, MediumRewards)},
	{99, reward(SegmentRewardPremium, PremiumRewards)},
}

// DailySpin turns the daily wheel
func DailySpin(src rng.Source) Spin {
	roll := src.Float64() * 100
	for _, s := range dailySegments {
		if roll < s.below {
			return s.spin(src)
		}
	}
	return reward(SegmentJackpot, JackpotRewards)(src)
}

// PremiumSpin turns the premium wheel: a small wishlist chance, otherwise 10 gold back
func PremiumSpin(src rng.Source) Spin {
	if src.Float64()*100 < WishlistChance {
		return Spin{Segment: SegmentWishlist, Wishlist: true}
	}
	return Spin{Segment: SegmentGold10, Gold: 10}
}

func pick(src rng.Source, pool []string) string {
	i := int(src.Float64() * float64(len(pool)))
	if i >= len(pool) {
		i = len(pool) - 1
	}
	return pool[i]
}
