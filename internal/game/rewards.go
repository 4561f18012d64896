package game

import (
	"context"
	"fmt"

	"github.com/osse101/questgame/internal/domain"
	"github.com/osse101/questgame/internal/economy"
	"github.com/osse101/questgame/internal/event"
	"github.com/osse101/questgame/internal/logger"
	"github.com/osse101/questgame/internal/loot"
)

// Spin sources
const (
	SpinDaily   = "daily"
	SpinLevelUp = "levelup"
	SpinPaid    = "paid"
	SpinPremium = "premium"
)

// LevelSpinInterval is the level spacing of level-up spins
const LevelSpinInterval = 3

// NoPrizeText is shown when the wheel lands on nothing
const NoPrizeText = "Tente amanha!"

// Gold spend reasons
const (
	SpendShop = "shop"
	SpendSpin = "spin"
)

// NextLevelSpin returns the level at which the next level-up spin unlocks
func NextLevelSpin(lastSpinLevel *int) int {
	if lastSpinLevel == nil || *lastSpinLevel == 0 {
		return LevelSpinInterval
	}
	l := *lastSpinLevel
	return (l + LevelSpinInterval) / LevelSpinInterval * LevelSpinInterval
}

// ClaimDailyReward pays the login reward for the given streak day in gems
func (s *service) ClaimDailyReward(ctx context.Context, streak int) (*DailyRewardResult, error) {
	gold := economy.DailyReward(streak)

	st := s.repo.State(ctx)
	st.AddGems(economy.GemsFor(gold))
	if err := s.repo.SaveState(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}
	if err := s.appendLog(ctx, domain.LogDailyReward, "streak", streak, "gold", gold); err != nil {
		return nil, fmt.Errorf("failed to append log: %w", err)
	}
	return &DailyRewardResult{Gold: gold}, nil
}

// Spin turns a wheel. daily is once per date, levelup once per three levels,
// paid and premium cost gold.
func (s *service) Spin(ctx context.Context, source string) (*SpinResult, error) {
	log := logger.FromContext(ctx)
	if source == "" {
		source = SpinDaily
	}

	st := s.repo.State(ctx)
	date := s.today()
	var events []event.Event

	switch source {
	case SpinDaily:
		if st.DailySpinDate == date {
			return nil, domain.ErrAlreadySpun
		}
		st.DailySpinDate = date
	case SpinLevelUp:
		next := NextLevelSpin(st.LastSpinLevel)
		if st.Player.Level < next {
			return nil, &domain.LevelSpinLockedError{NextLevel: next}
		}
		level := st.Player.Level
		st.LastSpinLevel = &level
	case SpinPaid, SpinPremium:
		cost := economy.PaidSpinCost
		if source == SpinPremium {
			cost = economy.PremiumSpinCost
		}
		kept, err := economy.Buy(st.Inventory, cost)
		if err != nil {
			return nil, err
		}
		st.Inventory = kept
		events = append(events, event.NewGoldSpentEvent(SpendSpin, cost))
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSpinSource, source)
	}

	var spin loot.Spin
	if source == SpinPremium {
		spin = loot.PremiumSpin(s.spin)
	} else {
		spin = loot.DailySpin(s.spin)
	}

	st.PendingRewards = st.ActivePendingRewards(date)

	text := NoPrizeText
	switch {
	case spin.Wishlist:
		st.PendingRewards = append(st.PendingRewards, domain.PendingReward{
			ID:         fmt.Sprintf("wishlist-%d", s.millis()),
			RewardID:   economy.WishlistRewardID,
			RewardName: economy.WishlistRewardName,
			RewardIcon: economy.WishlistRewardIcon,
			Expires:    date,
		})
		text = "COMPRA GRATIS!"
	case spin.Gold > 0:
		st.AddGems(economy.SpinGems(spin.Gold))
		text = fmt.Sprintf("+%dg", spin.Gold)
	case spin.RewardID != "":
		if reward, err := economy.LookupReward(spin.RewardID); err == nil {
			st.PendingRewards = append(st.PendingRewards, domain.PendingReward{
				ID:         fmt.Sprintf("spin-%d", s.millis()),
				RewardID:   spin.RewardID,
				RewardName: reward.Name,
				RewardIcon: economy.RewardIcons[spin.RewardID],
				Expires:    date,
			})
			text = reward.Name
		}
	}

	if err := s.repo.SaveState(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}

	var rewardID *string
	if spin.RewardID != "" {
		id := spin.RewardID
		rewardID = &id
	}
	if err := s.appendLog(ctx, domain.LogDailySpin,
		"segment", spin.Segment,
		"reward_id", rewardID,
		"gold", spin.Gold,
		"source", source,
	); err != nil {
		return nil, fmt.Errorf("failed to append log: %w", err)
	}

	log.Info("Wheel spun", "source", source, "segment", spin.Segment)
	s.publish(ctx, append(events, event.NewSpinCompletedEvent(source, spin.Segment, spin.RewardID, spin.Gold))...)

	return &SpinResult{
		Segment:        spin.Segment,
		RewardID:       rewardID,
		RewardName:     text,
		Gold:           spin.Gold,
		PendingRewards: st.PendingRewards,
	}, nil
}

// PendingRewards returns unexpired spin prizes and spin availability
func (s *service) PendingRewards(ctx context.Context) (*PendingRewardsView, error) {
	st := s.repo.State(ctx)
	date := s.today()
	next := NextLevelSpin(st.LastSpinLevel)
	return &PendingRewardsView{
		Rewards:       st.ActivePendingRewards(date),
		CanSpin:       st.DailySpinDate != date,
		CanLevelSpin:  st.Player.Level >= next,
		NextLevelSpin: next,
	}, nil
}

// UseReward consumes an unexpired pending reward
func (s *service) UseReward(ctx context.Context, id string) (*domain.PendingReward, error) {
	st := s.repo.State(ctx)
	date := s.today()

	idx := -1
	for i, r := range st.PendingRewards {
		if r.ID == id && r.Expires >= date {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrPendingRewardNotFound, id)
	}

	reward := st.PendingRewards[idx]
	st.PendingRewards = append(st.PendingRewards[:idx:idx], st.PendingRewards[idx+1:]...)
	if err := s.repo.SaveState(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}
	if err := s.appendLog(ctx, domain.LogUseReward,
		"reward_id", reward.RewardID,
		"reward_name", reward.RewardName,
	); err != nil {
		return nil, fmt.Errorf("failed to append log: %w", err)
	}
	return &reward, nil
}

// BuyReward spends the reward cost from inventory, cheapest items first
func (s *service) BuyReward(ctx context.Context, rewardID string) (*PurchaseResult, error) {
	reward, err := economy.LookupReward(rewardID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, rewardID)
	}

	st := s.repo.State(ctx)
	kept, err := economy.Buy(st.Inventory, reward.Cost)
	if err != nil {
		return nil, err
	}
	st.Inventory = kept

	if err := s.repo.SaveState(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}
	if err := s.appendLog(ctx, domain.LogShop,
		"reward_id", rewardID,
		"reward_name", reward.Name,
		"cost", reward.Cost,
	); err != nil {
		return nil, fmt.Errorf("failed to append log: %w", err)
	}

	logger.FromContext(ctx).Info("Reward purchased", "reward_id", rewardID, "cost", reward.Cost)
	s.publish(ctx, event.NewGoldSpentEvent(SpendShop, reward.Cost))
	return &PurchaseResult{RewardID: rewardID, RewardName: reward.Name, Cost: reward.Cost}, nil
}
