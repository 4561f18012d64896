package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/questgame/internal/domain"
	"github.com/osse101/questgame/internal/economy"
	"github.com/osse101/questgame/internal/event"
	"github.com/osse101/questgame/internal/loot"
	"github.com/osse101/questgame/internal/rng"
)

func gems(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = domain.ItemCommonGem
	}
	return out
}

func TestSpin_Daily(t *testing.T) {
	env := newTestEnv(t, WithSpinSource(&rng.Fixed{Values: []float64{0.1}}))

	res, err := env.svc.Spin(env.ctx, "")
	require.NoError(t, err)
	assert.Equal(t, loot.SegmentGold10, res.Segment)
	assert.Nil(t, res.RewardID)
	assert.Equal(t, "+10g", res.RewardName)
	assert.Equal(t, 10, res.Gold)

	st := env.store.State(env.ctx)
	assert.Equal(t, "2024-01-02", st.DailySpinDate)
	assert.Equal(t, gems(1), st.Inventory)

	_, err = env.svc.Spin(env.ctx, SpinDaily)
	assert.ErrorIs(t, err, domain.ErrAlreadySpun)

	entries, err := env.store.ReadLog(env.ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.LogDailySpin, entries[0].Type)
	source, _ := entries[0].Get("source")
	assert.Equal(t, SpinDaily, source)
	rewardID, ok := entries[0].Get("reward_id")
	assert.True(t, ok)
	assert.Nil(t, rewardID)
	assert.Contains(t, env.pub.types(), event.SpinCompleted)
}

func TestSpin_RewardBecomesPending(t *testing.T) {
	env := newTestEnv(t, WithSpinSource(&rng.Fixed{Values: []float64{0.85, 0.0}}))
	env.updateState(t, func(st *domain.State) {
		st.PendingRewards = []domain.PendingReward{{ID: "spin-old", RewardID: "rest", Expires: "2024-01-01"}}
	})

	res, err := env.svc.Spin(env.ctx, SpinDaily)
	require.NoError(t, err)
	assert.Equal(t, loot.SegmentRewardCommon, res.Segment)
	require.NotNil(t, res.RewardID)
	assert.Equal(t, "silence", *res.RewardID)
	assert.Equal(t, economy.Shop["silence"].Name, res.RewardName)

	require.Len(t, res.PendingRewards, 1)
	p := res.PendingRewards[0]
	assert.Equal(t, "spin-1704196800000", p.ID)
	assert.Equal(t, "2024-01-02", p.Expires)
	assert.Equal(t, economy.RewardIcons["silence"], p.RewardIcon)
}

func TestSpin_Nothing(t *testing.T) {
	env := newTestEnv(t, WithSpinSource(&rng.Fixed{Values: []float64{0.75}}))

	res, err := env.svc.Spin(env.ctx, SpinDaily)
	require.NoError(t, err)
	assert.Equal(t, loot.SegmentNothing, res.Segment)
	assert.Equal(t, NoPrizeText, res.RewardName)
	assert.Empty(t, env.store.State(env.ctx).Inventory)
}

func TestSpin_LevelUp(t *testing.T) {
	env := newTestEnv(t, WithSpinSource(&rng.Fixed{Values: []float64{0.5}}))

	_, err := env.svc.Spin(env.ctx, SpinLevelUp)
	var locked *domain.LevelSpinLockedError
	require.ErrorAs(t, err, &locked)
	assert.Equal(t, 3, locked.NextLevel)
	assert.EqualError(t, err, "Proximo spin de nivel no level 3")

	env.updateState(t, func(st *domain.State) { st.Player.Level = 4 })
	_, err = env.svc.Spin(env.ctx, SpinLevelUp)
	require.NoError(t, err)

	st := env.store.State(env.ctx)
	require.NotNil(t, st.LastSpinLevel)
	assert.Equal(t, 4, *st.LastSpinLevel)
	assert.Empty(t, st.DailySpinDate)

	_, err = env.svc.Spin(env.ctx, SpinLevelUp)
	require.ErrorAs(t, err, &locked)
	assert.Equal(t, 6, locked.NextLevel)
}

func TestSpin_Paid(t *testing.T) {
	t.Run("insufficient gold", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.svc.Spin(env.ctx, SpinPaid)

		var poor *domain.InsufficientGoldError
		require.ErrorAs(t, err, &poor)
		assert.Equal(t, 0, poor.Fortune)
		assert.Equal(t, economy.PaidSpinCost, poor.Cost)
		assert.Empty(t, env.logTypes(t))
	})

	t.Run("paid spin ignores the daily limit", func(t *testing.T) {
		env := newTestEnv(t, WithSpinSource(&rng.Fixed{Values: []float64{0.6}}))
		env.updateState(t, func(st *domain.State) {
			st.DailySpinDate = "2024-01-02"
			st.Inventory = append(gems(3), domain.ItemRareBadge)
		})

		res, err := env.svc.Spin(env.ctx, SpinPaid)
		require.NoError(t, err)
		assert.Equal(t, loot.SegmentGold20, res.Segment)
		assert.Equal(t, append([]string{domain.ItemRareBadge}, gems(2)...), env.store.State(env.ctx).Inventory)
		assert.Contains(t, env.pub.types(), event.GoldSpent)
	})

	t.Run("premium wishlist", func(t *testing.T) {
		env := newTestEnv(t, WithSpinSource(&rng.Fixed{Values: []float64{0.01}}))
		env.updateState(t, func(st *domain.State) { st.Inventory = gems(10) })

		res, err := env.svc.Spin(env.ctx, SpinPremium)
		require.NoError(t, err)
		assert.Equal(t, loot.SegmentWishlist, res.Segment)
		assert.Equal(t, "COMPRA GRATIS!", res.RewardName)
		require.Len(t, res.PendingRewards, 1)
		assert.Equal(t, economy.WishlistRewardID, res.PendingRewards[0].RewardID)
		assert.Empty(t, env.store.State(env.ctx).Inventory)
	})

	t.Run("unknown source", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.svc.Spin(env.ctx, "lucky")
		assert.ErrorIs(t, err, domain.ErrInvalidSpinSource)
	})
}

func TestPendingRewards(t *testing.T) {
	env := newTestEnv(t)
	last := 3
	env.updateState(t, func(st *domain.State) {
		st.Player.Level = 6
		st.LastSpinLevel = &last
		st.DailySpinDate = "2024-01-02"
		st.PendingRewards = []domain.PendingReward{
			{ID: "spin-1", RewardID: "rest", Expires: "2024-01-02"},
			{ID: "spin-0", RewardID: "sleep", Expires: "2024-01-01"},
		}
	})

	view, err := env.svc.PendingRewards(env.ctx)
	require.NoError(t, err)
	assert.False(t, view.CanSpin)
	assert.True(t, view.CanLevelSpin)
	assert.Equal(t, 6, view.NextLevelSpin)
	require.Len(t, view.Rewards, 1)
	assert.Equal(t, "spin-1", view.Rewards[0].ID)

	_, err = env.svc.UseReward(env.ctx, "spin-0")
	assert.ErrorIs(t, err, domain.ErrPendingRewardNotFound)

	used, err := env.svc.UseReward(env.ctx, "spin-1")
	require.NoError(t, err)
	assert.Equal(t, "rest", used.RewardID)
	assert.Len(t, env.store.State(env.ctx).PendingRewards, 1)

	_, err = env.svc.UseReward(env.ctx, "spin-1")
	assert.ErrorIs(t, err, domain.ErrPendingRewardNotFound)
	assert.Equal(t, []domain.LogType{domain.LogUseReward}, env.logTypes(t))
}

func TestNextLevelSpin(t *testing.T) {
	lvl := func(n int) *int { return &n }
	assert.Equal(t, 3, NextLevelSpin(nil))
	assert.Equal(t, 3, NextLevelSpin(lvl(0)))
	assert.Equal(t, 3, NextLevelSpin(lvl(2)))
	assert.Equal(t, 6, NextLevelSpin(lvl(3)))
	assert.Equal(t, 6, NextLevelSpin(lvl(4)))
	assert.Equal(t, 9, NextLevelSpin(lvl(8)))
}

func TestBuyReward(t *testing.T) {
	env := newTestEnv(t)
	env.updateState(t, func(st *domain.State) {
		st.Inventory = []string{domain.ItemCommonGem, domain.ItemCommonGem, domain.ItemRareBadge}
	})

	res, err := env.svc.BuyReward(env.ctx, "rest")
	require.NoError(t, err)
	assert.Equal(t, 15, res.Cost)
	assert.Equal(t, []string{domain.ItemRareBadge}, env.store.State(env.ctx).Inventory)

	_, err = env.svc.BuyReward(env.ctx, "hytale")
	var poor *domain.InsufficientGoldError
	require.ErrorAs(t, err, &poor)
	assert.Equal(t, 50, poor.Fortune)
	assert.Equal(t, []string{domain.ItemRareBadge}, env.store.State(env.ctx).Inventory)

	_, err = env.svc.BuyReward(env.ctx, "yacht")
	assert.ErrorIs(t, err, domain.ErrRewardNotFound)
	assert.Equal(t, []domain.LogType{domain.LogShop}, env.logTypes(t))
}

func TestClaimDailyReward(t *testing.T) {
	tests := []struct {
		streak int
		gold   int
		gems   int
	}{
		{0, 5, 1},
		{1, 5, 1},
		{3, 15, 2},
		{7, 100, 10},
		{30, 100, 10},
	}
	for _, tc := range tests {
		env := newTestEnv(t)
		res, err := env.svc.ClaimDailyReward(env.ctx, tc.streak)
		require.NoError(t, err)
		assert.Equal(t, tc.gold, res.Gold, "streak %d", tc.streak)
		assert.Len(t, env.store.State(env.ctx).Inventory, tc.gems, "streak %d", tc.streak)
	}
}

func TestCelebrate(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Celebrate(env.ctx, "  ", "big")
	assert.ErrorIs(t, err, domain.ErrEmptyText)

	res, err := env.svc.Celebrate(env.ctx, " first client ", "huge")
	require.NoError(t, err)
	assert.Equal(t, "first client", res.Text)
	assert.Equal(t, economy.CelebrateSmall, res.Size)
	assert.Equal(t, 10, res.Gold)

	_, err = env.svc.Celebrate(env.ctx, "launch", economy.CelebrateEpic)
	require.NoError(t, err)
	assert.Len(t, env.store.State(env.ctx).Inventory, 11)

	_, err = env.svc.ClaimDailyReward(env.ctx, 1)
	require.NoError(t, err)

	celebrations, err := env.svc.Celebrations(env.ctx)
	require.NoError(t, err)
	require.Len(t, celebrations, 2)
	text, _ := celebrations[0].Get("text")
	assert.Equal(t, "launch", text)
}

func TestRevenue(t *testing.T) {
	env := newTestEnv(t)

	empty, err := env.svc.Revenue(env.ctx)
	require.NoError(t, err)
	assert.Zero(t, empty.Total)
	assert.NotNil(t, empty.Entries)

	_, err = env.svc.AddRevenue(env.ctx, 0, "")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = env.svc.AddRevenue(env.ctx, -5, "")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = env.svc.AddRevenue(env.ctx, 12.5, " gumroad ")
	require.NoError(t, err)
	res, err := env.svc.AddRevenue(env.ctx, 7.5, "")
	require.NoError(t, err)
	assert.Equal(t, 20.0, res.Total)
	assert.Equal(t, "2024-01-02", res.Entry.Date)

	rev, err := env.svc.Revenue(env.ctx)
	require.NoError(t, err)
	require.Len(t, rev.Entries, 2)
	assert.Equal(t, "gumroad", rev.Entries[0].Note)
}

func TestRevenue_EntriesCapped(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < economy.MaxRevenueEntries+5; i++ {
		_, err := env.svc.AddRevenue(env.ctx, 1, "")
		require.NoError(t, err)
	}
	rev, err := env.svc.Revenue(env.ctx)
	require.NoError(t, err)
	assert.Len(t, rev.Entries, economy.MaxRevenueEntries)
	assert.Equal(t, float64(economy.MaxRevenueEntries+5), rev.Total)
}

func TestWeekly(t *testing.T) {
	env := newTestEnv(t)

	w, err := env.svc.Weekly(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", w.WeekStart)
	require.Len(t, w.Missions, 3)
	assert.NotNil(t, env.store.State(env.ctx).Weekly)

	env.now = fixedDay(2024, time.January, 7)
	w, err = env.svc.Weekly(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", w.WeekStart)

	env.now = fixedDay(2024, time.January, 8)
	w, err = env.svc.Weekly(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-08", w.WeekStart)
}

func TestWeekStart(t *testing.T) {
	tests := map[string]string{
		"2024-01-01": "2024-01-01",
		"2024-01-03": "2024-01-01",
		"2024-01-07": "2024-01-01",
		"2024-01-08": "2024-01-08",
	}
	for day, want := range tests {
		d, err := time.Parse(DateLayout, day)
		require.NoError(t, err)
		assert.Equal(t, want, WeekStart(d), day)
	}
}

func TestLog(t *testing.T) {
	env := newTestEnv(t)
	for _, size := range []string{"small", "medium", "big"} {
		_, err := env.svc.Celebrate(env.ctx, size, size)
		require.NoError(t, err)
	}

	entries, err := env.svc.Log(env.ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	size, _ := entries[0].Get("size")
	assert.Equal(t, "big", size)
}
