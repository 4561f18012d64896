package loot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/questgame/internal/domain"
	"github.com/osse101/questgame/internal/rng"
)

func TestTier(t *testing.T) {
	r := domain.DefaultRarity()

	tests := []struct {
		name   string
		roll   float64
		streak int
		want   string
	}{
		{"below epic threshold", 0.019, 0, domain.ItemEpicBadge},
		{"at epic threshold", 0.02, 0, domain.ItemRareBadge},
		{"below rare threshold", 0.199, 0, domain.ItemRareBadge},
		{"past rare threshold", 0.2001, 0, domain.ItemCommonGem},
		{"streak widens epic", 0.05, 10, domain.ItemEpicBadge},
		{"streak bonus is capped", 0.095, 30, domain.ItemRareBadge},
		{"streak widens rare band", 0.29, 14, domain.ItemRareBadge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tier(tt.roll, tt.streak, r))
		})
	}
}

func TestRoll(t *testing.T) {
	t.Run("material first and deterministic", func(t *testing.T) {
		a := Roll("2026-01-05", domain.CategoryShip, 3, "Q-2026-01-05-001", domain.DefaultRarity())
		b := Roll("2026-01-05", domain.CategoryShip, 3, "Q-2026-01-05-001", domain.DefaultRarity())

		require.Len(t, a, 2)
		assert.Equal(t, domain.ItemShipToken, a[0])
		assert.Equal(t, a, b)
	})

	t.Run("forced roll", func(t *testing.T) {
		got := RollWith(&rng.Fixed{Values: []float64{0.001}}, domain.CategoryReach, 0, domain.DefaultRarity())
		assert.Equal(t, []string{domain.ItemReachLeaf, domain.ItemEpicBadge}, got)
	})
}
