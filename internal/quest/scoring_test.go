package quest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/questgame/internal/domain"
)

func item(id string, c domain.Category, impact, effort int) domain.BacklogItem {
	return domain.BacklogItem{ID: id, Title: id, Category: c, Impact: impact, EffortMinutes: effort}
}

func TestShouldForceShipReach(t *testing.T) {
	b, s := domain.CategoryBuild, domain.CategoryShip

	assert.False(t, ShouldForceShipReach(nil))
	assert.False(t, ShouldForceShipReach([]domain.Category{b, b}))
	assert.True(t, ShouldForceShipReach([]domain.Category{b, b, b}))
	assert.True(t, ShouldForceShipReach([]domain.Category{s, b, b, b}))
	assert.False(t, ShouldForceShipReach([]domain.Category{b, b, b, s}))
}

func TestScore(t *testing.T) {
	t.Run("build with recent build gets no bonus", func(t *testing.T) {
		last := []domain.Category{domain.CategoryBuild}
		assert.Equal(t, 0, Score(item("a", domain.CategoryBuild, 3, 30), last))
	})

	t.Run("ship absent from recent window gets both bonuses", func(t *testing.T) {
		last := []domain.Category{domain.CategoryShip, domain.CategoryBuild, domain.CategoryBuild}
		assert.Equal(t, 30-30+15+10, Score(item("a", domain.CategoryShip, 3, 30), last))
	})

	t.Run("zero impact and effort fall back to defaults", func(t *testing.T) {
		got := Score(domain.BacklogItem{Category: domain.CategoryBuild}, nil)
		assert.Equal(t, 3*10-30+15, got)
	})
}

func TestSelect(t *testing.T) {
	t.Run("empty backlog", func(t *testing.T) {
		_, ok := Select(nil, 50, nil)
		assert.False(t, ok)
	})

	t.Run("golden rule restricts to ship and reach", func(t *testing.T) {
		items := []domain.BacklogItem{
			item("B-0001", domain.CategoryBuild, 5, 20),
			item("B-0002", domain.CategoryReach, 2, 40),
		}
		last := []domain.Category{domain.CategoryBuild, domain.CategoryBuild, domain.CategoryBuild}

		got, ok := Select(items, 50, last)
		require.True(t, ok)
		assert.Equal(t, "B-0002", got.ID)
	})

	t.Run("effort filter falls back to whole backlog", func(t *testing.T) {
		items := []domain.BacklogItem{
			item("B-0001", domain.CategoryBuild, 3, 90),
			item("B-0002", domain.CategoryBuild, 4, 120),
		}

		got, ok := Select(items, 50, nil)
		require.True(t, ok)
		assert.Equal(t, "B-0001", got.ID)
	})

	t.Run("effort filter excludes long items", func(t *testing.T) {
		items := []domain.BacklogItem{
			item("B-0001", domain.CategoryBuild, 5, 90),
			item("B-0002", domain.CategoryBuild, 2, 20),
		}

		got, ok := Select(items, 50, nil)
		require.True(t, ok)
		assert.Equal(t, "B-0002", got.ID)
	})

	t.Run("ties keep the earliest item", func(t *testing.T) {
		items := []domain.BacklogItem{
			item("B-0001", domain.CategoryShip, 3, 30),
			item("B-0002", domain.CategoryShip, 3, 30),
		}

		got, ok := Select(items, 50, nil)
		require.True(t, ok)
		assert.Equal(t, "B-0001", got.ID)
	})
}

func TestFormatQuestID(t *testing.T) {
	assert.Equal(t, "Q-2026-01-05-001", FormatQuestID("2026-01-05"))
}
