package quest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/questgame/internal/domain"
)

func TestGenerateSteps(t *testing.T) {
	t.Run("deterministic for date and title", func(t *testing.T) {
		a := GenerateSteps("2026-01-05", domain.CategoryShip, "Publicar release")
		b := GenerateSteps("2026-01-05", domain.CategoryShip, "Publicar release")
		assert.Equal(t, a, b)
	})

	t.Run("prefix of the category templates", func(t *testing.T) {
		for _, c := range domain.Categories {
			steps := GenerateSteps("2026-01-05", c, "titulo "+string(c))
			assert.GreaterOrEqual(t, len(steps), MinSteps)
			assert.LessOrEqual(t, len(steps), len(StepTemplates[c]))
			for i, s := range steps {
				assert.Equal(t, StepTemplates[c][i], s.Text)
				assert.False(t, s.Done)
			}
		}
	})

	t.Run("unknown category uses build templates", func(t *testing.T) {
		steps := GenerateSteps("2026-01-05", domain.Category("x"), "t")
		assert.Equal(t, StepTemplates[domain.CategoryBuild][0], steps[0].Text)
	})
}
