package quest

import (
	"github.com/osse101/questgame/internal/domain"
	"github.com/osse101/questgame/internal/rng"
)

// Step generation bounds
const (
	MinSteps = 3
	MaxSteps = 6
)

// StepTemplates are the ordered step texts per category
var StepTemplates = map[domain.Category][]string{
	domain.CategoryBuild: {
		"Entender o problema e definir escopo",
		"Implementar a mudanca principal",
		"Testar localmente",
		"Revisar o codigo",
		"Commitar e documentar",
	},
	domain.CategoryShip: {
		"Definir o que entra nessa entrega",
		"Aplicar mudancas e testar",
		"Gerar build / pacote",
		"Enviar para o destino (loja, servidor, etc)",
		"Anotar o que mudou no log",
	},
	domain.CategoryReach: {
		"Definir a mensagem principal",
		"Criar o conteudo (texto, video, imagem)",
		"Revisar e ajustar",
		"Publicar / distribuir",
		"Anotar metricas iniciais",
	},
}

// GenerateSteps picks the first n templates of the category, with n drawn
// from a generator seeded by date+title so replays give the same steps.
func GenerateSteps(date string, category domain.Category, title string) []domain.Step {
	templates, ok := StepTemplates[category]
	if !ok {
		templates = StepTemplates[domain.CategoryBuild]
	}

	g := rng.ForDay(date, title)
	n := g.Randint(MinSteps, min(MaxSteps, len(templates)))

	steps := make([]domain.Step, n)
	for i := 0; i < n; i++ {
		steps[i] = domain.Step{Text: templates[i]}
	}
	return steps
}
