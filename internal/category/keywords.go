package category

import "github.com/osse101/questgame/internal/domain"

// Keywords per category. Portuguese and English synonyms, ASCII only; input
// text is accent-folded before matching.
var Keywords = map[domain.Category][]string{
	domain.CategoryBuild: {
		"bug", "fix", "corrigir", "feature", "refactor", "teste", "test",
		"implementar", "criar", "codar", "codigo", "api", "backend",
		"frontend", "componente", "modulo", "funcao", "classe",
	},
	domain.CategoryShip: {
		"release", "deploy", "loja", "store", "publish", "publicar",
		"update", "versao", "build", "enviar", "submeter", "upload",
		"producao", "production", "launch", "lancar",
	},
	domain.CategoryReach: {
		"blog", "video", "tiktok", "youtube", "twitter", "post", "anuncio",
		"marketing", "distribuicao", "audiencia", "newsletter", "email",
		"conteudo", "content", "social", "rede", "divulgar", "promover",
	},
}

// tiePriority resolves equal scores toward growth work
var tiePriority = []domain.Category{domain.CategoryReach, domain.CategoryShip, domain.CategoryBuild}
