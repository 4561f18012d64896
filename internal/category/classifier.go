// Package category assigns free text to build, ship or reach using a fixed
// keyword heuristic.
package category

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/osse101/questgame/internal/domain"
)

// Scores counts matched keywords per category
type Scores map[domain.Category]int

// Detect returns the best scoring category. No match yields build; ties
// are resolved reach, then ship, then build.
func Detect(text string) domain.Category {
	scores := Score(text)

	best := 0
	for _, s := range scores {
		if s > best {
			best = s
		}
	}
	if best == 0 {
		return domain.CategoryBuild
	}

	for _, c := range tiePriority {
		if scores[c] == best {
			return c
		}
	}
	return domain.CategoryBuild
}

// Score counts, per category, how many keywords appear as substrings of text
func Score(text string) Scores {
	folded := Fold(text)
	scores := make(Scores, len(Keywords))
	for c, keywords := range Keywords {
		for _, kw := range keywords {
			if strings.Contains(folded, kw) {
				scores[c]++
			}
		}
	}
	return scores
}

// Fold lowercases text and strips combining marks ("Produção" -> "producao")
func Fold(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		folded = text
	}
	return strings.ToLower(folded)
}
