package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/osse101/questgame/internal/domain"
	"github.com/osse101/questgame/internal/validation"
)

// Game holds the tuning knobs read from config.json
type Game struct {
	DailyEffortTargetMinutes int                    `json:"daily_effort_target_minutes"`
	DailyEffortMaxMinutes    int                    `json:"daily_effort_max_minutes"`
	CategoryWeights          domain.CategoryWeights `json:"category_weights"`
	Rarity                   domain.Rarity          `json:"rarity"`
	Git                      GitRewards             `json:"git"`
}

// GitRewards are the XP grants of a git sync
type GitRewards struct {
	CommitXP int `json:"commit_xp"`
	TagXP    int `json:"tag_xp"`
}

// GameOverrides mirrors Game with every field optional, so a partial
// config.json only replaces what it names.
type GameOverrides struct {
	DailyEffortTargetMinutes *int `json:"daily_effort_target_minutes"`
	DailyEffortMaxMinutes    *int `json:"daily_effort_max_minutes"`
	CategoryWeights          *struct {
		Build *float64 `json:"build"`
		Ship  *float64 `json:"ship"`
		Reach *float64 `json:"reach"`
	} `json:"category_weights"`
	Rarity *struct {
		Common *float64 `json:"common"`
		Rare   *float64 `json:"rare"`
		Epic   *float64 `json:"epic"`
	} `json:"rarity"`
	Git *struct {
		CommitXP *int `json:"commit_xp"`
		TagXP    *int `json:"tag_xp"`
	} `json:"git"`
}

// DefaultGame returns the tuning used when config.json is absent
func DefaultGame() Game {
	return Game{
		DailyEffortTargetMinutes: 30,
		DailyEffortMaxMinutes:    50,
		CategoryWeights:          domain.DefaultCategoryWeights(),
		Rarity:                   domain.DefaultRarity(),
		Git:                      GitRewards{CommitXP: 2, TagXP: 20},
	}
}

// MergeGame applies the set fields of o over defaults
func MergeGame(defaults Game, o GameOverrides) Game {
	g := defaults
	setInt(&g.DailyEffortTargetMinutes, o.DailyEffortTargetMinutes)
	setInt(&g.DailyEffortMaxMinutes, o.DailyEffortMaxMinutes)
	if w := o.CategoryWeights; w != nil {
		setFloat(&g.CategoryWeights.Build, w.Build)
		setFloat(&g.CategoryWeights.Ship, w.Ship)
		setFloat(&g.CategoryWeights.Reach, w.Reach)
	}
	if r := o.Rarity; r != nil {
		setFloat(&g.Rarity.Common, r.Common)
		setFloat(&g.Rarity.Rare, r.Rare)
		setFloat(&g.Rarity.Epic, r.Epic)
	}
	if gr := o.Git; gr != nil {
		setInt(&g.Git.CommitXP, gr.CommitXP)
		setInt(&g.Git.TagXP, gr.TagXP)
	}
	return g
}

// ParseGame decodes a config.json document and merges it over the defaults.
// A document that breaks the schema is rejected whole.
func ParseGame(data []byte) (Game, error) {
	var o GameOverrides
	if err := json.Unmarshal(data, &o); err != nil {
		return DefaultGame(), fmt.Errorf("failed to parse game config: %w", err)
	}
	if err := validation.ValidateGameConfig(data); err != nil {
		return DefaultGame(), fmt.Errorf("invalid game config: %w", err)
	}
	return MergeGame(DefaultGame(), o), nil
}

// LoadGame reads path. A missing file yields the defaults without error.
// An unreadable or malformed file yields the defaults and the error, so
// callers can log it and carry on.
func LoadGame(path string) (Game, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultGame(), nil
	}
	if err != nil {
		return DefaultGame(), fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGame(data)
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
