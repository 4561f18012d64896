package game

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/questgame/internal/domain"
	"github.com/osse101/questgame/internal/economy"
	"github.com/osse101/questgame/internal/logger"
)

// Weekly mission ids
const (
	MissionQuests     = "w1"
	MissionCategories = "w2"
	MissionStreak     = "w3"
)

// NewWeeklyMissions returns the fresh mission set of a week
func NewWeeklyMissions() []domain.WeeklyMission {
	return []domain.WeeklyMission{
		{ID: MissionQuests, Title: "Complete 5 quests esta semana", Target: 5, RewardGold: 100},
		{ID: MissionCategories, Title: "Use 3 categorias diferentes", Target: 3, RewardGold: 75},
		{ID: MissionStreak, Title: "Mantenha streak por 7 dias", Target: 7, RewardGold: 150},
	}
}

// WeekStart returns the Monday of the week containing t
func WeekStart(t time.Time) string {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset).Format(DateLayout)
}

// ensureWeekly replaces the missions when the stored week is not the current
// one and reports whether it did
func (s *service) ensureWeekly(ctx context.Context, st *domain.State) bool {
	start := WeekStart(s.clock())
	if st.Weekly != nil && st.Weekly.WeekStart == start {
		return false
	}
	st.Weekly = &domain.WeeklyState{WeekStart: start, Missions: NewWeeklyMissions()}
	logger.FromContext(ctx).Info("Generated weekly missions", "week_start", start, "count", len(st.Weekly.Missions))
	return true
}

// advanceWeekly updates mission progress after a completion in category c.
// A mission reaching its target is paid once in common gems.
func (s *service) advanceWeekly(ctx context.Context, st *domain.State, c domain.Category) {
	s.ensureWeekly(ctx, st)
	for i := range st.Weekly.Missions {
		m := &st.Weekly.Missions[i]
		if m.Completed {
			continue
		}
		switch m.ID {
		case MissionQuests:
			m.Progress++
		case MissionCategories:
			seen := map[domain.Category]bool{c: true}
			for _, prev := range st.Stats.LastCategories {
				seen[prev] = true
			}
			m.Progress = min(len(seen), m.Target)
		case MissionStreak:
			m.Progress = st.Player.Streak
		}
		if m.Progress >= m.Target {
			m.Completed = true
			st.AddGems(economy.GemsFor(m.RewardGold))
			logger.FromContext(ctx).Info("Weekly mission completed", "mission", m.ID, "reward_gold", m.RewardGold)
		}
	}
}

// Weekly returns the current week's missions, generating them if needed
func (s *service) Weekly(ctx context.Context) (*domain.WeeklyState, error) {
	st := s.repo.State(ctx)
	if s.ensureWeekly(ctx, &st) {
		if err := s.repo.SaveState(ctx, st); err != nil {
			return nil, fmt.Errorf("failed to save state: %w", err)
		}
	}
	return st.Weekly, nil
}
