package game

import (
	"context"
	"fmt"

	"github.com/osse101/questgame/internal/domain"
	"github.com/osse101/questgame/internal/event"
	"github.com/osse101/questgame/internal/logger"
)

// ExpiredNote marks backlog items returned by expiry
const ExpiredNote = "Retornado do dia anterior"

// currentToday loads today.json and returns a quest planned on an earlier
// date to the backlog. It is the only transition not triggered by the user.
func (s *service) currentToday(ctx context.Context) (domain.Today, error) {
	today := s.repo.Today(ctx)
	q := today.Quest()
	if q == nil || q.CreatedAt == "" || q.CreatedDate() == s.today() {
		return today, nil
	}

	log := logger.FromContext(ctx)
	item := domain.BacklogItem{
		ID:            q.BacklogID,
		Title:         q.Title,
		Category:      q.Category,
		Impact:        q.Impact,
		EffortMinutes: q.EffortMinutes,
		Notes:         ExpiredNote,
		CreatedAt:     q.CreatedAt,
	}
	if item.ID == "" {
		item.ID = fmt.Sprintf("B-%d", s.millis())
	}
	if item.Impact == 0 {
		item.Impact = domain.DefaultImpact
	}
	if item.EffortMinutes == 0 {
		item.EffortMinutes = domain.DefaultEffortMinutes
	}

	backlog := s.repo.Backlog(ctx)
	if !backlog.Has(item.ID) {
		backlog.Items = append(backlog.Items, item)
		if err := s.repo.SaveBacklog(ctx, backlog); err != nil {
			return today, fmt.Errorf("failed to return quest to backlog: %w", err)
		}
	}
	if err := s.repo.SaveToday(ctx, domain.InactiveToday()); err != nil {
		return today, fmt.Errorf("failed to clear today: %w", err)
	}
	if err := s.appendLog(ctx, domain.LogExpired,
		"quest_id", q.ID,
		"title", q.Title,
		"category", q.Category,
		"returned_to_backlog", item.ID,
	); err != nil {
		log.Warn("Failed to log expiry", "error", err)
	}

	log.Info("Quest expired", "quest_id", q.ID, "backlog_id", item.ID)
	s.publish(ctx, event.NewQuestExpiredEvent(*q, item.ID))
	return domain.InactiveToday(), nil
}

// State returns state.json as stored
func (s *service) State(ctx context.Context) (domain.State, error) {
	return s.repo.State(ctx), nil
}

// Today returns the active quest after the staleness check
func (s *service) Today(ctx context.Context) (domain.Today, error) {
	return s.currentToday(ctx)
}

// Status returns state and today for console rendering
func (s *service) Status(ctx context.Context) (*Status, error) {
	today, err := s.currentToday(ctx)
	if err != nil {
		return nil, err
	}
	st := s.repo.State(ctx)
	recent := st.Inventory
	if len(recent) > RecentLootSize {
		recent = recent[len(recent)-RecentLootSize:]
	}
	return &Status{
		State:      st,
		Today:      today,
		RecentLoot: append([]string(nil), recent...),
	}, nil
}

// Backlog returns the backlog items
func (s *service) Backlog(ctx context.Context) ([]domain.BacklogItem, error) {
	return s.repo.Backlog(ctx).Items, nil
}

// Log returns the newest limit log entries
func (s *service) Log(ctx context.Context, limit int) ([]domain.LogEntry, error) {
	entries, err := s.repo.ReadLog(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read log: %w", err)
	}
	return entries, nil
}
