package game

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/osse101/questgame/internal/domain"
	"github.com/osse101/questgame/internal/event"
	"github.com/osse101/questgame/internal/gitsync"
	"github.com/osse101/questgame/internal/logger"
	"github.com/osse101/questgame/internal/loot"
	"github.com/osse101/questgame/internal/progression"
)

// EventImpact is the impact external achievements are scored with
const EventImpact = 5

// EventCategories maps external achievement types to the category they reward
var EventCategories = map[string]domain.Category{
	"blog":    domain.CategoryReach,
	"tiktok":  domain.CategoryReach,
	"store":   domain.CategoryShip,
	"revenue": domain.CategoryShip,
}

// EventTypes returns the accepted achievement types in sorted order
func EventTypes() []string {
	types := make([]string, 0, len(EventCategories))
	for t := range EventCategories {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// ToggleStep flips step index of the active quest. Marking a step done awards
// an equal share of the quest XP. Undoing a step takes nothing back.
func (s *service) ToggleStep(ctx context.Context, index int) (*StepResult, error) {
	today, err := s.currentToday(ctx)
	if err != nil {
		return nil, err
	}
	q := today.Quest()
	if q == nil {
		return nil, domain.ErrNoActiveQuest
	}
	if index < 0 || index >= len(q.Steps) {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidStep, index)
	}

	wasDone := q.Steps[index].Done
	q.Steps[index].Done = !wasDone
	if err := s.repo.SaveToday(ctx, today); err != nil {
		return nil, fmt.Errorf("failed to save today: %w", err)
	}

	var events []event.Event
	stepXP := 0
	if !wasDone {
		st := s.repo.State(ctx)
		cfg := s.repo.GameConfig(ctx)
		total := progression.CalcXP(questImpact(q), domain.CategoryOrDefault(q.Category), st.Player.Streak, cfg.CategoryWeights)
		stepXP = total / len(q.Steps)
		if stepXP > 0 {
			events = append(events, awardXP(&st, domain.XPSourceStep, stepXP)...)
			if err := s.repo.SaveState(ctx, st); err != nil {
				return nil, fmt.Errorf("failed to save state: %w", err)
			}
		}
	}

	events = append([]event.Event{event.NewStepToggledEvent(q.ID, index, !wasDone, stepXP)}, events...)
	s.publish(ctx, events...)
	return &StepResult{Steps: q.Steps, StepXP: stepXP}, nil
}

// Complete finishes the active quest: streak, XP, loot, skill table, weekly
// missions and the DONE log entry, then clears today.
func (s *service) Complete(ctx context.Context) (*CompleteResult, error) {
	log := logger.FromContext(ctx)

	today, err := s.currentToday(ctx)
	if err != nil {
		return nil, err
	}
	q := today.Quest()
	if q == nil {
		return nil, domain.ErrNoActiveQuest
	}

	st := s.repo.State(ctx)
	cfg := s.repo.GameConfig(ctx)
	date := s.today()
	cat := domain.CategoryOrDefault(q.Category)
	s.advanceStreak(&st.Player)
	oldLevel := st.Player.Level
	xp := progression.CalcXP(questImpact(q), cat, st.Player.Streak, cfg.CategoryWeights)
	events := awardXP(&st, domain.XPSourceQuest, xp)

	drops := loot.Roll(date, cat, st.Player.Streak, q.ID, cfg.Rarity)
	st.AddItems(drops...)
	progression.UpdateTable(st.Tables.Get(cat))
	st.RecordCategory(cat)
	st.Stats.TotalDone++
	s.advanceWeekly(ctx, &st, cat)

	for i := range q.Steps {
		q.Steps[i].Done = true
	}

	if err := s.repo.SaveState(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}
	if err := s.appendLog(ctx, domain.LogDone,
		"quest_id", q.ID,
		"category", cat,
		"xp", xp,
		"loot", drops,
	); err != nil {
		return nil, fmt.Errorf("failed to append log: %w", err)
	}
	if err := s.repo.SaveToday(ctx, domain.InactiveToday()); err != nil {
		return nil, fmt.Errorf("failed to clear today: %w", err)
	}

	log.Info("Quest completed", "quest_id", q.ID, "xp", xp, "level", st.Player.Level, "streak", st.Player.Streak)
	events = append(events,
		event.NewLootRolledEvent(domain.XPSourceQuest, drops),
		event.NewQuestCompletedEvent(*q, xp, st.Player.Level, st.Player.Streak, drops),
	)
	s.publish(ctx, events...)

	return &CompleteResult{
		QuestID:   q.ID,
		Title:     q.Title,
		XP:        xp,
		Loot:      drops,
		Category:  cat,
		Level:     st.Player.Level,
		Streak:    st.Player.Streak,
		LeveledUp: st.Player.Level > oldLevel,
	}, nil
}

// RecordEvent rewards an external achievement such as a published post or a sale
func (s *service) RecordEvent(ctx context.Context, eventType, note string) (*EventResult, error) {
	cat, ok := EventCategories[eventType]
	if !ok {
		return nil, fmt.Errorf("%w. Use: %s", domain.ErrInvalidEventType, strings.Join(EventTypes(), ", "))
	}

	st := s.repo.State(ctx)
	cfg := s.repo.GameConfig(ctx)
	date := s.today()

	s.advanceStreak(&st.Player)
	xp := progression.CalcXP(EventImpact, cat, st.Player.Streak, cfg.CategoryWeights)
	events := awardXP(&st, domain.XPSourceEvent, xp)

	id := fmt.Sprintf("E-%s-%s", date, eventType)
	drops := loot.Roll(date, cat, st.Player.Streak, id, cfg.Rarity)
	st.AddItems(drops...)
	progression.UpdateTable(st.Tables.Get(cat))

	if err := s.repo.SaveState(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}
	if err := s.appendLog(ctx, domain.LogEvent,
		"event", eventType,
		"category", cat,
		"note", note,
		"xp", xp,
		"loot", drops,
	); err != nil {
		return nil, fmt.Errorf("failed to append log: %w", err)
	}

	logger.FromContext(ctx).Info("Event recorded", "event", eventType, "xp", xp)
	s.publish(ctx, append(events, event.NewLootRolledEvent(domain.XPSourceEvent, drops))...)
	return &EventResult{ID: id, Event: eventType, Category: cat, XP: xp, Loot: drops, Level: st.Player.Level}, nil
}

// Sync rewards commits made since the stored cursor, plus a release tag at HEAD
func (s *service) Sync(ctx context.Context) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	st := s.repo.State(ctx)
	if !st.Git.Enabled {
		return nil, domain.ErrGitDisabled
	}
	cfg := s.repo.GameConfig(ctx)

	since := ""
	if st.Git.LastSeenHash != nil {
		since = *st.Git.LastSeenHash
	}
	lines, err := s.git.Log(ctx, since)
	if err != nil {
		log.Warn("Git log failed", "error", err)
		return nil, domain.ErrGitUnavailable
	}
	if len(lines) == 0 {
		return nil, domain.ErrNoNewCommits
	}

	tags, err := s.git.TagsAtHead(ctx)
	if err != nil {
		log.Warn("Git tag lookup failed", "error", err)
		tags = nil
	}

	total := 0
	drops := make([]string, 0, len(lines)+1)
	for _, line := range lines {
		if _, ok := gitsync.ParseCommit(line); !ok {
			continue
		}
		total += cfg.Git.CommitXP
		drops = append(drops, domain.ItemBuildShard)
	}
	if len(tags) > 0 {
		total += cfg.Git.TagXP
		drops = append(drops, domain.ItemShipToken)
	}

	events := awardXP(&st, domain.XPSourceSync, total)
	st.AddItems(drops...)
	newest, _, _ := strings.Cut(lines[0], "|")
	st.Git.LastSeenHash = &newest

	if err := s.repo.SaveState(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}
	if err := s.appendLog(ctx, domain.LogSync,
		"commits", len(lines),
		"xp", total,
		"loot", drops,
	); err != nil {
		return nil, fmt.Errorf("failed to append log: %w", err)
	}

	log.Info("Git sync completed", "commits", len(lines), "tags", len(tags), "xp", total)
	if len(drops) > 0 {
		events = append(events, event.NewLootRolledEvent(domain.XPSourceSync, drops))
	}
	s.publish(ctx, events...)
	return &SyncResult{Commits: lines, Tags: tags, XP: total, Loot: drops, Level: st.Player.Level}, nil
}

// advanceStreak extends the streak when the last completion was yesterday and
// restarts it unless something was already completed today
func (s *service) advanceStreak(p *domain.Player) {
	date := s.today()
	switch {
	case p.LastDoneDate != nil && *p.LastDoneDate == s.yesterday():
		p.Streak++
	case p.LastDoneDate == nil || *p.LastDoneDate != date:
		p.Streak = 1
	}
	p.LastDoneDate = &date
}

// awardXP adds amount to the player and recomputes the level from total XP
func awardXP(st *domain.State, source string, amount int) []event.Event {
	if amount <= 0 {
		return nil
	}
	old := st.Player.Level
	st.Player.XP += amount
	st.Player.Level = progression.LevelForXP(st.Player.XP)

	events := []event.Event{event.NewXPAwardedEvent(source, amount, st.Player.XP)}
	if st.Player.Level > old {
		events = append(events, event.NewLevelUpEvent(old, st.Player.Level))
	}
	return events
}

func questImpact(q *domain.Quest) int {
	if q.Impact == 0 {
		return domain.DefaultImpact
	}
	return q.Impact
}
