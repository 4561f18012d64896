package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/questgame/internal/category"
	"github.com/osse101/questgame/internal/domain"
	"github.com/osse101/questgame/internal/event"
	"github.com/osse101/questgame/internal/logger"
	"github.com/osse101/questgame/internal/quest"
)

// PlanResult is the new active quest
type PlanResult struct {
	Quest domain.Quest `json:"quest"`
	// ForcedShipReach is set when three build completions in a row
	// restricted the pick to ship and reach work
	ForcedShipReach bool `json:"forced_ship_reach"`
}

// AddToInbox appends a timestamped line to inbox.md
func (s *service) AddToInbox(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", domain.ErrEmptyText
	}
	if err := s.repo.AppendInbox(ctx, quest.FormatInboxLine(s.timestamp(), text)); err != nil {
		return "", fmt.Errorf("failed to append inbox: %w", err)
	}
	return text, nil
}

// Inbox returns the cleaned inbox lines
func (s *service) Inbox(ctx context.Context) ([]string, error) {
	text, err := s.repo.Inbox(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read inbox: %w", err)
	}
	lines := quest.ParseInbox(text)
	if lines == nil {
		lines = []string{}
	}
	return lines, nil
}

// Triage turns every inbox line into a classified backlog item and clears the inbox
func (s *service) Triage(ctx context.Context) (*TriageResult, error) {
	log := logger.FromContext(ctx)

	text, err := s.repo.Inbox(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read inbox: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrInboxEmpty
	}

	backlog := s.repo.Backlog(ctx)
	ids := quest.NewIDAllocator(backlog)
	created := s.timestamp()

	added := make([]domain.BacklogItem, 0)
	for _, line := range quest.ParseInbox(text) {
		item := domain.BacklogItem{
			ID:            ids.Next(),
			Title:         line,
			Category:      category.Detect(line),
			Impact:        domain.DefaultImpact,
			EffortMinutes: domain.DefaultEffortMinutes,
			Notes:         "",
			CreatedAt:     created,
		}
		backlog.Items = append(backlog.Items, item)
		added = append(added, item)
	}

	if err := s.repo.SaveBacklog(ctx, backlog); err != nil {
		return nil, fmt.Errorf("failed to save backlog: %w", err)
	}
	if err := s.repo.ClearInbox(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear inbox: %w", err)
	}

	log.Info("Inbox triaged", "added", len(added), "total", len(backlog.Items))
	return &TriageResult{Added: len(added), Total: len(backlog.Items), Items: added}, nil
}

// Plan turns a backlog item into the active quest. With backlogID empty the
// best scoring candidate is chosen.
func (s *service) Plan(ctx context.Context, backlogID string) (*PlanResult, error) {
	log := logger.FromContext(ctx)

	today, err := s.currentToday(ctx)
	if err != nil {
		return nil, err
	}
	if active := today.Quest(); active != nil {
		return nil, &domain.QuestAlreadyActiveError{Title: active.Title}
	}

	backlog := s.repo.Backlog(ctx)
	if len(backlog.Items) == 0 {
		return nil, domain.ErrBacklogEmpty
	}

	st := s.repo.State(ctx)
	cfg := s.repo.GameConfig(ctx)
	last := st.Stats.LastCategories

	var chosen domain.BacklogItem
	forced := false
	if backlogID != "" {
		i := backlog.Find(backlogID)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", domain.ErrBacklogItemNotFound, backlogID)
		}
		chosen = backlog.Items[i]
	} else {
		chosen, _ = quest.Select(backlog.Items, cfg.DailyEffortMaxMinutes, last)
		forced = quest.ShouldForceShipReach(last) && chosen.Category.IsEntrepreneurial()
	}

	date := s.today()
	q := domain.Quest{
		ID:            quest.FormatQuestID(date),
		Title:         chosen.Title,
		Category:      domain.CategoryOrDefault(chosen.Category),
		Impact:        chosen.ImpactOrDefault(),
		EffortMinutes: chosen.EffortOrDefault(),
		Steps:         quest.GenerateSteps(date, chosen.Category, chosen.Title),
		CreatedAt:     s.timestamp(),
		Source:        domain.QuestSourceBacklog,
		BacklogID:     chosen.ID,
	}

	if err := s.repo.SaveToday(ctx, domain.ActiveToday(q)); err != nil {
		return nil, fmt.Errorf("failed to save today: %w", err)
	}
	backlog.Remove(chosen.ID)
	if err := s.repo.SaveBacklog(ctx, backlog); err != nil {
		return nil, fmt.Errorf("failed to save backlog: %w", err)
	}

	log.Info("Quest planned", "quest_id", q.ID, "title", q.Title, "category", q.Category, "steps", len(q.Steps))
	s.publish(ctx, event.NewQuestPlannedEvent(q))
	return &PlanResult{Quest: q, ForcedShipReach: forced}, nil
}

// EditBacklogItem applies the set fields of edit to the item with id
func (s *service) EditBacklogItem(ctx context.Context, id string, edit BacklogEdit) (*domain.BacklogItem, error) {
	backlog := s.repo.Backlog(ctx)
	i := backlog.Find(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrBacklogItemNotFound, id)
	}

	item := &backlog.Items[i]
	if edit.Title != nil && *edit.Title != "" {
		item.Title = *edit.Title
	}
	if edit.Category != nil && *edit.Category != "" {
		if !edit.Category.Valid() {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCategory, *edit.Category)
		}
		item.Category = *edit.Category
	}
	if edit.Impact != nil {
		item.Impact = *edit.Impact
	}
	if edit.EffortMinutes != nil {
		item.EffortMinutes = *edit.EffortMinutes
	}

	if err := s.repo.SaveBacklog(ctx, backlog); err != nil {
		return nil, fmt.Errorf("failed to save backlog: %w", err)
	}
	out := *item
	return &out, nil
}

// DeleteBacklogItem removes the item with id
func (s *service) DeleteBacklogItem(ctx context.Context, id string) error {
	backlog := s.repo.Backlog(ctx)
	if !backlog.Remove(id) {
		return fmt.Errorf("%w: %s", domain.ErrBacklogItemNotFound, id)
	}
	if err := s.repo.SaveBacklog(ctx, backlog); err != nil {
		return fmt.Errorf("failed to save backlog: %w", err)
	}
	return nil
}
