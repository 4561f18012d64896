package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/questgame/internal/domain"
	"github.com/osse101/questgame/internal/economy"
)

// CelebrationScanLimit is how many log entries Celebrations looks through
const CelebrationScanLimit = 100

// Celebrate records an achievement outside the quest loop and pays gems by size
func (s *service) Celebrate(ctx context.Context, text, size string) (*CelebrateResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyText
	}
	size, gold := economy.Celebration(size)

	st := s.repo.State(ctx)
	st.AddGems(economy.GemsFor(gold))
	if err := s.repo.SaveState(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}
	if err := s.appendLog(ctx, domain.LogCelebrate, "text", text, "size", size, "gold", gold); err != nil {
		return nil, fmt.Errorf("failed to append log: %w", err)
	}
	return &CelebrateResult{Text: text, Size: size, Gold: gold}, nil
}

// Celebrations returns the CELEBRATE entries among the most recent log lines
func (s *service) Celebrations(ctx context.Context) ([]domain.LogEntry, error) {
	entries, err := s.repo.ReadLog(ctx, CelebrationScanLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to read log: %w", err)
	}
	out := make([]domain.LogEntry, 0)
	for _, e := range entries {
		if e.Type == domain.LogCelebrate {
			out = append(out, e)
		}
	}
	return out, nil
}

// AddRevenue records income and updates the running total
func (s *service) AddRevenue(ctx context.Context, amount float64, note string) (*RevenueResult, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	st := s.repo.State(ctx)
	if st.Revenue == nil {
		st.Revenue = &domain.Revenue{Entries: []domain.RevenueEntry{}}
	}
	entry := domain.RevenueEntry{Amount: amount, Note: strings.TrimSpace(note), Date: s.today()}
	st.Revenue.Total += amount
	st.Revenue.Entries = append(st.Revenue.Entries, entry)
	if n := len(st.Revenue.Entries); n > economy.MaxRevenueEntries {
		st.Revenue.Entries = append([]domain.RevenueEntry(nil), st.Revenue.Entries[n-economy.MaxRevenueEntries:]...)
	}

	if err := s.repo.SaveState(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}
	if err := s.appendLog(ctx, domain.LogRevenue,
		"amount", amount,
		"note", entry.Note,
		"total", st.Revenue.Total,
	); err != nil {
		return nil, fmt.Errorf("failed to append log: %w", err)
	}
	return &RevenueResult{Entry: entry, Total: st.Revenue.Total}, nil
}

// Revenue returns the revenue ledger, empty when nothing was recorded
func (s *service) Revenue(ctx context.Context) (domain.Revenue, error) {
	st := s.repo.State(ctx)
	if st.Revenue == nil {
		return domain.Revenue{Entries: []domain.RevenueEntry{}}, nil
	}
	return *st.Revenue, nil
}
