package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/questgame/internal/domain"
	"github.com/osse101/questgame/internal/game"
)

// MockService is a testify mock of game.Service
type MockService struct {
	mock.Mock
}

var _ game.Service = (*MockService)(nil)

func (m *MockService) State(ctx context.Context) (domain.State, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.State), args.Error(1)
}

func (m *MockService) Today(ctx context.Context) (domain.Today, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Today), args.Error(1)
}

func (m *MockService) Status(ctx context.Context) (*game.Status, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(*game.Status)
	return res, args.Error(1)
}

func (m *MockService) Backlog(ctx context.Context) ([]domain.BacklogItem, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]domain.BacklogItem)
	return res, args.Error(1)
}

func (m *MockService) Inbox(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]string)
	return res, args.Error(1)
}

func (m *MockService) Weekly(ctx context.Context) (*domain.WeeklyState, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(*domain.WeeklyState)
	return res, args.Error(1)
}

func (m *MockService) Log(ctx context.Context, limit int) ([]domain.LogEntry, error) {
	args := m.Called(ctx, limit)
	res, _ := args.Get(0).([]domain.LogEntry)
	return res, args.Error(1)
}

func (m *MockService) AddToInbox(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}

func (m *MockService) Triage(ctx context.Context) (*game.TriageResult, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(*game.TriageResult)
	return res, args.Error(1)
}

func (m *MockService) Plan(ctx context.Context, backlogID string) (*game.PlanResult, error) {
	args := m.Called(ctx, backlogID)
	res, _ := args.Get(0).(*game.PlanResult)
	return res, args.Error(1)
}

func (m *MockService) EditBacklogItem(ctx context.Context, id string, edit game.BacklogEdit) (*domain.BacklogItem, error) {
	args := m.Called(ctx, id, edit)
	res, _ := args.Get(0).(*domain.BacklogItem)
	return res, args.Error(1)
}

func (m *MockService) DeleteBacklogItem(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockService) ToggleStep(ctx context.Context, index int) (*game.StepResult, error) {
	args := m.Called(ctx, index)
	res, _ := args.Get(0).(*game.StepResult)
	return res, args.Error(1)
}

func (m *MockService) Complete(ctx context.Context) (*game.CompleteResult, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(*game.CompleteResult)
	return res, args.Error(1)
}

func (m *MockService) RecordEvent(ctx context.Context, eventType, note string) (*game.EventResult, error) {
	args := m.Called(ctx, eventType, note)
	res, _ := args.Get(0).(*game.EventResult)
	return res, args.Error(1)
}

func (m *MockService) Sync(ctx context.Context) (*game.SyncResult, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(*game.SyncResult)
	return res, args.Error(1)
}

func (m *MockService) ClaimDailyReward(ctx context.Context, streak int) (*game.DailyRewardResult, error) {
	args := m.Called(ctx, streak)
	res, _ := args.Get(0).(*game.DailyRewardResult)
	return res, args.Error(1)
}

func (m *MockService) Spin(ctx context.Context, source string) (*game.SpinResult, error) {
	args := m.Called(ctx, source)
	res, _ := args.Get(0).(*game.SpinResult)
	return res, args.Error(1)
}

func (m *MockService) PendingRewards(ctx context.Context) (*game.PendingRewardsView, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(*game.PendingRewardsView)
	return res, args.Error(1)
}

func (m *MockService) UseReward(ctx context.Context, id string) (*domain.PendingReward, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*domain.PendingReward)
	return res, args.Error(1)
}

func (m *MockService) BuyReward(ctx context.Context, rewardID string) (*game.PurchaseResult, error) {
	args := m.Called(ctx, rewardID)
	res, _ := args.Get(0).(*game.PurchaseResult)
	return res, args.Error(1)
}

func (m *MockService) Celebrate(ctx context.Context, text, size string) (*game.CelebrateResult, error) {
	args := m.Called(ctx, text, size)
	res, _ := args.Get(0).(*game.CelebrateResult)
	return res, args.Error(1)
}

func (m *MockService) Celebrations(ctx context.Context) ([]domain.LogEntry, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]domain.LogEntry)
	return res, args.Error(1)
}

func (m *MockService) AddRevenue(ctx context.Context, amount float64, note string) (*game.RevenueResult, error) {
	args := m.Called(ctx, amount, note)
	res, _ := args.Get(0).(*game.RevenueResult)
	return res, args.Error(1)
}

func (m *MockService) Revenue(ctx context.Context) (domain.Revenue, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Revenue), args.Error(1)
}
