// Package game implements every state transition of the quest engine on top
// of the file store. Each transition reads the documents it needs, computes
// the new values and writes them back in a fixed order. No lock is taken:
// two concurrent writers of the same document race and the last write wins.
package game

import (
	"context"
	"time"

	"github.com/osse101/questgame/internal/config"
	"github.com/osse101/questgame/internal/domain"
	"github.com/osse101/questgame/internal/event"
	"github.com/osse101/questgame/internal/gitsync"
	"github.com/osse101/questgame/internal/logger"
	"github.com/osse101/questgame/internal/rng"
)

// Date layouts. Calendar dates are UTC.
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02T15:04:05"
)

// Repository is the persistence the service needs. *store.Store satisfies it.
type Repository interface {
	State(ctx context.Context) domain.State
	SaveState(ctx context.Context, st domain.State) error
	Today(ctx context.Context) domain.Today
	SaveToday(ctx context.Context, t domain.Today) error
	Backlog(ctx context.Context) domain.Backlog
	SaveBacklog(ctx context.Context, b domain.Backlog) error
	Inbox(ctx context.Context) (string, error)
	AppendInbox(ctx context.Context, line string) error
	ClearInbox(ctx context.Context) error
	AppendLog(ctx context.Context, entry domain.LogEntry) error
	ReadLog(ctx context.Context, limit int) ([]domain.LogEntry, error)
	GameConfig(ctx context.Context) config.Game
}

// Publisher receives the domain events of a transition after it is persisted
type Publisher interface {
	Publish(ctx context.Context, evt event.Event) error
}

// Service defines the game operations exposed to the CLI and the HTTP API
type Service interface {
	// Snapshots
	State(ctx context.Context) (domain.State, error)
	Today(ctx context.Context) (domain.Today, error)
	Status(ctx context.Context) (*Status, error)
	Backlog(ctx context.Context) ([]domain.BacklogItem, error)
	Inbox(ctx context.Context) ([]string, error)
	Weekly(ctx context.Context) (*domain.WeeklyState, error)
	Log(ctx context.Context, limit int) ([]domain.LogEntry, error)

	// Planning
	AddToInbox(ctx context.Context, text string) (string, error)
	Triage(ctx context.Context) (*TriageResult, error)
	Plan(ctx context.Context, backlogID string) (*PlanResult, error)
	EditBacklogItem(ctx context.Context, id string, edit BacklogEdit) (*domain.BacklogItem, error)
	DeleteBacklogItem(ctx context.Context, id string) error

	// Progress
	ToggleStep(ctx context.Context, index int) (*StepResult, error)
	Complete(ctx context.Context) (*CompleteResult, error)
	RecordEvent(ctx context.Context, eventType, note string) (*EventResult, error)
	Sync(ctx context.Context) (*SyncResult, error)

	// Rewards
	ClaimDailyReward(ctx context.Context, streak int) (*DailyRewardResult, error)
	Spin(ctx context.Context, source string) (*SpinResult, error)
	PendingRewards(ctx context.Context) (*PendingRewardsView, error)
	UseReward(ctx context.Context, id string) (*domain.PendingReward, error)
	BuyReward(ctx context.Context, rewardID string) (*PurchaseResult, error)

	// Journal
	Celebrate(ctx context.Context, text, size string) (*CelebrateResult, error)
	Celebrations(ctx context.Context) ([]domain.LogEntry, error)
	AddRevenue(ctx context.Context, amount float64, note string) (*RevenueResult, error)
	Revenue(ctx context.Context) (domain.Revenue, error)
}

// Option configures the service
type Option func(*service)

// WithClock replaces the wall clock, used by day-boundary tests
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// WithPublisher sets where domain events go
func WithPublisher(p Publisher) Option {
	return func(s *service) { s.publisher = p }
}

// WithGit replaces the git runner used by Sync
func WithGit(r gitsync.Runner) Option {
	return func(s *service) { s.git = r }
}

// WithSpinSource replaces the unseeded wheel randomness
func WithSpinSource(src rng.Source) Option {
	return func(s *service) { s.spin = src }
}

type service struct {
	repo      Repository
	publisher Publisher
	git       gitsync.Runner
	spin      rng.Source
	now       func() time.Time
}

// NewService creates a game service over repo. Without options it uses the
// wall clock, unseeded spins, git in the current directory and no publisher.
func NewService(repo Repository, opts ...Option) Service {
	s := &service{
		repo: repo,
		git:  gitsync.NewCLI(""),
		spin: rng.Unseeded{},
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) clock() time.Time {
	return s.now().UTC()
}

// today returns the current calendar date
func (s *service) today() string {
	return s.clock().Format(DateLayout)
}

func (s *service) yesterday() string {
	return s.clock().AddDate(0, 0, -1).Format(DateLayout)
}

// timestamp renders the current instant without fraction or zone
func (s *service) timestamp() string {
	return s.clock().Format(TimestampLayout)
}

func (s *service) millis() int64 {
	return s.clock().UnixMilli()
}

func (s *service) appendLog(ctx context.Context, typ domain.LogType, kv ...any) error {
	return s.repo.AppendLog(ctx, domain.NewLogEntry(s.timestamp(), typ, kv...))
}

// publish sends events once the transition is on disk. Failures only log.
func (s *service) publish(ctx context.Context, events ...event.Event) {
	if s.publisher == nil {
		return
	}
	log := logger.FromContext(ctx)
	for _, evt := range events {
		if err := s.publisher.Publish(ctx, evt); err != nil {
			log.Warn("Failed to publish event", "type", evt.Type, "error", err)
		}
	}
}
