package handler

import (
	"context"
	"net/http"

	"github.com/osse101/questgame/internal/domain"
	"github.com/osse101/questgame/internal/economy"
	"github.com/osse101/questgame/internal/game"
	"github.com/osse101/questgame/internal/logger"
)

// DefaultLogLimit is the number of log entries returned without ?limit
const DefaultLogLimit = 10

// GameHandlers serves the /api endpoints of the game
type GameHandlers struct {
	svc game.Service
}

// NewGameHandlers creates the game handlers
func NewGameHandlers(svc game.Service) *GameHandlers {
	return &GameHandlers{svc: svc}
}

// Snapshots

// HandleState returns the raw player state
func (h *GameHandlers) HandleState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleRead(w, r, "Get state", h.svc.State)
	}
}

// HandleStatus returns state, today and recent loot
func (h *GameHandlers) HandleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleRead(w, r, "Get status", h.svc.Status)
	}
}

// HandleToday returns today's quest, expiring a stale one first
func (h *GameHandlers) HandleToday() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleRead(w, r, "Get today", h.svc.Today)
	}
}

// HandleLog returns the newest log entries
func (h *GameHandlers) HandleLog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := GetOptionalIntQueryParam(r, "limit", DefaultLogLimit)
		handleRead(w, r, "Get log", func(ctx context.Context) ([]domain.LogEntry, error) {
			return h.svc.Log(ctx, limit)
		})
	}
}

// HandleShop returns the reward catalog
func (h *GameHandlers) HandleShop() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, economy.Shop)
	}
}

// HandleBacklog returns the backlog items
func (h *GameHandlers) HandleBacklog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleRead(w, r, "Get backlog", h.svc.Backlog)
	}
}

// HandleInbox returns the cleaned inbox lines
func (h *GameHandlers) HandleInbox() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleRead(w, r, "Get inbox", h.svc.Inbox)
	}
}

// HandleWeekly returns this week's missions
func (h *GameHandlers) HandleWeekly() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleRead(w, r, "Get weekly", h.svc.Weekly)
	}
}

// HandlePendingRewards returns the spin panel snapshot
func (h *GameHandlers) HandlePendingRewards() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleRead(w, r, "Get pending rewards", h.svc.PendingRewards)
	}
}

// HandleCelebrations returns recent celebrations
func (h *GameHandlers) HandleCelebrations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleRead(w, r, "Get celebrations", h.svc.Celebrations)
	}
}

// HandleRevenue returns the revenue ledger
func (h *GameHandlers) HandleRevenue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleRead(w, r, "Get revenue", h.svc.Revenue)
	}
}

// Planning

// HandleAdd appends a line to the inbox
func (h *GameHandlers) HandleAdd() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleAction(w, r, "Add to inbox",
			func(ctx context.Context, req AddRequest) (string, error) {
				return h.svc.AddToInbox(ctx, req.Text)
			},
			func(text string) interface{} {
				return struct {
					OKResponse
					Text string `json:"text"`
				}{okBody, text}
			})
	}
}

// HandleTriage moves the inbox into the backlog
func (h *GameHandlers) HandleTriage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := h.svc.Triage(r.Context())
		if err != nil {
			respondServiceError(w, r, "Triage", err)
			return
		}
		logger.FromContext(r.Context()).Info("Inbox triaged", "added", res.Added, "total", res.Total)
		respondJSON(w, http.StatusOK, struct {
			OKResponse
			*game.TriageResult
		}{okBody, res})
	}
}

// HandlePlan selects today's quest
func (h *GameHandlers) HandlePlan() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PlanRequest
		if err := DecodeOptionalRequest(r, w, &req, "Plan"); err != nil {
			return
		}
		res, err := h.svc.Plan(r.Context(), req.BacklogID)
		if err != nil {
			respondServiceError(w, r, "Plan", err)
			return
		}
		respondJSON(w, http.StatusOK, struct {
			OKResponse
			Quest           domain.Today `json:"quest"`
			ForcedShipReach bool         `json:"forced_ship_reach"`
		}{okBody, domain.ActiveToday(res.Quest), res.ForcedShipReach})
	}
}

// HandleBacklogEdit updates a backlog item
func (h *GameHandlers) HandleBacklogEdit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleAction(w, r, "Edit backlog item",
			func(ctx context.Context, req BacklogEditRequest) (*domain.BacklogItem, error) {
				edit := game.BacklogEdit{
					Title:         req.Title,
					Impact:        req.Impact,
					EffortMinutes: req.EffortMinutes,
				}
				if req.Category != nil {
					c := domain.Category(*req.Category)
					edit.Category = &c
				}
				return h.svc.EditBacklogItem(ctx, req.ID, edit)
			},
			func(item *domain.BacklogItem) interface{} {
				return struct {
					OKResponse
					Item *domain.BacklogItem `json:"item"`
				}{okBody, item}
			})
	}
}

// HandleBacklogDelete removes a backlog item
func (h *GameHandlers) HandleBacklogDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleAction(w, r, "Delete backlog item",
			func(ctx context.Context, req BacklogDeleteRequest) (struct{}, error) {
				return struct{}{}, h.svc.DeleteBacklogItem(ctx, req.ID)
			},
			func(struct{}) interface{} { return okBody })
	}
}

// Progress

// HandleStep toggles a step and awards its share of XP
func (h *GameHandlers) HandleStep() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleAction(w, r, "Toggle step",
			func(ctx context.Context, req StepRequest) (*game.StepResult, error) {
				return h.svc.ToggleStep(ctx, *req.Index)
			},
			func(res *game.StepResult) interface{} {
				return struct {
					OKResponse
					*game.StepResult
				}{okBody, res}
			})
	}
}

// HandleDone completes the active quest
func (h *GameHandlers) HandleDone() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := h.svc.Complete(r.Context())
		if err != nil {
			respondServiceError(w, r, "Complete quest", err)
			return
		}
		respondJSON(w, http.StatusOK, struct {
			OKResponse
			*game.CompleteResult
		}{okBody, res})
	}
}

// HandleEvent records an external achievement
func (h *GameHandlers) HandleEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleAction(w, r, "Record event",
			func(ctx context.Context, req EventRequest) (*game.EventResult, error) {
				return h.svc.RecordEvent(ctx, req.Type, req.Note)
			},
			func(res *game.EventResult) interface{} {
				return struct {
					OKResponse
					*game.EventResult
				}{okBody, res}
			})
	}
}

// HandleSync rewards new git commits
func (h *GameHandlers) HandleSync() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := h.svc.Sync(r.Context())
		if err != nil {
			respondServiceError(w, r, "Git sync", err)
			return
		}
		respondJSON(w, http.StatusOK, struct {
			OKResponse
			*game.SyncResult
		}{okBody, res})
	}
}

// Rewards

// HandleDailyReward grants the login reward
func (h *GameHandlers) HandleDailyReward() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleAction(w, r, "Daily reward",
			func(ctx context.Context, req DailyRewardRequest) (*game.DailyRewardResult, error) {
				return h.svc.ClaimDailyReward(ctx, req.Streak)
			},
			func(res *game.DailyRewardResult) interface{} {
				return struct {
					OKResponse
					*game.DailyRewardResult
				}{okBody, res}
			})
	}
}

// HandleSpin spins the wheel
func (h *GameHandlers) HandleSpin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SpinRequest
		if err := DecodeOptionalRequest(r, w, &req, "Spin"); err != nil {
			return
		}
		res, err := h.svc.Spin(r.Context(), req.Source)
		if err != nil {
			respondServiceError(w, r, "Spin", err)
			return
		}
		respondJSON(w, http.StatusOK, struct {
			OKResponse
			*game.SpinResult
		}{okBody, res})
	}
}

// HandleUseReward redeems a pending reward
func (h *GameHandlers) HandleUseReward() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleAction(w, r, "Use reward",
			func(ctx context.Context, req UseRewardRequest) (*domain.PendingReward, error) {
				return h.svc.UseReward(ctx, req.ID)
			},
			func(reward *domain.PendingReward) interface{} {
				return struct {
					OKResponse
					Reward *domain.PendingReward `json:"reward"`
				}{okBody, reward}
			})
	}
}

// HandleBuy purchases a shop reward
func (h *GameHandlers) HandleBuy() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleAction(w, r, "Shop purchase",
			func(ctx context.Context, req BuyRequest) (*game.PurchaseResult, error) {
				return h.svc.BuyReward(ctx, req.RewardID)
			},
			func(res *game.PurchaseResult) interface{} {
				return struct {
					OKResponse
					*game.PurchaseResult
				}{okBody, res}
			})
	}
}

// Journal

// HandleCelebrate logs a win
func (h *GameHandlers) HandleCelebrate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleAction(w, r, "Celebrate",
			func(ctx context.Context, req CelebrateRequest) (*game.CelebrateResult, error) {
				return h.svc.Celebrate(ctx, req.Text, req.Size)
			},
			func(res *game.CelebrateResult) interface{} {
				return struct {
					OKResponse
					*game.CelebrateResult
				}{okBody, res}
			})
	}
}

// HandleAddRevenue records income
func (h *GameHandlers) HandleAddRevenue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleAction(w, r, "Add revenue",
			func(ctx context.Context, req RevenueRequest) (*game.RevenueResult, error) {
				return h.svc.AddRevenue(ctx, req.Amount, req.Note)
			},
			func(res *game.RevenueResult) interface{} {
				return struct {
					OKResponse
					*game.RevenueResult
				}{okBody, res}
			})
	}
}
