package handler

// StepRequest toggles one step of the active quest
type StepRequest struct {
	Index *int `json:"index" validate:"required,min=0"`
}

// DailyRewardRequest claims the login reward for the streak the UI shows
type DailyRewardRequest struct {
	Streak int `json:"streak"`
}

// SpinRequest spins the wheel. Source defaults to daily.
type SpinRequest struct {
	Source string `json:"source" validate:"omitempty,oneof=daily levelup paid premium"`
}

// UseRewardRequest redeems a pending reward
type UseRewardRequest struct {
	ID string `json:"id" validate:"required"`
}

// BuyRequest purchases a shop reward
type BuyRequest struct {
	RewardID string `json:"reward_id" validate:"required"`
}

// AddRequest captures an idea into the inbox
type AddRequest struct {
	Text string `json:"text" validate:"max=1000"`
}

// PlanRequest picks today's quest. An empty BacklogID auto-selects.
type PlanRequest struct {
	BacklogID string `json:"backlog_id"`
}

// BacklogEditRequest changes the fields that are present
type BacklogEditRequest struct {
	ID            string  `json:"id" validate:"required"`
	Title         *string `json:"title" validate:"omitempty,max=200"`
	Category      *string `json:"category" validate:"omitempty,category"`
	Impact        *int    `json:"impact" validate:"omitempty,min=1,max=5"`
	EffortMinutes *int    `json:"effort_minutes" validate:"omitempty,gt=0"`
}

// BacklogDeleteRequest removes a backlog item
type BacklogDeleteRequest struct {
	ID string `json:"id" validate:"required"`
}

// CelebrateRequest logs a win. Unknown sizes count as small.
type CelebrateRequest struct {
	Text string `json:"text" validate:"max=1000"`
	Size string `json:"size"`
}

// RevenueRequest records income
type RevenueRequest struct {
	Amount float64 `json:"amount" validate:"gt=0"`
	Note   string  `json:"note" validate:"max=500"`
}

// EventRequest records an external achievement
type EventRequest struct {
	Type string `json:"type" validate:"required"`
	Note string `json:"note" validate:"max=500"`
}
