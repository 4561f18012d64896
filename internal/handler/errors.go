package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/questgame/internal/domain"
)

// Generic HTTP error messages. They never expose internal error details.
const (
	ErrMsgInvalidBody        = "Body invalido"
	ErrMsgGenericServerError = "Erro interno"
	ErrMsgNotFound           = "Rota nao encontrada"
	ErrMsgMethodNotAllowed   = "Metodo nao permitido"
)

// Readiness messages
const (
	MsgReadyFailed = "data directory not accessible"
)

// mapServiceErrorToUserMessage maps domain errors to an HTTP status and the
// short message the UI shows. Precondition failures are 400, anything else
// is a 500 with a generic message.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	var locked *domain.LevelSpinLockedError
	if errors.As(err, &locked) {
		return http.StatusBadRequest, locked.Error()
	}

	switch {
	case errors.Is(err, domain.ErrInvalidEventType):
		// Carries the list of valid types
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrNoActiveQuest):
		return http.StatusBadRequest, domain.ErrMsgNoActiveQuest
	case errors.Is(err, domain.ErrQuestAlreadyActive):
		return http.StatusBadRequest, domain.ErrMsgQuestAlreadyActive
	case errors.Is(err, domain.ErrBacklogEmpty):
		return http.StatusBadRequest, domain.ErrMsgBacklogEmpty
	case errors.Is(err, domain.ErrInboxEmpty):
		return http.StatusBadRequest, domain.ErrMsgInboxEmpty
	case errors.Is(err, domain.ErrEmptyText):
		return http.StatusBadRequest, domain.ErrMsgEmptyText
	case errors.Is(err, domain.ErrBacklogItemNotFound):
		return http.StatusBadRequest, domain.ErrMsgBacklogItemNotFound
	case errors.Is(err, domain.ErrInvalidStep):
		return http.StatusBadRequest, domain.ErrMsgInvalidStep
	case errors.Is(err, domain.ErrInvalidCategory):
		return http.StatusBadRequest, domain.ErrMsgInvalidCategory
	case errors.Is(err, domain.ErrInsufficientGold):
		return http.StatusBadRequest, domain.ErrMsgInsufficientGold
	case errors.Is(err, domain.ErrRewardNotFound):
		return http.StatusBadRequest, domain.ErrMsgRewardNotFound
	case errors.Is(err, domain.ErrPendingRewardNotFound):
		return http.StatusBadRequest, domain.ErrMsgPendingRewardMissing
	case errors.Is(err, domain.ErrAlreadySpun):
		return http.StatusBadRequest, domain.ErrMsgAlreadySpun
	case errors.Is(err, domain.ErrInvalidSpinSource):
		return http.StatusBadRequest, domain.ErrMsgInvalidSpinSource
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, domain.ErrMsgInvalidAmount
	case errors.Is(err, domain.ErrGitDisabled):
		return http.StatusBadRequest, domain.ErrMsgGitDisabled
	case errors.Is(err, domain.ErrGitUnavailable):
		return http.StatusBadRequest, domain.ErrMsgGitUnavailable
	case errors.Is(err, domain.ErrNoNewCommits):
		return http.StatusBadRequest, domain.ErrMsgNoNewCommits
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// errorResponseFor builds the full error body, adding the fields the UI
// uses to explain some failures
func errorResponseFor(err error) (int, ErrorResponse) {
	status, msg := mapServiceErrorToUserMessage(err)
	body := ErrorResponse{Error: msg}

	var gold *domain.InsufficientGoldError
	if errors.As(err, &gold) {
		fortune, cost := gold.Fortune, gold.Cost
		body.Fortune = &fortune
		body.Cost = &cost
	}

	var active *domain.QuestAlreadyActiveError
	if errors.As(err, &active) {
		body.Quest = active.Title
	}

	if errors.Is(err, domain.ErrAlreadySpun) {
		body.AlreadySpun = true
	}

	return status, body
}
