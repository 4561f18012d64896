package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages.
// The wording is what the UI and CLI show to the player.
const (
	// Quest lifecycle errors
	ErrMsgNoActiveQuest       = "Nenhuma quest ativa"
	ErrMsgQuestAlreadyActive  = "Ja tem quest ativa"
	ErrMsgBacklogEmpty        = "Backlog vazio"
	ErrMsgInboxEmpty          = "Inbox vazio"
	ErrMsgEmptyText           = "Texto vazio"
	ErrMsgBacklogItemNotFound = "Item nao encontrado"
	ErrMsgInvalidStep         = "Step invalido"
	ErrMsgInvalidCategory     = "Categoria invalida"

	// Economy errors
	ErrMsgInsufficientGold     = "Gold insuficiente"
	ErrMsgRewardNotFound       = "Reward nao encontrado"
	ErrMsgPendingRewardMissing = "Recompensa nao encontrada ou expirada"

	// Spin errors
	ErrMsgAlreadySpun       = "Ja girou hoje!"
	ErrMsgLevelSpinLocked   = "Proximo spin de nivel no level"
	ErrMsgInvalidSpinSource = "Tipo de giro invalido"

	// Event and revenue errors
	ErrMsgInvalidEventType = "Tipo invalido"
	ErrMsgInvalidAmount    = "Valor invalido"

	// Git sync errors
	ErrMsgGitDisabled    = "Git sync desabilitado."
	ErrMsgGitUnavailable = "Nao esta em um repositorio git ou erro no comando."
	ErrMsgNoNewCommits   = "Nenhum commit novo encontrado."
)

// Sentinel errors. Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details)
var (
	ErrNoActiveQuest         = errors.New(ErrMsgNoActiveQuest)
	ErrQuestAlreadyActive    = errors.New(ErrMsgQuestAlreadyActive)
	ErrBacklogEmpty          = errors.New(ErrMsgBacklogEmpty)
	ErrInboxEmpty            = errors.New(ErrMsgInboxEmpty)
	ErrEmptyText             = errors.New(ErrMsgEmptyText)
	ErrBacklogItemNotFound   = errors.New(ErrMsgBacklogItemNotFound)
	ErrInvalidStep           = errors.New(ErrMsgInvalidStep)
	ErrInvalidCategory       = errors.New(ErrMsgInvalidCategory)
	ErrInsufficientGold      = errors.New(ErrMsgInsufficientGold)
	ErrRewardNotFound        = errors.New(ErrMsgRewardNotFound)
	ErrPendingRewardNotFound = errors.New(ErrMsgPendingRewardMissing)
	ErrAlreadySpun           = errors.New(ErrMsgAlreadySpun)
	ErrLevelSpinLocked       = errors.New(ErrMsgLevelSpinLocked)
	ErrInvalidSpinSource     = errors.New(ErrMsgInvalidSpinSource)
	ErrInvalidEventType      = errors.New(ErrMsgInvalidEventType)
	ErrInvalidAmount         = errors.New(ErrMsgInvalidAmount)
	ErrGitDisabled           = errors.New(ErrMsgGitDisabled)
	ErrGitUnavailable        = errors.New(ErrMsgGitUnavailable)
	ErrNoNewCommits          = errors.New(ErrMsgNoNewCommits)
)

// InsufficientGoldError carries the fortune and cost of a rejected purchase
type InsufficientGoldError struct {
	Fortune int
	Cost    int
}

func (e *InsufficientGoldError) Error() string {
	return fmt.Sprintf("%s: fortune %d, cost %d", ErrMsgInsufficientGold, e.Fortune, e.Cost)
}

// Unwrap allows errors.Is(err, ErrInsufficientGold)
func (e *InsufficientGoldError) Unwrap() error {
	return ErrInsufficientGold
}

// LevelSpinLockedError reports the level at which the next level-up spin unlocks
type LevelSpinLockedError struct {
	NextLevel int
}

func (e *LevelSpinLockedError) Error() string {
	return fmt.Sprintf("%s %d", ErrMsgLevelSpinLocked, e.NextLevel)
}

// Unwrap allows errors.Is(err, ErrLevelSpinLocked)
func (e *LevelSpinLockedError) Unwrap() error {
	return ErrLevelSpinLocked
}

// QuestAlreadyActiveError names the quest blocking a new plan
type QuestAlreadyActiveError struct {
	Title string
}

func (e *QuestAlreadyActiveError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMsgQuestAlreadyActive, e.Title)
}

// Unwrap allows errors.Is(err, ErrQuestAlreadyActive)
func (e *QuestAlreadyActiveError) Unwrap() error {
	return ErrQuestAlreadyActive
}
