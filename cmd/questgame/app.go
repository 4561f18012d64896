package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/osse101/questgame/internal/config"
	"github.com/osse101/questgame/internal/domain"
	"github.com/osse101/questgame/internal/game"
	"github.com/osse101/questgame/internal/gitsync"
	"github.com/osse101/questgame/internal/logger"
	"github.com/osse101/questgame/internal/store"
	"github.com/osse101/questgame/internal/ui"
)

type appOptions struct {
	home *string
}

// app is what a one-shot command works with
type app struct {
	cfg   *config.Config
	store *store.Store
	svc   game.Service
}

func (o *appOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if o.home != nil && *o.home != "" {
		cfg.Home = *o.home
	}
	return cfg, nil
}

func (o *appOptions) open() (*app, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	initLogger(cfg, os.Stderr)

	st := store.New(cfg.Home)
	return &app{
		cfg:   cfg,
		store: st,
		svc:   game.NewService(st, game.WithGit(gitsync.NewCLI(cfg.Home))),
	}, nil
}

// initLogger sets up the quiet logger one-shot commands use. Only warnings
// reach the terminal unless LOG_LEVEL=debug.
func initLogger(cfg *config.Config, w io.Writer) {
	logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		cfg.Version,
		cfg.Environment,
		false,
	).Quiet(), w)
}

// hint turns a rejected transition into the line the player sees. Errors
// that are not game preconditions are returned unchanged.
func hint(w io.Writer, err error) error {
	var active *domain.QuestAlreadyActiveError
	switch {
	case errors.As(err, &active):
		fmt.Fprintf(w, "  %s: %s\n", domain.ErrMsgQuestAlreadyActive, active.Title)
		fmt.Fprintln(w, ui.Muted.Render("  Finalize com: done"))
	case errors.Is(err, domain.ErrNoActiveQuest):
		fmt.Fprintln(w, "  "+domain.ErrMsgNoActiveQuest+". Use: plan")
	case errors.Is(err, domain.ErrBacklogEmpty):
		fmt.Fprintln(w, "  "+domain.ErrMsgBacklogEmpty+". Use: add + triage primeiro.")
	case errors.Is(err, domain.ErrInboxEmpty):
		fmt.Fprintln(w, "  "+domain.ErrMsgInboxEmpty+`. Use: add "texto"`)
	case errors.Is(err, domain.ErrEmptyText):
		fmt.Fprintln(w, `  Uso: add "texto da ideia"`)
	case errors.Is(err, domain.ErrInvalidEventType),
		errors.Is(err, domain.ErrGitDisabled),
		errors.Is(err, domain.ErrGitUnavailable),
		errors.Is(err, domain.ErrNoNewCommits):
		fmt.Fprintln(w, "  "+err.Error())
	default:
		return err
	}
	return nil
}
