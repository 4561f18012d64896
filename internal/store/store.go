// Package store persists the game documents as plain files in one data directory.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/osse101/questgame/internal/config"
	"github.com/osse101/questgame/internal/domain"
	"github.com/osse101/questgame/internal/logger"
	"github.com/osse101/questgame/internal/utils"
)

// Document file names
const (
	StateFile   = "state.json"
	TodayFile   = "today.json"
	BacklogFile = "backlog.json"
	InboxFile   = "inbox.md"
	LogFile     = "log.ndjson"
)

// Store reads and writes the documents under Dir. Each method is a single
// whole-file read or write; callers sequence them without locking.
type Store struct {
	dir string
}

// New returns a Store rooted at dir
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the data directory
func (s *Store) Dir() string {
	return s.dir
}

// Path resolves a document name inside the data directory
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// State loads state.json, falling back to the default state
func (s *Store) State(ctx context.Context) domain.State {
	st, ok := readDoc[domain.State](ctx, s, StateFile)
	if !ok {
		return domain.DefaultState()
	}
	st.Normalize()
	return st
}

// SaveState writes state.json
func (s *Store) SaveState(_ context.Context, st domain.State) error {
	return s.write(StateFile, st)
}

// Today loads today.json, falling back to an inactive quest
func (s *Store) Today(ctx context.Context) domain.Today {
	t, ok := readDoc[domain.Today](ctx, s, TodayFile)
	if !ok {
		return domain.InactiveToday()
	}
	return t
}

// SaveToday writes today.json
func (s *Store) SaveToday(_ context.Context, t domain.Today) error {
	return s.write(TodayFile, t)
}

// Backlog loads backlog.json, falling back to an empty backlog
func (s *Store) Backlog(ctx context.Context) domain.Backlog {
	b, ok := readDoc[domain.Backlog](ctx, s, BacklogFile)
	if !ok || b.Items == nil {
		return domain.DefaultBacklog()
	}
	return b
}

// SaveBacklog writes backlog.json
func (s *Store) SaveBacklog(_ context.Context, b domain.Backlog) error {
	return s.write(BacklogFile, b)
}

// GameConfig loads config.json merged over the defaults
func (s *Store) GameConfig(ctx context.Context) config.Game {
	g, err := config.LoadGame(s.Path(config.GameConfigFile))
	if err != nil {
		logger.FromContext(ctx).Warn("Unreadable game config, using defaults", "error", err)
	}
	return g
}

func (s *Store) write(name string, doc any) error {
	if err := utils.SaveJSON(s.Path(name), doc); err != nil {
		return fmt.Errorf("failed to save %s: %w", name, err)
	}
	return nil
}

// readDoc decodes name into a T. A missing file is silent; any other
// failure is logged. ok is false whenever the default should be used.
func readDoc[T any](ctx context.Context, s *Store, name string) (T, bool) {
	var v T
	err := utils.LoadJSON(s.Path(name), &v)
	if err == nil {
		return v, true
	}
	if !errors.Is(err, os.ErrNotExist) {
		logger.FromContext(ctx).Warn("Unreadable document, using default", "file", name, "error", err)
	}
	var zero T
	return zero, false
}
