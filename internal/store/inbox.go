package store

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/osse101/questgame/internal/utils"
)

// Inbox returns the raw inbox.md text, empty when the file is missing
func (s *Store) Inbox(_ context.Context) (string, error) {
	data, err := os.ReadFile(s.Path(InboxFile))
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", InboxFile, err)
	}
	return string(data), nil
}

// AppendInbox appends an already formatted line to inbox.md
func (s *Store) AppendInbox(_ context.Context, line string) error {
	return s.appendText(InboxFile, line)
}

// ClearInbox truncates inbox.md
func (s *Store) ClearInbox(_ context.Context) error {
	if err := utils.WriteFileAtomic(s.Path(InboxFile), nil); err != nil {
		return fmt.Errorf("failed to clear %s: %w", InboxFile, err)
	}
	return nil
}
