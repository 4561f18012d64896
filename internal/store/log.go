package store

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/osse101/questgame/internal/domain"
)

// AppendLog appends one NDJSON line to log.ndjson
func (s *Store) AppendLog(_ context.Context, entry domain.LogEntry) error {
	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode log entry: %w", err)
	}
	return s.appendText(LogFile, string(line)+"\n")
}

// ReadLog returns up to limit entries, newest first. Malformed lines are skipped.
func (s *Store) ReadLog(_ context.Context, limit int) ([]domain.LogEntry, error) {
	lines, err := s.LogLines()
	if err != nil {
		return nil, err
	}

	entries := make([]domain.LogEntry, 0, min(max(limit, 0), len(lines)))
	for i := len(lines) - 1; i >= 0 && len(entries) < limit; i-- {
		var e domain.LogEntry
		if err := json.Unmarshal([]byte(lines[i]), &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// LogLines returns the raw non-empty lines of log.ndjson in file order
func (s *Store) LogLines() ([]string, error) {
	data, err := os.ReadFile(s.Path(LogFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", LogFile, err)
	}

	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := bytes.TrimSpace(sc.Bytes()); len(line) > 0 {
			lines = append(lines, string(line))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", LogFile, err)
	}
	return lines, nil
}

func (s *Store) appendText(name, text string) error {
	f, err := os.OpenFile(s.Path(name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return fmt.Errorf("failed to append to %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	return nil
}
