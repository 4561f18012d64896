package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/osse101/questgame/internal/domain"
	"github.com/osse101/questgame/internal/utils"
)

// InitResult reports, per document, whether Init created it
type InitResult struct {
	Name    string
	Created bool
}

// Init creates every missing document with its default content. Existing
// files are never touched.
func (s *Store) Init() ([]InitResult, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	docs := []struct {
		name    string
		content func() ([]byte, error)
	}{
		{StateFile, func() ([]byte, error) { return utils.MarshalDocument(domain.DefaultState()) }},
		{TodayFile, func() ([]byte, error) { return utils.MarshalDocument(domain.InactiveToday()) }},
		{BacklogFile, func() ([]byte, error) { return utils.MarshalDocument(domain.DefaultBacklog()) }},
		{InboxFile, func() ([]byte, error) { return nil, nil }},
		{LogFile, func() ([]byte, error) { return nil, nil }},
	}

	results := make([]InitResult, 0, len(docs))
	for _, d := range docs {
		path := s.Path(d.name)
		_, err := os.Stat(path)
		if err == nil {
			results = append(results, InitResult{Name: d.name})
			continue
		}
		if !errors.Is(err, os.ErrNotExist) {
			return results, fmt.Errorf("failed to stat %s: %w", d.name, err)
		}

		data, err := d.content()
		if err != nil {
			return results, err
		}
		if err := utils.WriteFileAtomic(path, data); err != nil {
			return results, err
		}
		results = append(results, InitResult{Name: d.name, Created: true})
	}
	return results, nil
}

// Ready verifies the data directory exists and is writable
func (s *Store) Ready() error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("data dir unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data dir %s is not a directory", s.dir)
	}

	probe, err := os.CreateTemp(s.dir, ".ready-*")
	if err != nil {
		return fmt.Errorf("data dir not writable: %w", err)
	}
	name := probe.Name()
	probe.Close()
	return os.Remove(filepath.Clean(name))
}
