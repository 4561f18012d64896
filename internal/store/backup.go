package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/osse101/questgame/internal/config"
)

// BackupFormatVersion is bumped when Snapshot changes incompatibly
const BackupFormatVersion = 1

// BackupExt is the file extension of backup archives
const BackupExt = ".qgb"

// Snapshot is the decoded content of a backup archive. Documents holds the
// raw bytes of every JSON and markdown file present at backup time.
type Snapshot struct {
	Version   int               `msgpack:"version"`
	CreatedAt string            `msgpack:"created_at"`
	Documents map[string][]byte `msgpack:"documents"`
	LogLines  []string          `msgpack:"log_lines"`
}

var backupDocuments = []string{StateFile, TodayFile, BacklogFile, InboxFile, config.GameConfigFile}

// Backup writes a zstd-compressed msgpack snapshot of the data directory to w.
// Missing documents are omitted. Nothing on disk is modified.
func (s *Store) Backup(_ context.Context, w io.Writer, createdAt string) (*Snapshot, error) {
	snap := &Snapshot{
		Version:   BackupFormatVersion,
		CreatedAt: createdAt,
		Documents: make(map[string][]byte, len(backupDocuments)),
	}

	for _, name := range backupDocuments {
		data, err := os.ReadFile(s.Path(name))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s for backup: %w", name, err)
		}
		snap.Documents[name] = data
	}

	lines, err := s.LogLines()
	if err != nil {
		return nil, err
	}
	snap.LogLines = lines

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return nil, fmt.Errorf("failed to create compressor: %w", err)
	}
	if err := msgpack.NewEncoder(zw).Encode(snap); err != nil {
		zw.Close()
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to flush snapshot: %w", err)
	}
	return snap, nil
}

// ReadBackup decodes an archive produced by Backup
func ReadBackup(r io.Reader) (*Snapshot, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	defer zr.Close()

	var snap Snapshot
	if err := msgpack.NewDecoder(zr).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if snap.Version != BackupFormatVersion {
		return nil, fmt.Errorf("unsupported backup version %d", snap.Version)
	}
	return &snap, nil
}
