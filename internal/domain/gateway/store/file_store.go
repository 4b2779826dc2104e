package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"vatsim-traffic/internal/domain/model"
)

// fileStore keeps the snapshot as a JSON file on disk.
type fileStore struct {
	path string
}

// NewFileStore creates a snapshot store backed by the given file path.
func NewFileStore(path string) SnapshotStore {
	return &fileStore{path: path}
}

// Load returns the stored snapshot, or ErrNoSnapshot when absent
func (s *fileStore) Load(_ context.Context) (*model.Datafeed, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to read snapshot file %s: %w", s.path, err)
	}

	var feed model.Datafeed
	if err := json.Unmarshal(data, &feed); err != nil {
		return nil, fmt.Errorf("snapshot file %s is not valid json: %w", s.path, err)
	}

	return &feed, nil
}

// Save replaces the stored snapshot
func (s *fileStore) Save(_ context.Context, feed *model.Datafeed) error {
	data, err := json.Marshal(feed)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create snapshot directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot file %s: %w", s.path, err)
	}

	return nil
}
