// Package store persists the most recently loaded datafeed snapshot between
// runs, so a fresh start can reuse data the feed has not replaced yet.
package store

import (
	"context"
	"errors"

	"vatsim-traffic/internal/domain/model"
)

// ErrNoSnapshot is returned by Load when no snapshot has been stored yet.
var ErrNoSnapshot = errors.New("no datafeed snapshot stored")

// SnapshotStore defines the interface for the datafeed snapshot cache
type SnapshotStore interface {
	// Load returns the stored snapshot, or ErrNoSnapshot when absent
	Load(ctx context.Context) (*model.Datafeed, error)

	// Save replaces the stored snapshot
	Save(ctx context.Context, feed *model.Datafeed) error
}
