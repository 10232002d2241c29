// Package store persists week grids, one entry per ISO week.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/javiermolinar/weekgrid/internal/config"
	"github.com/javiermolinar/weekgrid/internal/dateutil"
	"github.com/javiermolinar/weekgrid/internal/schedule"
)

// Store loads and saves week grids.
type Store interface {
	// Load returns the grid for week. A week that was never saved comes back
	// as a blank grid; an entry that cannot be decoded yields *CorruptStoreError.
	Load(ctx context.Context, week dateutil.WeekID) (*schedule.WeekGrid, error)

	// Save replaces the stored grid for week.
	Save(ctx context.Context, week dateutil.WeekID, grid *schedule.WeekGrid) error

	// Close releases any resources held by the store.
	Close() error
}

// CorruptStoreError reports a stored week that exists but cannot be decoded.
// The entry is left untouched so no user data is discarded.
type CorruptStoreError struct {
	Path string
	Err  error
}

func (e *CorruptStoreError) Error() string {
	return fmt.Sprintf("corrupt week data at %s: %v", e.Path, e.Err)
}

func (e *CorruptStoreError) Unwrap() error {
	return e.Err
}

// EnsureDir creates the storage directory. Failure is only logged: the first
// write reports the real error.
func EnsureDir(dir string) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.WithFields(log.Fields{"dir": dir, "error": err}).Warn("creating storage directory")
	}
}

// Open returns the store selected by the configuration.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		EnsureDir(filepath.Dir(cfg.Storage.DBPath))
		return NewSQLite(cfg.Storage.DBPath)
	case config.BackendJSON, "":
		return NewFileStore(cfg.Storage.Dir), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
