package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/javiermolinar/weekgrid/internal/dateutil"
	"github.com/javiermolinar/weekgrid/internal/schedule"
)

const filePermissions = 0o644

// FileStore keeps one JSON file per week in a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a file store rooted at dir, creating the directory
// when possible.
func NewFileStore(dir string) *FileStore {
	EnsureDir(dir)
	return &FileStore{dir: dir}
}

// Dir returns the storage directory.
func (s *FileStore) Dir() string {
	return s.dir
}

// Path returns the file that holds week.
func (s *FileStore) Path(week dateutil.WeekID) string {
	return filepath.Join(s.dir, week.FileName())
}

// Load reads the week file, falling back to a blank week when it is absent.
func (s *FileStore) Load(ctx context.Context, week dateutil.WeekID) (*schedule.WeekGrid, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.Path(week)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.WithFields(log.Fields{"week": week.String(), "path": path}).Debug("week file missing, initializing")
		return schedule.InitWeek(week.Monday()), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading week file: %w", err)
	}

	grid, err := Decode(week, data)
	if err != nil {
		return nil, &CorruptStoreError{Path: path, Err: err}
	}
	log.WithFields(log.Fields{"week": week.String(), "path": path, "filled": grid.FilledCount()}).Debug("week loaded")
	return grid, nil
}

// Save writes the week to a temp file in the same directory and renames it
// over the target, so a crash never leaves a truncated week file.
func (s *FileStore) Save(ctx context.Context, week dateutil.WeekID, grid *schedule.WeekGrid) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := Encode(week, grid)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating storage directory: %w", err)
	}

	path := s.Path(week)
	if err := writeFileAtomic(path, data); err != nil {
		return err
	}
	log.WithFields(log.Fields{"week": week.String(), "path": path, "bytes": len(data)}).Debug("week saved")
	return nil
}

// Close is a no-op for the file store.
func (s *FileStore) Close() error {
	return nil
}

func writeFileAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err = os.Chmod(tmpName, filePermissions); err != nil {
		return fmt.Errorf("setting file permissions: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing week file: %w", err)
	}
	return nil
}
