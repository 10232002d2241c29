package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/weekgrid/internal/dateutil"
	"github.com/javiermolinar/weekgrid/internal/schedule"
)

// SQLiteStore keeps one row per week. Each row holds the same JSON document
// the file store writes.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLite opens the database at path and runs migrations.
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLiteStore{db: db, path: path}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS weeks (
			week_key   TEXT PRIMARY KEY,
			iso_week   TEXT NOT NULL,
			document   TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating weeks table: %w", err)
	}
	return nil
}

// Load returns the stored week or a blank one when no row exists.
func (s *SQLiteStore) Load(ctx context.Context, week dateutil.WeekID) (*schedule.WeekGrid, error) {
	var document string
	err := s.db.QueryRowContext(ctx, `SELECT document FROM weeks WHERE week_key = ?`, week.Key()).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		log.WithField("week", week.String()).Debug("week row missing, initializing")
		return schedule.InitWeek(week.Monday()), nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying week: %w", err)
	}

	grid, err := Decode(week, []byte(document))
	if err != nil {
		return nil, &CorruptStoreError{Path: s.path + "#" + week.Key(), Err: err}
	}
	return grid, nil
}

// Save upserts the week row in a single statement.
func (s *SQLiteStore) Save(ctx context.Context, week dateutil.WeekID, grid *schedule.WeekGrid) error {
	data, err := Encode(week, grid)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO weeks (week_key, iso_week, document, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(week_key) DO UPDATE SET
			document   = excluded.document,
			updated_at = excluded.updated_at
	`
	if _, err := s.db.ExecContext(ctx, query, week.Key(), week.String(), string(data), time.Now().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("saving week: %w", err)
	}
	log.WithFields(log.Fields{"week": week.String(), "db": s.path}).Debug("week saved")
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
