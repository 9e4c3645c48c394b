// Package sqlite provides a SQLite-backed session.Store. Snapshots are kept
// as JSON payloads keyed by id, which keeps the schema stable while the
// snapshot shape evolves.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/hupe1980/curia/session"
)

// Store is a durable session.Store backed by a SQLite database file.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	store := &Store{conn: conn}
	if err := store.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id TEXT PRIMARY KEY,
		saved_at TEXT NOT NULL,
		payload TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_snapshots_saved_at ON snapshots(saved_at);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Save writes the snapshot, replacing any prior snapshot with the same id.
func (s *Store) Save(snap *session.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	_, err = s.conn.Exec(
		"INSERT OR REPLACE INTO snapshots (id, saved_at, payload) VALUES (?, ?, ?)",
		snap.ID, snap.SavedAt.UTC().Format("2006-01-02T15:04:05.999999999Z07:00"), string(payload),
	)
	if err != nil {
		return fmt.Errorf("insert snapshot %s: %w", snap.ID, err)
	}
	return nil
}

// Load reconstructs a snapshot by id, or session.ErrNotFound.
func (s *Store) Load(id string) (*session.Snapshot, error) {
	var payload string
	err := s.conn.Get(&payload, "SELECT payload FROM snapshots WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, session.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", id, err)
	}

	var snap session.Snapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot %s: %w", id, err)
	}
	return &snap, nil
}

// List returns all snapshot ids, most recently saved first.
func (s *Store) List() ([]string, error) {
	var ids []string
	if err := s.conn.Select(&ids, "SELECT id FROM snapshots ORDER BY saved_at DESC"); err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return ids, nil
}
