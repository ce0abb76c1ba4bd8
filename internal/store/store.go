// Package store provides a SQLite-backed library of saved budget scenarios.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"costshift/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrNotFound is returned when a named scenario does not exist.
var ErrNotFound = errors.New("scenario not found")

// Store persists named scenario snapshots.
type Store struct {
	db *sql.DB
}

// Open opens or creates the scenario database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating scenario dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening scenario db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the scenario database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores a snapshot under the given name, replacing any scenario
// already saved with it.
func (s *Store) Save(name, mode string, snap model.Snapshot) error {
	if name == "" {
		return errors.New("scenario name is empty")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.Exec(`INSERT OR REPLACE INTO scenarios (name, mode, total_cost, saved_at)
		VALUES (?, ?, ?, ?)`, name, mode, snap.TotalCost, now)
	if err != nil {
		return err
	}

	// Replace-not-merge: an older save of the same name may have had
	// different categories.
	if _, err := tx.Exec("DELETE FROM scenario_entries WHERE scenario = ?", name); err != nil {
		return err
	}

	for id, alloc := range snap.Allocations {
		_, err := tx.Exec(`INSERT INTO scenario_entries (scenario, category_id, allocation, adjustment)
			VALUES (?, ?, ?, ?)`, name, id, alloc, snap.Adjustments[id])
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Load reads a scenario back by name.
func (s *Store) Load(name string) (model.Snapshot, string, error) {
	var snap model.Snapshot
	var mode string

	err := s.db.QueryRow("SELECT mode, total_cost FROM scenarios WHERE name = ?", name).
		Scan(&mode, &snap.TotalCost)
	if errors.Is(err, sql.ErrNoRows) {
		return snap, "", fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return snap, "", err
	}

	rows, err := s.db.Query("SELECT category_id, allocation, adjustment FROM scenario_entries WHERE scenario = ?", name)
	if err != nil {
		return snap, "", err
	}
	defer func() { _ = rows.Close() }()

	snap.Allocations = make(map[string]float64)
	snap.Adjustments = make(map[string]float64)
	for rows.Next() {
		var id string
		var alloc, adj float64
		if err := rows.Scan(&id, &alloc, &adj); err != nil {
			return snap, "", err
		}
		snap.Allocations[id] = alloc
		snap.Adjustments[id] = adj
	}
	return snap, mode, rows.Err()
}

// List returns all saved scenarios, most recent first.
func (s *Store) List() ([]model.ScenarioMeta, error) {
	rows, err := s.db.Query("SELECT name, mode, total_cost, saved_at FROM scenarios ORDER BY saved_at DESC")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var metas []model.ScenarioMeta
	for rows.Next() {
		var m model.ScenarioMeta
		if err := rows.Scan(&m.Name, &m.Mode, &m.TotalCost, &m.SavedAt); err != nil {
			return nil, err
		}
		metas = append(metas, m)
	}
	return metas, rows.Err()
}

// Delete removes a scenario and its entries.
func (s *Store) Delete(name string) error {
	res, err := s.db.Exec("DELETE FROM scenarios WHERE name = ?", name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return nil
}

// Count returns the number of saved scenarios.
func (s *Store) Count() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM scenarios").Scan(&count)
	return count, err
}

// DefaultPath returns the scenario database path under the XDG data
// directory.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "costshift", "scenarios.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "costshift", "scenarios.db")
}
