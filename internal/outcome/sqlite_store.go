package outcome

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists outcomes in a SQLite database.
type SQLiteStore struct {
	mu sync.Mutex
	db *sql.DB
}

// OpenSQLite opens (or creates) the outcome database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	store := &SQLiteStore{db: db}
	if err := store.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// init creates the schema when missing.
func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS outcomes (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		kind TEXT NOT NULL,
		target TEXT NOT NULL,
		started_at TEXT NOT NULL,
		ended_at TEXT NOT NULL,
		success INTEGER NOT NULL,
		failed_step INTEGER NOT NULL DEFAULT 0,
		error TEXT NOT NULL DEFAULT '',
		warning TEXT NOT NULL DEFAULT ''
	)`)
	if err != nil {
		return fmt.Errorf("create outcomes table: %w", err)
	}
	return nil
}

// Report implements Reporter. Write failures are logged.
func (s *SQLiteStore) Report(o Outcome) {
	if err := s.insert(o); err != nil {
		log.Printf("outcome: sqlite insert %s: %v", o.ID, err)
	}
}

// insert writes a single outcome row.
func (s *SQLiteStore) insert(o Outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	success := 0
	if o.Success {
		success = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO outcomes (id, kind, target, started_at, ended_at, success, failed_step, error, warning)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, string(o.Kind), o.Target,
		o.Start.UTC().Format(time.RFC3339Nano), o.End.UTC().Format(time.RFC3339Nano),
		success, o.FailedStep, o.Error, o.Warning,
	)
	return err
}

// Recent returns up to limit outcomes, newest first. limit <= 0 returns all.
func (s *SQLiteStore) Recent(limit int) ([]Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.Query(
		`SELECT id, kind, target, started_at, ended_at, success, failed_step, error, warning
		 FROM outcomes ORDER BY seq DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Outcome
	for rows.Next() {
		var (
			o          Outcome
			kind       string
			start, end string
			success    int
		)
		if err := rows.Scan(&o.ID, &kind, &o.Target, &start, &end, &success, &o.FailedStep, &o.Error, &o.Warning); err != nil {
			return nil, err
		}
		o.Kind = Kind(kind)
		o.Success = success == 1
		if o.Start, err = time.Parse(time.RFC3339Nano, start); err != nil {
			return nil, err
		}
		if o.End, err = time.Parse(time.RFC3339Nano, end); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
