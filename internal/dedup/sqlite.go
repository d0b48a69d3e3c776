// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dedup

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/curation-engine/pkg/types"
)

const dbFile = "curation.db"

// Store is a SQLite-backed Index that persists admitted fingerprints
// across runs. The fingerprint set grows append-only; field merges only
// update the summary column of an existing row.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the index database at dir/curation.db,
// creating the schema if it does not exist (R3.1).
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS fingerprints (
		key TEXT PRIMARY KEY,
		summary TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Lookup returns the entry stored under key, if any.
func (s *Store) Lookup(key string) (types.IndexEntry, bool, error) {
	var raw string
	err := s.db.QueryRow(`SELECT summary FROM fingerprints WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return types.IndexEntry{}, false, nil
	}
	if err != nil {
		return types.IndexEntry{}, false, fmt.Errorf("looking up fingerprint: %w", err)
	}

	var e types.IndexEntry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return types.IndexEntry{}, false, fmt.Errorf("parsing stored summary: %w", err)
	}
	return e, true, nil
}

// Insert upserts entry under key.
func (s *Store) Insert(key string, entry types.IndexEntry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO fingerprints (key, summary) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET summary=excluded.summary`,
		key, string(raw),
	)
	if err != nil {
		return fmt.Errorf("inserting fingerprint: %w", err)
	}
	return nil
}

// Entries returns the full index contents.
func (s *Store) Entries() (map[string]types.IndexEntry, error) {
	rows, err := s.db.Query(`SELECT key, summary FROM fingerprints`)
	if err != nil {
		return nil, fmt.Errorf("reading fingerprints: %w", err)
	}
	defer rows.Close()

	out := make(map[string]types.IndexEntry)
	for rows.Next() {
		var key, raw string
		if err := rows.Scan(&key, &raw); err != nil {
			return nil, fmt.Errorf("scanning fingerprint row: %w", err)
		}
		var e types.IndexEntry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			return nil, fmt.Errorf("parsing summary for %s: %w", key, err)
		}
		out[key] = e
	}
	return out, rows.Err()
}
