package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store persists named collections as JSON arrays, one row per collection.
// It is the single persistence layer: every feature reads its whole
// collection, transforms it in memory and writes it back.
type Store struct {
	db *sql.DB

	// OnCorrupt, when set, is invoked whenever a persisted payload fails to
	// deserialize. The payload is still treated as absent; the hook exists
	// only for observability.
	OnCorrupt func(collection string, err error)
}

const schema = `
CREATE TABLE IF NOT EXISTS collections (
  name TEXT PRIMARY KEY,
  payload TEXT NOT NULL,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create collections table: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// payload returns the raw JSON for a collection, with ok=false when the
// collection has never been written.
func (s *Store) payload(collection string) (string, bool, error) {
	var raw string
	err := s.db.QueryRow(`SELECT payload FROM collections WHERE name = ?`, collection).Scan(&raw)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read collection %q: %w", collection, err)
	}
	return raw, true, nil
}

func (s *Store) write(collection, raw string) error {
	_, err := s.db.Exec(`
INSERT INTO collections(name, payload) VALUES(?, ?)
ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP
`, collection, raw)
	if err != nil {
		return fmt.Errorf("write collection %q: %w", collection, err)
	}
	return nil
}

// Record is any entity addressable by its opaque string id.
type Record interface {
	RecordID() string
}

// Get returns the current contents of a collection. A missing collection
// yields an empty slice; so does a corrupt payload, which callers cannot
// distinguish from absence. Only storage I/O errors are returned.
func Get[T any](s *Store, collection string) ([]T, error) {
	raw, ok, err := s.payload(collection)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []T{}, nil
	}
	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		if s.OnCorrupt != nil {
			s.OnCorrupt(collection, err)
		}
		return []T{}, nil
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Set replaces the entire collection in a single write.
func Set[T any](s *Store, collection string, records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal collection %q: %w", collection, err)
	}
	return s.write(collection, string(raw))
}

// SetRaw writes a payload verbatim, bypassing JSON encoding. It exists so
// tests and recovery tooling can seed arbitrary persisted content.
func SetRaw(s *Store, collection, payload string) error {
	return s.write(collection, payload)
}

// Save appends one record to the collection and returns it unchanged.
func Save[T Record](s *Store, collection string, record T) (T, error) {
	records, err := Get[T](s, collection)
	if err != nil {
		return record, err
	}
	records = append(records, record)
	if err := Set(s, collection, records); err != nil {
		return record, err
	}
	return record, nil
}

// Delete removes every record whose id matches, preserving the order of the
// rest. Deleting an id that is not present is not an error here; services
// decide whether that matters.
func Delete[T Record](s *Store, collection, id string) error {
	records, err := Get[T](s, collection)
	if err != nil {
		return err
	}
	kept := make([]T, 0, len(records))
	for _, r := range records {
		if r.RecordID() != id {
			kept = append(kept, r)
		}
	}
	return Set(s, collection, kept)
}
