package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// SQLiteKV stores each key as one row of the kv_store table with the value
// JSON-encoded. It also carries the admin inspection surface, which operates
// on rows directly and bypasses any store's in-memory cache.
type SQLiteKV struct {
	db *sql.DB
}

func NewSQLiteKV(db *sql.DB) *SQLiteKV {
	return &SQLiteKV{db: db}
}

func (s *SQLiteKV) Save(key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode value for key %q: %w", key, err)
	}
	_, err = s.db.Exec(`
INSERT INTO kv_store(key, value, updated_at) VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
`, key, string(encoded))
	if err != nil {
		return fmt.Errorf("save key %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteKV) Load(key string, dest any) (bool, error) {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM kv_store WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load key %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("decode value for key %q: %w", key, err)
	}
	return true, nil
}

// Keys lists every persisted key, sorted.
func (s *SQLiteKV) Keys() ([]string, error) {
	rows, err := s.db.Query(`SELECT key FROM kv_store ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate keys: %w", err)
	}
	return keys, nil
}

// Raw returns the persisted JSON for a key without decoding it.
func (s *SQLiteKV) Raw(key string) (string, bool, error) {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM kv_store WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read raw value for key %q: %w", key, err)
	}
	return raw, true, nil
}

// Wipe deletes every persisted key. Live store instances keep serving their
// in-memory snapshots until the process restarts.
func (s *SQLiteKV) Wipe() error {
	if _, err := s.db.Exec(`DELETE FROM kv_store`); err != nil {
		return fmt.Errorf("wipe storage: %w", err)
	}
	return nil
}
