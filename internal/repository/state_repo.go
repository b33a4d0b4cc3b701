package repository

import (
	"database/sql"
	"fmt"

	"wonbyte/internal/database"
	"wonbyte/internal/storage"
)

// StateRepository persists ledger state as JSON blobs in the learning_state
// table. It implements storage.Backend.
type StateRepository struct {
	db *database.DB
}

// NewStateRepository creates a new state repository
func NewStateRepository(db *database.DB) *StateRepository {
	return &StateRepository{db: db}
}

// Get retrieves the value stored under a key
func (r *StateRepository) Get(key string) ([]byte, error) {
	var value string
	query := `SELECT state_value FROM learning_state WHERE state_key = ?`
	err := r.db.QueryRow(query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get state %s: %w", key, err)
	}
	return []byte(value), nil
}

// Set stores a value under a key, replacing any previous value
func (r *StateRepository) Set(key string, value []byte) error {
	query := r.db.Dialect.UpsertState()
	if _, err := r.db.Exec(query, key, string(value)); err != nil {
		return fmt.Errorf("failed to set state %s: %w", key, err)
	}
	return nil
}

// Delete removes the value stored under a key
func (r *StateRepository) Delete(key string) error {
	query := `DELETE FROM learning_state WHERE state_key = ?`
	if _, err := r.db.Exec(query, key); err != nil {
		return fmt.Errorf("failed to delete state %s: %w", key, err)
	}
	return nil
}

// DeleteAll removes every key with the given prefix. Keys are generated
// internally ("user:<id>:<ledger>") and never contain LIKE metacharacters.
func (r *StateRepository) DeleteAll(prefix string) error {
	query := `DELETE FROM learning_state WHERE state_key LIKE ?`
	if _, err := r.db.Exec(query, prefix+"%"); err != nil {
		return fmt.Errorf("failed to delete state prefix %s: %w", prefix, err)
	}
	return nil
}

// StateRow is one persisted key/value pair, used by backup export/import
type StateRow struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// All returns every persisted key/value pair
func (r *StateRepository) All() ([]StateRow, error) {
	rows, err := r.db.Query(`SELECT state_key, state_value FROM learning_state ORDER BY state_key`)
	if err != nil {
		return nil, fmt.Errorf("failed to list state: %w", err)
	}
	defer rows.Close()

	var out []StateRow
	for rows.Next() {
		var row StateRow
		if err := rows.Scan(&row.Key, &row.Value); err != nil {
			return nil, fmt.Errorf("failed to scan state row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
