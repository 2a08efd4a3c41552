package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// StateKey is the fixed key the study document is stored under. The value
// is carried over from earlier versions of the tracker so existing data
// keeps loading.
const StateKey = "medprep_v2_study_tracker_data"

// StateRepo reads and writes the raw document blob. It knows nothing about
// the document's shape; (de)serialization belongs to the engine.
type StateRepo struct {
	db *sql.DB
}

func NewStateRepo(db *sql.DB) *StateRepo {
	return &StateRepo{db: db}
}

// Load returns the stored document bytes, or (nil, nil) when no document
// has been saved yet.
func (r *StateRepo) Load(ctx context.Context) ([]byte, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, StateKey)

	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("state load: %w", err)
	}
	return []byte(value), nil
}

// Save upserts the document bytes under the fixed key.
func (r *StateRepo) Save(ctx context.Context, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, StateKey, string(value), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("state save: %w", err)
	}
	return nil
}
