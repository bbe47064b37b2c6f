package store

import (
	"context"
	"database/sql"
	"errors"
)

// GetSnapshot returns the stored payload for key, or ErrNotFound.
func (s *Store) GetSnapshot(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM snapshots WHERE key = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// PutSnapshot overwrites the whole payload for key. Last write wins;
// there are no partial-field updates.
func (s *Store) PutSnapshot(ctx context.Context, key string, payload []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (key, payload, updated_at) VALUES (?, ?, datetime('now'))
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		key, payload)
	return err
}

// DeleteSnapshot removes a stored snapshot. Missing keys are not an error.
func (s *Store) DeleteSnapshot(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE key = ?`, key)
	return err
}
