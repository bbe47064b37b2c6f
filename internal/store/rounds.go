package store

import (
	"context"
	"time"
)

// Round is one completed game round in the history log.
type Round struct {
	ID        string    `json:"id"`
	Game      string    `json:"game"`
	Stake     float64   `json:"stake"`
	Payout    float64   `json:"payout"`
	Won       bool      `json:"won"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

// InsertRound appends one round to the history, assigning its id.
func (s *Store) InsertRound(ctx context.Context, r Round) (string, error) {
	id := NewID()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO rounds (id, game, stake, payout, won, detail) VALUES (?, ?, ?, ?, ?, ?)`,
		id, r.Game, r.Stake, r.Payout, r.Won, r.Detail)
	if err != nil {
		return "", err
	}
	return id, nil
}

// ListRounds returns recent rounds newest first, optionally filtered by game.
func (s *Store) ListRounds(ctx context.Context, game string, limit, offset int) ([]Round, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, game, stake, payout, won, detail, created_at FROM rounds
		 WHERE (? = '' OR game = ?)
		 ORDER BY id DESC LIMIT ? OFFSET ?`,
		game, game, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]Round, 0, limit)
	for rows.Next() {
		var r Round
		var created string
		if err := rows.Scan(&r.ID, &r.Game, &r.Stake, &r.Payout, &r.Won, &r.Detail, &created); err != nil {
			return nil, err
		}
		if t, err := time.Parse("2006-01-02 15:04:05", created); err == nil {
			r.CreatedAt = t
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// CountRounds counts history rows, optionally filtered by game.
func (s *Store) CountRounds(ctx context.Context, game string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM rounds WHERE (? = '' OR game = ?)`, game, game).Scan(&n)
	return n, err
}
