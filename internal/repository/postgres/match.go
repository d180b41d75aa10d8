package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"ridepool/internal/domain"
	"ridepool/internal/repository"
)

// MatchRepository is a PostgreSQL implementation of
// repository.MatchRepository. Match entries are stored as a JSONB array
// so the ranked list round-trips as one document.
type MatchRepository struct {
	q Querier
}

// NewMatchRepository creates a new PostgreSQL match repository.
func NewMatchRepository(db *sql.DB) *MatchRepository {
	return &MatchRepository{q: db}
}

// Replace creates or fully overwrites the match list for its user.
func (r *MatchRepository) Replace(ctx context.Context, result *domain.MatchResult) error {
	entries, err := json.Marshal(result.Entries)
	if err != nil {
		return fmt.Errorf("failed to encode match entries: %w", err)
	}

	query := `
		INSERT INTO best_matches (user_id, entries, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET entries = EXCLUDED.entries,
		    updated_at = EXCLUDED.updated_at
	`

	_, err = r.q.ExecContext(ctx, query, result.UserID, entries, result.UpdatedAt)
	return err
}

// GetByUserID retrieves the stored match list for a user.
func (r *MatchRepository) GetByUserID(ctx context.Context, userID string) (*domain.MatchResult, error) {
	query := `SELECT user_id, entries, updated_at FROM best_matches WHERE user_id = $1`

	var result domain.MatchResult
	var raw []byte

	err := r.q.QueryRowContext(ctx, query, userID).Scan(&result.UserID, &raw, &result.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(raw, &result.Entries); err != nil {
		return nil, fmt.Errorf("failed to decode match entries: %w", err)
	}

	return &result, nil
}
