package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"ridepool/internal/domain"
	"ridepool/internal/repository"
)

// ProfileRepository is a PostgreSQL implementation of
// repository.ProfileRepository.
type ProfileRepository struct {
	q Querier
}

// NewProfileRepository creates a new PostgreSQL profile repository.
func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{q: db}
}

// Upsert creates or fully replaces the profile for its user.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *domain.InterestProfile) error {
	query := `
		INSERT INTO interest_profiles (user_id, raw_text, keywords, categories, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET raw_text = EXCLUDED.raw_text,
		    keywords = EXCLUDED.keywords,
		    categories = EXCLUDED.categories,
		    updated_at = EXCLUDED.updated_at
	`

	_, err := r.q.ExecContext(ctx, query,
		profile.UserID,
		profile.RawText,
		pq.Array(profile.Keywords),
		pq.Array(profile.Categories),
		profile.UpdatedAt,
	)

	return err
}

// GetByUserID retrieves the profile for a user.
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.InterestProfile, error) {
	query := `
		SELECT user_id, raw_text, keywords, categories, updated_at
		FROM interest_profiles WHERE user_id = $1
	`

	profile, err := scanProfile(r.q.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return profile, nil
}

// GetAll retrieves every stored profile, ordered by user ID.
func (r *ProfileRepository) GetAll(ctx context.Context) ([]*domain.InterestProfile, error) {
	query := `
		SELECT user_id, raw_text, keywords, categories, updated_at
		FROM interest_profiles ORDER BY user_id
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProfiles(rows)
}

// GetAllExcept retrieves every stored profile except the given user's,
// ordered by user ID.
func (r *ProfileRepository) GetAllExcept(ctx context.Context, userID string) ([]*domain.InterestProfile, error) {
	query := `
		SELECT user_id, raw_text, keywords, categories, updated_at
		FROM interest_profiles WHERE user_id <> $1 ORDER BY user_id
	`

	rows, err := r.q.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProfiles(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*domain.InterestProfile, error) {
	var profile domain.InterestProfile
	err := row.Scan(
		&profile.UserID,
		&profile.RawText,
		pq.Array(&profile.Keywords),
		pq.Array(&profile.Categories),
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func scanProfiles(rows *sql.Rows) ([]*domain.InterestProfile, error) {
	var profiles []*domain.InterestProfile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}
