package repository

import (
	"context"

	"ridepool/internal/domain"
)

// MatchRepository defines the persistence operations for stored match
// lists. One record per user, replaced wholesale on every recompute.
type MatchRepository interface {
	// Replace creates or fully overwrites the match list for its user.
	Replace(ctx context.Context, result *domain.MatchResult) error

	// GetByUserID retrieves the stored match list for a user.
	GetByUserID(ctx context.Context, userID string) (*domain.MatchResult, error)
}
