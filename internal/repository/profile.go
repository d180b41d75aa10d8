package repository

import (
	"context"

	"ridepool/internal/domain"
)

// ProfileRepository defines the persistence operations for interest
// profiles.
type ProfileRepository interface {
	// Upsert creates or fully replaces the profile for its user.
	Upsert(ctx context.Context, profile *domain.InterestProfile) error

	// GetByUserID retrieves the profile for a user.
	GetByUserID(ctx context.Context, userID string) (*domain.InterestProfile, error)

	// GetAll retrieves every stored profile, ordered by user ID.
	GetAll(ctx context.Context) ([]*domain.InterestProfile, error)

	// GetAllExcept retrieves every stored profile except the given
	// user's, ordered by user ID.
	GetAllExcept(ctx context.Context, userID string) ([]*domain.InterestProfile, error)
}
