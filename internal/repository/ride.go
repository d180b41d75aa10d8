package repository

import (
	"context"

	"ridepool/internal/domain"
)

// RideRepository defines the persistence operations for rides and their
// passenger lists.
type RideRepository interface {
	// Create persists a new ride.
	Create(ctx context.Context, ride *domain.Ride) error

	// GetByID retrieves a ride by ID.
	GetByID(ctx context.Context, id string) (*domain.Ride, error)

	// GetAvailable retrieves open rides, optionally filtered by sector.
	// An empty sector means no filter.
	GetAvailable(ctx context.Context, sector string) ([]*domain.Ride, error)

	// UpdateStatus updates the status of a ride.
	UpdateStatus(ctx context.Context, id string, status domain.RideStatus) error

	// AddPassenger adds a passenger to a ride.
	AddPassenger(ctx context.Context, passenger *domain.Passenger) error

	// GetPassengers retrieves all passengers for a ride in join order.
	GetPassengers(ctx context.Context, rideID string) ([]*domain.Passenger, error)

	// GetPassenger retrieves one passenger of a ride, ErrNotFound when
	// the user has not joined.
	GetPassenger(ctx context.Context, rideID, userID string) (*domain.Passenger, error)

	// SetPassengerArrived updates a passenger's arrival flag.
	SetPassengerArrived(ctx context.Context, rideID, userID string, arrived bool) error
}
