package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const driverPositionKey = "rides:driver_positions"

// DriverPosition represents the live position of the driver of one ride.
type DriverPosition struct {
	RideID string
	Lat    float64
	Lng    float64
}

// LocationStore handles live driver positions in Redis, one geo entry per
// ride.
type LocationStore struct {
	client *redis.Client
}

// NewLocationStore creates a new LocationStore.
func NewLocationStore(client *redis.Client) *LocationStore {
	return &LocationStore{client: client}
}

// UpdatePosition stores the driver position for a ride using GEOADD.
func (s *LocationStore) UpdatePosition(ctx context.Context, rideID string, lat, lng float64) error {
	return s.client.GeoAdd(ctx, driverPositionKey, &redis.GeoLocation{
		Name:      rideID,
		Longitude: lng,
		Latitude:  lat,
	}).Err()
}

// GetPosition returns the stored driver position for a ride.
// Returns (nil, nil) when no position has been reported yet.
func (s *LocationStore) GetPosition(ctx context.Context, rideID string) (*DriverPosition, error) {
	positions, err := s.client.GeoPos(ctx, driverPositionKey, rideID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read driver position: %w", err)
	}

	if len(positions) == 0 || positions[0] == nil {
		return nil, nil
	}

	return &DriverPosition{
		RideID: rideID,
		Lat:    positions[0].Latitude,
		Lng:    positions[0].Longitude,
	}, nil
}

// RemovePosition removes a ride's driver position from the geo index.
func (s *LocationStore) RemovePosition(ctx context.Context, rideID string) error {
	return s.client.ZRem(ctx, driverPositionKey, rideID).Err()
}
