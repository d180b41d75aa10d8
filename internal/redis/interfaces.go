package redis

import (
	"context"
	"time"
)

// LocationStoreInterface defines the interface for driver position
// operations.
type LocationStoreInterface interface {
	UpdatePosition(ctx context.Context, rideID string, lat, lng float64) error
	GetPosition(ctx context.Context, rideID string) (*DriverPosition, error)
	RemovePosition(ctx context.Context, rideID string) error
}

// LockStoreInterface defines the interface for distributed locking.
type LockStoreInterface interface {
	AcquireRideLock(ctx context.Context, rideID string, ttl time.Duration) (bool, error)
	ReleaseRideLock(ctx context.Context, rideID string) error
}

// Ensure concrete types implement interfaces.
var (
	_ LocationStoreInterface = (*LocationStore)(nil)
	_ LockStoreInterface     = (*LockStore)(nil)
)
