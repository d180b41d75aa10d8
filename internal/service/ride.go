package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"ridepool/internal/domain"
	"ridepool/internal/geo"
	"ridepool/internal/redis"
	"ridepool/internal/repository"
)

// joinLockTTL bounds how long a ride join lock can be held.
const joinLockTTL = 10 * time.Second

// RideService handles pooled ride operations.
type RideService struct {
	rideRepo            repository.RideRepository
	lockStore           redis.LockStoreInterface
	driverService       *DriverService
	notificationService *NotificationService
}

// NewRideService creates a new RideService. lockStore and driverService
// may be nil to disable join locking and driver-position cleanup.
func NewRideService(
	rideRepo repository.RideRepository,
	lockStore redis.LockStoreInterface,
	driverService *DriverService,
	notificationService *NotificationService,
) *RideService {
	return &RideService{
		rideRepo:            rideRepo,
		lockStore:           lockStore,
		driverService:       driverService,
		notificationService: notificationService,
	}
}

// CreateRideRequest contains the parameters for creating a ride.
type CreateRideRequest struct {
	CreatorID  string
	Pickup     geo.Point
	Dropoff    geo.Point
	SeatsTotal int
}

// CreateRide creates a new open ride with its pickup point classified
// into a sector for discovery.
func (s *RideService) CreateRide(ctx context.Context, req CreateRideRequest) (*domain.Ride, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, err
	}

	ride := &domain.Ride{
		ID:         uuid.New().String(),
		CreatorID:  req.CreatorID,
		Pickup:     req.Pickup,
		Dropoff:    req.Dropoff,
		Sector:     geo.ClassifySector(req.Pickup),
		SeatsTotal: req.SeatsTotal,
		Status:     domain.RideStatusOpen,
		CreatedAt:  time.Now(),
	}

	if err := s.rideRepo.Create(ctx, ride); err != nil {
		return nil, err
	}

	return ride, nil
}

// GetRide retrieves a ride by ID.
func (s *RideService) GetRide(ctx context.Context, rideID string) (*domain.Ride, error) {
	if rideID == "" {
		return nil, ErrInvalidRideID
	}
	return s.rideRepo.GetByID(ctx, rideID)
}

// GetAvailableRides lists open rides, optionally filtered by sector.
func (s *RideService) GetAvailableRides(ctx context.Context, sector string) ([]*domain.Ride, error) {
	return s.rideRepo.GetAvailable(ctx, sector)
}

// JoinRideRequest contains the parameters for joining a ride.
type JoinRideRequest struct {
	RideID    string
	UserID    string
	Pickup    geo.Point
	SeatCount int
}

// JoinRide adds a passenger to an open ride. The seat-capacity check and
// insert run under a short Redis lock so two concurrent joins cannot
// oversell seats.
func (s *RideService) JoinRide(ctx context.Context, req JoinRideRequest) (*domain.Passenger, error) {
	if req.RideID == "" {
		return nil, ErrInvalidRideID
	}
	if req.UserID == "" {
		return nil, ErrInvalidUserID
	}
	if req.SeatCount <= 0 {
		return nil, ErrInvalidSeatCount
	}

	if s.lockStore != nil {
		locked, err := s.lockStore.AcquireRideLock(ctx, req.RideID, joinLockTTL)
		if err != nil {
			return nil, err
		}
		if !locked {
			return nil, ErrRideLocked
		}
		defer func() {
			_ = s.lockStore.ReleaseRideLock(ctx, req.RideID)
		}()
	}

	ride, err := s.rideRepo.GetByID(ctx, req.RideID)
	if err != nil {
		return nil, err
	}
	if ride.Status != domain.RideStatusOpen {
		return nil, ErrRideNotOpen
	}

	if _, err := s.rideRepo.GetPassenger(ctx, req.RideID, req.UserID); err == nil {
		return nil, ErrAlreadyJoined
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	passengers, err := s.rideRepo.GetPassengers(ctx, req.RideID)
	if err != nil {
		return nil, err
	}
	if domain.SeatsTaken(passengers)+req.SeatCount > ride.SeatsTotal {
		return nil, ErrNotEnoughSeats
	}

	passenger := &domain.Passenger{
		RideID:    req.RideID,
		UserID:    req.UserID,
		Pickup:    req.Pickup,
		SeatCount: req.SeatCount,
	}
	if err := s.rideRepo.AddPassenger(ctx, passenger); err != nil {
		return nil, err
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyPassengerJoined(ctx, ride, req.UserID)
	}

	return passenger, nil
}

// SetArrival updates a passenger's arrival flag.
func (s *RideService) SetArrival(ctx context.Context, rideID, userID string, arrived bool) error {
	if rideID == "" {
		return ErrInvalidRideID
	}
	if userID == "" {
		return ErrInvalidUserID
	}
	if err := s.rideRepo.SetPassengerArrived(ctx, rideID, userID, arrived); err != nil {
		return err
	}

	if arrived && s.notificationService != nil {
		if ride, err := s.rideRepo.GetByID(ctx, rideID); err == nil {
			_ = s.notificationService.NotifyPassengerArrived(ctx, ride, userID)
		}
	}

	return nil
}

// UpdateStatus updates a ride's status.
func (s *RideService) UpdateStatus(ctx context.Context, rideID string, status domain.RideStatus) error {
	if rideID == "" {
		return ErrInvalidRideID
	}
	switch status {
	case domain.RideStatusOpen, domain.RideStatusStarted,
		domain.RideStatusCompleted, domain.RideStatusCancelled:
	default:
		return ErrInvalidRideStatus
	}
	if err := s.rideRepo.UpdateStatus(ctx, rideID, status); err != nil {
		return err
	}

	// A finished ride has no live driver position left to serve.
	if status == domain.RideStatusCompleted || status == domain.RideStatusCancelled {
		if s.driverService != nil {
			if err := s.driverService.ClearPosition(ctx, rideID); err != nil {
				log.Printf("failed to clear driver position for ride %s: %v", rideID, err)
			}
		}
	}

	return nil
}

func (s *RideService) validateCreateRequest(req CreateRideRequest) error {
	if req.CreatorID == "" {
		return ErrInvalidCreatorID
	}
	if req.Pickup.Lat < -90 || req.Pickup.Lat > 90 || req.Pickup.Lng < -180 || req.Pickup.Lng > 180 {
		return ErrInvalidPickupLocation
	}
	if req.Dropoff.Lat < -90 || req.Dropoff.Lat > 90 || req.Dropoff.Lng < -180 || req.Dropoff.Lng > 180 {
		return ErrInvalidDropoffLocation
	}
	if req.SeatsTotal <= 0 {
		return ErrInvalidSeatCount
	}
	return nil
}
