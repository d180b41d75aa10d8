package service

import (
	"context"

	"ridepool/internal/geo"
	"ridepool/internal/redis"
	"ridepool/internal/repository"
)

// DriverService tracks the live position of a ride's driver and reports
// status to waiting passengers.
type DriverService struct {
	locationStore redis.LocationStoreInterface
	rideRepo      repository.RideRepository
	routeService  *RouteService
}

// NewDriverService creates a new DriverService.
func NewDriverService(
	locationStore redis.LocationStoreInterface,
	rideRepo repository.RideRepository,
	routeService *RouteService,
) *DriverService {
	return &DriverService{
		locationStore: locationStore,
		rideRepo:      rideRepo,
		routeService:  routeService,
	}
}

// UpdatePosition stores the driver's live position for a ride. The
// coordinate map may use either key convention.
func (s *DriverService) UpdatePosition(ctx context.Context, rideID string, coords map[string]float64) error {
	if rideID == "" {
		return ErrInvalidRideID
	}

	point, err := geo.ParsePoint(coords)
	if err != nil {
		return ErrInvalidLocation
	}

	if _, err := s.rideRepo.GetByID(ctx, rideID); err != nil {
		return err
	}

	return s.locationStore.UpdatePosition(ctx, rideID, point.Lat, point.Lng)
}

// DriverStatus is the live driver state for a ride.
type DriverStatus struct {
	Position   *geo.Point
	EtaMinutes *int // nil means ETA unavailable
}

// GetStatus returns the driver's last known position and the estimated
// minutes to the ride pickup point. Position and ETA are nil until the
// driver has reported a location.
func (s *DriverService) GetStatus(ctx context.Context, rideID string) (*DriverStatus, error) {
	if rideID == "" {
		return nil, ErrInvalidRideID
	}

	ride, err := s.rideRepo.GetByID(ctx, rideID)
	if err != nil {
		return nil, err
	}

	pos, err := s.locationStore.GetPosition(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if pos == nil {
		return &DriverStatus{}, nil
	}

	point := geo.Point{Lat: pos.Lat, Lng: pos.Lng}
	eta := s.routeService.EtaMinutes(
		map[string]float64{"lat": point.Lat, "lng": point.Lng},
		map[string]float64{"lat": ride.Pickup.Lat, "lng": ride.Pickup.Lng},
	)

	return &DriverStatus{Position: &point, EtaMinutes: eta}, nil
}

// ClearPosition removes the driver position for a ride once it completes.
func (s *DriverService) ClearPosition(ctx context.Context, rideID string) error {
	if rideID == "" {
		return ErrInvalidRideID
	}
	return s.locationStore.RemovePosition(ctx, rideID)
}
