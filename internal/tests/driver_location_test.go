package tests

import (
	"context"
	"errors"
	"testing"

	"ridepool/internal/geo"
	"ridepool/internal/repository"
	"ridepool/internal/service"
)

func newDriverService(rideRepo *MockRideRepository, locationStore *MockLocationStore) *service.DriverService {
	return service.NewDriverService(locationStore, rideRepo, service.NewRouteService(rideRepo))
}

func TestUpdatePosition_StoresDriverLocation(t *testing.T) {
	ctx := context.Background()

	rideRepo := NewMockRideRepository()
	locationStore := NewMockLocationStore()
	svc := newDriverService(rideRepo, locationStore)
	openRide(rideRepo, "ride-1", 4)

	err := svc.UpdatePosition(ctx, "ride-1", map[string]float64{"lat": 33.70, "lng": 73.06})
	if err != nil {
		t.Fatalf("failed to update position: %v", err)
	}

	pos, err := locationStore.GetPosition(ctx, "ride-1")
	if err != nil {
		t.Fatalf("failed to read position: %v", err)
	}
	if pos == nil || pos.Lat != 33.70 || pos.Lng != 73.06 {
		t.Errorf("position not stored: %+v", pos)
	}
}

func TestUpdatePosition_AcceptsLongKeyConvention(t *testing.T) {
	ctx := context.Background()

	rideRepo := NewMockRideRepository()
	locationStore := NewMockLocationStore()
	svc := newDriverService(rideRepo, locationStore)
	openRide(rideRepo, "ride-1", 4)

	err := svc.UpdatePosition(ctx, "ride-1", map[string]float64{"latitude": 33.70, "longitude": 73.06})
	if err != nil {
		t.Fatalf("failed to update position: %v", err)
	}
}

func TestUpdatePosition_MalformedCoordinates(t *testing.T) {
	ctx := context.Background()

	rideRepo := NewMockRideRepository()
	svc := newDriverService(rideRepo, NewMockLocationStore())
	openRide(rideRepo, "ride-1", 4)

	err := svc.UpdatePosition(ctx, "ride-1", map[string]float64{"lng": 73.06})
	if !errors.Is(err, service.ErrInvalidLocation) {
		t.Errorf("expected ErrInvalidLocation, got %v", err)
	}
}

func TestUpdatePosition_UnknownRide(t *testing.T) {
	svc := newDriverService(NewMockRideRepository(), NewMockLocationStore())

	err := svc.UpdatePosition(context.Background(), "ghost", map[string]float64{"lat": 1, "lng": 2})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetStatus_EmptyBeforeFirstReport(t *testing.T) {
	ctx := context.Background()

	rideRepo := NewMockRideRepository()
	svc := newDriverService(rideRepo, NewMockLocationStore())
	openRide(rideRepo, "ride-1", 4)

	status, err := svc.GetStatus(ctx, "ride-1")
	if err != nil {
		t.Fatalf("failed to get status: %v", err)
	}
	if status.Position != nil {
		t.Errorf("expected no position, got %+v", status.Position)
	}
	if status.EtaMinutes != nil {
		t.Errorf("expected no ETA, got %d", *status.EtaMinutes)
	}
}

func TestGetStatus_ReportsPositionAndEta(t *testing.T) {
	ctx := context.Background()

	rideRepo := NewMockRideRepository()
	locationStore := NewMockLocationStore()
	svc := newDriverService(rideRepo, locationStore)

	ride := openRide(rideRepo, "ride-1", 4)
	ride.Pickup = geo.Point{Lat: 0, Lng: 0}

	// One degree of longitude away: 111.19 km, 166 whole minutes at
	// 40 km/h.
	if err := svc.UpdatePosition(ctx, "ride-1", map[string]float64{"lat": 0, "lng": 1}); err != nil {
		t.Fatalf("failed to update position: %v", err)
	}

	status, err := svc.GetStatus(ctx, "ride-1")
	if err != nil {
		t.Fatalf("failed to get status: %v", err)
	}
	if status.Position == nil || status.Position.Lng != 1 {
		t.Fatalf("expected reported position, got %+v", status.Position)
	}
	if status.EtaMinutes == nil {
		t.Fatal("expected an ETA")
	}
	if *status.EtaMinutes != 166 {
		t.Errorf("expected 166 minutes, got %d", *status.EtaMinutes)
	}
}

func TestClearPosition_RemovesDriverLocation(t *testing.T) {
	ctx := context.Background()

	rideRepo := NewMockRideRepository()
	locationStore := NewMockLocationStore()
	svc := newDriverService(rideRepo, locationStore)
	openRide(rideRepo, "ride-1", 4)

	if err := svc.UpdatePosition(ctx, "ride-1", map[string]float64{"lat": 1, "lng": 2}); err != nil {
		t.Fatalf("failed to update position: %v", err)
	}
	if err := svc.ClearPosition(ctx, "ride-1"); err != nil {
		t.Fatalf("failed to clear position: %v", err)
	}

	pos, err := locationStore.GetPosition(ctx, "ride-1")
	if err != nil {
		t.Fatalf("failed to read position: %v", err)
	}
	if pos != nil {
		t.Errorf("expected position removed, got %+v", pos)
	}
}
