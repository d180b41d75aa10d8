package service

import (
	"context"

	"ridepool/internal/domain"
	"ridepool/internal/geo"
	"ridepool/internal/repository"
)

// averageSpeedKmh is the assumed driving speed for ETA estimates.
const averageSpeedKmh = 40.0

// RouteService orders multi-passenger pickups and estimates arrival
// times.
type RouteService struct {
	rideRepo repository.RideRepository
}

// NewRouteService creates a new RouteService.
func NewRouteService(rideRepo repository.RideRepository) *RouteService {
	return &RouteService{rideRepo: rideRepo}
}

// OrderRoute returns the ride's passengers in greedy nearest-neighbor
// pickup order anchored at the start point: repeatedly visit the closest
// remaining pickup, ties going to the first-encountered minimum. This is
// a local-greedy approximation, not a shortest-tour solver. The result is
// recomputed on every call and nothing is persisted. An empty passenger
// list yields an empty sequence.
func (s *RouteService) OrderRoute(ctx context.Context, rideID string, start geo.Point) ([]*domain.Passenger, error) {
	if rideID == "" {
		return nil, ErrInvalidRideID
	}

	passengers, err := s.rideRepo.GetPassengers(ctx, rideID)
	if err != nil {
		return nil, err
	}

	return orderByNearest(passengers, start), nil
}

// orderByNearest performs the O(n²) greedy walk over the remaining set.
func orderByNearest(passengers []*domain.Passenger, start geo.Point) []*domain.Passenger {
	remaining := make([]*domain.Passenger, len(passengers))
	copy(remaining, passengers)

	ordered := make([]*domain.Passenger, 0, len(remaining))
	current := start

	for len(remaining) > 0 {
		nearest := 0
		nearestDist := geo.Distance(current, remaining[0].Pickup)
		for i := 1; i < len(remaining); i++ {
			if d := geo.Distance(current, remaining[i].Pickup); d < nearestDist {
				nearest = i
				nearestDist = d
			}
		}

		next := remaining[nearest]
		ordered = append(ordered, next)
		remaining = append(remaining[:nearest], remaining[nearest+1:]...)
		current = next.Pickup
	}

	return ordered
}

// EtaMinutes estimates the minutes to travel between two coordinate maps
// at the assumed average speed, truncated to whole minutes. Either point
// may use the {lat,lng} or {latitude,longitude} key convention. Malformed
// input yields nil rather than an error; callers must treat nil as "ETA
// unavailable", not as zero.
func (s *RouteService) EtaMinutes(current, destination map[string]float64) *int {
	from, err := geo.ParsePoint(current)
	if err != nil {
		return nil
	}
	to, err := geo.ParsePoint(destination)
	if err != nil {
		return nil
	}

	minutes := int(geo.Distance(from, to) / averageSpeedKmh * 60)
	return &minutes
}
