package domain

import (
	"time"

	"ridepool/internal/geo"
)

// RideStatus represents the current status of a pooled ride.
type RideStatus string

const (
	RideStatusOpen      RideStatus = "OPEN"
	RideStatusStarted   RideStatus = "STARTED"
	RideStatusCompleted RideStatus = "COMPLETED"
	RideStatusCancelled RideStatus = "CANCELLED"
)

// Ride represents a pooled ride created by one user and joined by others.
type Ride struct {
	ID         string
	CreatorID  string
	Pickup     geo.Point
	Dropoff    geo.Point
	Sector     string // classified from the pickup point at creation
	SeatsTotal int
	Status     RideStatus
	CreatedAt  time.Time
}

// Passenger represents a user who joined a ride, with their own pickup point.
type Passenger struct {
	RideID     string
	UserID     string
	Pickup     geo.Point
	SeatCount  int
	HasArrived bool
}

// SeatsTaken returns the total seats consumed by the given passenger list.
func SeatsTaken(passengers []*Passenger) int {
	total := 0
	for _, p := range passengers {
		total += p.SeatCount
	}
	return total
}
