package service

import "errors"

var (
	// ErrInvalidUserID is returned when a user ID is empty.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrInvalidRideID is returned when a ride ID is empty.
	ErrInvalidRideID = errors.New("invalid ride id")

	// ErrInvalidCreatorID is returned when a ride creator ID is empty.
	ErrInvalidCreatorID = errors.New("invalid creator id")

	// ErrInvalidPickupLocation is returned when pickup coordinates are invalid.
	ErrInvalidPickupLocation = errors.New("invalid pickup location")

	// ErrInvalidDropoffLocation is returned when dropoff coordinates are invalid.
	ErrInvalidDropoffLocation = errors.New("invalid dropoff location")

	// ErrInvalidLocation is returned when location coordinates are invalid.
	ErrInvalidLocation = errors.New("invalid location")

	// ErrInvalidSeatCount is returned when a seat count is not positive.
	ErrInvalidSeatCount = errors.New("invalid seat count")

	// ErrInvalidRideStatus is returned when a ride status value is unknown.
	ErrInvalidRideStatus = errors.New("invalid ride status")

	// ErrRideNotOpen is returned when joining a ride that is not open.
	ErrRideNotOpen = errors.New("ride not open for joining")

	// ErrAlreadyJoined is returned when a user has already joined the ride.
	ErrAlreadyJoined = errors.New("user already joined this ride")

	// ErrNotEnoughSeats is returned when a join would exceed ride capacity.
	ErrNotEnoughSeats = errors.New("not enough seats available")

	// ErrRideLocked is returned when another join for the same ride holds
	// the lock.
	ErrRideLocked = errors.New("ride is being modified, try again")
)
