package postgres

import (
	"context"
	"database/sql"
	"errors"

	"ridepool/internal/domain"
	"ridepool/internal/repository"
)

// RideRepository is a PostgreSQL implementation of repository.RideRepository.
type RideRepository struct {
	q Querier
}

// NewRideRepository creates a new PostgreSQL ride repository.
func NewRideRepository(db *sql.DB) *RideRepository {
	return &RideRepository{q: db}
}

// NewRideRepositoryWithTx creates a ride repository using a transaction.
func NewRideRepositoryWithTx(tx *sql.Tx) *RideRepository {
	return &RideRepository{q: tx}
}

// Create persists a new ride.
func (r *RideRepository) Create(ctx context.Context, ride *domain.Ride) error {
	query := `
		INSERT INTO rides (id, creator_id, pickup_lat, pickup_lng, dropoff_lat, dropoff_lng, sector, seats_total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.q.ExecContext(ctx, query,
		ride.ID,
		ride.CreatorID,
		ride.Pickup.Lat,
		ride.Pickup.Lng,
		ride.Dropoff.Lat,
		ride.Dropoff.Lng,
		ride.Sector,
		ride.SeatsTotal,
		ride.Status,
		ride.CreatedAt,
	)

	return err
}

// GetByID retrieves a ride by ID.
func (r *RideRepository) GetByID(ctx context.Context, id string) (*domain.Ride, error) {
	query := `
		SELECT id, creator_id, pickup_lat, pickup_lng, dropoff_lat, dropoff_lng, sector, seats_total, status, created_at
		FROM rides WHERE id = $1
	`

	var ride domain.Ride
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&ride.ID,
		&ride.CreatorID,
		&ride.Pickup.Lat,
		&ride.Pickup.Lng,
		&ride.Dropoff.Lat,
		&ride.Dropoff.Lng,
		&ride.Sector,
		&ride.SeatsTotal,
		&ride.Status,
		&ride.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &ride, nil
}

// GetAvailable retrieves open rides, newest first, optionally filtered by
// sector.
func (r *RideRepository) GetAvailable(ctx context.Context, sector string) ([]*domain.Ride, error) {
	query := `
		SELECT id, creator_id, pickup_lat, pickup_lng, dropoff_lat, dropoff_lng, sector, seats_total, status, created_at
		FROM rides WHERE status = $1
	`
	args := []any{domain.RideStatusOpen}

	if sector != "" {
		query += ` AND sector = $2`
		args = append(args, sector)
	}
	query += ` ORDER BY created_at DESC LIMIT 100`

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rides []*domain.Ride
	for rows.Next() {
		var ride domain.Ride
		if err := rows.Scan(
			&ride.ID,
			&ride.CreatorID,
			&ride.Pickup.Lat,
			&ride.Pickup.Lng,
			&ride.Dropoff.Lat,
			&ride.Dropoff.Lng,
			&ride.Sector,
			&ride.SeatsTotal,
			&ride.Status,
			&ride.CreatedAt,
		); err != nil {
			return nil, err
		}
		rides = append(rides, &ride)
	}
	return rides, rows.Err()
}

// UpdateStatus updates the status of a ride.
func (r *RideRepository) UpdateStatus(ctx context.Context, id string, status domain.RideStatus) error {
	query := `UPDATE rides SET status = $1 WHERE id = $2`

	result, err := r.q.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// AddPassenger adds a passenger to a ride.
func (r *RideRepository) AddPassenger(ctx context.Context, passenger *domain.Passenger) error {
	query := `
		INSERT INTO ride_passengers (ride_id, user_id, pickup_lat, pickup_lng, seat_count, has_arrived)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.q.ExecContext(ctx, query,
		passenger.RideID,
		passenger.UserID,
		passenger.Pickup.Lat,
		passenger.Pickup.Lng,
		passenger.SeatCount,
		passenger.HasArrived,
	)

	return err
}

// GetPassengers retrieves all passengers for a ride in join order.
// joined_at defaults to now() at insert and is only read for ordering.
func (r *RideRepository) GetPassengers(ctx context.Context, rideID string) ([]*domain.Passenger, error) {
	query := `
		SELECT ride_id, user_id, pickup_lat, pickup_lng, seat_count, has_arrived
		FROM ride_passengers WHERE ride_id = $1 ORDER BY joined_at
	`

	rows, err := r.q.QueryContext(ctx, query, rideID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var passengers []*domain.Passenger
	for rows.Next() {
		var p domain.Passenger
		if err := rows.Scan(
			&p.RideID,
			&p.UserID,
			&p.Pickup.Lat,
			&p.Pickup.Lng,
			&p.SeatCount,
			&p.HasArrived,
		); err != nil {
			return nil, err
		}
		passengers = append(passengers, &p)
	}
	return passengers, rows.Err()
}

// GetPassenger retrieves one passenger of a ride.
func (r *RideRepository) GetPassenger(ctx context.Context, rideID, userID string) (*domain.Passenger, error) {
	query := `
		SELECT ride_id, user_id, pickup_lat, pickup_lng, seat_count, has_arrived
		FROM ride_passengers WHERE ride_id = $1 AND user_id = $2
	`

	var p domain.Passenger
	err := r.q.QueryRowContext(ctx, query, rideID, userID).Scan(
		&p.RideID,
		&p.UserID,
		&p.Pickup.Lat,
		&p.Pickup.Lng,
		&p.SeatCount,
		&p.HasArrived,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &p, nil
}

// SetPassengerArrived updates a passenger's arrival flag.
func (r *RideRepository) SetPassengerArrived(ctx context.Context, rideID, userID string, arrived bool) error {
	query := `UPDATE ride_passengers SET has_arrived = $1 WHERE ride_id = $2 AND user_id = $3`

	result, err := r.q.ExecContext(ctx, query, arrived, rideID, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
