package tests

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"ridepool/internal/domain"
	"ridepool/internal/redis"
	"ridepool/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK PROFILE REPOSITORY
// ──────────────────────────────────────────────

// MockProfileRepository is a mock implementation of ProfileRepository.
type MockProfileRepository struct {
	mu       sync.RWMutex
	profiles map[string]*domain.InterestProfile
	order    []string

	// Counters for verification
	UpsertCallCount int32

	// Error injection
	UpsertError error
	GetAllError error
}

// NewMockProfileRepository creates a new mock profile repository.
func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{
		profiles: make(map[string]*domain.InterestProfile),
	}
}

// AddProfile adds a profile to the mock repository.
func (m *MockProfileRepository) AddProfile(profile *domain.InterestProfile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.profiles[profile.UserID]; !ok {
		m.order = append(m.order, profile.UserID)
	}
	m.profiles[profile.UserID] = profile
}

func (m *MockProfileRepository) Upsert(ctx context.Context, profile *domain.InterestProfile) error {
	atomic.AddInt32(&m.UpsertCallCount, 1)
	if m.UpsertError != nil {
		return m.UpsertError
	}
	m.AddProfile(profile)
	return nil
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.InterestProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	profile, ok := m.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return profile, nil
}

func (m *MockProfileRepository) GetAll(ctx context.Context) ([]*domain.InterestProfile, error) {
	if m.GetAllError != nil {
		return nil, m.GetAllError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.InterestProfile, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.profiles[id])
	}
	return out, nil
}

func (m *MockProfileRepository) GetAllExcept(ctx context.Context, userID string) ([]*domain.InterestProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.InterestProfile, 0, len(m.order))
	for _, id := range m.order {
		if id == userID {
			continue
		}
		out = append(out, m.profiles[id])
	}
	return out, nil
}

// ──────────────────────────────────────────────
// MOCK MATCH REPOSITORY
// ──────────────────────────────────────────────

// MockMatchRepository is a mock implementation of MatchRepository.
type MockMatchRepository struct {
	mu      sync.RWMutex
	results map[string]*domain.MatchResult

	// Counters for verification
	ReplaceCallCount int32

	// Error injection
	ReplaceError error
}

// NewMockMatchRepository creates a new mock match repository.
func NewMockMatchRepository() *MockMatchRepository {
	return &MockMatchRepository{
		results: make(map[string]*domain.MatchResult),
	}
}

func (m *MockMatchRepository) Replace(ctx context.Context, result *domain.MatchResult) error {
	atomic.AddInt32(&m.ReplaceCallCount, 1)
	if m.ReplaceError != nil {
		return m.ReplaceError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[result.UserID] = result
	return nil
}

func (m *MockMatchRepository) GetByUserID(ctx context.Context, userID string) (*domain.MatchResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result, ok := m.results[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return result, nil
}

// ──────────────────────────────────────────────
// MOCK RIDE REPOSITORY
// ──────────────────────────────────────────────

type passengerKey struct {
	rideID string
	userID string
}

// MockRideRepository is a mock implementation of RideRepository.
type MockRideRepository struct {
	mu         sync.RWMutex
	rides      map[string]*domain.Ride
	passengers map[passengerKey]*domain.Passenger
	joinOrder  []passengerKey

	// Counters for verification
	CreateCallCount       int32
	AddPassengerCallCount int32

	// Error injection
	CreateError       error
	AddPassengerError error
}

// NewMockRideRepository creates a new mock ride repository.
func NewMockRideRepository() *MockRideRepository {
	return &MockRideRepository{
		rides:      make(map[string]*domain.Ride),
		passengers: make(map[passengerKey]*domain.Passenger),
	}
}

// AddRide adds a ride to the mock repository.
func (m *MockRideRepository) AddRide(ride *domain.Ride) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rides[ride.ID] = ride
}

func (m *MockRideRepository) Create(ctx context.Context, ride *domain.Ride) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.AddRide(ride)
	return nil
}

func (m *MockRideRepository) GetByID(ctx context.Context, id string) (*domain.Ride, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ride, ok := m.rides[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return ride, nil
}

func (m *MockRideRepository) GetAvailable(ctx context.Context, sector string) ([]*domain.Ride, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Ride
	for _, ride := range m.rides {
		if ride.Status != domain.RideStatusOpen {
			continue
		}
		if sector != "" && ride.Sector != sector {
			continue
		}
		out = append(out, ride)
	}
	return out, nil
}

func (m *MockRideRepository) UpdateStatus(ctx context.Context, id string, status domain.RideStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ride, ok := m.rides[id]
	if !ok {
		return repository.ErrNotFound
	}
	ride.Status = status
	return nil
}

func (m *MockRideRepository) AddPassenger(ctx context.Context, passenger *domain.Passenger) error {
	atomic.AddInt32(&m.AddPassengerCallCount, 1)
	if m.AddPassengerError != nil {
		return m.AddPassengerError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := passengerKey{rideID: passenger.RideID, userID: passenger.UserID}
	if _, ok := m.passengers[key]; !ok {
		m.joinOrder = append(m.joinOrder, key)
	}
	m.passengers[key] = passenger
	return nil
}

func (m *MockRideRepository) GetPassengers(ctx context.Context, rideID string) ([]*domain.Passenger, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Passenger, 0)
	for _, key := range m.joinOrder {
		if key.rideID == rideID {
			out = append(out, m.passengers[key])
		}
	}
	return out, nil
}

func (m *MockRideRepository) GetPassenger(ctx context.Context, rideID, userID string) (*domain.Passenger, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	passenger, ok := m.passengers[passengerKey{rideID: rideID, userID: userID}]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return passenger, nil
}

func (m *MockRideRepository) SetPassengerArrived(ctx context.Context, rideID, userID string, arrived bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	passenger, ok := m.passengers[passengerKey{rideID: rideID, userID: userID}]
	if !ok {
		return repository.ErrNotFound
	}
	passenger.HasArrived = arrived
	return nil
}

// ──────────────────────────────────────────────
// MOCK USER REPOSITORY
// ──────────────────────────────────────────────

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

// NewMockUserRepository creates a new mock user repository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*domain.User),
	}
}

// AddUser adds a user to the mock repository.
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	m.AddUser(user)
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, user := range m.users {
		if user.Phone == phone {
			return user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.User, 0, len(m.users))
	for _, user := range m.users {
		out = append(out, user)
	}
	return out, nil
}

// ──────────────────────────────────────────────
// MOCK LOCATION STORE
// ──────────────────────────────────────────────

// MockLocationStore is a mock implementation of LocationStoreInterface.
type MockLocationStore struct {
	mu        sync.RWMutex
	positions map[string]*redis.DriverPosition

	// Error injection
	UpdateError error
}

// NewMockLocationStore creates a new mock location store.
func NewMockLocationStore() *MockLocationStore {
	return &MockLocationStore{
		positions: make(map[string]*redis.DriverPosition),
	}
}

func (m *MockLocationStore) UpdatePosition(ctx context.Context, rideID string, lat, lng float64) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.positions[rideID] = &redis.DriverPosition{RideID: rideID, Lat: lat, Lng: lng}
	return nil
}

func (m *MockLocationStore) GetPosition(ctx context.Context, rideID string) (*redis.DriverPosition, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.positions[rideID], nil
}

func (m *MockLocationStore) RemovePosition(ctx context.Context, rideID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.positions, rideID)
	return nil
}

// ──────────────────────────────────────────────
// MOCK LOCK STORE
// ──────────────────────────────────────────────

// MockLockStore is a mock implementation of LockStoreInterface.
type MockLockStore struct {
	mu    sync.Mutex
	locks map[string]time.Time

	// Counters for verification
	AcquireCallCount int32
	ReleaseCallCount int32

	// Error injection
	AcquireError error
}

// NewMockLockStore creates a new mock lock store.
func NewMockLockStore() *MockLockStore {
	return &MockLockStore{
		locks: make(map[string]time.Time),
	}
}

func (m *MockLockStore) AcquireRideLock(ctx context.Context, rideID string, ttl time.Duration) (bool, error) {
	atomic.AddInt32(&m.AcquireCallCount, 1)
	if m.AcquireError != nil {
		return false, m.AcquireError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if expiry, ok := m.locks[rideID]; ok && time.Now().Before(expiry) {
		return false, nil
	}
	m.locks[rideID] = time.Now().Add(ttl)
	return true, nil
}

func (m *MockLockStore) ReleaseRideLock(ctx context.Context, rideID string) error {
	atomic.AddInt32(&m.ReleaseCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, rideID)
	return nil
}

// Compile-time interface checks.
var (
	_ repository.ProfileRepository = (*MockProfileRepository)(nil)
	_ repository.MatchRepository   = (*MockMatchRepository)(nil)
	_ repository.RideRepository    = (*MockRideRepository)(nil)
	_ repository.UserRepository    = (*MockUserRepository)(nil)
	_ redis.LocationStoreInterface = (*MockLocationStore)(nil)
	_ redis.LockStoreInterface     = (*MockLockStore)(nil)
)
