package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"ridepool/internal/domain"
)

// CacheStore handles entity caching in Redis.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// MatchCacheTTL bounds how long a cached match list is served before the
// next read falls through to Postgres. Recomputation invalidates eagerly,
// so the TTL only covers writers that bypass this process.
const MatchCacheTTL = 5 * time.Minute

func matchKey(userID string) string {
	return fmt.Sprintf("cache:matches:%s", userID)
}

// GetMatches returns the cached match list for a user, or (nil, nil) on a
// cache miss.
func (s *CacheStore) GetMatches(ctx context.Context, userID string) ([]domain.MatchEntry, error) {
	data, err := s.client.Get(ctx, matchKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []domain.MatchEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode cached matches: %w", err)
	}

	return entries, nil
}

// SetMatches caches the match list for a user.
func (s *CacheStore) SetMatches(ctx context.Context, userID string, entries []domain.MatchEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode matches for cache: %w", err)
	}

	return s.client.Set(ctx, matchKey(userID), data, MatchCacheTTL).Err()
}

// InvalidateMatches removes a user's cached match list.
func (s *CacheStore) InvalidateMatches(ctx context.Context, userID string) error {
	return s.client.Del(ctx, matchKey(userID)).Err()
}
