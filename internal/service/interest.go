package service

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"ridepool/internal/domain"
	"ridepool/internal/nlp"
	"ridepool/internal/redis"
	"ridepool/internal/repository"
)

// InterestService turns hobby descriptions into interest profiles and
// ranks companion candidates by keyword similarity.
type InterestService struct {
	profileRepo         repository.ProfileRepository
	matchRepo           repository.MatchRepository
	cacheStore          *redis.CacheStore
	notificationService *NotificationService
}

// NewInterestService creates a new InterestService. cacheStore may be nil
// to disable the Redis match cache.
func NewInterestService(
	profileRepo repository.ProfileRepository,
	matchRepo repository.MatchRepository,
	cacheStore *redis.CacheStore,
	notificationService *NotificationService,
) *InterestService {
	return &InterestService{
		profileRepo:         profileRepo,
		matchRepo:           matchRepo,
		cacheStore:          cacheStore,
		notificationService: notificationService,
	}
}

// StoreHobbies extracts keywords from a user's description, persists the
// profile, and recomputes the user's match list. It returns the extracted
// keyword list. Empty text is not an error: it stores an empty profile.
func (s *InterestService) StoreHobbies(ctx context.Context, userID, text string) ([]string, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	keywords := nlp.ExtractKeywords(text)

	profile := &domain.InterestProfile{
		UserID:     userID,
		RawText:    text,
		Keywords:   keywords,
		Categories: nlp.Categorize(keywords),
		UpdatedAt:  time.Now().UTC(),
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	// The stored match list is derived data: recompute it whenever the
	// profile changes.
	if _, err := s.ComputeMatches(ctx, userID); err != nil {
		return nil, err
	}

	return keywords, nil
}

// ComputeMatches recomputes and persists the ranked match list for one
// user against every other stored profile. A user without stored keywords
// gets an empty result without error. Note the persistence is
// intentionally asymmetric: only this user's stored list is replaced,
// even though similarity itself is symmetric.
func (s *InterestService) ComputeMatches(ctx context.Context, userID string) ([]domain.MatchEntry, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.invalidateCache(ctx, userID)
			return []domain.MatchEntry{}, nil
		}
		return nil, err
	}
	if len(profile.Keywords) == 0 {
		// An earlier profile may still be cached; drop it so reads do
		// not serve matches for keywords the user no longer has.
		s.invalidateCache(ctx, userID)
		return []domain.MatchEntry{}, nil
	}

	// Load every candidate keyword set up front and score in one tight
	// loop rather than fetching per candidate.
	candidates, err := s.profileRepo.GetAllExcept(ctx, userID)
	if err != nil {
		return nil, err
	}

	own := toSet(profile.Keywords)

	entries := make([]domain.MatchEntry, 0, len(candidates))
	for _, cand := range candidates {
		if len(cand.Keywords) == 0 {
			continue
		}

		score, shared := jaccard(own, cand.Keywords)
		entries = append(entries, domain.MatchEntry{
			UserID: cand.UserID,
			Score:  score,
			Shared: shared,
		})
	}

	// Stable sort keeps scan order among equal scores.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	if len(entries) > domain.MaxMatchEntries {
		entries = entries[:domain.MaxMatchEntries]
	}

	result := &domain.MatchResult{
		UserID:    userID,
		Entries:   entries,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.matchRepo.Replace(ctx, result); err != nil {
		return nil, err
	}

	if s.cacheStore != nil {
		if err := s.cacheStore.SetMatches(ctx, userID, entries); err != nil {
			// Cache failures never fail the computation.
			log.Printf("failed to cache matches for user %s: %v", userID, err)
		}
	}

	return entries, nil
}

// GetBestMatches returns the stored ranked match list for a user,
// computing it lazily on the first read. A user with no profile gets an
// empty list without error.
func (s *InterestService) GetBestMatches(ctx context.Context, userID string) ([]domain.MatchEntry, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	// A cached or stored empty list is never served as-is: it may simply
	// predate other users' profiles, so an empty read recomputes instead.
	if s.cacheStore != nil {
		entries, err := s.cacheStore.GetMatches(ctx, userID)
		if err == nil && len(entries) > 0 {
			return entries, nil
		}
	}

	result, err := s.matchRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return s.ComputeMatches(ctx, userID)
		}
		return nil, err
	}

	if len(result.Entries) == 0 {
		return s.ComputeMatches(ctx, userID)
	}

	if s.cacheStore != nil {
		if err := s.cacheStore.SetMatches(ctx, userID, result.Entries); err != nil {
			log.Printf("failed to cache matches for user %s: %v", userID, err)
		}
	}

	return result.Entries, nil
}

// RefreshAllProfiles re-extracts keywords for every stored profile and
// recomputes each user's match list. A failure for one user is logged and
// skipped; the refresh continues with the remaining users. It returns the
// number of profiles refreshed.
func (s *InterestService) RefreshAllProfiles(ctx context.Context) (int, error) {
	profiles, err := s.profileRepo.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	refreshed := 0
	for _, profile := range profiles {
		if profile.UserID == "" || profile.RawText == "" {
			continue
		}

		keywords := nlp.ExtractKeywords(profile.RawText)
		updated := &domain.InterestProfile{
			UserID:     profile.UserID,
			RawText:    profile.RawText,
			Keywords:   keywords,
			Categories: nlp.Categorize(keywords),
			UpdatedAt:  time.Now().UTC(),
		}

		if err := s.profileRepo.Upsert(ctx, updated); err != nil {
			log.Printf("interest refresh: failed to update profile for user %s: %v", profile.UserID, err)
			continue
		}
		if _, err := s.ComputeMatches(ctx, profile.UserID); err != nil {
			log.Printf("interest refresh: failed to recompute matches for user %s: %v", profile.UserID, err)
			continue
		}
		if s.notificationService != nil {
			_ = s.notificationService.NotifyMatchesRefreshed(ctx, profile.UserID)
		}
		refreshed++
	}

	return refreshed, nil
}

func (s *InterestService) invalidateCache(ctx context.Context, userID string) {
	if s.cacheStore == nil {
		return
	}
	if err := s.cacheStore.InvalidateMatches(ctx, userID); err != nil {
		log.Printf("failed to invalidate cached matches for user %s: %v", userID, err)
	}
}

// jaccard returns the Jaccard similarity between the indexed keyword set
// and a candidate keyword list, along with the shared keywords in the
// candidate's order. An empty union scores 0.
func jaccard(own map[string]struct{}, candidate []string) (float64, []string) {
	union := len(own)
	var shared []string

	seen := make(map[string]struct{}, len(candidate))
	for _, kw := range candidate {
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}

		if _, ok := own[kw]; ok {
			shared = append(shared, kw)
		} else {
			union++
		}
	}

	if union == 0 {
		return 0, nil
	}

	return float64(len(shared)) / float64(union), shared
}

func toSet(keywords []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		set[kw] = struct{}{}
	}
	return set
}
