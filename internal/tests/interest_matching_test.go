package tests

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"ridepool/internal/domain"
	"ridepool/internal/repository"
	"ridepool/internal/service"
)

func newInterestService(profileRepo *MockProfileRepository, matchRepo *MockMatchRepository) *service.InterestService {
	return service.NewInterestService(profileRepo, matchRepo, nil, service.NewNotificationService())
}

func addProfile(repo *MockProfileRepository, userID string, keywords ...string) {
	repo.AddProfile(&domain.InterestProfile{
		UserID:    userID,
		RawText:   "seeded",
		Keywords:  keywords,
		UpdatedAt: time.Now(),
	})
}

func TestInterestMatching_JaccardScore(t *testing.T) {
	ctx := context.Background()

	profileRepo := NewMockProfileRepository()
	matchRepo := NewMockMatchRepository()
	svc := newInterestService(profileRepo, matchRepo)

	// |{reading, hiking}| / |{chess, reading, hiking, camping}| = 0.5
	addProfile(profileRepo, "user-a", "chess", "reading", "hiking")
	addProfile(profileRepo, "user-b", "hiking", "camping", "reading")

	entries, err := svc.ComputeMatches(ctx, "user-a")
	if err != nil {
		t.Fatalf("failed to compute matches: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].UserID != "user-b" {
		t.Errorf("expected user-b, got %s", entries[0].UserID)
	}
	if entries[0].Score != 0.5 {
		t.Errorf("expected score 0.5, got %f", entries[0].Score)
	}
	if len(entries[0].Shared) != 2 {
		t.Errorf("expected 2 shared keywords, got %v", entries[0].Shared)
	}
}

func TestInterestMatching_OrderedByScoreDescending(t *testing.T) {
	ctx := context.Background()

	profileRepo := NewMockProfileRepository()
	matchRepo := NewMockMatchRepository()
	svc := newInterestService(profileRepo, matchRepo)

	addProfile(profileRepo, "user-a", "chess", "reading", "hiking")
	addProfile(profileRepo, "user-low", "chess", "swimming", "pottery", "guitar")
	addProfile(profileRepo, "user-high", "chess", "reading", "hiking")
	addProfile(profileRepo, "user-none", "swimming", "pottery")

	entries, err := svc.ComputeMatches(ctx, "user-a")
	if err != nil {
		t.Fatalf("failed to compute matches: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].UserID != "user-high" {
		t.Errorf("expected user-high first, got %s", entries[0].UserID)
	}
	if entries[0].Score != 1.0 {
		t.Errorf("expected score 1.0, got %f", entries[0].Score)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Score > entries[i-1].Score {
			t.Errorf("entries not in descending order at %d: %f > %f", i, entries[i].Score, entries[i-1].Score)
		}
	}
	// Zero-score candidates stay in the list; only keyword-less ones are
	// skipped.
	if entries[2].UserID != "user-none" || entries[2].Score != 0 {
		t.Errorf("expected user-none last with score 0, got %s score %f", entries[2].UserID, entries[2].Score)
	}
}

func TestInterestMatching_SkipsCandidatesWithoutKeywords(t *testing.T) {
	ctx := context.Background()

	profileRepo := NewMockProfileRepository()
	matchRepo := NewMockMatchRepository()
	svc := newInterestService(profileRepo, matchRepo)

	addProfile(profileRepo, "user-a", "chess")
	addProfile(profileRepo, "user-empty")

	entries, err := svc.ComputeMatches(ctx, "user-a")
	if err != nil {
		t.Fatalf("failed to compute matches: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestInterestMatching_EmptyOwnKeywordsSkipsPersistence(t *testing.T) {
	ctx := context.Background()

	profileRepo := NewMockProfileRepository()
	matchRepo := NewMockMatchRepository()
	svc := newInterestService(profileRepo, matchRepo)

	addProfile(profileRepo, "user-a")
	addProfile(profileRepo, "user-b", "chess")

	entries, err := svc.ComputeMatches(ctx, "user-a")
	if err != nil {
		t.Fatalf("expected no error for empty keywords, got %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty result, got %d entries", len(entries))
	}
	if matchRepo.ReplaceCallCount != 0 {
		t.Errorf("expected no persistence for empty keywords, got %d calls", matchRepo.ReplaceCallCount)
	}
}

func TestInterestMatching_UnknownUserYieldsEmptyResult(t *testing.T) {
	ctx := context.Background()

	svc := newInterestService(NewMockProfileRepository(), NewMockMatchRepository())

	entries, err := svc.ComputeMatches(ctx, "ghost")
	if err != nil {
		t.Fatalf("expected no error for unknown user, got %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty result, got %d entries", len(entries))
	}
}

func TestInterestMatching_TruncatesToTopFifty(t *testing.T) {
	ctx := context.Background()

	profileRepo := NewMockProfileRepository()
	matchRepo := NewMockMatchRepository()
	svc := newInterestService(profileRepo, matchRepo)

	addProfile(profileRepo, "user-a", "chess")
	for i := 0; i < 60; i++ {
		addProfile(profileRepo, fmt.Sprintf("user-%03d", i), "chess")
	}

	entries, err := svc.ComputeMatches(ctx, "user-a")
	if err != nil {
		t.Fatalf("failed to compute matches: %v", err)
	}
	if len(entries) != domain.MaxMatchEntries {
		t.Errorf("expected %d entries, got %d", domain.MaxMatchEntries, len(entries))
	}
}

func TestInterestMatching_ReplaceIsFullOverwrite(t *testing.T) {
	ctx := context.Background()

	profileRepo := NewMockProfileRepository()
	matchRepo := NewMockMatchRepository()
	svc := newInterestService(profileRepo, matchRepo)

	addProfile(profileRepo, "user-a", "chess")
	addProfile(profileRepo, "user-b", "chess")

	if _, err := svc.ComputeMatches(ctx, "user-a"); err != nil {
		t.Fatalf("first compute failed: %v", err)
	}

	addProfile(profileRepo, "user-c", "chess")
	if _, err := svc.ComputeMatches(ctx, "user-a"); err != nil {
		t.Fatalf("second compute failed: %v", err)
	}

	stored, err := matchRepo.GetByUserID(ctx, "user-a")
	if err != nil {
		t.Fatalf("failed to load stored matches: %v", err)
	}
	if len(stored.Entries) != 2 {
		t.Errorf("expected stored list replaced with 2 entries, got %d", len(stored.Entries))
	}
}

func TestInterestMatching_PersistenceIsAsymmetric(t *testing.T) {
	ctx := context.Background()

	profileRepo := NewMockProfileRepository()
	matchRepo := NewMockMatchRepository()
	svc := newInterestService(profileRepo, matchRepo)

	addProfile(profileRepo, "user-a", "chess")
	addProfile(profileRepo, "user-b", "chess")

	if _, err := svc.ComputeMatches(ctx, "user-a"); err != nil {
		t.Fatalf("failed to compute matches: %v", err)
	}

	// Only user-a's list was replaced; user-b has no stored result until
	// their own compute runs.
	if _, err := matchRepo.GetByUserID(ctx, "user-b"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound for user-b, got %v", err)
	}
}

func TestStoreHobbies_ExtractsAndRecomputes(t *testing.T) {
	ctx := context.Background()

	profileRepo := NewMockProfileRepository()
	matchRepo := NewMockMatchRepository()
	svc := newInterestService(profileRepo, matchRepo)

	keywords, err := svc.StoreHobbies(ctx, "user-a", "I love football and hiking")
	if err != nil {
		t.Fatalf("failed to store hobbies: %v", err)
	}

	found := map[string]bool{}
	for _, kw := range keywords {
		found[kw] = true
	}
	for _, want := range []string{"football", "hiking", "sports", "outdoor"} {
		if !found[want] {
			t.Errorf("expected keyword %q in %v", want, keywords)
		}
	}

	profile, err := profileRepo.GetByUserID(ctx, "user-a")
	if err != nil {
		t.Fatalf("profile not persisted: %v", err)
	}
	if profile.RawText != "I love football and hiking" {
		t.Errorf("raw text not stored: %q", profile.RawText)
	}
	if matchRepo.ReplaceCallCount != 1 {
		t.Errorf("expected eager match recompute, got %d Replace calls", matchRepo.ReplaceCallCount)
	}
}

func TestStoreHobbies_EmptyTextStoresEmptyProfile(t *testing.T) {
	ctx := context.Background()

	profileRepo := NewMockProfileRepository()
	svc := newInterestService(profileRepo, NewMockMatchRepository())

	keywords, err := svc.StoreHobbies(ctx, "user-a", "")
	if err != nil {
		t.Fatalf("expected no error for empty text, got %v", err)
	}
	if len(keywords) != 0 {
		t.Errorf("expected no keywords, got %v", keywords)
	}

	if _, err := profileRepo.GetByUserID(ctx, "user-a"); err != nil {
		t.Errorf("expected empty profile to be stored: %v", err)
	}
}

func TestGetBestMatches_ComputesLazilyOnFirstRead(t *testing.T) {
	ctx := context.Background()

	profileRepo := NewMockProfileRepository()
	matchRepo := NewMockMatchRepository()
	svc := newInterestService(profileRepo, matchRepo)

	addProfile(profileRepo, "user-a", "chess")
	addProfile(profileRepo, "user-b", "chess")

	entries, err := svc.GetBestMatches(ctx, "user-a")
	if err != nil {
		t.Fatalf("failed to get matches: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 lazily computed entry, got %d", len(entries))
	}
	if matchRepo.ReplaceCallCount != 1 {
		t.Errorf("expected lazy compute to persist, got %d Replace calls", matchRepo.ReplaceCallCount)
	}
}

func TestGetBestMatches_RecomputesStoredEmptyList(t *testing.T) {
	ctx := context.Background()

	profileRepo := NewMockProfileRepository()
	matchRepo := NewMockMatchRepository()
	svc := newInterestService(profileRepo, matchRepo)

	// user-a stored their hobbies while alone, leaving an empty list
	// behind; user-b registered afterwards.
	addProfile(profileRepo, "user-a", "chess")
	if err := matchRepo.Replace(ctx, &domain.MatchResult{
		UserID:    "user-a",
		Entries:   []domain.MatchEntry{},
		UpdatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("failed to seed empty result: %v", err)
	}
	addProfile(profileRepo, "user-b", "chess")

	entries, err := svc.GetBestMatches(ctx, "user-a")
	if err != nil {
		t.Fatalf("failed to get matches: %v", err)
	}
	if len(entries) != 1 || entries[0].UserID != "user-b" {
		t.Fatalf("expected stored empty list recomputed to [user-b], got %v", entries)
	}

	stored, err := matchRepo.GetByUserID(ctx, "user-a")
	if err != nil {
		t.Fatalf("failed to load stored matches: %v", err)
	}
	if len(stored.Entries) != 1 {
		t.Errorf("expected recompute persisted, got %d stored entries", len(stored.Entries))
	}
}

func TestGetBestMatches_InvalidUserID(t *testing.T) {
	svc := newInterestService(NewMockProfileRepository(), NewMockMatchRepository())

	if _, err := svc.GetBestMatches(context.Background(), ""); !errors.Is(err, service.ErrInvalidUserID) {
		t.Errorf("expected ErrInvalidUserID, got %v", err)
	}
}
