package domain

import "time"

// InterestProfile holds the extracted interest data for one user.
// Keywords is the extracted token set (including appended category names);
// Categories is always derived from Keywords against the static taxonomy
// and is never edited independently.
type InterestProfile struct {
	UserID     string
	RawText    string
	Keywords   []string
	Categories []string
	UpdatedAt  time.Time
}

// MatchEntry is one ranked candidate in a user's stored match list.
type MatchEntry struct {
	UserID string   `json:"user_id"`
	Score  float64  `json:"score"`
	Shared []string `json:"shared"`
}

// MatchResult is the stored top-K match list for one user. Entries are
// sorted by score descending and the list holds at most MaxMatchEntries.
// The record is recomputed wholesale, never patched incrementally.
type MatchResult struct {
	UserID    string
	Entries   []MatchEntry
	UpdatedAt time.Time
}

// MaxMatchEntries bounds the stored match list per user.
const MaxMatchEntries = 50
