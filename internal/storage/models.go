package storage

import "time"

// Completion is one completed activity, recorded exactly once and never
// mutated. Seq preserves insertion order; ID is the public completion id.
type Completion struct {
	Seq          int64
	ID           string
	Title        string
	Category     string
	TimeRequired string
	EnergyLevel  string
	Resources    []string
	Indoor       bool
	Description  string
	Instructions []string
	AgeRange     string
	FunFact      string
	CompletedAt  time.Time
}

// JournalEntry is the per-completion journal record.
type JournalEntry struct {
	CompletionID string
	Rating       int
	Notes        string
	Stickers     []string
	UpdatedAt    time.Time
}

// OwnedItem is a purchased shop item.
type OwnedItem struct {
	ID          string
	PurchasedAt time.Time
}

// Pet is the single virtual pet row. Happiness is the value stored at
// LastFed time; current happiness is derived from elapsed time.
type Pet struct {
	Type      string
	Happiness float64
	LastFed   time.Time
	AdoptedAt time.Time
}
