package engine

import (
	"math/rand"

	"kidquest/internal/storage"
)

type ChallengeType string

const (
	ChallengeDaily   ChallengeType = "daily"
	ChallengeWeekly  ChallengeType = "weekly"
	ChallengeSpecial ChallengeType = "special"
)

// RewardPoints is fixed per type, not per challenge.
func (t ChallengeType) RewardPoints() int {
	switch t {
	case ChallengeWeekly:
		return 200
	case ChallengeSpecial:
		return 100
	default:
		return 50
	}
}

func (t ChallengeType) Label() string {
	switch t {
	case ChallengeWeekly:
		return "Weekly Quest"
	case ChallengeSpecial:
		return "Special Event"
	default:
		return "Daily Challenge"
	}
}

func (t ChallengeType) Icon() string {
	switch t {
	case ChallengeWeekly:
		return "🎯"
	case ChallengeSpecial:
		return "🌟"
	default:
		return "📅"
	}
}

// ChallengeDefinition is a static catalog entry. Category "any" counts every
// completion; otherwise completions whose category matches the keyword.
type ChallengeDefinition struct {
	ID          string
	Type        ChallengeType
	Title       string
	Description string
	Requirement int
	Category    string
}

// ChallengeCatalog returns the static challenge table.
func ChallengeCatalog() []ChallengeDefinition {
	return []ChallengeDefinition{
		{ID: "creative_streak", Type: ChallengeDaily, Title: "Creative Streak",
			Description: "Complete 3 creative activities", Requirement: 3, Category: "creative"},
		{ID: "outdoor_explorer", Type: ChallengeDaily, Title: "Outdoor Explorer",
			Description: "Complete 2 outdoor activities", Requirement: 2, Category: "outdoor"},
		{ID: "brain_boost", Type: ChallengeWeekly, Title: "Brain Boost",
			Description: "Complete 5 educational activities", Requirement: 5, Category: "educational"},
		{ID: "activity_master", Type: ChallengeWeekly, Title: "Activity Master",
			Description: "Complete 10 activities of any type", Requirement: 10, Category: "any"},
		{ID: "weekend_special", Type: ChallengeSpecial, Title: "Weekend Special",
			Description: "Complete 4 activities in one day", Requirement: 4, Category: "any"},
	}
}

func ChallengeByID(id string) *ChallengeDefinition {
	for _, def := range ChallengeCatalog() {
		if def.ID == id {
			d := def
			return &d
		}
	}
	return nil
}

// ActiveChallengeCount is how many challenges are live at a time.
const ActiveChallengeCount = 3

// SampleChallenges draws n distinct challenge ids from the catalog. The
// result is persisted once and not re-rolled on later visits.
func SampleChallenges(n int, rng *rand.Rand) []string {
	defs := ChallengeCatalog()
	ids := make([]string, len(defs))
	for i, def := range defs {
		ids[i] = def.ID
	}
	rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	if n > len(ids) {
		n = len(ids)
	}
	return ids[:n]
}

// ChallengeProgress counts history entries matched by the definition.
func ChallengeProgress(def ChallengeDefinition, history []storage.Completion) int {
	if def.Category == "any" {
		return len(history)
	}
	n := 0
	for i := range history {
		if categoryHas(history[i].Category, def.Category) {
			n++
		}
	}
	return n
}

// ChallengeStatus is the derived view of one active challenge.
type ChallengeStatus struct {
	ChallengeDefinition
	Progress int
	Claimed  bool
}

func (s ChallengeStatus) Complete() bool {
	return s.Progress >= s.Requirement
}

func (s ChallengeStatus) Claimable() bool {
	return s.Complete() && !s.Claimed
}
