package engine

import (
	"math/rand"
	"testing"
	"time"

	"kidquest/internal/storage"
)

func TestSampleChallengesDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ids := SampleChallenges(ActiveChallengeCount, rng)
	if len(ids) != ActiveChallengeCount {
		t.Fatalf("got %d ids, want %d", len(ids), ActiveChallengeCount)
	}
	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
		if ChallengeByID(id) == nil {
			t.Fatalf("sampled unknown id %q", id)
		}
	}
}

func TestSampleChallengesClampsToCatalog(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ids := SampleChallenges(100, rng)
	if len(ids) != len(ChallengeCatalog()) {
		t.Fatalf("got %d ids, want the whole catalog (%d)", len(ids), len(ChallengeCatalog()))
	}
}

func TestChallengeProgressByCategory(t *testing.T) {
	history := []storage.Completion{
		{Title: "a", Category: "Creative arts", CompletedAt: time.Now()},
		{Title: "b", Category: "Outdoor activities", CompletedAt: time.Now()},
		{Title: "c", Category: "Creative arts", CompletedAt: time.Now()},
	}

	creative := ChallengeByID("creative_streak")
	if got := ChallengeProgress(*creative, history); got != 2 {
		t.Fatalf("creative progress=%d, want 2", got)
	}
	any := ChallengeByID("activity_master")
	if got := ChallengeProgress(*any, history); got != 3 {
		t.Fatalf("any progress=%d, want 3", got)
	}
}

func TestChallengeStatusClaimable(t *testing.T) {
	def := ChallengeByID("outdoor_explorer")
	st := ChallengeStatus{ChallengeDefinition: *def, Progress: def.Requirement}
	if !st.Claimable() {
		t.Fatal("complete and unclaimed should be claimable")
	}
	st.Claimed = true
	if st.Claimable() {
		t.Fatal("claimed challenge must not be claimable")
	}
	st = ChallengeStatus{ChallengeDefinition: *def, Progress: def.Requirement - 1}
	if st.Claimable() {
		t.Fatal("incomplete challenge must not be claimable")
	}
}

func TestChallengeRewardsByType(t *testing.T) {
	if got := ChallengeDaily.RewardPoints(); got != 50 {
		t.Fatalf("daily reward=%d, want 50", got)
	}
	if got := ChallengeWeekly.RewardPoints(); got != 200 {
		t.Fatalf("weekly reward=%d, want 200", got)
	}
	if got := ChallengeSpecial.RewardPoints(); got != 100 {
		t.Fatalf("special reward=%d, want 100", got)
	}
}
