package engine

import (
	"testing"
	"time"

	"kidquest/internal/storage"
)

func completedOn(t time.Time) storage.Completion {
	return storage.Completion{Title: "x", CompletedAt: t}
}

func TestRewardsFirstEverCompletion(t *testing.T) {
	// A Tuesday, so no weekend bonus.
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.Local)

	res := ComputeCompletionRewards(nil, 0, now)
	if res.BasePoints != PointsCompleteActivity {
		t.Fatalf("base=%d, want %d", res.BasePoints, PointsCompleteActivity)
	}
	if res.Streak != 1 {
		t.Fatalf("streak=%d, want 1", res.Streak)
	}
	if res.StreakContinued {
		t.Fatal("fresh start should not count as a continued streak")
	}
	if got, want := res.TotalPoints(), PointsCompleteActivity+PointsFirstActivity; got != want {
		t.Fatalf("total=%d, want %d (base + first of day)", got, want)
	}
}

func TestRewardsStreakContinuesFromYesterday(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.Local)
	history := []storage.Completion{completedOn(now.AddDate(0, 0, -1))}

	res := ComputeCompletionRewards(history, 3, now)
	if res.Streak != 4 {
		t.Fatalf("streak=%d, want 4", res.Streak)
	}
	if !res.StreakContinued {
		t.Fatal("expected StreakContinued")
	}
	if got, want := res.TotalPoints(), PointsCompleteActivity+PointsFirstActivity+PointsDailyStreak; got != want {
		t.Fatalf("total=%d, want %d", got, want)
	}
}

func TestRewardsStreakBonusIsFlat(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.Local)
	history := []storage.Completion{completedOn(now.AddDate(0, 0, -1))}

	short := ComputeCompletionRewards(history, 1, now)
	long := ComputeCompletionRewards(history, 30, now)
	if short.TotalPoints() != long.TotalPoints() {
		t.Fatalf("streak bonus should not scale: %d vs %d", short.TotalPoints(), long.TotalPoints())
	}
}

func TestRewardsStreakResetsAfterGap(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.Local)
	history := []storage.Completion{completedOn(now.AddDate(0, 0, -3))}

	res := ComputeCompletionRewards(history, 7, now)
	if res.Streak != 1 {
		t.Fatalf("streak=%d, want 1 after a gap", res.Streak)
	}
	if res.StreakContinued {
		t.Fatal("a reset is not a continuation")
	}
	for _, b := range res.Bonuses {
		if b.Amount == PointsDailyStreak {
			t.Fatal("no streak bonus after a gap")
		}
	}
}

func TestRewardsSecondCompletionSameDay(t *testing.T) {
	now := time.Date(2025, 6, 10, 18, 0, 0, 0, time.Local)
	history := []storage.Completion{completedOn(now.Add(-4 * time.Hour))}

	res := ComputeCompletionRewards(history, 2, now)
	if res.Streak != 2 {
		t.Fatalf("streak=%d, want 2 (unchanged)", res.Streak)
	}
	if got, want := res.TotalPoints(), PointsCompleteActivity; got != want {
		t.Fatalf("total=%d, want %d (no first-of-day, no streak bonus)", got, want)
	}
}

func TestRewardsWeekendBonus(t *testing.T) {
	sat := time.Date(2025, 6, 14, 10, 0, 0, 0, time.Local)

	res := ComputeCompletionRewards(nil, 0, sat)
	found := false
	for _, b := range res.Bonuses {
		if b.Amount == PointsWeekendBonus {
			found = true
		}
	}
	if !found {
		t.Fatal("expected weekend bonus on Saturday")
	}
}

func TestRewardsDayBoundaryNotDuration(t *testing.T) {
	// 23:30 yesterday to 00:30 today is one hour apart but crosses the
	// calendar boundary, so the streak continues.
	now := time.Date(2025, 6, 10, 0, 30, 0, 0, time.Local)
	history := []storage.Completion{completedOn(time.Date(2025, 6, 9, 23, 30, 0, 0, time.Local))}

	res := ComputeCompletionRewards(history, 1, now)
	if res.Streak != 2 || !res.StreakContinued {
		t.Fatalf("streak=%d continued=%v, want 2/true", res.Streak, res.StreakContinued)
	}
}
