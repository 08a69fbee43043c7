package engine

import (
	"time"

	"kidquest/internal/storage"
)

// Point reward values.
const (
	PointsCompleteActivity = 50
	PointsDailyStreak      = 25
	PointsFirstActivity    = 100
	PointsWeekendBonus     = 30
)

type Bonus struct {
	Amount int
	Reason string
}

// RewardResult is the outcome of a single completion: the base award, any
// bonuses, and the streak transition. Pure data; the Service applies it.
type RewardResult struct {
	BasePoints      int
	Bonuses         []Bonus
	Streak          int
	StreakContinued bool
}

// TotalPoints returns base plus all bonuses.
func (r RewardResult) TotalPoints() int {
	total := r.BasePoints
	for _, b := range r.Bonuses {
		total += b.Amount
	}
	return total
}

// ComputeCompletionRewards computes the point deltas and streak transition
// for completing an activity at now, given the prior history (chronological)
// and the current streak. It has no side effects.
//
// Streak rules, on calendar days in local time:
//   - last prior completion was exactly yesterday: streak+1, flat streak bonus
//   - last prior completion was today: streak unchanged, no bonus
//   - gap of two or more days, or empty history: streak resets to 1, no bonus
func ComputeCompletionRewards(history []storage.Completion, streak int, now time.Time) RewardResult {
	res := RewardResult{BasePoints: PointsCompleteActivity}

	today := DateOf(now)
	firstToday := true
	for i := range history {
		if DateOf(history[i].CompletedAt).Equal(today) {
			firstToday = false
			break
		}
	}
	if firstToday {
		res.Bonuses = append(res.Bonuses, Bonus{Amount: PointsFirstActivity, Reason: "First activity of the day! 🌟"})
	}

	if wd := now.Weekday(); wd == time.Saturday || wd == time.Sunday {
		res.Bonuses = append(res.Bonuses, Bonus{Amount: PointsWeekendBonus, Reason: "Weekend warrior bonus! 🎉"})
	}

	if len(history) == 0 {
		res.Streak = 1
		return res
	}

	last := DateOf(history[len(history)-1].CompletedAt)
	switch {
	case last.Equal(today):
		res.Streak = streak
		if res.Streak < 1 {
			res.Streak = 1
		}
	case last.Equal(today.AddDate(0, 0, -1)):
		res.Streak = streak + 1
		res.StreakContinued = true
		// Flat amount, not scaled by streak length.
		res.Bonuses = append(res.Bonuses, Bonus{Amount: PointsDailyStreak, Reason: "Daily streak kept alive! 🔥"})
	default:
		res.Streak = 1
	}
	return res
}

// DateOf truncates t to its calendar day in local time.
func DateOf(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
