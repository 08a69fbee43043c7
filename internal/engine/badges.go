package engine

import (
	"strings"

	"kidquest/internal/storage"
)

// BadgeDefinition is a static, read-only badge rule. A badge is unlocked iff
// the count of history entries matched by Counts reaches Requirement.
type BadgeDefinition struct {
	Key         string
	Name        string
	Icon        string
	Description string
	Requirement int
	Counts      func(c *storage.Completion) bool
}

// Badges returns the static badge table, in display order.
func Badges() []BadgeDefinition {
	return []BadgeDefinition{
		{
			Key: "explorer", Name: "Explorer", Icon: "🌟",
			Description: "Try 5 different activities", Requirement: 5,
			Counts:      func(*storage.Completion) bool { return true },
		},
		{
			Key: "artist", Name: "Creative Artist", Icon: "🎨",
			Description: "Complete 3 creative activities", Requirement: 3,
			Counts:      func(c *storage.Completion) bool { return categoryHas(c.Category, "creative") },
		},
		{
			Key: "scientist", Name: "Mini Scientist", Icon: "🔬",
			Description: "Complete 3 educational activities", Requirement: 3,
			Counts:      func(c *storage.Completion) bool { return categoryHas(c.Category, "educational") },
		},
		{
			Key: "athlete", Name: "Active Star", Icon: "⭐",
			Description: "Complete 3 high-energy activities", Requirement: 3,
			Counts:      func(c *storage.Completion) bool { return strings.EqualFold(c.EnergyLevel, "high") },
		},
		{
			Key: "naturalist", Name: "Nature Explorer", Icon: "🌿",
			Description: "Complete 3 outdoor activities", Requirement: 3,
			Counts:      func(c *storage.Completion) bool { return !c.Indoor },
		},
	}
}

// BadgeProgress is the derived unlock state for one badge. Never persisted;
// recomputed from history on every call.
type BadgeProgress struct {
	Key         string
	Name        string
	Icon        string
	Description string
	Progress    int
	Requirement int
	Unlocked    bool
}

// EvaluateBadges derives per-badge progress from the full history. Progress
// is monotone non-decreasing as history grows.
func EvaluateBadges(history []storage.Completion) []BadgeProgress {
	defs := Badges()
	out := make([]BadgeProgress, 0, len(defs))
	for _, def := range defs {
		n := 0
		for i := range history {
			if def.Counts(&history[i]) {
				n++
			}
		}
		out = append(out, BadgeProgress{
			Key:         def.Key,
			Name:        def.Name,
			Icon:        def.Icon,
			Description: def.Description,
			Progress:    n,
			Requirement: def.Requirement,
			Unlocked:    n >= def.Requirement,
		})
	}
	return out
}

// NewlyUnlocked returns badges locked in before and unlocked in after.
// Because history is append-only, a badge crosses its threshold exactly once,
// so callers get a one-time unlock notification.
func NewlyUnlocked(before, after []BadgeProgress) []BadgeProgress {
	locked := map[string]bool{}
	for _, b := range before {
		if !b.Unlocked {
			locked[b.Key] = true
		}
	}
	var out []BadgeProgress
	for _, b := range after {
		if b.Unlocked && locked[b.Key] {
			out = append(out, b)
		}
	}
	return out
}

// categoryHas matches loosely so "Creative arts" satisfies a "creative"
// predicate; the generator's category labels are long-form.
func categoryHas(category, keyword string) bool {
	return strings.Contains(strings.ToLower(category), keyword)
}
