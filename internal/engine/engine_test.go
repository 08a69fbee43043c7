package engine

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"kidquest/internal/storage"
)

func newTestService(t *testing.T) (*Service, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	svc := NewService(db, nil)
	cleanup := func() {
		_ = db.Close()
	}
	return svc, cleanup
}

func setClock(svc *Service, at time.Time) {
	svc.now = func() time.Time { return at }
}

func setPoints(t *testing.T, svc *Service, points int) {
	t.Helper()
	if err := storage.NewProfileRepo(svc.db).SetInt(context.Background(), storage.KeyPoints, points); err != nil {
		t.Fatalf("set points: %v", err)
	}
}

func getPoints(t *testing.T, svc *Service) int {
	t.Helper()
	points, err := storage.NewProfileRepo(svc.db).GetInt(context.Background(), storage.KeyPoints)
	if err != nil {
		t.Fatalf("get points: %v", err)
	}
	return points
}

func mustComplete(t *testing.T, svc *Service, act Activity) *CompletionResult {
	t.Helper()
	res, err := svc.RecordCompletion(context.Background(), act)
	if err != nil {
		t.Fatalf("RecordCompletion: %v", err)
	}
	return res
}

func TestRecordCompletionPersistsEverything(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	// A Tuesday afternoon.
	setClock(svc, time.Date(2025, 6, 10, 15, 0, 0, 0, time.Local))

	res := mustComplete(t, svc, Activity{Title: "Paper Airplane", Category: "DIY crafts"})
	if res.PointsAwarded != PointsCompleteActivity+PointsFirstActivity {
		t.Fatalf("awarded=%d, want %d", res.PointsAwarded, PointsCompleteActivity+PointsFirstActivity)
	}
	if res.Streak != 1 {
		t.Fatalf("streak=%d, want 1", res.Streak)
	}
	if res.CompletionID == "" {
		t.Fatal("expected a completion id")
	}

	st, err := svc.Status(ctx)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if st.Points != res.PointsTotal {
		t.Fatalf("stored points=%d, want %d", st.Points, res.PointsTotal)
	}
	if st.Completions != 1 {
		t.Fatalf("completions=%d, want 1", st.Completions)
	}
	if !st.HasActivityDate {
		t.Fatal("expected last activity date to be set")
	}
}

func TestRecordCompletionRequiresTitle(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	if _, err := svc.RecordCompletion(context.Background(), Activity{Title: "   "}); err == nil {
		t.Fatal("expected error for blank title")
	}
}

func TestStreakAcrossDays(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	mon := time.Date(2025, 6, 9, 10, 0, 0, 0, time.Local)

	setClock(svc, mon)
	res := mustComplete(t, svc, Activity{Title: "Day 1"})
	if res.Streak != 1 {
		t.Fatalf("day1 streak=%d, want 1", res.Streak)
	}

	setClock(svc, mon.AddDate(0, 0, 1))
	res = mustComplete(t, svc, Activity{Title: "Day 2"})
	if res.Streak != 2 || !res.StreakContinued {
		t.Fatalf("day2 streak=%d continued=%v, want 2/true", res.Streak, res.StreakContinued)
	}

	// Skip Wednesday; Thursday resets.
	setClock(svc, mon.AddDate(0, 0, 3))
	res = mustComplete(t, svc, Activity{Title: "Day 4"})
	if res.Streak != 1 || res.StreakContinued {
		t.Fatalf("day4 streak=%d continued=%v, want 1/false", res.Streak, res.StreakContinued)
	}
}

func TestBadgeUnlockNotifiesOnce(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	setClock(svc, time.Date(2025, 6, 10, 10, 0, 0, 0, time.Local))

	var unlocks int
	for i := 0; i < 4; i++ {
		res := mustComplete(t, svc, Activity{Title: "Paint", Category: "Creative arts"})
		for _, b := range res.NewBadges {
			if b.Key == "artist" {
				unlocks++
				if i != 2 {
					t.Fatalf("artist unlocked on completion #%d, want #3", i+1)
				}
			}
		}
	}
	if unlocks != 1 {
		t.Fatalf("artist unlocked %d times, want exactly once", unlocks)
	}
}

func TestPendingActivityLifecycle(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	act, err := svc.PendingActivity(ctx)
	if err != nil {
		t.Fatalf("PendingActivity: %v", err)
	}
	if act != nil {
		t.Fatal("expected no pending activity on a fresh store")
	}

	want := Activity{Title: "Balloon Volleyball", Category: "Group games"}
	if err := svc.SetPendingActivity(ctx, want); err != nil {
		t.Fatalf("SetPendingActivity: %v", err)
	}
	act, err = svc.PendingActivity(ctx)
	if err != nil {
		t.Fatalf("PendingActivity: %v", err)
	}
	if act == nil || act.Title != want.Title {
		t.Fatalf("pending=%+v, want %q", act, want.Title)
	}

	mustComplete(t, svc, *act)
	act, err = svc.PendingActivity(ctx)
	if err != nil {
		t.Fatalf("PendingActivity after done: %v", err)
	}
	if act != nil {
		t.Fatal("pending activity should be cleared by completion")
	}
}

func TestPendingActivityCorruptDegradesToNil(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	if err := storage.NewProfileRepo(svc.db).Set(ctx, storage.KeyPendingActivity, "{not json"); err != nil {
		t.Fatalf("seed corrupt value: %v", err)
	}
	act, err := svc.PendingActivity(ctx)
	if err != nil {
		t.Fatalf("PendingActivity: %v", err)
	}
	if act != nil {
		t.Fatalf("corrupt pending should read as nil, got %+v", act)
	}
}

func TestPurchaseGuards(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	setPoints(t, svc, 150)

	// Too expensive: nothing changes.
	var ipe InsufficientPointsError
	_, err := svc.Purchase(ctx, "theme_space")
	if !errors.As(err, &ipe) {
		t.Fatalf("expected InsufficientPointsError, got %v", err)
	}
	if got := getPoints(t, svc); got != 150 {
		t.Fatalf("failed purchase changed balance: %d", got)
	}
	owned, err := svc.OwnedItems(ctx)
	if err != nil {
		t.Fatalf("OwnedItems: %v", err)
	}
	if len(owned) != 0 {
		t.Fatalf("failed purchase recorded ownership: %+v", owned)
	}

	// Unknown item.
	if _, err := svc.Purchase(ctx, "theme_lava"); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}

	// Affordable effect: deducts and equips.
	res, err := svc.Purchase(ctx, "special_effects_rainbow")
	if err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	if res.PointsRemaining != 150-res.Item.Price {
		t.Fatalf("remaining=%d, want %d", res.PointsRemaining, 150-res.Item.Price)
	}
	st, err := svc.Status(ctx)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if st.ActiveEffect != "special_effects_rainbow" {
		t.Fatalf("active effect=%q, want special_effects_rainbow", st.ActiveEffect)
	}

	// Buying the same item twice is rejected.
	if _, err := svc.Purchase(ctx, "special_effects_rainbow"); !errors.Is(err, ErrAlreadyOwned) {
		t.Fatalf("expected ErrAlreadyOwned, got %v", err)
	}
}

func TestUseItemRequiresOwnership(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.UseItem(ctx, "pet_costume_wizard"); !errors.Is(err, ErrNotOwned) {
		t.Fatalf("expected ErrNotOwned, got %v", err)
	}

	setPoints(t, svc, 1000)
	if _, err := svc.Purchase(ctx, "pet_costume_wizard"); err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	if _, err := svc.Purchase(ctx, "pet_costume_superhero"); err != nil {
		t.Fatalf("Purchase: %v", err)
	}

	// Last purchase equipped superhero; switch back.
	item, err := svc.UseItem(ctx, "pet_costume_wizard")
	if err != nil {
		t.Fatalf("UseItem: %v", err)
	}
	if item.ID != "pet_costume_wizard" {
		t.Fatalf("equipped %q", item.ID)
	}
	st, err := svc.Status(ctx)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if st.ActiveCostume != "pet_costume_wizard" {
		t.Fatalf("active costume=%q, want pet_costume_wizard", st.ActiveCostume)
	}
}

func TestActiveThemeColors(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	theme, err := svc.ActiveTheme(ctx)
	if err != nil {
		t.Fatalf("ActiveTheme: %v", err)
	}
	if theme != nil {
		t.Fatalf("expected default theme, got %+v", theme)
	}

	setPoints(t, svc, 500)
	if _, err := svc.Purchase(ctx, "theme_ocean"); err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	theme, err = svc.ActiveTheme(ctx)
	if err != nil {
		t.Fatalf("ActiveTheme: %v", err)
	}
	if theme == nil || theme.Primary == "" {
		t.Fatalf("expected ocean colors, got %+v", theme)
	}
}

func TestClaimChallengeOnce(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	setClock(svc, time.Date(2025, 6, 10, 10, 0, 0, 0, time.Local))

	// Force a known active set.
	err := storage.NewChallengeRepo(svc.db).SetActive(ctx, []string{"outdoor_explorer", "creative_streak", "activity_master"})
	if err != nil {
		t.Fatalf("SetActive: %v", err)
	}

	if _, err := svc.ClaimChallenge(ctx, "outdoor_explorer"); !errors.Is(err, ErrChallengeIncomplete) {
		t.Fatalf("expected ErrChallengeIncomplete, got %v", err)
	}

	mustComplete(t, svc, Activity{Title: "Hike", Category: "Outdoor activities"})
	mustComplete(t, svc, Activity{Title: "Hunt", Category: "Outdoor activities"})

	before := getPoints(t, svc)
	res, err := svc.ClaimChallenge(ctx, "outdoor_explorer")
	if err != nil {
		t.Fatalf("ClaimChallenge: %v", err)
	}
	if res.RewardPoints != ChallengeDaily.RewardPoints() {
		t.Fatalf("reward=%d, want %d", res.RewardPoints, ChallengeDaily.RewardPoints())
	}
	if got := getPoints(t, svc); got != before+res.RewardPoints {
		t.Fatalf("points=%d, want %d", got, before+res.RewardPoints)
	}

	// Second claim never double-awards.
	if _, err := svc.ClaimChallenge(ctx, "outdoor_explorer"); !errors.Is(err, ErrChallengeClaimed) {
		t.Fatalf("expected ErrChallengeClaimed, got %v", err)
	}
	if got := getPoints(t, svc); got != before+res.RewardPoints {
		t.Fatalf("double claim changed balance: %d", got)
	}
}

func TestClaimRequiresActive(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	err := storage.NewChallengeRepo(svc.db).SetActive(ctx, []string{"creative_streak"})
	if err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	if _, err := svc.ClaimChallenge(ctx, "brain_boost"); !errors.Is(err, ErrChallengeNotActive) {
		t.Fatalf("expected ErrChallengeNotActive, got %v", err)
	}
}

func TestResetChallengesKeepsClaims(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	setClock(svc, time.Date(2025, 6, 10, 10, 0, 0, 0, time.Local))
	err := storage.NewChallengeRepo(svc.db).SetActive(ctx, []string{"outdoor_explorer"})
	if err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	mustComplete(t, svc, Activity{Title: "Hike", Category: "Outdoor activities"})
	mustComplete(t, svc, Activity{Title: "Hunt", Category: "Outdoor activities"})
	if _, err := svc.ClaimChallenge(ctx, "outdoor_explorer"); err != nil {
		t.Fatalf("ClaimChallenge: %v", err)
	}

	if _, err := svc.ResetChallenges(ctx); err != nil {
		t.Fatalf("ResetChallenges: %v", err)
	}
	statuses, err := svc.ActiveChallenges(ctx)
	if err != nil {
		t.Fatalf("ActiveChallenges: %v", err)
	}
	for _, st := range statuses {
		if st.ID == "outdoor_explorer" && !st.Claimed {
			t.Fatal("claim should survive a re-roll")
		}
	}
	if _, err := svc.ClaimChallenge(ctx, "outdoor_explorer"); err == nil {
		t.Fatal("re-rolled challenge must not award twice")
	}
}

func TestActiveChallengesSampledOnce(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	first, err := svc.ActiveChallenges(ctx)
	if err != nil {
		t.Fatalf("ActiveChallenges: %v", err)
	}
	if len(first) != ActiveChallengeCount {
		t.Fatalf("got %d challenges, want %d", len(first), ActiveChallengeCount)
	}
	second, err := svc.ActiveChallenges(ctx)
	if err != nil {
		t.Fatalf("ActiveChallenges: %v", err)
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("active set re-rolled between calls: %v vs %v", first[i].ID, second[i].ID)
		}
	}
}

func TestJournalAnnotation(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	setClock(svc, time.Date(2025, 6, 10, 10, 0, 0, 0, time.Local))
	res := mustComplete(t, svc, Activity{Title: "Nature Art", Category: "Creative arts"})

	if err := svc.AnnotateCompletion(ctx, res.CompletionID, 4, "So much fun!", []string{"⭐", "🌈"}); err != nil {
		t.Fatalf("AnnotateCompletion: %v", err)
	}
	if err := svc.AnnotateCompletion(ctx, res.CompletionID, 5, "", nil); err == nil {
		t.Fatal("expected error for out-of-range rating")
	}
	if err := svc.AnnotateCompletion(ctx, "nope", 2, "", nil); err == nil {
		t.Fatal("expected error for unknown completion")
	}

	views, err := svc.Journal(ctx)
	if err != nil {
		t.Fatalf("Journal: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("got %d journal rows, want 1", len(views))
	}
	entry := views[0].Entry
	if entry == nil || entry.Rating != 4 || len(entry.Stickers) != 2 {
		t.Fatalf("entry=%+v", entry)
	}
}

func TestPetLifecycle(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	adopted := time.Date(2025, 6, 10, 10, 0, 0, 0, time.Local)
	setClock(svc, adopted)

	if _, err := svc.PetStatus(ctx); !errors.Is(err, ErrNoPet) {
		t.Fatalf("expected ErrNoPet, got %v", err)
	}

	species, err := svc.AdoptPet(ctx, "dragon")
	if err != nil {
		t.Fatalf("AdoptPet: %v", err)
	}
	if species.Type != PetDragon {
		t.Fatalf("adopted %q", species.Type)
	}
	if _, err := svc.AdoptPet(ctx, "unicorn"); !errors.Is(err, ErrPetAlreadyAdopted) {
		t.Fatalf("expected ErrPetAlreadyAdopted, got %v", err)
	}

	st, err := svc.PetStatus(ctx)
	if err != nil {
		t.Fatalf("PetStatus: %v", err)
	}
	if st.Happiness != PetMaxHappiness {
		t.Fatalf("happiness=%v, want %v", st.Happiness, PetMaxHappiness)
	}
	if st.Stage != 0 {
		t.Fatalf("stage=%d, want 0", st.Stage)
	}

	// Happiness decays over time.
	setClock(svc, adopted.Add(20*time.Hour))
	st, err = svc.PetStatus(ctx)
	if err != nil {
		t.Fatalf("PetStatus: %v", err)
	}
	if st.Happiness != PetMaxHappiness-20*0.5 {
		t.Fatalf("decayed happiness=%v, want %v", st.Happiness, PetMaxHappiness-10)
	}

	// Feeding without points is refused.
	var ipe InsufficientPointsError
	if _, err := svc.FeedPet(ctx); !errors.As(err, &ipe) {
		t.Fatalf("expected InsufficientPointsError, got %v", err)
	}

	setPoints(t, svc, 100)
	st, err = svc.FeedPet(ctx)
	if err != nil {
		t.Fatalf("FeedPet: %v", err)
	}
	if got := getPoints(t, svc); got != 100-PetFeedCost {
		t.Fatalf("points=%d, want %d", got, 100-PetFeedCost)
	}
	// 90 + 20 caps at the maximum.
	if st.Happiness != PetMaxHappiness {
		t.Fatalf("happiness=%v after feeding, want %v", st.Happiness, PetMaxHappiness)
	}
}

func TestPetStageGrowsWithCompletions(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	day := time.Date(2025, 6, 1, 9, 0, 0, 0, time.Local)
	setClock(svc, day)
	if _, err := svc.AdoptPet(ctx, "phoenix"); err != nil {
		t.Fatalf("AdoptPet: %v", err)
	}

	for i := 0; i < 10; i++ {
		setClock(svc, day.AddDate(0, 0, i))
		mustComplete(t, svc, Activity{Title: "Grow"})
	}

	st, err := svc.PetStatus(ctx)
	if err != nil {
		t.Fatalf("PetStatus: %v", err)
	}
	if st.Stage != 2 {
		t.Fatalf("stage=%d after 10 completions, want 2", st.Stage)
	}
}

func TestResetAllWipesState(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	setClock(svc, time.Date(2025, 6, 10, 10, 0, 0, 0, time.Local))
	mustComplete(t, svc, Activity{Title: "Something"})
	if _, err := svc.AdoptPet(ctx, "unicorn"); err != nil {
		t.Fatalf("AdoptPet: %v", err)
	}

	if err := svc.ResetAll(ctx); err != nil {
		t.Fatalf("ResetAll: %v", err)
	}

	st, err := svc.Status(ctx)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if st.Points != 0 || st.Completions != 0 || st.DailyStreak != 0 {
		t.Fatalf("state survived reset: %+v", st)
	}
	if _, err := svc.PetStatus(ctx); !errors.Is(err, ErrNoPet) {
		t.Fatalf("pet survived reset: %v", err)
	}
}
