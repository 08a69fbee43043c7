package engine

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kidquest/internal/storage"
)

// Service is the progression store: all points, streak, badge, challenge,
// shop, journal, and pet state flows through it. Every mutation runs in a
// single SQLite transaction so the durable copy is consistent at every
// observable point.
type Service struct {
	db  *sql.DB
	log *zap.Logger
	rng *rand.Rand
	now func() time.Time
}

func NewService(db *sql.DB, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		db:  db,
		log: log,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
}

// CompletionResult reports everything a caller needs to celebrate: the point
// breakdown, the streak transition, and badges unlocked by this completion.
type CompletionResult struct {
	CompletionID    string
	Title           string
	BasePoints      int
	Bonuses         []Bonus
	PointsAwarded   int
	PointsTotal     int
	Streak          int
	StreakContinued bool
	NewBadges       []BadgeProgress
}

// RecordCompletion appends the activity to the history, applies all reward
// deltas atomically, and persists before returning. Badge progress is
// evaluated before and after inside the same operation, so unlock
// notifications fire exactly once per threshold crossing.
func (s *Service) RecordCompletion(ctx context.Context, act Activity) (*CompletionResult, error) {
	if strings.TrimSpace(act.Title) == "" {
		return nil, errors.New("activity title is required")
	}
	now := s.now()

	var result *CompletionResult
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		profile := storage.NewProfileRepo(tx)
		completions := storage.NewCompletionRepo(tx)

		history, err := completions.ListAll(ctx)
		if err != nil {
			return err
		}
		points, err := profile.GetInt(ctx, storage.KeyPoints)
		if err != nil {
			return err
		}
		streak, err := profile.GetInt(ctx, storage.KeyDailyStreak)
		if err != nil {
			return err
		}

		rewards := ComputeCompletionRewards(history, streak, now)
		before := EvaluateBadges(history)

		comp := &storage.Completion{
			ID:           uuid.NewString(),
			Title:        act.Title,
			Category:     act.Category,
			TimeRequired: act.TimeRequired,
			EnergyLevel:  act.EnergyLevel,
			Resources:    act.Resources,
			Indoor:       act.Indoor,
			Description:  act.Description,
			Instructions: act.Instructions,
			AgeRange:     act.AgeRange,
			FunFact:      act.FunFact,
			CompletedAt:  now,
		}
		if err := completions.Insert(ctx, comp); err != nil {
			return err
		}

		awarded := rewards.TotalPoints()
		if err := profile.SetInt(ctx, storage.KeyPoints, points+awarded); err != nil {
			return err
		}
		if err := profile.SetInt(ctx, storage.KeyDailyStreak, rewards.Streak); err != nil {
			return err
		}
		if err := profile.SetDate(ctx, storage.KeyLastActivityDate, now); err != nil {
			return err
		}
		if err := profile.Delete(ctx, storage.KeyPendingActivity); err != nil {
			return err
		}

		after := EvaluateBadges(append(history, *comp))
		result = &CompletionResult{
			CompletionID:    comp.ID,
			Title:           comp.Title,
			BasePoints:      rewards.BasePoints,
			Bonuses:         rewards.Bonuses,
			PointsAwarded:   awarded,
			PointsTotal:     points + awarded,
			Streak:          rewards.Streak,
			StreakContinued: rewards.StreakContinued,
			NewBadges:       NewlyUnlocked(before, after),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("activity completed",
		zap.String("completion_id", result.CompletionID),
		zap.Int("points_awarded", result.PointsAwarded),
		zap.Int("streak", result.Streak))
	return result, nil
}

// History returns the full completion history in chronological order.
func (s *Service) History(ctx context.Context) ([]storage.Completion, error) {
	return storage.NewCompletionRepo(s.db).ListAll(ctx)
}

// Badges derives badge progress from the current history.
func (s *Service) Badges(ctx context.Context) ([]BadgeProgress, error) {
	history, err := s.History(ctx)
	if err != nil {
		return nil, err
	}
	return EvaluateBadges(history), nil
}

// StatusResult is a read-only snapshot of progression state.
type StatusResult struct {
	Points           int
	DailyStreak      int
	LastActivityDate time.Time
	HasActivityDate  bool
	Completions      int
	ActiveTheme      string
	ActiveEffect     string
	ActiveCostume    string
	OwnedItems       int
}

// Status reads each persisted field independently; missing or unparsable
// fields degrade to zero values instead of failing the whole load.
func (s *Service) Status(ctx context.Context) (*StatusResult, error) {
	profile := storage.NewProfileRepo(s.db)

	points, err := profile.GetInt(ctx, storage.KeyPoints)
	if err != nil {
		return nil, err
	}
	streak, err := profile.GetInt(ctx, storage.KeyDailyStreak)
	if err != nil {
		return nil, err
	}
	lastDate, hasDate, err := profile.GetDate(ctx, storage.KeyLastActivityDate)
	if err != nil {
		return nil, err
	}
	theme, err := profile.GetString(ctx, storage.KeyActiveTheme)
	if err != nil {
		return nil, err
	}
	effect, err := profile.GetString(ctx, storage.KeyActiveEffect)
	if err != nil {
		return nil, err
	}
	costume, err := profile.GetString(ctx, storage.KeyActiveCostume)
	if err != nil {
		return nil, err
	}
	count, err := storage.NewCompletionRepo(s.db).Count(ctx)
	if err != nil {
		return nil, err
	}
	owned, err := storage.NewItemRepo(s.db).ListOwned(ctx)
	if err != nil {
		return nil, err
	}

	return &StatusResult{
		Points:           points,
		DailyStreak:      streak,
		LastActivityDate: lastDate,
		HasActivityDate:  hasDate,
		Completions:      count,
		ActiveTheme:      theme,
		ActiveEffect:     effect,
		ActiveCostume:    costume,
		OwnedItems:       len(owned),
	}, nil
}

// PendingActivity returns the stored suggestion awaiting completion, or nil.
// A corrupt stored value degrades to nil.
func (s *Service) PendingActivity(ctx context.Context) (*Activity, error) {
	raw, err := storage.NewProfileRepo(s.db).GetString(ctx, storage.KeyPendingActivity)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	var act Activity
	if err := json.Unmarshal([]byte(raw), &act); err != nil || act.Title == "" {
		return nil, nil
	}
	return &act, nil
}

// SetPendingActivity stores a generated suggestion so it can be completed by
// a later command.
func (s *Service) SetPendingActivity(ctx context.Context, act Activity) error {
	raw, err := json.Marshal(act)
	if err != nil {
		return fmt.Errorf("marshal pending activity: %w", err)
	}
	return storage.NewProfileRepo(s.db).Set(ctx, storage.KeyPendingActivity, string(raw))
}

// ResetAll wipes all local state.
func (s *Service) ResetAll(ctx context.Context) error {
	return storage.ResetAll(ctx, s.db)
}
