package engine

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"kidquest/internal/storage"
)

// ActiveChallenges returns the live challenge set with derived progress.
// On first call the set is sampled from the catalog and persisted; it is not
// re-rolled on later calls unless ResetChallenges is used.
func (s *Service) ActiveChallenges(ctx context.Context) ([]ChallengeStatus, error) {
	repo := storage.NewChallengeRepo(s.db)

	ids, err := repo.ActiveIDs(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		ids = SampleChallenges(ActiveChallengeCount, s.rng)
		err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
			return storage.NewChallengeRepo(tx).SetActive(ctx, ids)
		})
		if err != nil {
			return nil, err
		}
		s.log.Info("sampled active challenges", zap.Strings("ids", ids))
	}

	claimed, err := repo.ClaimedIDs(ctx)
	if err != nil {
		return nil, err
	}
	history, err := s.History(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ChallengeStatus, 0, len(ids))
	for _, id := range ids {
		def := ChallengeByID(id)
		if def == nil {
			// Stale id from an older catalog; skip rather than fail.
			continue
		}
		out = append(out, ChallengeStatus{
			ChallengeDefinition: *def,
			Progress:            ChallengeProgress(*def, history),
			Claimed:             claimed[id],
		})
	}
	return out, nil
}

// ClaimResult reports a successful claim.
type ClaimResult struct {
	Challenge    ChallengeDefinition
	RewardPoints int
	PointsTotal  int
}

// ClaimChallenge grants the challenge reward exactly once. The claimed-set
// membership check runs inside the transaction, so a double claim can never
// double-award.
func (s *Service) ClaimChallenge(ctx context.Context, id string) (*ClaimResult, error) {
	def := ChallengeByID(id)
	if def == nil {
		return nil, fmt.Errorf("unknown challenge: %q", id)
	}
	now := s.now()

	var result *ClaimResult
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		repo := storage.NewChallengeRepo(tx)
		profile := storage.NewProfileRepo(tx)

		ids, err := repo.ActiveIDs(ctx)
		if err != nil {
			return err
		}
		active := false
		for _, aid := range ids {
			if aid == id {
				active = true
				break
			}
		}
		if !active {
			return fmt.Errorf("%w: %s", ErrChallengeNotActive, id)
		}

		claimed, err := repo.IsClaimed(ctx, id)
		if err != nil {
			return err
		}
		if claimed {
			return fmt.Errorf("%w: %s", ErrChallengeClaimed, id)
		}

		history, err := storage.NewCompletionRepo(tx).ListAll(ctx)
		if err != nil {
			return err
		}
		if progress := ChallengeProgress(*def, history); progress < def.Requirement {
			return fmt.Errorf("%w: %s (%d/%d)", ErrChallengeIncomplete, id, progress, def.Requirement)
		}

		points, err := profile.GetInt(ctx, storage.KeyPoints)
		if err != nil {
			return err
		}
		reward := def.Type.RewardPoints()
		if err := profile.SetInt(ctx, storage.KeyPoints, points+reward); err != nil {
			return err
		}
		if err := repo.InsertClaimed(ctx, id, now); err != nil {
			return err
		}

		result = &ClaimResult{Challenge: *def, RewardPoints: reward, PointsTotal: points + reward}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("challenge claimed",
		zap.String("challenge", id),
		zap.Int("reward", result.RewardPoints))
	return result, nil
}

// ResetChallenges re-rolls the active set. Claims are permanent and survive
// the re-roll, so a previously claimed challenge can never award again.
func (s *Service) ResetChallenges(ctx context.Context) ([]string, error) {
	ids := SampleChallenges(ActiveChallengeCount, s.rng)
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		return storage.NewChallengeRepo(tx).SetActive(ctx, ids)
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}
