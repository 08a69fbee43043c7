package engine

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"kidquest/internal/storage"
)

// PetStatusResult is the derived pet view: stage comes from the completion
// count and happiness from time since the last care action.
type PetStatusResult struct {
	Species   PetSpecies
	Stage     int
	Happiness float64
	Costume   string
	LastCared time.Time
}

// Emoji returns the pet's current appearance: the active costume overrides
// the growth-stage form.
func (p PetStatusResult) Emoji() string {
	switch p.Costume {
	case "pet_costume_wizard":
		return "🧙"
	case "pet_costume_superhero":
		return "🦸"
	}
	return p.Species.Stages[p.Stage]
}

// AdoptPet creates the pet. Only one pet exists per profile.
func (s *Service) AdoptPet(ctx context.Context, input string) (*PetSpecies, error) {
	petType, err := ParsePetType(input)
	if err != nil {
		return nil, err
	}
	now := s.now()

	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		pets := storage.NewPetRepo(tx)
		existing, err := pets.Get(ctx)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w (%s)", ErrPetAlreadyAdopted, existing.Type)
		}
		return pets.Upsert(ctx, &storage.Pet{
			Type:      string(petType),
			Happiness: PetMaxHappiness,
			LastFed:   now,
			AdoptedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("pet adopted", zap.String("type", string(petType)))
	return PetSpeciesFor(petType), nil
}

// PetStatus derives the current pet view. Returns ErrNoPet when no pet has
// been adopted.
func (s *Service) PetStatus(ctx context.Context) (*PetStatusResult, error) {
	pet, err := storage.NewPetRepo(s.db).Get(ctx)
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, ErrNoPet
	}
	species := PetSpeciesFor(PetType(pet.Type))
	if species == nil {
		return nil, fmt.Errorf("unknown pet type in store: %q", pet.Type)
	}
	count, err := storage.NewCompletionRepo(s.db).Count(ctx)
	if err != nil {
		return nil, err
	}
	costume, err := storage.NewProfileRepo(s.db).GetString(ctx, storage.KeyActiveCostume)
	if err != nil {
		return nil, err
	}

	return &PetStatusResult{
		Species:   *species,
		Stage:     PetStageForCompletions(count),
		Happiness: PetHappinessAt(pet.Happiness, pet.LastFed, s.now()),
		Costume:   costume,
		LastCared: pet.LastFed,
	}, nil
}

// FeedPet spends points to raise happiness. The points guard is the same
// ledger rule as purchases: the balance can never go negative.
func (s *Service) FeedPet(ctx context.Context) (*PetStatusResult, error) {
	return s.carePet(ctx, PetFeedCost, PetFeedBoost, "fed")
}

// PlayWithPet spends fewer points for a smaller happiness boost.
func (s *Service) PlayWithPet(ctx context.Context) (*PetStatusResult, error) {
	return s.carePet(ctx, PetPlayCost, PetPlayBoost, "played")
}

func (s *Service) carePet(ctx context.Context, cost int, boost float64, action string) (*PetStatusResult, error) {
	now := s.now()

	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		pets := storage.NewPetRepo(tx)
		profile := storage.NewProfileRepo(tx)

		pet, err := pets.Get(ctx)
		if err != nil {
			return err
		}
		if pet == nil {
			return ErrNoPet
		}

		points, err := profile.GetInt(ctx, storage.KeyPoints)
		if err != nil {
			return err
		}
		if points < cost {
			return InsufficientPointsError{Have: points, Need: cost}
		}
		if err := profile.SetInt(ctx, storage.KeyPoints, points-cost); err != nil {
			return err
		}

		// Decay is anchored to the last care action: fold the elapsed decay
		// into the stored value, then boost.
		current := PetHappinessAt(pet.Happiness, pet.LastFed, now)
		next := current + boost
		if next > PetMaxHappiness {
			next = PetMaxHappiness
		}
		pet.Happiness = next
		pet.LastFed = now
		return pets.Upsert(ctx, pet)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("pet cared for", zap.String("action", action), zap.Int("cost", cost))
	return s.PetStatus(ctx)
}
