package engine

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownItem         = errors.New("unknown shop item")
	ErrAlreadyOwned        = errors.New("item already owned")
	ErrNotOwned            = errors.New("item not owned")
	ErrChallengeNotActive  = errors.New("challenge is not active")
	ErrChallengeClaimed    = errors.New("challenge already claimed")
	ErrChallengeIncomplete = errors.New("challenge requirement not met")
	ErrNoPendingActivity   = errors.New("no pending activity; generate one first")
	ErrNoPet               = errors.New("no pet adopted yet")
	ErrPetAlreadyAdopted   = errors.New("a pet has already been adopted")
)

// InsufficientPointsError is returned when a purchase or pet action would
// drive the balance negative. The ledger enforces this itself; callers may
// still pre-check for friendlier UX.
type InsufficientPointsError struct {
	Have int
	Need int
}

func (e InsufficientPointsError) Error() string {
	return fmt.Sprintf("not enough points: need %d, have %d", e.Need, e.Have)
}
