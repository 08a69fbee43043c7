package engine

import (
	"fmt"
	"strings"
	"time"
)

type PetType string

const (
	PetDragon  PetType = "dragon"
	PetUnicorn PetType = "unicorn"
	PetPhoenix PetType = "phoenix"
)

// PetSpecies is a static pet definition with its growth stages.
type PetSpecies struct {
	Type         PetType
	Name         string
	Stages       [3]string
	SpecialPower string
}

func PetSpeciesTable() []PetSpecies {
	return []PetSpecies{
		{Type: PetDragon, Name: "Dragon", Stages: [3]string{"🥚", "🐣", "🐲"}, SpecialPower: "Breathes sparkles"},
		{Type: PetUnicorn, Name: "Unicorn", Stages: [3]string{"🥚", "🐣", "🦄"}, SpecialPower: "Creates rainbows"},
		{Type: PetPhoenix, Name: "Phoenix", Stages: [3]string{"🥚", "🐣", "🦅"}, SpecialPower: "Glows with magic"},
	}
}

func PetSpeciesFor(t PetType) *PetSpecies {
	for _, s := range PetSpeciesTable() {
		if s.Type == t {
			sp := s
			return &sp
		}
	}
	return nil
}

func ParsePetType(input string) (PetType, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	t := PetType(s)
	if PetSpeciesFor(t) == nil {
		return "", fmt.Errorf("unknown pet type: %q (dragon|unicorn|phoenix)", input)
	}
	return t, nil
}

// Pet care costs and effects.
const (
	PetFeedCost  = 10
	PetFeedBoost = 20
	PetPlayCost  = 5
	PetPlayBoost = 10

	PetMaxHappiness = 100.0

	// Completions needed per growth stage.
	petStageSize = 5

	happinessDecayPerHour = 0.5
)

// PetStageForCompletions maps total completions to a growth stage (0-2).
func PetStageForCompletions(completions int) int {
	stage := completions / petStageSize
	if stage > 2 {
		stage = 2
	}
	return stage
}

// PetHappinessAt derives current happiness from the value stored at the last
// care time. Happiness decays half a point per hour; no background timer is
// needed, it is computed lazily on read.
func PetHappinessAt(stored float64, lastCared, now time.Time) float64 {
	hours := now.Sub(lastCared).Hours()
	if hours < 0 {
		hours = 0
	}
	h := stored - hours*happinessDecayPerHour
	if h < 0 {
		return 0
	}
	if h > PetMaxHappiness {
		return PetMaxHappiness
	}
	return h
}
