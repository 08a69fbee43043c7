package engine

import (
	"fmt"
	"strings"
)

// Activity is a suggestion produced by the generator. Immutable once
// generated; the generator is the authoritative source.
type Activity struct {
	Title        string   `json:"title"`
	Category     string   `json:"category"`
	TimeRequired string   `json:"timeRequired"`
	EnergyLevel  string   `json:"energyLevel"`
	Resources    []string `json:"resources"`
	Indoor       bool     `json:"indoor"`
	Description  string   `json:"description"`
	Instructions []string `json:"instructions"`
	AgeRange     string   `json:"ageRange"`
	FunFact      string   `json:"funFact"`
}

// Categories the generator is asked to choose from.
var Categories = []string{
	"Indoor activities",
	"Outdoor activities",
	"DIY crafts",
	"Educational games",
	"Physical exercises",
	"Creative arts",
	"Group games",
}

type TimeRequired string

const (
	TimeShort  TimeRequired = "short"
	TimeMedium TimeRequired = "medium"
	TimeLong   TimeRequired = "long"
)

func (t TimeRequired) IsValid() bool {
	switch t {
	case TimeShort, TimeMedium, TimeLong:
		return true
	default:
		return false
	}
}

// ParseTimeRequired parses user input. Empty input means "any".
func ParseTimeRequired(input string) (TimeRequired, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if s == "" {
		return "", nil
	}
	t := TimeRequired(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid time requirement: %q (short|medium|long)", input)
	}
	return t, nil
}

type EnergyLevel string

const (
	EnergyLow    EnergyLevel = "low"
	EnergyMedium EnergyLevel = "medium"
	EnergyHigh   EnergyLevel = "high"
)

func (e EnergyLevel) IsValid() bool {
	switch e {
	case EnergyLow, EnergyMedium, EnergyHigh:
		return true
	default:
		return false
	}
}

// ParseEnergyLevel parses user input. Empty input means "any".
func ParseEnergyLevel(input string) (EnergyLevel, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if s == "" {
		return "", nil
	}
	e := EnergyLevel(s)
	if !e.IsValid() {
		return "", fmt.Errorf("invalid energy level: %q (low|medium|high)", input)
	}
	return e, nil
}
