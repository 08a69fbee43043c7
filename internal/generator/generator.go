// Package generator produces activity suggestions: a Gemini-backed source
// for fresh ideas and a built-in catalog for offline use. The rest of the
// app treats both as an opaque source that returns a well-formed activity
// or fails without side effects.
package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"kidquest/internal/engine"
)

// Filters constrain a generation request. All fields are optional.
type Filters struct {
	Category     string
	TimeRequired string
	EnergyLevel  string
	AgeRange     string
}

// Source produces one activity per call.
type Source interface {
	Generate(ctx context.Context, f Filters) (engine.Activity, error)
}

// parseActivity decodes a model response into an Activity. Models sometimes
// wrap JSON in a markdown fence even in JSON mode; strip it before decoding.
func parseActivity(raw string) (engine.Activity, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	var act engine.Activity
	if err := json.Unmarshal([]byte(s), &act); err != nil {
		return engine.Activity{}, fmt.Errorf("decode activity: %w", err)
	}
	if strings.TrimSpace(act.Title) == "" {
		return engine.Activity{}, errors.New("generated activity has no title")
	}
	return act, nil
}
