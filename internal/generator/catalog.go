package generator

import (
	"context"
	"errors"
	"math/rand"
	"strings"

	"kidquest/internal/engine"
)

// Catalog serves activities from a built-in list. It is the fallback when
// no API key is set or the network is unavailable.
type Catalog struct {
	rng *rand.Rand
}

func NewCatalog(rng *rand.Rand) *Catalog {
	return &Catalog{rng: rng}
}

// Generate picks a random activity matching the filters. Age filters are
// ignored here; every catalog entry is broadly age-appropriate.
func (c *Catalog) Generate(_ context.Context, f Filters) (engine.Activity, error) {
	matches := make([]engine.Activity, 0, len(catalogActivities))
	for _, act := range catalogActivities {
		if matchesFilters(act, f) {
			matches = append(matches, act)
		}
	}
	if len(matches) == 0 {
		return engine.Activity{}, errors.New("no catalog activity matches the given filters")
	}
	if c.rng == nil {
		return matches[0], nil
	}
	return matches[c.rng.Intn(len(matches))], nil
}

func matchesFilters(act engine.Activity, f Filters) bool {
	if f.Category != "" && !strings.EqualFold(act.Category, f.Category) {
		return false
	}
	if f.TimeRequired != "" && !strings.EqualFold(act.TimeRequired, f.TimeRequired) {
		return false
	}
	if f.EnergyLevel != "" && !strings.EqualFold(act.EnergyLevel, f.EnergyLevel) {
		return false
	}
	return true
}

var catalogActivities = []engine.Activity{
	{
		Title:        "Create a Paper Airplane",
		Category:     "DIY crafts",
		TimeRequired: "short",
		EnergyLevel:  "low",
		Resources:    []string{"paper"},
		Indoor:       true,
		Description:  "Learn to fold different types of paper airplanes and test which design flies the best!",
		Instructions: []string{
			"Get a sheet of paper",
			"Fold it in half lengthwise",
			"Fold the corners to the center",
			"Fold the wings down",
			"Test and adjust your design",
		},
		AgeRange: "4+",
		FunFact:  "The world record for the longest paper airplane flight is 69.14 meters!",
	},
	{
		Title:        "Backyard Scavenger Hunt",
		Category:     "Outdoor activities",
		TimeRequired: "medium",
		EnergyLevel:  "high",
		Resources:    []string{"printed checklist", "pencil"},
		Indoor:       false,
		Description:  "An exciting outdoor adventure finding natural treasures!",
		Instructions: []string{
			"Create a list of items to find",
			"Give each player a checklist",
			"Set a time limit",
			"Start hunting!",
			"Compare findings at the end",
		},
		AgeRange: "5+",
		FunFact:  "Scavenger hunts were first popularized in the 1930s as party games!",
	},
	{
		Title:        "Story Chain Game",
		Category:     "Creative arts",
		TimeRequired: "medium",
		EnergyLevel:  "low",
		Resources:    []string{},
		Indoor:       true,
		Description:  "Create an imaginative story together by taking turns adding sentences!",
		Instructions: []string{
			"Sit in a circle",
			"First person starts with 'Once upon a time...'",
			"Each person adds one sentence",
			"Continue until story reaches natural end",
		},
		AgeRange: "6+",
		FunFact:  "This game helps develop creativity and listening skills!",
	},
	{
		Title:        "Mini Scientists: Color Mixing",
		Category:     "Educational games",
		TimeRequired: "medium",
		EnergyLevel:  "low",
		Resources:    []string{"food coloring", "clear cups", "water", "spoons"},
		Indoor:       true,
		Description:  "Discover the magic of color mixing through fun experiments!",
		Instructions: []string{
			"Fill cups with water",
			"Add different food colorings",
			"Mix colors to create new ones",
			"Record your discoveries",
		},
		AgeRange: "4+",
		FunFact:  "There are three primary colors that can make all other colors!",
	},
	{
		Title:        "Dance Freeze",
		Category:     "Physical exercises",
		TimeRequired: "short",
		EnergyLevel:  "high",
		Resources:    []string{"music player"},
		Indoor:       true,
		Description:  "Dance when the music plays and freeze when it stops!",
		Instructions: []string{
			"Play upbeat music",
			"Dance while music plays",
			"Freeze when music stops",
			"Last person moving is out",
		},
		AgeRange: "3+",
		FunFact:  "Dancing helps develop balance and coordination!",
	},
	{
		Title:        "Nature Art",
		Category:     "Creative arts",
		TimeRequired: "medium",
		EnergyLevel:  "low",
		Resources:    []string{"paper", "glue", "collected nature items"},
		Indoor:       false,
		Description:  "Create beautiful artwork using items found in nature!",
		Instructions: []string{
			"Collect leaves, flowers, and twigs",
			"Plan your design",
			"Arrange items on paper",
			"Glue everything in place",
		},
		AgeRange: "4+",
		FunFact:  "Artists have been using nature in art for thousands of years!",
	},
	{
		Title:        "Balloon Volleyball",
		Category:     "Group games",
		TimeRequired: "medium",
		EnergyLevel:  "high",
		Resources:    []string{"balloons", "string/rope"},
		Indoor:       true,
		Description:  "A fun and safe version of volleyball using balloons!",
		Instructions: []string{
			"Blow up several balloons",
			"Set up a 'net' using string",
			"Divide into teams",
			"Keep balloon from touching ground",
		},
		AgeRange: "5+",
		FunFact:  "Balloons stay in the air longer because they're lighter than air!",
	},
	{
		Title:        "DIY Musical Instruments",
		Category:     "DIY crafts",
		TimeRequired: "long",
		EnergyLevel:  "medium",
		Resources:    []string{"empty containers", "dried beans/rice", "rubber bands", "decorations"},
		Indoor:       true,
		Description:  "Create your own musical instruments and start a band!",
		Instructions: []string{
			"Make shakers with containers and beans",
			"Create guitars with boxes and rubber bands",
			"Decorate your instruments",
			"Put on a concert",
		},
		AgeRange: "5+",
		FunFact:  "The first musical instruments were made over 40,000 years ago!",
	},
	{
		Title:        "Memory Card Game",
		Category:     "Educational games",
		TimeRequired: "short",
		EnergyLevel:  "low",
		Resources:    []string{"index cards", "markers"},
		Indoor:       true,
		Description:  "Create and play your own memory matching game!",
		Instructions: []string{
			"Draw matching pairs on cards",
			"Shuffle and lay face down",
			"Take turns finding matches",
			"Person with most matches wins",
		},
		AgeRange: "4+",
		FunFact:  "Memory games help improve concentration and brain function!",
	},
	{
		Title:        "Indoor Obstacle Course",
		Category:     "Physical exercises",
		TimeRequired: "long",
		EnergyLevel:  "high",
		Resources:    []string{"household items", "timer"},
		Indoor:       true,
		Description:  "Design and run through your own obstacle course!",
		Instructions: []string{
			"Set up obstacles with furniture",
			"Create challenges (crawl, jump, etc.)",
			"Time each person's run",
			"Try to beat your best time",
		},
		AgeRange: "5+",
		FunFact:  "Obstacle courses were first used for military training!",
	},
}
