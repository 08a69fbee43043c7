package generator

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"kidquest/internal/engine"
)

const systemPrompt = `You are a creative children's activity generator. Generate a fun, age-appropriate activity based on the given criteria.
Format the response as a JSON object with the following structure:
{
  "title": "Activity Title",
  "category": "one of: Indoor activities, Outdoor activities, DIY crafts, Educational games, Physical exercises, Creative arts, Group games",
  "timeRequired": "one of: short, medium, long",
  "energyLevel": "one of: low, medium, high",
  "resources": ["list of required materials"],
  "indoor": boolean,
  "description": "Brief engaging description",
  "instructions": ["step 1", "step 2", "etc"],
  "ageRange": "appropriate age range (e.g., 4+, 5-7)",
  "funFact": "An interesting fact related to the activity"
}`

// Gemini generates activities with the Gemini API in JSON mode.
type Gemini struct {
	client *genai.Client
	model  string
	log    *zap.Logger
}

func NewGemini(ctx context.Context, apiKey, model string, log *zap.Logger) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	if log == nil {
		log = zap.NewNop()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Gemini{client: client, model: model, log: log}, nil
}

func (g *Gemini) Generate(ctx context.Context, f Filters) (engine.Activity, error) {
	prompt := buildUserPrompt(f)
	g.log.Debug("generating activity",
		zap.String("model", g.model),
		zap.String("prompt", prompt))

	resp, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
			ResponseMIMEType:  "application/json",
			Temperature:       genai.Ptr[float32](0.7),
			MaxOutputTokens:   500,
		},
	)
	if err != nil {
		return engine.Activity{}, fmt.Errorf("generate activity: %w", err)
	}

	act, err := parseActivity(resp.Text())
	if err != nil {
		return engine.Activity{}, err
	}
	g.log.Debug("generated activity", zap.String("title", act.Title))
	return act, nil
}

func buildUserPrompt(f Filters) string {
	var b strings.Builder
	b.WriteString("Generate a children's activity with these criteria:\n")
	if f.Category != "" {
		fmt.Fprintf(&b, "Category: %s\n", f.Category)
	}
	if f.TimeRequired != "" {
		fmt.Fprintf(&b, "Time Required: %s\n", f.TimeRequired)
	}
	if f.EnergyLevel != "" {
		fmt.Fprintf(&b, "Energy Level: %s\n", f.EnergyLevel)
	}
	if f.AgeRange != "" {
		fmt.Fprintf(&b, "Age Range: %s\n", f.AgeRange)
	}
	b.WriteString("Make it fun, educational, and safe for children.")
	return b.String()
}
