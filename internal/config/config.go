package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is loaded from environment variables.
type Config struct {
	GeminiAPIKey string `env:"KIDQUEST_GEMINI_API_KEY"`
	Model        string `env:"KIDQUEST_MODEL" envDefault:"gemini-2.0-flash"`
	DBPath       string `env:"KIDQUEST_DB"`
	Debug        bool   `env:"KIDQUEST_DEBUG" envDefault:"false"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
