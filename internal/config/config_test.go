package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Model != "gemini-2.0-flash" {
		t.Fatalf("expected default model, got %q", cfg.Model)
	}
	if cfg.Debug {
		t.Fatal("expected debug off by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("KIDQUEST_MODEL", "gemini-2.5-pro")
	t.Setenv("KIDQUEST_DB", "/tmp/kidquest-test.db")
	t.Setenv("KIDQUEST_DEBUG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Model != "gemini-2.5-pro" {
		t.Fatalf("model override not applied: %q", cfg.Model)
	}
	if cfg.DBPath != "/tmp/kidquest-test.db" {
		t.Fatalf("db override not applied: %q", cfg.DBPath)
	}
	if !cfg.Debug {
		t.Fatal("debug override not applied")
	}
}

func TestLoadInvalidBool(t *testing.T) {
	t.Setenv("KIDQUEST_DEBUG", "not-a-bool")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
