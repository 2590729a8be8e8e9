package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "CORS_ALLOW_ORIGINS", "OPENAI_API_KEY",
		"LLM_MODEL", "ASSISTANT_MODEL", "EXTRACTION_METHOD", "ENV",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("default port: %q", cfg.Port)
	}
	if !reflect.DeepEqual(cfg.CORSAllowOrigin, []string{"http://localhost:3000"}) {
		t.Fatalf("default CORS origins: %v", cfg.CORSAllowOrigin)
	}
	if cfg.LLMModel != "gpt-3.5-turbo" {
		t.Fatalf("default LLM model: %q", cfg.LLMModel)
	}
	if cfg.AssistantModel != "gpt-4o" {
		t.Fatalf("default assistant model: %q", cfg.AssistantModel)
	}
	if cfg.ExtractionMethod != "assistants" {
		t.Fatalf("default extraction method: %q", cfg.ExtractionMethod)
	}
	if cfg.Env != "dev" {
		t.Fatalf("default env: %q", cfg.Env)
	}
	if cfg.OpenAIAPIKey != "" {
		t.Fatalf("API key has no default, got %q", cfg.OpenAIAPIKey)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example.com, https://b.example.com ,")
	t.Setenv("OPENAI_API_KEY", "  sk-test  ")
	t.Setenv("LLM_MODEL", "gpt-4o-mini")
	t.Setenv("EXTRACTION_METHOD", "LOCAL")
	t.Setenv("ENV", "PROD")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("port override: %q", cfg.Port)
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if !reflect.DeepEqual(cfg.CORSAllowOrigin, want) {
		t.Fatalf("CORS origins: %v", cfg.CORSAllowOrigin)
	}
	if cfg.OpenAIAPIKey != "sk-test" {
		t.Fatalf("API key should be trimmed, got %q", cfg.OpenAIAPIKey)
	}
	if cfg.ExtractionMethod != "local" {
		t.Fatalf("extraction method: %q", cfg.ExtractionMethod)
	}
	if cfg.Env != "production" {
		t.Fatalf("env normalization: %q", cfg.Env)
	}
}

func TestNormalizeEnv(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"production", "production"},
		{"prod", "production"},
		{" Staging ", "staging"},
		{"development", "dev"},
		{"", "dev"},
		{"garbage", "dev"},
	}
	for _, tt := range tests {
		if got := normalizeEnv(tt.in); got != tt.want {
			t.Fatalf("normalizeEnv(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeExtractionMethod(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"local", "local"},
		{" Local ", "local"},
		{"assistants", "assistants"},
		{"", "assistants"},
		{"anything-else", "assistants"},
	}
	for _, tt := range tests {
		if got := normalizeExtractionMethod(tt.in); got != tt.want {
			t.Fatalf("normalizeExtractionMethod(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
