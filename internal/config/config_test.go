package config

import "testing"

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("API_KEY", "")
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("GEMINI_BASE_URL", "")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "")

	cfg := FromEnv()
	if cfg.APIKey != "" {
		t.Fatalf("apiKey = %q, want empty", cfg.APIKey)
	}
	if cfg.Provider != ProviderGemini {
		t.Fatalf("provider = %q, want %q", cfg.Provider, ProviderGemini)
	}
	if cfg.Model != "gemini-2.5-flash-preview-05-20" {
		t.Fatalf("model = %q, want gemini-2.5-flash-preview-05-20", cfg.Model)
	}
	if cfg.GeminiBaseURL != "https://generativelanguage.googleapis.com/v1beta" {
		t.Fatalf("geminiBaseURL = %q", cfg.GeminiBaseURL)
	}
	if cfg.TimeoutSeconds != 0 {
		t.Fatalf("timeoutSeconds = %d, want 0", cfg.TimeoutSeconds)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("API_KEY", "secret")
	t.Setenv("LLM_PROVIDER", "openrouter")
	t.Setenv("LLM_MODEL", "gemini-2.0-pro")
	t.Setenv("GEMINI_BASE_URL", "http://localhost:9999")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "30")

	cfg := FromEnv()
	if cfg.APIKey != "secret" {
		t.Fatalf("apiKey = %q, want secret", cfg.APIKey)
	}
	if cfg.Provider != ProviderOpenRouter {
		t.Fatalf("provider = %q, want %q", cfg.Provider, ProviderOpenRouter)
	}
	if cfg.Model != "gemini-2.0-pro" {
		t.Fatalf("model = %q, want gemini-2.0-pro", cfg.Model)
	}
	if cfg.GeminiBaseURL != "http://localhost:9999" {
		t.Fatalf("geminiBaseURL = %q", cfg.GeminiBaseURL)
	}
	if cfg.TimeoutSeconds != 30 {
		t.Fatalf("timeoutSeconds = %d, want 30", cfg.TimeoutSeconds)
	}
}

func TestFromEnvBadTimeoutFallsBack(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "not-a-number")

	if got := FromEnv().TimeoutSeconds; got != 0 {
		t.Fatalf("timeoutSeconds = %d, want 0", got)
	}
}
