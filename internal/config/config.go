package config

import (
	"os"
	"strconv"
)

// Provider names accepted in LLM_PROVIDER.
const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
)

const defaultModel = "gemini-2.5-flash-preview-05-20"

type Config struct {
	APIKey            string
	Provider          string
	Model             string
	GeminiBaseURL     string
	OpenRouterBaseURL string
	// TimeoutSeconds bounds the API call. 0 means no timeout: the call
	// blocks until the remote endpoint responds.
	TimeoutSeconds int
}

func FromEnv() Config {
	return Config{
		APIKey:            os.Getenv("API_KEY"),
		Provider:          env("LLM_PROVIDER", ProviderGemini),
		Model:             env("LLM_MODEL", defaultModel),
		GeminiBaseURL:     env("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		OpenRouterBaseURL: env("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		TimeoutSeconds:    envInt("REQUEST_TIMEOUT_SECONDS", 0),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		n, _ := strconv.Atoi(v)
		if n > 0 {
			return n
		}
	}
	return def
}
