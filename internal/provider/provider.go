// Package provider contains the LLM API clients.
package provider

import (
	"context"
	"errors"
)

// Provider is an abstraction for different LLM API providers.
// Each implementation handles provider-specific HTTP details, authentication,
// request/response formatting, and error handling.
type Provider interface {
	// Generate calls the LLM API with the given prompt and returns the
	// generated text unchanged. One attempt per call, no retries.
	Generate(ctx context.Context, prompt string) (string, error)
}

// Every failure a Provider returns wraps one of these two categories, so
// callers can tell a dead or unhappy endpoint apart from a response that
// arrived but did not carry the expected fields.
var (
	// ErrConnection covers dial/TLS/timeout failures and HTTP 4xx/5xx
	// statuses. Both are one category: a usable response never arrived.
	ErrConnection = errors.New("connection failed")

	// ErrResponseShape covers bodies that are not JSON or are missing the
	// expected candidate text.
	ErrResponseShape = errors.New("unexpected response shape")
)
