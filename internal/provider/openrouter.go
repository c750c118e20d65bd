package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider implements the Provider interface for OpenRouter's API.
// OpenRouter provides a unified, OpenAI-compatible interface to multiple LLM
// providers, which makes it a drop-in alternative when a Gemini key is not
// available.
type OpenRouterProvider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewOpenRouterProvider creates a new OpenRouter provider instance.
func NewOpenRouterProvider(apiKey, model, baseURL string, client *http.Client) *OpenRouterProvider {
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}
	if client == nil {
		client = &http.Client{}
	}
	return &OpenRouterProvider{apiKey: apiKey, model: model, baseURL: baseURL, client: client}
}

// Generate calls the chat completions endpoint and returns
// choices[0].message.content.
func (or *OpenRouterProvider) Generate(ctx context.Context, prompt string) (string, error) {
	body, _ := json.Marshal(map[string]any{
		"model":    or.model,
		"messages": []map[string]string{{"role": "user", "content": prompt}},
	})

	req, err := http.NewRequestWithContext(ctx, "POST", or.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConnection, err)
	}

	requestID := uuid.New().String()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+or.apiKey)
	req.Header.Set("X-Request-Id", requestID)

	log.Debug().Str("request_id", requestID).Str("model", or.model).Msg("calling openrouter")

	resp, err := or.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	var response struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if resp.StatusCode >= 400 {
		if json.Unmarshal(raw, &response) == nil && response.Error != nil {
			return "", fmt.Errorf("%w: %s: %s", ErrConnection, resp.Status, response.Error.Message)
		}
		return "", fmt.Errorf("%w: %s", ErrConnection, resp.Status)
	}
	if err := json.Unmarshal(raw, &response); err != nil {
		return "", fmt.Errorf("%w: %v", ErrResponseShape, err)
	}
	if response.Error != nil {
		return "", fmt.Errorf("%w: %s", ErrConnection, response.Error.Message)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("%w: missing choices[0].message.content", ErrResponseShape)
	}

	return response.Choices[0].Message.Content, nil
}
