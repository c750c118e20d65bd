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

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiProvider implements the Provider interface for the Google AI Studio
// (Gemini) generateContent API.
type GeminiProvider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGeminiProvider creates a new Gemini provider instance. An empty baseURL
// selects the public endpoint; a nil client gets a default one with no
// timeout, so the call blocks until the endpoint responds.
func NewGeminiProvider(apiKey, model, baseURL string, client *http.Client) *GeminiProvider {
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	if client == nil {
		client = &http.Client{}
	}
	return &GeminiProvider{apiKey: apiKey, model: model, baseURL: baseURL, client: client}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

type geminiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate calls generateContent and returns candidates[0].content.parts[0].text.
// The API key travels both as the x-goog-api-key header and the key query
// parameter, matching what the endpoint accepts.
func (gp *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	body, _ := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", gp.baseURL, gp.model, gp.apiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConnection, err)
	}

	requestID := uuid.New().String()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", gp.apiKey)
	req.Header.Set("X-Request-Id", requestID)

	log.Debug().Str("request_id", requestID).Str("model", gp.model).Msg("calling gemini")

	resp, err := gp.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		var ge geminiError
		if json.Unmarshal(raw, &ge) == nil && ge.Error.Message != "" {
			return "", fmt.Errorf("%w: %s: %s", ErrConnection, resp.Status, ge.Error.Message)
		}
		return "", fmt.Errorf("%w: %s", ErrConnection, resp.Status)
	}

	var gr geminiResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return "", fmt.Errorf("%w: %v", ErrResponseShape, err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: missing candidates[0].content.parts[0].text", ErrResponseShape)
	}

	return gr.Candidates[0].Content.Parts[0].Text, nil
}
