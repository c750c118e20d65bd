// Package readme turns a project description into README Markdown by way of
// an LLM provider.
package readme

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/forge-ai/readmegen/internal/prompt"
	"github.com/forge-ai/readmegen/internal/provider"
)

// Generator is stateless: each Generate call is an independent request.
type Generator struct {
	provider provider.Provider
}

func New(p provider.Provider) *Generator {
	return &Generator{provider: p}
}

// Generate renders the prompt around description and submits it. The returned
// text is the provider's output unchanged: no trimming, no Markdown
// validation.
func (g *Generator) Generate(ctx context.Context, description string) (string, error) {
	text, err := g.provider.Generate(ctx, prompt.Build(description))
	if err != nil {
		log.Error().Err(err).Msg("generation failed")
		return "", err
	}
	log.Info().Int("bytes", len(text)).Msg("readme generated")
	return text, nil
}

// Render maps a generation outcome onto the text printed to the user.
// Failures become output rather than exit codes, so a caller script sees the
// error message where the README would have been.
func Render(text string, err error) string {
	switch {
	case err == nil:
		return text
	case errors.Is(err, provider.ErrResponseShape):
		return fmt.Sprintf("Error parsing API response: The response structure is invalid. %v", err)
	default:
		return fmt.Sprintf("Error connecting to the API: %v", err)
	}
}
