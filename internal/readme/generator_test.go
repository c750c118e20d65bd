package readme

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/forge-ai/readmegen/internal/provider"
)

// stubProvider records the prompt it was handed and returns a canned result.
type stubProvider struct {
	prompt string
	text   string
	err    error
}

func (s *stubProvider) Generate(ctx context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.text, s.err
}

func TestGeneratePassesPromptWithDescription(t *testing.T) {
	stub := &stubProvider{text: "# Hello"}
	g := New(stub)

	got, err := g.Generate(context.Background(), "a CLI for tracking houseplants")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "# Hello" {
		t.Fatalf("text = %q, want %q", got, "# Hello")
	}
	if !strings.Contains(stub.prompt, "a CLI for tracking houseplants") {
		t.Fatalf("prompt missing description:\n%s", stub.prompt)
	}
	if !strings.Contains(stub.prompt, "GitHub project assistant") {
		t.Fatalf("prompt missing instructions:\n%s", stub.prompt)
	}
}

func TestRenderSuccessIsVerbatim(t *testing.T) {
	text := "  # Title\n\nbody with trailing space  \n"
	if got := Render(text, nil); got != text {
		t.Fatalf("Render altered the text: %q", got)
	}
}

func TestRenderConnectionError(t *testing.T) {
	err := fmt.Errorf("%w: dial tcp: connection refused", provider.ErrConnection)
	got := Render("", err)
	if !strings.HasPrefix(got, "Error connecting to the API:") {
		t.Fatalf("rendered = %q", got)
	}
}

func TestRenderShapeError(t *testing.T) {
	err := fmt.Errorf("%w: missing candidates", provider.ErrResponseShape)
	got := Render("", err)
	if !strings.HasPrefix(got, "Error parsing API response: The response structure is invalid.") {
		t.Fatalf("rendered = %q", got)
	}
}

func TestRenderUnknownErrorFallsBackToConnection(t *testing.T) {
	got := Render("", fmt.Errorf("something unexpected"))
	if !strings.HasPrefix(got, "Error connecting to the API:") {
		t.Fatalf("rendered = %q", got)
	}
}
