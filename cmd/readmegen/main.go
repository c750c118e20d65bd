// readmegen generates a candidate README.md for a short project description
// by calling a remote LLM text-generation endpoint and printing the result.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/forge-ai/readmegen/internal/config"
	"github.com/forge-ai/readmegen/internal/provider"
	"github.com/forge-ai/readmegen/internal/readme"
)

// errMissingAPIKey distinguishes the configuration failure (exit 1) from
// usage errors (exit 2). Once configuration succeeds the process exits 0
// whether or not generation worked.
var errMissingAPIKey = errors.New("API key not set")

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout, os.Args[1:]); err != nil {
		if errors.Is(err, errMissingAPIKey) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

// run carries the whole invocation so main stays a thin exit-code shell.
func run(ctx context.Context, out io.Writer, args []string) error {
	fs := flag.NewFlagSet("readmegen", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: readmegen <description>")
		fmt.Fprintln(fs.Output(), "Generates a README.md file using an AI model.")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return errors.New("a project description is required")
	}
	description := fs.Arg(0)

	cfg := config.FromEnv()
	if cfg.APIKey == "" {
		// Reported on stdout, before any network activity.
		fmt.Fprintln(out, "Error: API key not found. Please set the 'API_KEY' environment variable.")
		return errMissingAPIKey
	}

	// Timeout 0 leaves the client unbounded; cancellation then only comes
	// from the signal context.
	client := &http.Client{}
	if cfg.TimeoutSeconds > 0 {
		client.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	var p provider.Provider
	switch cfg.Provider {
	case config.ProviderOpenRouter:
		p = provider.NewOpenRouterProvider(cfg.APIKey, cfg.Model, cfg.OpenRouterBaseURL, client)
	default:
		p = provider.NewGeminiProvider(cfg.APIKey, cfg.Model, cfg.GeminiBaseURL, client)
	}

	log.Info().Str("provider", cfg.Provider).Str("model", cfg.Model).Msg("generating readme")

	fmt.Fprintln(out, "Generating README.md...")
	text, err := readme.New(p).Generate(ctx, description)
	fmt.Fprintln(out, readme.Render(text, err))
	return nil
}
