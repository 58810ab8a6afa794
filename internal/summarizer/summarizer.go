// Package summarizer turns note content into a short summary, either with
// local text heuristics or by delegating to a hosted chat model.
package summarizer

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
)

// Fallback is returned alongside an error when a delegated summary fails.
const Fallback = "Unable to generate summary at this time."

const systemPrompt = "You are a helpful assistant that summarizes notes concisely."

var ErrNoAPIKey = errors.New("no API key configured")

type Provider string

const (
	Heuristic Provider = "heuristic"
	DeepSeek  Provider = "deepseek"
	OpenAI    Provider = "openai"
	Gemini    Provider = "gemini"
)

var Providers = []Provider{Heuristic, DeepSeek, OpenAI, Gemini}

func (p Provider) Valid() bool {
	for _, v := range Providers {
		if p == v {
			return true
		}
	}
	return false
}

// Delegated reports whether the provider calls a remote model and needs a key.
func (p Provider) Delegated() bool {
	return p.Valid() && p != Heuristic
}

// KeySource looks up the API key for a provider at call time. An empty key
// means none is configured.
type KeySource interface {
	APIKey(ctx context.Context, provider string) (string, error)
}

type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

type Config struct {
	Provider Provider
	// Model and BaseURL override the provider defaults when set.
	Model   string
	BaseURL string
}

// New builds the summarizer selected by cfg.Provider.
func New(cfg Config, keys KeySource, httpClient *http.Client, logger zerolog.Logger) (Summarizer, error) {
	logger = logger.With().Str("component", "summarizer").Str("provider", string(cfg.Provider)).Logger()
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	switch cfg.Provider {
	case Heuristic:
		return NewHeuristic(), nil
	case DeepSeek, OpenAI:
		return NewChatCompletion(cfg, keys, httpClient, logger), nil
	case Gemini:
		return NewGeminiSummarizer(cfg, keys, httpClient, logger), nil
	default:
		return nil, fmt.Errorf("unknown summarizer provider %q", cfg.Provider)
	}
}

func lookupKey(ctx context.Context, keys KeySource, provider Provider) (string, error) {
	if keys == nil {
		return "", ErrNoAPIKey
	}
	key, err := keys.APIKey(ctx, string(provider))
	if err != nil {
		return "", fmt.Errorf("load %s api key: %w", provider, err)
	}
	if key == "" {
		return "", fmt.Errorf("%w for %s", ErrNoAPIKey, provider)
	}
	return key, nil
}
