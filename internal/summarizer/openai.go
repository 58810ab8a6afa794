package summarizer

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
)

const (
	deepSeekBaseURL = "https://api.deepseek.com"
	deepSeekModel   = "deepseek-chat"
	openAIModel     = openai.GPT4oMini
)

// ChatCompletionSummarizer sends the note to an OpenAI-compatible chat
// completion endpoint (OpenAI itself or DeepSeek).
type ChatCompletionSummarizer struct {
	provider   Provider
	model      string
	baseURL    string
	keys       KeySource
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewChatCompletion(cfg Config, keys KeySource, httpClient *http.Client, logger zerolog.Logger) *ChatCompletionSummarizer {
	s := &ChatCompletionSummarizer{
		provider:   cfg.Provider,
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
		keys:       keys,
		httpClient: httpClient,
		logger:     logger,
	}
	if s.model == "" {
		s.model = openAIModel
		if s.provider == DeepSeek {
			s.model = deepSeekModel
		}
	}
	if s.baseURL == "" && s.provider == DeepSeek {
		s.baseURL = deepSeekBaseURL
	}
	return s
}

// Summarize makes one chat completion call and returns the first choice
// verbatim. On any failure it returns Fallback and the error.
func (s *ChatCompletionSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	key, err := lookupKey(ctx, s.keys, s.provider)
	if err != nil {
		s.logger.Warn().Err(err).Msg("summarize skipped")
		return Fallback, err
	}

	cfg := openai.DefaultConfig(key)
	if s.baseURL != "" {
		cfg.BaseURL = s.baseURL
	}
	cfg.HTTPClient = s.httpClient
	client := openai.NewClientWithConfig(cfg)

	s.logger.Debug().Str("model", s.model).Int("chars", len(text)).Msg("requesting summary")
	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			s.logger.Error().Int("status", apiErr.HTTPStatusCode).Str("error", apiErr.Message).Msg("summary request rejected")
		} else {
			s.logger.Error().Err(err).Msg("summary request failed")
		}
		return Fallback, fmt.Errorf("%s chat completion: %w", s.provider, err)
	}
	if len(resp.Choices) == 0 {
		s.logger.Warn().Msg("summary response had no choices")
		return Fallback, fmt.Errorf("%s chat completion: no choices returned", s.provider)
	}
	return resp.Choices[0].Message.Content, nil
}
