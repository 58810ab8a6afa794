package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com"
	geminiModel   = "gemini-2.0-flash"
)

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// GeminiSummarizer calls the Gemini generateContent REST endpoint.
type GeminiSummarizer struct {
	model      string
	baseURL    string
	keys       KeySource
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewGeminiSummarizer(cfg Config, keys KeySource, httpClient *http.Client, logger zerolog.Logger) *GeminiSummarizer {
	s := &GeminiSummarizer{
		model:      cfg.Model,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		keys:       keys,
		httpClient: httpClient,
		logger:     logger,
	}
	if s.model == "" {
		s.model = geminiModel
	}
	if s.baseURL == "" {
		s.baseURL = geminiBaseURL
	}
	return s
}

func (s *GeminiSummarizer) endpoint() string {
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent", s.baseURL, s.model)
}

// Summarize makes one generateContent call and returns the first candidate
// text verbatim. On any failure it returns Fallback and the error.
func (s *GeminiSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	key, err := lookupKey(ctx, s.keys, Gemini)
	if err != nil {
		s.logger.Warn().Err(err).Msg("summarize skipped")
		return Fallback, err
	}

	body, err := json.Marshal(geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: systemPrompt}}},
		Contents:          []geminiContent{{Role: "user", Parts: []geminiPart{{Text: text}}}},
	})
	if err != nil {
		return Fallback, fmt.Errorf("marshal gemini request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint(), bytes.NewReader(body))
	if err != nil {
		return Fallback, fmt.Errorf("create gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", key)

	s.logger.Debug().Str("model", s.model).Int("chars", len(text)).Msg("requesting summary")
	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Error().Err(err).Msg("summary request failed")
		return Fallback, fmt.Errorf("gemini request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Fallback, fmt.Errorf("read gemini response: %w", err)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil && resp.StatusCode == http.StatusOK {
		return Fallback, fmt.Errorf("decode gemini response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := strings.TrimSpace(string(raw))
		if parsed.Error != nil {
			msg = parsed.Error.Message
		}
		s.logger.Error().Int("status", resp.StatusCode).Str("error", msg).Msg("summary request rejected")
		return Fallback, fmt.Errorf("gemini returned %d: %s", resp.StatusCode, msg)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		s.logger.Warn().Msg("summary response had no candidates")
		return Fallback, fmt.Errorf("gemini returned no candidates")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
