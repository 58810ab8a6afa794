package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AndrivA89/mindnotes/internal/storage"
)

const apiKeyPrefix = "api_key/"

// APIKeyStore keeps one plaintext API key per summarizer provider.
type APIKeyStore struct {
	kv storage.KV
}

func NewAPIKeyStore(kv storage.KV) *APIKeyStore {
	return &APIKeyStore{kv: kv}
}

// APIKey returns the stored key for provider, or "" when none is set.
func (s *APIKeyStore) APIKey(ctx context.Context, provider string) (string, error) {
	raw, err := s.kv.Get(ctx, apiKeyPrefix+provider)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s api key: %w", provider, err)
	}
	return string(raw), nil
}

// SetAPIKey stores key for provider. A blank key removes the entry.
func (s *APIKeyStore) SetAPIKey(ctx context.Context, provider, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return s.ClearAPIKey(ctx, provider)
	}
	if err := s.kv.Set(ctx, apiKeyPrefix+provider, []byte(key)); err != nil {
		return fmt.Errorf("write %s api key: %w", provider, err)
	}
	return nil
}

func (s *APIKeyStore) ClearAPIKey(ctx context.Context, provider string) error {
	if err := s.kv.Delete(ctx, apiKeyPrefix+provider); err != nil {
		return fmt.Errorf("clear %s api key: %w", provider, err)
	}
	return nil
}
