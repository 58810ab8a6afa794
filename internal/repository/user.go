package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AndrivA89/mindnotes/internal/domain"
	"github.com/AndrivA89/mindnotes/internal/storage"
)

const userKey = "user"

// UserStore persists the signed-in user as one JSON record.
type UserStore struct {
	kv storage.KV
}

func NewUserStore(kv storage.KV) *UserStore {
	return &UserStore{kv: kv}
}

func (s *UserStore) SaveUser(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.kv.Set(ctx, userKey, raw); err != nil {
		return fmt.Errorf("write user: %w", err)
	}
	return nil
}

// LoadUser drops a record that cannot be decoded and reports no session.
func (s *UserStore) LoadUser(ctx context.Context) (*domain.User, error) {
	raw, err := s.kv.Get(ctx, userKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil, domain.ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("read user: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil || user.ID == "" {
		if derr := s.kv.Delete(ctx, userKey); derr != nil {
			return nil, fmt.Errorf("drop corrupt user record: %w", derr)
		}
		return nil, domain.ErrNoSession
	}
	return &user, nil
}

func (s *UserStore) ClearUser(ctx context.Context) error {
	if err := s.kv.Delete(ctx, userKey); err != nil {
		return fmt.Errorf("clear user: %w", err)
	}
	return nil
}
