package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndrivA89/mindnotes/internal/domain"
	"github.com/AndrivA89/mindnotes/internal/storage"
)

func TestUserStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore(storage.NewMemory())

	_, err := store.LoadUser(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSession)

	user := domain.NewUser("a@example.com", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, store.SaveUser(ctx, &user))

	loaded, err := store.LoadUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, user, *loaded)

	require.NoError(t, store.ClearUser(ctx))
	require.NoError(t, store.ClearUser(ctx), "clearing an empty session should not fail")
	_, err = store.LoadUser(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestUserStoreDropsCorruptRecord(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	require.NoError(t, kv.Set(ctx, userKey, []byte("garbage")))

	store := NewUserStore(kv)
	_, err := store.LoadUser(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSession)

	_, err = kv.Get(ctx, userKey)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound, "corrupt record should be removed")
}
