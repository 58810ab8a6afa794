package badger

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndrivA89/mindnotes/internal/storage"
)

func TestStoreInMemory(t *testing.T) {
	ctx := context.Background()
	s, err := Open(InMemoryConfig(), zerolog.Nop())
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Get(ctx, "user")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound, "missing key should map to storage.ErrKeyNotFound")

	require.NoError(t, s.Set(ctx, "user", []byte(`{"email":"a@b.c"}`)))
	got, err := s.Get(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, `{"email":"a@b.c"}`, string(got))

	require.NoError(t, s.Delete(ctx, "user"))
	require.NoError(t, s.Delete(ctx, "user"), "deleting a missing key should not fail")
	_, err = s.Get(ctx, "user")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := Open(DefaultConfig(dir), zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "notes", []byte(`[]`)))
	require.NoError(t, s.Close())

	reopened, err := Open(DefaultConfig(dir), zerolog.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "notes")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(Config{}, zerolog.Nop())
	assert.Error(t, err, "persistent database without a path should fail")
}
