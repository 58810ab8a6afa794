package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndrivA89/mindnotes/internal/config"
	"github.com/AndrivA89/mindnotes/internal/domain"
	"github.com/AndrivA89/mindnotes/internal/summarizer"
)

func memoryConfig() config.Config {
	cfg := config.Default()
	cfg.Storage.Backend = config.BackendMemory
	return cfg
}

func TestAppFlow(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, memoryConfig(), zerolog.Nop())
	require.NoError(t, err)
	defer a.Close()

	_, _, err = a.SignIn(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSession, "no session before login")

	user, err := a.Sessions.Login(ctx, domain.Credentials{Email: domain.DemoEmail, Password: domain.DemoPassword})
	require.NoError(t, err)
	ctx, err = a.Start(ctx, user)
	require.NoError(t, err)

	notes, err := a.Notes.ListNotes(ctx)
	require.NoError(t, err)
	assert.Len(t, notes, 3, "welcome notes should be seeded")

	signedIn, current, err := a.SignIn(context.Background())
	require.NoError(t, err)
	assert.Equal(t, user.ID, current.ID)

	created, err := a.Notes.CreateNote(signedIn, domain.NoteInput{
		Title:   "Long note",
		Content: "Heuristic summaries need some content. This note has enough words to pass the editor minimum.",
		Color:   domain.Pink,
	})
	require.NoError(t, err)

	summarized, err := a.Notes.SummarizeNote(signedIn, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Heuristic summaries need some content.", summarized.SummaryText())
}

func TestAppDelegatedWithoutKey(t *testing.T) {
	ctx := context.Background()
	cfg := memoryConfig()
	cfg.Summarizer.Provider = summarizer.DeepSeek
	cfg.Notes.SeedWelcome = false

	a, err := New(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	defer a.Close()

	user, err := a.Sessions.Register(ctx, domain.Credentials{Email: "a@example.com", Password: "secret"})
	require.NoError(t, err)
	ctx, err = a.Start(ctx, user)
	require.NoError(t, err)

	text := "A note that is long enough to be summarized by a hosted model endpoint."
	summary, err := a.Notes.SummarizeText(ctx, text)
	assert.ErrorIs(t, err, summarizer.ErrNoAPIKey)
	assert.Equal(t, summarizer.Fallback, summary)
}

func TestAppBadgerBackendPersists(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Storage.Badger.Path = filepath.Join(t.TempDir(), "data")
	cfg.Notes.SeedWelcome = false

	a, err := New(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	user, err := a.Sessions.Register(ctx, domain.Credentials{Email: "a@example.com", Password: "secret"})
	require.NoError(t, err)
	signed, err := a.Start(ctx, user)
	require.NoError(t, err)
	_, err = a.Notes.CreateNote(signed, domain.NoteInput{Title: "kept"})
	require.NoError(t, err)
	require.NoError(t, a.Close())

	reopened, err := New(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	signed, _, err = reopened.SignIn(ctx)
	require.NoError(t, err)
	notes, err := reopened.Notes.ListNotes(signed)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "kept", notes[0].Title)
}
