package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndrivA89/mindnotes/internal/domain"
	"github.com/AndrivA89/mindnotes/internal/repository"
	"github.com/AndrivA89/mindnotes/internal/storage"
	"github.com/AndrivA89/mindnotes/internal/summarizer"
)

var fixedNow = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

type stubSummarizer struct {
	summary string
	err     error
	calls   int
}

func (s *stubSummarizer) Summarize(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.summary, s.err
}

func newNotes(t *testing.T, sum Summarizer) (*NoteUseCase, context.Context) {
	t.Helper()
	repo := repository.NewKVNoteRepository(storage.NewMemory())
	user := domain.NewUser("owner@example.com", fixedNow)
	return NewNoteUseCase(repo, sum, zerolog.Nop()), WithUser(context.Background(), &user)
}

func TestCreateNoteRequiresSession(t *testing.T) {
	uc, _ := newNotes(t, &stubSummarizer{})
	_, err := uc.CreateNote(context.Background(), domain.NoteInput{Title: "T"})
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestCreateNote(t *testing.T) {
	uc, ctx := newNotes(t, &stubSummarizer{})

	note, err := uc.CreateNote(ctx, domain.NoteInput{Title: "T", Content: "C", Color: domain.Blue})
	require.NoError(t, err)

	assert.NotEmpty(t, note.ID)
	assert.Equal(t, "T", note.Title)
	assert.Equal(t, "C", note.Content)
	assert.Equal(t, domain.Blue, note.Color)
	assert.Equal(t, UserFromContext(ctx).ID, note.UserID, "note should be owned by the session user")
	assert.Equal(t, note.CreatedAt, note.UpdatedAt)
}

func TestCreateNoteDefaults(t *testing.T) {
	uc, ctx := newNotes(t, &stubSummarizer{})

	note, err := uc.CreateNote(ctx, domain.NoteInput{})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTitle, note.Title)
	assert.Equal(t, domain.DefaultColor, note.Color)
	assert.Nil(t, note.Summary)
}

func TestCreateNoteRejectsUnknownColor(t *testing.T) {
	uc, ctx := newNotes(t, &stubSummarizer{})

	_, err := uc.CreateNote(ctx, domain.NoteInput{Title: "T", Color: "red"})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "color must be one of")

	notes, err := uc.ListNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes, "rejected note should not be stored")
}

func TestUpdateNoteColorOnly(t *testing.T) {
	uc, ctx := newNotes(t, &stubSummarizer{})

	created, err := uc.CreateNote(ctx, domain.NoteInput{Title: "T", Content: "C", Color: domain.Yellow})
	require.NoError(t, err)

	pink := domain.Pink
	updated, err := uc.UpdateNote(ctx, created.ID, domain.NotePatch{Color: &pink})
	require.NoError(t, err)

	assert.Equal(t, domain.Pink, updated.Color)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Content, updated.Content)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestUpdateNoteValidatesPatch(t *testing.T) {
	uc, ctx := newNotes(t, &stubSummarizer{})
	created, err := uc.CreateNote(ctx, domain.NoteInput{Title: "T"})
	require.NoError(t, err)

	bad := domain.Color("orange")
	_, err = uc.UpdateNote(ctx, created.ID, domain.NotePatch{Color: &bad})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateAndDeleteMissingNote(t *testing.T) {
	uc, ctx := newNotes(t, &stubSummarizer{})

	title := "x"
	_, err := uc.UpdateNote(ctx, "missing", domain.NotePatch{Title: &title})
	assert.True(t, IsNotFound(err), "update of missing note should be not found, got %v", err)

	err = uc.DeleteNote(ctx, "missing")
	assert.True(t, IsNotFound(err), "delete of missing note should be not found, got %v", err)
}

func TestNotesOfOtherUsersAreHidden(t *testing.T) {
	uc, ctx := newNotes(t, &stubSummarizer{})
	created, err := uc.CreateNote(ctx, domain.NoteInput{Title: "private"})
	require.NoError(t, err)

	stranger := domain.NewUser("stranger@example.com", fixedNow)
	otherCtx := WithUser(context.Background(), &stranger)

	_, err = uc.GetNote(otherCtx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.DeleteNote(otherCtx, created.ID), domain.ErrNotFound)

	notes, err := uc.ListNotes(otherCtx)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestCreateThenListReturnsNoteFirstOnce(t *testing.T) {
	uc, ctx := newNotes(t, &stubSummarizer{})
	_, err := uc.CreateNote(ctx, domain.NoteInput{Title: "older"})
	require.NoError(t, err)
	created, err := uc.CreateNote(ctx, domain.NoteInput{Title: "newer"})
	require.NoError(t, err)

	notes, err := uc.ListNotes(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, notes)
	assert.Equal(t, created.ID, notes[0].ID)

	seen := 0
	for _, n := range notes {
		if n.ID == created.ID {
			seen++
		}
	}
	assert.Equal(t, 1, seen)
}

func TestSummarizeNoteStoresSummary(t *testing.T) {
	sum := &stubSummarizer{summary: "Short and sweet."}
	uc, ctx := newNotes(t, sum)

	created, err := uc.CreateNote(ctx, domain.NoteInput{Title: "T", Content: strings.Repeat("content ", 10)})
	require.NoError(t, err)

	updated, err := uc.SummarizeNote(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Short and sweet.", updated.SummaryText())
	assert.Equal(t, 1, sum.calls)

	stored, err := uc.GetNote(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Short and sweet.", stored.SummaryText())
}

func TestSummarizeNoteFailureStoresNothing(t *testing.T) {
	failure := errors.New("upstream down")
	uc, ctx := newNotes(t, &stubSummarizer{summary: "fallback", err: failure})

	created, err := uc.CreateNote(ctx, domain.NoteInput{Title: "T", Content: strings.Repeat("content ", 10)})
	require.NoError(t, err)

	_, err = uc.SummarizeNote(ctx, created.ID)
	assert.ErrorIs(t, err, failure)

	stored, err := uc.GetNote(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Summary, "failed summary should not be stored")
}

func TestSummarizeNoteShortContent(t *testing.T) {
	uc, ctx := newNotes(t, summarizer.NewHeuristic())

	created, err := uc.CreateNote(ctx, domain.NoteInput{Title: "Shopping", Content: "Buy milk. Then eggs and bread."})
	require.NoError(t, err)

	updated, err := uc.SummarizeNote(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk.", updated.SummaryText())

	stored, err := uc.GetNote(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk.", stored.SummaryText())
}

func TestSummarizeTextTooShort(t *testing.T) {
	sum := &stubSummarizer{summary: "unused"}
	uc, ctx := newNotes(t, sum)

	_, err := uc.SummarizeText(ctx, "tiny")
	assert.ErrorIs(t, err, ErrContentTooShort)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, sum.calls, "summarizer should not be called")
}

func TestSummarizeTextReturnsFallbackWithError(t *testing.T) {
	failure := errors.New("no key")
	uc, ctx := newNotes(t, &stubSummarizer{summary: "fallback text", err: failure})

	summary, err := uc.SummarizeText(ctx, strings.Repeat("x", MinSummaryInput))
	assert.ErrorIs(t, err, failure)
	assert.Equal(t, "fallback text", summary)
}

func TestSeedWelcome(t *testing.T) {
	uc, ctx := newNotes(t, &stubSummarizer{})

	seeded, err := uc.SeedWelcome(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)

	notes, err := uc.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, "Welcome to MindNotes!", notes[0].Title, "welcome note should be listed first")
	assert.Equal(t, "Ideas for Weekend Trip", notes[2].Title)
	assert.True(t, notes[0].HasSummary())

	seeded, err = uc.SeedWelcome(ctx)
	require.NoError(t, err)
	assert.False(t, seeded, "seeding twice should be a no-op")
}

func TestSearchNotes(t *testing.T) {
	uc, ctx := newNotes(t, &stubSummarizer{})
	_, err := uc.CreateNote(ctx, domain.NoteInput{Title: "Groceries", Content: "milk"})
	require.NoError(t, err)
	_, err = uc.CreateNote(ctx, domain.NoteInput{Title: "Work", Content: "deadline"})
	require.NoError(t, err)

	found, err := uc.SearchNotes(ctx, "MILK")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Groceries", found[0].Title)
}
