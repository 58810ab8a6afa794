package usecase

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/AndrivA89/mindnotes/internal/domain"
)

// MinSummaryInput is the shortest content the editor will summarize.
const MinSummaryInput = 50

var ErrContentTooShort = fmt.Errorf("%w: content needs at least %d characters to summarize",
	domain.ErrValidation, MinSummaryInput)

type NoteUseCase struct {
	repo       NoteRepository
	summarizer Summarizer
	logger     zerolog.Logger
}

func NewNoteUseCase(repo NoteRepository, summarizer Summarizer, logger zerolog.Logger) *NoteUseCase {
	return &NoteUseCase{
		repo:       repo,
		summarizer: summarizer,
		logger:     logger.With().Str("component", "notes").Logger(),
	}
}

func owner(ctx context.Context) (*domain.User, error) {
	user := UserFromContext(ctx)
	if user == nil {
		return nil, domain.ErrNoSession
	}
	return user, nil
}

func (uc *NoteUseCase) ListNotes(ctx context.Context) ([]*domain.Note, error) {
	user, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	return uc.repo.ListNotes(ctx, user.ID)
}

func (uc *NoteUseCase) SearchNotes(ctx context.Context, query string) ([]*domain.Note, error) {
	user, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	return uc.repo.SearchNotes(ctx, user.ID, query)
}

// GetNote returns the note only when it belongs to the signed-in user.
func (uc *NoteUseCase) GetNote(ctx context.Context, id string) (*domain.Note, error) {
	user, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	note, err := uc.repo.GetNote(ctx, id)
	if err != nil {
		return nil, err
	}
	if note.UserID != user.ID {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return note, nil
}

func (uc *NoteUseCase) CreateNote(ctx context.Context, in domain.NoteInput) (*domain.Note, error) {
	user, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(in); err != nil {
		return nil, validationError(err)
	}

	note := &domain.Note{
		Title:   in.Title,
		Content: in.Content,
		Color:   in.Color,
		UserID:  user.ID,
	}
	if note.Title == "" {
		note.Title = domain.DefaultTitle
	}
	if note.Color == "" {
		note.Color = domain.DefaultColor
	}
	if in.Summary != nil && *in.Summary != "" {
		s := *in.Summary
		note.Summary = &s
	}

	created, err := uc.repo.CreateNote(ctx, note)
	if err != nil {
		uc.logger.Error().Err(err).Msg("create note failed")
		return nil, err
	}
	uc.logger.Info().Str("note_id", created.ID).Msg("note created")
	return created, nil
}

func (uc *NoteUseCase) UpdateNote(ctx context.Context, id string, patch domain.NotePatch) (*domain.Note, error) {
	if err := validate.Struct(patch); err != nil {
		return nil, validationError(err)
	}
	if _, err := uc.GetNote(ctx, id); err != nil {
		return nil, err
	}

	updated, err := uc.repo.UpdateNote(ctx, id, patch)
	if err != nil {
		uc.logger.Error().Err(err).Str("note_id", id).Msg("update note failed")
		return nil, err
	}
	uc.logger.Info().Str("note_id", id).Msg("note updated")
	return updated, nil
}

func (uc *NoteUseCase) DeleteNote(ctx context.Context, id string) error {
	if _, err := uc.GetNote(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteNote(ctx, id); err != nil {
		uc.logger.Error().Err(err).Str("note_id", id).Msg("delete note failed")
		return err
	}
	uc.logger.Info().Str("note_id", id).Msg("note deleted")
	return nil
}

// SummarizeText runs the configured summarizer over unsaved editor content.
// On failure the returned string is the summarizer's fallback text.
func (uc *NoteUseCase) SummarizeText(ctx context.Context, text string) (string, error) {
	if utf8.RuneCountInString(text) < MinSummaryInput {
		return "", ErrContentTooShort
	}
	summary, err := uc.summarizer.Summarize(ctx, text)
	if err != nil {
		uc.logger.Error().Err(err).Msg("summarize failed")
		return summary, err
	}
	return summary, nil
}

// SummarizeNote summarizes a stored note and saves the result on it. Short
// notes are summarized too; the length floor only guards the editor.
func (uc *NoteUseCase) SummarizeNote(ctx context.Context, id string) (*domain.Note, error) {
	note, err := uc.GetNote(ctx, id)
	if err != nil {
		return nil, err
	}
	summary, err := uc.summarizer.Summarize(ctx, note.Content)
	if err != nil {
		uc.logger.Error().Err(err).Str("note_id", id).Msg("summarize failed")
		return nil, err
	}
	updated, err := uc.repo.UpdateNote(ctx, id, domain.NotePatch{Summary: &summary})
	if err != nil {
		uc.logger.Error().Err(err).Str("note_id", id).Msg("store summary failed")
		return nil, err
	}
	uc.logger.Info().Str("note_id", id).Msg("summary stored")
	return updated, nil
}

// SeedWelcome adds the starter notes when the signed-in user has none.
// It reports whether anything was written.
func (uc *NoteUseCase) SeedWelcome(ctx context.Context) (bool, error) {
	notes, err := uc.ListNotes(ctx)
	if err != nil {
		return false, err
	}
	if len(notes) > 0 {
		return false, nil
	}

	welcome := domain.WelcomeNotes()
	// Create prepends, so insert oldest first to keep the listed order.
	for i := len(welcome) - 1; i >= 0; i-- {
		if _, err := uc.CreateNote(ctx, welcome[i]); err != nil {
			return false, fmt.Errorf("seed welcome notes: %w", err)
		}
	}
	return true, nil
}

// IsNotFound reports whether err means the note does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
