package usecase

import (
	"context"

	"github.com/AndrivA89/mindnotes/internal/domain"
)

// NoteRepository is the note store. Implementations assign ids and
// timestamps on create and return domain.ErrNotFound for unknown ids.
type NoteRepository interface {
	ListNotes(ctx context.Context, ownerID string) ([]*domain.Note, error)
	GetNote(ctx context.Context, id string) (*domain.Note, error)
	CreateNote(ctx context.Context, note *domain.Note) (*domain.Note, error)
	UpdateNote(ctx context.Context, id string, patch domain.NotePatch) (*domain.Note, error)
	DeleteNote(ctx context.Context, id string) error
	SearchNotes(ctx context.Context, ownerID, query string) ([]*domain.Note, error)
}

// UserStore holds the single persisted session record.
type UserStore interface {
	SaveUser(ctx context.Context, user *domain.User) error
	// LoadUser returns domain.ErrNoSession when nothing is stored.
	LoadUser(ctx context.Context) (*domain.User, error)
	ClearUser(ctx context.Context) error
}

type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}
