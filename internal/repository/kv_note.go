package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AndrivA89/mindnotes/internal/domain"
	"github.com/AndrivA89/mindnotes/internal/storage"
)

const notesKey = "notes"

// KVNoteRepository keeps every note in one JSON array under a single key.
// Each call reads, modifies and writes back the whole collection; there is
// no locking, so concurrent writers race and the last write wins.
type KVNoteRepository struct {
	kv  storage.KV
	now func() time.Time
}

func NewKVNoteRepository(kv storage.KV) *KVNoteRepository {
	return &KVNoteRepository{kv: kv, now: time.Now}
}

func (r *KVNoteRepository) load(ctx context.Context) ([]*domain.Note, error) {
	raw, err := r.kv.Get(ctx, notesKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []*domain.Note{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read notes: %w", err)
	}
	var notes []*domain.Note
	if err := json.Unmarshal(raw, &notes); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}
	return notes, nil
}

func (r *KVNoteRepository) store(ctx context.Context, notes []*domain.Note) error {
	raw, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}
	if err := r.kv.Set(ctx, notesKey, raw); err != nil {
		return fmt.Errorf("write notes: %w", err)
	}
	return nil
}

func (r *KVNoteRepository) ListNotes(ctx context.Context, ownerID string) ([]*domain.Note, error) {
	return r.SearchNotes(ctx, ownerID, "")
}

func (r *KVNoteRepository) SearchNotes(ctx context.Context, ownerID, query string) ([]*domain.Note, error) {
	notes, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Note, 0, len(notes))
	for _, n := range notes {
		if n.UserID == ownerID && n.Matches(query) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *KVNoteRepository) GetNote(ctx context.Context, id string) (*domain.Note, error) {
	notes, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, n := range notes {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
}

func (r *KVNoteRepository) CreateNote(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	notes, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	now := r.now().UTC()
	created := *note
	created.ID = uuid.NewString()
	created.CreatedAt = now
	created.UpdatedAt = now

	notes = append([]*domain.Note{&created}, notes...)
	if err := r.store(ctx, notes); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *KVNoteRepository) UpdateNote(ctx context.Context, id string, patch domain.NotePatch) (*domain.Note, error) {
	notes, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, n := range notes {
		if n.ID != id {
			continue
		}
		patch.Apply(n, r.now().UTC())
		if err := r.store(ctx, notes); err != nil {
			return nil, err
		}
		return n, nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
}

func (r *KVNoteRepository) DeleteNote(ctx context.Context, id string) error {
	notes, err := r.load(ctx)
	if err != nil {
		return err
	}
	kept := notes[:0]
	for _, n := range notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(notes) {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return r.store(ctx, kept)
}
