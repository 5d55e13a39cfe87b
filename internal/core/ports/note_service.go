package ports

import (
	"context"

	"github.com/keepnote/notes-api/internal/core/domain"
)

// NoteInput carries the mutable fields of a note as accepted from a caller.
// The owner is never part of the input; it always comes from the
// authenticated identity.
type NoteInput struct {
	Title    string
	Content  string
	Tags     []string
	IsPinned bool
}

// NoteService exposes CRUD over notes, each operation scoped to the
// authenticated caller passed as ownerID.
type NoteService interface {
	List(ctx context.Context, ownerID string) ([]*domain.Note, error)
	Create(ctx context.Context, ownerID string, in NoteInput) (*domain.Note, error)
	Get(ctx context.Context, ownerID, noteID string) (*domain.Note, error)
	Update(ctx context.Context, ownerID, noteID string, in NoteInput) (*domain.Note, error)
	Delete(ctx context.Context, ownerID, noteID string) error
}
