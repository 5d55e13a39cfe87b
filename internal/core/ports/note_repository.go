package ports

import (
	"context"

	"github.com/keepnote/notes-api/internal/core/domain"
)

// NoteRepository defines persistence operations for notes.
//
// Every single-note operation takes the owner ID and applies it as part of
// the lookup predicate, never as a post-hoc check. A note owned by someone
// else and a note that does not exist both yield domain.ErrNoteNotFound.
type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) (*domain.Note, error)
	// FindByID retrieves the note matching both id and ownerID.
	FindByID(ctx context.Context, id, ownerID string) (*domain.Note, error)
	// ListByOwner returns all notes of ownerID, pinned first, newest first
	// within each pin group.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Note, error)
	// Update replaces the mutable fields (title, content, tags, isPinned) of
	// the note matching {note.ID, note.OwnerID} and returns the stored result.
	Update(ctx context.Context, note *domain.Note) (*domain.Note, error)
	// Delete removes the note matching both id and ownerID.
	Delete(ctx context.Context, id, ownerID string) error
}
