package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/keepnote/notes-api/internal/core/domain"
	"github.com/keepnote/notes-api/internal/core/ports"
)

// NoteService implements ownership-scoped CRUD over notes. The owner ID is
// always the authenticated caller; it is threaded into every repository call
// so ownership is enforced inside the lookup predicate.
type NoteService struct {
	notes ports.NoteRepository
	log   zerolog.Logger
}

func NewNoteService(notes ports.NoteRepository, log zerolog.Logger) *NoteService {
	return &NoteService{notes: notes, log: log}
}

func (s *NoteService) List(ctx context.Context, ownerID string) ([]*domain.Note, error) {
	return s.notes.ListByOwner(ctx, ownerID)
}

func (s *NoteService) Create(ctx context.Context, ownerID string, in ports.NoteInput) (*domain.Note, error) {
	now := time.Now().UTC()
	note := &domain.Note{
		OwnerID:   ownerID,
		Title:     strings.TrimSpace(in.Title),
		Content:   strings.TrimSpace(in.Content),
		Tags:      normalizeTags(in.Tags),
		IsPinned:  in.IsPinned,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.notes.Create(ctx, note)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("note_id", created.ID).Str("user_id", ownerID).Msg("note created")
	return created, nil
}

func (s *NoteService) Get(ctx context.Context, ownerID, noteID string) (*domain.Note, error) {
	return s.notes.FindByID(ctx, noteID, ownerID)
}

func (s *NoteService) Update(ctx context.Context, ownerID, noteID string, in ports.NoteInput) (*domain.Note, error) {
	note := &domain.Note{
		ID:        noteID,
		OwnerID:   ownerID,
		Title:     strings.TrimSpace(in.Title),
		Content:   strings.TrimSpace(in.Content),
		Tags:      normalizeTags(in.Tags),
		IsPinned:  in.IsPinned,
		UpdatedAt: time.Now().UTC(),
	}

	updated, err := s.notes.Update(ctx, note)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("note_id", noteID).Str("user_id", ownerID).Msg("note updated")
	return updated, nil
}

func (s *NoteService) Delete(ctx context.Context, ownerID, noteID string) error {
	if err := s.notes.Delete(ctx, noteID, ownerID); err != nil {
		return err
	}
	s.log.Info().Str("note_id", noteID).Str("user_id", ownerID).Msg("note deleted")
	return nil
}

// normalizeTags trims each tag and guarantees a non-nil slice so an absent
// tags field serializes as [] rather than null.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, strings.TrimSpace(t))
	}
	return out
}
