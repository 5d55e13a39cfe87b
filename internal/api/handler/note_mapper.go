package handler

import "github.com/keepnote/notes-api/internal/core/domain"

func toNoteResponse(n *domain.Note) noteResponse {
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	return noteResponse{
		ID:        n.ID,
		User:      n.OwnerID,
		Title:     n.Title,
		Content:   n.Content,
		Tags:      tags,
		IsPinned:  n.IsPinned,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func toNoteResponses(notes []*domain.Note) []noteResponse {
	out := make([]noteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, toNoteResponse(n))
	}
	return out
}
