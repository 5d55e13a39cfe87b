package handler

import "time"

// --- Request / Response types ---

// noteRequest is shared by create and update; both accept the same mutable
// fields. The owner is never part of the payload.
type noteRequest struct {
	Title    string   `json:"title"    validate:"required,min=1,max=100"`
	Content  string   `json:"content"  validate:"required,min=1,max=10000"`
	Tags     []string `json:"tags"     validate:"omitempty,dive,max=20"`
	IsPinned bool     `json:"isPinned"`
}

// Response-only types owned by the transport layer. These are intentionally
// separate from domain types so the JSON contract is not coupled to internal
// changes.

type noteResponse struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	IsPinned  bool      `json:"isPinned"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type noteEnvelope struct {
	Message string       `json:"message"`
	Note    noteResponse `json:"note"`
}

type listNotesResponse struct {
	Message string         `json:"message"`
	Notes   []noteResponse `json:"notes"`
}
