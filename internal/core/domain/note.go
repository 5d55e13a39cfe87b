package domain

import "time"

// Note is a single text note. OwnerID is set once at creation and is never
// reassigned by any operation; every lookup filters on it jointly with ID.
type Note struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"user"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	IsPinned  bool      `json:"isPinned"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
