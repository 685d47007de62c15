package models

import "time"

// Note represents a single text note owned by exactly one user.
//
// Note identifiers are unique per owner, not globally: two users may each
// own a note with ID 1. IDs are assigned sequentially by the note store as
// max existing ID for the owner plus one, so deleting the highest-numbered
// note and inserting again reuses its ID. That is accepted behavior, not a
// defect to correct.
type Note struct {
	// ID is the per-owner sequential identifier, starting at 1.
	ID int64 `json:"id"`

	// Title is the note heading. Stored trimmed and never empty.
	Title string `json:"title"`

	// Content is the note body. Stored trimmed and never empty.
	Content string `json:"content"`

	// CreatedAt is set once at insertion and never changes afterwards.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every mutation of the note.
	UpdatedAt time.Time `json:"updated_at"`
}
