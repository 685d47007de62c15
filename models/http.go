package models

// NoteRequest is the inbound payload for note creation and update.
// Title and Content are validated and trimmed by the note service
// before they reach the store.
type NoteRequest struct {
	// Title is the note heading. Must be non-empty after trimming.
	Title string `json:"title"`

	// Content is the note body. Must be non-empty after trimming.
	Content string `json:"content"`
}
