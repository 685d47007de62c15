package store

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

// UserRepository is the credential store: it holds username → account records.
// Usernames passed to it must already be normalized (trimmed, lowercased);
// the repository enforces uniqueness on the stored key only.
type UserRepository interface {
	// CreateUser persists a new account and returns it with the
	// server-assigned UserID. Returns ErrUsernameAlreadyExists when an
	// account with the same username exists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername looks up an account by its normalized username.
	// Returns ErrNoUserWasFound when no such account exists.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// NoteRepository is the per-user note store. Every operation is scoped to a
// single owner; a note is never reachable through another owner's calls.
type NoteRepository interface {
	// ListNotes returns all notes of the owner in insertion order.
	ListNotes(ctx context.Context, owner string) ([]models.Note, error)

	// InsertNote stores a new note for the owner and returns it with an
	// assigned ID. IDs are sequential per owner: max existing ID plus one,
	// starting at 1.
	InsertNote(ctx context.Context, owner string, title, content string) (models.Note, error)

	// GetNote returns the owner's note with the given ID.
	// Returns ErrNoteNotFound when the owner has no such note.
	GetNote(ctx context.Context, owner string, id int64) (models.Note, error)

	// UpdateNote replaces title and content of the owner's note with the
	// given ID, refreshing UpdatedAt and preserving ID and CreatedAt.
	// Returns ErrNoteNotFound when the owner has no such note.
	UpdateNote(ctx context.Context, owner string, id int64, title, content string) (models.Note, error)

	// DeleteNote removes the owner's note with the given ID.
	// Returns ErrNoteNotFound when the owner has no such note.
	DeleteNote(ctx context.Context, owner string, id int64) error
}
