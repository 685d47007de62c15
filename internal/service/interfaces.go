package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

// NoteService manages the notes of a single authenticated owner. The owner
// username is always passed explicitly; handlers take it from the request
// context after token verification, never from the request body.
type NoteService interface {
	ListNotes(ctx context.Context, owner string) ([]models.Note, error)
	CreateNote(ctx context.Context, owner string, request models.NoteRequest) (models.Note, error)
	GetNote(ctx context.Context, owner string, noteID int64) (models.Note, error)
	UpdateNote(ctx context.Context, owner string, noteID int64, request models.NoteRequest) (models.Note, error)
	DeleteNote(ctx context.Context, owner string, noteID int64) error
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Authenticate resolves a raw bearer token to the username of an existing
	// account. Every failure mode (bad signature, expiry, unknown user) is
	// reported as ErrTokenIsExpiredOrInvalid.
	Authenticate(ctx context.Context, tokenString string) (string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// logging or validating.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService // returns a decorated NoteService applying additional behavior
}
