package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same normalized username already
	// exists in the store.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a lookup expected to match a user
	// record produces an empty result.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoteNotFound is returned when an operation targets a note
	// (identified by owner and id) that does not exist in the store.
	// Ownership violations surface as this same error so that note
	// existence under another identity is never disclosed.
	ErrNoteNotFound = errors.New("note was not found")
)
