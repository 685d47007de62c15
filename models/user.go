package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the storage layer.
	UserID int64 `json:"-"`

	// Username is the unique user identifier used during authentication.
	// It is stored in normalized form: trimmed and lowercased.
	Username string `json:"username"`

	// Password carries the plain-text password on inbound requests only.
	// It is hashed by the auth service before the user reaches storage
	// and must never be persisted or logged.
	Password string `json:"password,omitempty"`

	// PasswordHash stores the argon2id-derived password representation.
	// Never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}
