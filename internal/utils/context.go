// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, JWT token generation and validation, and other
// common operations.
package utils

import (
	"context"
	"strings"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UsernameCtxKey is the key used to store the authenticated username in the
// context. Used together with GetUsernameFromContext for type-safe retrieval
// of the identity from context.Context.
//
// The value stored under this key is the only identity source trusted by the
// note service; it is never taken from a client-supplied body field.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UsernameCtxKey, "alice")
var UsernameCtxKey = contextKey("username")

// GetUsernameFromContext retrieves the authenticated username from the context.
//
// Returns the username and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	username, ok := utils.GetUsernameFromContext(ctx)
//	if !ok {
//	    // handle missing identity in context
//	}
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok
}

// NormalizeUsername converts a raw username into its canonical stored form:
// leading/trailing whitespace removed and all characters lowercased.
//
// Every code path that touches the credential store (registration, login,
// token subject resolution) must apply the same normalization, otherwise
// case-insensitive username uniqueness cannot be enforced consistently.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
