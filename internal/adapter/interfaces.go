// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the go-note-keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples callers from the
// underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

// ServerAdapter defines transport-agnostic communication with the
// go-note-keeper server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It is called automatically after a successful
	// Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account with the provided credentials. On
	// success it stores the returned bearer token via SetToken.
	Register(ctx context.Context, user models.User) (models.TokenResponse, error)

	// Login authenticates an existing account. On success it stores the
	// returned bearer token via SetToken.
	Login(ctx context.Context, user models.User) (models.TokenResponse, error)

	// ListNotes fetches all notes of the authenticated owner in insertion
	// order.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// CreateNote creates a new note and returns the stored record with its
	// server-assigned id.
	CreateNote(ctx context.Context, request models.NoteRequest) (models.Note, error)

	// GetNote fetches a single note by id. Returns a wrapped [ErrNotFound]
	// if the id does not name a note of the authenticated owner.
	GetNote(ctx context.Context, noteID int64) (models.Note, error)

	// UpdateNote replaces the title and content of an existing note.
	UpdateNote(ctx context.Context, noteID int64, request models.NoteRequest) (models.Note, error)

	// DeleteNote removes a note by id.
	DeleteNote(ctx context.Context, noteID int64) error

	// Version fetches the server's version string.
	Version(ctx context.Context) (string, error)
}
