package store

import (
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// Storages aggregates every repository the application owns. Both stores are
// initialized empty at startup and live for the lifetime of the process.
type Storages struct {
	UserRepository UserRepository
	NoteRepository NoteRepository
}

// NewStorages creates the in-memory credential and note stores.
func NewStorages(logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(logger),
		NoteRepository: NewNoteRepository(logger),
	}
}
