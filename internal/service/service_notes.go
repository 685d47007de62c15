package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteService delegates note CRUD to the NoteRepository. Input checking lives
// in the validation wrapper, ownership scoping lives in the repository, so
// this layer stays thin.
type noteService struct {
	noteRepository store.NoteRepository

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

func (s *noteService) ListNotes(ctx context.Context, owner string) ([]models.Note, error) {
	return s.noteRepository.ListNotes(ctx, owner)
}

func (s *noteService) CreateNote(ctx context.Context, owner string, request models.NoteRequest) (models.Note, error) {
	return s.noteRepository.InsertNote(ctx, owner, request.Title, request.Content)
}

func (s *noteService) GetNote(ctx context.Context, owner string, noteID int64) (models.Note, error) {
	return s.noteRepository.GetNote(ctx, owner, noteID)
}

func (s *noteService) UpdateNote(ctx context.Context, owner string, noteID int64, request models.NoteRequest) (models.Note, error) {
	return s.noteRepository.UpdateNote(ctx, owner, noteID, request.Title, request.Content)
}

func (s *noteService) DeleteNote(ctx context.Context, owner string, noteID int64) error {
	return s.noteRepository.DeleteNote(ctx, owner, noteID)
}
