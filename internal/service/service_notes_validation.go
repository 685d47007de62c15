package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// NoteValidationService decorates a NoteService with payload validation.
// Title and content are trimmed before the emptiness check and the trimmed
// form is what reaches the inner service, so stored notes never carry
// leading or trailing whitespace.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *NoteValidationService) ListNotes(ctx context.Context, owner string) ([]models.Note, error) {
	return v.inner.ListNotes(ctx, owner)
}

func (v *NoteValidationService) CreateNote(ctx context.Context, owner string, request models.NoteRequest) (models.Note, error) {
	request = trimNoteRequest(request)
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateNote(ctx, owner, request)
}

func (v *NoteValidationService) GetNote(ctx context.Context, owner string, noteID int64) (models.Note, error) {
	return v.inner.GetNote(ctx, owner, noteID)
}

func (v *NoteValidationService) UpdateNote(ctx context.Context, owner string, noteID int64, request models.NoteRequest) (models.Note, error) {
	request = trimNoteRequest(request)
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateNote(ctx, owner, noteID, request)
}

func (v *NoteValidationService) DeleteNote(ctx context.Context, owner string, noteID int64) error {
	return v.inner.DeleteNote(ctx, owner, noteID)
}

func (v *NoteValidationService) Wrap(wrapped NoteService) NoteService {
	v.inner = wrapped
	return v
}

func trimNoteRequest(request models.NoteRequest) models.NoteRequest {
	request.Title = strings.TrimSpace(request.Title)
	request.Content = strings.TrimSpace(request.Content)
	return request
}
