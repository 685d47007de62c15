package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldTitle targets the note heading.
	FieldTitle = "title"

	// FieldContent targets the note body.
	FieldContent = "content"
)

// noteValidator checks note payloads before they reach the store.
// Emptiness is judged after trimming, so whitespace-only values are rejected.
type noteValidator struct{}

// NewNoteValidator returns a Validator for [models.NoteRequest] values.
func NewNoteValidator() Validator {
	return &noteValidator{}
}

// Validate checks the given value, which must be a models.NoteRequest or
// *models.NoteRequest. Without field names both title and content are
// validated; with field names only the listed fields are checked.
//
// Returns ErrUnsupportedType for other value types, ErrUnknownField for an
// unrecognized field name, and ErrEmptyTitle / ErrEmptyContent for
// whitespace-only values.
func (v *noteValidator) Validate(ctx context.Context, value any, fields ...string) error {
	var request models.NoteRequest

	switch typed := value.(type) {
	case models.NoteRequest:
		request = typed
	case *models.NoteRequest:
		request = *typed
	default:
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	for _, field := range fields {
		switch field {
		case FieldTitle:
			if strings.TrimSpace(request.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldContent:
			if strings.TrimSpace(request.Content) == "" {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
