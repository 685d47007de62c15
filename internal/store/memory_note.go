package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteRepository is the in-memory implementation of NoteRepository.
//
// Notes are kept per owner in insertion order. One RWMutex guards the whole
// structure: inserts read the owner's current max ID and append under the
// same critical section, so concurrent inserts for one owner never produce
// duplicate IDs.
type noteRepository struct {
	logger *logger.Logger

	mu    sync.RWMutex
	notes map[string][]models.Note
}

// NewNoteRepository creates an empty in-memory note store.
func NewNoteRepository(logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("NoteRepository created")
	return &noteRepository{
		logger: logger,
		notes:  make(map[string][]models.Note),
	}
}

func (r *noteRepository) ListNotes(ctx context.Context, owner string) ([]models.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ownerNotes := r.notes[owner]
	listed := make([]models.Note, len(ownerNotes))
	copy(listed, ownerNotes)

	return listed, nil
}

func (r *noteRepository) InsertNote(ctx context.Context, owner string, title, content string) (models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// ID is max existing ID for this owner plus one. Deleting the
	// highest-numbered note and inserting again reuses its ID.
	var maxID int64
	for _, note := range r.notes[owner] {
		if note.ID > maxID {
			maxID = note.ID
		}
	}

	now := time.Now()
	created := models.Note{
		ID:        maxID + 1,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.notes[owner] = append(r.notes[owner], created)

	return created, nil
}

func (r *noteRepository) GetNote(ctx context.Context, owner string, id int64) (models.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, note := range r.notes[owner] {
		if note.ID == id {
			return note, nil
		}
	}

	return models.Note{}, ErrNoteNotFound
}

func (r *noteRepository) UpdateNote(ctx context.Context, owner string, id int64, title, content string) (models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ownerNotes := r.notes[owner]
	for i := range ownerNotes {
		if ownerNotes[i].ID != id {
			continue
		}

		ownerNotes[i].Title = title
		ownerNotes[i].Content = content
		ownerNotes[i].UpdatedAt = time.Now()

		return ownerNotes[i], nil
	}

	return models.Note{}, ErrNoteNotFound
}

func (r *noteRepository) DeleteNote(ctx context.Context, owner string, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ownerNotes := r.notes[owner]
	for i := range ownerNotes {
		if ownerNotes[i].ID != id {
			continue
		}

		r.notes[owner] = append(ownerNotes[:i], ownerNotes[i+1:]...)
		return nil
	}

	return ErrNoteNotFound
}
