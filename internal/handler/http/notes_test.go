// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock NoteService
// ─────────────────────────────────────────────

type mockNoteService struct {
	listNotesFn  func(ctx context.Context, owner string) ([]models.Note, error)
	createNoteFn func(ctx context.Context, owner string, request models.NoteRequest) (models.Note, error)
	getNoteFn    func(ctx context.Context, owner string, noteID int64) (models.Note, error)
	updateNoteFn func(ctx context.Context, owner string, noteID int64, request models.NoteRequest) (models.Note, error)
	deleteNoteFn func(ctx context.Context, owner string, noteID int64) error
}

func (m *mockNoteService) ListNotes(ctx context.Context, owner string) ([]models.Note, error) {
	return m.listNotesFn(ctx, owner)
}

func (m *mockNoteService) CreateNote(ctx context.Context, owner string, request models.NoteRequest) (models.Note, error) {
	return m.createNoteFn(ctx, owner, request)
}

func (m *mockNoteService) GetNote(ctx context.Context, owner string, noteID int64) (models.Note, error) {
	return m.getNoteFn(ctx, owner, noteID)
}

func (m *mockNoteService) UpdateNote(ctx context.Context, owner string, noteID int64, request models.NoteRequest) (models.Note, error) {
	return m.updateNoteFn(ctx, owner, noteID, request)
}

func (m *mockNoteService) DeleteNote(ctx context.Context, owner string, noteID int64) error {
	return m.deleteNoteFn(ctx, owner, noteID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newHandlerWithNotes(t *testing.T, notes service.NoteService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{NoteService: notes}, logger.Nop())
}

// newNoteRequest builds a request with the authenticated owner in the
// context, the same way the auth middleware does, plus an optional {id}
// chi url parameter.
func newNoteRequest(method, target, owner, id string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)

	ctx := req.Context()
	if owner != "" {
		ctx = context.WithValue(ctx, utils.UsernameCtxKey, owner)
	}
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}

	return req.WithContext(ctx)
}

// ─────────────────────────────────────────────
// listNotes
// ─────────────────────────────────────────────

func TestListNotes_Success(t *testing.T) {
	notes := []models.Note{
		{ID: 1, Title: "first", Content: "a"},
		{ID: 2, Title: "second", Content: "b"},
	}
	h := newHandlerWithNotes(t, &mockNoteService{
		listNotesFn: func(_ context.Context, owner string) ([]models.Note, error) {
			require.Equal(t, "alice", owner)
			return notes, nil
		},
	})

	req := newNoteRequest(http.MethodGet, "/api/notes", "alice", "", nil)
	rec := httptest.NewRecorder()

	h.listNotes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.NotesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Length)
	require.Len(t, resp.Notes, 2)
	assert.Equal(t, "first", resp.Notes[0].Title)
}

func TestListNotes_EmptyList(t *testing.T) {
	h := newHandlerWithNotes(t, &mockNoteService{
		listNotesFn: func(_ context.Context, _ string) ([]models.Note, error) {
			return []models.Note{}, nil
		},
	})

	req := newNoteRequest(http.MethodGet, "/api/notes", "alice", "", nil)
	rec := httptest.NewRecorder()

	h.listNotes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.NotesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Length)
}

func TestListNotes_NoIdentityInContext(t *testing.T) {
	h := newHandlerWithNotes(t, &mockNoteService{
		listNotesFn: func(_ context.Context, _ string) ([]models.Note, error) {
			t.Fatal("service must not be reached without identity")
			return nil, nil
		},
	})

	req := newNoteRequest(http.MethodGet, "/api/notes", "", "", nil)
	rec := httptest.NewRecorder()

	h.listNotes(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// createNote
// ─────────────────────────────────────────────

func TestCreateNote_Success(t *testing.T) {
	h := newHandlerWithNotes(t, &mockNoteService{
		createNoteFn: func(_ context.Context, owner string, request models.NoteRequest) (models.Note, error) {
			require.Equal(t, "alice", owner)
			return models.Note{ID: 1, Title: request.Title, Content: request.Content}, nil
		},
	})

	body := strings.NewReader(`{"title":"Shopping","content":"milk"}`)
	req := newNoteRequest(http.MethodPost, "/api/notes", "alice", "", body)
	rec := httptest.NewRecorder()

	h.createNote(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var note models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &note))
	assert.Equal(t, int64(1), note.ID)
	assert.Equal(t, "Shopping", note.Title)
}

func TestCreateNote_InvalidJSON(t *testing.T) {
	h := newHandlerWithNotes(t, &mockNoteService{})

	req := newNoteRequest(http.MethodPost, "/api/notes", "alice", "", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()

	h.createNote(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateNote_ValidationError(t *testing.T) {
	h := newHandlerWithNotes(t, &mockNoteService{
		createNoteFn: func(_ context.Context, _ string, _ models.NoteRequest) (models.Note, error) {
			return models.Note{}, service.ErrInvalidDataProvided
		},
	})

	req := newNoteRequest(http.MethodPost, "/api/notes", "alice", "", strings.NewReader(`{"title":"","content":""}`))
	rec := httptest.NewRecorder()

	h.createNote(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateNote_UnexpectedErrorBodyIsOpaque(t *testing.T) {
	h := newHandlerWithNotes(t, &mockNoteService{
		createNoteFn: func(_ context.Context, _ string, _ models.NoteRequest) (models.Note, error) {
			return models.Note{}, errors.New("notes map corrupted at bucket 3")
		},
	})

	body := strings.NewReader(`{"title":"a","content":"b"}`)
	req := newNoteRequest(http.MethodPost, "/api/notes", "alice", "", body)
	rec := httptest.NewRecorder()

	h.createNote(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// internal error details must not reach the client
	responseBody := strings.TrimSpace(rec.Body.String())
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), responseBody)
	assert.NotContains(t, responseBody, "corrupted")
}

// ─────────────────────────────────────────────
// getNote
// ─────────────────────────────────────────────

func TestGetNote_Success(t *testing.T) {
	h := newHandlerWithNotes(t, &mockNoteService{
		getNoteFn: func(_ context.Context, owner string, noteID int64) (models.Note, error) {
			require.Equal(t, "alice", owner)
			require.Equal(t, int64(7), noteID)
			return models.Note{ID: 7, Title: "found"}, nil
		},
	})

	req := newNoteRequest(http.MethodGet, "/api/notes/7", "alice", "7", nil)
	rec := httptest.NewRecorder()

	h.getNote(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var note models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &note))
	assert.Equal(t, int64(7), note.ID)
}

func TestGetNote_NotFound(t *testing.T) {
	h := newHandlerWithNotes(t, &mockNoteService{
		getNoteFn: func(_ context.Context, _ string, _ int64) (models.Note, error) {
			return models.Note{}, store.ErrNoteNotFound
		},
	})

	req := newNoteRequest(http.MethodGet, "/api/notes/99", "alice", "99", nil)
	rec := httptest.NewRecorder()

	h.getNote(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetNote_MalformedID(t *testing.T) {
	h := newHandlerWithNotes(t, &mockNoteService{
		getNoteFn: func(_ context.Context, _ string, _ int64) (models.Note, error) {
			t.Fatal("service must not be reached for malformed id")
			return models.Note{}, nil
		},
	})

	req := newNoteRequest(http.MethodGet, "/api/notes/abc", "alice", "abc", nil)
	rec := httptest.NewRecorder()

	h.getNote(rec, req)

	// malformed id is reported the same way as an unknown one
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// updateNote
// ─────────────────────────────────────────────

func TestUpdateNote_Success(t *testing.T) {
	h := newHandlerWithNotes(t, &mockNoteService{
		updateNoteFn: func(_ context.Context, owner string, noteID int64, request models.NoteRequest) (models.Note, error) {
			require.Equal(t, int64(3), noteID)
			return models.Note{ID: noteID, Title: request.Title, Content: request.Content}, nil
		},
	})

	body := strings.NewReader(`{"title":"new","content":"text"}`)
	req := newNoteRequest(http.MethodPut, "/api/notes/3", "alice", "3", body)
	rec := httptest.NewRecorder()

	h.updateNote(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var note models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &note))
	assert.Equal(t, "new", note.Title)
}

func TestUpdateNote_NotFound(t *testing.T) {
	h := newHandlerWithNotes(t, &mockNoteService{
		updateNoteFn: func(_ context.Context, _ string, _ int64, _ models.NoteRequest) (models.Note, error) {
			return models.Note{}, store.ErrNoteNotFound
		},
	})

	body := strings.NewReader(`{"title":"new","content":"text"}`)
	req := newNoteRequest(http.MethodPut, "/api/notes/42", "alice", "42", body)
	rec := httptest.NewRecorder()

	h.updateNote(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// deleteNote
// ─────────────────────────────────────────────

func TestDeleteNote_Success(t *testing.T) {
	deleted := false
	h := newHandlerWithNotes(t, &mockNoteService{
		deleteNoteFn: func(_ context.Context, owner string, noteID int64) error {
			deleted = true
			require.Equal(t, int64(5), noteID)
			return nil
		},
	})

	req := newNoteRequest(http.MethodDelete, "/api/notes/5", "alice", "5", nil)
	rec := httptest.NewRecorder()

	h.deleteNote(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, deleted)
}

func TestDeleteNote_UnexpectedErrorBodyIsOpaque(t *testing.T) {
	h := newHandlerWithNotes(t, &mockNoteService{
		deleteNoteFn: func(_ context.Context, _ string, _ int64) error {
			return errors.New("owner index out of sync")
		},
	})

	req := newNoteRequest(http.MethodDelete, "/api/notes/5", "alice", "5", nil)
	rec := httptest.NewRecorder()

	h.deleteNote(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), strings.TrimSpace(rec.Body.String()))
}

func TestDeleteNote_NotFound(t *testing.T) {
	h := newHandlerWithNotes(t, &mockNoteService{
		deleteNoteFn: func(_ context.Context, _ string, _ int64) error {
			return store.ErrNoteNotFound
		},
	})

	req := newNoteRequest(http.MethodDelete, "/api/notes/5", "alice", "5", nil)
	rec := httptest.NewRecorder()

	h.deleteNote(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
