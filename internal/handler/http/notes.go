package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	owner, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		log.Error().Msg("no authenticated username in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	notes, err := h.services.NoteService.ListNotes(r.Context(), owner)
	if err != nil {
		log.Err(err).Str("owner", owner).Msg("error listing notes")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.NotesResponse{Notes: notes, Length: len(notes)}, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	owner, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		log.Error().Msg("no authenticated username in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.CreateNote(r.Context(), owner, request)
	if err != nil {
		log.Err(err).Str("owner", owner).Msg("error creating note")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	owner, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		log.Error().Msg("no authenticated username in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("malformed note id in url")
		http.Error(w, store.ErrNoteNotFound.Error(), http.StatusNotFound)
		return
	}

	note, err := h.services.NoteService.GetNote(r.Context(), owner, noteID)
	if err != nil {
		log.Err(err).Str("owner", owner).Int64("id", noteID).Msg("error getting note")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	owner, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		log.Error().Msg("no authenticated username in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("malformed note id in url")
		http.Error(w, store.ErrNoteNotFound.Error(), http.StatusNotFound)
		return
	}

	var request models.NoteRequest
	if err = json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.UpdateNote(r.Context(), owner, noteID, request)
	if err != nil {
		log.Err(err).Str("owner", owner).Int64("id", noteID).Msg("error updating note")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	owner, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		log.Error().Msg("no authenticated username in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("malformed note id in url")
		http.Error(w, store.ErrNoteNotFound.Error(), http.StatusNotFound)
		return
	}

	if err = h.services.NoteService.DeleteNote(r.Context(), owner, noteID); err != nil {
		log.Err(err).Str("owner", owner).Int64("id", noteID).Msg("error deleting note")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// noteIDFromRequest parses the {id} url parameter. Non-numeric ids cannot
// name an existing note, so callers report them the same way as an unknown id.
func noteIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
