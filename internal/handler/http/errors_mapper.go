package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrVersionIsNotSpecified:   http.StatusBadRequest,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrNoteNotFound:          http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to its HTTP status and writes the error response.
// Known sentinel errors keep their message; anything unexpected responds
// with the generic 500 text so internal error details never reach clients.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(http.StatusInternalServerError)
	}

	http.Error(w, message, status)
}
