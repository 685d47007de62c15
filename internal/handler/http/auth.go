package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Err(err).Msg("username already exists")
			http.Error(w, "username already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	h.issueToken(w, r, registeredUser)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, err := credentialsFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid login request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrWrongCredentials):
			log.Err(err).Msg("wrong username or password")
			http.Error(w, "invalid username/password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Str("username", foundUser.Username).Msg("user successfully logged in")

	h.issueToken(w, r, foundUser)
}

// issueToken creates a JWT for the given user and writes the token response.
// The signed token is duplicated in the "Authorization" response header for
// clients that prefer reading headers over bodies.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, user models.User) {
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   "bearer",
	}, http.StatusOK)
}

// credentialsFromRequest reads the username/password pair from either a JSON
// body or a form-encoded body, depending on the request's Content-Type. The
// two entry shapes are equivalent.
func credentialsFromRequest(r *http.Request) (models.User, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return models.User{}, err
		}
		return models.User{
			Username: r.PostForm.Get("username"),
			Password: r.PostForm.Get("password"),
		}, nil
	}

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
