package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-resty/resty/v2"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.TokenResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/user/register")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	return h.storeTokenResponse(resp)
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.TokenResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/user/login")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	return h.storeTokenResponse(resp)
}

func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	resp, err := h.authedRequest(ctx).Get("/api/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var notes models.NotesResponse
	if err = json.Unmarshal(resp.Body(), &notes); err != nil {
		return nil, fmt.Errorf("decode notes response: %w", err)
	}

	return notes.Notes, nil
}

func (h *httpServerAdapter) CreateNote(ctx context.Context, request models.NoteRequest) (models.Note, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return decodeNote(resp)
}

func (h *httpServerAdapter) GetNote(ctx context.Context, noteID int64) (models.Note, error) {
	resp, err := h.authedRequest(ctx).Get(noteURL(noteID))
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return decodeNote(resp)
}

func (h *httpServerAdapter) UpdateNote(ctx context.Context, noteID int64, request models.NoteRequest) (models.Note, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Put(noteURL(noteID))
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return decodeNote(resp)
}

func (h *httpServerAdapter) DeleteNote(ctx context.Context, noteID int64) error {
	resp, err := h.authedRequest(ctx).Delete(noteURL(noteID))
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

// storeTokenResponse decodes the token response body and remembers the access
// token for subsequent authenticated requests.
func (h *httpServerAdapter) storeTokenResponse(resp *resty.Response) (models.TokenResponse, error) {
	var tokenResponse models.TokenResponse
	if err := json.Unmarshal(resp.Body(), &tokenResponse); err != nil {
		return models.TokenResponse{}, fmt.Errorf("decode token response: %w", err)
	}

	h.SetToken(tokenResponse.AccessToken)
	return tokenResponse, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func noteURL(noteID int64) string {
	return "/api/notes/" + strconv.FormatInt(noteID, 10)
}

func decodeNote(resp *resty.Response) (models.Note, error) {
	var note models.Note
	if err := json.Unmarshal(resp.Body(), &note); err != nil {
		return models.Note{}, fmt.Errorf("decode note response: %w", err)
	}
	return note, nil
}
