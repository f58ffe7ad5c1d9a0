package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/numee-project/numee-backend/internal/domain"
)

// sessionService defines the minimal interface needed by AuthHandler.
type sessionService interface {
	Authenticate(ctx context.Context, sid uuid.UUID, username, password string) (*domain.Identity, error)
	Current(ctx context.Context, sid uuid.UUID) *domain.Identity
	Clear(ctx context.Context, sid uuid.UUID)
}

// AuthHandler serves login, logout and identity endpoints.
type AuthHandler struct {
	sessions sessionService
	log      *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(sessions sessionService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{sessions: sessions, log: logger.With("handler", "auth")}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type identityResponse struct {
	User *domain.Identity `json:"user"`
}

// Login handles POST /api/auth/login. On success the identity is stored
// in the browsing session and returned; on failure the session keeps any
// previously stored identity.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	identity, err := h.sessions.Authenticate(r.Context(), sid, req.Username, req.Password)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, identityResponse{User: identity})
}

// Logout handles POST /api/auth/logout. Logging out an anonymous session
// is a no-op, never an error.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	h.sessions.Clear(r.Context(), sid)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Me handles GET /api/auth/me. The user field is null for anonymous
// sessions; the request itself always succeeds.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	identity := h.sessions.Current(r.Context(), sid)
	writeJSON(w, http.StatusOK, identityResponse{User: identity})
}

func (h *AuthHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "invalid credentials")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
