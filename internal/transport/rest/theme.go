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

// themeService defines the minimal interface needed by ThemeHandler.
type themeService interface {
	Theme(ctx context.Context, sid uuid.UUID) domain.Theme
	SetTheme(ctx context.Context, sid uuid.UUID, theme domain.Theme) error
}

// ThemeHandler serves the per-session theme preference.
type ThemeHandler struct {
	sessions themeService
	log      *slog.Logger
}

// NewThemeHandler creates a ThemeHandler.
func NewThemeHandler(sessions themeService, logger *slog.Logger) *ThemeHandler {
	return &ThemeHandler{sessions: sessions, log: logger.With("handler", "theme")}
}

type themeResponse struct {
	Theme domain.Theme `json:"theme"`
}

// Get handles GET /api/theme.
func (h *ThemeHandler) Get(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, themeResponse{Theme: h.sessions.Theme(r.Context(), sid)})
}

// Set handles PUT /api/theme.
func (h *ThemeHandler) Set(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	var req themeResponse
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.sessions.SetTheme(r.Context(), sid, req.Theme); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.ErrorContext(r.Context(), "set theme", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, themeResponse{Theme: req.Theme})
}
