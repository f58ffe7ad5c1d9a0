package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/numee-project/numee-backend/internal/domain"
)

// sessionCounter reports how many browsing sessions are live.
type sessionCounter interface {
	Len() int
}

type dashboardSessionService interface {
	Current(ctx context.Context, sid uuid.UUID) *domain.Identity
	Theme(ctx context.Context, sid uuid.UUID) domain.Theme
}

// AdminHandler serves the admin stats endpoint and the user dashboard.
// Role gating happens in middleware; these handlers assume it.
type AdminHandler struct {
	dict     dictionaryCounter
	store    sessionCounter
	sessions dashboardSessionService
	version  string
	log      *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(dict dictionaryCounter, store sessionCounter, sessions dashboardSessionService, version string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		dict:     dict,
		store:    store,
		sessions: sessions,
		version:  version,
		log:      logger.With("handler", "admin"),
	}
}

type statsResponse struct {
	Entries  int    `json:"entries"`
	Sessions int    `json:"sessions"`
	Version  string `json:"version"`
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statsResponse{
		Entries:  h.dict.Count(),
		Sessions: h.store.Len(),
		Version:  h.version,
	})
}

type dashboardResponse struct {
	User  *domain.Identity `json:"user"`
	Theme domain.Theme     `json:"theme"`
}

// Dashboard handles GET /api/me/dashboard.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		User:  h.sessions.Current(r.Context(), sid),
		Theme: h.sessions.Theme(r.Context(), sid),
	})
}
