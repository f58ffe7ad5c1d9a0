package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/numee-project/numee-backend/internal/domain"
	"github.com/numee-project/numee-backend/pkg/ctxutil"
)

// navigationService defines the minimal interface needed by NavigationHandler.
type navigationService interface {
	Navigate(ctx context.Context, sid uuid.UUID, requestedName, seed string, identity *domain.Identity) domain.NavigationState
	Current(ctx context.Context, sid uuid.UUID, identity *domain.Identity) domain.NavigationState
}

// NavigationHandler serves view navigation endpoints.
type NavigationHandler struct {
	nav navigationService
	log *slog.Logger
}

// NewNavigationHandler creates a NavigationHandler.
func NewNavigationHandler(nav navigationService, logger *slog.Logger) *NavigationHandler {
	return &NavigationHandler{nav: nav, log: logger.With("handler", "navigation")}
}

type navigateRequest struct {
	View string `json:"view"`
	Seed string `json:"seed,omitempty"`
}

type navigationResponse struct {
	View domain.View `json:"view"`
	Seed string      `json:"seed,omitempty"`
}

// Navigate handles POST /api/navigate. Role gates may redirect the session
// to the login view; the response always carries the view that was actually
// entered, so a redirect is visible to the caller as view != requested.
func (h *NavigationHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	var req navigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	identity := ctxutil.IdentityFromCtx(r.Context())
	state := h.nav.Navigate(r.Context(), sid, req.View, req.Seed, identity)

	writeJSON(w, http.StatusOK, navigationResponse{View: state.View, Seed: state.Seed})
}

// State handles GET /api/navigation/state. The stored view is re-checked
// against the current identity at read time, so a view gated behind a role
// the session no longer holds renders as login.
func (h *NavigationHandler) State(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	identity := ctxutil.IdentityFromCtx(r.Context())
	state := h.nav.Current(r.Context(), sid, identity)

	writeJSON(w, http.StatusOK, navigationResponse{View: state.View, Seed: state.Seed})
}
