// Package navigation maps a requested destination plus the current identity
// to the view actually rendered. Role gating is part of the transition
// function: an unauthorized request is a defined redirect to the login
// view, never an error.
package navigation

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/numee-project/numee-backend/internal/domain"
)

// navStateKey is the session-store key holding the serialized NavigationState.
const navStateKey = "navigation"

// Resolve is the transition function: requested view + one-shot seed +
// current identity → resolved view + resolved seed. It is pure and total
// over the closed View set (ParseView has already mapped unknown names to
// home).
//
// The seed survives only when the destination is the dictionary — the one
// view that consumes it. Every other destination clears it, so a letter
// from a past dictionary visit can never reappear when the user returns
// through an unrelated path.
func Resolve(requested domain.View, seed string, identity *domain.Identity) (domain.View, string) {
	resolved := requested
	switch requested {
	case domain.ViewAdmin:
		if !identity.IsAdmin() {
			resolved = domain.ViewLogin
		}
	case domain.ViewUserDashboard:
		if identity == nil {
			resolved = domain.ViewLogin
		}
	}

	if requested != domain.ViewDictionary {
		seed = ""
	}
	return resolved, seed
}

// RenderView is the second, independent identity check applied when a
// resolved view is actually rendered: a stored "admin" state whose identity
// has since been cleared (logout elsewhere) still renders login, not the
// admin content. The user dashboard renders only for the user role.
func RenderView(resolved domain.View, identity *domain.Identity) domain.View {
	switch resolved {
	case domain.ViewAdmin:
		if !identity.IsAdmin() {
			return domain.ViewLogin
		}
	case domain.ViewUserDashboard:
		if !identity.HasRole(domain.RoleUser) {
			return domain.ViewLogin
		}
	}
	return resolved
}

// sessionStore persists the per-session NavigationState.
type sessionStore interface {
	Get(sid uuid.UUID, key string) (string, bool)
	Set(sid uuid.UUID, key, value string) error
	Delete(sid uuid.UUID, key string)
}

// queryLifecycle is the slice of the dictionary service the controller
// drives: seeding a letter into the destination view and resetting the
// query state when the dictionary is left.
type queryLifecycle interface {
	SeedLetter(ctx context.Context, sid uuid.UUID, letter string) domain.QueryState
	ClearQuery(ctx context.Context, sid uuid.UUID)
}

// Service is the stateful navigation controller: it applies Resolve,
// replaces the session's NavigationState atomically, and threads the seed
// into the dictionary.
type Service struct {
	log      *slog.Logger
	sessions sessionStore
	queries  queryLifecycle
}

// NewService creates a navigation service.
func NewService(logger *slog.Logger, sessions sessionStore, queries queryLifecycle) *Service {
	return &Service{
		log:      logger.With("service", "navigation"),
		sessions: sessions,
		queries:  queries,
	}
}

// Navigate handles one navigation request and returns the new state. The
// requested name is parsed against the closed View set (unknown → home).
func (s *Service) Navigate(ctx context.Context, sid uuid.UUID, requestedName, seed string, identity *domain.Identity) domain.NavigationState {
	requested := domain.ParseView(requestedName)
	view, resolvedSeed := Resolve(requested, seed, identity)
	state := domain.NavigationState{View: view, Seed: resolvedSeed}

	s.persist(ctx, sid, state)

	// QueryState is owned by the dictionary view: entering it with a seed
	// pre-selects the letter, leaving it resets the query.
	if view == domain.ViewDictionary {
		if resolvedSeed != "" {
			s.queries.SeedLetter(ctx, sid, resolvedSeed)
		}
	} else {
		s.queries.ClearQuery(ctx, sid)
	}

	if view != requested {
		s.log.InfoContext(ctx, "navigation redirected",
			slog.String("requested", requested.String()),
			slog.String("resolved", view.String()))
	}
	return state
}

// Current returns the session's navigation state as it should render right
// now: the stored state with the render-time identity check applied.
// Missing or malformed stored state yields the initial home state.
func (s *Service) Current(ctx context.Context, sid uuid.UUID, identity *domain.Identity) domain.NavigationState {
	raw, ok := s.sessions.Get(sid, navStateKey)
	if !ok {
		return domain.DefaultNavigationState()
	}

	var state domain.NavigationState
	if err := json.Unmarshal([]byte(raw), &state); err != nil || !state.View.IsValid() {
		s.log.WarnContext(ctx, "malformed persisted navigation state, resetting",
			slog.String("session_id", sid.String()))
		s.sessions.Delete(sid, navStateKey)
		return domain.DefaultNavigationState()
	}

	if rendered := RenderView(state.View, identity); rendered != state.View {
		// The gate closed between navigation and render; the seed dies
		// with the redirect.
		return domain.NavigationState{View: rendered}
	}
	return state
}

func (s *Service) persist(ctx context.Context, sid uuid.UUID, state domain.NavigationState) {
	raw, err := json.Marshal(state)
	if err != nil {
		s.log.ErrorContext(ctx, "marshal navigation state", slog.String("error", err.Error()))
		return
	}
	if err := s.sessions.Set(sid, navStateKey, string(raw)); err != nil {
		s.log.WarnContext(ctx, "persist navigation state failed",
			slog.String("session_id", sid.String()),
			slog.String("error", err.Error()))
	}
}
