// Package session owns the per-browsing-session identity and preferences:
// at most one authenticated identity per session, persisted in the session
// store and restored on every request until logout or session expiry.
package session

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/numee-project/numee-backend/internal/domain"
)

// Storage keys, one independent entry per concern.
const (
	identityKey = "user"
	themeKey    = "theme"
)

// sessionStore is the session-scoped storage identities and preferences
// persist into.
type sessionStore interface {
	Get(sid uuid.UUID, key string) (string, bool)
	Set(sid uuid.UUID, key, value string) error
	Delete(sid uuid.UUID, key string)
}

// verifier checks a credential pair. The demo deployment injects the fixed
// in-memory table from internal/auth; a real backend substitutes its own
// implementation without this package changing.
type verifier interface {
	Verify(username, password string) (*domain.Identity, bool)
}

// Service implements authenticate / current / clear plus the theme
// preference.
type Service struct {
	log      *slog.Logger
	sessions sessionStore
	creds    verifier
}

// NewService creates a session service.
func NewService(logger *slog.Logger, sessions sessionStore, creds verifier) *Service {
	return &Service{
		log:      logger.With("service", "session"),
		sessions: sessions,
		creds:    creds,
	}
}

// Authenticate verifies the credential pair and, on success, persists the
// resulting identity for the session and returns it. On failure it returns
// ErrUnauthorized and leaves any previously stored identity untouched.
func (s *Service) Authenticate(ctx context.Context, sid uuid.UUID, username, password string) (*domain.Identity, error) {
	identity, ok := s.creds.Verify(username, password)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	raw, err := json.Marshal(identity)
	if err != nil {
		s.log.ErrorContext(ctx, "marshal identity", slog.String("error", err.Error()))
		return identity, nil
	}
	if err := s.sessions.Set(sid, identityKey, string(raw)); err != nil {
		// The login still takes effect for this request; a reload may
		// lose it, which is acceptable degraded behavior.
		s.log.WarnContext(ctx, "persist identity failed",
			slog.String("session_id", sid.String()),
			slog.String("error", err.Error()))
	}

	s.log.InfoContext(ctx, "session authenticated",
		slog.String("session_id", sid.String()),
		slog.String("role", identity.Role.String()))
	return identity, nil
}

// Current returns the session's identity, or nil for anonymous. A missing
// or malformed stored value yields nil; the malformed case is logged and
// the value dropped, never surfaced as an error.
func (s *Service) Current(ctx context.Context, sid uuid.UUID) *domain.Identity {
	raw, ok := s.sessions.Get(sid, identityKey)
	if !ok {
		return nil
	}

	var identity domain.Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil || !identity.Role.IsValid() || identity.Username == "" {
		s.log.WarnContext(ctx, "malformed persisted identity, treating as anonymous",
			slog.String("session_id", sid.String()))
		s.sessions.Delete(sid, identityKey)
		return nil
	}
	return &identity
}

// Clear logs the session out. Idempotent.
func (s *Service) Clear(ctx context.Context, sid uuid.UUID) {
	s.sessions.Delete(sid, identityKey)
	s.log.InfoContext(ctx, "session cleared", slog.String("session_id", sid.String()))
}

// Theme returns the session's theme preference, defaulting to system.
func (s *Service) Theme(_ context.Context, sid uuid.UUID) domain.Theme {
	raw, ok := s.sessions.Get(sid, themeKey)
	if !ok {
		return domain.ThemeSystem
	}
	theme := domain.Theme(raw)
	if !theme.IsValid() {
		return domain.ThemeSystem
	}
	return theme
}

// SetTheme stores the theme preference. Invalid values are rejected with
// ErrValidation; a storage write failure is logged and tolerated.
func (s *Service) SetTheme(ctx context.Context, sid uuid.UUID, theme domain.Theme) error {
	if !theme.IsValid() {
		return domain.NewValidationError("theme", "unknown theme")
	}
	if err := s.sessions.Set(sid, themeKey, theme.String()); err != nil {
		s.log.WarnContext(ctx, "persist theme failed",
			slog.String("session_id", sid.String()),
			slog.String("error", err.Error()))
	}
	return nil
}
