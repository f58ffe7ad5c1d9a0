package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/numee-project/numee-backend/internal/config"
	"github.com/numee-project/numee-backend/internal/domain"
	"github.com/numee-project/numee-backend/pkg/ctxutil"
)

// tokenManager signs and validates session cookie values.
type tokenManager interface {
	Generate(sessionID uuid.UUID) (string, error)
	Validate(tokenString string) (uuid.UUID, error)
}

// identityResolver resolves the identity stored for a session, if any.
type identityResolver interface {
	Current(ctx context.Context, sid uuid.UUID) *domain.Identity
}

// Session returns middleware that resolves the browsing session for each
// request. It reads the configured cookie, validates its signed token, and
// puts the session ID and stored identity into the request context. A
// missing or invalid cookie is never an error: a fresh session ID is minted
// and a new cookie is set. The cookie carries no Max-Age, so it lives only
// for the browser session.
func Session(logger *slog.Logger, tokens tokenManager, identities identityResolver, cfg config.SessionConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sid := uuid.Nil
			if cookie, err := r.Cookie(cfg.CookieName); err == nil {
				id, err := tokens.Validate(cookie.Value)
				if err != nil {
					logger.DebugContext(r.Context(), "invalid session token, starting fresh session",
						slog.String("error", err.Error()))
				} else {
					sid = id
				}
			}

			if sid == uuid.Nil {
				sid = uuid.New()
				signed, err := tokens.Generate(sid)
				if err != nil {
					logger.ErrorContext(r.Context(), "failed to sign session token",
						slog.String("error", err.Error()))
					http.Error(w, "internal server error", http.StatusInternalServerError)
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.CookieName,
					Value:    signed,
					Path:     "/",
					HttpOnly: true,
					Secure:   cfg.CookieSecure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := ctxutil.WithSessionID(r.Context(), sid)
			if identity := identities.Current(ctx, sid); identity != nil {
				ctx = ctxutil.WithIdentity(ctx, identity)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
