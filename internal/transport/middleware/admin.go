package middleware

import (
	"net/http"

	"github.com/numee-project/numee-backend/internal/domain"
	"github.com/numee-project/numee-backend/pkg/ctxutil"
)

// RequireAdmin rejects requests whose session identity is not an admin.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ctxutil.IsAdminCtx(r.Context()) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole rejects requests whose session identity does not hold the
// given role exactly. Anonymous sessions are rejected with 401.
func RequireRole(role domain.Role) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := ctxutil.IdentityFromCtx(r.Context())
			if identity == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if !identity.HasRole(role) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
