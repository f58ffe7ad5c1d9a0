package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/numee-project/numee-backend/internal/domain"
)

type ctxKey string

const (
	sessionIDKey ctxKey = "session_id"
	identityKey  ctxKey = "identity"
	requestIDKey ctxKey = "request_id"
)

// WithSessionID stores the browsing-session ID in the context.
func WithSessionID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// SessionIDFromCtx extracts the session ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func SessionIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(sessionIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithIdentity stores the authenticated identity in the context.
// A nil identity marks the request as anonymous.
func WithIdentity(ctx context.Context, id *domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromCtx extracts the identity from the context.
// Returns nil for anonymous requests.
func IdentityFromCtx(ctx context.Context) *domain.Identity {
	id, _ := ctx.Value(identityKey).(*domain.Identity)
	return id
}

// IsAdminCtx reports whether the context identity holds the admin role.
func IsAdminCtx(ctx context.Context) bool {
	return IdentityFromCtx(ctx).IsAdmin()
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
