package rest

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/numee-project/numee-backend/pkg/ctxutil"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// sessionID extracts the session ID placed in the context by the session
// middleware. A missing ID means the middleware is not wired, which is a
// server bug, not a client error.
func sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	sid, ok := ctxutil.SessionIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return uuid.Nil, false
	}
	return sid, true
}
