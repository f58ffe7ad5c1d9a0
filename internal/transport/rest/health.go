package rest

import (
	"net/http"
	"time"
)

// dictionaryCounter reports how many entries the dictionary holds.
type dictionaryCounter interface {
	Count() int
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	dict    dictionaryCounter
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(dict dictionaryCounter, version string) *HealthHandler {
	return &HealthHandler{dict: dict, version: version}
}

// HealthResponse is the JSON response for /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version,omitempty"`
	Entries   int       `json:"entries"`
	Timestamp time.Time `json:"timestamp"`
}

// Health reports service status and the loaded dictionary size.
// An empty dictionary means the dataset failed to load, so the
// service is not usable.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	count := h.dict.Count()
	status := "ok"
	code := http.StatusOK
	if count == 0 {
		status = "down"
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:    status,
		Version:   h.version,
		Entries:   count,
		Timestamp: time.Now(),
	})
}
