package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/numee-project/numee-backend/internal/domain"
)

// speechPlayer defines the minimal interface needed by SpeechHandler.
type speechPlayer interface {
	Speak(text string) error
	Stop()
}

// SpeechHandler serves pronunciation playback endpoints.
type SpeechHandler struct {
	player speechPlayer
	log    *slog.Logger
}

// NewSpeechHandler creates a SpeechHandler.
func NewSpeechHandler(player speechPlayer, logger *slog.Logger) *SpeechHandler {
	return &SpeechHandler{player: player, log: logger.With("handler", "speech")}
}

type speakRequest struct {
	Text string `json:"text"`
}

// Speak handles POST /api/speech. Playback is asynchronous and last-writer
// wins: a new request cancels whatever was playing. 202 means accepted, not
// finished.
func (h *SpeechHandler) Speak(w http.ResponseWriter, r *http.Request) {
	var req speakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.player.Speak(req.Text); err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrUnsupported):
			writeError(w, http.StatusNotImplemented, "speech playback is not available")
		default:
			h.log.ErrorContext(r.Context(), "speak", slog.String("error", err.Error()))
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "speaking"})
}

// Stop handles POST /api/speech/stop. Idempotent.
func (h *SpeechHandler) Stop(w http.ResponseWriter, r *http.Request) {
	h.player.Stop()
	writeJSON(w, http.StatusOK, map[string]string{"status": "stopped"})
}
