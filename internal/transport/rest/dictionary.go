package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/numee-project/numee-backend/internal/domain"
)

// dictionaryService defines the minimal interface needed by DictionaryHandler.
type dictionaryService interface {
	ToggleLetter(ctx context.Context, sid uuid.UUID, letter string) domain.QueryState
	Search(ctx context.Context, sid uuid.UUID, term string) domain.QueryState
	SearchReference(ctx context.Context, sid uuid.UUID, value string) domain.QueryState
	Filter(ctx context.Context, sid uuid.UUID) ([]domain.Entry, domain.QueryState)
	WordOfDay() *domain.Entry
}

// DictionaryHandler serves dictionary browsing endpoints.
type DictionaryHandler struct {
	dict dictionaryService
	log  *slog.Logger
}

// NewDictionaryHandler creates a DictionaryHandler.
func NewDictionaryHandler(dict dictionaryService, logger *slog.Logger) *DictionaryHandler {
	return &DictionaryHandler{dict: dict, log: logger.With("handler", "dictionary")}
}

type letterRequest struct {
	Letter string `json:"letter"`
}

type searchRequest struct {
	Term string `json:"term"`
}

type referenceRequest struct {
	Value string `json:"value"`
}

type entriesResponse struct {
	Query   domain.QueryState `json:"query"`
	Entries []domain.Entry    `json:"entries"`
	Total   int               `json:"total"`
}

// ToggleLetter handles POST /api/dictionary/letter. Picking the letter
// that is already active clears the filter.
func (h *DictionaryHandler) ToggleLetter(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	var req letterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Letter == "" {
		writeError(w, http.StatusBadRequest, "letter is required")
		return
	}

	h.dict.ToggleLetter(r.Context(), sid, req.Letter)
	h.writeEntries(w, r, sid)
}

// Search handles POST /api/dictionary/search. An active letter filter is
// replaced by the search; an empty term is a valid search matching all
// entries.
func (h *DictionaryHandler) Search(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.dict.Search(r.Context(), sid, req.Term)
	h.writeEntries(w, r, sid)
}

// Reference handles POST /api/dictionary/reference: following a
// cross-reference from an entry. Decoration characters around the target
// headword are stripped before searching.
func (h *DictionaryHandler) Reference(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	var req referenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Value == "" {
		writeError(w, http.StatusBadRequest, "value is required")
		return
	}

	h.dict.SearchReference(r.Context(), sid, req.Value)
	h.writeEntries(w, r, sid)
}

// Entries handles GET /api/dictionary/entries: the entry list under the
// session's current filter.
func (h *DictionaryHandler) Entries(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	h.writeEntries(w, r, sid)
}

type wordOfDayResponse struct {
	Entry *domain.Entry `json:"entry"`
}

// WordOfDay handles GET /api/dictionary/word-of-the-day.
func (h *DictionaryHandler) WordOfDay(w http.ResponseWriter, r *http.Request) {
	entry := h.dict.WordOfDay()
	if entry == nil {
		writeError(w, http.StatusNotFound, "dictionary is empty")
		return
	}
	writeJSON(w, http.StatusOK, wordOfDayResponse{Entry: entry})
}

func (h *DictionaryHandler) writeEntries(w http.ResponseWriter, r *http.Request, sid uuid.UUID) {
	entries, query := h.dict.Filter(r.Context(), sid)
	if entries == nil {
		entries = []domain.Entry{}
	}
	writeJSON(w, http.StatusOK, entriesResponse{
		Query:   query,
		Entries: entries,
		Total:   len(entries),
	})
}
