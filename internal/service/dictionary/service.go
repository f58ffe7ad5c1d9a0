package dictionary

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/numee-project/numee-backend/internal/config"
	"github.com/numee-project/numee-backend/internal/domain"
)

// queryStateKey is the session-store key holding the serialized QueryState.
const queryStateKey = "dictionary_query"

// sessionStore is the session-scoped storage the query lifecycle persists
// into. Write failures are tolerated: the in-memory result of the current
// action still takes effect.
type sessionStore interface {
	Get(sid uuid.UUID, key string) (string, bool)
	Set(sid uuid.UUID, key, value string) error
	Delete(sid uuid.UUID, key string)
}

// Service implements dictionary search over the static entry sequence plus
// the per-session query-state lifecycle.
type Service struct {
	log      *slog.Logger
	entries  []domain.Entry
	sessions sessionStore
	cfg      config.DictionaryConfig
}

// NewService creates a dictionary service. entries is the already-validated
// ordered sequence from the dataset collaborator; the service never mutates
// it.
func NewService(logger *slog.Logger, entries []domain.Entry, sessions sessionStore, cfg config.DictionaryConfig) *Service {
	return &Service{
		log:      logger.With("service", "dictionary"),
		entries:  entries,
		sessions: sessions,
		cfg:      cfg,
	}
}

// Count returns the number of entries in the dictionary.
func (s *Service) Count() int {
	return len(s.entries)
}
