package dictionary

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/numee-project/numee-backend/internal/domain"
)

// CurrentQuery returns the session's active query state. Missing or
// malformed persisted state collapses to the no-query state; it is never
// surfaced as an error.
func (s *Service) CurrentQuery(ctx context.Context, sid uuid.UUID) domain.QueryState {
	raw, ok := s.sessions.Get(sid, queryStateKey)
	if !ok {
		return domain.NoQuery()
	}

	var q domain.QueryState
	if err := json.Unmarshal([]byte(raw), &q); err != nil || !q.Valid() {
		s.log.WarnContext(ctx, "malformed persisted query state, resetting",
			slog.String("session_id", sid.String()))
		s.sessions.Delete(sid, queryStateKey)
		return domain.NoQuery()
	}
	return q
}

// ToggleLetter applies a letter click: selecting the active letter again
// clears the filter, anything else replaces the current query.
func (s *Service) ToggleLetter(ctx context.Context, sid uuid.UUID, letter string) domain.QueryState {
	next := s.CurrentQuery(ctx, sid).ToggleLetter(letter)
	s.persistQuery(ctx, sid, next)
	return next
}

// SeedLetter applies a letter carried in as a navigation seed: the letter
// is set unconditionally (no toggle) and any active term is cleared.
func (s *Service) SeedLetter(ctx context.Context, sid uuid.UUID, letter string) domain.QueryState {
	next := domain.LetterQuery(letter)
	s.persistQuery(ctx, sid, next)
	return next
}

// Search applies a free-text search. It always clears an active letter,
// and an empty term is a valid explicit search.
func (s *Service) Search(ctx context.Context, sid uuid.UUID, term string) domain.QueryState {
	next := domain.TermQuery(term)
	s.persistQuery(ctx, sid, next)
	return next
}

// SearchReference applies a cross-reference click: the value is stripped of
// its bracket/parenthesis wrapping and searched as a fresh term, clearing
// any active letter.
func (s *Service) SearchReference(ctx context.Context, sid uuid.UUID, value string) domain.QueryState {
	return s.Search(ctx, sid, CleanReference(value))
}

// ClearQuery resets the session to the no-query state. Called when the
// dictionary view is left. Idempotent.
func (s *Service) ClearQuery(ctx context.Context, sid uuid.UUID) {
	s.sessions.Delete(sid, queryStateKey)
}

// Filter returns the entries matching the session's current query, in
// source order, capped at the configured maximum.
func (s *Service) Filter(ctx context.Context, sid uuid.UUID) ([]domain.Entry, domain.QueryState) {
	q := s.CurrentQuery(ctx, sid)
	matched := FilterEntries(s.entries, q)
	if s.cfg.MaxResults > 0 && len(matched) > s.cfg.MaxResults {
		matched = matched[:s.cfg.MaxResults]
	}
	return matched, q
}

// persistQuery stores the query state. A write failure is logged and
// tolerated: the returned state still drives the current request, a reload
// may lose it.
func (s *Service) persistQuery(ctx context.Context, sid uuid.UUID, q domain.QueryState) {
	raw, err := json.Marshal(q)
	if err != nil {
		s.log.ErrorContext(ctx, "marshal query state", slog.String("error", err.Error()))
		return
	}
	if err := s.sessions.Set(sid, queryStateKey, string(raw)); err != nil {
		s.log.WarnContext(ctx, "persist query state failed",
			slog.String("session_id", sid.String()),
			slog.String("error", err.Error()))
	}
}
