package dictionary

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/numee-project/numee-backend/internal/config"
	"github.com/numee-project/numee-backend/internal/domain"
)

// fakeStore implements sessionStore in memory, optionally failing writes.
type fakeStore struct {
	values    map[string]string
	failWrite error
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: make(map[string]string)}
}

func (f *fakeStore) Get(sid uuid.UUID, key string) (string, bool) {
	v, ok := f.values[sid.String()+"/"+key]
	return v, ok
}

func (f *fakeStore) Set(sid uuid.UUID, key, value string) error {
	if f.failWrite != nil {
		return f.failWrite
	}
	f.values[sid.String()+"/"+key] = value
	return nil
}

func (f *fakeStore) Delete(sid uuid.UUID, key string) {
	delete(f.values, sid.String()+"/"+key)
}

func newTestService(store *fakeStore) *Service {
	return NewService(slog.Default(), testEntries(), store, config.DictionaryConfig{MaxResults: 500})
}

func TestService_QueryLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestService(newFakeStore())
	sid := uuid.New()

	// Initial state: no query, empty result.
	if q := svc.CurrentQuery(ctx, sid); q.IsActive() {
		t.Fatalf("fresh session has active query: %+v", q)
	}
	if entries, _ := svc.Filter(ctx, sid); len(entries) != 0 {
		t.Fatalf("fresh session returned %d entries", len(entries))
	}

	// Letter click filters; state survives across calls.
	svc.ToggleLetter(ctx, sid, "K")
	entries, q := svc.Filter(ctx, sid)
	if q.Kind != domain.QueryLetter || len(entries) != 3 {
		t.Fatalf("after letter K: kind=%s entries=%d", q.Kind, len(entries))
	}

	// Same letter again toggles back to no query.
	svc.ToggleLetter(ctx, sid, "K")
	if entries, q := svc.Filter(ctx, sid); q.IsActive() || len(entries) != 0 {
		t.Fatalf("double toggle: kind=%s entries=%d", q.Kind, len(entries))
	}

	// A search overrides an active letter.
	svc.ToggleLetter(ctx, sid, "K")
	svc.Search(ctx, sid, "bonjour")
	entries, q = svc.Filter(ctx, sid)
	if q.Kind != domain.QueryTerm || q.Letter != "" {
		t.Fatalf("search did not clear letter: %+v", q)
	}
	if len(entries) != 1 || entries[0].Numee != "Ölê" {
		t.Fatalf("search bonjour → %v", headwords(entries))
	}

	// Clearing resets to the initial state.
	svc.ClearQuery(ctx, sid)
	if q := svc.CurrentQuery(ctx, sid); q.IsActive() {
		t.Fatalf("clear left state %+v", q)
	}
}

func TestService_SearchReference(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestService(newFakeStore())
	sid := uuid.New()

	// Cross-reference click while a letter is active: letter cleared,
	// stripped value searched.
	svc.ToggleLetter(ctx, sid, "M")
	q := svc.SearchReference(ctx, sid, "{Kwé}")
	if q.Kind != domain.QueryTerm || q.Term != "Kwé" || q.Letter != "" {
		t.Fatalf("reference query = %+v", q)
	}
	entries, _ := svc.Filter(ctx, sid)
	if len(entries) != 1 || entries[0].Numee != "Kwé" {
		t.Fatalf("reference search → %v", headwords(entries))
	}
}

func TestService_SeedLetter(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestService(newFakeStore())
	sid := uuid.New()

	// Seeding the already-active letter must NOT toggle it off.
	svc.SeedLetter(ctx, sid, "K")
	svc.SeedLetter(ctx, sid, "K")
	q := svc.CurrentQuery(ctx, sid)
	if q.Kind != domain.QueryLetter || q.Letter != "K" {
		t.Fatalf("seed toggled: %+v", q)
	}

	// Seeding replaces an active term.
	svc.Search(ctx, sid, "maison")
	svc.SeedLetter(ctx, sid, "N")
	q = svc.CurrentQuery(ctx, sid)
	if q.Kind != domain.QueryLetter || q.Letter != "N" || q.Term != "" {
		t.Fatalf("seed after search: %+v", q)
	}
}

func TestService_SessionsIndependent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestService(newFakeStore())
	a, b := uuid.New(), uuid.New()

	svc.ToggleLetter(ctx, a, "K")
	if q := svc.CurrentQuery(ctx, b); q.IsActive() {
		t.Errorf("query leaked across sessions: %+v", q)
	}
}

func TestService_MalformedPersistedState(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newFakeStore()
	svc := newTestService(store)
	sid := uuid.New()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "%%%"},
		{name: "both modes set", raw: `{"kind":"letter","letter":"K","term":"x"}`},
		{name: "unknown kind", raw: `{"kind":"banana"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store.values[sid.String()+"/"+queryStateKey] = tt.raw
			if q := svc.CurrentQuery(ctx, sid); q.IsActive() {
				t.Errorf("malformed state surfaced as %+v", q)
			}
		})
	}
}

func TestService_WriteFailureTolerated(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newFakeStore()
	store.failWrite = domain.ErrStoreFull
	svc := newTestService(store)
	sid := uuid.New()

	// The action still yields its state for the current request.
	q := svc.ToggleLetter(ctx, sid, "K")
	if q.Kind != domain.QueryLetter || q.Letter != "K" {
		t.Fatalf("toggle under write failure = %+v", q)
	}

	// Nothing was persisted; the next read sees the no-query state.
	if q := svc.CurrentQuery(ctx, sid); q.IsActive() {
		t.Errorf("state persisted despite write failure: %+v", q)
	}
}

func TestService_MaxResults(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newFakeStore()
	svc := NewService(slog.Default(), testEntries(), store, config.DictionaryConfig{MaxResults: 2})
	sid := uuid.New()

	svc.Search(ctx, sid, "")
	entries, _ := svc.Filter(ctx, sid)
	if len(entries) != 2 {
		t.Errorf("max results not applied: got %d", len(entries))
	}
}
