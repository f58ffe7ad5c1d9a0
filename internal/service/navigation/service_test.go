package navigation

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/numee-project/numee-backend/internal/domain"
)

var (
	adminID = &domain.Identity{Username: "Admin", Role: domain.RoleAdmin}
	userID  = &domain.Identity{Username: "User", Role: domain.RoleUser}
)

func TestResolve_RoleGates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		requested domain.View
		identity  *domain.Identity
		want      domain.View
	}{
		{name: "admin as anonymous", requested: domain.ViewAdmin, identity: nil, want: domain.ViewLogin},
		{name: "admin as user", requested: domain.ViewAdmin, identity: userID, want: domain.ViewLogin},
		{name: "admin as admin", requested: domain.ViewAdmin, identity: adminID, want: domain.ViewAdmin},
		{name: "dashboard as anonymous", requested: domain.ViewUserDashboard, identity: nil, want: domain.ViewLogin},
		{name: "dashboard as user", requested: domain.ViewUserDashboard, identity: userID, want: domain.ViewUserDashboard},
		{name: "dashboard as admin passes the gate", requested: domain.ViewUserDashboard, identity: adminID, want: domain.ViewUserDashboard},
		{name: "open view as anonymous", requested: domain.ViewQuiz, identity: nil, want: domain.ViewQuiz},
		{name: "login is always reachable", requested: domain.ViewLogin, identity: nil, want: domain.ViewLogin},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, _ := Resolve(tt.requested, "", tt.identity)
			if got != tt.want {
				t.Errorf("Resolve(%s, %v) = %s, want %s", tt.requested, tt.identity, got, tt.want)
			}
		})
	}
}

func TestResolve_SeedLifecycle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		requested domain.View
		seed      string
		wantSeed  string
	}{
		{name: "dictionary keeps seed", requested: domain.ViewDictionary, seed: "K", wantSeed: "K"},
		{name: "home clears seed", requested: domain.ViewHome, seed: "K", wantSeed: ""},
		{name: "games clears seed", requested: domain.ViewGames, seed: "K", wantSeed: ""},
		{name: "admin redirect clears seed", requested: domain.ViewAdmin, seed: "K", wantSeed: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, seed := Resolve(tt.requested, tt.seed, nil)
			if seed != tt.wantSeed {
				t.Errorf("Resolve(%s, seed=%q) seed = %q, want %q", tt.requested, tt.seed, seed, tt.wantSeed)
			}
		})
	}
}

func TestRenderView(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		resolved domain.View
		identity *domain.Identity
		want     domain.View
	}{
		{name: "admin view with admin", resolved: domain.ViewAdmin, identity: adminID, want: domain.ViewAdmin},
		{name: "admin view after logout", resolved: domain.ViewAdmin, identity: nil, want: domain.ViewLogin},
		{name: "admin view with user", resolved: domain.ViewAdmin, identity: userID, want: domain.ViewLogin},
		{name: "dashboard with user", resolved: domain.ViewUserDashboard, identity: userID, want: domain.ViewUserDashboard},
		{name: "dashboard with admin renders login", resolved: domain.ViewUserDashboard, identity: adminID, want: domain.ViewLogin},
		{name: "dashboard after logout", resolved: domain.ViewUserDashboard, identity: nil, want: domain.ViewLogin},
		{name: "open view untouched", resolved: domain.ViewContact, identity: nil, want: domain.ViewContact},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := RenderView(tt.resolved, tt.identity); got != tt.want {
				t.Errorf("RenderView(%s, %v) = %s, want %s", tt.resolved, tt.identity, got, tt.want)
			}
		})
	}
}

// ─── Stateful controller ────────────────────────────────────────────────────

// fakeStore implements sessionStore in memory.
type fakeStore struct {
	values map[string]string
}

func newFakeStore() *fakeStore { return &fakeStore{values: make(map[string]string)} }

func (f *fakeStore) Get(sid uuid.UUID, key string) (string, bool) {
	v, ok := f.values[sid.String()+"/"+key]
	return v, ok
}

func (f *fakeStore) Set(sid uuid.UUID, key, value string) error {
	f.values[sid.String()+"/"+key] = value
	return nil
}

func (f *fakeStore) Delete(sid uuid.UUID, key string) {
	delete(f.values, sid.String()+"/"+key)
}

// fakeQueries records the seed/clear calls the controller makes.
type fakeQueries struct {
	seeded  []string
	cleared int
}

func (f *fakeQueries) SeedLetter(_ context.Context, _ uuid.UUID, letter string) domain.QueryState {
	f.seeded = append(f.seeded, letter)
	return domain.LetterQuery(letter)
}

func (f *fakeQueries) ClearQuery(_ context.Context, _ uuid.UUID) {
	f.cleared++
}

func newTestService(store *fakeStore, queries *fakeQueries) *Service {
	return NewService(slog.Default(), store, queries)
}

func TestService_NavigateAndCurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, queries := newFakeStore(), &fakeQueries{}
	svc := newTestService(store, queries)
	sid := uuid.New()

	// Initial state.
	if got := svc.Current(ctx, sid, nil); got.View != domain.ViewHome || got.Seed != "" {
		t.Fatalf("initial state = %+v", got)
	}

	// Dictionary with a seed letter: seed kept and threaded into the query.
	state := svc.Navigate(ctx, sid, "dictionary", "K", nil)
	if state.View != domain.ViewDictionary || state.Seed != "K" {
		t.Fatalf("dictionary navigate = %+v", state)
	}
	if len(queries.seeded) != 1 || queries.seeded[0] != "K" {
		t.Fatalf("seeded = %v", queries.seeded)
	}

	// State survives to the next read.
	if got := svc.Current(ctx, sid, nil); got != state {
		t.Fatalf("Current = %+v, want %+v", got, state)
	}

	// Leaving the dictionary clears both the seed and the query state.
	state = svc.Navigate(ctx, sid, "games", "", nil)
	if state.View != domain.ViewGames || state.Seed != "" {
		t.Fatalf("games navigate = %+v", state)
	}
	if queries.cleared == 0 {
		t.Error("leaving the dictionary did not clear the query")
	}

	// Returning to the dictionary without a seed must not resurrect "K".
	state = svc.Navigate(ctx, sid, "dictionary", "", nil)
	if state.Seed != "" {
		t.Errorf("stale seed reappeared: %+v", state)
	}
	if len(queries.seeded) != 1 {
		t.Errorf("seed re-applied: %v", queries.seeded)
	}
}

func TestService_Navigate_Gating(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestService(newFakeStore(), &fakeQueries{})
	sid := uuid.New()

	if state := svc.Navigate(ctx, sid, "admin", "", nil); state.View != domain.ViewLogin {
		t.Errorf("anonymous admin request = %+v", state)
	}
	if state := svc.Navigate(ctx, sid, "admin", "", userID); state.View != domain.ViewLogin {
		t.Errorf("user admin request = %+v", state)
	}
	if state := svc.Navigate(ctx, sid, "admin", "", adminID); state.View != domain.ViewAdmin {
		t.Errorf("admin admin request = %+v", state)
	}

	// Unknown view names fall back to home.
	if state := svc.Navigate(ctx, sid, "treasure", "", nil); state.View != domain.ViewHome {
		t.Errorf("unknown view = %+v", state)
	}
}

// Logout in another tab: the stored admin state must render login once the
// identity is gone, and the gate re-opens after logging in again.
func TestService_Current_RenderTimeCheck(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestService(newFakeStore(), &fakeQueries{})
	sid := uuid.New()

	if state := svc.Navigate(ctx, sid, "admin", "", adminID); state.View != domain.ViewAdmin {
		t.Fatalf("setup navigate = %+v", state)
	}

	if got := svc.Current(ctx, sid, nil); got.View != domain.ViewLogin {
		t.Errorf("admin state rendered as %s after logout, want login", got.View)
	}
	if got := svc.Current(ctx, sid, userID); got.View != domain.ViewLogin {
		t.Errorf("admin state rendered as %s for user role, want login", got.View)
	}
	if got := svc.Current(ctx, sid, adminID); got.View != domain.ViewAdmin {
		t.Errorf("admin state rendered as %s for admin, want admin", got.View)
	}
}

func TestService_Current_MalformedState(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newFakeStore()
	svc := newTestService(store, &fakeQueries{})
	sid := uuid.New()

	for _, raw := range []string{"%%%", `{"view":"treasure"}`} {
		store.values[sid.String()+"/"+navStateKey] = raw
		if got := svc.Current(ctx, sid, nil); got != domain.DefaultNavigationState() {
			t.Errorf("malformed state %q rendered as %+v", raw, got)
		}
	}
}
