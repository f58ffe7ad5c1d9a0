//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/numee-project/numee-backend/internal/adapter/memstore"
	"github.com/numee-project/numee-backend/internal/auth"
	"github.com/numee-project/numee-backend/internal/config"
	"github.com/numee-project/numee-backend/internal/dataset"
	"github.com/numee-project/numee-backend/internal/service/dictionary"
	"github.com/numee-project/numee-backend/internal/service/navigation"
	"github.com/numee-project/numee-backend/internal/service/session"
	"github.com/numee-project/numee-backend/internal/service/speech"
	"github.com/numee-project/numee-backend/internal/transport/rest"
)

// testServer wraps a fully wired API over the embedded dataset. Each call
// to newClient returns an http.Client with its own cookie jar, i.e. its own
// browsing session.
type testServer struct {
	*httptest.Server
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := config.Config{
		Server: config.ServerConfig{RatePerMinute: 10000},
		Session: config.SessionConfig{
			TokenSecret:     "e2e-secret-key-that-is-long-enough-0000",
			TokenIssuer:     "numee",
			TokenTTL:        time.Hour,
			CookieName:      "numee_session",
			MaxSessions:     100,
			IdleTTL:         time.Hour,
			CleanupInterval: time.Minute,
		},
		Dictionary: config.DictionaryConfig{MaxResults: 500},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,OPTIONS",
			AllowedHeaders: "Content-Type",
		},
	}

	entries, err := dataset.Load("")
	require.NoError(t, err)

	store := memstore.New(cfg.Session.MaxSessions, cfg.Session.IdleTTL, cfg.Session.CleanupInterval)
	t.Cleanup(store.Stop)

	tokens := auth.NewTokenManager(cfg.Session.TokenSecret, cfg.Session.TokenIssuer, cfg.Session.TokenTTL)
	sessionSvc := session.NewService(logger, store, auth.NewStaticVerifier(auth.DemoAccounts()))
	dictionarySvc := dictionary.NewService(logger, entries, store, cfg.Dictionary)
	navigationSvc := navigation.NewService(logger, store, dictionarySvc)
	player := speech.NewPlayer(logger, nil, cfg.Speech)
	t.Cleanup(player.Stop)

	handler := rest.NewRouter(rest.Deps{
		Logger:     logger,
		Config:     cfg,
		Tokens:     tokens,
		Store:      store,
		Sessions:   sessionSvc,
		Dictionary: dictionarySvc,
		Navigation: navigationSvc,
		Speech:     player,
		Version:    "e2e",
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{Server: srv}
}

// newClient returns a client representing one browser session.
func (ts *testServer) newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func (ts *testServer) getJSON(t *testing.T, c *http.Client, path string) (int, map[string]any) {
	t.Helper()
	resp, err := c.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode, decodeBody(t, resp.Body)
}

func (ts *testServer) postJSON(t *testing.T, c *http.Client, path string, body any) (int, map[string]any) {
	t.Helper()
	return ts.sendJSON(t, c, http.MethodPost, path, body)
}

func (ts *testServer) putJSON(t *testing.T, c *http.Client, path string, body any) (int, map[string]any) {
	t.Helper()
	return ts.sendJSON(t, c, http.MethodPut, path, body)
}

func (ts *testServer) sendJSON(t *testing.T, c *http.Client, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, ts.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode, decodeBody(t, resp.Body)
}

func decodeBody(t *testing.T, r io.Reader) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.NewDecoder(r).Decode(&m))
	return m
}

func login(t *testing.T, ts *testServer, c *http.Client, username, password string) {
	t.Helper()
	status, _ := ts.postJSON(t, c, "/api/auth/login", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, status)
}
