package rest

import (
	"log/slog"
	"net/http"

	"github.com/numee-project/numee-backend/internal/auth"
	"github.com/numee-project/numee-backend/internal/config"
	"github.com/numee-project/numee-backend/internal/domain"
	"github.com/numee-project/numee-backend/internal/service/dictionary"
	"github.com/numee-project/numee-backend/internal/service/navigation"
	"github.com/numee-project/numee-backend/internal/service/session"
	"github.com/numee-project/numee-backend/internal/service/speech"
	"github.com/numee-project/numee-backend/internal/transport/middleware"
)

// Deps carries everything the router needs.
type Deps struct {
	Logger     *slog.Logger
	Config     config.Config
	Tokens     *auth.TokenManager
	Store      sessionCounter
	Sessions   *session.Service
	Dictionary *dictionary.Service
	Navigation *navigation.Service
	Speech     *speech.Player
	Version    string
}

// NewRouter builds the full HTTP handler: all routes plus the standard
// middleware chain (request ID, logging, recovery, CORS, rate limiting,
// session resolution).
func NewRouter(d Deps) http.Handler {
	mux := http.NewServeMux()

	health := NewHealthHandler(d.Dictionary, d.Version)
	auth := NewAuthHandler(d.Sessions, d.Logger)
	theme := NewThemeHandler(d.Sessions, d.Logger)
	nav := NewNavigationHandler(d.Navigation, d.Logger)
	dict := NewDictionaryHandler(d.Dictionary, d.Logger)
	speak := NewSpeechHandler(d.Speech, d.Logger)
	admin := NewAdminHandler(d.Dictionary, d.Store, d.Sessions, d.Version, d.Logger)

	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("POST /api/auth/login", auth.Login)
	mux.HandleFunc("POST /api/auth/logout", auth.Logout)
	mux.HandleFunc("GET /api/auth/me", auth.Me)

	mux.HandleFunc("GET /api/theme", theme.Get)
	mux.HandleFunc("PUT /api/theme", theme.Set)

	mux.HandleFunc("POST /api/navigate", nav.Navigate)
	mux.HandleFunc("GET /api/navigation/state", nav.State)

	mux.HandleFunc("POST /api/dictionary/letter", dict.ToggleLetter)
	mux.HandleFunc("POST /api/dictionary/search", dict.Search)
	mux.HandleFunc("POST /api/dictionary/reference", dict.Reference)
	mux.HandleFunc("GET /api/dictionary/entries", dict.Entries)
	mux.HandleFunc("GET /api/dictionary/word-of-the-day", dict.WordOfDay)

	mux.HandleFunc("POST /api/speech", speak.Speak)
	mux.HandleFunc("POST /api/speech/stop", speak.Stop)

	mux.Handle("GET /api/admin/stats", middleware.RequireAdmin(http.HandlerFunc(admin.Stats)))
	mux.Handle("GET /api/me/dashboard", middleware.RequireRole(domain.RoleUser)(http.HandlerFunc(admin.Dashboard)))

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.CORS(d.Config.CORS),
		middleware.RateLimit(d.Config.Server.RatePerMinute),
		middleware.Session(d.Logger, d.Tokens, d.Sessions, d.Config.Session),
	)
	return chain(mux)
}
