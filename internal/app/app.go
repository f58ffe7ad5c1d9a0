package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

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

// Run is the application entry point. It loads configuration, initializes
// the logger, loads the dictionary dataset, wires the services, and serves
// HTTP until the context is cancelled. Shutdown is graceful within the
// configured timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	entries, err := dataset.Load(cfg.Dictionary.DataPath)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	logger.Info("dictionary loaded", slog.Int("entries", len(entries)))

	store := memstore.New(cfg.Session.MaxSessions, cfg.Session.IdleTTL, cfg.Session.CleanupInterval)
	defer store.Stop()

	tokens := auth.NewTokenManager(cfg.Session.TokenSecret, cfg.Session.TokenIssuer, cfg.Session.TokenTTL)
	verifier := auth.NewStaticVerifier(auth.DemoAccounts())

	sessionSvc := session.NewService(logger, store, verifier)
	dictionarySvc := dictionary.NewService(logger, entries, store, cfg.Dictionary)
	navigationSvc := navigation.NewService(logger, store, dictionarySvc)
	player := speech.NewPlayer(logger, speechSynthesizer(cfg.Speech), cfg.Speech)
	defer player.Stop()

	handler := rest.NewRouter(rest.Deps{
		Logger:     logger,
		Config:     *cfg,
		Tokens:     tokens,
		Store:      store,
		Sessions:   sessionSvc,
		Dictionary: dictionarySvc,
		Navigation: navigationSvc,
		Speech:     player,
		Version:    Version,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}

// speechSynthesizer returns the synthesizer backend for the configured
// speech settings. There is no server-side audio backend yet, so playback
// is reported as unavailable even when enabled.
// TODO: wire an actual TTS backend behind speech.Synthesizer once one is
// chosen for Numèè audio.
func speechSynthesizer(_ config.SpeechConfig) speech.Synthesizer {
	return nil
}
