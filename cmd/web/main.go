package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/engr-razib/BrandingAssetGenerator/internal/batch"
	"github.com/engr-razib/BrandingAssetGenerator/internal/config"
	"github.com/engr-razib/BrandingAssetGenerator/internal/gemini"
	"github.com/engr-razib/BrandingAssetGenerator/internal/httpclient"
	"github.com/engr-razib/BrandingAssetGenerator/internal/session"
	"github.com/engr-razib/BrandingAssetGenerator/internal/web"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg)

	httpClient := httpclient.New(httpclient.Options{
		PreferIPv4: cfg.PreferIPv4,
		Timeout:    cfg.HTTPTimeout,
		Logger:     logger,
	})

	gem := gemini.New(gemini.Options{
		APIKey:     cfg.GeminiAPIKey,
		BaseURL:    cfg.GeminiBaseURL,
		APIVersion: cfg.GeminiAPIVersion,
		Model:      cfg.GeminiImageModel,
		HTTPClient: httpClient,
		Logger:     logger,
	})

	orch := batch.New(batch.Options{
		Generator:      gem,
		Logger:         logger,
		RequestTimeout: cfg.RequestTimeout,
	})

	sessions := session.NewStore(session.Options{
		TTL:         cfg.SessionTTL,
		MaxSessions: cfg.MaxSessions,
	})

	srv := web.New(web.Options{
		Orchestrator: orch,
		Sessions:     sessions,
		Logger:       logger,
		CookieMaxAge: cfg.SessionTTL,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sessions.RunJanitor(ctx, time.Minute)

	httpServer := &http.Server{
		Addr:              cfg.WebAddr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		// A batch is answered only after every size settles.
		WriteTimeout: cfg.RequestTimeout + 30*time.Second,
	}

	go func() {
		logger.Info("web server started", "addr", cfg.WebAddr, "model", gem.Model())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("web server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
}

func newLogger(cfg config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}
