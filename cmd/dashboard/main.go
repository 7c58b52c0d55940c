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

	"github.com/spacesedan/sentiview/config"
	"github.com/spacesedan/sentiview/internal/clients"
	"github.com/spacesedan/sentiview/internal/dashboard"
	"github.com/spacesedan/sentiview/internal/handlers"
	"github.com/spacesedan/sentiview/internal/logging"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("[Main] Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logging.InitLogger(cfg.LogLevel)

	if cfg.IsLocal() {
		slog.Warn("[Main] API_URL points to a loopback address, running in local mode",
			slog.String("api_url", cfg.APIURL))
	}

	renderer, err := dashboard.NewRenderer()
	if err != nil {
		slog.Error("[Main] Failed to load templates", slog.String("error", err.Error()))
		os.Exit(1)
	}

	api := clients.NewSentimentAPIClient(cfg.APIURL, cfg.APITimeout)
	handler := handlers.NewHTTPHandler(api, renderer, cfg.APIURL, cfg.IsLocal())

	srv := &http.Server{
		Addr:              cfg.DashboardAddr,
		Handler:           handlers.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("[Main] Dashboard listening",
			slog.String("addr", cfg.DashboardAddr),
			slog.String("env", env),
			slog.String("api_url", cfg.APIURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[Main] Server failed", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("[Main] Graceful shutdown failed", slog.String("error", err.Error()))
	}
	slog.Info("[Main] Dashboard stopped")
}
