package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fix4home/admin-gateway/internal/api"
	"github.com/fix4home/admin-gateway/internal/core/service"
	"github.com/fix4home/admin-gateway/internal/pkg/config"
	"github.com/fix4home/admin-gateway/internal/upstream"
	"github.com/fix4home/admin-gateway/pkg/logger"
)

func main() {
	// Local development convenience; in deployment the environment is real.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Service: "admin-gateway",
		Pretty:  cfg.Env == "development",
	})
	log.Info().
		Str("environment", cfg.Env).
		Str("port", cfg.Port).
		Str("upstream", cfg.Upstream.BaseURL).
		Msg("starting admin gateway")

	// --- Upstream API clients ---
	client := upstream.NewClient(cfg.Upstream.BaseURL, logger.Component("upstream"))
	client.OnSessionInvalidated(func(reason string) {
		log.Warn().Str("reason", reason).Msg("session invalidated by upstream")
	})

	sessions := service.NewSessionService(upstream.NewAuthClient(client), logger.Component("session"))

	e := api.NewRouter(cfg, api.Services{
		Sessions: sessions,
		Articles: upstream.NewArticlesClient(client),
		Bookings: upstream.NewBookingsClient(client),
		Images:   upstream.NewImagesClient(client),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}

	log.Info().Msg("admin gateway stopped")
}
