package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"estate-search/internal/config"
	"estate-search/internal/handler"
	"estate-search/internal/observability"
	"estate-search/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.Logging.Level)
	log.Info().
		Str("version", Version).
		Str("build_time", BuildTime).
		Str("git_commit", GitCommit).
		Msg("estate search server")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// A broken listing source is fatal: nothing to search
	searchService, err := service.NewSearchServiceFromConfig(context.Background(), cfg, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load listings")
	}

	reg := observability.InitRegistry()
	router := handler.NewRouter(handler.NewSearchHandler(searchService, cfg.Listings.Currency), handler.RouterConfig{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Build:          handler.BuildInfo{Version: Version, BuildTime: BuildTime, GitCommit: GitCommit},
		Metrics:        observability.MetricsHandler(reg),
		Logger:         log.Logger,
	})
	setupStaticFiles(router)

	addr := cfg.Address()
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
