package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mperezcarrasco/wildfires/internal/config"
	"github.com/mperezcarrasco/wildfires/internal/feed"
	"github.com/mperezcarrasco/wildfires/internal/fetchers"
	"github.com/mperezcarrasco/wildfires/internal/logger"
	"github.com/mperezcarrasco/wildfires/internal/server"
)

func main() {
	// .env is optional and only used for local development.
	_ = godotenv.Load()

	cfg, err := config.Load(context.Background())
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog := logger.New(logger.Config{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
	})

	appLog.Info("Starting fire feed service", map[string]any{
		"version":     config.Version(),
		"port":        cfg.Port,
		"environment": cfg.Environment,
		"region":      cfg.RegionName,
	})
	if cfg.MapKey == "" {
		appLog.Warn("MAP_KEY not set, feed requests will fail until it is configured")
	}

	fetcher := fetchers.NewDataFetcher(cfg.FetchTimeout, appLog)
	feedService := feed.NewService(cfg, fetcher, appLog)
	srv := server.New(cfg, feedService, appLog)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.SetupRoutes(),
	}

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Error("HTTP server failed", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLog.Error("Shutdown failed", err)
	}
}
