// cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/prasetyadi/dealer-restock/internal/api"
	"github.com/prasetyadi/dealer-restock/internal/cache"
	"github.com/prasetyadi/dealer-restock/internal/config"
	"github.com/prasetyadi/dealer-restock/internal/repository/postgres"
	"github.com/prasetyadi/dealer-restock/internal/service"
	"github.com/prasetyadi/dealer-restock/internal/storage"
	"github.com/prasetyadi/dealer-restock/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger.SetLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Plan cache (noop when disabled)
	planCache, err := cache.NewPlanCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("plan cache unavailable, continuing without")
		planCache = cache.NewNoopPlanCache()
	}

	// Optional run archive
	var archive storage.ObjectStorage
	if cfg.Archive.Enabled {
		client, err := storage.NewArchiveClient(cfg.Archive)
		if err != nil {
			logger.Log.Warn().Err(err).Msg("run archive unavailable, continuing without")
		} else {
			archive = client
		}
	}

	// Initialize services
	restockService := service.NewRestockService(postgres.NewSnapshotRepository(db), planCache, archive)

	// Initialize HTTP server
	router := api.NewRouter(&api.Services{RestockService: restockService}, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
