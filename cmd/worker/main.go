// cmd/worker/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"bookstore-web/pkg/container"
	"bookstore-web/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	// Load configuration
	cfg, dbConfig, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("[Config] failed to load")
	}
	logger.Init(cfg.App.Environment)

	// Initialize container
	initCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	c, err := container.NewContainer(initCtx, cfg, dbConfig)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("[Container] failed to initialize")
	}
	defer c.Cleanup()

	// Initialize handlers
	handlers := initializeHandlers(c)

	// Setup Asynq server
	srv := setupAsynqServer(cfg, handlers)

	// Perform health checks and log startup
	if err := startServices(c); err != nil {
		log.Fatal().Err(err).Msg("[Startup] health check failed")
	}

	// Wait for shutdown signal
	waitForShutdown(srv)
}

func waitForShutdown(srv *asynqServer) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("[Shutdown] gracefully stopping")
	srv.Shutdown()
	log.Info().Msg("[Shutdown] stopped")
}
