package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"bookstore-web/internal/config"
	"bookstore-web/internal/infrastructure/database"
)

// loadConfig loads the shared configuration and forces the queue on:
// the worker is the queue's consumer.
func loadConfig() (*config.Config, *database.DBConfig, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	cfg.Queue.Enabled = true

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, nil, err
	}
	if dbConfig.Driver != "postgres" {
		return nil, nil, fmt.Errorf("worker needs DB_DRIVER=postgres, got %q", dbConfig.Driver)
	}

	log.Info().
		Str("redis", cfg.Redis.Host).
		Int("concurrency", cfg.Queue.Concurrency).
		Bool("storage", cfg.MinIO.Endpoint != "").
		Msg("[Config] loaded")

	return cfg, dbConfig, nil
}
