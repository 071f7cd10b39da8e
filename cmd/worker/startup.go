// cmd/worker/startup.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"bookstore-web/pkg/container"
)

const healthAddr = ":9999"

// startServices performs health checks and starts the probe endpoint.
func startServices(c *container.Container) error {
	log.Info().Msg("bookstore worker starting")

	checks := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"Redis Connection", c.Redis.HealthCheck},
		{"Database", c.DB.HealthCheck},
	}

	for _, check := range checks {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := check.fn(ctx)
		cancel()
		if err != nil {
			return fmt.Errorf("%s failed: %w", check.name, err)
		}
		log.Info().Str("check", check.name).Msg("health check ok")
	}

	go startHealthCheckServer()
	return nil
}

// startHealthCheckServer serves liveness and readiness probes.
func startHealthCheckServer() {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"UP","service":"bookstore-worker"}`))
	})
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"READY"}`))
	})

	log.Info().Str("addr", healthAddr).Msg("[Health] starting health check server")
	if err := http.ListenAndServe(healthAddr, mux); err != nil {
		log.Error().Err(err).Msg("[Health] failed to start")
	}
}
