package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("SESSION_STORE", "memory")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "sessionid", cfg.Session.CookieName)
	assert.Equal(t, 14*24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "access_token", cfg.JWT.CookieName)
	assert.True(t, cfg.Shop.FreeDeliveryThreshold.Equal(decimal.NewFromInt(50)))
	assert.True(t, cfg.Shop.StandardDeliveryPercentage.Equal(decimal.NewFromInt(10)))
	assert.False(t, cfg.Queue.Enabled)
	assert.Empty(t, cfg.MinIO.Endpoint)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SESSION_STORE", "memory")
	t.Setenv("FREE_DELIVERY_THRESHOLD", "25.50")
	t.Setenv("STANDARD_DELIVERY_PERCENTAGE", "5")
	t.Setenv("QUEUE_ENABLED", "true")
	t.Setenv("WORKER_CONCURRENCY", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "25.5", cfg.Shop.FreeDeliveryThreshold.String())
	assert.Equal(t, "5", cfg.Shop.StandardDeliveryPercentage.String())
	assert.True(t, cfg.Queue.Enabled)
	assert.Equal(t, 2, cfg.Queue.Concurrency)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{name: "unknown session store", env: map[string]string{"SESSION_STORE": "file"}, wantErr: true},
		{name: "negative delivery", env: map[string]string{"SESSION_STORE": "memory", "STANDARD_DELIVERY_PERCENTAGE": "-1"}, wantErr: true},
		{name: "production default secret", env: map[string]string{"APP_ENV": "production", "SESSION_STORE": "redis", "JWT_SECRET": ""}, wantErr: true},
		{name: "production memory sessions", env: map[string]string{"APP_ENV": "production", "SESSION_STORE": "memory", "JWT_SECRET": "x"}, wantErr: true},
		{name: "production", env: map[string]string{"APP_ENV": "production", "SESSION_STORE": "redis", "JWT_SECRET": "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadDatabaseConfig_Driver(t *testing.T) {
	t.Setenv("DB_DRIVER", "memory")
	cfg, err := LoadDatabaseConfig()
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Driver)

	t.Setenv("DB_DRIVER", "sqlite")
	_, err = LoadDatabaseConfig()
	assert.Error(t, err)
}
