package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, 8, cfg.BatchWorkers)
	assert.Equal(t, 30, cfg.CacheTTLSeconds)
	assert.Equal(t, 7, cfg.DefaultForecastDays)
	assert.Equal(t, "INFO", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("BATCH_WORKERS", "16")
	t.Setenv("DEFAULT_FORECAST_DAYS", "14")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, 16, cfg.BatchWorkers)
	assert.Equal(t, 14, cfg.DefaultForecastDays)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero workers", Config{ServerPort: 8080, BatchWorkers: 0, CacheTTLSeconds: 30, DefaultForecastDays: 7}},
		{"negative cache ttl", Config{ServerPort: 8080, BatchWorkers: 8, CacheTTLSeconds: -1, DefaultForecastDays: 7}},
		{"horizon too long", Config{ServerPort: 8080, BatchWorkers: 8, CacheTTLSeconds: 30, DefaultForecastDays: 60}},
		{"bad port", Config{ServerPort: 0, BatchWorkers: 8, CacheTTLSeconds: 30, DefaultForecastDays: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cfg.Validate())
		})
	}
}
