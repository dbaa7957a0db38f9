package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "key-123")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "key-123", cfg.Upstream.APIKey)
	assert.Equal(t, "https://api.openweathermap.org", cfg.Upstream.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, uint32(5), cfg.Upstream.BreakerMaxFailures)
	assert.Equal(t, 30*time.Second, cfg.Upstream.BreakerOpenTimeout)
	assert.True(t, cfg.Redis.CacheEnabled)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, 10, cfg.Limits.CompareMaxCities)
	assert.Equal(t, 0, cfg.Limits.RateLimitRPS)
	assert.Equal(t, "*", cfg.CORSOrigins)
	assert.False(t, cfg.OTelEnabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("WEATHER_API_KEY", "legacy-key")
	t.Setenv("PORT", "9090")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("BREAKER_MAX_FAILURES", "2")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("RATE_LIMIT_RPS", "20")
	t.Setenv("OTEL_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "legacy-key", cfg.Upstream.APIKey)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, uint32(2), cfg.Upstream.BreakerMaxFailures)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.False(t, cfg.Redis.CacheEnabled)
	assert.Equal(t, 20, cfg.Limits.RateLimitRPS)
	assert.True(t, cfg.OTelEnabled)
}

func TestLoad_PrefersOpenWeatherKey(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "primary")
	t.Setenv("WEATHER_API_KEY", "legacy")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "primary", cfg.Upstream.APIKey)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "")
	t.Setenv("WEATHER_API_KEY", "")

	cfg, err := Load()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLoad_BreakerFailuresFloor(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "k")
	t.Setenv("BREAKER_MAX_FAILURES", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, uint32(1), cfg.Upstream.BreakerMaxFailures)
}
