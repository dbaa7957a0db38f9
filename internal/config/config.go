package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned when no OpenWeatherMap key is configured.
var ErrMissingAPIKey = errors.New("config: OPENWEATHER_API_KEY (or WEATHER_API_KEY) is required")

// Config holds all runtime settings. Values come from the environment;
// a .env file is loaded by cmd/server before Load is called.
type Config struct {
	Port        string
	Env         string
	DatabaseURL string
	CORSOrigins string
	LogLevel    string
	LogFormat   string
	OTelEnabled bool

	Upstream Upstream
	Redis    Redis
	Limits   Limits
}

// Upstream configures the OpenWeatherMap client.
type Upstream struct {
	BaseURL            string
	APIKey             string
	Timeout            time.Duration
	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration
}

// Redis configures the response cache and the rate limiter store.
// An empty Addr disables both.
type Redis struct {
	Addr         string
	Password     string
	DB           int
	CacheEnabled bool
}

// Limits bounds request fan-out and per-client request rates.
type Limits struct {
	RateLimitRPS     int
	CompareMaxCities int
}

func defaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("GO_ENV", "development")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("OTEL_ENABLED", false)

	v.SetDefault("OPENWEATHER_BASE_URL", "https://api.openweathermap.org")
	v.SetDefault("UPSTREAM_TIMEOUT", 10*time.Second)
	v.SetDefault("BREAKER_MAX_FAILURES", 5)
	v.SetDefault("BREAKER_OPEN_TIMEOUT", 30*time.Second)

	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_ENABLED", true)

	v.SetDefault("RATE_LIMIT_RPS", 0)
	v.SetDefault("COMPARE_MAX_CITIES", 10)
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	defaults(v)

	apiKey := v.GetString("OPENWEATHER_API_KEY")
	if apiKey == "" {
		apiKey = v.GetString("WEATHER_API_KEY")
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	maxFailures := v.GetInt("BREAKER_MAX_FAILURES")
	if maxFailures < 1 {
		maxFailures = 1
	}

	return &Config{
		Port:        v.GetString("PORT"),
		Env:         v.GetString("GO_ENV"),
		DatabaseURL: v.GetString("DATABASE_URL"),
		CORSOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		LogFormat:   v.GetString("LOG_FORMAT"),
		OTelEnabled: v.GetBool("OTEL_ENABLED"),
		Upstream: Upstream{
			BaseURL:            v.GetString("OPENWEATHER_BASE_URL"),
			APIKey:             apiKey,
			Timeout:            v.GetDuration("UPSTREAM_TIMEOUT"),
			BreakerMaxFailures: uint32(maxFailures),
			BreakerOpenTimeout: v.GetDuration("BREAKER_OPEN_TIMEOUT"),
		},
		Redis: Redis{
			Addr:         v.GetString("REDIS_ADDR"),
			Password:     v.GetString("REDIS_PASSWORD"),
			DB:           v.GetInt("REDIS_DB"),
			CacheEnabled: v.GetBool("CACHE_ENABLED"),
		},
		Limits: Limits{
			RateLimitRPS:     v.GetInt("RATE_LIMIT_RPS"),
			CompareMaxCities: v.GetInt("COMPARE_MAX_CITIES"),
		},
	}, nil
}
