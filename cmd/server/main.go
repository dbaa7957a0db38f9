package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/weatherdash/backend/docs"
	"github.com/weatherdash/backend/internal/cache"
	"github.com/weatherdash/backend/internal/config"
	delivery "github.com/weatherdash/backend/internal/delivery/http"
	"github.com/weatherdash/backend/internal/delivery/http/middleware"
	"github.com/weatherdash/backend/internal/logger"
	"github.com/weatherdash/backend/internal/metrics"
	"github.com/weatherdash/backend/internal/repository/postgres"
	"github.com/weatherdash/backend/internal/service"
	"github.com/weatherdash/backend/internal/tracing"
)

// @title WeatherDash API
// @version 1.0
// @description OpenWeatherMap proxy for the weather dashboard.
// @BasePath /
func main() {
	// Load environment variables
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	if envErr != nil {
		log.Debug("no .env file found, using system environment")
	}

	shutdownTracing, err := tracing.Init(context.Background(), cfg.OTelEnabled, log)
	if err != nil {
		log.WithError(err).Fatal("failed to initialise tracing")
	}

	checks := map[string]delivery.HealthCheck{}

	// Database connection
	pool := connectDatabase(cfg.DatabaseURL, log)

	// Dependency Injection: Repositories
	var repo service.ObservationRepository
	if pool != nil {
		pgRepo := postgres.NewPostgresRepository(pool)
		migrateCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := pgRepo.Migrate(migrateCtx); err != nil {
			log.WithError(err).Fatal("database migration failed")
		}
		cancel()
		repo = pgRepo
	} else {
		repo = postgres.NewMemoryRepository()
	}
	checks["database"] = repo.Health

	// Redis backs both the response cache and the rate limiter
	var (
		rdb           *redis.Client
		responseCache cache.Cache = cache.NoopCache{}
	)
	if cfg.Redis.Addr != "" {
		rdb, err = cache.NewRedisClient(cfg.Redis)
		if err != nil {
			log.WithError(err).Warn("redis unavailable, running without cache and rate limiting")
		} else {
			log.WithField("addr", cfg.Redis.Addr).Info("connected to redis")
			rc := cache.NewRedisCache(rdb)
			checks["cache"] = rc.Ping
			if cfg.Redis.CacheEnabled {
				responseCache = rc
			}
		}
	}

	// Dependency Injection: Services
	client := service.NewOpenWeatherClient(cfg.Upstream, responseCache, log)
	checks["upstream"] = client.Health
	weatherSvc := service.NewWeatherService(client)
	dashboardSvc := service.NewDashboardService(weatherSvc, repo, log, cfg.Limits.CompareMaxCities)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:               "WeatherDash API v1.0",
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
		ErrorHandler:          delivery.ErrorHandler(log),
		DisableStartupMessage: cfg.Env == "production",
	})

	promMiddleware, err := middleware.NewPrometheusMiddleware(metrics.Registry)
	if err != nil {
		log.WithError(err).Fatal("failed to register http metrics")
	}

	// Middleware
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	if cfg.OTelEnabled {
		app.Use(otelfiber.Middleware())
	}
	app.Use(middleware.Logger(log))
	app.Use(promMiddleware.Handler())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORSOrigins,
		AllowMethods:  "GET,OPTIONS",
		AllowHeaders:  "Origin,Content-Type,Accept," + middleware.RequestIDHeader,
		ExposeHeaders: middleware.RequestIDHeader,
	}))
	if rdb != nil && cfg.Limits.RateLimitRPS > 0 {
		app.Use(middleware.RateLimit(rdb, middleware.RateLimitConfig{
			Limit: cfg.Limits.RateLimitRPS,
			Log:   log,
		}))
	}

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}
		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}
		return swagger.HandlerDefault(c)
	})

	// Routes
	delivery.SetupRoutes(app, delivery.NewHandler(weatherSvc, dashboardSvc, checks))

	// Graceful shutdown
	go func() {
		log.WithFields(logrus.Fields{"port": cfg.Port, "env": cfg.Env}).Info("server starting")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.WithError(err).Fatal("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.WithError(err).Warn("server forced to shutdown")
	}

	// Flush pending observation writes before closing the pool
	dashboardSvc.WaitBackground()

	if pool != nil {
		pool.Close()
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.WithError(err).Warn("failed to close redis client")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(ctx); err != nil {
		log.WithError(err).Warn("failed to flush traces")
	}
	log.Info("server exited gracefully")
}

// connectDatabase returns nil when no DSN is configured or the database is
// unreachable; observations then stay in memory.
func connectDatabase(dsn string, log *logrus.Logger) *pgxpool.Pool {
	if dsn == "" {
		log.Info("DATABASE_URL not set, keeping observations in memory")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err == nil {
		err = pool.Ping(ctx)
	}
	if err != nil {
		log.WithError(err).Warn("could not connect to database, keeping observations in memory")
		if pool != nil {
			pool.Close()
		}
		return nil
	}

	log.Info("connected to PostgreSQL")
	return pool
}
