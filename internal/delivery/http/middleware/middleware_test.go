package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString(GetRequestID(c))
	})

	t.Run("generates an id when missing", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
		require.NoError(t, err)

		rid := resp.Header.Get(RequestIDHeader)
		assert.NotEmpty(t, rid)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, rid, string(body))
	})

	t.Run("preserves an incoming id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, "abc-123", resp.Header.Get(RequestIDHeader))
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "abc-123", string(body))
	})
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})

	app := fiber.New()
	app.Use(RequestID())
	app.Use(Logger(log))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/bad", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusBadRequest, "nope") })

	req := httptest.NewRequest("GET", "/ok", nil)
	req.Header.Set(RequestIDHeader, "rid-1")
	_, err := app.Test(req)
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "rid-1", line["request_id"])
	assert.Equal(t, "GET", line["method"])
	assert.Equal(t, "/ok", line["path"])
	assert.Equal(t, float64(200), line["status"])
	assert.Equal(t, "info", line["level"])
	assert.Contains(t, line, "latency_ms")
	assert.Contains(t, line, "ip")

	buf.Reset()
	resp, err := app.Test(httptest.NewRequest("GET", "/bad", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, float64(400), line["status"])
	assert.Equal(t, "warning", line["level"])
}

func TestPrometheusMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	pm, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(pm.Handler())
	app.Get("/weather", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/error", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusBadGateway, "down") })
	app.Get("/plain", func(c *fiber.Ctx) error { return errors.New("boom") })
	app.Get("/metrics", func(c *fiber.Ctx) error { return c.SendString("metrics") })

	for _, path := range []string{"/weather", "/weather", "/error", "/plain", "/metrics"} {
		_, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(pm.requestCount.WithLabelValues("GET", "/weather", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pm.requestCount.WithLabelValues("GET", "/error", "502")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pm.requestCount.WithLabelValues("GET", "/plain", "500")))
	assert.Equal(t, 0.0, testutil.ToFloat64(pm.requestCount.WithLabelValues("GET", "/metrics", "200")))
	assert.Equal(t, 3, testutil.CollectAndCount(pm.requestDuration))

	_, err = NewPrometheusMiddleware(reg)
	assert.Error(t, err, "duplicate registration must fail")
}

func newRateLimitedApp(t *testing.T, limit int) (*fiber.App, redismock.ClientMock) {
	t.Helper()
	rdb, mock := redismock.NewClientMock()

	log := logrus.New()
	log.SetOutput(io.Discard)

	app := fiber.New()
	app.Use(RateLimit(rdb, RateLimitConfig{
		Limit:   limit,
		KeyFunc: func(*fiber.Ctx) string { return "client" },
		Log:     log,
	}))
	app.Get("/weather", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app, mock
}

func TestRateLimit(t *testing.T) {
	key := rateLimitKeyPrefix + "client"

	t.Run("first request sets the window", func(t *testing.T) {
		app, mock := newRateLimitedApp(t, 2)
		mock.ExpectIncr(key).SetVal(1)
		mock.ExpectExpire(key, time.Second).SetVal(true)

		resp, err := app.Test(httptest.NewRequest("GET", "/weather", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "2", resp.Header.Get("X-RateLimit-Limit"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("over the limit is rejected", func(t *testing.T) {
		app, mock := newRateLimitedApp(t, 2)
		mock.ExpectIncr(key).SetVal(3)
		mock.ExpectTTL(key).SetVal(500 * time.Millisecond)

		resp, err := app.Test(httptest.NewRequest("GET", "/weather", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
		assert.Equal(t, "1", resp.Header.Get(fiber.HeaderRetryAfter))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lost expiry is restored on the next request", func(t *testing.T) {
		app, mock := newRateLimitedApp(t, 2)
		mock.ExpectIncr(key).SetVal(1)
		mock.ExpectExpire(key, time.Second).SetErr(errors.New("i/o timeout"))
		mock.ExpectIncr(key).SetVal(2)
		mock.ExpectTTL(key).SetVal(-1)
		mock.ExpectExpire(key, time.Second).SetVal(true)

		for i := 0; i < 2; i++ {
			resp, err := app.Test(httptest.NewRequest("GET", "/weather", nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("key with a live window is left alone", func(t *testing.T) {
		app, mock := newRateLimitedApp(t, 2)
		mock.ExpectIncr(key).SetVal(2)
		mock.ExpectTTL(key).SetVal(800 * time.Millisecond)

		resp, err := app.Test(httptest.NewRequest("GET", "/weather", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis failure lets the request through", func(t *testing.T) {
		app, mock := newRateLimitedApp(t, 2)
		mock.ExpectIncr(key).SetErr(errors.New("connection refused"))

		resp, err := app.Test(httptest.NewRequest("GET", "/weather", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
