package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/weatherdash/backend/internal/cache"
	"github.com/weatherdash/backend/internal/config"
	"github.com/weatherdash/backend/internal/domain"
	"github.com/weatherdash/backend/internal/metrics"
)

// maxBodyBytes caps how much of an upstream body is read.
const maxBodyBytes = 4 << 20

// Call describes one OpenWeatherMap endpoint and how long its successful
// responses may be cached.
type Call struct {
	Name string
	Path string
	TTL  time.Duration
}

var (
	CallGeocode        = Call{Name: "geocode", Path: "/geo/1.0/direct", TTL: 24 * time.Hour}
	CallReverseGeocode = Call{Name: "reverse_geocode", Path: "/geo/1.0/reverse", TTL: 24 * time.Hour}
	CallCurrent        = Call{Name: "weather", Path: "/data/2.5/weather", TTL: 5 * time.Minute}
	CallForecast       = Call{Name: "forecast", Path: "/data/2.5/forecast", TTL: 15 * time.Minute}
	CallOneCall        = Call{Name: "onecall", Path: "/data/2.5/onecall", TTL: 10 * time.Minute}
	CallAirPollution   = Call{Name: "air_pollution", Path: "/data/2.5/air_pollution", TTL: 10 * time.Minute}
)

// UpstreamResponse is a raw provider response.
type UpstreamResponse struct {
	StatusCode int
	Body       []byte
	Cached     bool
}

// OK reports a 200 response.
func (r *UpstreamResponse) OK() bool {
	return r.StatusCode == http.StatusOK
}

var (
	// errServerStatus marks 5xx responses so the breaker counts them as failures.
	errServerStatus = errors.New("upstream server error")
	// errCallerGone marks requests whose caller cancelled or timed out. The
	// breaker does not count them.
	errCallerGone = errors.New("request abandoned by caller")
)

func breakerSuccess(err error) bool {
	return err == nil || errors.Is(err, errCallerGone)
}

// OpenWeatherClient performs OpenWeatherMap requests behind a circuit breaker
// and an optional response cache.
type OpenWeatherClient struct {
	baseURL      string
	apiKey       string
	httpClient   *http.Client
	breaker      *gobreaker.CircuitBreaker
	cache        cache.Cache
	cacheEnabled bool
	log          *logrus.Logger
}

// NewOpenWeatherClient creates a new upstream client. A nil cache disables caching.
func NewOpenWeatherClient(cfg config.Upstream, c cache.Cache, log *logrus.Logger) *OpenWeatherClient {
	if c == nil {
		c = cache.NoopCache{}
	}
	_, noop := c.(cache.NoopCache)

	maxFailures := cfg.BreakerMaxFailures
	settings := gobreaker.Settings{
		Name:        "openweathermap",
		MaxRequests: 1,
		Timeout:     cfg.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: breakerSuccess,
		OnStateChange: func(name string, from, to gobreaker.State) {
			open := 0.0
			if to == gobreaker.StateOpen {
				open = 1
			}
			metrics.BreakerState.WithLabelValues(name).Set(open)
			log.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("upstream circuit breaker state changed")
		},
	}

	return &OpenWeatherClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		breaker:      gobreaker.NewCircuitBreaker(settings),
		cache:        c,
		cacheEnabled: !noop,
		log:          log,
	}
}

// CacheKey identifies a request independently of the API key.
func CacheKey(call Call, params url.Values) string {
	return call.Name + ":" + params.Encode()
}

// Get performs the call. Any HTTP status is returned as a response; transport
// failures, 5xx and an open breaker yield ErrUpstreamUnavailable.
func (c *OpenWeatherClient) Get(ctx context.Context, call Call, params url.Values) (*UpstreamResponse, error) {
	key := CacheKey(call, params)
	if body, ok := c.fromCache(ctx, key); ok {
		resp := &UpstreamResponse{StatusCode: http.StatusOK, Body: body, Cached: true}
		c.logResponse(call, resp)
		return resp, nil
	}

	start := time.Now()
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.do(ctx, call, params)
	})
	metrics.UpstreamLatency.WithLabelValues(call.Name).Observe(time.Since(start).Seconds())

	if err != nil {
		status := "error"
		resp, _ := result.(*UpstreamResponse)
		switch {
		case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
			status = "breaker_open"
		case errors.Is(err, errCallerGone):
			status = "canceled"
		case resp != nil:
			status = strconv.Itoa(resp.StatusCode)
		}
		metrics.UpstreamRequests.WithLabelValues(call.Name, status).Inc()
		c.log.WithFields(logrus.Fields{
			"endpoint": call.Name,
			"status":   status,
		}).WithError(err).Warn("upstream request failed")
		return nil, fmt.Errorf("%s: %w: %v", call.Name, domain.ErrUpstreamUnavailable, err)
	}

	resp := result.(*UpstreamResponse)
	metrics.UpstreamRequests.WithLabelValues(call.Name, strconv.Itoa(resp.StatusCode)).Inc()
	c.logResponse(call, resp)

	if resp.OK() {
		c.toCache(ctx, key, resp.Body, call.TTL)
	}
	return resp, nil
}

func (c *OpenWeatherClient) do(ctx context.Context, call Call, params url.Values) (*UpstreamResponse, error) {
	q := make(url.Values, len(params)+1)
	for k, v := range params {
		q[k] = v
	}
	q.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+call.Path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("send request: %w: %v", errCallerGone, ctx.Err())
		}
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("read body: %w: %v", errCallerGone, ctx.Err())
		}
		return nil, fmt.Errorf("read body: %w", err)
	}

	out := &UpstreamResponse{StatusCode: resp.StatusCode, Body: body}
	if resp.StatusCode >= http.StatusInternalServerError {
		return out, fmt.Errorf("%w: status %d", errServerStatus, resp.StatusCode)
	}
	return out, nil
}

func (c *OpenWeatherClient) logResponse(call Call, resp *UpstreamResponse) {
	c.log.WithFields(logrus.Fields{
		"endpoint": call.Name,
		"status":   resp.StatusCode,
		"cached":   resp.Cached,
	}).Debug("upstream response")
}

func (c *OpenWeatherClient) fromCache(ctx context.Context, key string) ([]byte, bool) {
	if !c.cacheEnabled {
		return nil, false
	}
	val, ok, err := c.cache.Get(ctx, key)
	switch {
	case err != nil:
		metrics.CacheResults.WithLabelValues("error").Inc()
		c.log.WithField("key", key).WithError(err).Warn("cache lookup failed")
		return nil, false
	case !ok:
		metrics.CacheResults.WithLabelValues("miss").Inc()
		return nil, false
	default:
		metrics.CacheResults.WithLabelValues("hit").Inc()
		return []byte(val), true
	}
}

func (c *OpenWeatherClient) toCache(ctx context.Context, key string, body []byte, ttl time.Duration) {
	if !c.cacheEnabled || ttl <= 0 {
		return
	}
	if err := c.cache.Set(ctx, key, string(body), ttl); err != nil {
		c.log.WithField("key", key).WithError(err).Warn("cache write failed")
	}
}

// Health reports whether the breaker currently lets requests through.
func (c *OpenWeatherClient) Health(ctx context.Context) error {
	if c.breaker.State() == gobreaker.StateOpen {
		return fmt.Errorf("openweathermap: %w: circuit open", domain.ErrUpstreamUnavailable)
	}
	return nil
}
