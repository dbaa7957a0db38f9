package http

import (
	"context"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/weatherdash/backend/internal/domain"
	"github.com/weatherdash/backend/internal/service"
)

const (
	serviceName    = "weatherdash-backend"
	serviceVersion = "1.0.0"
)

// WeatherAPI is the read-through provider surface used by the handlers.
type WeatherAPI interface {
	Forecast(ctx context.Context, city string, units domain.Units) (domain.Forecast, error)
	Hourly(ctx context.Context, city string, units domain.Units, hours int) (domain.Hourly, error)
	Coords(ctx context.Context, city string) (domain.Location, error)
	UV(ctx context.Context, city string, units domain.Units) (domain.UVReport, error)
	AirQuality(ctx context.Context, city string) (domain.AirQuality, error)
	Alerts(ctx context.Context, city string, units domain.Units) (domain.Alerts, error)
	ReverseGeocode(ctx context.Context, lat, lon float64) domain.Place
}

// DashboardAPI covers the composed endpoints.
type DashboardAPI interface {
	Weather(ctx context.Context, city string, units domain.Units) (domain.CurrentWeather, error)
	Outfit(ctx context.Context, city string, units domain.Units) (domain.Outfit, error)
	Compare(ctx context.Context, cities []string, units domain.Units) (domain.Comparison, error)
	History(ctx context.Context, city string, hours int) (domain.History, error)
}

// HealthCheck probes one dependency.
type HealthCheck func(ctx context.Context) error

// Handler contains all HTTP handlers
type Handler struct {
	weather   WeatherAPI
	dashboard DashboardAPI
	checks    map[string]HealthCheck
}

// NewHandler creates a new handler. checks lists the configured dependencies
// reported by /health.
func NewHandler(weather WeatherAPI, dashboard DashboardAPI, checks map[string]HealthCheck) *Handler {
	return &Handler{
		weather:   weather,
		dashboard: dashboard,
		checks:    checks,
	}
}

func cityParam(c *fiber.Ctx) (string, error) {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		return "", domain.NewRequestError("city is required")
	}
	return city, nil
}

func unitsParam(c *fiber.Ctx) domain.Units {
	return domain.ParseUnits(c.Query("units"))
}

func coordParam(c *fiber.Ctx, name string, limit float64) (float64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, domain.NewRequestError("%s is required", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < -limit || v > limit {
		return 0, domain.NewRequestError("%s must be a number between %g and %g", name, -limit, limit)
	}
	return v, nil
}

// Health reports service health and the state of configured dependencies
// @Summary Service health
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *Handler) Health(c *fiber.Ctx) error {
	resp := HealthResponse{
		Status:  "ok",
		Service: serviceName,
		Version: serviceVersion,
		Checks:  make(map[string]string, len(h.checks)),
	}

	for name, check := range h.checks {
		if err := check(c.UserContext()); err != nil {
			resp.Checks[name] = "unavailable"
			resp.Status = "degraded"
			continue
		}
		resp.Checks[name] = "ok"
	}

	status := fiber.StatusOK
	if resp.Status != "ok" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(resp)
}

// HealthResponse is the /health body.
type HealthResponse struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks"`
}

// Liveness answers as long as the process serves requests.
func (h *Handler) Liveness(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}

// GetWeather returns current conditions for a city
// @Summary Current weather
// @Tags Weather
// @Produce json
// @Param city query string true "City name"
// @Param units query string false "metric (default) or imperial"
// @Success 200 {object} domain.CurrentWeather
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /weather [get]
func (h *Handler) GetWeather(c *fiber.Ctx) error {
	city, err := cityParam(c)
	if err != nil {
		return err
	}

	w, err := h.dashboard.Weather(c.UserContext(), city, unitsParam(c))
	if err != nil {
		return err
	}
	return c.JSON(w)
}

// GetForecast returns a daily forecast for up to five days
// @Summary Five day forecast
// @Tags Weather
// @Produce json
// @Param city query string true "City name"
// @Param units query string false "metric (default) or imperial"
// @Success 200 {object} domain.Forecast
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /forecast [get]
func (h *Handler) GetForecast(c *fiber.Ctx) error {
	city, err := cityParam(c)
	if err != nil {
		return err
	}

	fc, err := h.weather.Forecast(c.UserContext(), city, unitsParam(c))
	if err != nil {
		return err
	}
	return c.JSON(fc)
}

// GetHourly returns the 3-hour timeline
// @Summary Hourly timeline
// @Tags Weather
// @Produce json
// @Param city query string true "City name"
// @Param units query string false "metric (default) or imperial"
// @Param hours query int false "Hours ahead, 1-120" default(12)
// @Success 200 {object} domain.Hourly
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /hourly [get]
func (h *Handler) GetHourly(c *fiber.Ctx) error {
	city, err := cityParam(c)
	if err != nil {
		return err
	}

	hourly, err := h.weather.Hourly(c.UserContext(), city, unitsParam(c), c.QueryInt("hours", 12))
	if err != nil {
		return err
	}
	return c.JSON(hourly)
}

// GetCoords geocodes a city
// @Summary City coordinates
// @Tags Geo
// @Produce json
// @Param city query string true "City name"
// @Success 200 {object} domain.Location
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /coords [get]
func (h *Handler) GetCoords(c *fiber.Ctx) error {
	city, err := cityParam(c)
	if err != nil {
		return err
	}

	loc, err := h.weather.Coords(c.UserContext(), city)
	if err != nil {
		return err
	}
	return c.JSON(loc)
}

// GetUV returns the current UV index
// @Summary UV index
// @Tags Weather
// @Produce json
// @Param city query string true "City name"
// @Param units query string false "metric (default) or imperial"
// @Success 200 {object} domain.UVReport
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /uv [get]
func (h *Handler) GetUV(c *fiber.Ctx) error {
	city, err := cityParam(c)
	if err != nil {
		return err
	}

	uv, err := h.weather.UV(c.UserContext(), city, unitsParam(c))
	if err != nil {
		return err
	}
	return c.JSON(uv)
}

// GetAQI returns the air quality index
// @Summary Air quality
// @Tags Weather
// @Produce json
// @Param city query string true "City name"
// @Success 200 {object} domain.AirQuality
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /aqi [get]
func (h *Handler) GetAQI(c *fiber.Ctx) error {
	city, err := cityParam(c)
	if err != nil {
		return err
	}

	aq, err := h.weather.AirQuality(c.UserContext(), city)
	if err != nil {
		return err
	}
	return c.JSON(aq)
}

// GetAlerts returns active weather alerts
// @Summary Weather alerts
// @Tags Weather
// @Produce json
// @Param city query string true "City name"
// @Param units query string false "metric (default) or imperial"
// @Success 200 {object} domain.Alerts
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /alerts [get]
func (h *Handler) GetAlerts(c *fiber.Ctx) error {
	city, err := cityParam(c)
	if err != nil {
		return err
	}

	alerts, err := h.weather.Alerts(c.UserContext(), city, unitsParam(c))
	if err != nil {
		return err
	}
	return c.JSON(alerts)
}

// GetOutfit recommends clothing for the current weather
// @Summary Outfit recommendation
// @Tags Dashboard
// @Produce json
// @Param city query string true "City name"
// @Param units query string false "metric (default) or imperial"
// @Success 200 {object} domain.Outfit
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /outfit [get]
func (h *Handler) GetOutfit(c *fiber.Ctx) error {
	city, err := cityParam(c)
	if err != nil {
		return err
	}

	outfit, err := h.dashboard.Outfit(c.UserContext(), city, unitsParam(c))
	if err != nil {
		return err
	}
	return c.JSON(outfit)
}

// GetCompare compares several cities side by side
// @Summary Compare cities
// @Tags Dashboard
// @Produce json
// @Param cities query string true "Comma separated city names"
// @Param units query string false "metric (default) or imperial"
// @Success 200 {object} domain.Comparison
// @Failure 400 {object} ErrorResponse
// @Router /compare [get]
func (h *Handler) GetCompare(c *fiber.Ctx) error {
	cities := service.ParseCityList(c.Query("cities"))

	cmp, err := h.dashboard.Compare(c.UserContext(), cities, unitsParam(c))
	if err != nil {
		return err
	}
	return c.JSON(cmp)
}

// GetReverseGeocode names the place at the given coordinates
// @Summary Reverse geocode
// @Tags Geo
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} domain.Place
// @Failure 400 {object} ErrorResponse
// @Router /reverse_geocode [get]
func (h *Handler) GetReverseGeocode(c *fiber.Ctx) error {
	lat, err := coordParam(c, "lat", 90)
	if err != nil {
		return err
	}
	lon, err := coordParam(c, "lon", 180)
	if err != nil {
		return err
	}

	return c.JSON(h.weather.ReverseGeocode(c.UserContext(), lat, lon))
}

// GetHistory returns recorded observations
// @Summary Observation history
// @Tags Dashboard
// @Produce json
// @Param city query string false "Filter by city"
// @Param hours query int false "Look-back window, 1-720" default(24)
// @Success 200 {object} domain.History
// @Failure 500 {object} ErrorResponse
// @Router /history [get]
func (h *Handler) GetHistory(c *fiber.Ctx) error {
	city := strings.TrimSpace(c.Query("city"))

	history, err := h.dashboard.History(c.UserContext(), city, c.QueryInt("hours", 24))
	if err != nil {
		return err
	}
	return c.JSON(history)
}
