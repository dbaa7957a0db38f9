package http

import (
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all HTTP routes. API routes are served at the root,
// where the dashboard frontend expects them, and mirrored under /api/v1.
func SetupRoutes(app *fiber.App, h *Handler) {
	// Health check
	app.Get("/health", h.Health)
	app.Get("/healthz", h.Liveness)

	registerAPI(app, h)
	registerAPI(app.Group("/api/v1"), h)
}

func registerAPI(r fiber.Router, h *Handler) {
	r.Get("/weather", h.GetWeather)
	r.Get("/forecast", h.GetForecast)
	r.Get("/hourly", h.GetHourly)
	r.Get("/coords", h.GetCoords)
	r.Get("/uv", h.GetUV)
	r.Get("/aqi", h.GetAQI)
	r.Get("/alerts", h.GetAlerts)
	r.Get("/outfit", h.GetOutfit)
	r.Get("/compare", h.GetCompare)
	r.Get("/reverse_geocode", h.GetReverseGeocode)
	r.Get("/history", h.GetHistory)
}
