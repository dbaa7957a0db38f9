package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/weatherdash/backend/internal/delivery/http/middleware"
	"github.com/weatherdash/backend/internal/domain"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error     bool   `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// statusFor maps an error to the HTTP status and the message shown to clients.
// Internal details never reach the response body.
func statusFor(err error) (int, string) {
	var (
		fe     *fiber.Error
		reqErr *domain.RequestError
	)
	switch {
	case errors.As(err, &fe):
		return fe.Code, fe.Message
	case errors.As(err, &reqErr):
		return fiber.StatusBadRequest, reqErr.Msg
	case errors.Is(err, domain.ErrCityNotFound):
		return fiber.StatusNotFound, "City not found"
	case errors.Is(err, domain.ErrForecastUnavailable):
		return fiber.StatusInternalServerError, "Forecast unavailable"
	case errors.Is(err, domain.ErrAirQualityUnavailable):
		return fiber.StatusBadGateway, "Air quality unavailable"
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return fiber.StatusBadGateway, "Weather provider unavailable"
	default:
		return fiber.StatusInternalServerError, "Internal Server Error"
	}
}

// ErrorHandler is the app-wide fiber error handler.
func ErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code, message := statusFor(err)
		rid := middleware.GetRequestID(c)

		if code >= fiber.StatusInternalServerError {
			log.WithFields(logrus.Fields{
				"request_id": rid,
				"path":       c.Path(),
				"status":     code,
			}).WithError(err).Error("request failed")
		}

		return c.Status(code).JSON(ErrorResponse{
			Error:     true,
			Message:   message,
			RequestID: rid,
		})
	}
}
