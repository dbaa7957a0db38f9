package domain

import (
	"errors"
	"fmt"
)

var (
	ErrCityNotFound          = errors.New("city not found")
	ErrForecastUnavailable   = errors.New("forecast unavailable")
	ErrAirQualityUnavailable = errors.New("air quality unavailable")
	ErrUpstreamUnavailable   = errors.New("weather provider unavailable")
)

// RequestError marks a caller mistake, such as a missing or malformed parameter.
type RequestError struct {
	Msg string
}

func (e *RequestError) Error() string { return e.Msg }

// NewRequestError formats a RequestError.
func NewRequestError(format string, args ...any) error {
	return &RequestError{Msg: fmt.Sprintf(format, args...)}
}
