package domain

import "time"

// Units selects the measurement system passed to the weather provider.
type Units string

const (
	Metric   Units = "metric"
	Imperial Units = "imperial"
)

// ParseUnits accepts "metric" or "imperial"; anything else is metric.
func ParseUnits(s string) Units {
	if Units(s) == Imperial {
		return Imperial
	}
	return Metric
}

// TemperatureSymbol is "F" for imperial, "C" otherwise.
func (u Units) TemperatureSymbol() string {
	if u == Imperial {
		return "F"
	}
	return "C"
}

// Location is a geocoded place.
type Location struct {
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// CurrentWeather is the reshaped current-conditions payload.
// Precipitation fields are nil when the provider omitted them.
type CurrentWeather struct {
	City        string   `json:"city"`
	Temperature float64  `json:"temperature"`
	FeelsLike   float64  `json:"feels_like"`
	TempMin     float64  `json:"temp_min"`
	TempMax     float64  `json:"temp_max"`
	Humidity    int      `json:"humidity"`
	WindSpeed   float64  `json:"wind_speed"`
	Sunrise     int64    `json:"sunrise"`
	Sunset      int64    `json:"sunset"`
	Condition   string   `json:"condition"`
	Icon        string   `json:"icon"`
	Rain1h      *float64 `json:"rain_1h"`
	Rain3h      *float64 `json:"rain_3h"`
	Snow1h      *float64 `json:"snow_1h"`
	Snow3h      *float64 `json:"snow_3h"`
}

// Rain sums the reported rain volumes, treating missing values as zero.
func (w CurrentWeather) Rain() float64 {
	return deref(w.Rain1h) + deref(w.Rain3h)
}

// Snow sums the reported snow volumes, treating missing values as zero.
func (w CurrentWeather) Snow() float64 {
	return deref(w.Snow1h) + deref(w.Snow3h)
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// DailyForecast aggregates the 3-hour forecast entries of one calendar day.
type DailyForecast struct {
	Date      string  `json:"date"`
	MinTemp   float64 `json:"min_temp"`
	MaxTemp   float64 `json:"max_temp"`
	Humidity  int     `json:"humidity"`
	Condition string  `json:"condition"`
	Icon      string  `json:"icon"`
	PrecipMM  float64 `json:"precip_mm"`
}

// Forecast is the multi-day forecast response.
type Forecast struct {
	City  string          `json:"city"`
	Daily []DailyForecast `json:"daily"`
}

// HourlyPoint is a single 3-hour forecast step.
type HourlyPoint struct {
	Time        string  `json:"time"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	Condition   string  `json:"condition"`
	Icon        string  `json:"icon"`
}

// Hourly is the short-range timeline response.
type Hourly struct {
	City     string        `json:"city"`
	Timeline []HourlyPoint `json:"timeline"`
}

// UVReport carries the UV index and its category.
type UVReport struct {
	City       string  `json:"city"`
	UVIndex    float64 `json:"uv_index"`
	UVCategory string  `json:"uv_category"`
}

// AirQuality carries the provider's 1-5 air quality index.
type AirQuality struct {
	City     string `json:"city"`
	AQI      int    `json:"aqi"`
	Category string `json:"category"`
}

// Alert is a government weather warning.
type Alert struct {
	Event       string `json:"event"`
	Description string `json:"description"`
	SenderName  string `json:"sender_name"`
}

// Alerts lists active warnings for a city. Alerts is never nil.
type Alerts struct {
	City   string  `json:"city"`
	Alerts []Alert `json:"alerts"`
}

// Place is the result of a reverse geocoding lookup.
type Place struct {
	City string `json:"city"`
}

// Observation is a persisted snapshot of a current-weather lookup.
type Observation struct {
	City        string    `json:"city"`
	Temperature float64   `json:"temperature"`
	FeelsLike   float64   `json:"feels_like"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	Condition   string    `json:"condition"`
	Icon        string    `json:"icon"`
	Units       Units     `json:"units"`
	ObservedAt  time.Time `json:"observed_at"`
}

// NewObservation captures w as observed at t.
func NewObservation(w CurrentWeather, units Units, t time.Time) Observation {
	return Observation{
		City:        w.City,
		Temperature: w.Temperature,
		FeelsLike:   w.FeelsLike,
		Humidity:    w.Humidity,
		WindSpeed:   w.WindSpeed,
		Condition:   w.Condition,
		Icon:        w.Icon,
		Units:       units,
		ObservedAt:  t,
	}
}

// History is the response for persisted observations.
type History struct {
	City  string        `json:"city,omitempty"`
	Count int           `json:"count"`
	Data  []Observation `json:"data"`
}
