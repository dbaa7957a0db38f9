package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/weatherdash/backend/internal/domain"
)

func ptr(f float64) *float64 { return &f }

func TestRecommendOutfit(t *testing.T) {
	tests := []struct {
		name        string
		weather     domain.CurrentWeather
		uv          string
		units       domain.Units
		clothing    []string
		accessories []string
		notes       []string
	}{
		{
			name:        "freezing",
			weather:     domain.CurrentWeather{Temperature: -4, Condition: "clear sky"},
			uv:          "Low",
			units:       domain.Metric,
			clothing:    []string{"Heavy winter coat"},
			accessories: []string{"Gloves, scarf, warm hat"},
			notes:       []string{"Very cold weather."},
		},
		{
			name:        "zero is still freezing",
			weather:     domain.CurrentWeather{Temperature: 0},
			uv:          "Low",
			units:       domain.Metric,
			clothing:    []string{"Heavy winter coat"},
			accessories: []string{"Gloves, scarf, warm hat"},
			notes:       []string{"Very cold weather."},
		},
		{
			name:        "cool with rain",
			weather:     domain.CurrentWeather{Temperature: 8, Rain1h: ptr(0.5)},
			uv:          "Low",
			units:       domain.Metric,
			clothing:    []string{"Coat or thick jacket"},
			accessories: []string{"Umbrella"},
			notes:       []string{"Cool temperatures.", "Rain expected."},
		},
		{
			name:        "mild has no temperature note",
			weather:     domain.CurrentWeather{Temperature: 20},
			uv:          "Moderate",
			units:       domain.Metric,
			clothing:    []string{"Light jacket or sweater"},
			accessories: []string{},
			notes:       []string{},
		},
		{
			name:        "warm and sunny",
			weather:     domain.CurrentWeather{Temperature: 27},
			uv:          "Very High",
			units:       domain.Metric,
			clothing:    []string{"Light clothing"},
			accessories: []string{"Sunscreen"},
			notes:       []string{"Warm temperatures.", "UV levels are very high."},
		},
		{
			name:        "imperial converted before thresholds",
			weather:     domain.CurrentWeather{Temperature: 50, Snow3h: ptr(1.2)},
			uv:          "Extreme",
			units:       domain.Imperial,
			clothing:    []string{"Coat or thick jacket", "Snow boots"},
			accessories: []string{"Sunscreen"},
			notes:       []string{"Cool temperatures.", "Snowy conditions.", "UV levels are extreme."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := RecommendOutfit("paris", tt.weather, tt.uv, tt.units)
			assert.Equal(t, tt.clothing, o.Clothing)
			assert.Equal(t, tt.accessories, o.Accessories)
			assert.Equal(t, tt.notes, o.Notes)
			assert.Equal(t, tt.uv, o.UVCategory)
		})
	}
}

func TestRecommendOutfit_Summary(t *testing.T) {
	w := domain.CurrentWeather{City: "Paris", Temperature: 18.04, Condition: "broken clouds", Rain1h: ptr(0.333), Snow1h: ptr(0.001)}

	o := RecommendOutfit("paris", w, "Low", domain.Metric)
	assert.Equal(t, "paris", o.City)
	assert.Equal(t, "In paris, it's 18.0°C with broken clouds.", o.Summary)
	assert.Equal(t, 0.33, o.PrecipMM)

	o = RecommendOutfit("Austin", domain.CurrentWeather{Temperature: 91.26, Condition: "clear sky"}, "High", domain.Imperial)
	assert.Equal(t, "In Austin, it's 91.3°F with clear sky.", o.Summary)
}

func TestUVCategory(t *testing.T) {
	cases := map[float64]string{
		0: "Low", 2.99: "Low", 3: "Moderate", 5.9: "Moderate", 6: "High",
		7.99: "High", 8: "Very High", 10.9: "Very High", 11: "Extreme", 14: "Extreme",
	}
	for uvi, want := range cases {
		assert.Equal(t, want, UVCategory(uvi), "uvi %v", uvi)
	}
}

func TestAQICategory(t *testing.T) {
	assert.Equal(t, "Good", AQICategory(1))
	assert.Equal(t, "Fair", AQICategory(2))
	assert.Equal(t, "Moderate", AQICategory(3))
	assert.Equal(t, "Poor", AQICategory(4))
	assert.Equal(t, "Very Poor", AQICategory(5))
	assert.Equal(t, "Unknown", AQICategory(0))
	assert.Equal(t, "Unknown", AQICategory(6))
}
