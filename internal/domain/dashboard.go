package domain

// Outfit is a clothing recommendation derived from current weather and UV.
type Outfit struct {
	City        string   `json:"city"`
	Temperature float64  `json:"temperature"`
	Condition   string   `json:"condition"`
	PrecipMM    float64  `json:"precip_mm"`
	UVCategory  string   `json:"uv_category"`
	Summary     string   `json:"summary"`
	Clothing    []string `json:"clothing"`
	Accessories []string `json:"accessories"`
	Notes       []string `json:"notes"`
}

// CityComparison is one row of a multi-city comparison.
type CityComparison struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	AQI         int     `json:"aqi"`
	AQICategory string  `json:"aqi_category"`
}

// Comparison is the multi-city response. Cities is never nil.
type Comparison struct {
	Cities []CityComparison `json:"cities"`
}
