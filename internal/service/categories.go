package service

// UVCategory buckets a UV index on the WHO scale.
func UVCategory(uvi float64) string {
	switch {
	case uvi < 3:
		return "Low"
	case uvi < 6:
		return "Moderate"
	case uvi < 8:
		return "High"
	case uvi < 11:
		return "Very High"
	default:
		return "Extreme"
	}
}

var aqiCategories = map[int]string{
	1: "Good",
	2: "Fair",
	3: "Moderate",
	4: "Poor",
	5: "Very Poor",
}

// AQICategory names an OpenWeatherMap air quality index (1-5).
func AQICategory(aqi int) string {
	if c, ok := aqiCategories[aqi]; ok {
		return c
	}
	return "Unknown"
}
