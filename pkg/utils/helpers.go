package utils

import (
	"math"
)

// RoundTo rounds a float to specified decimal places, halves to even
func RoundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.RoundToEven(value*factor) / factor
}

// FahrenheitToCelsius converts a temperature in °F to °C
func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

// IntInRange returns value when it lies in [min, max], otherwise def
func IntInRange(value, min, max, def int) int {
	if value < min || value > max {
		return def
	}
	return value
}
