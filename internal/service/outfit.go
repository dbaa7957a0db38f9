package service

import (
	"fmt"
	"strings"

	"github.com/weatherdash/backend/internal/domain"
	"github.com/weatherdash/backend/pkg/utils"
)

// RecommendOutfit derives clothing advice from current weather and the UV
// category. city is echoed back as the caller spelled it.
func RecommendOutfit(city string, w domain.CurrentWeather, uvCategory string, units domain.Units) domain.Outfit {
	tempC := w.Temperature
	if units == domain.Imperial {
		tempC = utils.FahrenheitToCelsius(w.Temperature)
	}

	rain, snow := w.Rain(), w.Snow()

	clothing := []string{}
	accessories := []string{}
	notes := []string{}

	switch {
	case tempC <= 0:
		clothing = append(clothing, "Heavy winter coat")
		accessories = append(accessories, "Gloves, scarf, warm hat")
		notes = append(notes, "Very cold weather.")
	case tempC <= 10:
		clothing = append(clothing, "Coat or thick jacket")
		notes = append(notes, "Cool temperatures.")
	case tempC <= 20:
		clothing = append(clothing, "Light jacket or sweater")
	default:
		clothing = append(clothing, "Light clothing")
		notes = append(notes, "Warm temperatures.")
	}

	if rain > 0 {
		accessories = append(accessories, "Umbrella")
		notes = append(notes, "Rain expected.")
	}
	if snow > 0 {
		clothing = append(clothing, "Snow boots")
		notes = append(notes, "Snowy conditions.")
	}

	switch uvCategory {
	case "High", "Very High", "Extreme":
		accessories = append(accessories, "Sunscreen")
		notes = append(notes, fmt.Sprintf("UV levels are %s.", strings.ToLower(uvCategory)))
	}

	return domain.Outfit{
		City:        city,
		Temperature: w.Temperature,
		Condition:   w.Condition,
		PrecipMM:    utils.RoundTo(rain+snow, 2),
		UVCategory:  uvCategory,
		Summary: fmt.Sprintf("In %s, it's %.1f°%s with %s.",
			city, w.Temperature, units.TemperatureSymbol(), w.Condition),
		Clothing:    clothing,
		Accessories: accessories,
		Notes:       notes,
	}
}
