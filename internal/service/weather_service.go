package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/valyala/fastjson"

	"github.com/weatherdash/backend/internal/domain"
	"github.com/weatherdash/backend/pkg/utils"
)

const (
	defaultHourlyHours = 12
	maxHourlyHours     = 120 // the 5 day / 3 hour forecast covers 120 hours
	forecastDays       = 5

	excludeForUV     = "hourly,daily,minutely"
	excludeForAlerts = "current,minutely,hourly,daily"
)

// Upstream performs raw provider calls.
type Upstream interface {
	Get(ctx context.Context, call Call, params url.Values) (*UpstreamResponse, error)
}

// WeatherService reshapes OpenWeatherMap responses for the dashboard
type WeatherService struct {
	upstream Upstream
}

// NewWeatherService creates a new weather service
func NewWeatherService(upstream Upstream) *WeatherService {
	return &WeatherService{upstream: upstream}
}

type owmCondition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type owmPrecip struct {
	OneHour   *float64 `json:"1h"`
	ThreeHour *float64 `json:"3h"`
}

// owmCurrent is the /data/2.5/weather payload
type owmCurrent struct {
	Name string `json:"name"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Sys struct {
		Sunrise int64 `json:"sunrise"`
		Sunset  int64 `json:"sunset"`
	} `json:"sys"`
	Weather []owmCondition `json:"weather"`
	Rain    *owmPrecip     `json:"rain"`
	Snow    *owmPrecip     `json:"snow"`
}

type owmForecastEntry struct {
	DtTxt string `json:"dt_txt"`
	Main  struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []owmCondition `json:"weather"`
	Rain    *owmPrecip     `json:"rain"`
	Snow    *owmPrecip     `json:"snow"`
}

// owmForecast is the /data/2.5/forecast payload
type owmForecast struct {
	List []owmForecastEntry `json:"list"`
}

type owmPlace struct {
	Name    string  `json:"name"`
	State   string  `json:"state"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type owmAirPollution struct {
	List []struct {
		Main struct {
			AQI int `json:"aqi"`
		} `json:"main"`
	} `json:"list"`
}

func firstCondition(c []owmCondition) owmCondition {
	if len(c) == 0 {
		return owmCondition{}
	}
	return c[0]
}

func threeHour(p *owmPrecip) float64 {
	if p == nil || p.ThreeHour == nil {
		return 0
	}
	return *p.ThreeHour
}

func coordParams(loc domain.Location) url.Values {
	return url.Values{
		"lat": {strconv.FormatFloat(loc.Lat, 'f', -1, 64)},
		"lon": {strconv.FormatFloat(loc.Lon, 'f', -1, 64)},
	}
}

// Geocode resolves a city name to its first geocoding match.
func (s *WeatherService) Geocode(ctx context.Context, city string) (domain.Location, error) {
	resp, err := s.upstream.Get(ctx, CallGeocode, url.Values{"q": {city}, "limit": {"1"}})
	if err != nil {
		return domain.Location{}, err
	}
	if !resp.OK() {
		return domain.Location{}, fmt.Errorf("geocode %q: status %d: %w", city, resp.StatusCode, domain.ErrUpstreamUnavailable)
	}

	var places []owmPlace
	if err := json.Unmarshal(resp.Body, &places); err != nil {
		return domain.Location{}, fmt.Errorf("geocode: failed to decode response: %w", err)
	}
	if len(places) == 0 {
		return domain.Location{}, fmt.Errorf("geocode %q: %w", city, domain.ErrCityNotFound)
	}

	p := places[0]
	return domain.Location{City: p.Name, Country: p.Country, Lat: p.Lat, Lon: p.Lon}, nil
}

// Current fetches current conditions by city name. Any non-200 answer from the
// provider is reported as an unknown city.
func (s *WeatherService) Current(ctx context.Context, city string, units domain.Units) (domain.CurrentWeather, error) {
	resp, err := s.upstream.Get(ctx, CallCurrent, url.Values{"q": {city}, "units": {string(units)}})
	if err != nil {
		return domain.CurrentWeather{}, err
	}
	if !resp.OK() {
		return domain.CurrentWeather{}, fmt.Errorf("weather %q: status %d: %w", city, resp.StatusCode, domain.ErrCityNotFound)
	}

	var ow owmCurrent
	if err := json.Unmarshal(resp.Body, &ow); err != nil {
		return domain.CurrentWeather{}, fmt.Errorf("weather: failed to decode response: %w", err)
	}

	cond := firstCondition(ow.Weather)
	w := domain.CurrentWeather{
		City:        ow.Name,
		Temperature: ow.Main.Temp,
		FeelsLike:   ow.Main.FeelsLike,
		TempMin:     ow.Main.TempMin,
		TempMax:     ow.Main.TempMax,
		Humidity:    ow.Main.Humidity,
		WindSpeed:   ow.Wind.Speed,
		Sunrise:     ow.Sys.Sunrise,
		Sunset:      ow.Sys.Sunset,
		Condition:   cond.Description,
		Icon:        cond.Icon,
	}
	if ow.Rain != nil {
		w.Rain1h, w.Rain3h = ow.Rain.OneHour, ow.Rain.ThreeHour
	}
	if ow.Snow != nil {
		w.Snow1h, w.Snow3h = ow.Snow.OneHour, ow.Snow.ThreeHour
	}
	return w, nil
}

func (s *WeatherService) forecastEntries(ctx context.Context, loc domain.Location, units domain.Units) (*owmForecast, int, error) {
	params := coordParams(loc)
	params.Set("units", string(units))

	resp, err := s.upstream.Get(ctx, CallForecast, params)
	if err != nil {
		return nil, 0, err
	}
	if !resp.OK() {
		return nil, resp.StatusCode, nil
	}

	var fc owmForecast
	if err := json.Unmarshal(resp.Body, &fc); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("forecast: failed to decode response: %w", err)
	}
	return &fc, resp.StatusCode, nil
}

// Forecast aggregates the 3-hour forecast into at most five calendar days, in
// the order the provider lists them.
func (s *WeatherService) Forecast(ctx context.Context, city string, units domain.Units) (domain.Forecast, error) {
	loc, err := s.Geocode(ctx, city)
	if err != nil {
		return domain.Forecast{}, err
	}

	fc, status, err := s.forecastEntries(ctx, loc, units)
	if err != nil {
		return domain.Forecast{}, err
	}
	if fc == nil {
		return domain.Forecast{}, fmt.Errorf("forecast %q: status %d: %w", city, status, domain.ErrForecastUnavailable)
	}

	return domain.Forecast{City: loc.City, Daily: aggregateDaily(fc.List, forecastDays)}, nil
}

// aggregateDaily groups entries by the date part of dt_txt. Humidity,
// condition and icon come from the first entry of each day.
func aggregateDaily(entries []owmForecastEntry, maxDays int) []domain.DailyForecast {
	days := make([]domain.DailyForecast, 0, maxDays)
	index := make(map[string]int)

	for _, e := range entries {
		date, _, _ := strings.Cut(e.DtTxt, " ")
		precip := threeHour(e.Rain) + threeHour(e.Snow)
		temp := e.Main.Temp

		i, seen := index[date]
		if !seen {
			cond := firstCondition(e.Weather)
			index[date] = len(days)
			days = append(days, domain.DailyForecast{
				Date:      date,
				MinTemp:   temp,
				MaxTemp:   temp,
				Humidity:  e.Main.Humidity,
				Condition: cond.Description,
				Icon:      cond.Icon,
				PrecipMM:  precip,
			})
			continue
		}

		d := &days[i]
		if temp < d.MinTemp {
			d.MinTemp = temp
		}
		if temp > d.MaxTemp {
			d.MaxTemp = temp
		}
		d.PrecipMM += precip
	}

	if len(days) > maxDays {
		days = days[:maxDays]
	}
	for i := range days {
		days[i].PrecipMM = utils.RoundTo(days[i].PrecipMM, 2)
	}
	return days
}

// Hourly returns the first ceil(hours/3) forecast steps. Hours outside
// 1..120 fall back to 12.
func (s *WeatherService) Hourly(ctx context.Context, city string, units domain.Units, hours int) (domain.Hourly, error) {
	hours = utils.IntInRange(hours, 1, maxHourlyHours, defaultHourlyHours)

	loc, err := s.Geocode(ctx, city)
	if err != nil {
		return domain.Hourly{}, err
	}

	fc, status, err := s.forecastEntries(ctx, loc, units)
	if err != nil {
		return domain.Hourly{}, err
	}
	if fc == nil {
		return domain.Hourly{}, fmt.Errorf("hourly %q: status %d: %w", city, status, domain.ErrUpstreamUnavailable)
	}

	needed := (hours + 2) / 3
	if needed > len(fc.List) {
		needed = len(fc.List)
	}

	timeline := make([]domain.HourlyPoint, 0, needed)
	for _, e := range fc.List[:needed] {
		cond := firstCondition(e.Weather)
		timeline = append(timeline, domain.HourlyPoint{
			Time:        e.DtTxt,
			Temperature: e.Main.Temp,
			FeelsLike:   e.Main.FeelsLike,
			Humidity:    e.Main.Humidity,
			Condition:   cond.Description,
			Icon:        cond.Icon,
		})
	}

	return domain.Hourly{City: loc.City, Timeline: timeline}, nil
}

// Coords returns the geocoded location of a city.
func (s *WeatherService) Coords(ctx context.Context, city string) (domain.Location, error) {
	return s.Geocode(ctx, city)
}

// oneCall returns the parsed One Call payload, or nil when the provider could
// not answer. Callers treat nil as "no data".
func (s *WeatherService) oneCall(ctx context.Context, loc domain.Location, units domain.Units, exclude string) *fastjson.Value {
	params := coordParams(loc)
	params.Set("units", string(units))
	params.Set("exclude", exclude)

	resp, err := s.upstream.Get(ctx, CallOneCall, params)
	if err != nil || !resp.OK() {
		return nil
	}

	var p fastjson.Parser
	v, err := p.ParseBytes(resp.Body)
	if err != nil {
		return nil
	}
	return v
}

// UV reports the current UV index. Missing data reads as 0 (Low).
func (s *WeatherService) UV(ctx context.Context, city string, units domain.Units) (domain.UVReport, error) {
	loc, err := s.Geocode(ctx, city)
	if err != nil {
		return domain.UVReport{}, err
	}

	var uvi float64
	if v := s.oneCall(ctx, loc, units, excludeForUV); v != nil {
		uvi = v.GetFloat64("current", "uvi")
	}

	return domain.UVReport{City: loc.City, UVIndex: uvi, UVCategory: UVCategory(uvi)}, nil
}

// AirQuality reports the provider's air quality index for a city.
func (s *WeatherService) AirQuality(ctx context.Context, city string) (domain.AirQuality, error) {
	loc, err := s.Geocode(ctx, city)
	if err != nil {
		return domain.AirQuality{}, err
	}

	resp, err := s.upstream.Get(ctx, CallAirPollution, coordParams(loc))
	if err != nil {
		return domain.AirQuality{}, fmt.Errorf("%w: %v", domain.ErrAirQualityUnavailable, err)
	}
	if !resp.OK() {
		return domain.AirQuality{}, fmt.Errorf("aqi %q: status %d: %w", city, resp.StatusCode, domain.ErrAirQualityUnavailable)
	}

	var ap owmAirPollution
	if err := json.Unmarshal(resp.Body, &ap); err != nil {
		return domain.AirQuality{}, fmt.Errorf("aqi: failed to decode response: %w", err)
	}
	if len(ap.List) == 0 {
		return domain.AirQuality{}, fmt.Errorf("aqi %q: empty list: %w", city, domain.ErrAirQualityUnavailable)
	}

	aqi := ap.List[0].Main.AQI
	return domain.AirQuality{City: loc.City, AQI: aqi, Category: AQICategory(aqi)}, nil
}

// Alerts lists active weather warnings. Provider failures yield an empty list.
func (s *WeatherService) Alerts(ctx context.Context, city string, units domain.Units) (domain.Alerts, error) {
	loc, err := s.Geocode(ctx, city)
	if err != nil {
		return domain.Alerts{}, err
	}

	out := domain.Alerts{City: loc.City, Alerts: []domain.Alert{}}

	v := s.oneCall(ctx, loc, units, excludeForAlerts)
	if v == nil {
		return out, nil
	}

	for _, a := range v.GetArray("alerts") {
		out.Alerts = append(out.Alerts, domain.Alert{
			Event:       stringOr(a, "event", "No title"),
			Description: stringOr(a, "description", ""),
			SenderName:  stringOr(a, "sender_name", ""),
		})
	}
	return out, nil
}

// stringOr falls back to def only for a missing key. An explicit null reads as "".
func stringOr(v *fastjson.Value, key, def string) string {
	if !v.Exists(key) {
		return def
	}
	return string(v.GetStringBytes(key))
}

// ReverseGeocode names the place at lat/lon. Every failure resolves to "Unknown".
func (s *WeatherService) ReverseGeocode(ctx context.Context, lat, lon float64) domain.Place {
	unknown := domain.Place{City: "Unknown"}

	params := coordParams(domain.Location{Lat: lat, Lon: lon})
	params.Set("limit", "1")

	resp, err := s.upstream.Get(ctx, CallReverseGeocode, params)
	if err != nil || !resp.OK() {
		return unknown
	}

	var places []owmPlace
	if err := json.Unmarshal(resp.Body, &places); err != nil || len(places) == 0 {
		return unknown
	}

	p := places[0]
	for _, name := range []string{p.Name, p.State, p.Country} {
		if name != "" {
			return domain.Place{City: name}
		}
	}
	return unknown
}
