package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/weatherdash/backend/internal/domain"
	"github.com/weatherdash/backend/internal/metrics"
	"github.com/weatherdash/backend/pkg/utils"
)

const (
	defaultHistoryHours = 24
	maxHistoryHours     = 720
	compareConcurrency  = 4
	saveTimeout         = 5 * time.Second
)

// WeatherSource is the subset of WeatherService the dashboard composes.
type WeatherSource interface {
	Current(ctx context.Context, city string, units domain.Units) (domain.CurrentWeather, error)
	UV(ctx context.Context, city string, units domain.Units) (domain.UVReport, error)
	AirQuality(ctx context.Context, city string) (domain.AirQuality, error)
}

// DashboardService combines weather lookups and keeps the observation history
type DashboardService struct {
	weather    WeatherSource
	repo       ObservationRepository
	log        *logrus.Logger
	maxCompare int
	now        func() time.Time

	wgBg sync.WaitGroup // tracks background goroutines for graceful shutdown
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(weather WeatherSource, repo ObservationRepository, log *logrus.Logger, maxCompare int) *DashboardService {
	return &DashboardService{
		weather:    weather,
		repo:       repo,
		log:        log,
		maxCompare: maxCompare,
		now:        time.Now,
	}
}

// WaitBackground blocks until all background save goroutines complete.
// Call during graceful shutdown to avoid dropped writes.
func (s *DashboardService) WaitBackground() {
	s.wgBg.Wait()
}

// Weather returns current conditions and records them asynchronously.
func (s *DashboardService) Weather(ctx context.Context, city string, units domain.Units) (domain.CurrentWeather, error) {
	w, err := s.weather.Current(ctx, city, units)
	if err != nil {
		return domain.CurrentWeather{}, err
	}

	obs := domain.NewObservation(w, units, s.now().UTC())
	s.wgBg.Add(1)
	go func() {
		defer s.wgBg.Done()
		bgCtx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		if err := s.repo.SaveObservation(bgCtx, obs); err != nil {
			metrics.ObservationsSaved.WithLabelValues("error").Inc()
			s.log.WithField("city", obs.City).WithError(err).Error("failed to save observation")
			return
		}
		metrics.ObservationsSaved.WithLabelValues("ok").Inc()
	}()

	return w, nil
}

// Outfit fetches current weather and UV concurrently and builds a clothing
// recommendation. A failed UV lookup counts as Low. A failed weather lookup
// does not cancel the UV one.
func (s *DashboardService) Outfit(ctx context.Context, city string, units domain.Units) (domain.Outfit, error) {
	var (
		current domain.CurrentWeather
		uvCat   = UVCategory(0)
	)

	var g errgroup.Group
	g.Go(func() error {
		w, err := s.weather.Current(ctx, city, units)
		if err != nil {
			return err
		}
		current = w
		return nil
	})
	g.Go(func() error {
		uv, err := s.weather.UV(ctx, city, units)
		if err != nil {
			s.log.WithField("city", city).WithError(err).Warn("uv lookup failed, assuming low")
			return nil
		}
		uvCat = uv.UVCategory
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.Outfit{}, err
	}

	return RecommendOutfit(city, current, uvCat, units), nil
}

// ParseCityList splits a comma separated list, trimming blanks.
func ParseCityList(raw string) []string {
	cities := []string{}
	for _, c := range strings.Split(raw, ",") {
		if c = strings.TrimSpace(c); c != "" {
			cities = append(cities, c)
		}
	}
	return cities
}

// Compare looks up weather and air quality for each city concurrently.
// Cities that fail are skipped; the rest keep their input order.
func (s *DashboardService) Compare(ctx context.Context, cities []string, units domain.Units) (domain.Comparison, error) {
	if len(cities) == 0 {
		return domain.Comparison{}, domain.NewRequestError("cities is required")
	}
	if s.maxCompare > 0 && len(cities) > s.maxCompare {
		return domain.Comparison{}, domain.NewRequestError("too many cities: at most %d allowed", s.maxCompare)
	}

	rows := make([]*domain.CityComparison, len(cities))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(compareConcurrency)
	for i, city := range cities {
		i, city := i, city
		g.Go(func() error {
			w, err := s.weather.Current(gctx, city, units)
			if err != nil {
				s.log.WithField("city", city).WithError(err).Warn("compare: weather lookup failed")
				return nil
			}
			aq, err := s.weather.AirQuality(gctx, city)
			if err != nil {
				s.log.WithField("city", city).WithError(err).Warn("compare: air quality lookup failed")
				return nil
			}
			rows[i] = &domain.CityComparison{
				City:        w.City,
				Temperature: w.Temperature,
				Condition:   w.Condition,
				Humidity:    w.Humidity,
				WindSpeed:   w.WindSpeed,
				AQI:         aq.AQI,
				AQICategory: aq.Category,
			}
			return nil
		})
	}
	// lookups never return errors; failures are skipped above
	_ = g.Wait()

	out := domain.Comparison{Cities: []domain.CityComparison{}}
	for _, r := range rows {
		if r != nil {
			out.Cities = append(out.Cities, *r)
		}
	}
	return out, nil
}

// History returns observations from the last hours (1..720, otherwise 24).
func (s *DashboardService) History(ctx context.Context, city string, hours int) (domain.History, error) {
	hours = utils.IntInRange(hours, 1, maxHistoryHours, defaultHistoryHours)

	to := s.now().UTC()
	from := to.Add(-time.Duration(hours) * time.Hour)

	data, err := s.repo.ListObservations(ctx, from, to, city)
	if err != nil {
		return domain.History{}, err
	}
	if data == nil {
		data = []domain.Observation{}
	}

	return domain.History{City: city, Count: len(data), Data: data}, nil
}
