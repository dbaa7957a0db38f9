package domain

import (
	"context"
	"time"
)

// ObservationRepository defines persistence for weather observations.
// The domain owns the interface; implementations live under internal/repository.
type ObservationRepository interface {
	// SaveObservation persists a single observation
	SaveObservation(ctx context.Context, obs Observation) error

	// ListObservations returns observations in [from, to], newest first.
	// An empty city matches every city.
	ListObservations(ctx context.Context, from, to time.Time, city string) ([]Observation, error)

	// Health checks storage connectivity
	Health(ctx context.Context) error
}
