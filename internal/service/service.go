package service

import (
	"github.com/weatherdash/backend/internal/domain"
)

// ObservationRepository is re-exported from domain for convenience
type ObservationRepository = domain.ObservationRepository
