package postgres

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/weatherdash/backend/internal/domain"
)

// memoryCapacity bounds how many observations the in-memory store keeps.
const memoryCapacity = 500

// MemoryRepository implements domain.ObservationRepository without a database.
// It keeps the most recent observations in a ring buffer.
type MemoryRepository struct {
	mu   sync.RWMutex
	buf  []domain.Observation
	next int
	full bool
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{buf: make([]domain.Observation, memoryCapacity)}
}

// SaveObservation stores obs, evicting the oldest entry once full
func (r *MemoryRepository) SaveObservation(_ context.Context, obs domain.Observation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.buf[r.next] = obs
	r.next = (r.next + 1) % len(r.buf)
	if r.next == 0 {
		r.full = true
	}
	return nil
}

// ListObservations returns matches newest first, at most 100
func (r *MemoryRepository) ListObservations(_ context.Context, from, to time.Time, city string) ([]domain.Observation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := r.next
	if r.full {
		n = len(r.buf)
	}

	results := []domain.Observation{}
	// walk backwards from the most recent write
	for i := 0; i < n; i++ {
		o := r.buf[(r.next-1-i+len(r.buf))%len(r.buf)]
		if o.ObservedAt.Before(from) || o.ObservedAt.After(to) {
			continue
		}
		if city != "" && !strings.EqualFold(o.City, city) {
			continue
		}
		results = append(results, o)
	}

	// background saves may land slightly out of order
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].ObservedAt.After(results[j].ObservedAt)
	})
	if len(results) > historyLimit {
		results = results[:historyLimit]
	}
	return results, nil
}

// Health always returns nil
func (r *MemoryRepository) Health(context.Context) error {
	return nil
}
