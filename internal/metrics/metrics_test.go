package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	UpstreamRequests.WithLabelValues("weather", "200").Inc()
	CacheResults.WithLabelValues("hit").Inc()
	BreakerState.WithLabelValues("openweathermap").Set(1)

	families, err := Registry.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["weatherdash_upstream_requests_total"])
	assert.True(t, names["weatherdash_cache_results_total"])
	assert.True(t, names["weatherdash_breaker_open"])
	assert.True(t, names["go_goroutines"])

	assert.Equal(t, 1.0, testutil.ToFloat64(BreakerState.WithLabelValues("openweathermap")))
}
