package wiring_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/strangelove-ventures/omnichain-graph/types"
	"github.com/strangelove-ventures/omnichain-graph/wiring"
)

func TestPromMetricsObserve(t *testing.T) {
	g := buildGraph(t)
	registry, err := (&types.Config{Chains: chains}).Registry()
	require.NoError(t, err)

	m := wiring.NewPromMetrics()
	m.Observe(g, registry)

	require.Equal(t, float64(2), testutil.ToFloat64(m.Nodes))
	require.Equal(t, float64(2), testutil.ToFloat64(m.Edges))
	require.Equal(t, float64(3), testutil.ToFloat64(m.EnforcedOptions.WithLabelValues("optimism-sepolia")))
	require.Equal(t, float64(0), testutil.ToFloat64(m.EnforcedOptions.WithLabelValues("base-sepolia")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "oapp_graph_edges 2")
}
