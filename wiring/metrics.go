package wiring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/strangelove-ventures/omnichain-graph/graph"
	"github.com/strangelove-ventures/omnichain-graph/types"
)

type PromMetrics struct {
	Nodes           prometheus.Gauge
	Edges           prometheus.Gauge
	EnforcedOptions *prometheus.GaugeVec
	ApiRequests     *prometheus.CounterVec

	reg *prometheus.Registry
}

func NewPromMetrics() *PromMetrics {
	reg := prometheus.NewRegistry()

	// labels
	var (
		chainLabels = []string{"chain"}
		apiLabels   = []string{"route", "code"}
	)

	m := &PromMetrics{
		Nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "oapp_graph_nodes",
			Help: "Number of contract deployments in the graph",
		}),
		Edges: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "oapp_graph_edges",
			Help: "Number of enabled directed connections in the graph",
		}),
		EnforcedOptions: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "oapp_graph_enforced_options",
			Help: "Number of enforced options configured on connections leaving a chain",
		}, chainLabels),
		ApiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "oapp_graph_api_requests_total",
			Help: "Requests served by the graph API",
		}, apiLabels),
		reg: reg,
	}

	reg.MustRegister(m.Nodes, m.Edges, m.EnforcedOptions, m.ApiRequests)
	return m
}

// Observe records the shape of g. Chains are labelled with their registry names.
func (m *PromMetrics) Observe(g *graph.Graph, registry types.ChainRegistry) {
	edges := g.Edges()
	m.Nodes.Set(float64(len(g.Nodes())))
	m.Edges.Set(float64(len(edges)))

	m.EnforcedOptions.Reset()
	for _, p := range g.Nodes() {
		m.EnforcedOptions.WithLabelValues(registry.Name(p.EID)).Add(0)
	}
	for _, e := range edges {
		m.EnforcedOptions.WithLabelValues(registry.Name(e.From.EID)).Add(float64(len(e.Config.EnforcedOptions)))
	}
}

// Handler serves the /metrics endpoint for this registry.
func (m *PromMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}
