// Package metrics samples resource usage of the render engine and the
// traversal surfaces built on it.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/webgrove/rendertree/engine"
)

// Collector holds the traversal counters. Register it on the Registerer
// of your choice with New; tests use a fresh registry.
type Collector struct {
	TreesBuilt        prometheus.Counter
	NodesMaterialized prometheus.Counter
	SessionsOpen      prometheus.Gauge
}

// New builds a Collector, registers it on reg together with a gauge
// sampling eng's outstanding handles, and returns it.
func New(reg prometheus.Registerer, eng *engine.Engine) *Collector {
	c := &Collector{
		TreesBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rendertree_trees_built_total",
			Help: "Total number of render trees built.",
		}),
		NodesMaterialized: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rendertree_nodes_materialized_total",
			Help: "Total number of nodes materialized by traversal sessions.",
		}),
		SessionsOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rendertree_sessions_open",
			Help: "Number of currently open traversal sessions.",
		}),
	}
	live := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "rendertree_engine_live_handles",
		Help: "Outstanding engine handles (trees, iterators, node slots).",
	}, func() float64 {
		return float64(eng.Live())
	})
	reg.MustRegister(c.TreesBuilt, c.NodesMaterialized, c.SessionsOpen, live)
	return c
}

// Handler returns an HTTP handler exposing reg in the prometheus text
// format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
