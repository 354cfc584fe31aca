// Package observability holds the Prometheus instrumentation for recipe runs.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the run-level counters on a private registry, so tests and
// embedded hosts never collide on the global default registry.
type Metrics struct {
	registry *prometheus.Registry

	// StepsTotal counts completed step cycles per recipe.
	StepsTotal *prometheus.CounterVec

	// ExtractionFailures counts failed outcome extractions by kind
	// (no-json, malformed-json, invalid-outcome).
	ExtractionFailures *prometheus.CounterVec

	// RunsFinished counts terminated runs by cause
	// (exit, guardrail, agent-error, extraction-error).
	RunsFinished *prometheus.CounterVec
}

// New creates the metrics set on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		StepsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gantry_steps_total",
			Help: "Completed step cycles, per recipe.",
		}, []string{"recipe"}),
		ExtractionFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gantry_extraction_failures_total",
			Help: "Outcome extractions that failed, by failure kind.",
		}, []string{"recipe", "kind"}),
		RunsFinished: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gantry_runs_finished_total",
			Help: "Recipe runs that terminated, by cause.",
		}, []string{"recipe", "cause"}),
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
