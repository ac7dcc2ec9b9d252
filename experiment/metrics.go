package experiment

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metric namespace and subsystem.
const (
	metricsNamespace = "randwalk"
	metricsSubsystem = "experiment"
)

// Trial outcomes used as the "outcome" label.
const (
	OutcomeCovered = "covered"
	OutcomeAborted = "aborted"
	OutcomeFailed  = "failed"
)

// Metrics records run statistics in a private Prometheus registry. The CLI
// exports them with WriteTextfile for the node_exporter textfile collector.
//
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	trials     *prometheus.CounterVec
	coverSteps *prometheus.HistogramVec
	attacks    *prometheus.CounterVec
}

// NewMetrics creates and registers all collectors.
func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.trials = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "trials_total",
			Help:      "Walk trials by agent, graph kind and outcome",
		},
		[]string{"agent", "graph", "outcome"},
	)
	m.coverSteps = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "cover_steps",
			Help:      "Steps until every vertex was visited, for covered trials",
			Buckets:   prometheus.ExponentialBuckets(16, 2, 12),
		},
		[]string{"agent", "graph"},
	)
	m.attacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "attacks_total",
			Help:      "Adversary rewiring attempts by result",
		},
		[]string{"result"},
	)
	m.registry.MustRegister(m.trials, m.coverSteps, m.attacks)

	return m
}

// ObserveTrial counts one finished trial; steps is recorded for covered trials.
func (m *Metrics) ObserveTrial(agent, graph, outcome string, steps int) {
	if m == nil {
		return
	}
	m.trials.WithLabelValues(agent, graph, outcome).Inc()
	if outcome == OutcomeCovered {
		m.coverSteps.WithLabelValues(agent, graph).Observe(float64(steps))
	}
}

// ObserveAttack counts one attack attempt.
func (m *Metrics) ObserveAttack(rewired bool) {
	if m == nil {
		return
	}
	result := "skipped"
	if rewired {
		result = "rewired"
	}
	m.attacks.WithLabelValues(result).Inc()
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}

	return m.registry
}

// WriteTextfile writes all metrics to path in the Prometheus text format.
// The file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("WriteTextfile(%s): %w", path, err)
	}

	return nil
}
