package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PhaseMetrics holds the Prometheus collectors for benchmark runs. Each
// instance owns its registry, so tests and repeated runs never collide on
// the global default registerer.
type PhaseMetrics struct {
	registry   *prometheus.Registry
	duration   *prometheus.GaugeVec
	outside    *prometheus.GaugeVec
	runs       prometheus.Counter
	mismatches prometheus.Counter
}

// NewPhaseMetrics creates and registers the collectors.
func NewPhaseMetrics() *PhaseMetrics {
	m := &PhaseMetrics{
		registry: prometheus.NewRegistry(),
		duration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "mandelarea_phase_duration_seconds",
			Help: "Wall-clock duration of the last completed phase, by strategy.",
		}, []string{"strategy"}),
		outside: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "mandelarea_outside_points",
			Help: "Number of grid points found outside the set, by strategy.",
		}, []string{"strategy"}),
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mandelarea_runs_total",
			Help: "Number of benchmark runs that reached the finalize phase.",
		}),
		mismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mandelarea_mismatches_total",
			Help: "Number of runs aborted because two strategies disagreed.",
		}),
	}
	m.registry.MustRegister(m.duration, m.outside, m.runs, m.mismatches)
	return m
}

// ObservePhase records the duration and outside count of one strategy.
func (m *PhaseMetrics) ObservePhase(strategy string, seconds float64, outside int) {
	m.duration.WithLabelValues(strategy).Set(seconds)
	m.outside.WithLabelValues(strategy).Set(float64(outside))
}

// RunCompleted increments the completed-run counter.
func (m *PhaseMetrics) RunCompleted() { m.runs.Inc() }

// MismatchDetected increments the mismatch counter.
func (m *PhaseMetrics) MismatchDetected() { m.mismatches.Inc() }

// Registry exposes the underlying registry for gathering.
func (m *PhaseMetrics) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile writes the current values in the Prometheus text exposition
// format. The file is written to a temporary name and renamed into place.
func (m *PhaseMetrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
