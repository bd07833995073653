package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	notatimer "github.com/kevin-j-channon/not-a-timer"
)

// Metrics holds the Prometheus collectors for a Runner.
type Metrics struct {
	runs       *prometheus.CounterVec
	iterations prometheus.Counter
	running    prometheus.Gauge
}

// NewMetrics creates and registers the collectors on reg.
// Pass prometheus.DefaultRegisterer for the process-global registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notatimer_runs_total",
				Help: "Completed loop cycles by outcome.",
			},
			[]string{"outcome"},
		),
		iterations: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "notatimer_iterations_total",
				Help: "Step function invocations across all runs.",
			},
		),
		running: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "notatimer_running",
				Help: "Whether a loop is currently executing (0 or 1).",
			},
		),
	}

	reg.MustRegister(m.runs, m.iterations, m.running)
	return m
}

// InstrumentStep returns a middleware counting every step invocation.
func (m *Metrics) InstrumentStep() notatimer.StepMiddleware {
	return func(next notatimer.StepFunc) notatimer.StepFunc {
		return func() bool {
			m.iterations.Inc()
			return next()
		}
	}
}

// ObserveRun records the outcome of a finished run cycle.
func (m *Metrics) ObserveRun(outcome string) {
	m.runs.WithLabelValues(outcome).Inc()
}

// SetRunning updates the liveness gauge.
func (m *Metrics) SetRunning(running bool) {
	if running {
		m.running.Set(1)
	} else {
		m.running.Set(0)
	}
}
