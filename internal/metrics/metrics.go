// Package metrics exposes command counters and collection gauges for /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "studytracker"

type Metrics struct {
	registry    *prometheus.Registry
	commands    *prometheus.CounterVec
	subjects    prometheus.Gauge
	totalHours  prometheus.Gauge
	completions prometheus.Counter
}

// New registers the collectors on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Commands handled, by command and result.",
		}, []string{"command", "result"}),
		subjects: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "subjects",
			Help:      "Subjects in the persisted collection.",
		}),
		totalHours: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "hours_studied_total",
			Help:      "Sum of logged hours across all subjects.",
		}),
		completions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "goal_completions_total",
			Help:      "Times a subject reached its goal.",
		}),
	}

	reg.MustRegister(
		m.commands,
		m.subjects,
		m.totalHours,
		m.completions,
		prometheus.NewGoCollector(),
	)
	return m
}

// Command counts one command. Safe on a nil *Metrics.
func (m *Metrics) Command(command string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.commands.WithLabelValues(command, result).Inc()
}

// Collection records the size of the collection after a command.
func (m *Metrics) Collection(subjects int, totalHours float64) {
	if m == nil {
		return
	}
	m.subjects.Set(float64(subjects))
	m.totalHours.Set(totalHours)
}

func (m *Metrics) Completed() {
	if m == nil {
		return
	}
	m.completions.Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
