// Package metrics exposes Prometheus counters for scan sessions and the
// advisories they produce.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"akwana/internal/domain"
	"akwana/internal/services/scansession"
)

type Collector struct {
	registry    *prometheus.Registry
	advisories  *prometheus.CounterVec
	confidence  prometheus.Histogram
	transitions *prometheus.CounterVec
	failures    *prometheus.CounterVec
}

func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		advisories: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "akwana",
			Name:      "advisories_published_total",
			Help:      "Advisory artifacts published, by status and whether the default rule answered.",
		}, []string{"status", "fallback"}),
		confidence: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "akwana",
			Name:      "advisory_confidence",
			Help:      "Confidence of published advisories.",
			Buckets:   []float64{20, 40, 60, 70, 80, 90, 100},
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "akwana",
			Name:      "session_transitions_total",
			Help:      "Scan session state transitions, by target state.",
		}, []string{"to"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "akwana",
			Name:      "session_failures_total",
			Help:      "Failed scans, by failure kind.",
		}, []string{"kind"}),
	}
	c.registry.MustRegister(c.advisories, c.confidence, c.transitions, c.failures)
	return c
}

// Publish satisfies ports.Publisher so the collector can subscribe to the
// advisory sink.
func (c *Collector) Publish(a domain.Artifact) {
	c.advisories.WithLabelValues(string(a.Status), strconv.FormatBool(a.Fallback)).Inc()
	c.confidence.Observe(a.Confidence)
}

func (c *Collector) ObserveTransition(t scansession.Transition) {
	c.transitions.WithLabelValues(string(t.To)).Inc()
	if t.To == scansession.StateFailed && t.Failure != nil {
		c.failures.WithLabelValues(string(t.Failure.Kind)).Inc()
	}
}

func (c *Collector) Registry() *prometheus.Registry { return c.registry }

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
