// Package metrics exposes Prometheus collectors for the export service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	ExportsTotal      prometheus.Counter
	ExportFailures    *prometheus.CounterVec
	HighlightFailures prometheus.Counter
	ExportDuration    prometheus.Histogram
	ExportPages       prometheus.Histogram
}

// New creates and registers the service collectors on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		ExportsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "guidepress",
			Name:      "exports_total",
			Help:      "Completed PDF exports.",
		}),
		ExportFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "guidepress",
			Name:      "export_failures_total",
			Help:      "Failed PDF exports by reason.",
		}, []string{"reason"}),
		HighlightFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "guidepress",
			Name:      "highlight_failures_total",
			Help:      "Code blocks that fell back to unhighlighted rendering.",
		}),
		ExportDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "guidepress",
			Name:      "export_duration_seconds",
			Help:      "Wall time of one export, compose through serialize.",
			Buckets:   prometheus.ExponentialBuckets(0.25, 2, 10),
		}),
		ExportPages: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "guidepress",
			Name:      "export_pages",
			Help:      "Page count of exported documents.",
			Buckets:   prometheus.LinearBuckets(5, 5, 12),
		}),
	}

	reg.MustRegister(
		m.ExportsTotal,
		m.ExportFailures,
		m.HighlightFailures,
		m.ExportDuration,
		m.ExportPages,
	)

	return m
}

// Handler returns the /metrics HTTP handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
