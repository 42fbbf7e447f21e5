package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for invoice generation observability.
type Metrics struct {
	InvoicesGenerated *prometheus.CounterVec
	InvoiceValue      *prometheus.HistogramVec
	RenderDuration    prometheus.Histogram
	RenderFailed      prometheus.Counter
	Classifications   *prometheus.CounterVec
	Downloads         *prometheus.CounterVec
}

// NewMetrics creates and registers all invoice metrics on the default
// registry.
func NewMetrics(namespace string) *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer, namespace)
}

// NewMetricsWith registers the metrics on a caller-supplied registry,
// which keeps parallel test setups from colliding.
func NewMetricsWith(reg prometheus.Registerer, namespace string) *Metrics {
	if namespace == "" {
		namespace = "rechnung"
	}

	subsystem := "invoices"
	factory := promauto.With(reg)

	return &Metrics{
		InvoicesGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "generated_total",
				Help:      "Total invoices generated",
			},
			[]string{"country", "rate_kind"},
		),
		InvoiceValue: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "grand_total",
				Help:      "Invoice grand total distribution",
				Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000},
			},
			[]string{"currency"},
		),
		RenderDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "render_duration_seconds",
				Help:      "Time spent producing the PDF document",
				Buckets:   prometheus.DefBuckets,
			},
		),
		RenderFailed: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "render_failures_total",
				Help:      "Total failed PDF renders",
			},
		),
		Classifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "classifications_total",
				Help:      "VAT classification outcomes",
			},
			[]string{"rate_kind"},
		),
		Downloads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "downloads_total",
				Help:      "Invoice file downloads and previews",
			},
			[]string{"mode"},
		),
	}
}
