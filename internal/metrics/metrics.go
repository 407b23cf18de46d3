// Package metrics exposes Prometheus collectors for the HTTP surface, the insight
// computations and the external detectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for computations and detector calls.
const (
	OutcomeOK     = "ok"
	OutcomeNoData = "no_data"
	OutcomeError  = "error"
)

// Collector holds all Prometheus metrics for the application.
// A nil *Collector is valid and records nothing.
type Collector struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	Computations        *prometheus.CounterVec
	ComputationDuration *prometheus.HistogramVec

	DetectorCalls *prometheus.CounterVec
}

// NewCollector creates a collector with its own registry, so tests can build as many
// as they like.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		Computations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "insight_computations_total",
				Help:      "Total number of insight computations by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		ComputationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "insight_computation_duration_seconds",
				Help:      "Insight computation duration in seconds, store reads included",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"kind"},
		),
		DetectorCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "detector_calls_total",
				Help:      "Total number of detector invocations",
			},
			[]string{"detector", "outcome"},
		),
	}

	registry.MustRegister(
		c.HTTPRequests,
		c.HTTPDuration,
		c.Computations,
		c.ComputationDuration,
		c.DetectorCalls,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

// ObserveHTTP records one served request.
func (c *Collector) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveComputation records one insight computation.
func (c *Collector) ObserveComputation(kind, outcome string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.Computations.WithLabelValues(kind, outcome).Inc()
	c.ComputationDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

// ObserveDetector records one detector call.
func (c *Collector) ObserveDetector(detector, outcome string) {
	if c == nil {
		return
	}
	c.DetectorCalls.WithLabelValues(detector, outcome).Inc()
}

// Registry returns the Prometheus registry for this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// Outcome maps an error and a data flag to an outcome label.
func Outcome(err error, hasData bool) string {
	switch {
	case err != nil:
		return OutcomeError
	case !hasData:
		return OutcomeNoData
	default:
		return OutcomeOK
	}
}
