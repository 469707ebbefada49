// Package metrics holds the Prometheus collectors of the lookup service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Fetch outcomes.
const (
	OutcomeFulfilled = "fulfilled"
	OutcomeRejected  = "rejected"
	OutcomeStale     = "stale"
)

// Metrics holds all collectors. Metrics are registered on the registerer
// passed to New.
//
//   - lookup_fetch_total: fetches by entity and outcome
//   - lookup_fetch_duration_seconds: fetch latency including retries
//   - lookup_retries_total: retried upstream calls
//   - boundary_failures_total: requests rendered by a fallback
//   - upstream_breaker_state: 0=closed, 1=half-open, 2=open
type Metrics struct {
	FetchTotal       *prometheus.CounterVec
	FetchDuration    *prometheus.HistogramVec
	RetriesTotal     *prometheus.CounterVec
	BoundaryFailures *prometheus.CounterVec
	BreakerState     *prometheus.GaugeVec

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New creates and registers all collectors under namespace.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FetchTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookup_fetch_total",
			Help:      "Total number of lookup fetches by entity and outcome",
		}, []string{"entity", "outcome"}),
		FetchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lookup_fetch_duration_seconds",
			Help:      "Duration of lookup fetches in seconds, retries included",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"entity"}),
		RetriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookup_retries_total",
			Help:      "Total number of retried upstream calls",
		}, []string{"entity"}),
		BoundaryFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "boundary_failures_total",
			Help:      "Total number of requests answered by the recovery fallback",
		}, []string{"kind"}),
		BreakerState: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "upstream_breaker_state",
			Help:      "Current state of the upstream circuit breaker (0=closed, 1=half-open, 2=open)",
		}, []string{"collection"}),
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by method, route and status",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

// ObserveFetch records one settled fetch.
func (m *Metrics) ObserveFetch(entity, outcome string, d time.Duration) {
	m.FetchTotal.WithLabelValues(entity, outcome).Inc()
	m.FetchDuration.WithLabelValues(entity).Observe(d.Seconds())
}

func (m *Metrics) ObserveRetry(entity string) {
	m.RetriesTotal.WithLabelValues(entity).Inc()
}

func (m *Metrics) ObserveBoundaryFailure(kind string) {
	m.BoundaryFailures.WithLabelValues(kind).Inc()
}

// ObserveBreakerState maps closed/half-open/open to 0/1/2.
func (m *Metrics) ObserveBreakerState(collection, state string) {
	var v float64
	switch state {
	case "half-open":
		v = 1
	case "open":
		v = 2
	}
	m.BreakerState.WithLabelValues(collection).Set(v)
}
