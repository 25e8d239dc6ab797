package rosu

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollector provides Prometheus metrics for the request pipeline and
// the token lifecycle. It is purely observational and safe for concurrent
// use; counters may over-count by one under the documented username-cache
// insert race.
type MetricsCollector struct {
	requestsTotal  *prometheus.CounterVec
	retriesTotal   prometheus.Counter
	tokenRefreshes prometheus.Counter
	cacheSize      prometheus.Gauge
}

// NewMetricsCollector creates a metrics collector on the default registerer.
func NewMetricsCollector() *MetricsCollector {
	return NewMetricsCollectorWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsCollectorWithRegistry creates a collector using the supplied
// registerer.
func NewMetricsCollectorWithRegistry(registry prometheus.Registerer) *MetricsCollector {
	return &MetricsCollector{
		requestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "rosu_requests_total",
				Help: "Total number of API requests started, per endpoint",
			},
			[]string{"endpoint"},
		),
		retriesTotal: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "rosu_retries_total",
				Help: "Total number of timed-out attempts that were retried",
			},
		),
		tokenRefreshes: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "rosu_token_refreshes_total",
				Help: "Total number of successful token acquisitions",
			},
		),
		cacheSize: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "rosu_username_cache_size",
				Help: "Approximate number of entries in the username cache",
			},
		),
	}
}

// RecordRequest counts one endpoint invocation.
func (m *MetricsCollector) RecordRequest(endpoint string) {
	m.requestsTotal.WithLabelValues(endpoint).Inc()
}

// RecordRetry counts one retried attempt.
func (m *MetricsCollector) RecordRetry() {
	m.retriesTotal.Inc()
}

// RecordTokenRefresh counts one successful token acquisition.
func (m *MetricsCollector) RecordTokenRefresh() {
	m.tokenRefreshes.Inc()
}

// RecordCacheInsert bumps the cache size gauge. Concurrent identical lookups
// can bump twice for one distinct name; recomputing the exact size on a hot
// path is not worth that accuracy.
func (m *MetricsCollector) RecordCacheInsert() {
	m.cacheSize.Inc()
}
