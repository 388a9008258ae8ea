package query

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "eventsync"

// Metrics はクエリ実行とミューテーションのPrometheusメトリクスです。
// nilのMetricsに対する呼び出しは何もしません
type Metrics struct {
	fetches       *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
	cacheHits     *prometheus.CounterVec
	invalidations *prometheus.CounterVec
	mutations     *prometheus.CounterVec
	activePolls   *prometheus.GaugeVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		fetches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "query",
			Name:      "fetches_total",
			Help:      "Number of remote fetch attempts by query name and result.",
		}, []string{"query", "result"}),
		fetchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "query",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of remote fetch attempts.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"query"}),
		cacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "query",
			Name:      "cache_hits_total",
			Help:      "Number of reads served from a fresh cache entry.",
		}, []string{"query"}),
		invalidations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "query",
			Name:      "invalidations_total",
			Help:      "Number of cache entries marked stale.",
		}, []string{"query"}),
		mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "mutation",
			Name:      "executions_total",
			Help:      "Number of mutations by operation and result.",
		}, []string{"operation", "result"}),
		activePolls: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "query",
			Name:      "active_polls",
			Help:      "Number of running poll timers.",
		}, []string{"query"}),
	}
}

func resultLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func (m *Metrics) observeFetch(name Name, err error, d time.Duration) {
	if m == nil {
		return
	}
	m.fetches.WithLabelValues(string(name), resultLabel(err)).Inc()
	m.fetchDuration.WithLabelValues(string(name)).Observe(d.Seconds())
}

func (m *Metrics) observeHit(name Name) {
	if m == nil {
		return
	}
	m.cacheHits.WithLabelValues(string(name)).Inc()
}

func (m *Metrics) observeInvalidation(name Name, n int) {
	if m == nil || n == 0 {
		return
	}
	m.invalidations.WithLabelValues(string(name)).Add(float64(n))
}

func (m *Metrics) observeMutation(operation string, err error) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(operation, resultLabel(err)).Inc()
}

func (m *Metrics) pollStarted(name Name) {
	if m == nil {
		return
	}
	m.activePolls.WithLabelValues(string(name)).Inc()
}

func (m *Metrics) pollStopped(name Name) {
	if m == nil {
		return
	}
	m.activePolls.WithLabelValues(string(name)).Dec()
}
