package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_requests_total",
		Help: "Total API requests by route",
	}, []string{"route"})
	RefreshTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dashboard_refresh_total",
		Help: "Total background refresh cycles",
	})
	RefreshSuppressedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dashboard_refresh_suppressed_total",
		Help: "Refresh results dropped because a newer filter superseded them",
	})
	FetchErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_fetch_errors_total",
		Help: "Fetch failures by table, degraded to empty result sets",
	}, []string{"table"})
	BuildDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "dashboard_build_duration_ms",
		Help:    "Fetch-and-aggregate cycle duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000, 5000},
	})
	SnapshotCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dashboard_snapshot_cache_hits_total",
		Help: "Redis snapshot cache hits",
	})
)

func init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RefreshTotal)
	prometheus.MustRegister(RefreshSuppressedTotal)
	prometheus.MustRegister(FetchErrorsTotal)
	prometheus.MustRegister(BuildDurationMs)
	prometheus.MustRegister(SnapshotCacheHitsTotal)
}

// Handler exposes the registered metrics for Prometheus scraping;
// mounted at /metrics by the main entrypoint.
func Handler() http.Handler { return promhttp.Handler() }
