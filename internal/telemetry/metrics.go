// metrics.go defines the Prometheus metrics exported by the dashboard backend.
//
// HTTP metrics use the Gin route template (c.FullPath(), e.g.
// /api/0/organizations/:orgId/) rather than the raw URL so user-supplied path
// segments such as org or project slugs never inflate label cardinality.
package telemetry

import (
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tracedash/tracedash/internal/safego"
)

// HTTP metrics, labelled by method, route template, and status code.
//
// Example PromQL queries:
//   - Request rate (req/s, 5 m window):  rate(http_requests_total[5m])
//   - Error rate (%):                    sum(rate(http_requests_total{status=~"5.."}[5m])) / sum(rate(http_requests_total[5m])) * 100
//   - p99 latency per route:             histogram_quantile(0.99, sum by (path, le) (rate(http_request_duration_seconds_bucket[5m])))
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed, by method, route template, and status code.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request latencies, by method and route template.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "path"},
	)
)

// Entity lookup metrics, labelled by result: "hit", "miss", or "error".
// A rising miss rate on org lookups usually means stale links or a renamed slug;
// a non-zero error rate is a database health signal.
var (
	OrgLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "org_lookups_total",
			Help: "Total number of organization lookups by slug, by result (hit/miss/error).",
		},
		[]string{"result"},
	)

	ProjectLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "project_lookups_total",
			Help: "Total number of project lookups by slug, by result (hit/miss/error).",
		},
		[]string{"result"},
	)
)

// DBOpenConnections tracks the number of open connections held by the pool.
// It is sampled every 30 seconds by StartDBStatsCollector rather than
// per-request to avoid calling sql.DB.Stats() on the hot path.
var DBOpenConnections = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "db_open_connections",
		Help: "Current number of open database connections in the pool.",
	},
)

// StartDBStatsCollector launches a background goroutine that samples connection
// pool statistics every 30 seconds and updates the DBOpenConnections gauge. The
// goroutine exits when the database stops answering pings, which happens
// naturally at shutdown once db.Close() runs.
//
// Call this once, right after the database connection is established.
func StartDBStatsCollector(db *sqlx.DB) {
	safego.Go(func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			if err := db.Ping(); err != nil {
				slog.Warn("db stats collector: database unreachable, stopping collector", "error", err)
				return
			}
			DBOpenConnections.Set(float64(db.Stats().OpenConnections))
		}
	})
}
