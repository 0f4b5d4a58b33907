// metrics.go records Prometheus HTTP metrics for every request passing through
// the router.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tracedash/tracedash/internal/telemetry"
)

// MetricsMiddleware records http_requests_total and http_request_duration_seconds
// for each request.
//
// The path label comes from c.FullPath(), the matched route template (e.g.
// /api/0/organizations/:orgId/), never the raw URL; requests that match no route
// use "<no-route>" so unhandled paths cannot inflate label cardinality.
//
// Register after gin.Recovery() and RequestIDMiddleware so the status written by
// error handlers is the one observed here.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "<no-route>"
		}

		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		telemetry.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
		telemetry.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
