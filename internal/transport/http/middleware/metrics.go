package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	reqCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "intern_api",
			Name:      "requests_total",
			Help:      "Requests served, by route, method and status.",
		},
		[]string{"route", "method", "status"},
	)
	reqDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "intern_api",
			Name:      "request_duration_seconds",
			Help:      "Request latency, by route and method.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
)

func init() { prometheus.MustRegister(reqCount, reqDuration) }

// Metrics records per-route counters and latency. Routes are labeled by their
// pattern (`/api/interns/:id`), not the raw path, to keep cardinality bounded;
// unmatched requests fall back to the raw path so 404 traffic stays visible.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		status := strconv.Itoa(c.Writer.Status())
		reqCount.WithLabelValues(route, c.Request.Method, status).Inc()
		reqDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
