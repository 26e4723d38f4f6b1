package middleware

import (
	"strconv"
	"time"

	"wedding-server/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics tracks request counts and durations per method/path/status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		method := c.Request.Method
		path := c.FullPath() // route template, not the raw URL
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.HttpRequestsTotal.WithLabelValues(method, path, status).Inc()
		metrics.HttpRequestDuration.WithLabelValues(method, path, status).Observe(duration)
	}
}
