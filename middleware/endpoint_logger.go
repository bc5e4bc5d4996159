package middleware

import (
	"strconv"
	"time"

	"github.com/ariebrainware/tiny-erm/metrics"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// EndpointCallLogger logs each HTTP request once it has been handled. The
// level follows the status: 5xx is an error, 4xx a warning.
func EndpointCallLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		switch {
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		}

		event.
			Str("request_id", c.GetString(ContextRequestID)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("route", routeOf(c)).
			Str("query", c.Request.URL.RawQuery).
			Str("ip", c.ClientIP()).
			Int("status", status).
			Dur("duration", duration).
			Msg("endpoint called")
	}
}

// HTTPMetrics counts requests and records their latency per route template.
func HTTPMetrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveHTTPRequest(c.Request.Method, routeOf(c), strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}

// routeOf keeps label cardinality bounded: ids are not part of the route.
func routeOf(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return "unmatched"
}
