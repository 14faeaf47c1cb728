package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kizuma-trade/backoffice-service/internal/infrastructure/metrics"
)

// RequestLogger logs every request and feeds the HTTP duration metric.
func RequestLogger(backofficeMetrics *metrics.BackofficeMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start)
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		slog.Info("request completed",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"duration_ms", duration.Milliseconds(),
			"request_id", c.GetString(RequestIDKey),
		)
		backofficeMetrics.RecordHTTPRequest(c.Request.Method, path, c.Writer.Status(), duration.Seconds())
	}
}
