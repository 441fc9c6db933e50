package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xkubaj03/tennis-club/internal/logger"
)

// RequestLoggingMiddleware emits one structured log line per request,
// leveled by outcome. Health and metrics endpoints are skipped to keep
// the log readable under liveness polling.
func RequestLoggingMiddleware() gin.HandlerFunc {
	skip := map[string]struct{}{
		"/health":  {},
		"/metrics": {},
	}

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		if _, ok := skip[path]; ok {
			return
		}

		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		kv := []interface{}{
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"bytes", c.Writer.Size(),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			kv = append(kv, "errors", c.Errors.String())
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			logger.Error("request failed", kv...)
		case status >= 400:
			logger.Warn("request rejected", kv...)
		default:
			logger.Info("request served", kv...)
		}
	}
}
