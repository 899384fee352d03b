package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/runwayhq/runway-backend/internal/logger"
)

// RequestLog emits one structured line per request after it completes.
// Query strings are omitted; they can carry tokens.
func RequestLog(log *logger.Logger) gin.HandlerFunc {
	requestLogger := log.With("middleware", "RequestLog")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		requestLogger.Info("Request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
