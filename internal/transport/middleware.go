package transport

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agentics/registry-gateway/internal/domain/execution"
)

func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if c.Request.Method == "OPTIONS" {
			return
		}

		slog.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// CORSMiddleware stamps the gateway's CORS policy on every response and
// short-circuits preflight requests before any routing happens.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+execution.HeaderCorrelationID)
		h.Set("Access-Control-Max-Age", "3600")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

// ExecutionMetadata creates the per-request tracing metadata, picking up the
// caller's correlation id when one is sent.
func ExecutionMetadata(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		meta := execution.NewMetadata(service, c.GetHeader(execution.HeaderCorrelationID))
		c.Set(metadataKey, meta)
		c.Next()
	}
}
