package server

import (
	"time"

	"marketplace-engine/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs each request with method, path, status and latency
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next()

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}
