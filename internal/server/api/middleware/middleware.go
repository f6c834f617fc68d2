// Package middleware provides gin middleware shared by the API routes.
package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/uuidfeed/internal/logging"
	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request after it completes.
func RequestLogger(l logging.Logger) gin.HandlerFunc {
	logger := l.With("module", "http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.Warn(c.Request.Context(), "request failed", args...)
			return
		}
		logger.Debug(c.Request.Context(), "request", args...)
	}
}

// Recovery turns a handler panic into a 500 and logs it.
func Recovery(l logging.Logger) gin.HandlerFunc {
	logger := l.With("module", "http")
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error(c.Request.Context(), "panic recovered", "panic", recovered, "path", c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	})
}

// Timeout bounds the request context by d. Handlers that honour the
// context give up once it expires.
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
