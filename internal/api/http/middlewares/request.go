package middlewares

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger логирует каждый запрос: метод, путь, статус, длительность, client IP.
// Заголовок email не пишется в лог.
func RequestLogger(c *gin.Context) {
	start := time.Now()
	path := c.Request.URL.Path
	raw := c.Request.URL.RawQuery

	c.Next()

	if raw != "" {
		path = path + "?" + raw
	}
	attrs := []any{
		"method", c.Request.Method,
		"path", path,
		"status", c.Writer.Status(),
		"ip", c.ClientIP(),
		"latency_ms", time.Since(start).Milliseconds(),
	}
	if len(c.Errors) > 0 {
		attrs = append(attrs, "errors", c.Errors.String())
	}
	if c.Writer.Status() >= 500 {
		slog.Error("request", attrs...)
		return
	}
	slog.Info("request", attrs...)
}
