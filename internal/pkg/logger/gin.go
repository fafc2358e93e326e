package logger

import (
	log "log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// AccessLog 记录每个请求的访问日志
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []any{
			log.String("method", c.Request.Method),
			log.String("path", c.Request.URL.Path),
			log.Int("status", c.Writer.Status()),
			log.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, log.String("errors", c.Errors.String()))
		}

		log.InfoContext(c.Request.Context(), "GIN_ACCESS", fields...)
	}
}
