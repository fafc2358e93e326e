package middleware

import (
	"bytes"
	"io"
	log "log/slog"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
)

const maxLoggedBody = 4096

func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var reqBody []byte
		if c.Request.Body != nil {
			reqBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(reqBody))
		}

		body := string(reqBody)
		if decoded, err := url.QueryUnescape(body); err == nil {
			body = decoded
		}
		if len(body) > maxLoggedBody {
			body = body[:maxLoggedBody] + "...[truncated]"
		}

		rawQuery := c.Request.URL.RawQuery
		decodedQuery, err := url.QueryUnescape(rawQuery)
		if err != nil {
			decodedQuery = rawQuery
		}

		log.InfoContext(ctx, "Recv Request",
			log.String("method", c.Request.Method),
			log.String("path", c.Request.URL.Path),
			log.String("query", decodedQuery),
			log.String("req_body", body),
		)

		startTime := time.Now()

		c.Next()

		fields := []any{
			log.Int("status", c.Writer.Status()),
			log.Duration("latency", time.Since(startTime)),
		}
		if location := c.Writer.Header().Get("Location"); location != "" {
			fields = append(fields, log.String("location", location))
		}
		log.InfoContext(ctx, "Send Response", fields...)
	}
}
