package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/seqkit/logger"
)

// RequestLogger logs every request with method, path, status and duration.
// Health checks are skipped.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/healthz" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := map[string]any{
			"method":             c.Request.Method,
			"path":               c.Request.URL.Path,
			"status":             status,
			logger.FieldDuration: time.Since(start).Milliseconds(),
		}
		if q := c.Request.URL.RawQuery; q != "" {
			fields["query"] = q
		}
		if len(c.Errors) > 0 {
			fields[logger.FieldError] = c.Errors.String()
		}

		l := log.WithContext(c.Request.Context())
		switch {
		case status >= 500:
			l.Error("request completed", fields)
		case status >= 400:
			l.Warn("request completed", fields)
		default:
			l.Debug("request completed", fields)
		}
	}
}
