package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type respWriter struct {
	gin.ResponseWriter
	status int
	size   int
}

func (w *respWriter) WriteHeader(code int) { w.status = code; w.ResponseWriter.WriteHeader(code) }
func (w *respWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = 200
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

func AccessLog(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		w := &respWriter{ResponseWriter: c.Writer}
		c.Writer = w

		c.Next()

		l.Info("HTTP",
			zap.String("rid", c.GetString(KeyRequestID)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", w.status),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
			zap.String("ua", c.Request.UserAgent()),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Int("size", w.size),
		)
	}
}
