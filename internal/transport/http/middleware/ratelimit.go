package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	resp "intern-tracker/internal/transport/http/response"
)

// RateLimit is a global token-bucket limiter.
func RateLimit(rps rate.Limit, burst int) gin.HandlerFunc {
	lim := rate.NewLimiter(rps, burst)
	return func(c *gin.Context) {
		if lim.Allow() {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(resp.Err(http.StatusTooManyRequests, resp.CodeServer, "too many requests"))
	}
}
