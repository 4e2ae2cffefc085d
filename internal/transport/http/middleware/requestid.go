package middleware

import (
	"github.com/gin-gonic/gin"

	"intern-tracker/pkg/utils"
)

// KeyRequestID is both the request/response header and the gin context key.
const KeyRequestID = "X-Request-ID"

// RequestID honors a caller-supplied id and mints a fresh one otherwise,
// echoing it on the response so clients can correlate access-log lines.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(KeyRequestID)
		if rid == "" {
			rid = utils.NewID()
		}
		c.Set(KeyRequestID, rid)
		c.Header(KeyRequestID, rid)
		c.Next()
	}
}
