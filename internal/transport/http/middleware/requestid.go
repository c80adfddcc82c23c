package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// KeyRequestID is both the header and the gin context key for the
// request id; the access log reads it back under this key.
const KeyRequestID = "X-Request-ID"

// RequestID honors a caller-supplied id and mints one otherwise, so
// requests can be traced across the api and admin binaries.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.Request.Header.Get(KeyRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Writer.Header().Set(KeyRequestID, rid)
		c.Set(KeyRequestID, rid)
		c.Next()
	}
}
