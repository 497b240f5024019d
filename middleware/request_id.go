package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "requestID"

// RequestID assigns a correlation id to every request and echoes it back
// in the X-Request-ID header. Incoming ids are honored so upstream proxies
// can trace a call end to end.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// GetRequestID extracts the correlation id from context
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
