package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"campus-assistant/pkg/log"
)

const requestIDHeader = "X-Request-ID"

// RequestID assigns each request an identifier and threads it through the
// logging context and response header.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := log.ContextWithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
