package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgLog "task-assistant/pkg/log"
)

const requestIDHeader = "X-Request-ID"

// RequestID attaches a request ID to the context so every log line from the
// request carries it. An incoming X-Request-ID is honored; otherwise a new
// UUID is generated. The ID is echoed back in the response header.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := pkgLog.WithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(requestIDHeader, id)

		c.Next()
	}
}
