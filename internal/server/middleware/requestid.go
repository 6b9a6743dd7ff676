// file: internal/server/middleware/requestid.go
// version: 1.0.0
// guid: b9d1f3a5-c7e9-4f1a-d3b5-e7f9a1b3c5d7

package middleware

import (
	"github.com/gin-gonic/gin"
	ulid "github.com/oklog/ulid/v2"
)

// RequestIDHeader is the response header carrying the per-request ULID.
const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with a ULID so log lines and client error
// reports can be correlated. An incoming X-Request-ID is trusted and
// propagated unchanged.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = ulid.Make().String()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
