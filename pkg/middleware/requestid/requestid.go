// Package requestid tags every request with a correlation identifier so log
// lines and error reports can be tied back to a single call.
package requestid

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Header carries the identifier on requests and responses. Clients may set
// it themselves to correlate across services.
const Header = "X-Request-ID"

const contextKey = "request_id"

// Middleware reuses the caller's X-Request-ID when present, minting a uuid
// otherwise, and echoes it on the response.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(Header)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(contextKey, id)
		c.Writer.Header().Set(Header, id)
		c.Next()
	}
}

// Value returns the identifier assigned by Middleware, or "" when the
// middleware did not run.
func Value(c *gin.Context) string {
	id, _ := c.Get(contextKey)
	s, _ := id.(string)
	return s
}
