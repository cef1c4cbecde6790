package middleware

import (
	"github.com/gin-gonic/gin"

	"library-catalog/internal/model"
	"library-catalog/pkg/response"
)

const apiKeyHeader = "X-API-Key"

// Auth authenticates requests by API key and resolves the key to the user it
// acts as. The resolved scope is stored on the request context for handlers.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(apiKeyHeader)
		if key == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		userID, ok := m.apiKeys[key]
		if !ok {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: unknown API key")
			response.Unauthorized(c)
			c.Abort()
			return
		}

		SetScope(c, model.Scope{UserID: userID})
		c.Next()
	}
}
