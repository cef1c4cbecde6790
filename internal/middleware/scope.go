package middleware

import (
	"github.com/gin-gonic/gin"

	"library-catalog/internal/model"
)

const scopeKey = "scope"

// SetScope stores the acting-user scope on the request context.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}

// GetScope returns the scope set by the auth middleware, or a zero scope if
// the request was not authenticated.
func GetScope(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}
	sc, ok := v.(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}
