package middleware

import (
	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"library-catalog/pkg/response"
)

const defaultRateLimitKeys = 1024

// RateLimit enforces a token-bucket limit per API key. Limiter state is kept
// in a bounded LRU so abandoned keys do not leak memory. Falls back to the
// client IP when the request carries no API key.
func (m Middleware) RateLimit() gin.HandlerFunc {
	maxKeys := m.rateLimit.MaxKeys
	if maxKeys <= 0 {
		maxKeys = defaultRateLimitKeys
	}
	limiters, err := lru.New[string, *rate.Limiter](maxKeys)
	if err != nil {
		panic(err)
	}

	limit := rate.Limit(m.rateLimit.RequestsPerSecond)
	if limit <= 0 {
		limit = rate.Inf
	}
	burst := m.rateLimit.Burst
	if burst <= 0 {
		burst = 1
	}

	return func(c *gin.Context) {
		key := c.GetHeader(apiKeyHeader)
		if key == "" {
			key = c.ClientIP()
		}

		limiter, ok := limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(limit, burst)
			limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
